package observe

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ib-77/railway/pkg/rop/problem"
)

// LogObserver writes one record per failed outcome. Successes are logged
// at debug level only.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

func (l *LogObserver) Observe(ctx context.Context, o Outcome) {
	if o.Success {
		l.logger.DebugContext(ctx, "railway outcome", slog.String("result_id", o.ID.String()))
		return
	}

	p := o.Problem
	if p == nil {
		p = problem.Generic()
	}
	l.logger.Log(ctx, levelFor(p.Status), "railway failure",
		slog.String("result_id", o.ID.String()),
		slog.Int("status", p.Status),
		slog.String("error_code", p.ErrorCode()),
		slog.String("title", p.Title),
		slog.Bool("canceled", o.Canceled),
	)
}

// levelFor maps 4xx to warn; 5xx and unspecified statuses are errors.
func levelFor(status int) slog.Level {
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}
