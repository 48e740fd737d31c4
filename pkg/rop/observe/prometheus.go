package observe

import (
	"context"
	"strconv"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusObserver counts outcomes and failures by status and error code.
type PrometheusObserver struct {
	outcomes *prom.CounterVec
	failures *prom.CounterVec
}

// NewPrometheusObserver registers its counters on reg. A nil registry gets
// a private one.
func NewPrometheusObserver(reg *prom.Registry) *PrometheusObserver {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	po := &PrometheusObserver{
		outcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "railway",
			Name:      "outcomes_total",
			Help:      "Observed results by outcome",
		}, []string{"outcome"}),
		failures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "railway",
			Name:      "failures_total",
			Help:      "Failed results by problem status and error code",
		}, []string{"status", "error_code"}),
	}
	reg.MustRegister(po.outcomes, po.failures)
	return po
}

func (p *PrometheusObserver) Observe(_ context.Context, o Outcome) {
	if p == nil || p.outcomes == nil {
		return
	}
	p.outcomes.WithLabelValues(o.Label()).Inc()
	if o.Success {
		return
	}

	status, code := "0", ""
	if o.Problem != nil {
		status = strconv.Itoa(o.Problem.Status)
		code = o.Problem.ErrorCode()
	}
	p.failures.WithLabelValues(status, code).Inc()
}
