package observe

import (
	"context"

	"github.com/google/uuid"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/problem"
)

// Outcome labels used by observers.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeCanceled = "canceled"
)

// Outcome is the observed snapshot of one result.
type Outcome struct {
	ID       uuid.UUID
	Success  bool
	Canceled bool
	Problem  *problem.Problem
}

// FromResult snapshots any result.
func FromResult(r rop.Outcome) Outcome {
	if r == nil {
		return Outcome{}
	}
	return Outcome{
		ID:       r.Id(),
		Success:  r.IsSuccess(),
		Canceled: r.IsCancel(),
		Problem:  r.Problem(),
	}
}

// Label is one of OutcomeSuccess, OutcomeFailure or OutcomeCanceled.
func (o Outcome) Label() string {
	switch {
	case o.Success:
		return OutcomeSuccess
	case o.Canceled:
		return OutcomeCanceled
	default:
		return OutcomeFailure
	}
}

type Observer interface {
	Observe(ctx context.Context, o Outcome)
}

// Func adapts a function to Observer.
type Func func(ctx context.Context, o Outcome)

func (f Func) Observe(ctx context.Context, o Outcome) {
	f(ctx, o)
}

type Noop struct{}

func (Noop) Observe(context.Context, Outcome) {}

type multi []Observer

// Multi fans an outcome out to every non-nil observer in order.
func Multi(observers ...Observer) Observer {
	out := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

func (m multi) Observe(ctx context.Context, o Outcome) {
	for _, obs := range m {
		obs.Observe(ctx, o)
	}
}
