package tiny

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/problem"
	"github.com/ib-77/railway/pkg/rop/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res rop.Result[T]
}

func Start[T any](ctx context.Context, r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Success(v))
}

func (c Chain[T]) Result() rop.Result[T] {
	return c.res
}

func (c Chain[T]) with(r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: r}
}

// Then composes functions that already return rop.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return c.with(onSuccess(c.ctx, c.res.Value()))
}

func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

func (c Chain[T]) RepeatChainUntil(inC func(ctx context.Context, t T) Chain[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = inC(c.ctx, c.res.Value())

		if c.res.IsFailure() || !until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rop.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

func (c Chain[T]) WhileChain(inC func(ctx context.Context, t T) Chain[T], while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Value()) {
		c = inC(c.ctx, c.res.Value())
	}
	return c
}

// Or returns the first successful chain. Without one, a canceled chain
// wins over a failed one.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(alternatives)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, alternatives...)

	var canceled, failed *Chain[T]
	for i := range candidates {
		ch := &candidates[i]
		switch {
		case ch.res.IsSuccess():
			return *ch
		case ch.res.IsCancel():
			if canceled == nil {
				canceled = ch
			}
		default:
			if failed == nil {
				failed = ch
			}
		}
	}

	if canceled != nil {
		return *canceled
	}
	if failed != nil {
		return *failed
	}
	return c
}

// And returns the first failed chain, or the last one when all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return Chain[T]{ctx: c.ctx, res: last.res}
}

// ThenTry composes functions that return (T, error), like repository calls.
// Deadline and cancellation errors produce a canceled result.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return c.with(solo.Try(c.ctx, c.res, try))
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return c.with(solo.Map(c.ctx, c.res, onSuccess))
}

// Ensure fails the chain with p when predicate does not hold
func (c Chain[T]) Ensure(predicate func(context.Context, T) bool, p *problem.Problem) Chain[T] {
	return c.with(solo.Ensure(c.ctx, c.res, predicate, p))
}

// Tap triggers side effects for success/failure without changing the result
func (c Chain[T]) Tap(onSuccess func(context.Context, T), onFailure func(context.Context, *problem.Problem)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.ProblemOrDefault())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

func (c Chain[T]) Compensate(alternative func(context.Context, *problem.Problem) rop.Result[T]) Chain[T] {
	return c.with(solo.Compensate(c.ctx, c.res, alternative))
}

// Finally collapses the chain to a final value, delegating to solo.Fold
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, *problem.Problem) T,
	onCancel func(context.Context, *problem.Problem) T,
) T {
	return solo.Fold(c.ctx, c.res, onSuccess, onFailure, onCancel)
}
