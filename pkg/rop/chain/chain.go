package chain

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/observe"
	"github.com/ib-77/railway/pkg/rop/problem"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: rop.Success(value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

func (c *Chain[T]) with(r rop.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: c.ctx, result: r}
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Bind(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Tap performs a side effect without changing the result
func (c *Chain[T]) Tap(onSuccess func(context.Context, T)) *Chain[T] {
	return c.with(solo.Tap(c.ctx, c.result, onSuccess))
}

// Ensure fails the chain with p when predicate does not hold
func (c *Chain[T]) Ensure(predicate func(context.Context, T) bool, p *problem.Problem) *Chain[T] {
	return c.with(solo.Ensure(c.ctx, c.result, predicate, p))
}

// Compensate replaces a failure with the outcome of alternative
func (c *Chain[T]) Compensate(alternative func(context.Context, *problem.Problem) rop.Result[T]) *Chain[T] {
	return c.with(solo.Compensate(c.ctx, c.result, alternative))
}

// Report hands the current outcome to obs
func (c *Chain[T]) Report(obs observe.Observer) *Chain[T] {
	return c.with(solo.Report(c.ctx, c.result, obs))
}

// Finally collapses the chain into a final result using solo.Fold
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, *problem.Problem) U,
	onCancel func(context.Context, *problem.Problem) U) U {
	return solo.Fold(c.ctx, c.result, onSuccess, onFailure, onCancel)
}
