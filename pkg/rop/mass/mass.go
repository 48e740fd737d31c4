package mass

import (
	"context"
	"net/http"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/problem"
	"github.com/ib-77/railway/pkg/rop/solo"
)

const NoResultTitle = "No Result"

// FromAsync runs fn on a goroutine. Its error or panic becomes a failure.
func FromAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) <-chan rop.Result[T] {
	return run(ctx, func() rop.Result[T] {
		return rop.From(func() (T, error) {
			return fn(ctx)
		})
	})
}

func Validating[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) <-chan rop.Result[T] {

	return run(ctx, func() rop.Result[T] {
		return solo.AndValidate(ctx, input, validate)
	})
}

func Binding[In, Out any](ctx context.Context, input rop.Result[In],
	bindOnSuccess func(ctx context.Context, r In) rop.Result[Out]) <-chan rop.Result[Out] {

	return run(ctx, func() rop.Result[Out] {
		return solo.Bind(ctx, input, bindOnSuccess)
	})
}

func Mapping[In, Out any](ctx context.Context, input rop.Result[In],
	mapOnSuccess func(ctx context.Context, r In) Out) <-chan rop.Result[Out] {

	return run(ctx, func() rop.Result[Out] {
		return solo.Map(ctx, input, mapOnSuccess)
	})
}

func Trying[In, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) <-chan rop.Result[Out] {

	return run(ctx, func() rop.Result[Out] {
		return solo.Try(ctx, input, onTryExecute)
	})
}

func Tapping[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) <-chan rop.Result[T] {

	return run(ctx, func() rop.Result[T] {
		return solo.Tap(ctx, input, onSuccess)
	})
}

func Compensating[T any](ctx context.Context, input rop.Result[T],
	alternative func(ctx context.Context, p *problem.Problem) rop.Result[T]) <-chan rop.Result[T] {

	return run(ctx, func() rop.Result[T] {
		return solo.Compensate(ctx, input, alternative)
	})
}

// Await blocks until ch delivers a result or ctx ends. A channel closed
// without a value yields a failure.
func Await[T any](ctx context.Context, ch <-chan rop.Result[T]) rop.Result[T] {
	select {
	case <-ctx.Done():
		return rop.Cancel[T](ctx.Err())
	case r, ok := <-ch:
		if !ok {
			if err := ctx.Err(); err != nil {
				return rop.Cancel[T](err)
			}
			return rop.FailWith[T](NoResultTitle, "the channel closed without a result", http.StatusInternalServerError)
		}
		return r
	}
}

// run delivers compute's result, or a canceled result when ctx ends
// first. Sends never block: both channels hold one result.
func run[T any](ctx context.Context, compute func() rop.Result[T]) <-chan rop.Result[T] {
	ch := make(chan rop.Result[T], 1)
	out := make(chan rop.Result[T], 1)

	if err := ctx.Err(); err != nil {
		out <- rop.Cancel[T](err)
		close(out)
		return out
	}

	go func() {
		defer close(ch)
		defer func() {
			if v := recover(); v != nil {
				ch <- rop.FailError[T](rop.Recovered(v))
			}
		}()
		ch <- compute()
	}()

	go func() {
		defer close(out)

		select {
		case r := <-ch:
			out <- r
		case <-ctx.Done():
			out <- rop.Cancel[T](ctx.Err())
		}
	}()

	return out
}
