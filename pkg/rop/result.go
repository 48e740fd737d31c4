package rop

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/railway/pkg/rop/problem"
)

// Result is either a success holding a value or a failure holding an
// optional problem. A failure never carries a value and a success never
// carries a problem.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	problem   *problem.Problem
	cause     error
	isSuccess bool
	isCancel  bool
}

// Void is the value of results that carry none.
type Void struct{}

// Unit is the value-less result.
type Unit = Result[Void]

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Ok() Unit {
	return Success(Void{})
}

// Fail builds a failure. A nil problem is the minimal failure with no
// diagnostic attached.
func Fail[T any](p *problem.Problem) Result[T] {
	return Result[T]{
		problem:   p,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Cancel builds a failure for work abandoned because its context ended.
func Cancel[T any](err error) Result[T] {
	return Result[T]{
		problem:   problem.Canceled(err),
		cause:     err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Propagate moves a failure to another value type. The problem is kept by
// reference; a success input yields a failure without problem.
func Propagate[Out, In any](from Result[In]) Result[Out] {
	return Result[Out]{
		problem:   from.problem,
		cause:     from.cause,
		isCancel:  from.isCancel,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// PropagateOutcome is Propagate for an outcome of unknown value type.
func PropagateOutcome[Out any](from Outcome) Result[Out] {
	out := Fail[Out](nil)
	if from == nil || from.IsSuccess() {
		return out
	}
	out.problem = from.Problem()
	out.isCancel = from.IsCancel()
	if c, ok := from.(interface{ originalErr() error }); ok {
		out.cause = c.originalErr()
	}
	return out
}

func (r Result[T]) originalErr() error {
	return r.cause
}

// Convert copies the state of from into a result of another value type.
// The value is carried over only when it is assignable to Out; otherwise
// the copy is a failure. Nothing is re-run.
func Convert[Out, In any](from Result[In]) Result[Out] {
	out := Result[Out]{
		problem:   from.problem,
		cause:     from.cause,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
	if !from.isSuccess {
		return out
	}
	if v, ok := any(from.value).(Out); ok {
		out.value = v
		out.isSuccess = true
		return out
	}
	out.problem = problem.New("Conversion Failed", "success value is not assignable to the target type", 500)
	return out
}

func (r Result[T]) Value() T {
	return r.value
}

// ValueOr returns the value of a success or fallback.
func (r Result[T]) ValueOr(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) HasProblem() bool {
	return !r.isSuccess && r.problem != nil
}

// Problem returns the attached problem, nil on success or on a failure
// without diagnostic.
func (r Result[T]) Problem() *problem.Problem {
	if r.isSuccess {
		return nil
	}
	return r.problem
}

// ProblemOrDefault substitutes a generic problem for a failure without one.
func (r Result[T]) ProblemOrDefault() *problem.Problem {
	if r.isSuccess {
		return nil
	}
	if r.problem == nil {
		return problem.Generic()
	}
	return r.problem
}

func (r Result[T]) TryProblem() (*problem.Problem, bool) {
	if r.HasProblem() {
		return r.problem, true
	}
	return nil, false
}

// Err is nil on success. On failure it returns the originating error when
// one is still held, or the error rebuilt from the problem.
func (r Result[T]) Err() error {
	if r.isSuccess {
		return nil
	}
	if r.cause != nil {
		return r.cause
	}
	return r.ProblemOrDefault().ToError()
}

func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.Err()
}

// Must returns the value or panics with Err.
func (r Result[T]) Must() T {
	if err := r.Err(); err != nil {
		panic(err)
	}
	return r.value
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
