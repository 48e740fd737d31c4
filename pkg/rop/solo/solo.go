package solo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/observe"
	"github.com/ib-77/railway/pkg/rop/problem"
)

const (
	NoConditionTitle  = "No Condition Met"
	NoConditionDetail = "None of the cases matched the value."
	VerificationTitle = "Verification Failed"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](p *problem.Problem) rop.Result[T] {
	return rop.Fail[T](p)
}

func FailError[T any](err error) rop.Result[T] {
	return rop.FailError[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

// Validate checks input; an invalid value fails with a validation problem
// carrying errMsg.
func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Value()); !isValid {
			return rop.Invalid[T](errMsg)
		}
	}
	return input
}

// ValidateAll runs every validator against the value of input. With
// breakOnError the first failure is returned; otherwise the failures are
// merged the way MergeAll does.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	validators ...func(ctx context.Context, in T) rop.Result[T]) rop.Result[T] {

	if input.IsFailure() || len(validators) == 0 {
		return input
	}

	failed := make([]rop.Outcome, 0, len(validators))
	for _, validate := range validators {
		if err := ctx.Err(); err != nil {
			return rop.Cancel[T](err)
		}
		if res := validate(ctx, input.Value()); res.IsFailure() {
			if breakOnError {
				return res
			}
			failed = append(failed, res)
		}
	}

	if len(failed) == 0 {
		return input
	}
	return rop.PropagateOutcome[T](mergeFailures(failed))
}

// Bind continues with onSuccess when input succeeded.
func Bind[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rop.Propagate[Out](input)
}

// Then is Bind for value-less results.
func Then(ctx context.Context, input rop.Unit,
	next func(ctx context.Context) rop.Unit) rop.Unit {

	if input.IsSuccess() {
		return next(ctx)
	}
	return input
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Value()))
	}
	return rop.Propagate[Out](input)
}

func Tap[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

func TapIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() && condition(ctx, input.Value()) {
		onSuccessAndCondition(ctx, input.Value())
	}
	return input
}

// TapError runs onFailure with the problem of a failed input.
func TapError[T any](ctx context.Context,
	input rop.Result[T],
	onFailure func(ctx context.Context, p *problem.Problem)) rop.Result[T] {

	if input.IsFailure() {
		onFailure(ctx, input.ProblemOrDefault())
	}
	return input
}

func DoubleTap[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, p *problem.Problem),
	onCancel func(ctx context.Context, p *problem.Problem)) rop.Result[T] {

	switch {
	case input.IsSuccess():
		onSuccess(ctx, input.Value())
	case input.IsCancel():
		onCancel(ctx, input.ProblemOrDefault())
	default:
		onError(ctx, input.ProblemOrDefault())
	}
	return input
}

// Try runs onTryExecute on success. Its error, or a panic it raises, is
// turned into a failure through the problem bridge.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsFailure() {
		return rop.Propagate[Out](input)
	}
	return rop.From(func() (Out, error) {
		return onTryExecute(ctx, input.Value())
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Value()); err != nil {
			return rop.FailError[T](err)
		}
	}
	return input
}

// Check runs verify on success. An error or a panic fails the result
// through the problem bridge; otherwise input is returned unchanged.
func Check[T any](ctx context.Context, input rop.Result[T],
	verify func(ctx context.Context, in T) error) rop.Result[T] {

	if input.IsFailure() {
		return input
	}
	res := rop.From(func() (T, error) {
		return input.Value(), verify(ctx, input.Value())
	})
	if res.IsFailure() {
		return res
	}
	return input
}

// Verify fails a success for which condition does not hold. The problem
// title names label.
func Verify[T any](ctx context.Context, input rop.Result[T],
	condition func(ctx context.Context, in T) bool, label string) rop.Result[T] {

	if input.IsSuccess() && !condition(ctx, input.Value()) {
		title := VerificationTitle
		if label != "" {
			title = fmt.Sprintf("%s: %s", VerificationTitle, label)
		}
		return rop.FailWith[T](title, fmt.Sprintf("condition %q was not met", label), http.StatusBadRequest)
	}
	return input
}

// Ensure fails a success that does not satisfy predicate with p.
// A failed input keeps its own problem.
func Ensure[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, in T) bool, p *problem.Problem) rop.Result[T] {

	if input.IsSuccess() && !predicate(ctx, input.Value()) {
		return rop.Fail[T](p)
	}
	return input
}

// EnsureCode is Ensure with a problem derived from an enum-like code.
func EnsureCode[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, in T) bool, code fmt.Stringer, detail ...string) rop.Result[T] {

	if input.IsSuccess() && !predicate(ctx, input.Value()) {
		return rop.FailCode[T](code, detail...)
	}
	return input
}

// Where fails a success that does not satisfy predicate with a validation
// problem made of fields.
func Where[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, in T) bool, fields ...problem.FieldError) rop.Result[T] {

	if input.IsSuccess() && !predicate(ctx, input.Value()) {
		return rop.FailValidation[T](fields...)
	}
	return input
}

// FailIf fails a success that satisfies predicate.
func FailIf[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, in T) bool, p *problem.Problem) rop.Result[T] {

	if input.IsSuccess() && predicate(ctx, input.Value()) {
		return rop.Fail[T](p)
	}
	return input
}

// OkIf keeps a success only while ok holds.
func OkIf[T any](input rop.Result[T], ok bool, p *problem.Problem) rop.Result[T] {
	if input.IsSuccess() && !ok {
		return rop.Fail[T](p)
	}
	return input
}

// Compensate replaces a failure with the outcome of alternative. The
// alternative receives the problem, a generic one when none was attached.
func Compensate[T any](ctx context.Context, input rop.Result[T],
	alternative func(ctx context.Context, p *problem.Problem) rop.Result[T]) rop.Result[T] {

	if input.IsFailure() {
		return alternative(ctx, input.ProblemOrDefault())
	}
	return input
}

func CompensateWith[T any](input rop.Result[T], fallback T) rop.Result[T] {
	if input.IsFailure() {
		return rop.Success(fallback)
	}
	return input
}

// Finally runs action whatever the state of input and returns input.
func Finally[T any](ctx context.Context, input rop.Result[T],
	action func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	action(ctx, input)
	return input
}

// Match reduces input to a value through exactly one of the branches.
func Match[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, p *problem.Problem) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.ProblemOrDefault())
}

// Fold is Match with a separate branch for canceled results.
func Fold[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, p *problem.Problem) Out,
	onCancel func(ctx context.Context, p *problem.Problem) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	} else if input.IsCancel() {
		return onCancel(ctx, input.ProblemOrDefault())
	} else {
		return onError(ctx, input.ProblemOrDefault())
	}
}

// Case pairs a predicate with the handler SwitchFirst runs when it holds.
type Case[In, Out any] struct {
	When func(ctx context.Context, in In) bool
	Then func(ctx context.Context, in In) rop.Result[Out]
}

func On[In, Out any](when func(ctx context.Context, in In) bool,
	then func(ctx context.Context, in In) rop.Result[Out]) Case[In, Out] {
	return Case[In, Out]{When: when, Then: then}
}

// SwitchFirst runs the handler of the first case whose predicate holds.
// No match fails with a NoConditionTitle problem; a failed input is
// propagated without evaluating any case.
func SwitchFirst[In, Out any](ctx context.Context, input rop.Result[In],
	cases ...Case[In, Out]) rop.Result[Out] {

	if input.IsFailure() {
		return rop.Propagate[Out](input)
	}
	for _, c := range cases {
		if c.When(ctx, input.Value()) {
			return c.Then(ctx, input.Value())
		}
	}
	return rop.FailWith[Out](NoConditionTitle, NoConditionDetail, http.StatusBadRequest)
}

// Report hands a snapshot of input to obs and returns input.
func Report[T any](ctx context.Context, input rop.Result[T], obs observe.Observer) rop.Result[T] {
	if obs != nil {
		obs.Observe(ctx, observe.FromResult(input))
	}
	return input
}
