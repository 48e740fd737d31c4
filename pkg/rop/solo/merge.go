package solo

import (
	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/problem"
)

// Merge returns the first failed outcome, or Ok when all succeeded.
func Merge(results ...rop.Outcome) rop.Unit {
	for _, r := range results {
		if r != nil && !r.IsSuccess() {
			return rop.PropagateOutcome[rop.Void](r)
		}
	}
	return rop.Ok()
}

// MergeAll collects every failure. A single failure is returned as is.
// When all failures are validation problems their fields are merged into
// one validation problem; otherwise an aggregate problem lists them all.
func MergeAll(results ...rop.Outcome) rop.Unit {
	failed := failures(results)
	if len(failed) == 0 {
		return rop.Ok()
	}
	return mergeFailures(failed)
}

// Combine collects the values of results in order, or moves the first
// failure into the collection result.
func Combine[T any](results ...rop.Result[T]) rop.CollectionResult[T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsFailure() {
			return rop.ToCollection[T](r)
		}
		values = append(values, r.Value())
	}
	return rop.SuccessCollection(values)
}

// CombineAll is Combine with the failure handling of MergeAll.
func CombineAll[T any](results ...rop.Result[T]) rop.CollectionResult[T] {
	outcomes := make([]rop.Outcome, 0, len(results))
	values := make([]T, 0, len(results))
	for _, r := range results {
		outcomes = append(outcomes, r)
		if r.IsSuccess() {
			values = append(values, r.Value())
		}
	}

	failed := failures(outcomes)
	if len(failed) == 0 {
		return rop.SuccessCollection(values)
	}
	return rop.ToCollection[T](mergeFailures(failed))
}

func failures(results []rop.Outcome) []rop.Outcome {
	failed := make([]rop.Outcome, 0, len(results))
	for _, r := range results {
		if r != nil && !r.IsSuccess() {
			failed = append(failed, r)
		}
	}
	return failed
}

func mergeFailures(failed []rop.Outcome) rop.Unit {
	if len(failed) == 1 {
		return rop.PropagateOutcome[rop.Void](failed[0])
	}

	problems := make([]*problem.Problem, 0, len(failed))
	allValidation := true
	for _, f := range failed {
		p := f.Problem()
		problems = append(problems, p)
		if !p.IsValidation() {
			allValidation = false
		}
	}

	if allValidation {
		return rop.Fail[rop.Void](problem.MergeValidation(problems...))
	}
	return rop.Fail[rop.Void](problem.Aggregate(problems...))
}
