// Package temporalx carries problems across Temporal activity and workflow
// boundaries as application errors.
package temporalx

import (
	"errors"
	"net/http"

	"go.temporal.io/sdk/temporal"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/problem"
)

// ToApplicationError wraps p as an application error. The message is the
// display message and the type is the error code, or the title without
// one. Client errors and validation problems are non-retryable. The
// problem travels as the single detail of the error.
func ToApplicationError(p *problem.Problem) error {
	if p == nil {
		return nil
	}

	errType := p.ErrorCode()
	if errType == "" {
		errType = p.Title
	}
	return temporal.NewApplicationErrorWithOptions(p.DisplayMessage(), errType, temporal.ApplicationErrorOptions{
		NonRetryable: IsNonRetryable(p),
		Details:      []interface{}{p},
	})
}

func IsNonRetryable(p *problem.Problem) bool {
	if p == nil {
		return false
	}
	if p.IsValidation() {
		return true
	}
	return p.Status >= http.StatusBadRequest && p.Status < http.StatusInternalServerError &&
		p.Status != http.StatusTooManyRequests && p.Status != http.StatusRequestTimeout
}

// FromError recovers the problem carried by an application error. Errors
// without one are described through problem.FromError; canceled errors
// become canceled problems.
func FromError(err error) *problem.Problem {
	if err == nil {
		return nil
	}

	if temporal.IsCanceledError(err) {
		return problem.Canceled(err)
	}

	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return problem.FromError(err)
	}

	if appErr.HasDetails() {
		var p *problem.Problem
		if derr := appErr.Details(&p); derr == nil && p != nil {
			return p
		}
	}

	status := http.StatusInternalServerError
	if appErr.NonRetryable() {
		status = http.StatusBadRequest
	}
	p := problem.New(appErr.Type(), appErr.Message(), status, problem.WithType(problem.StatusType(status)))
	p.SetErrorCode(appErr.Type())
	return p
}

// ResultError is the error an activity returns for r: nil on success, a
// canceled error for canceled results, an application error otherwise.
func ResultError(r rop.Outcome) error {
	if r == nil || r.IsSuccess() {
		return nil
	}

	p := r.Problem()
	if p == nil {
		p = problem.Generic()
	}
	if r.IsCancel() {
		return temporal.NewCanceledError(p)
	}
	return ToApplicationError(p)
}

// Result turns an activity or child workflow return into a result.
func Result[T any](v T, err error) rop.Result[T] {
	if err == nil {
		return rop.Success(v)
	}
	if temporal.IsCanceledError(err) || rop.IsCancellationError(err) {
		return rop.Cancel[T](err)
	}
	return rop.Fail[T](FromError(err))
}
