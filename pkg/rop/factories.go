package rop

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ib-77/railway/pkg/rop/problem"
)

// DefaultInvalidKey is the validation field used when only a message is given.
const DefaultInvalidKey = "message"

// FailError describes err through the problem bridge. Context cancellation
// and deadline errors produce a canceled result. A joined error becomes an
// aggregate of its members. A nil error yields a failure without problem.
func FailError[T any](err error) Result[T] {
	if err == nil {
		return Fail[T](nil)
	}
	if IsCancellationError(err) {
		return Cancel[T](err)
	}

	var p *problem.Problem
	if errs := GetErrors(err); len(errs) > 1 {
		members := make([]*problem.Problem, 0, len(errs))
		for _, e := range errs {
			members = append(members, problem.FromError(e))
		}
		p = problem.Aggregate(members...)
	} else {
		p = problem.FromError(err)
	}

	r := Fail[T](p)
	r.cause = err
	return r
}

// FailCode fails with a domain problem derived from an enum-like code.
func FailCode[T any](code fmt.Stringer, detail ...string) Result[T] {
	return Fail[T](problem.FromCode(code, first(detail)))
}

// FailCodeStatus is FailCode with an explicit status.
func FailCodeStatus[T any](code fmt.Stringer, status int, detail ...string) Result[T] {
	return Fail[T](problem.FromCode(code, first(detail), status))
}

func FailWith[T any](title, detail string, status int) Result[T] {
	return Fail[T](problem.New(title, detail, status))
}

func FailStatus[T any](status int, detail ...string) Result[T] {
	return Fail[T](problem.FromStatus(status, detail...))
}

func FailValidation[T any](fields ...problem.FieldError) Result[T] {
	return Fail[T](problem.Validation(fields...))
}

func FailNotFound[T any](detail ...string) Result[T] {
	return Fail[T](problem.NotFound(detail...))
}

func FailUnauthorized[T any](detail ...string) Result[T] {
	return Fail[T](problem.Unauthorized(detail...))
}

func FailForbidden[T any](detail ...string) Result[T] {
	return Fail[T](problem.Forbidden(detail...))
}

// Invalid is FailValidation on the DefaultInvalidKey field.
func Invalid[T any](message string) Result[T] {
	return FailValidation[T](problem.Field(DefaultInvalidKey, message))
}

func InvalidField[T any](field, message string) Result[T] {
	return FailValidation[T](problem.Field(field, message))
}

// InvalidFields fails with one message per field, fields in sorted order.
func InvalidFields[T any](fields map[string]string) Result[T] {
	pairs := make([]problem.FieldError, 0, len(fields))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		pairs = append(pairs, problem.Field(k, fields[k]))
	}
	return FailValidation[T](pairs...)
}

func first(values []string) string {
	if len(values) > 0 {
		return values[0]
	}
	return ""
}
