package rop

import (
	"github.com/ib-77/railway/pkg/rop/problem"
)

// From runs fn and turns its error, or a panic it raises, into a failure.
func From[T any](fn func() (T, error)) (out Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			out = FailError[T](Recovered(v))
		}
	}()
	v, err := fn()
	return FromPair(v, err)
}

// FromFunc runs fn, recovering a panic into a failure.
func FromFunc[T any](fn func() T) Result[T] {
	return From(func() (T, error) {
		return fn(), nil
	})
}

// FromPair adapts the usual (value, error) return.
func FromPair[T any](v T, err error) Result[T] {
	if err != nil {
		return FailError[T](err)
	}
	return Success(v)
}

// FromBool is Ok when ok holds. Otherwise it fails with p, or without
// problem when p is omitted.
func FromBool(ok bool, p ...*problem.Problem) Unit {
	if ok {
		return Ok()
	}
	return Fail[Void](firstProblem(p))
}

// FromPointer succeeds with *v when v is not nil. A nil pointer fails with
// p, or with a not found problem when p is omitted.
func FromPointer[T any](v *T, p ...*problem.Problem) Result[T] {
	if v != nil {
		return Success(*v)
	}
	if len(p) == 0 {
		return FailNotFound[T]()
	}
	return Fail[T](p[0])
}

func firstProblem(ps []*problem.Problem) *problem.Problem {
	if len(ps) > 0 {
		return ps[0]
	}
	return nil
}
