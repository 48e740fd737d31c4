package problem

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
)

// FromError describes err as a problem. Title is the short type name,
// Detail the error text and ErrorCode the qualified type name. Data of a
// DataError is copied under ExceptionDataPrefix. Status defaults to 500.
// An *Error anywhere in the chain yields a copy of the problem it carries.
func FromError(err error, status ...int) *Problem {
	if err == nil {
		return Generic()
	}

	var pe *Error
	if errors.As(err, &pe) && pe.problem != nil {
		return pe.problem.Clone()
	}

	st := http.StatusInternalServerError
	if len(status) > 0 {
		st = status[0]
	}

	short, qualified := typeNames(err)
	p := New(short, err.Error(), st, WithType(StatusType(st)))
	p.SetErrorCode(qualified)
	p.SetExtension(ExceptionTypeKey, qualified)

	if de, ok := err.(DataError); ok {
		for k, v := range de.Data() {
			p.SetExtension(ExceptionDataPrefix+k, v)
		}
	}
	return p
}

// ExceptionData returns the captured error data with the prefix removed
// once, so keys come back exactly as the error reported them.
func (p *Problem) ExceptionData() map[string]any {
	out := map[string]any{}
	if p == nil {
		return out
	}
	for k, v := range p.Extensions {
		if strings.HasPrefix(k, ExceptionDataPrefix) {
			out[strings.TrimPrefix(k, ExceptionDataPrefix)] = v
		}
	}
	return out
}

// ToError rebuilds an error using DefaultRegistry.
func (p *Problem) ToError() error {
	return p.ToErrorWith(DefaultRegistry)
}

// ToErrorWith rebuilds the error recorded by FromError when its type is
// registered in r; otherwise it returns an *Error carrying p. Validation
// problems always produce *Error. Only the message, the type and the
// captured data survive.
func (p *Problem) ToErrorWith(r *Registry) error {
	if p == nil {
		return nil
	}
	if !p.IsValidation() {
		if err := p.rebuild(r); err != nil {
			return err
		}
	}
	return &Error{problem: p}
}

func (p *Problem) rebuild(r *Registry) (err error) {
	name, _ := Extension[string](p, ExceptionTypeKey)
	if name == "" || r == nil {
		return nil
	}
	messageF, zeroF, ok := r.Lookup(name)
	if !ok {
		return nil
	}

	defer func() {
		if recover() != nil {
			err = nil
		}
	}()

	if messageF != nil {
		err = messageF(p.Detail)
	}
	if isNilError(err) && zeroF != nil {
		if e := zeroF(); !isNilError(e) {
			if setter, ok := e.(MessageSetter); ok {
				setter.SetMessage(p.Detail)
				err = e
			}
		}
	}
	if isNilError(err) {
		return nil
	}

	if setter, ok := err.(DataSetter); ok {
		for k, v := range p.ExceptionData() {
			setter.SetData(k, v)
		}
	}
	return err
}

func isNilError(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Error is the fallback error of ToError. It keeps the whole problem.
type Error struct {
	problem *Problem
}

func NewError(p *Problem) *Error {
	if p == nil {
		p = Generic()
	}
	return &Error{problem: p}
}

func (e *Error) Error() string {
	return e.problem.DisplayMessage()
}

// Unwrap returns nil. The original error chain is not kept.
func (e *Error) Unwrap() error {
	return nil
}

func (e *Error) Problem() *Problem {
	return e.problem
}

// Data flattens the problem: the standard members, the error code, every
// validation field under "validation.<field>" with its messages joined by
// "; ", and the captured error data.
func (e *Error) Data() map[string]any {
	p := e.problem
	data := map[string]any{
		"title":  p.Title,
		"status": p.Status,
	}
	if p.Type != "" {
		data["type"] = p.Type
	}
	if p.Detail != "" {
		data["detail"] = p.Detail
	}
	if p.Instance != "" {
		data["instance"] = p.Instance
	}
	if code := p.ErrorCode(); code != "" {
		data[ErrorCodeKey] = code
	}
	if errs, ok := p.ValidationErrors(); ok {
		for _, field := range errs.Fields() {
			data["validation."+field] = errs.Joined(field)
		}
	}
	for k, v := range p.ExceptionData() {
		data[k] = v
	}
	return data
}
