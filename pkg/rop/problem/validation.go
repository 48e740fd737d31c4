package problem

import (
	"maps"
	"net/http"
	"slices"
	"strings"
)

// FieldError is a single field/message pair.
type FieldError struct {
	Field   string
	Message string
}

func Field(field, message string) FieldError {
	return FieldError{Field: field, Message: message}
}

// ValidationErrors maps a field name to its messages in insertion order.
type ValidationErrors map[string][]string

func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Fields returns the field names sorted.
func (v ValidationErrors) Fields() []string {
	return slices.Sorted(maps.Keys(v))
}

func (v ValidationErrors) Clone() ValidationErrors {
	out := make(ValidationErrors, len(v))
	for k, msgs := range v {
		out[k] = slices.Clone(msgs)
	}
	return out
}

// Joined renders the messages of one field separated by "; ".
func (v ValidationErrors) Joined(field string) string {
	return strings.Join(v[field], "; ")
}

// Validation creates a validation problem. Repeated fields accumulate
// their messages in order.
func Validation(fields ...FieldError) *Problem {
	errs := ValidationErrors{}
	for _, f := range fields {
		errs.Add(f.Field, f.Message)
	}
	return validationFrom(errs)
}

// MergeValidation unions the validation errors of several problems.
// Messages of the same field accumulate in argument order.
func MergeValidation(problems ...*Problem) *Problem {
	errs := ValidationErrors{}
	for _, p := range problems {
		v, ok := p.ValidationErrors()
		if !ok {
			continue
		}
		for _, field := range v.Fields() {
			for _, msg := range v[field] {
				errs.Add(field, msg)
			}
		}
	}
	return validationFrom(errs)
}

func validationFrom(errs ValidationErrors) *Problem {
	p := New(ValidationTitle, ValidationDetail, http.StatusBadRequest, WithType(ValidationType))
	p.SetExtension(ValidationErrorsKey, errs)
	return p
}

// ValidationErrors returns a copy of the field messages. The boolean is
// false when p is not a validation problem.
func (p *Problem) ValidationErrors() (ValidationErrors, bool) {
	v, ok := p.LookupExtension(ValidationErrorsKey)
	if !ok {
		return nil, false
	}
	errs, ok := toValidationErrors(v)
	if !ok || len(errs) == 0 {
		return nil, false
	}
	return errs, true
}

func (p *Problem) IsValidation() bool {
	_, ok := p.ValidationErrors()
	return ok
}

// toValidationErrors accepts the live type as well as the shapes produced
// by JSON and YAML decoding.
func toValidationErrors(v any) (ValidationErrors, bool) {
	switch t := v.(type) {
	case ValidationErrors:
		return t.Clone(), true
	case map[string][]string:
		return ValidationErrors(t).Clone(), true
	case map[string]string:
		out := make(ValidationErrors, len(t))
		for k, msg := range t {
			out[k] = []string{msg}
		}
		return out, true
	case map[string]any:
		out := make(ValidationErrors, len(t))
		for k, raw := range t {
			switch msgs := raw.(type) {
			case string:
				out[k] = []string{msgs}
			case []string:
				out[k] = slices.Clone(msgs)
			case []any:
				for _, m := range msgs {
					if s, ok := m.(string); ok {
						out.Add(k, s)
					}
				}
			default:
				return nil, false
			}
		}
		return out, true
	}
	return nil, false
}
