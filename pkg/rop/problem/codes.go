package problem

import (
	"fmt"
	"net/http"
	"reflect"
)

// ErrorCode returns the stored error code or "".
func (p *Problem) ErrorCode() string {
	code, _ := Extension[string](p, ErrorCodeKey)
	return code
}

// SetErrorCode stores code; an empty code removes the entry.
func (p *Problem) SetErrorCode(code string) {
	if code == "" {
		p.RemoveExtension(ErrorCodeKey)
		return
	}
	p.SetExtension(ErrorCodeKey, code)
}

// FromCode creates a domain problem from an enum-like code. Title and
// ErrorCode equal code.String(); the code's type name is kept under
// errorType. Status defaults to 400.
func FromCode(code fmt.Stringer, detail string, status ...int) *Problem {
	st := http.StatusBadRequest
	if len(status) > 0 {
		st = status[0]
	}

	name := code.String()
	p := New(name, detail, st, WithType(StatusType(st)))
	p.SetErrorCode(name)
	if short, _ := typeNames(code); short != "" {
		p.SetExtension(ErrorTypeKey, short)
	}
	return p
}

func (p *Problem) HasErrorCode(code fmt.Stringer) bool {
	stored := p.ErrorCode()
	return stored != "" && stored == code.String()
}

// ErrorCodeAs parses the stored error code against the given members of
// an enum. No member matching yields the zero E and false.
func ErrorCodeAs[E fmt.Stringer](p *Problem, members ...E) (E, bool) {
	var zero E
	stored := p.ErrorCode()
	if stored == "" {
		return zero, false
	}
	for _, m := range members {
		if m.String() == stored {
			return m, true
		}
	}
	return zero, false
}

// typeNames returns the short and the package-qualified name of v's type,
// with pointers dereferenced.
func typeNames(v any) (short, qualified string) {
	if v == nil {
		return "", ""
	}
	return namesOf(reflect.TypeOf(v))
}

func namesOf(t reflect.Type) (short, qualified string) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	short = t.Name()
	if short == "" {
		short = t.String()
	}
	if t.PkgPath() == "" {
		return short, t.String()
	}
	return short, t.PkgPath() + "." + short
}
