package problem

import (
	"fmt"
	"maps"
	"strings"
)

// Reserved extension keys.
const (
	ErrorCodeKey        = "errorCode"
	ErrorTypeKey        = "errorType"
	ValidationErrorsKey = "validationErrors"
	ExceptionTypeKey    = "exceptionType"
	ExceptionDataPrefix = "exception."
	ProblemsKey         = "problems"
	CanceledKey         = "canceled"
)

// Problem is a structured failure description. The zero value is usable;
// Extensions is allocated on first write.
//
// Extensions never shadow a standard member: SetExtension ignores such
// keys and the JSON and YAML codecs skip any that were written into the
// map directly.
//
// Setters mutate the receiver in place. Callers sharing one Problem across
// goroutines while calling them must serialize that access.
type Problem struct {
	Type       string
	Title      string
	Status     int
	Detail     string
	Instance   string
	Extensions map[string]any
}

type Option func(p *Problem)

func WithType(typ string) Option {
	return func(p *Problem) {
		p.Type = typ
	}
}

func WithInstance(instance string) Option {
	return func(p *Problem) {
		p.Instance = instance
	}
}

// WithExtension sets a single extension entry at construction time.
func WithExtension(key string, value any) Option {
	return func(p *Problem) {
		p.SetExtension(key, value)
	}
}

// New creates a problem from raw fields with an empty extension bag.
func New(title, detail string, status int, opts ...Option) *Problem {
	p := &Problem{
		Title:      title,
		Detail:     detail,
		Status:     status,
		Extensions: map[string]any{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Clone returns a shallow copy with its own extension map.
func (p *Problem) Clone() *Problem {
	if p == nil {
		return nil
	}
	c := *p
	c.Extensions = make(map[string]any, len(p.Extensions))
	maps.Copy(c.Extensions, p.Extensions)
	return &c
}

// WithExtensions returns a copy of p where every key of additional
// overwrites the copy's entry. Standard member names are skipped as in
// SetExtension.
func (p *Problem) WithExtensions(additional map[string]any) *Problem {
	c := p.Clone()
	if c == nil {
		c = New("", "", 0)
	}
	for k, v := range additional {
		c.SetExtension(k, v)
	}
	return c
}

// SetExtension stores value under key. Keys named like a standard member
// (type, title, status, detail, instance) are ignored; set the field.
func (p *Problem) SetExtension(key string, value any) {
	if isStandardMember(key) {
		return
	}
	if p.Extensions == nil {
		p.Extensions = map[string]any{}
	}
	p.Extensions[key] = value
}

func (p *Problem) RemoveExtension(key string) {
	delete(p.Extensions, key)
}

func (p *Problem) LookupExtension(key string) (any, bool) {
	if p == nil || p.Extensions == nil {
		return nil, false
	}
	v, ok := p.Extensions[key]
	return v, ok
}

// Extension reads key and reports whether it holds a T. Absent keys and
// values of another type yield the zero T and false.
func Extension[T any](p *Problem, key string) (T, bool) {
	var zero T
	v, ok := p.LookupExtension(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// String renders "Title: Detail (status)" skipping empty parts.
func (p *Problem) String() string {
	if p == nil {
		return "<nil problem>"
	}

	var b strings.Builder
	b.WriteString(p.Title)
	if p.Detail != "" && p.Detail != p.Title {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(p.Detail)
	}
	if p.Status != 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "(%d)", p.Status)
	}
	if b.Len() == 0 {
		return GenericMessage
	}
	return b.String()
}
