package problem

import (
	"fmt"
	"net/http"
)

const (
	StatusTypeBase = "https://httpstatuses.io/"

	ValidationType  = "https://tools.ietf.org/html/rfc7231#section-6.5.1"
	ValidationTitle = "Validation Failed"

	AggregateTitle  = "Multiple errors occurred"
	AggregateDetail = "Several operations failed; see the problems extension."

	// StatusClientClosedRequest is used for canceled work.
	StatusClientClosedRequest = 499
	CanceledTitle             = "Operation Canceled"
)

// Default detail text for the sugar constructors.
const (
	NotFoundDetail     = "The requested resource was not found."
	UnauthorizedDetail = "Authentication is required to access this resource."
	ForbiddenDetail    = "You do not have permission to access this resource."
	ValidationDetail   = "One or more validation errors occurred."
)

// StatusTitle returns the canonical name of an HTTP-like status code.
func StatusTitle(status int) string {
	if status == StatusClientClosedRequest {
		return "Client Closed Request"
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "Unknown Status"
}

func StatusType(status int) string {
	return fmt.Sprintf("%s%d", StatusTypeBase, status)
}

// FromStatus creates a problem titled after the status code.
func FromStatus(status int, detail ...string) *Problem {
	return New(StatusTitle(status), firstOr(detail, ""), status, WithType(StatusType(status)))
}

func NotFound(detail ...string) *Problem {
	return FromStatus(http.StatusNotFound, firstOr(detail, NotFoundDetail))
}

func Unauthorized(detail ...string) *Problem {
	return FromStatus(http.StatusUnauthorized, firstOr(detail, UnauthorizedDetail))
}

func Forbidden(detail ...string) *Problem {
	return FromStatus(http.StatusForbidden, firstOr(detail, ForbiddenDetail))
}

// Canceled describes work abandoned because its context ended.
func Canceled(err error) *Problem {
	p := FromError(err, StatusClientClosedRequest)
	p.Title = CanceledTitle
	p.Type = StatusType(StatusClientClosedRequest)
	p.SetExtension(CanceledKey, true)
	return p
}

func (p *Problem) IsCanceled() bool {
	v, ok := Extension[bool](p, CanceledKey)
	return ok && v
}

// Aggregate wraps several problems into one with status 500. The members
// are kept in order under the problems extension.
func Aggregate(problems ...*Problem) *Problem {
	members := make([]*Problem, 0, len(problems))
	for _, m := range problems {
		if m == nil {
			m = Generic()
		}
		members = append(members, m)
	}
	p := New(AggregateTitle, AggregateDetail, http.StatusInternalServerError,
		WithType(StatusType(http.StatusInternalServerError)))
	p.SetExtension(ProblemsKey, members)
	return p
}

// Problems returns the members of an aggregate problem. Arrays that went
// through a JSON or YAML round trip are decoded back into problems.
func (p *Problem) Problems() []*Problem {
	v, ok := p.LookupExtension(ProblemsKey)
	if !ok {
		return nil
	}

	switch t := v.(type) {
	case []*Problem:
		return append([]*Problem(nil), t...)
	case []Problem:
		out := make([]*Problem, 0, len(t))
		for i := range t {
			out = append(out, &t[i])
		}
		return out
	case []any:
		out := make([]*Problem, 0, len(t))
		for _, item := range t {
			switch m := item.(type) {
			case *Problem:
				out = append(out, m)
			case map[string]any:
				out = append(out, fromMap(m))
			}
		}
		return out
	}
	return nil
}

// Generic is substituted wherever a failure without a problem needs one.
func Generic() *Problem {
	return New(StatusTitle(http.StatusInternalServerError), GenericMessage, http.StatusInternalServerError,
		WithType(StatusType(http.StatusInternalServerError)))
}

func firstOr(values []string, fallback string) string {
	if len(values) > 0 && values[0] != "" {
		return values[0]
	}
	return fallback
}
