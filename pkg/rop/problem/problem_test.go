package problem

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderCode int

const (
	orderUnknown orderCode = iota
	orderInvalidInput
	orderOutOfStock
)

func (c orderCode) String() string {
	switch c {
	case orderInvalidInput:
		return "InvalidInput"
	case orderOutOfStock:
		return "OutOfStock"
	default:
		return "Unknown"
	}
}

func TestNew_EmptyExtensions(t *testing.T) {
	t.Parallel()

	p := New("Conflict", "already exists", http.StatusConflict,
		WithType("urn:conflict"), WithInstance("/orders/7"))

	require.NotNil(t, p.Extensions)
	assert.Empty(t, p.Extensions)
	assert.Equal(t, "urn:conflict", p.Type)
	assert.Equal(t, "/orders/7", p.Instance)
	assert.Equal(t, http.StatusConflict, p.Status)
}

func TestFromStatus(t *testing.T) {
	t.Parallel()

	p := FromStatus(http.StatusNotFound, "order 7")

	assert.Equal(t, "Not Found", p.Title)
	assert.Equal(t, "https://httpstatuses.io/404", p.Type)
	assert.Equal(t, "order 7", p.Detail)
	assert.Equal(t, http.StatusNotFound, p.Status)
}

func TestSugarConstructors_DefaultDetail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		p      *Problem
		status int
		detail string
	}{
		{"not found", NotFound(), http.StatusNotFound, NotFoundDetail},
		{"unauthorized", Unauthorized(), http.StatusUnauthorized, UnauthorizedDetail},
		{"forbidden", Forbidden(), http.StatusForbidden, ForbiddenDetail},
		{"custom detail", NotFound("no order 7"), http.StatusNotFound, "no order 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.p.Status)
			assert.Equal(t, tt.detail, tt.p.Detail)
		})
	}
}

func TestFromCode(t *testing.T) {
	t.Parallel()

	p := FromCode(orderInvalidInput, "quantity must be positive")

	assert.Equal(t, "InvalidInput", p.Title)
	assert.Equal(t, "InvalidInput", p.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, p.Status)
	typ, ok := Extension[string](p, ErrorTypeKey)
	require.True(t, ok)
	assert.Equal(t, "orderCode", typ)

	assert.Equal(t, http.StatusConflict, FromCode(orderOutOfStock, "", http.StatusConflict).Status)
}

func TestErrorCode_SetAndRemove(t *testing.T) {
	t.Parallel()

	p := New("t", "d", 400)
	assert.Equal(t, "", p.ErrorCode())

	p.SetErrorCode("E42")
	assert.Equal(t, "E42", p.ErrorCode())

	p.SetErrorCode("")
	_, present := p.Extensions[ErrorCodeKey]
	assert.False(t, present, "empty code must remove the key")
}

func TestHasErrorCodeAndErrorCodeAs(t *testing.T) {
	t.Parallel()

	p := FromCode(orderOutOfStock, "")

	assert.True(t, p.HasErrorCode(orderOutOfStock))
	assert.False(t, p.HasErrorCode(orderInvalidInput))

	code, ok := ErrorCodeAs(p, orderUnknown, orderInvalidInput, orderOutOfStock)
	require.True(t, ok)
	assert.Equal(t, orderOutOfStock, code)

	p.SetErrorCode("NotAMember")
	code, ok = ErrorCodeAs(p, orderUnknown, orderInvalidInput, orderOutOfStock)
	assert.False(t, ok)
	assert.Equal(t, orderUnknown, code)
}

func TestValidation_Accumulates(t *testing.T) {
	t.Parallel()

	p := Validation(Field("f", "a"), Field("f", "b"), Field("g", "c"))

	assert.Equal(t, ValidationTitle, p.Title)
	assert.Equal(t, ValidationType, p.Type)
	assert.Equal(t, http.StatusBadRequest, p.Status)

	errs, ok := p.ValidationErrors()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, errs["f"])
	assert.Equal(t, []string{"c"}, errs["g"])
}

func TestValidationErrors_NotValidation(t *testing.T) {
	t.Parallel()

	errs, ok := FromStatus(500).ValidationErrors()
	assert.False(t, ok)
	assert.Nil(t, errs)
	assert.False(t, Validation().IsValidation(), "no fields means no validation errors")
}

func TestValidationErrors_ReturnsCopy(t *testing.T) {
	t.Parallel()

	p := Validation(Field("f", "a"))
	errs, _ := p.ValidationErrors()
	errs.Add("f", "mutated")

	again, _ := p.ValidationErrors()
	assert.Equal(t, []string{"a"}, again["f"])
}

func TestMergeValidation(t *testing.T) {
	t.Parallel()

	merged := MergeValidation(
		Validation(Field("name", "required")),
		FromStatus(500),
		Validation(Field("name", "too short"), Field("age", "negative")),
	)

	errs, ok := merged.ValidationErrors()
	require.True(t, ok)
	assert.Equal(t, []string{"required", "too short"}, errs["name"])
	assert.Equal(t, []string{"negative"}, errs["age"])
}

func TestWithExtensions_CopyLastWriteWins(t *testing.T) {
	t.Parallel()

	orig := New("t", "d", 400)
	orig.SetExtension("a", 1)
	orig.SetExtension("b", 2)

	c := orig.WithExtensions(map[string]any{"b": 20, "c": 30})

	assert.Equal(t, map[string]any{"a": 1, "b": 20, "c": 30}, c.Extensions)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, orig.Extensions)
	assert.Equal(t, orig.Title, c.Title)
}

func TestExtension_TypeChecked(t *testing.T) {
	t.Parallel()

	p := New("t", "d", 400)
	p.SetExtension("count", 3)

	n, ok := Extension[int](p, "count")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	s, ok := Extension[string](p, "count")
	assert.False(t, ok)
	assert.Equal(t, "", s)

	_, ok = Extension[int](p, "missing")
	assert.False(t, ok)

	var nilProblem *Problem
	_, ok = Extension[int](nilProblem, "count")
	assert.False(t, ok)
}

func TestDisplayMessage_Order(t *testing.T) {
	t.Parallel()

	coded := FromCode(orderOutOfStock, "detail text")

	assert.Equal(t, "Sold out", coded.DisplayMessage(WithMessages(map[string]string{"OutOfStock": "Sold out"})))
	assert.Equal(t, "first", coded.DisplayMessage(WithPairs(Pair{"OutOfStock", "first"}, Pair{"OutOfStock", "second"})))
	assert.Equal(t, "detail text", coded.DisplayMessage(WithResolver(func(string) (string, bool) { return "", false })))

	titleOnly := New("Only title", "", 400)
	assert.Equal(t, "Only title", titleOnly.DisplayMessage())

	empty := New("", "", 0)
	assert.Equal(t, "fallback", empty.DisplayMessage(WithDefault("fallback")))
	assert.Equal(t, GenericMessage, empty.DisplayMessage())
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	a := FromStatus(http.StatusUnauthorized)
	b := FromStatus(http.StatusForbidden)
	agg := Aggregate(a, b)

	assert.Equal(t, http.StatusInternalServerError, agg.Status)
	assert.Equal(t, AggregateTitle, agg.Title)
	members := agg.Problems()
	require.Len(t, members, 2)
	assert.Same(t, a, members[0])
	assert.Same(t, b, members[1])
}

func TestCanceled(t *testing.T) {
	t.Parallel()

	p := Canceled(errCanceledForTest)
	assert.True(t, p.IsCanceled())
	assert.Equal(t, StatusClientClosedRequest, p.Status)
	assert.Equal(t, CanceledTitle, p.Title)
	assert.False(t, FromStatus(500).IsCanceled())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Not Found: gone (404)", FromStatus(404, "gone").String())
	assert.Equal(t, GenericMessage, New("", "", 0).String())
}
