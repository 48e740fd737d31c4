package problem

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalJSON_StableMemberOrder(t *testing.T) {
	t.Parallel()

	p := New("Not Found", "order 7", http.StatusNotFound, WithType("https://httpstatuses.io/404"), WithInstance("/orders/7"))
	p.SetExtension("zeta", 1)
	p.SetExtension("alpha", "a")

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"https://httpstatuses.io/404","title":"Not Found","status":404,"detail":"order 7","instance":"/orders/7","alpha":"a","zeta":1}`, string(data))
	assert.Equal(t,
		`{"type":"https://httpstatuses.io/404","title":"Not Found","status":404,"detail":"order 7","instance":"/orders/7","alpha":"a","zeta":1}`,
		string(data))
}

func TestJSON_ZeroStatusRoundTrip(t *testing.T) {
	t.Parallel()

	p := New("Unspecified", "no status", 0)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var members map[string]any
	require.NoError(t, json.Unmarshal(data, &members))
	assert.NotContains(t, members, "status")
	assert.Equal(t, "no status", members["detail"])

	var back Problem
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 0, back.Status)

	require.NoError(t, json.Unmarshal([]byte(`{"title":"x","status":null}`), &back))
	assert.Equal(t, 0, back.Status)
	assert.NotNil(t, back.Extensions)
}

func TestJSON_ExtensionsRoundTrip(t *testing.T) {
	t.Parallel()

	p := New("t", "d", 422)
	p.SetExtension("nested", map[string]any{"k": "v", "n": 2})
	p.SetExtension("list", []any{"a", 1, true})
	p.SetExtension("flag", true)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var back Problem
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 422, back.Status)
	assert.Equal(t, map[string]any{"k": "v", "n": float64(2)}, back.Extensions["nested"])
	assert.Equal(t, []any{"a", float64(1), true}, back.Extensions["list"])
	assert.Equal(t, true, back.Extensions["flag"])
}

func TestJSON_ValidationAndCodeSurvive(t *testing.T) {
	t.Parallel()

	p := Validation(Field("f", "a"), Field("f", "b"))
	p.SetErrorCode("BadInput")

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var back Problem
	require.NoError(t, json.Unmarshal(data, &back))

	errs, ok := back.ValidationErrors()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, errs["f"])
	assert.Equal(t, "BadInput", back.ErrorCode())
	assert.Equal(t, ValidationTitle, back.Title)
}

func TestJSON_AggregateMembersDecode(t *testing.T) {
	t.Parallel()

	agg := Aggregate(FromStatus(http.StatusUnauthorized), FromStatus(http.StatusForbidden))

	data, err := json.Marshal(agg)
	require.NoError(t, err)

	var back Problem
	require.NoError(t, json.Unmarshal(data, &back))

	members := back.Problems()
	require.Len(t, members, 2)
	assert.Equal(t, http.StatusUnauthorized, members[0].Status)
	assert.Equal(t, http.StatusForbidden, members[1].Status)
}

func TestSetExtension_RejectsStandardMembers(t *testing.T) {
	t.Parallel()

	p := New("t", "d", 400)
	p.SetExtension("status", 999)
	p.SetExtension("title", "other")
	assert.Empty(t, p.Extensions)

	c := p.WithExtensions(map[string]any{"detail": "x", "kept": 1})
	assert.Equal(t, map[string]any{"kept": 1}, c.Extensions)
	assert.Equal(t, "d", c.Detail)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var back Problem
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 400, back.Status)
}

func TestYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	p := Validation(Field("name", "required"))
	p.Instance = "/users"
	p.SetErrorCode("UserInvalid")

	data, err := yaml.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Validation Failed")

	var back Problem
	require.NoError(t, yaml.Unmarshal(data, &back))

	assert.Equal(t, http.StatusBadRequest, back.Status)
	assert.Equal(t, "/users", back.Instance)
	assert.Equal(t, "UserInvalid", back.ErrorCode())
	errs, ok := back.ValidationErrors()
	require.True(t, ok)
	assert.Equal(t, []string{"required"}, errs["name"])
}

func TestYAML_ZeroStatusOmitted(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(New("t", "", 0))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "status")

	var back Problem
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, 0, back.Status)
}
