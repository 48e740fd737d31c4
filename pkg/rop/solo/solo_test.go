package solo

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/observe"
	"github.com/ib-77/railway/pkg/rop/problem"
)

type stockCode int

func (stockCode) String() string { return "OutOfStock" }

func TestMapAndBind_ShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := problem.NotFound()
	failed := rop.Fail[int](p)
	called := false

	m := Map(ctx, failed, func(ctx context.Context, v int) string {
		called = true
		return strconv.Itoa(v)
	})
	b := Bind(ctx, failed, func(ctx context.Context, v int) rop.Result[string] {
		called = true
		return rop.Success(strconv.Itoa(v))
	})

	assert.False(t, called)
	assert.Same(t, p, m.Problem())
	assert.Same(t, p, b.Problem())
}

func TestMapAndBind_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := Map(ctx, rop.Success(4), func(ctx context.Context, v int) int { return v * 2 })
	assert.Equal(t, 8, m.Value())

	b := Bind(ctx, m, func(ctx context.Context, v int) rop.Result[string] {
		return rop.Success(strconv.Itoa(v))
	})
	assert.Equal(t, "8", b.Value())

	u := Then(ctx, rop.Ok(), func(ctx context.Context) rop.Unit { return rop.FailNotFound[rop.Void]() })
	assert.Equal(t, http.StatusNotFound, u.Problem().Status)
}

func TestTap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []int
	in := rop.Success(3)
	out := Tap(ctx, in, func(ctx context.Context, v int) { seen = append(seen, v) })
	assert.Equal(t, in.Id(), out.Id())

	Tap(ctx, rop.Fail[int](nil), func(ctx context.Context, v int) { seen = append(seen, v) })
	TapIf(ctx, rop.Success(5), func(ctx context.Context, v int) bool { return v > 4 },
		func(ctx context.Context, v int) { seen = append(seen, v) })
	TapIf(ctx, rop.Success(1), func(ctx context.Context, v int) bool { return v > 4 },
		func(ctx context.Context, v int) { seen = append(seen, v) })
	assert.Equal(t, []int{3, 5}, seen)

	var titles []string
	TapError(ctx, rop.Fail[int](nil), func(ctx context.Context, p *problem.Problem) { titles = append(titles, p.Title) })
	TapError(ctx, rop.Success(1), func(ctx context.Context, p *problem.Problem) { titles = append(titles, p.Title) })
	assert.Equal(t, []string{"Internal Server Error"}, titles)
}

func TestDoubleTap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var branch string
	onSuccess := func(ctx context.Context, v int) { branch = "success" }
	onError := func(ctx context.Context, p *problem.Problem) { branch = "error" }
	onCancel := func(ctx context.Context, p *problem.Problem) { branch = "cancel" }

	DoubleTap(ctx, rop.Success(1), onSuccess, onError, onCancel)
	assert.Equal(t, "success", branch)
	DoubleTap(ctx, rop.Fail[int](nil), onSuccess, onError, onCancel)
	assert.Equal(t, "error", branch)
	DoubleTap(ctx, rop.Cancel[int](context.Canceled), onSuccess, onError, onCancel)
	assert.Equal(t, "cancel", branch)
}

func TestGuards(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	positive := func(ctx context.Context, v int) bool { return v > 0 }
	custom := problem.New("Negative", "value must be positive", http.StatusUnprocessableEntity)

	assert.True(t, Ensure(ctx, rop.Success(1), positive, custom).IsSuccess())
	assert.Same(t, custom, Ensure(ctx, rop.Success(-1), positive, custom).Problem())

	original := problem.Forbidden()
	assert.Same(t, original, Ensure(ctx, rop.Fail[int](original), positive, custom).Problem())

	coded := EnsureCode(ctx, rop.Success(-1), positive, stockCode(0))
	assert.Equal(t, "OutOfStock", coded.Problem().ErrorCode())
	assert.Equal(t, http.StatusBadRequest, coded.Problem().Status)

	where := Where(ctx, rop.Success(-1), positive, problem.Field("qty", "must be positive"))
	errs, ok := where.Problem().ValidationErrors()
	require.True(t, ok)
	assert.Equal(t, []string{"must be positive"}, errs["qty"])

	assert.Same(t, custom, FailIf(ctx, rop.Success(1), positive, custom).Problem())
	assert.True(t, FailIf(ctx, rop.Success(-1), positive, custom).IsSuccess())

	assert.True(t, OkIf(rop.Success(1), true, custom).IsSuccess())
	assert.Same(t, custom, OkIf(rop.Success(1), false, custom).Problem())
	assert.Same(t, original, OkIf(rop.Fail[int](original), false, custom).Problem())
}

func TestVerify(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := Verify(ctx, rop.Success(""), func(ctx context.Context, s string) bool { return s != "" }, "name present")
	require.True(t, r.HasProblem())
	assert.Contains(t, r.Problem().Title, "name present")

	ok := Verify(ctx, rop.Success("x"), func(ctx context.Context, s string) bool { return s != "" }, "name present")
	assert.True(t, ok.IsSuccess())
}

func TestCompensate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var got *problem.Problem
	alt := func(ctx context.Context, p *problem.Problem) rop.Result[int] {
		got = p
		return rop.Success(99)
	}

	nf := problem.NotFound()
	assert.Equal(t, 99, Compensate(ctx, rop.Fail[int](nf), alt).Value())
	assert.Same(t, nf, got)

	got = nil
	assert.Equal(t, 1, Compensate(ctx, rop.Success(1), alt).Value())
	assert.Nil(t, got)

	assert.Equal(t, 7, CompensateWith(rop.Fail[int](nil), 7).Value())
	assert.Equal(t, 1, CompensateWith(rop.Success(1), 7).Value())
}

func TestFinallyAndMatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	action := func(ctx context.Context, r rop.Result[int]) { calls++ }
	in := rop.Fail[int](nil)
	assert.Equal(t, in.Id(), Finally(ctx, in, action).Id())
	Finally(ctx, rop.Success(1), action)
	assert.Equal(t, 2, calls)

	onSuccess := func(ctx context.Context, v int) string { return "ok " + strconv.Itoa(v) }
	onFailure := func(ctx context.Context, p *problem.Problem) string { return p.Title }

	assert.Equal(t, "ok 2", Match(ctx, rop.Success(2), onSuccess, onFailure))
	assert.Equal(t, "Internal Server Error", Match(ctx, rop.Fail[int](nil), onSuccess, onFailure))

	onCancel := func(ctx context.Context, p *problem.Problem) string { return "canceled" }
	assert.Equal(t, "canceled", Fold(ctx, rop.Cancel[int](context.Canceled), onSuccess, onFailure, onCancel))
}

func TestTryAndCheck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parsed := Try(ctx, rop.Success("12"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	assert.Equal(t, 12, parsed.Value())

	bad := Try(ctx, rop.Success("x"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	require.True(t, bad.HasProblem())
	assert.Equal(t, "NumError", bad.Problem().Title)

	panicked := Try(ctx, rop.Success(1), func(ctx context.Context, v int) (int, error) {
		panic("broken")
	})
	require.True(t, panicked.HasProblem())
	assert.Equal(t, http.StatusInternalServerError, panicked.Problem().Status)

	in := rop.Success(3)
	assert.Equal(t, in.Id(), Check(ctx, in, func(ctx context.Context, v int) error { return nil }).Id())

	checked := Check(ctx, in, func(ctx context.Context, v int) error { return errors.New("too small") })
	assert.Equal(t, "too small", checked.Problem().Detail)

	failed := rop.Fail[int](problem.Forbidden())
	called := false
	Check(ctx, failed, func(ctx context.Context, v int) error { called = true; return nil })
	assert.False(t, called)

	assert.Equal(t, "nope", FailOnError(ctx, in, func(ctx context.Context, v int) error {
		return errors.New("nope")
	}).Problem().Detail)
}

func TestSwitchFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cases := []Case[int, string]{
		On(func(ctx context.Context, v int) bool { return v < 0 },
			func(ctx context.Context, v int) rop.Result[string] { return rop.Success("negative") }),
		On(func(ctx context.Context, v int) bool { return v > 100 },
			func(ctx context.Context, v int) rop.Result[string] { return rop.Success("large") }),
		On(func(ctx context.Context, v int) bool { return v > 10 },
			func(ctx context.Context, v int) rop.Result[string] { return rop.Success("medium") }),
	}

	assert.Equal(t, "large", SwitchFirst(ctx, rop.Success(500), cases...).Value())
	assert.Equal(t, "negative", SwitchFirst(ctx, rop.Success(-1), cases...).Value())

	none := SwitchFirst(ctx, rop.Success(5), cases...)
	require.True(t, none.HasProblem())
	assert.Equal(t, NoConditionTitle, none.Problem().Title)

	nf := problem.NotFound()
	assert.Same(t, nf, SwitchFirst(ctx, rop.Fail[int](nf), cases...).Problem())
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	notEmpty := func(ctx context.Context, s string) (bool, string) { return s != "", "must not be empty" }
	assert.True(t, Validate(ctx, "x", notEmpty).IsSuccess())

	r := Validate(ctx, "", notEmpty)
	errs, ok := r.Problem().ValidationErrors()
	require.True(t, ok)
	assert.Equal(t, []string{"must not be empty"}, errs[rop.DefaultInvalidKey])

	short := func(ctx context.Context, s string) rop.Result[string] {
		if len(s) > 3 {
			return rop.InvalidField[string]("name", "too long")
		}
		return rop.Success(s)
	}
	lower := func(ctx context.Context, s string) rop.Result[string] {
		if s != "" && s[0] >= 'A' && s[0] <= 'Z' {
			return rop.InvalidField[string]("name", "must be lower case")
		}
		return rop.Success(s)
	}

	all := ValidateAll(ctx, rop.Success("Alice"), false, short, lower)
	errs, ok = all.Problem().ValidationErrors()
	require.True(t, ok)
	assert.Equal(t, []string{"too long", "must be lower case"}, errs["name"])

	first := ValidateAll(ctx, rop.Success("Alice"), true, short, lower)
	errs, _ = first.Problem().ValidationErrors()
	assert.Equal(t, []string{"too long"}, errs["name"])

	assert.True(t, ValidateAll(ctx, rop.Success("bob"), false, short, lower).IsSuccess())
}

func TestReport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var got []observe.Outcome
	obs := observe.Func(func(ctx context.Context, o observe.Outcome) { got = append(got, o) })

	in := rop.FailNotFound[int]()
	assert.Equal(t, in.Id(), Report(ctx, in, obs).Id())
	Report(ctx, rop.Success(1), nil)

	require.Len(t, got, 1)
	assert.Equal(t, in.Id(), got[0].ID)
}
