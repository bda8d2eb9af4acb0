package rop_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/result/pkg/rop"
	"github.com/ib-77/result/pkg/rop/ropassert"
)

func TestMap(t *testing.T) {
	t.Parallel()

	double := func(v int) int { return v * 2 }

	ropassert.Result(t, rop.Map(rop.Ok[int, string](4), double)).IsOkAnd().IsEqualTo(8)
	ropassert.Result(t, rop.Map(rop.Error[int]("e"), double)).IsErrorAnd().IsEqualTo("e")
}

func TestMap_Identity(t *testing.T) {
	t.Parallel()

	identity := func(v int) int { return v }
	for _, r := range []rop.Result[int, string]{rop.Ok[int, string](1), rop.Error[int]("e")} {
		assert.Equal(t, r, rop.Map(r, identity))
	}
}

func TestMap_ChangesType(t *testing.T) {
	t.Parallel()

	r := rop.Map(rop.Ok[int, error](42), strconv.Itoa)
	ropassert.Result(t, r).IsOkAnd().IsEqualTo("42")
}

func TestMapError(t *testing.T) {
	t.Parallel()

	wrap := func(e string) error { return errors.New("wrapped: " + e) }

	ropassert.Result(t, rop.MapError(rop.Ok[int, string](1), wrap)).IsOkAnd().IsEqualTo(1)
	ropassert.Result(t, rop.MapError(rop.Error[int]("e"), wrap)).IsErrorAnd().
		Satisfies(func(err error) bool { return err.Error() == "wrapped: e" })
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	half := func(v int) rop.Result[int, string] {
		if v%2 != 0 {
			return rop.Error[int]("odd")
		}
		return rop.Ok[int, string](v / 2)
	}

	ropassert.Result(t, rop.FlatMap(rop.Ok[int, string](8), half)).IsOkAnd().IsEqualTo(4)
	ropassert.Result(t, rop.FlatMap(rop.Ok[int, string](3), half)).IsErrorAnd().IsEqualTo("odd")
}

func TestFlatMap_ShortCircuit(t *testing.T) {
	t.Parallel()

	called := false
	r := rop.FlatMap(rop.Error[int]("first"), func(v int) rop.Result[string, string] {
		called = true
		return rop.Ok[string, string]("never")
	})

	ropassert.Result(t, r).IsErrorAnd().IsEqualTo("first")
	assert.False(t, called, "next must not run after an Error")
}

func TestFlatMapEither_Ok(t *testing.T) {
	t.Parallel()

	r := rop.FlatMapEither(rop.Ok[string, string]("value"), func(string) rop.Result[string, int] {
		return rop.Ok[string, int]("ok")
	})

	ropassert.Result(t, r).IsOkAnd().IsEqualTo("ok")
}

func TestFlatMapEither_NextFails(t *testing.T) {
	t.Parallel()

	r := rop.FlatMapEither(rop.Ok[string, string]("value"), func(string) rop.Result[string, int] {
		return rop.Error[string](404)
	})

	ropassert.IsEitherErrorAnd(ropassert.Result(t, r)).IsRightAnd().IsEqualTo(404)
}

func TestFlatMapEither_ExistingError(t *testing.T) {
	t.Parallel()

	called := false
	r := rop.FlatMapEither(rop.Error[string]("error"), func(string) rop.Result[string, int] {
		called = true
		return rop.Ok[string, int]("ok")
	})

	ropassert.IsEitherErrorAnd(ropassert.Result(t, r)).IsLeftAnd().IsEqualTo("error")
	assert.False(t, called)
}

func TestFlatMapEither_Chained(t *testing.T) {
	t.Parallel()

	parse := func(s string) rop.Result[int, error] { return rop.FromPair(strconv.Atoi(s)) }
	positive := func(v int) rop.Result[int, string] {
		if v <= 0 {
			return rop.Error[int]("not positive")
		}
		return rop.Ok[int, string](v)
	}

	r := rop.FlatMapEither(parse("-3"), positive)
	ropassert.IsEitherErrorAnd(ropassert.Result(t, r)).IsRightAnd().IsEqualTo("not positive")

	r = rop.FlatMapEither(parse("x"), positive)
	ropassert.IsEitherErrorAnd(ropassert.Result(t, r)).IsLeftAnd().
		Satisfies(func(err error) bool { return errors.Is(err, strconv.ErrSyntax) })
}

func TestResolve(t *testing.T) {
	t.Parallel()

	describe := func(r rop.Result[int, string]) string { return "got " + r.String() }

	assert.Equal(t, "got Ok(1)", rop.Resolve(rop.Ok[int, string](1), describe))
	assert.Equal(t, "got Error(e)", rop.Resolve(rop.Error[int]("e"), describe))
}

func TestFold(t *testing.T) {
	t.Parallel()

	okCalls, errCalls := 0, 0
	onOk := func(v int) string { okCalls++; return strconv.Itoa(v) }
	onError := func(e string) string { errCalls++; return "error: " + e }

	assert.Equal(t, "7", rop.Fold(rop.Ok[int, string](7), onOk, onError))
	assert.Equal(t, "error: e", rop.Fold(rop.Error[int]("e"), onOk, onError))
	assert.Equal(t, 1, okCalls)
	assert.Equal(t, 1, errCalls)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	mixed := []rop.Result[int, string]{
		rop.Ok[int, string](1),
		rop.Error[int]("a"),
		rop.Ok[int, string](2),
		rop.Error[int]("b"),
	}
	ropassert.Result(t, rop.Flatten(mixed)).IsErrorAnd().IsEqualTo([]string{"a", "b"})

	allOk := []rop.Result[int, string]{rop.Ok[int, string](1), rop.Ok[int, string](2)}
	ropassert.Result(t, rop.Flatten(allOk)).IsOkAnd().IsEqualTo([]int{1, 2})

	ropassert.Result(t, rop.Flatten([]rop.Result[int, string]{})).IsOkAnd().IsEqualTo([]int{})
	ropassert.Result(t, rop.Flatten[int, string](nil)).IsOkAnd().IsEqualTo([]int{})
}

func TestJoinErrors(t *testing.T) {
	t.Parallel()

	errA, errB := errors.New("a"), errors.New("b")
	flat := rop.Flatten([]rop.Result[int, error]{rop.Error[int](errA), rop.Ok[int, error](1), rop.Error[int](errB)})

	joined := rop.JoinErrors(flat)
	require.True(t, joined.IsError())
	assert.ErrorIs(t, joined.Err(), errA)
	assert.ErrorIs(t, joined.Err(), errB)
	assert.Equal(t, []error{errA, errB}, rop.GetErrors(joined.Err()))
}

func TestNilArgumentsPanic(t *testing.T) {
	t.Parallel()

	ok := rop.Ok[int, string](1)
	left := rop.Left[int, string](1)
	always := func(int) bool { return true }

	cases := []struct {
		want string
		call func()
	}{
		{"Map: onOk", func() { rop.Map[int, string, int](ok, nil) }},
		{"MapError: onError", func() { rop.MapError[int, string, int](ok, nil) }},
		{"FlatMap: next", func() { rop.FlatMap[int, string, int](ok, nil) }},
		{"FlatMapEither: next", func() { rop.FlatMapEither[int, string, int, int](ok, nil) }},
		{"Resolve: resolver", func() { rop.Resolve[int, string, int](ok, nil) }},
		{"Fold: onOk", func() { rop.Fold[int, string, int](ok, nil, func(string) int { return 0 }) }},
		{"Fold: onError", func() { rop.Fold[int, string, int](ok, func(int) int { return 0 }, nil) }},
		{"Filter: predicate", func() { ok.Filter(nil, func() string { return "" }) }},
		{"Filter: errorSupplier", func() { ok.Filter(always, nil) }},
		{"FilterWith: predicate", func() { ok.FilterWith(nil, func(int) string { return "" }) }},
		{"FilterWith: okToError", func() { ok.FilterWith(always, nil) }},
		{"Run: consumer", func() { ok.Run(nil) }},
		{"RunError: consumer", func() { ok.RunError(nil) }},
		{"ConsumeErrorWith: consumer", func() { ok.ConsumeErrorWith(nil) }},
		{"Recover: recovery", func() { ok.Recover(nil) }},
		{"FromOptional: errorSupplier", func() { rop.FromOptional[int, string](rop.Some(1), nil) }},
		{"Try: f", func() { rop.Try[int](nil) }},
		{"MapLeft: onLeft", func() { rop.MapLeft[int, string, int](left, nil) }},
		{"MapRight: onRight", func() { rop.MapRight[int, string, int](left, nil) }},
		{"FoldEither: onLeft", func() { rop.FoldEither[int, string, int](left, nil, func(string) int { return 0 }) }},
		{"FoldEither: onRight", func() { rop.FoldEither[int, string, int](left, func(int) int { return 0 }, nil) }},
		{"WhenSome: f", func() { rop.Some(1).WhenSome(nil) }},
	}

	for _, c := range cases {
		assert.PanicsWithError(t, c.want+": nil argument", c.call, c.want)
	}
}
