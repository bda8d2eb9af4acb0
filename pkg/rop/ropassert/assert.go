package ropassert

import (
	"github.com/stretchr/testify/require"

	"github.com/ib-77/result/pkg/rop"
)

type tHelper interface {
	Helper()
}

// ValueAssert wraps a payload extracted from a sum type. It is inert once an
// earlier check in the chain has failed.
type ValueAssert[T any] struct {
	t      require.TestingT
	value  T
	failed bool
}

func Value[T any](t require.TestingT, v T) *ValueAssert[T] {
	return &ValueAssert[T]{t: t, value: v}
}

func failedValue[T any](t require.TestingT) *ValueAssert[T] {
	return &ValueAssert[T]{t: t, failed: true}
}

// Value returns the wrapped payload.
func (a *ValueAssert[T]) Value() T {
	return a.value
}

func (a *ValueAssert[T]) IsEqualTo(expected T, msgAndArgs ...interface{}) *ValueAssert[T] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	if !a.failed {
		require.Equal(a.t, expected, a.value, msgAndArgs...)
	}
	return a
}

func (a *ValueAssert[T]) IsNotEqualTo(unexpected T, msgAndArgs ...interface{}) *ValueAssert[T] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	if !a.failed {
		require.NotEqual(a.t, unexpected, a.value, msgAndArgs...)
	}
	return a
}

func (a *ValueAssert[T]) Satisfies(predicate func(T) bool) *ValueAssert[T] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	if !a.failed {
		require.Truef(a.t, predicate(a.value), "value %#v does not satisfy predicate", a.value)
	}
	return a
}

type ResultAssert[A, E any] struct {
	t      require.TestingT
	actual rop.Result[A, E]
}

func Result[A, E any](t require.TestingT, actual rop.Result[A, E]) *ResultAssert[A, E] {
	return &ResultAssert[A, E]{t: t, actual: actual}
}

func (a *ResultAssert[A, E]) IsOk() *ResultAssert[A, E] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	a.expectOk()
	return a
}

func (a *ResultAssert[A, E]) IsError() *ResultAssert[A, E] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	a.expectError()
	return a
}

// IsOkAnd asserts Ok and returns the value for further checks.
func (a *ResultAssert[A, E]) IsOkAnd() *ValueAssert[A] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	if !a.expectOk() {
		return failedValue[A](a.t)
	}
	return Value(a.t, a.actual.Value())
}

// IsErrorAnd asserts Error and returns the error for further checks.
func (a *ResultAssert[A, E]) IsErrorAnd() *ValueAssert[E] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	if !a.expectError() {
		return failedValue[E](a.t)
	}
	return Value(a.t, a.actual.Err())
}

func (a *ResultAssert[A, E]) expectOk() bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	if a.actual.IsError() {
		require.Fail(a.t, "expected result to be Ok, but was "+a.actual.String())
		return false
	}
	return true
}

func (a *ResultAssert[A, E]) expectError() bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	if a.actual.IsOk() {
		require.Fail(a.t, "expected result to be Error, but was "+a.actual.String())
		return false
	}
	return true
}

// IsEitherErrorAnd asserts that a result produced by rop.FlatMapEither is an
// Error and continues with an assertion on the widened Either error.
func IsEitherErrorAnd[A, L, R any](a *ResultAssert[A, rop.Either[L, R]]) *EitherAssert[L, R] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	if !a.expectError() {
		return &EitherAssert[L, R]{t: a.t, failed: true}
	}
	return Either(a.t, a.actual.Err())
}

type EitherAssert[L, R any] struct {
	t      require.TestingT
	actual rop.Either[L, R]
	failed bool
}

func Either[L, R any](t require.TestingT, actual rop.Either[L, R]) *EitherAssert[L, R] {
	return &EitherAssert[L, R]{t: t, actual: actual}
}

func (a *EitherAssert[L, R]) IsLeft() *EitherAssert[L, R] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	a.expectLeft()
	return a
}

func (a *EitherAssert[L, R]) IsRight() *EitherAssert[L, R] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	a.expectRight()
	return a
}

func (a *EitherAssert[L, R]) IsLeftAnd() *ValueAssert[L] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	if !a.expectLeft() {
		return failedValue[L](a.t)
	}
	return Value(a.t, a.actual.Left())
}

func (a *EitherAssert[L, R]) IsRightAnd() *ValueAssert[R] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	if !a.expectRight() {
		return failedValue[R](a.t)
	}
	return Value(a.t, a.actual.Right())
}

func (a *EitherAssert[L, R]) expectLeft() bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	if a.failed {
		return false
	}
	if a.actual.IsRight() {
		require.Fail(a.t, "expected either to be Left, but was "+a.actual.String())
		return false
	}
	return true
}

func (a *EitherAssert[L, R]) expectRight() bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	if a.failed {
		return false
	}
	if a.actual.IsLeft() {
		require.Fail(a.t, "expected either to be Right, but was "+a.actual.String())
		return false
	}
	return true
}

type OptionAssert[T any] struct {
	t      require.TestingT
	actual rop.Option[T]
}

func Option[T any](t require.TestingT, actual rop.Option[T]) *OptionAssert[T] {
	return &OptionAssert[T]{t: t, actual: actual}
}

func (a *OptionAssert[T]) IsNone() *OptionAssert[T] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	if a.actual.IsSome() {
		require.Fail(a.t, "expected option to be None, but was "+a.actual.String())
	}
	return a
}

// IsSome asserts a present value and returns it for further checks.
func (a *OptionAssert[T]) IsSome() *ValueAssert[T] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	v, ok := a.actual.Get()
	if !ok {
		require.Fail(a.t, "expected option to be Some, but was None")
		return failedValue[T](a.t)
	}
	return Value(a.t, v)
}

func (a *OptionAssert[T]) Contains(expected T) *OptionAssert[T] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	a.IsSome().IsEqualTo(expected)
	return a
}
