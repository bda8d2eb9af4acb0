package rop

import (
	stderrors "errors"
	"reflect"

	"github.com/pkg/errors"
)

var (
	ErrNilArgument     = stderrors.New("nil argument")
	ErrInvalidEncoding = stderrors.New("invalid encoding")
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// JoinErrors folds the error list produced by Flatten into a single error.
func JoinErrors[A any](r Result[A, []error]) Result[A, error] {
	return MapError(r, func(errs []error) error {
		return stderrors.Join(errs...)
	})
}

// mustNotBeNil panics with an ErrNilArgument when a required argument is
// missing. Such a call is a programming error, not a Result failure.
func mustNotBeNil(op, name string, v any) {
	if IsNil(v) {
		panic(errors.Wrapf(ErrNilArgument, "%s: %s", op, name))
	}
}
