package rop

import "fmt"

// Result holds exactly one of a success value (Ok) or an error value (Error).
// The zero Result is an Error carrying the zero E.
type Result[A, E any] struct {
	value A
	err   E
	isOk  bool
}

func Ok[A, E any](v A) Result[A, E] {
	return Result[A, E]{value: v, isOk: true}
}

func Error[A, E any](err E) Result[A, E] {
	return Result[A, E]{err: err}
}

// FromOptional returns Ok with the present value, or an Error built by
// errorSupplier when maybe is empty.
func FromOptional[A, E any](maybe Option[A], errorSupplier func() E) Result[A, E] {
	mustNotBeNil("FromOptional", "errorSupplier", errorSupplier)

	if v, ok := maybe.Get(); ok {
		return Ok[A, E](v)
	}
	return Error[A](errorSupplier())
}

// FromPair lifts a conventional (value, error) return into a Result.
func FromPair[A any](v A, err error) Result[A, error] {
	if err != nil {
		return Error[A](err)
	}
	return Ok[A, error](v)
}

// Try calls f and lifts its (value, error) return.
func Try[A any](f func() (A, error)) Result[A, error] {
	mustNotBeNil("Try", "f", f)
	return FromPair(f())
}

// FromEither treats Right as success and Left as failure.
func FromEither[A, E any](e Either[E, A]) Result[A, E] {
	if e.IsRight() {
		return Ok[A, E](e.Right())
	}
	return Error[A](e.Left())
}

// ToEither maps Ok to Right and Error to Left.
func ToEither[A, E any](r Result[A, E]) Either[E, A] {
	if r.isOk {
		return Right[E](r.value)
	}
	return Left[E, A](r.err)
}

func (r Result[A, E]) IsOk() bool {
	return r.isOk
}

func (r Result[A, E]) IsError() bool {
	return !r.isOk
}

// Value returns the success value, or the zero A for an Error.
func (r Result[A, E]) Value() A {
	return r.value
}

// Err returns the error value, or the zero E for an Ok.
func (r Result[A, E]) Err() E {
	return r.err
}

func (r Result[A, E]) Get() (A, E, bool) {
	return r.value, r.err, r.isOk
}

func (r Result[A, E]) Swap() Result[E, A] {
	if r.isOk {
		return Error[E](r.value)
	}
	return Ok[E, A](r.err)
}

// Run calls consumer with the value when r is Ok and returns r unchanged.
func (r Result[A, E]) Run(consumer func(A)) Result[A, E] {
	mustNotBeNil("Run", "consumer", consumer)

	if r.isOk {
		consumer(r.value)
	}
	return r
}

// RunError calls consumer with the error when r is Error and returns r
// unchanged.
func (r Result[A, E]) RunError(consumer func(E)) Result[A, E] {
	mustNotBeNil("RunError", "consumer", consumer)

	if !r.isOk {
		consumer(r.err)
	}
	return r
}

// Filter keeps an Ok whose value satisfies predicate and turns any other Ok
// into Error(errorSupplier()). Errors pass through.
func (r Result[A, E]) Filter(predicate func(A) bool, errorSupplier func() E) Result[A, E] {
	mustNotBeNil("Filter", "predicate", predicate)
	mustNotBeNil("Filter", "errorSupplier", errorSupplier)

	if !r.isOk || predicate(r.value) {
		return r
	}
	return Error[A](errorSupplier())
}

// FilterWith is Filter with the error derived from the rejected value.
func (r Result[A, E]) FilterWith(predicate func(A) bool, okToError func(A) E) Result[A, E] {
	mustNotBeNil("FilterWith", "predicate", predicate)
	mustNotBeNil("FilterWith", "okToError", okToError)

	if !r.isOk || predicate(r.value) {
		return r
	}
	return Error[A](okToError(r.value))
}

// ConsumeError drops the error, keeping only a success value.
func (r Result[A, E]) ConsumeError() Option[A] {
	if r.isOk {
		return Some(r.value)
	}
	return None[A]()
}

// ConsumeErrorWith is ConsumeError that hands the error to consumer before
// dropping it.
func (r Result[A, E]) ConsumeErrorWith(consumer func(E)) Option[A] {
	mustNotBeNil("ConsumeErrorWith", "consumer", consumer)

	if r.isOk {
		return Some(r.value)
	}
	consumer(r.err)
	return None[A]()
}

// Recover always yields an A: the Ok value, or recovery applied to the error.
func (r Result[A, E]) Recover(recovery func(E) A) A {
	mustNotBeNil("Recover", "recovery", recovery)

	if r.isOk {
		return r.value
	}
	return recovery(r.err)
}

// Or returns r when it is Ok, otherwise the first Ok among alternatives. When
// every candidate failed the first failure is returned.
func (r Result[A, E]) Or(alternatives ...Result[A, E]) Result[A, E] {
	if r.isOk {
		return r
	}
	for _, alt := range alternatives {
		if alt.isOk {
			return alt
		}
	}
	return r
}

// And returns the first Error among r and required, or the last candidate
// when all of them are Ok.
func (r Result[A, E]) And(required ...Result[A, E]) Result[A, E] {
	res := r
	for _, next := range append([]Result[A, E]{r}, required...) {
		res = next
		if !next.isOk {
			return next
		}
	}
	return res
}

func (r Result[A, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Error(%v)", r.err)
}
