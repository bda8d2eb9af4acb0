package rop

// Map transforms the value of an Ok. An Error passes through with its error
// untouched.
func Map[A, E, U any](r Result[A, E], onOk func(A) U) Result[U, E] {
	mustNotBeNil("Map", "onOk", onOk)

	if r.isOk {
		return Ok[U, E](onOk(r.value))
	}
	return Error[U](r.err)
}

// MapError transforms the error of an Error. An Ok passes through.
func MapError[A, E, U any](r Result[A, E], onError func(E) U) Result[A, U] {
	mustNotBeNil("MapError", "onError", onError)

	if r.isOk {
		return Ok[A, U](r.value)
	}
	return Error[A](onError(r.err))
}

// FlatMap chains a step that can fail with the same error type. An Error
// short-circuits without calling next.
func FlatMap[A, E, U any](r Result[A, E], next func(A) Result[U, E]) Result[U, E] {
	mustNotBeNil("FlatMap", "next", next)

	if r.isOk {
		return next(r.value)
	}
	return Error[U](r.err)
}

// FlatMapEither chains a step whose error type F may differ from E. The error
// side of the output records which step failed: Left for a failure already
// present in r (next is not called), Right for a failure returned by next.
func FlatMapEither[A, E, U, F any](r Result[A, E], next func(A) Result[U, F]) Result[U, Either[E, F]] {
	mustNotBeNil("FlatMapEither", "next", next)

	if !r.isOk {
		return Error[U](Left[E, F](r.err))
	}

	out := next(r.value)
	if out.isOk {
		return Ok[U, Either[E, F]](out.value)
	}
	return Error[U](Right[E](out.err))
}

// Resolve hands the whole Result to resolver.
func Resolve[A, E, U any](r Result[A, E], resolver func(Result[A, E]) U) U {
	mustNotBeNil("Resolve", "resolver", resolver)
	return resolver(r)
}

// Fold collapses r into a single value, calling exactly one of the mappers.
func Fold[A, E, U any](r Result[A, E], onOk func(A) U, onError func(E) U) U {
	mustNotBeNil("Fold", "onOk", onOk)
	mustNotBeNil("Fold", "onError", onError)

	if r.isOk {
		return onOk(r.value)
	}
	return onError(r.err)
}

// Flatten partitions results into their values and errors, both in input
// order. It returns Ok with every value when there are no errors, otherwise
// Error with every error; it never stops at the first failure.
func Flatten[A, E any](results []Result[A, E]) Result[[]A, []E] {
	values := make([]A, 0, len(results))
	var errs []E

	for _, r := range results {
		if r.isOk {
			values = append(values, r.value)
		} else {
			errs = append(errs, r.err)
		}
	}

	if len(errs) == 0 {
		return Ok[[]A, []E](values)
	}
	return Error[[]A](errs)
}
