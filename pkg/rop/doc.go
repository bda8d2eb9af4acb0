// Package rop provides two sum types for explicit error handling without
// panics or sentinel-laden (value, error) plumbing:
//
//   - Result[A, E]: exactly one of Ok(A) or Error(E)
//   - Either[L, R]: exactly one of Left(L) or Right(R)
//
// Same-type combinators are methods and chain fluently:
//
//	r.Filter(valid, missing).Run(audit).RunError(report)
//
// Combinators that change a type parameter are functions, because Go methods
// cannot declare their own type parameters:
//
// - Map/MapError: transform the value or the error
// - FlatMap: chain a step with the same error type, short-circuit on Error
// - FlatMapEither: chain a step with a different error type, widening the
// error to Either[E, F] so the caller can tell which step failed
// - Fold/Resolve/Recover: leave the Result world with a plain value
// - Flatten: aggregate a batch, collecting every error
// - MapLeft/MapRight/FoldEither: the Either counterparts
//
// Results, Eithers and Options are immutable values and safe to share between
// goroutines. Passing a nil function to any combinator panics with an error
// wrapping ErrNilArgument.
package rop
