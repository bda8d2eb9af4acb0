package rop

import "fmt"

// Either holds exactly one of a Left or a Right value.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value, or the zero L when e is Right.
func (e Either[L, R]) Left() L {
	return e.left
}

// Right returns the right value, or the zero R when e is Left.
func (e Either[L, R]) Right() R {
	return e.right
}

// Swap reverses the sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// MapLeft applies onLeft to a Left value. A Right passes through retyped.
func MapLeft[L, R, U any](e Either[L, R], onLeft func(L) U) Either[U, R] {
	mustNotBeNil("MapLeft", "onLeft", onLeft)

	if e.isRight {
		return Right[U, R](e.right)
	}
	return Left[U, R](onLeft(e.left))
}

// MapRight applies onRight to a Right value. A Left passes through retyped.
func MapRight[L, R, U any](e Either[L, R], onRight func(R) U) Either[L, U] {
	mustNotBeNil("MapRight", "onRight", onRight)

	if e.isRight {
		return Right[L, U](onRight(e.right))
	}
	return Left[L, U](e.left)
}

// FoldEither collapses e into a single value, calling exactly one of the
// handlers.
func FoldEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	mustNotBeNil("FoldEither", "onLeft", onLeft)
	mustNotBeNil("FoldEither", "onRight", onRight)

	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
