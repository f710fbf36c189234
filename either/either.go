// Package either provides Either, a value that is either a Left (the error side)
// or a Right (the success side).
//
// By convention Map and Chain act on Right and leave Left untouched; the only
// ways to change a Left are MapLeft, Bimap and OrElse.
package either

import "fmt"

// Either holds exactly one of Left(e) or Right(a).
// The zero value is Right of the zero A.
type Either[E, A any] struct {
	left   E
	right  A
	isLeft bool
}

// Left returns an Either on the error side.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{left: e, isLeft: true}
}

// Right returns an Either on the success side.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{right: a}
}

// Of is an alias of Right.
func Of[E, A any](a A) Either[E, A] {
	return Right[E](a)
}

// FromError returns Left(err) for a non-nil err and Right(a) otherwise.
func FromError[A any](a A, err error) Either[error, A] {
	if err != nil {
		return Left[error, A](err)
	}
	return Right[error](a)
}

// IsLeft reports whether e holds the error side.
func (e Either[E, A]) IsLeft() bool { return e.isLeft }

// IsRight reports whether e holds the success side.
func (e Either[E, A]) IsRight() bool { return !e.isLeft }

// GetLeft returns the error-side value and whether e is a Left.
func (e Either[E, A]) GetLeft() (E, bool) { return e.left, e.isLeft }

// GetRight returns the success-side value and whether e is a Right.
func (e Either[E, A]) GetRight() (A, bool) { return e.right, !e.isLeft }

func (e Either[E, A]) String() string {
	if e.isLeft {
		return fmt.Sprintf("Left(%v)", e.left)
	}
	return fmt.Sprintf("Right(%v)", e.right)
}

// Map applies f to a Right value. A Left passes through unchanged.
func Map[E, A, B any](f func(A) B) func(Either[E, A]) Either[E, B] {
	return func(e Either[E, A]) Either[E, B] {
		if e.isLeft {
			return Left[E, B](e.left)
		}
		return Right[E](f(e.right))
	}
}

// MapLeft applies h to a Left value. A Right passes through unchanged.
func MapLeft[E, G, A any](h func(E) G) func(Either[E, A]) Either[G, A] {
	return func(e Either[E, A]) Either[G, A] {
		if e.isLeft {
			return Left[G, A](h(e.left))
		}
		return Right[G](e.right)
	}
}

// Bimap maps the error side with h and the success side with f.
func Bimap[E, G, A, B any](h func(E) G, f func(A) B) func(Either[E, A]) Either[G, B] {
	return func(e Either[E, A]) Either[G, B] {
		if e.isLeft {
			return Left[G, B](h(e.left))
		}
		return Right[G](f(e.right))
	}
}

// Chain applies f to a Right value and flattens the result.
// A Left short-circuits without calling f.
func Chain[E, A, B any](f func(A) Either[E, B]) func(Either[E, A]) Either[E, B] {
	return func(e Either[E, A]) Either[E, B] {
		if e.isLeft {
			return Left[E, B](e.left)
		}
		return f(e.right)
	}
}

// OrElse recovers from a Left by calling f with the error value.
func OrElse[E, G, A any](f func(E) Either[G, A]) func(Either[E, A]) Either[G, A] {
	return func(e Either[E, A]) Either[G, A] {
		if e.isLeft {
			return f(e.left)
		}
		return Right[G](e.right)
	}
}

// Fold collapses e: onLeft for Left, onRight for Right.
func Fold[E, A, B any](onLeft func(E) B, onRight func(A) B) func(Either[E, A]) B {
	return func(e Either[E, A]) B {
		if e.isLeft {
			return onLeft(e.left)
		}
		return onRight(e.right)
	}
}

// GetOrElse returns the Right value, or onLeft applied to the Left value.
func GetOrElse[E, A any](onLeft func(E) A) func(Either[E, A]) A {
	return Fold(onLeft, func(a A) A { return a })
}
