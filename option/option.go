// Package option provides Option, a value that is either present (Some) or absent (None).
//
// Option is the optionality layer stacked on top of a task by package taskoption.
// Combinators in this package are pure: they never start goroutines or touch a context.
package option

import "fmt"

// Option holds either Some(value) or None. The zero value is None.
type Option[A any] struct {
	value A
	some  bool
}

// Some returns an Option holding a.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, some: true}
}

// None returns an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// Of is an alias of Some.
func Of[A any](a A) Option[A] {
	return Some(a)
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

// FromPredicate returns Some(a) if pred holds for a, None otherwise.
func FromPredicate[A any](pred func(A) bool) func(A) Option[A] {
	return func(a A) Option[A] {
		if pred(a) {
			return Some(a)
		}
		return None[A]()
	}
}

// IsSome reports whether the option holds a value.
func (o Option[A]) IsSome() bool { return o.some }

// IsNone reports whether the option is empty.
func (o Option[A]) IsNone() bool { return !o.some }

// Get returns the held value and whether it was present.
func (o Option[A]) Get() (A, bool) { return o.value, o.some }

// OrElse returns the held value, or fallback when empty.
func (o Option[A]) OrElse(fallback A) A {
	if o.some {
		return o.value
	}
	return fallback
}

func (o Option[A]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies f to the held value. f is never called on None.
func Map[A, B any](f func(A) B) func(Option[A]) Option[B] {
	return func(o Option[A]) Option[B] {
		if !o.some {
			return None[B]()
		}
		return Some(f(o.value))
	}
}

// Chain applies f to the held value and flattens the result.
// None short-circuits without calling f.
func Chain[A, B any](f func(A) Option[B]) func(Option[A]) Option[B] {
	return func(o Option[A]) Option[B] {
		if !o.some {
			return None[B]()
		}
		return f(o.value)
	}
}

// Ap applies the function held by fab to the value held by fa.
func Ap[A, B any](fa Option[A]) func(Option[func(A) B]) Option[B] {
	return func(fab Option[func(A) B]) Option[B] {
		if !fab.some || !fa.some {
			return None[B]()
		}
		return Some(fab.value(fa.value))
	}
}

// Filter keeps the held value only if pred holds.
func Filter[A any](pred func(A) bool) func(Option[A]) Option[A] {
	return Chain(FromPredicate(pred))
}

// Fold collapses the option: onNone for None, onSome for Some.
func Fold[A, B any](onNone func() B, onSome func(A) B) func(Option[A]) B {
	return func(o Option[A]) B {
		if !o.some {
			return onNone()
		}
		return onSome(o.value)
	}
}

// GetOrElse returns the held value, or the result of onNone when empty.
func GetOrElse[A any](onNone func() A) func(Option[A]) A {
	return Fold(onNone, func(a A) A { return a })
}
