// Package taskeither stacks an error-carrying effect on top of a task:
// a TaskEither resolves to either a Left error value or a Right result.
//
// Chain short-circuits on Left and carries the original error value through
// unchanged. Map only ever touches the Right side; MapLeft and Bimap are the
// only ways to transform a Left.
package taskeither

import (
	"context"

	"github.com/on-the-ground/effect_stack_go/either"
	"github.com/on-the-ground/effect_stack_go/option"
	"github.com/on-the-ground/effect_stack_go/task"
)

// TaskEither is a task that resolves to an Either.
type TaskEither[E, A any] = task.Task[either.Either[E, A]]

// Operator transforms the Right side of a TaskEither.
type Operator[E, A, B any] = func(TaskEither[E, A]) TaskEither[E, B]

// Left returns a TaskEither that resolves to Left(e).
func Left[E, A any](e E) TaskEither[E, A] {
	return task.Of(either.Left[E, A](e))
}

// Right returns a TaskEither that resolves to Right(a).
func Right[E, A any](a A) TaskEither[E, A] {
	return task.Of(either.Right[E](a))
}

// Of is an alias of Right.
func Of[E, A any](a A) TaskEither[E, A] {
	return Right[E](a)
}

// RightTask lifts a task's value into the Right side.
func RightTask[E, A any](t task.Task[A]) TaskEither[E, A] {
	return task.Map(either.Right[E, A])(t)
}

// LeftTask lifts a task's value into the Left side.
func LeftTask[E, A any](t task.Task[E]) TaskEither[E, A] {
	return task.Map(either.Left[E, A])(t)
}

// FromEither lifts a resolved Either.
func FromEither[E, A any](e either.Either[E, A]) TaskEither[E, A] {
	return task.Of(e)
}

// FromOption lifts an Option, using onNone for the Left value when absent.
func FromOption[E, A any](onNone func() E) func(option.Option[A]) TaskEither[E, A] {
	return func(o option.Option[A]) TaskEither[E, A] {
		if a, ok := o.Get(); ok {
			return Right[E](a)
		}
		return Left[E, A](onNone())
	}
}

// TryCatch lifts t, turning an execution failure into Left(onErr(err)).
func TryCatch[E, A any](t task.Task[A], onErr func(error) E) TaskEither[E, A] {
	return func(ctx context.Context) (either.Either[E, A], error) {
		a, err := task.Run(ctx, t)
		if err != nil {
			return either.Left[E, A](onErr(err)), nil
		}
		return either.Right[E](a), nil
	}
}

// Map applies f to a Right value.
func Map[E, A, B any](f func(A) B) Operator[E, A, B] {
	return task.Map(either.Map[E](f))
}

// MapLeft applies h to a Left value.
func MapLeft[E, G, A any](h func(E) G) func(TaskEither[E, A]) TaskEither[G, A] {
	return task.Map(either.MapLeft[E, G, A](h))
}

// Bimap maps the Left side with h and the Right side with f.
func Bimap[E, G, A, B any](h func(E) G, f func(A) B) func(TaskEither[E, A]) TaskEither[G, B] {
	return task.Map(either.Bimap(h, f))
}

// Chain runs f on a Right value. A Left short-circuits without calling f.
func Chain[E, A, B any](f func(A) TaskEither[E, B]) Operator[E, A, B] {
	return task.Chain(either.Fold(Left[E, B], f))
}

// OrElse runs f on a Left value to recover. A Right passes through.
func OrElse[E, G, A any](f func(E) TaskEither[G, A]) func(TaskEither[E, A]) TaskEither[G, A] {
	return task.Chain(either.Fold(f, Right[G, A]))
}

// Fold collapses both sides into a plain task.
func Fold[E, A, B any](onLeft func(E) B, onRight func(A) B) func(TaskEither[E, A]) task.Task[B] {
	return task.Map(either.Fold(onLeft, onRight))
}

// GetOrElse resolves to the Right value, or onLeft applied to the Left value.
func GetOrElse[E, A any](onLeft func(E) A) func(TaskEither[E, A]) task.Task[A] {
	return task.Map(either.GetOrElse(onLeft))
}
