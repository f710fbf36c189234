// Package taskoption stacks an optionality effect on top of an asynchrony
// effect: a TaskOption is a task whose eventual value may be absent.
//
// Map and Chain reach through both layers, so a pipeline of dependent,
// possibly-absent, asynchronous steps reads as one straight line:
//
//	program := function.Pipe2(
//		taskoption.FromTask(getN),
//		taskoption.Chain(func(n int) taskoption.TaskOption[string] {
//			if n%2 == 0 {
//				return taskoption.Some("Awesome")
//			}
//			return taskoption.None[string]()
//		}),
//		taskoption.Map(func(s string) string { return s + "!" }),
//	)
//
// Once a step resolves to None no later step function is called and the
// whole pipeline resolves to None. An execution error from the underlying
// task stops the pipeline the same way and is returned as the error.
package taskoption

import (
	"context"

	"github.com/on-the-ground/effect_stack_go/option"
	"github.com/on-the-ground/effect_stack_go/task"
)

// TaskOption is a task that resolves to an optional value.
type TaskOption[A any] = task.Task[option.Option[A]]

// Operator transforms one TaskOption into another.
type Operator[A, B any] = func(TaskOption[A]) TaskOption[B]

// Some returns a TaskOption that resolves to Some(a).
func Some[A any](a A) TaskOption[A] {
	return task.Of(option.Some(a))
}

// Of is an alias of Some.
func Of[A any](a A) TaskOption[A] {
	return Some(a)
}

// None returns a TaskOption that resolves to None.
func None[A any]() TaskOption[A] {
	return task.Of(option.None[A]())
}

// FromOption lifts a resolved option.
func FromOption[A any](o option.Option[A]) TaskOption[A] {
	return task.Of(o)
}

// FromTask lifts a task that always produces a value into Some of that value.
func FromTask[A any](t task.Task[A]) TaskOption[A] {
	return task.Map(option.Some[A])(t)
}

// TryCatch lifts t, turning an execution failure into None.
func TryCatch[A any](t task.Task[A]) TaskOption[A] {
	return func(ctx context.Context) (option.Option[A], error) {
		a, err := task.Run(ctx, t)
		if err != nil {
			return option.None[A](), nil
		}
		return option.Some(a), nil
	}
}

// Map applies f to a present value. f is never called on None.
func Map[A, B any](f func(A) B) Operator[A, B] {
	return task.Map(option.Map(f))
}

// Chain runs f on a present value and resolves to f's result.
// None short-circuits without calling f.
func Chain[A, B any](f func(A) TaskOption[B]) Operator[A, B] {
	return task.Chain(option.Fold(None[B], f))
}

// Ap runs the function first, then fa, and applies one to the other.
func Ap[A, B any](fa TaskOption[A]) Operator[func(A) B, B] {
	return func(fab TaskOption[func(A) B]) TaskOption[B] {
		return task.Ap[option.Option[A], option.Option[B]](fa)(task.Map(applyTo[A, B])(fab))
	}
}

// ApPar is Ap with the function and fa running concurrently.
func ApPar[A, B any](fa TaskOption[A]) Operator[func(A) B, B] {
	return func(fab TaskOption[func(A) B]) TaskOption[B] {
		return task.ApPar[option.Option[A], option.Option[B]](fa)(task.Map(applyTo[A, B])(fab))
	}
}

func applyTo[A, B any](of option.Option[func(A) B]) func(option.Option[A]) option.Option[B] {
	return func(oa option.Option[A]) option.Option[B] {
		return option.Ap[A, B](oa)(of)
	}
}

// Fold collapses the optional layer into a plain task.
func Fold[A, B any](onNone func() B, onSome func(A) B) func(TaskOption[A]) task.Task[B] {
	return task.Map(option.Fold(onNone, onSome))
}

// GetOrElse resolves to the present value, or to onNone() when absent.
func GetOrElse[A any](onNone func() A) func(TaskOption[A]) task.Task[A] {
	return task.Map(option.GetOrElse(onNone))
}
