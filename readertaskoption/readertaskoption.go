// Package readertaskoption adds an environment-reading layer over taskoption.
//
// A ReaderTaskOption[R, A] is a function from an environment R to a
// TaskOption[A]. Every step of a pipeline receives the same environment;
// absence short-circuits exactly as in taskoption.
package readertaskoption

import (
	"context"

	"github.com/on-the-ground/effect_stack_go/option"
	"github.com/on-the-ground/effect_stack_go/task"
	"github.com/on-the-ground/effect_stack_go/taskoption"
)

// ReaderTaskOption reads an environment R and yields a TaskOption[A].
type ReaderTaskOption[R, A any] = func(R) taskoption.TaskOption[A]

// Operator transforms one ReaderTaskOption into another under the same environment.
type Operator[R, A, B any] = func(ReaderTaskOption[R, A]) ReaderTaskOption[R, B]

// Of ignores the environment and resolves to Some(a).
func Of[R, A any](a A) ReaderTaskOption[R, A] {
	return FromTaskOption[R](taskoption.Of(a))
}

// None ignores the environment and resolves to None.
func None[R, A any]() ReaderTaskOption[R, A] {
	return FromTaskOption[R](taskoption.None[A]())
}

// FromTaskOption lifts a TaskOption that does not need the environment.
func FromTaskOption[R, A any](to taskoption.TaskOption[A]) ReaderTaskOption[R, A] {
	return func(R) taskoption.TaskOption[A] {
		return to
	}
}

// FromTask lifts a task that always produces a value.
func FromTask[R, A any](t task.Task[A]) ReaderTaskOption[R, A] {
	return FromTaskOption[R](taskoption.FromTask(t))
}

// FromOption lifts a resolved option.
func FromOption[R, A any](o option.Option[A]) ReaderTaskOption[R, A] {
	return FromTaskOption[R](taskoption.FromOption(o))
}

// Ask resolves to Some(env).
func Ask[R any]() ReaderTaskOption[R, R] {
	return taskoption.Of[R]
}

// Asks resolves to Some(f(env)).
func Asks[R, A any](f func(R) A) ReaderTaskOption[R, A] {
	return func(r R) taskoption.TaskOption[A] {
		return taskoption.Of(f(r))
	}
}

// Map applies f to a present value.
func Map[R, A, B any](f func(A) B) Operator[R, A, B] {
	mapTO := taskoption.Map(f)
	return func(rto ReaderTaskOption[R, A]) ReaderTaskOption[R, B] {
		return func(r R) taskoption.TaskOption[B] {
			return mapTO(rto(r))
		}
	}
}

// Chain runs f on a present value under the same environment.
// None short-circuits without calling f.
func Chain[R, A, B any](f func(A) ReaderTaskOption[R, B]) Operator[R, A, B] {
	return func(rto ReaderTaskOption[R, A]) ReaderTaskOption[R, B] {
		return func(r R) taskoption.TaskOption[B] {
			return taskoption.Chain(func(a A) taskoption.TaskOption[B] {
				return f(a)(r)
			})(rto(r))
		}
	}
}

// Local runs rto under the environment derived from the outer one by f.
func Local[R, Q, A any](f func(Q) R) func(ReaderTaskOption[R, A]) ReaderTaskOption[Q, A] {
	return func(rto ReaderTaskOption[R, A]) ReaderTaskOption[Q, A] {
		return func(q Q) taskoption.TaskOption[A] {
			return rto(f(q))
		}
	}
}

// Run evaluates rto against env under ctx.
func Run[R, A any](ctx context.Context, rto ReaderTaskOption[R, A], env R) (option.Option[A], error) {
	return task.Run(ctx, rto(env))
}
