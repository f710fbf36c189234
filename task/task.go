// Package task provides Task, a deferred computation that runs under a context.
//
// A Task describes work; nothing happens until it is invoked. Every invocation
// runs the work again, results are never cached. The error return is reserved
// for execution failures of the work itself (a failed call, a cancelled
// context, a recovered panic); absence and domain errors are modelled as data
// by the stacks built on top of Task (see taskoption and taskeither).
package task

import (
	"context"
	"errors"
	"fmt"
)

// Task is an asynchronous operation that eventually returns a value of type A.
type Task[A any] func(context.Context) (A, error)

// Operator transforms one task into another.
type Operator[A, B any] = func(Task[A]) Task[B]

// ErrPanicked wraps the value recovered from a panicking task.
var ErrPanicked = errors.New("task panicked")

// Of returns a task that resolves to a without doing any work.
func Of[A any](a A) Task[A] {
	return func(context.Context) (A, error) {
		return a, nil
	}
}

// FromFunc adapts an infallible function into a task.
func FromFunc[A any](f func() A) Task[A] {
	return func(context.Context) (A, error) {
		return f(), nil
	}
}

// FromIO adapts an infallible, context-aware function into a task.
func FromIO[A any](f func(context.Context) A) Task[A] {
	return func(ctx context.Context) (A, error) {
		return f(ctx), nil
	}
}

// Fail returns a task that always fails with err.
func Fail[A any](err error) Task[A] {
	return func(context.Context) (A, error) {
		return *new(A), err
	}
}

// Map applies f to the value produced by the task.
func Map[A, B any](f func(A) B) Operator[A, B] {
	return func(t Task[A]) Task[B] {
		return func(ctx context.Context) (B, error) {
			a, err := t(ctx)
			if err != nil {
				return *new(B), err
			}
			return f(a), nil
		}
	}
}

// Chain runs the task, then the task returned by f.
// An execution error stops the chain before f is called.
func Chain[A, B any](f func(A) Task[B]) Operator[A, B] {
	return func(t Task[A]) Task[B] {
		return func(ctx context.Context) (B, error) {
			a, err := t(ctx)
			if err != nil {
				return *new(B), err
			}
			return f(a)(ctx)
		}
	}
}

// Ap runs the function task, then fa, and applies one to the other.
func Ap[A, B any](fa Task[A]) Operator[func(A) B, B] {
	return func(fab Task[func(A) B]) Task[B] {
		return func(ctx context.Context) (B, error) {
			f, err := fab(ctx)
			if err != nil {
				return *new(B), err
			}
			a, err := fa(ctx)
			if err != nil {
				return *new(B), err
			}
			return f(a), nil
		}
	}
}

// ApPar is Ap with the function task and fa running concurrently.
// The first failure cancels the other side.
func ApPar[A, B any](fa Task[A]) Operator[func(A) B, B] {
	return func(fab Task[func(A) B]) Task[B] {
		return func(ctx context.Context) (B, error) {
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			faCh := Start(ctx, fa)
			f, err := Run(ctx, fab)
			if err != nil {
				return *new(B), err
			}
			a, err := Await(ctx, faCh)
			if err != nil {
				return *new(B), err
			}
			return f(a), nil
		}
	}
}

// Run invokes t under ctx. It refuses to start on a finished context and
// turns a panic raised by t into an error wrapping ErrPanicked.
func Run[A any](ctx context.Context, t Task[A]) (a A, err error) {
	if err = ctx.Err(); err != nil {
		return a, err
	}
	defer func() {
		if r := recover(); r != nil {
			a, err = *new(A), fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()
	return t(ctx)
}
