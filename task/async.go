package task

import (
	"context"
	"errors"
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// ErrResultChannelClosed is returned by Await when ch closes without a result.
var ErrResultChannelClosed = errors.New("task result channel closed")

// Result represents the resolved state of a started task.
type Result[A any] struct {
	Value A
	Err   error
}

// ResultFrom pairs a task return into a Result.
func ResultFrom[A any](a A, err error) Result[A] {
	return Result[A]{Value: a, Err: err}
}

// Start runs t on its own goroutine and returns a channel that delivers exactly
// one Result before it is closed. If ctx ends before t returns, the Result
// carries ctx.Err() and the eventual value of t is dropped.
func Start[A any](ctx context.Context, t Task[A]) <-chan Result[A] {
	// buffered so the runner never blocks once nobody is listening
	done := make(chan Result[A], 1)
	go func() {
		done <- ResultFrom(Run(ctx, t))
	}()

	out := make(chan Result[A], 1)
	go func() {
		defer close(out)
		select {
		case res := <-done:
			out <- res
		case <-ctx.Done():
			out <- Result[A]{Err: ctx.Err()}
		}
	}()
	return out
}

// Await blocks until ch delivers a result or ctx ends.
func Await[A any](ctx context.Context, ch <-chan Result[A]) (A, error) {
	select {
	case res, ok := <-ch:
		if !ok {
			return *new(A), ErrResultChannelClosed
		}
		return res.Value, res.Err
	case <-ctx.Done():
		return *new(A), ctx.Err()
	}
}

// Timing is a task value paired with the span of wall-clock time it took.
type Timing[A any] struct {
	Value A
	Span  timespan.TimeSpan
}

// Timed records when t started and finished.
func Timed[A any](t Task[A]) Task[Timing[A]] {
	return func(ctx context.Context) (Timing[A], error) {
		start := time.Now()
		a, err := t(ctx)
		span := timespan.BetweenTimes(start, time.Now())
		if err != nil {
			return Timing[A]{Span: span}, err
		}
		return Timing[A]{Value: a, Span: span}, nil
	}
}
