// Package executor provides a worker-pool effect that tasks can be dispatched onto.
//
// WithEffectHandler installs the pool in a context. Dispatch wraps a task so
// that, when invoked, it runs on one of the pool's workers instead of the
// calling goroutine. The worker is picked by hashing the dispatch key:
// tasks sharing a key run one after another in submission order.
package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/effect_stack_go/effects"
	"github.com/on-the-ground/effect_stack_go/effects/log"
	effectmodel "github.com/on-the-ground/effect_stack_go/effects/model"
	"github.com/on-the-ground/effect_stack_go/task"
)

// ErrExecutorClosed is returned by a dispatched task the executor closed before running.
var ErrExecutorClosed = errors.New("executor closed before the task finished")

// onWorker marks the context a dispatched task runs under.
type onWorker struct{}

// Payload is a unit of work queued on the executor.
type Payload struct {
	Key string
	Run func() (any, error)
}

func (p Payload) PartitionKey() string {
	if p.Key == "" {
		return "unpartitioned"
	}
	return p.Key
}

// WithEffectHandler registers an executor with config.NumWorkers workers each
// buffering up to config.BufferSize queued tasks.
//
// The returned teardown stops the workers and returns the parent context.
func WithEffectHandler(
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
) (context.Context, func() context.Context) {
	return effects.WithResumableEffectHandler(
		ctx,
		config,
		effectmodel.EffectExecutor,
		func(_ context.Context, p Payload) (any, error) {
			return p.Run()
		},
	)
}

// Dispatch returns a task that runs t on the executor registered in the
// invoking context, routed by key. The dispatched task runs under the
// invoking context, not the executor's. Dispatch called from inside a
// dispatched task runs t inline on the current worker instead of queueing it
// behind itself.
//
// A panic in t is reported as an error wrapping task.ErrPanicked and logged
// through the log effect. Without a registered executor the task fails with
// an error wrapping effectmodel.ErrNoEffectHandler.
func Dispatch[A any](key string, t task.Task[A]) task.Task[A] {
	return func(ctx context.Context) (A, error) {
		if ctx.Value(onWorker{}) != nil {
			return run(ctx, key, t)
		}

		var zero A
		resultCh, err := effects.PerformResumableEffect[Payload, any](ctx, effectmodel.EffectExecutor, Payload{
			Key: key,
			Run: func() (any, error) {
				return run(context.WithValue(ctx, onWorker{}, key), key, t)
			},
		})
		if err != nil {
			return zero, fmt.Errorf("dispatch %q: %w", key, err)
		}

		select {
		case res, ok := <-resultCh:
			if !ok {
				if err := ctx.Err(); err != nil {
					return zero, err
				}
				return zero, ErrExecutorClosed
			}
			if res.Err != nil {
				return zero, res.Err
			}
			a, _ := res.Value.(A)
			return a, nil
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

func run[A any](ctx context.Context, key string, t task.Task[A]) (A, error) {
	a, err := task.Run(ctx, t)
	if errors.Is(err, task.ErrPanicked) {
		log.LogEff(ctx, log.LogError, "dispatched task panicked", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	return a, err
}
