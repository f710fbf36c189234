package handlers

import (
	"context"

	effectmodel "github.com/on-the-ground/effect_stack_go/effects/model"
)

// NewResumableHandler starts config.NumWorkers workers that answer every
// payload through the channel returned by PerformEffect. Payloads are routed
// by PartitionKey.
func NewResumableHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, P) (R, error),
	teardown func(),
) ResumableHandler[P, R] {
	config = effectmodel.NewEffectScopeConfig(config.BufferSize, config.NumWorkers)
	return ResumableHandler[P, R]{
		effectScope: newEffectScope(
			ctx,
			func(workerCtx context.Context) WorkerDispatcher[ResumableEffectMessage[P, R]] {
				return NewPartitionedQueue(
					workerCtx,
					config.NumWorkers,
					config.BufferSize,
					func(ctx context.Context, msg ResumableEffectMessage[P, R]) {
						defer close(msg.ResumeCh)
						// queued payloads left over at close are abandoned
						if ctx.Err() != nil {
							return
						}
						msg.ResumeCh <- ResumableResultFrom(handleFn(ctx, msg.Payload))
					},
				)
			},
			func(WorkerDispatcher[ResumableEffectMessage[P, R]]) {
				teardown()
			},
		),
	}
}

type ResumableHandler[P effectmodel.Partitionable, R any] struct {
	*effectScope[ResumableEffectMessage[P, R]]
}

// PerformEffect queues payload and returns the channel its result arrives on.
// The channel is closed without a value if the payload could not be queued
// or the handler closed before starting on it.
func (rh ResumableHandler[P, R]) PerformEffect(ctx context.Context, payload P) <-chan ResumableResult[R] {
	// buffered so the worker never waits on a sender that gave up
	resumeCh := make(chan ResumableResult[R], 1)

	msg := ResumableEffectMessage[P, R]{
		Payload:  payload,
		ResumeCh: resumeCh,
	}
	if !rh.send(ctx, msg) {
		close(resumeCh)
	}
	return resumeCh
}

// ResumableResult represents the result of a handled effect.
type ResumableResult[T any] struct {
	Value T
	Err   error
}

func ResumableResultFrom[R any](res R, err error) ResumableResult[R] {
	return ResumableResult[R]{Value: res, Err: err}
}

var _ effectmodel.Partitionable = ResumableEffectMessage[effectmodel.Partitionable, any]{}

type ResumableEffectMessage[P effectmodel.Partitionable, R any] struct {
	Payload  P
	ResumeCh chan ResumableResult[R]
}

func (rem ResumableEffectMessage[P, R]) PartitionKey() string {
	return rem.Payload.PartitionKey()
}
