package handlers

import (
	"context"

	"go.uber.org/zap"
)

// NewFireAndForgetHandler starts a single worker that handles payloads
// without reporting back to the sender. Close waits for payloads queued
// before it to be handled, then runs teardown.
func NewFireAndForgetHandler[P any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, P),
	teardown func(),
) FireAndForgetHandler[P] {
	return FireAndForgetHandler[P]{
		effectScope: newEffectScope(
			ctx,
			func(workerCtx context.Context) WorkerDispatcher[P] {
				return NewSingleQueue(workerCtx, bufferSize, handleFn)
			},
			func(dispatcher WorkerDispatcher[P]) {
				<-dispatcher.Done()
				teardown()
			},
		),
	}
}

type FireAndForgetHandler[P any] struct {
	*effectScope[P]
}

// FireAndForgetEffect queues payload, giving up if ctx ends or the handler closes first.
func (ffh FireAndForgetHandler[P]) FireAndForgetEffect(ctx context.Context, payload P) {
	if !ffh.send(ctx, payload) {
		zap.L().Debug("effect dropped", zap.String("effectId", ffh.EffectId), zap.Any("payload", payload))
	}
}
