package handlers

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// effectScope ties a dispatcher to the teardown that stops its workers.
// Close is idempotent. Once Close starts, every send reports false.
type effectScope[T any] struct {
	EffectId   string
	dispatcher WorkerDispatcher[T]
	closing    chan struct{}
	// senders hold the read lock while queueing; Close takes the write lock
	// so nothing is queued after the workers are told to stop
	sending   sync.RWMutex
	closeOnce sync.Once
	closeFn   func()
}

func (es *effectScope[T]) Close() {
	es.closeOnce.Do(func() {
		close(es.closing)
		// wait out senders already past the closing check
		es.sending.Lock()
		es.sending.Unlock()
		es.closeFn()
		zap.L().Debug("effect scope closed", zap.String("effectId", es.EffectId))
	})
}

// send queues msg on its worker. It gives up when the scope closes or ctx ends.
func (es *effectScope[T]) send(ctx context.Context, msg T) bool {
	es.sending.RLock()
	defer es.sending.RUnlock()

	select {
	case <-es.closing:
		return false
	default:
	}
	select {
	case <-es.closing:
		return false
	case <-ctx.Done():
		return false
	case es.dispatcher.GetChannelOf(msg) <- msg:
		return true
	}
}

// newEffectScope starts the dispatcher under a context that only Close ends.
// The end of ctx closes the scope too.
func newEffectScope[T any](
	ctx context.Context,
	startDispatcher func(context.Context) WorkerDispatcher[T],
	teardown func(dispatcher WorkerDispatcher[T]),
) *effectScope[T] {
	workerCtx, cancelFn := context.WithCancel(context.WithoutCancel(ctx))
	dispatcher := startDispatcher(workerCtx)
	es := &effectScope[T]{
		EffectId:   uuid.New().String(),
		dispatcher: dispatcher,
		closing:    make(chan struct{}),
		closeFn: func() {
			cancelFn()
			teardown(dispatcher)
		},
	}
	context.AfterFunc(ctx, es.Close)
	return es
}
