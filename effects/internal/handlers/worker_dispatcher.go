package handlers

import (
	"context"
	"sync"

	effectmodel "github.com/on-the-ground/effect_stack_go/effects/model"
)

// WorkerDispatcher hands out the worker channel a message must be sent to.
type WorkerDispatcher[T any] interface {
	GetChannelOf(msg T) chan T
	// Done is closed once every worker has exited.
	Done() <-chan struct{}
}

// --- single queue ---

type singleQueue[T any] struct {
	effectCh chan T
	done     chan struct{}
}

func (q singleQueue[T]) GetChannelOf(_ T) chan T {
	return q.effectCh
}

func (q singleQueue[T]) Done() <-chan struct{} {
	return q.done
}

// NewSingleQueue starts one worker that handles messages in arrival order.
func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	var ready, stopped sync.WaitGroup
	ch := startWorker(ctx, bufferSize, handleFn, &ready, &stopped)
	ready.Wait()
	return singleQueue[T]{effectCh: ch, done: doneWhen(&stopped)}
}

// --- partitioned queue ---

type partitionedQueue[T effectmodel.Partitionable] struct {
	effectChs []chan T
	done      chan struct{}
}

func (pq partitionedQueue[T]) GetChannelOf(msg T) chan T {
	return pq.effectChs[getIndexByHash(msg, len(pq.effectChs))]
}

func (pq partitionedQueue[T]) Done() <-chan struct{} {
	return pq.done
}

// NewPartitionedQueue starts numWorkers workers. Messages sharing a
// PartitionKey always land on the same worker, so they are handled in order.
func NewPartitionedQueue[T effectmodel.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	var ready, stopped sync.WaitGroup
	channels := make([]chan T, numWorkers)
	for i := range channels {
		channels[i] = startWorker(ctx, bufferSize, handleFn, &ready, &stopped)
	}
	ready.Wait()
	return partitionedQueue[T]{effectChs: channels, done: doneWhen(&stopped)}
}

// startWorker runs handleFn for every message on the returned channel until ctx ends.
// Messages already queued by then are still handed to handleFn, under the ended ctx.
func startWorker[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
	ready, stopped *sync.WaitGroup,
) chan T {
	ch := make(chan T, bufferSize)
	ready.Add(1)
	stopped.Add(1)
	go func() {
		defer stopped.Done()
		ready.Done()
		for {
			select {
			case msg := <-ch:
				handleFn(ctx, msg)
			case <-ctx.Done():
				for {
					select {
					case msg := <-ch:
						handleFn(ctx, msg)
					default:
						return
					}
				}
			}
		}
	}()
	return ch
}

func doneWhen(wg *sync.WaitGroup) chan struct{} {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	return done
}
