package task_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/on-the-ground/effect_stack_go/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_Success(t *testing.T) {
	ctx := context.Background()

	ch := task.Start(ctx, func(ctx context.Context) (string, error) {
		time.Sleep(50 * time.Millisecond)
		return "ok", nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			t.Fatalf("unexpected error: %v", res.Err)
		}
		if res.Value != "ok" {
			t.Fatalf("unexpected value: got %v", res.Value)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for task result")
	}
}

func TestStart_Cancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	ch := task.Start(ctx, func(ctx context.Context) (string, error) {
		time.Sleep(200 * time.Millisecond)
		return "too late", nil
	})

	select {
	case res := <-ch:
		if res.Err == nil || !errors.Is(res.Err, context.DeadlineExceeded) {
			t.Fatalf("expected cancellation error, got: %v", res.Err)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for task result")
	}
}

func TestStart_Parallel(t *testing.T) {
	ctx := context.Background()

	results := make([]<-chan task.Result[int], 0, 5)
	for i := 0; i < 5; i++ {
		n := i
		results = append(results, task.Start(ctx, func(ctx context.Context) (int, error) {
			time.Sleep(time.Duration(10+n*10) * time.Millisecond)
			return n * 2, nil
		}))
	}

	for i, ch := range results {
		v, err := task.Await(ctx, ch)
		require.NoErrorf(t, err, "task %d", i)
		assert.Equal(t, i*2, v)
	}
}

func TestStart_ClosesAfterResult(t *testing.T) {
	ctx := context.Background()
	ch := task.Start(ctx, task.Of(1))

	v, err := task.Await(ctx, ch)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = task.Await(ctx, ch)
	assert.ErrorIs(t, err, task.ErrResultChannelClosed)
}

func TestTimed_RecordsSpan(t *testing.T) {
	ctx := context.Background()

	timing, err := task.Timed(func(ctx context.Context) (int, error) {
		time.Sleep(20 * time.Millisecond)
		return 7, nil
	})(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, timing.Value)
	assert.GreaterOrEqual(t, timing.Span.Duration(), 20*time.Millisecond)
}
