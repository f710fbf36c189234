package effects_test

import (
	"context"
	"testing"
	"time"

	"github.com/on-the-ground/effect_stack_go/effects"
	effectmodel "github.com/on-the-ground/effect_stack_go/effects/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const effectEcho effectmodel.EffectEnum = "effect_stack_go_effect_enum_test_echo"

type echoPayload string

func (p echoPayload) PartitionKey() string { return string(p) }

func TestResumableEffect_RoundTrip(t *testing.T) {
	parent := context.Background()
	ctx, end := effects.WithResumableEffectHandler(
		parent,
		effectmodel.NewEffectScopeConfig(2, 2),
		effectEcho,
		func(_ context.Context, p echoPayload) (string, error) {
			return "echo:" + string(p), nil
		},
	)
	assert.True(t, effects.HasEffectHandler(ctx, effectEcho))

	ch, err := effects.PerformResumableEffect[echoPayload, string](ctx, effectEcho, "ping")
	require.NoError(t, err)

	select {
	case res := <-ch:
		require.NoError(t, res.Err)
		assert.Equal(t, "echo:ping", res.Value)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for effect result")
	}

	assert.Equal(t, parent, end())
}

func TestEffects_NoHandler(t *testing.T) {
	ctx := context.Background()
	assert.False(t, effects.HasEffectHandler(ctx, effectEcho))

	_, err := effects.PerformResumableEffect[echoPayload, string](ctx, effectEcho, "ping")
	assert.ErrorIs(t, err, effectmodel.ErrNoEffectHandler)

	err = effects.FireAndForgetEffect(ctx, effectEcho, "ping")
	assert.ErrorIs(t, err, effectmodel.ErrNoEffectHandler)
}

func TestEffects_WrongPayloadType(t *testing.T) {
	ctx, end := effects.WithFireAndForgetEffectHandler(context.Background(), 1, effectEcho, func(context.Context, string) {})
	defer end()

	err := effects.FireAndForgetEffect(ctx, effectEcho, 42)
	assert.ErrorContains(t, err, "unexpected type")
}

func TestFireAndForgetEffect_TeardownRuns(t *testing.T) {
	received := make(chan string, 1)
	tornDown := make(chan struct{})

	ctx, end := effects.WithFireAndForgetEffectHandler(
		context.Background(),
		0,
		effectEcho,
		func(_ context.Context, msg string) { received <- msg },
		func() { close(tornDown) },
	)

	require.NoError(t, effects.FireAndForgetEffect(ctx, effectEcho, "hello"))
	select {
	case msg := <-received:
		assert.Equal(t, "hello", msg)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for handler")
	}

	end()
	select {
	case <-tornDown:
	default:
		t.Fatal("teardown should run on end")
	}
}

func TestNormalizeTeardown_TooMany(t *testing.T) {
	assert.Panics(t, func() {
		effects.WithFireAndForgetEffectHandler(context.Background(), 1, effectEcho, func(context.Context, string) {}, func() {}, func() {})
	})
}
