package effects

import (
	"context"
	"fmt"

	"github.com/on-the-ground/effect_stack_go/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/effect_stack_go/effects/model"
	"github.com/on-the-ground/effect_stack_go/shared/helper"
	"go.uber.org/zap"
)

// WithResumableEffectHandler registers a resumable effect handler for a given effect enum.
//
// Payloads are spread over config.NumWorkers workers by the hash of their
// PartitionKey(), so payloads sharing a key are handled in order.
//
// Usage:
//
//	ctx, end := WithResumableEffectHandler(ctx, config, MyEffectEnum, handleFn)
//	defer end()
func WithResumableEffectHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P) (R, error),
	teardown ...func(),
) (context.Context, func() context.Context) {
	handler := handlers.NewResumableHandler(ctx, config, handleFn, normalizeTeardown(teardown))
	ctxWith := context.WithValue(ctx, enum, handler)
	zap.L().Debug("created resumable effect handler", zap.String("effectId", handler.EffectId), zap.Any("enum", enum))

	return ctxWith, func() context.Context {
		handler.Close()
		zap.L().Debug("closed resumable effect handler", zap.String("effectId", handler.EffectId), zap.Any("enum", enum))
		return ctx
	}
}

// PerformResumableEffect sends a payload to the resumable effect handler
// registered for enum and returns the channel its result arrives on.
//
// Returns an error wrapping ErrNoEffectHandler if none is registered.
func PerformResumableEffect[P effectmodel.Partitionable, R any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) (<-chan handlers.ResumableResult[R], error) {
	handler, err := helper.GetTypedValueOf[handlers.ResumableHandler[P, R]](
		func() (any, error) {
			return getHandler(ctx, enum)
		},
	)
	if err != nil {
		return nil, err
	}
	return handler.PerformEffect(ctx, payload), nil
}

// WithFireAndForgetEffectHandler registers a fire-and-forget effect handler for a given effect enum.
//
// Suitable for one-shot effects like logging. The handler executes without returning a result.
func WithFireAndForgetEffectHandler[P any](
	ctx context.Context,
	bufferSize int,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P),
	teardown ...func(),
) (context.Context, func() context.Context) {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	handler := handlers.NewFireAndForgetHandler(ctx, bufferSize, handleFn, normalizeTeardown(teardown))
	ctxWith := context.WithValue(ctx, enum, handler)
	zap.L().Debug("created fire/forget effect handler", zap.String("effectId", handler.EffectId), zap.Any("enum", enum))

	return ctxWith, func() context.Context {
		handler.Close()
		zap.L().Debug("closed fire/forget effect handler", zap.String("effectId", handler.EffectId), zap.Any("enum", enum))
		return ctx
	}
}

// FireAndForgetEffect triggers a fire-and-forget effect for the given enum and payload.
//
// Returns an error wrapping ErrNoEffectHandler if none is registered.
func FireAndForgetEffect[P any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) error {
	handler, err := helper.GetTypedValueOf[handlers.FireAndForgetHandler[P]](
		func() (any, error) {
			return getHandler(ctx, enum)
		},
	)
	if err != nil {
		return err
	}
	handler.FireAndForgetEffect(ctx, payload)
	return nil
}

// HasEffectHandler reports whether a handler for enum is registered in ctx.
func HasEffectHandler(ctx context.Context, enum effectmodel.EffectEnum) bool {
	_, err := getHandler(ctx, enum)
	return err == nil
}

func getHandler(ctx context.Context, enum effectmodel.EffectEnum) (any, error) {
	raw := ctx.Value(enum)
	if raw == nil {
		return nil, fmt.Errorf("%w: %v", effectmodel.ErrNoEffectHandler, enum)
	}
	return raw, nil
}

// normalizeTeardown flattens optional teardown functions into a single callable.
//
// Accepts either 0 or 1 teardown functions. Panics if more than one is passed.
func normalizeTeardown(teardown []func()) func() {
	switch len(teardown) {
	case 1:
		return teardown[0]
	case 0:
		return func() {}
	default:
		panic("normalizeTeardown: only one or zero teardown functions allowed")
	}
}
