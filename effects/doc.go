// Package effects scopes effect handlers to a context.Context.
//
// A handler is registered with WithXxxEffectHandler, which returns a derived
// context carrying the handler and a teardown function that stops its workers
// and returns the parent context. Code running under the derived context
// performs the effect with PerformResumableEffect or FireAndForgetEffect;
// performing an effect no handler was registered for yields an error wrapping
// effectmodel.ErrNoEffectHandler.
//
// Built-in handlers live in the sub-packages:
//   - log: structured logging backed by zap
//   - executor: a partitioned worker pool that tasks can be dispatched onto
//
// Example:
//
//	ctx, endOfLog := log.WithZapEffectHandler(ctx, 10, logger)
//	defer endOfLog()
//
//	log.LogEff(ctx, log.LogInfo, "result", map[string]interface{}{"value": v})
package effects
