package effectmodel

import "fmt"

type EffectEnum string

const (
	EffectLog      EffectEnum = "effect_stack_go_effect_enum_log"
	EffectExecutor EffectEnum = "effect_stack_go_effect_enum_executor"
)

var ErrNoEffectHandler = fmt.Errorf("no effect handler registered for this effect")

type EffectScopeConfig struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1
}

func NewEffectScopeConfig(bufferSize int, numWorkers int) EffectScopeConfig {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return EffectScopeConfig{
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}
}

// Partitionable payloads are routed to a worker by the hash of their key.
type Partitionable interface {
	PartitionKey() string
}
