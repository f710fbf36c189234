package effectmodel_test

import (
	"testing"

	effectmodel "github.com/on-the-ground/effect_stack_go/effects/model"
	"github.com/stretchr/testify/assert"
)

func TestNewEffectScopeConfig_Defaults(t *testing.T) {
	assert.Equal(t, effectmodel.EffectScopeConfig{BufferSize: 1, NumWorkers: 1}, effectmodel.NewEffectScopeConfig(0, -3))
	assert.Equal(t, effectmodel.EffectScopeConfig{BufferSize: 8, NumWorkers: 4}, effectmodel.NewEffectScopeConfig(8, 4))
}
