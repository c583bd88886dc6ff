package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flint/types"
)

func constFn(v types.Value) Invoke {
	return func(args []types.Value) (types.Value, error) { return v, nil }
}

func TestNewOverridesDefaultsByName(t *testing.T) {
	defaults := []FunctionImpl{{Name: "f", Arity: FixedArity(0), Invoke: constFn(types.NewInt(1))}}
	plugins := []FunctionImpl{{Name: "f", Arity: FixedArity(0), Invoke: constFn(types.NewInt(2))}}
	reg := New(defaults, plugins)

	fn, ok := reg.Resolve("f")
	require.True(t, ok)
	v, err := fn.Invoke(nil)
	require.NoError(t, err)
	assert.True(t, types.NewInt(2).Equal(v))
}

func TestResolveMissReturnsFalse(t *testing.T) {
	reg := New(nil, nil)
	_, ok := reg.Resolve("nope")
	assert.False(t, ok)
}

func TestRegistryIDsAreDistinctAndStable(t *testing.T) {
	r1 := New(nil, nil)
	r2 := New(nil, nil)
	assert.NotEqual(t, r1.ID(), r2.ID())
	assert.Equal(t, r1.ID(), r1.ID())
}

func TestArityAccepts(t *testing.T) {
	assert.True(t, FixedArity(2).Accepts(2))
	assert.False(t, FixedArity(2).Accepts(3))
	assert.True(t, AnyArity().Accepts(0))
	assert.True(t, AnyArity().Accepts(99))
}

func TestConfigValidate(t *testing.T) {
	good := Config{Packs: []string{"math", "string"}}
	assert.NoError(t, good.Validate())

	bad := Config{Packs: []string{"not-a-pack"}}
	assert.Error(t, bad.Validate())

	empty := Config{}
	assert.Error(t, empty.Validate())
}

func TestConfigDefaults(t *testing.T) {
	c := Config{Packs: []string{"math"}}
	assert.True(t, c.CacheEnabledOrDefault())
	assert.Equal(t, 1000, c.CacheLimitOrDefault())

	disabled := false
	c2 := Config{Packs: []string{"math"}, CacheEnabled: &disabled, CacheLimit: 42}
	assert.False(t, c2.CacheEnabledOrDefault())
	assert.Equal(t, 42, c2.CacheLimitOrDefault())
}
