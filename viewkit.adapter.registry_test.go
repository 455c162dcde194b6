package viewkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapterRegistry(t *testing.T) {
	t.Run("built-in engines", func(t *testing.T) {
		names := ListAdapters()
		assert.Contains(t, names, EngineNameTwig)
		assert.Contains(t, names, EngineNameMustache)
	})

	t.Run("new adapter by name", func(t *testing.T) {
		twig, err := NewAdapter(EngineNameTwig)
		require.NoError(t, err)
		assert.IsType(t, &TwigAdapter{}, twig)

		mustache, err := NewAdapter(EngineNameMustache)
		require.NoError(t, err)
		assert.IsType(t, &MustacheAdapter{}, mustache)
	})

	t.Run("each call creates a fresh adapter", func(t *testing.T) {
		first, err := NewAdapter(EngineNameTwig)
		require.NoError(t, err)
		second, err := NewAdapter(EngineNameTwig)
		require.NoError(t, err)
		assert.NotSame(t, first, second)
	})

	t.Run("unknown engine", func(t *testing.T) {
		_, err := NewAdapter("smarty")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrAdapterNotFound))
		assert.Contains(t, err.Error(), "smarty")
	})

	t.Run("register custom engine", func(t *testing.T) {
		RegisterAdapter("echo_registry_test", func() Adapter { return &echoAdapter{} })

		adapter, err := NewAdapter("echo_registry_test")
		require.NoError(t, err)
		assert.IsType(t, &echoAdapter{}, adapter)
		assert.Contains(t, ListAdapters(), "echo_registry_test")
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		assert.Panics(t, func() {
			RegisterAdapter(EngineNameTwig, func() Adapter { return NewTwigAdapter() })
		})
	})

	t.Run("nil factory panics", func(t *testing.T) {
		assert.Panics(t, func() {
			RegisterAdapter("nil_factory_test", nil)
		})
	})
}

func TestEngineName(t *testing.T) {
	assert.Equal(t, EngineNameTwig, engineName(NewTwigAdapter()))
	assert.Equal(t, EngineNameMustache, engineName(NewMustacheAdapter()))
	assert.Equal(t, EngineNameUnknown, engineName(&echoAdapter{}))
}
