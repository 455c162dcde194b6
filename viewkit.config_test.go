package viewkit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `engine: mustache
template: index
extension: mustache
paths:
  - ./views/theme
  - ./views/default
options:
  helpers:
    brand: viewkit
data:
  title: Welcome
  count: 3
`

func TestParseConfig(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(testConfigYAML))
		require.NoError(t, err)

		assert.Equal(t, EngineNameMustache, cfg.Engine)
		assert.Equal(t, "index", cfg.Template)
		assert.Equal(t, "mustache", cfg.Extension)
		assert.Equal(t, []string{"./views/theme", "./views/default"}, cfg.Paths)
		assert.Equal(t, map[string]any{"brand": "viewkit"}, cfg.Options[OptionHelpers])
		assert.Equal(t, "Welcome", cfg.Data["title"])
		assert.Equal(t, 3, cfg.Data["count"])
	})

	t.Run("json", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`{"engine": "twig", "paths": ["/views"]}`))
		require.NoError(t, err)
		assert.Equal(t, EngineNameTwig, cfg.Engine)
		assert.Equal(t, []string{"/views"}, cfg.Paths)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseConfig([]byte("paths: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgConfigParse)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "viewkit.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "index", cfg.Template)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgConfigRead)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestConfig_Apply(t *testing.T) {
	t.Run("applies every field", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(testConfigYAML))
		require.NoError(t, err)

		m := MustNew(WithPaths("./views/custom"))
		require.NoError(t, m.Set("name", "Alice"))
		require.NoError(t, cfg.Apply(m))

		adapter, err := m.Adapter()
		require.NoError(t, err)
		assert.IsType(t, &MustacheAdapter{}, adapter)
		assert.Equal(t, "index", m.Template())
		assert.Equal(t, ".mustache", m.Extension())
		assert.Equal(t, []string{"./views/custom", "./views/theme", "./views/default"}, m.Paths())
		assert.True(t, m.HasOption(OptionHelpers))
		assert.Equal(t, "Alice", m.Get("name", nil))
		assert.Equal(t, "Welcome", m.Get("title", nil))
	})

	t.Run("empty fields keep manager state", func(t *testing.T) {
		m := MustNew(WithTemplate("page"), WithExtension("html"))
		require.NoError(t, (&Config{}).Apply(m))

		assert.Equal(t, "page", m.Template())
		assert.Equal(t, ".html", m.Extension())
		_, err := m.Adapter()
		assert.True(t, errors.Is(err, ErrUndefinedAdapter))
	})

	t.Run("unknown engine", func(t *testing.T) {
		err := (&Config{Engine: "smarty"}).Apply(MustNew())
		assert.True(t, errors.Is(err, ErrAdapterNotFound))
	})

	t.Run("invalid data key", func(t *testing.T) {
		err := (&Config{Data: map[string]any{"page-title": "x"}}).Apply(MustNew())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidKey))
		assert.Contains(t, err.Error(), OpMergeData)
	})
}
