package viewkit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	mustacheHeader = `<!DOCTYPE html>
<html lang="{{locale.Lang}}">
<head><title>Welcome to the {{title}} test!</title></head>
<body>`
	mustacheIndex  = "{{> header}}<h1>Hello {{name}}!</h1>{{> footer}}"
	mustacheFooter = `</body>
</html>`
	mustacheExpected = `<!DOCTYPE html>
<html lang="en_US">
<head><title>Welcome to the Mustache test!</title></head>
<body><h1>Hello Alice!</h1></body>
</html>`
)

// memoryLoader serves templates and partials from a map.
type memoryLoader map[string]string

func (l memoryLoader) Load(name string) (string, error) {
	source, ok := l[name]
	if !ok {
		return "", NewUnknownTemplateError(name, nil)
	}
	return source, nil
}

func (l memoryLoader) Get(name string) (string, error) {
	return l[name], nil
}

func TestMustacheAdapter_Render(t *testing.T) {
	ctx := context.Background()

	t.Run("through the manager with partials and helper", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplates(t, dir, map[string]string{
			"header.mustache": mustacheHeader,
			"index.mustache":  mustacheIndex,
			"footer.mustache": mustacheFooter,
		})

		m := MustNew(
			WithAdapter(NewMustacheAdapter()),
			WithPaths(dir),
			WithTemplate("index"),
			WithExtension("mustache"),
		)
		require.NoError(t, m.AddHelper(localeHelper{Lang: "en_US"}))
		require.NoError(t, m.MergeData(map[string]any{"title": "Mustache", "name": "Alice"}))

		out, err := m.Render(ctx)
		require.NoError(t, err)
		assert.Equal(t, mustacheExpected, out)
	})

	t.Run("template loads are logged with the manager logger", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		dir := t.TempDir()
		writeTemplates(t, dir, map[string]string{
			"index.mustache": "hi {{> part}}",
			"part.mustache":  "part",
		})

		m := MustNew(
			WithLogger(zap.New(core)),
			WithAdapter(NewMustacheAdapter()),
			WithPaths(dir),
			WithTemplate("index"),
			WithExtension("mustache"),
		)
		out, err := m.Render(ctx)
		require.NoError(t, err)
		assert.Equal(t, "hi part", out)

		loaded := logs.FilterMessage(LogMsgTemplateLoaded).All()
		require.Len(t, loaded, 2)
		assert.NotEmpty(t, loaded[0].ContextMap()[LogFieldRenderID])
		assert.Equal(t, EngineNameMustache, loaded[0].ContextMap()[LogFieldEngine])
	})

	t.Run("partials follow search path priority", func(t *testing.T) {
		theme, base := t.TempDir(), t.TempDir()
		writeTemplates(t, theme, map[string]string{"header.mustache": "[theme]"})
		writeTemplates(t, base, map[string]string{
			"header.mustache": "[base]",
			"page.mustache":   "{{> header}} body",
		})

		a := NewMustacheAdapter()
		a.SetPaths([]string{theme, base})
		a.SetExtension(".mustache")
		a.SetTemplate("page")

		out, err := a.Render(ctx)
		require.NoError(t, err)
		assert.Equal(t, "[theme] body", out)
	})

	t.Run("missing partial renders empty", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplates(t, dir, map[string]string{"page.mustache": "a{{> sidebar}}b"})

		a := NewMustacheAdapter()
		a.SetPaths([]string{dir})
		a.SetExtension(".mustache")
		a.SetTemplate("page")

		out, err := a.Render(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ab", out)
	})

	t.Run("missing template", func(t *testing.T) {
		a := NewMustacheAdapter()
		a.SetPaths([]string{t.TempDir()})
		a.SetExtension(".mustache")
		a.SetTemplate("page")

		_, err := a.Render(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownTemplate))
	})

	t.Run("data wins over helpers", func(t *testing.T) {
		a := NewMustacheAdapter()
		a.SetTemplate("page")
		a.SetOptions(map[string]any{OptionLoader: memoryLoader{"page": "{{locale}}"}})
		a.SetHelpers(map[string]Helper{"locale": localeHelper{Lang: "en_US"}})
		a.SetData(map[string]any{"locale": "from data"})

		out, err := a.Render(ctx)
		require.NoError(t, err)
		assert.Equal(t, "from data", out)
	})

	t.Run("option helpers merged under manager helpers", func(t *testing.T) {
		options := map[string]any{
			OptionLoader:  memoryLoader{"page": "{{greeting}} {{locale.Lang}}"},
			OptionHelpers: map[string]any{"greeting": "Hi", "locale": "ignored"},
		}

		a := NewMustacheAdapter()
		a.SetTemplate("page")
		a.SetOptions(options)
		a.SetHelpers(map[string]Helper{"locale": localeHelper{Lang: "fr_FR"}})

		out, err := a.Render(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Hi fr_FR", out)
		assert.Equal(t, map[string]any{"greeting": "Hi", "locale": "ignored"}, options[OptionHelpers])
	})

	t.Run("custom partials loader", func(t *testing.T) {
		a := NewMustacheAdapter()
		a.SetTemplate("page")
		a.SetOptions(map[string]any{
			OptionLoader:         memoryLoader{"page": "{{> nav}}"},
			OptionPartialsLoader: memoryLoader{"nav": "<nav>{{name}}</nav>"},
		})
		a.SetData(map[string]any{"name": "home"})

		out, err := a.Render(ctx)
		require.NoError(t, err)
		assert.Equal(t, "<nav>home</nav>", out)
	})

	t.Run("values are html escaped", func(t *testing.T) {
		a := NewMustacheAdapter()
		a.SetTemplate("page")
		a.SetOptions(map[string]any{OptionLoader: memoryLoader{"page": "{{name}} {{{name}}}"}})
		a.SetData(map[string]any{"name": "<b>"})

		out, err := a.Render(ctx)
		require.NoError(t, err)
		assert.Equal(t, "&lt;b&gt; <b>", out)
	})

	t.Run("invalid options", func(t *testing.T) {
		for _, key := range []string{OptionLoader, OptionPartialsLoader, OptionHelpers} {
			a := NewMustacheAdapter()
			a.SetTemplate("page")
			a.SetOptions(map[string]any{key: 42})

			_, err := a.Render(ctx)
			require.Error(t, err, key)
			assert.Contains(t, err.Error(), ErrMsgInvalidOption, key)
		}
	})

	t.Run("parse error", func(t *testing.T) {
		a := NewMustacheAdapter()
		a.SetTemplate("page")
		a.SetOptions(map[string]any{OptionLoader: memoryLoader{"page": "{{#open}}never closed"}})

		_, err := a.Render(ctx)
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewMustacheAdapter().Render(cancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
