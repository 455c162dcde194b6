package viewkit

import (
	"context"
	"fmt"

	"github.com/cbroglie/mustache"
)

// MustacheAdapter renders Mustache templates with cbroglie/mustache.
//
// Templates and partials are resolved through a FileLoader over the pushed
// search paths and extension unless the options supply their own:
//
//	loader           TemplateLoader            top-level template source
//	partials_loader  mustache.PartialProvider  partial source
//	helpers          map[string]any            extra helpers, merged under the
//	                                           manager's helpers
//
// View data is the primary render context; helpers are looked up when a name
// is missing from the data.
type MustacheAdapter struct {
	BaseAdapter
}

var (
	_ Adapter      = (*MustacheAdapter)(nil)
	_ EngineNamer  = (*MustacheAdapter)(nil)
	_ LoggerSetter = (*MustacheAdapter)(nil)
)

// NewMustacheAdapter creates a Mustache adapter.
func NewMustacheAdapter() *MustacheAdapter {
	return &MustacheAdapter{}
}

// EngineName implements EngineNamer.
func (a *MustacheAdapter) EngineName() string {
	return EngineNameMustache
}

// mustacheOptions is the resolved engine configuration for one render.
type mustacheOptions struct {
	loader   TemplateLoader
	partials mustache.PartialProvider
	helpers  map[string]any
}

// Render implements Adapter. Loader and mustache errors are returned unchanged.
func (a *MustacheAdapter) Render(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	opts, err := a.resolveOptions()
	if err != nil {
		return "", err
	}

	source, err := opts.loader.Load(a.template)
	if err != nil {
		return "", err
	}

	tmpl, err := mustache.ParseStringPartials(source, opts.partials)
	if err != nil {
		return "", err
	}

	data := a.data
	if data == nil {
		data = map[string]any{}
	}
	return tmpl.Render(data, opts.helpers)
}

// resolveOptions builds the engine configuration without touching the pushed
// options map.
func (a *MustacheAdapter) resolveOptions() (*mustacheOptions, error) {
	fileLoader := NewFileLoader(a.paths, a.extension).WithLogger(a.Logger())
	opts := &mustacheOptions{
		loader:   fileLoader,
		partials: fileLoader,
		helpers:  make(map[string]any, len(a.helpers)),
	}

	if value, ok := a.options[OptionLoader]; ok && value != nil {
		loader, ok := value.(TemplateLoader)
		if !ok {
			return nil, NewInvalidOptionError(EngineNameMustache, OptionLoader, fmt.Sprintf("%T", value))
		}
		opts.loader = loader
	}

	if value, ok := a.options[OptionPartialsLoader]; ok && value != nil {
		partials, ok := value.(mustache.PartialProvider)
		if !ok {
			return nil, NewInvalidOptionError(EngineNameMustache, OptionPartialsLoader, fmt.Sprintf("%T", value))
		}
		opts.partials = partials
	}

	if value, ok := a.options[OptionHelpers]; ok && value != nil {
		extra, ok := value.(map[string]any)
		if !ok {
			return nil, NewInvalidOptionError(EngineNameMustache, OptionHelpers, fmt.Sprintf("%T", value))
		}
		for name, helper := range extra {
			opts.helpers[name] = helper
		}
	}
	for name, helper := range a.helpers {
		opts.helpers[name] = helper
	}

	return opts, nil
}
