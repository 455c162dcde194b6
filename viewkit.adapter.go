package viewkit

import (
	"context"
	"maps"
	"slices"

	"go.uber.org/zap"
)

// Adapter is the render contract implemented once per wrapped template engine.
// The Manager pushes its state through the setters immediately before calling
// Render; an adapter holds nothing else between renders.
type Adapter interface {
	SetTemplate(template string)
	SetExtension(extension string)
	SetPaths(paths []string)
	SetOptions(options map[string]any)
	SetData(data map[string]any)
	SetHelpers(helpers map[string]Helper)
	Render(ctx context.Context) (string, error)
}

// EngineNamer is implemented by adapters that report the engine they wrap.
// The name is used for log fields and metric labels.
type EngineNamer interface {
	EngineName() string
}

// LoggerSetter is implemented by adapters that log engine activity such as
// template loads. The Manager hands over its per-render logger before Render.
type LoggerSetter interface {
	SetLogger(logger *zap.Logger)
}

// BaseAdapter stores the state pushed by the Manager. Concrete adapters embed
// it and implement Render.
type BaseAdapter struct {
	template  string
	extension string
	paths     []string
	options   map[string]any
	data      map[string]any
	helpers   map[string]Helper
	logger    *zap.Logger
}

// SetLogger implements LoggerSetter.
func (a *BaseAdapter) SetLogger(logger *zap.Logger) {
	a.logger = logger
}

// Logger returns the adapter's logger, a no-op logger if none was set.
func (a *BaseAdapter) Logger() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}

// SetTemplate sets the template name, without extension.
func (a *BaseAdapter) SetTemplate(template string) {
	a.template = template
}

// SetExtension sets the template file extension, including its leading dot.
func (a *BaseAdapter) SetExtension(extension string) {
	a.extension = extension
}

// SetPaths sets the template search paths in priority order.
func (a *BaseAdapter) SetPaths(paths []string) {
	a.paths = slices.Clone(paths)
}

// SetOptions sets the engine options.
func (a *BaseAdapter) SetOptions(options map[string]any) {
	a.options = maps.Clone(options)
}

// SetData sets the view data.
func (a *BaseAdapter) SetData(data map[string]any) {
	a.data = maps.Clone(data)
}

// SetHelpers sets the named view helpers.
func (a *BaseAdapter) SetHelpers(helpers map[string]Helper) {
	a.helpers = maps.Clone(helpers)
}

// Template returns the template name.
func (a *BaseAdapter) Template() string { return a.template }

// Extension returns the template file extension.
func (a *BaseAdapter) Extension() string { return a.extension }

// Paths returns the search paths.
func (a *BaseAdapter) Paths() []string { return slices.Clone(a.paths) }

// Options returns the engine options.
func (a *BaseAdapter) Options() map[string]any { return maps.Clone(a.options) }

// Data returns the view data.
func (a *BaseAdapter) Data() map[string]any { return maps.Clone(a.data) }

// Helpers returns the view helpers.
func (a *BaseAdapter) Helpers() map[string]Helper { return maps.Clone(a.helpers) }

// TemplateFile returns the template name joined with the extension.
func (a *BaseAdapter) TemplateFile() string { return a.template + a.extension }

// engineName resolves the label used for logs and metrics.
func engineName(adapter Adapter) string {
	if named, ok := adapter.(EngineNamer); ok {
		if name := named.EngineName(); name != "" {
			return name
		}
	}
	return EngineNameUnknown
}
