package viewkit

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Manager.
type Option func(*managerConfig)

// managerConfig holds the construction-time configuration for a Manager.
type managerConfig struct {
	logger     *zap.Logger
	registerer prometheus.Registerer
	adapter    Adapter
	template   string
	extension  string
	paths      []string
	options    map[string]any
}

// defaultManagerConfig returns the default manager configuration.
func defaultManagerConfig() *managerConfig {
	return &managerConfig{
		logger:  nil,
		options: make(map[string]any),
	}
}

// WithLogger sets the logger for the manager.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *managerConfig) {
		c.logger = logger
	}
}

// WithMetrics registers render metrics on reg.
// Default: nil (no metrics)
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *managerConfig) {
		c.registerer = reg
	}
}

// WithAdapter sets the initial adapter.
func WithAdapter(adapter Adapter) Option {
	return func(c *managerConfig) {
		c.adapter = adapter
	}
}

// WithTemplate sets the initial template name.
func WithTemplate(template string) Option {
	return func(c *managerConfig) {
		c.template = template
	}
}

// WithExtension sets the template file extension. A leading dot is optional.
func WithExtension(extension string) Option {
	return func(c *managerConfig) {
		c.extension = extension
	}
}

// WithPaths appends template search paths in priority order.
func WithPaths(paths ...string) Option {
	return func(c *managerConfig) {
		c.paths = append(c.paths, paths...)
	}
}

// WithOptions merges engine options.
func WithOptions(options map[string]any) Option {
	return func(c *managerConfig) {
		for key, value := range options {
			c.options[key] = value
		}
	}
}
