package viewkit

import (
	"context"
	"maps"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/itsatony/go-viewkit/internal"
)

// Manager is the main entry point for the view component.
// It owns template name, extension, search paths, engine options, view data and
// helpers, and delegates rendering to the attached Adapter.
//
// A Manager is not safe for concurrent mutation.
type Manager struct {
	adapter   Adapter
	template  string
	extension string
	paths     *internal.PathList
	options   map[string]any
	data      map[string]any
	helpers   map[string]Helper
	logger    *zap.Logger
	metrics   *renderMetrics
}

// New creates a new Manager with the given options.
func New(opts ...Option) (*Manager, error) {
	config := defaultManagerConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Manager{
		adapter:  config.adapter,
		template: config.template,
		paths:    internal.NewPathList(config.paths...),
		options:  config.options,
		data:     make(map[string]any),
		helpers:  make(map[string]Helper),
		logger:   logger,
	}
	m.SetExtension(config.extension)

	if config.registerer != nil {
		metrics, err := newRenderMetrics(config.registerer)
		if err != nil {
			return nil, err
		}
		m.metrics = metrics
		logger.Debug(LogMsgMetricsRegistered)
	}

	logger.Debug(LogMsgManagerCreated, zap.Int(LogFieldPaths, m.paths.Len()))
	return m, nil
}

// MustNew creates a new Manager and panics if there's an error.
func MustNew(opts ...Option) *Manager {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// SetAdapter replaces the active adapter.
func (m *Manager) SetAdapter(adapter Adapter) {
	m.adapter = adapter
	m.logger.Debug(LogMsgAdapterSet, zap.String(LogFieldEngine, engineName(adapter)))
}

// Adapter returns the active adapter, or an error matching ErrUndefinedAdapter
// if none was ever set.
func (m *Manager) Adapter() (Adapter, error) {
	if m.adapter == nil {
		return nil, NewUndefinedAdapterError()
	}
	return m.adapter, nil
}

// UseEngine sets a fresh adapter created from the adapter registry.
func (m *Manager) UseEngine(name string) error {
	adapter, err := NewAdapter(name)
	if err != nil {
		return err
	}
	m.SetAdapter(adapter)
	return nil
}

// SetTemplate sets the template name, without extension.
func (m *Manager) SetTemplate(template string) {
	m.template = template
}

// Template returns the template name. An empty string means unset.
func (m *Manager) Template() string {
	return m.template
}

// TemplateExists reports whether <path>/<template><extension> is a readable
// file in at least one search path. It is false when no path or no template is
// set. Nothing is cached between calls.
func (m *Manager) TemplateExists() bool {
	if m.paths.Len() == 0 || m.template == "" {
		return false
	}
	_, ok := internal.FindFile(m.paths.Slice(), m.templateFile())
	return ok
}

// SetExtension sets the template file extension. Non-empty values are stored
// with exactly one leading dot; an empty value clears the extension.
func (m *Manager) SetExtension(extension string) {
	m.extension = internal.NormalizeExtension(extension)
}

// Extension returns the template file extension, including the leading dot.
func (m *Manager) Extension() string {
	return m.extension
}

// AddPath appends a search path unless it is already present.
func (m *Manager) AddPath(path string) {
	m.paths.Append(path)
}

// PrependPath inserts a search path at the front unless it is already present.
func (m *Manager) PrependPath(path string) {
	m.paths.Prepend(path)
}

// AddPaths appends each search path unless it is already present.
func (m *Manager) AddPaths(paths []string) {
	m.paths.Append(paths...)
}

// PrependPaths inserts the search paths ahead of the existing ones, keeping
// their relative order.
func (m *Manager) PrependPaths(paths []string) {
	m.paths.Prepend(paths...)
}

// ReplacePaths clears the search paths and adds paths. Duplicates within
// paths are dropped.
func (m *Manager) ReplacePaths(paths []string) {
	m.paths.Clear()
	m.AddPaths(paths)
}

// Paths returns the search paths in priority order.
func (m *Manager) Paths() []string {
	return m.paths.Slice()
}

// HasPath reports whether path is a configured search path.
func (m *Manager) HasPath(path string) bool {
	return m.paths.Has(path)
}

// RemovePath removes the first entry equal to path.
func (m *Manager) RemovePath(path string) {
	m.paths.Remove(path)
}

// ClearPaths removes all search paths.
func (m *Manager) ClearPaths() {
	m.paths.Clear()
}

// SetOptions replaces all engine options.
func (m *Manager) SetOptions(options map[string]any) {
	m.options = make(map[string]any, len(options))
	m.MergeOptions(options)
}

// MergeOptions upserts engine options.
func (m *Manager) MergeOptions(options map[string]any) {
	for key, value := range options {
		m.options[key] = value
	}
}

// SetOption sets one engine option.
func (m *Manager) SetOption(key string, value any) {
	m.options[key] = value
}

// Options returns a copy of the engine options.
func (m *Manager) Options() map[string]any {
	return maps.Clone(m.options)
}

// Option returns the engine option for key, or nil when it is not set.
// Use HasOption to tell a nil value from an absent one.
func (m *Manager) Option(key string) any {
	return m.options[key]
}

// HasOption reports whether key is set, even to nil.
func (m *Manager) HasOption(key string) bool {
	_, ok := m.options[key]
	return ok
}

// RemoveOption deletes an engine option.
func (m *Manager) RemoveOption(key string) {
	delete(m.options, key)
}

// ClearOptions deletes all engine options.
func (m *Manager) ClearOptions() {
	m.options = make(map[string]any)
}

// SetData replaces all view data. Every key must be an identifier; on failure
// the current data is left untouched.
func (m *Manager) SetData(data map[string]any) error {
	if err := validateKeys(OpSetData, data); err != nil {
		return err
	}
	m.data = make(map[string]any, len(data))
	for key, value := range data {
		m.data[key] = value
	}
	return nil
}

// MergeData upserts view data. Every key must be an identifier; on failure
// nothing is merged.
func (m *Manager) MergeData(data map[string]any) error {
	if err := validateKeys(OpMergeData, data); err != nil {
		return err
	}
	for key, value := range data {
		m.data[key] = value
	}
	return nil
}

// Set sets one view data entry. key must be an identifier.
func (m *Manager) Set(key string, value any) error {
	if !internal.IsIdentifierKey(key) {
		return NewInvalidKeyError(OpSet, key)
	}
	m.data[key] = value
	return nil
}

// Get returns the view data entry for key, or fallback when it is not set.
func (m *Manager) Get(key string, fallback any) any {
	value, ok := m.data[key]
	if !ok {
		return fallback
	}
	return value
}

// Has reports whether key is set in the view data.
func (m *Manager) Has(key string) bool {
	_, ok := m.data[key]
	return ok
}

// Remove deletes a view data entry.
func (m *Manager) Remove(key string) {
	delete(m.data, key)
}

// Data returns a copy of the view data.
func (m *Manager) Data() map[string]any {
	return maps.Clone(m.data)
}

// ClearData deletes all view data.
func (m *Manager) ClearData() {
	m.data = make(map[string]any)
}

// AddHelper registers a helper under its self-reported name. The name must be
// unused and an identifier; the first registration of a name is kept.
func (m *Manager) AddHelper(helper Helper) error {
	if helper == nil {
		return NewNilHelperError()
	}

	name := helper.Name()
	if _, exists := m.helpers[name]; exists {
		m.logger.Warn(LogMsgHelperCollision, zap.String(LogFieldHelper, name))
		return NewDuplicateHelperError(name)
	}
	if !internal.IsIdentifierKey(name) {
		return NewInvalidKeyError(OpAddHelper, name)
	}

	m.helpers[name] = helper
	m.logger.Debug(LogMsgHelperAdded, zap.String(LogFieldHelper, name))
	return nil
}

// HasHelper reports whether a helper is registered under name.
func (m *Manager) HasHelper(name string) bool {
	_, ok := m.helpers[name]
	return ok
}

// RemoveHelper unregisters the helper with the given name.
func (m *Manager) RemoveHelper(name string) {
	delete(m.helpers, name)
}

// Helpers returns a copy of the helper registry keyed by name.
func (m *Manager) Helpers() map[string]Helper {
	return maps.Clone(m.helpers)
}

// Render checks that the template exists, pushes template, extension, paths,
// options, data and helpers into the adapter in that order and returns the
// adapter's output verbatim.
//
// Adapter failures are returned as *RenderError, which matches ErrRenderFailed
// and unwraps to the adapter's error.
func (m *Manager) Render(ctx context.Context) (string, error) {
	adapter, err := m.Adapter()
	if err != nil {
		m.metrics.observe(EngineNameUnknown, MetricResultNoAdapter, 0)
		return "", err
	}
	engine := engineName(adapter)

	if !m.TemplateExists() {
		m.logger.Debug(LogMsgTemplateNotFound,
			zap.String(LogFieldTemplate, m.templateFile()),
			zap.Strings(LogFieldPaths, m.paths.Slice()),
		)
		m.metrics.observe(engine, MetricResultNotFound, 0)
		return "", NewInvalidTemplateError(m.templateFile(), m.paths.Slice())
	}

	renderID := uuid.NewString()
	logger := m.logger.With(
		zap.String(LogFieldRenderID, renderID),
		zap.String(LogFieldEngine, engine),
		zap.String(LogFieldTemplate, m.template),
	)

	adapter.SetTemplate(m.template)
	adapter.SetExtension(m.extension)
	adapter.SetPaths(m.paths.Slice())
	adapter.SetOptions(maps.Clone(m.options))
	adapter.SetData(maps.Clone(m.data))
	adapter.SetHelpers(maps.Clone(m.helpers))
	if setter, ok := adapter.(LoggerSetter); ok {
		setter.SetLogger(logger)
	}

	logger.Debug(LogMsgRenderStart, zap.String(LogFieldExtension, m.extension))
	start := time.Now()
	out, err := adapter.Render(ctx)
	elapsed := time.Since(start)

	if err != nil {
		logger.Warn(LogMsgRenderFailed, zap.Duration(LogFieldDuration, elapsed), zap.Error(err))
		m.metrics.observe(engine, MetricResultError, elapsed)
		return "", NewRenderError(m.templateFile(), engine, err)
	}

	logger.Debug(LogMsgRenderDone,
		zap.Duration(LogFieldDuration, elapsed),
		zap.Int(LogFieldBytes, len(out)),
	)
	m.metrics.observe(engine, MetricResultSuccess, elapsed)
	return out, nil
}

// templateFile returns the template name joined with the extension.
func (m *Manager) templateFile() string {
	return m.template + m.extension
}

// validateKeys checks every key of data, reporting the lexically first
// invalid one.
func validateKeys(operation string, data map[string]any) error {
	var invalid []string
	for key := range data {
		if !internal.IsIdentifierKey(key) {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	sort.Strings(invalid)
	return NewInvalidKeyError(operation, invalid[0])
}
