package viewkit

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/itsatony/go-viewkit/internal"
)

// TemplateLoader resolves a template name to its source.
type TemplateLoader interface {
	Load(name string) (string, error)
}

// FileLoader loads templates from an ordered list of search paths.
// Loaded contents are cached by absolute file path for the lifetime of the
// loader; a loader is normally created per render.
type FileLoader struct {
	paths     []string
	extension string
	logger    *zap.Logger

	mu        sync.RWMutex
	templates map[string]string
}

// NewFileLoader creates a loader over paths. extension, if non-empty, is
// appended to names that do not already end with it.
func NewFileLoader(paths []string, extension string) *FileLoader {
	return &FileLoader{
		paths:     slices.Clone(paths),
		extension: extension,
		logger:    zap.NewNop(),
		templates: make(map[string]string),
	}
}

// WithLogger sets the loader's logger and returns the loader.
func (l *FileLoader) WithLogger(logger *zap.Logger) *FileLoader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Load returns the contents of the first readable file named name (plus
// extension) found in the search paths. The error matches ErrUnknownTemplate
// when no path yields the file.
func (l *FileLoader) Load(name string) (string, error) {
	fileName := l.fileName(name)

	for _, dir := range l.paths {
		file := filepath.Join(dir, fileName)
		if !internal.IsReadableFile(file) {
			continue
		}
		return l.read(file)
	}

	return "", NewUnknownTemplateError(fileName, l.paths)
}

// Get implements mustache.PartialProvider. A partial that cannot be found
// renders as empty; any other failure is returned.
func (l *FileLoader) Get(name string) (string, error) {
	source, err := l.Load(name)
	if errors.Is(err, ErrUnknownTemplate) {
		return "", nil
	}
	return source, err
}

// Paths returns the loader's search paths.
func (l *FileLoader) Paths() []string {
	return slices.Clone(l.paths)
}

// Extension returns the loader's extension.
func (l *FileLoader) Extension() string {
	return l.extension
}

func (l *FileLoader) read(file string) (string, error) {
	key, err := filepath.Abs(file)
	if err != nil {
		key = file
	}

	l.mu.RLock()
	source, ok := l.templates[key]
	l.mu.RUnlock()
	if ok {
		l.logger.Debug(LogMsgTemplateCacheHit, zap.String(LogFieldFile, key))
		return source, nil
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}

	l.mu.Lock()
	l.templates[key] = string(raw)
	l.mu.Unlock()

	l.logger.Debug(LogMsgTemplateLoaded, zap.String(LogFieldFile, key), zap.Int(LogFieldBytes, len(raw)))
	return string(raw), nil
}

func (l *FileLoader) fileName(name string) string {
	if !strings.HasSuffix(name, l.extension) {
		return name + l.extension
	}
	return name
}
