package viewkit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/itsatony/go-cuserr"

	"github.com/itsatony/go-viewkit/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Adapter errors
	ErrMsgUndefinedAdapter = "view adapter is not defined; pass an Adapter to Manager.SetAdapter before rendering"
	ErrMsgAdapterNotFound  = "view adapter not registered"
	ErrMsgNilAdapter       = "view adapter factory is nil"
	ErrMsgAdapterExists    = "view adapter already registered"

	// Validation errors
	ErrMsgInvalidKey      = "view helper names and data keys may contain letters, numbers, or underscores and must begin with a letter or underscore"
	ErrMsgDuplicateHelper = "view helper name is already registered"
	ErrMsgNilHelper       = "view helper is nil"

	// Template errors
	ErrMsgInvalidTemplate = "template does not exist or is not readable"
	ErrMsgUnknownTemplate = "unknown template"
	ErrMsgNoSearchPaths   = "no template search paths configured"
	ErrMsgInvalidOption   = "invalid engine option"

	// Render errors
	ErrMsgRenderFailed = "template render failed"

	// Config errors
	ErrMsgConfigRead  = "failed to read view config"
	ErrMsgConfigParse = "failed to parse view config"
)

// Error format strings
const (
	ErrFmtInvalidKey      = "%s: %s received %q"
	ErrFmtDuplicateHelper = "%s: %q"
	ErrFmtTemplatePaths   = "%s: %q in paths: %s"
	ErrFmtUnknownTemplate = "%s: %s >> paths: %s"
	ErrFmtNamed           = "%s: %s"
	ErrFmtOption          = "%s %q: %s"
)

// Error code constants for categorization
const (
	ErrCodeAdapter    = "VIEWKIT_ADAPTER"
	ErrCodeValidation = "VIEWKIT_VALIDATION"
	ErrCodeTemplate   = "VIEWKIT_TEMPLATE"
	ErrCodeLoader     = "VIEWKIT_LOADER"
	ErrCodeConfig     = "VIEWKIT_CONFIG"
)

// Sentinel errors. Every error returned by this package that belongs to one of
// these kinds matches it with errors.Is.
var (
	ErrUndefinedAdapter = errors.New(ErrMsgUndefinedAdapter)
	ErrAdapterNotFound  = errors.New(ErrMsgAdapterNotFound)
	ErrInvalidKey       = errors.New(ErrMsgInvalidKey)
	ErrDuplicateHelper  = errors.New(ErrMsgDuplicateHelper)
	ErrInvalidTemplate  = errors.New(ErrMsgInvalidTemplate)
	ErrUnknownTemplate  = errors.New(ErrMsgUnknownTemplate)
	ErrRenderFailed     = errors.New(ErrMsgRenderFailed)
)

// NewUndefinedAdapterError creates an error for rendering without an adapter.
func NewUndefinedAdapterError() error {
	return cuserr.WrapStdError(ErrUndefinedAdapter, ErrCodeAdapter, ErrMsgUndefinedAdapter)
}

// NewAdapterNotFoundError creates an error for an unregistered engine name.
func NewAdapterNotFoundError(engine string) error {
	return cuserr.WrapStdError(ErrAdapterNotFound, ErrCodeAdapter,
		fmt.Sprintf(ErrFmtNamed, ErrMsgAdapterNotFound, engine)).
		WithMetadata(MetaKeyEngine, engine)
}

// NewInvalidKeyError creates an error for a data key or helper name that is not
// an identifier. operation names the call that received the key.
func NewInvalidKeyError(operation, key string) error {
	return cuserr.WrapStdError(ErrInvalidKey, ErrCodeValidation,
		fmt.Sprintf(ErrFmtInvalidKey, ErrMsgInvalidKey, operation, key)).
		WithMetadata(MetaKeyKey, key).
		WithMetadata(MetaKeyOperation, operation)
}

// NewDuplicateHelperError creates a helper name collision error.
func NewDuplicateHelperError(name string) error {
	return cuserr.WrapStdError(ErrDuplicateHelper, ErrCodeValidation,
		fmt.Sprintf(ErrFmtDuplicateHelper, ErrMsgDuplicateHelper, name)).
		WithMetadata(MetaKeyHelper, name)
}

// NewNilHelperError creates an error for registering a nil helper.
func NewNilHelperError() error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgNilHelper)
}

// NewInvalidTemplateError creates an error for a template that could not be
// found in any search path. template includes the extension.
func NewInvalidTemplateError(template string, paths []string) error {
	pathList := internal.FormatPathList(paths)
	return cuserr.WrapStdError(ErrInvalidTemplate, ErrCodeTemplate,
		fmt.Sprintf(ErrFmtTemplatePaths, ErrMsgInvalidTemplate, template, pathList)).
		WithMetadata(MetaKeyTemplate, template).
		WithMetadata(MetaKeyPaths, pathList)
}

// NewUnknownTemplateError creates a loader error for a file name that no
// search path yields.
func NewUnknownTemplateError(fileName string, paths []string) error {
	pathList := internal.FormatPathList(paths)
	return cuserr.WrapStdError(ErrUnknownTemplate, ErrCodeLoader,
		fmt.Sprintf(ErrFmtUnknownTemplate, ErrMsgUnknownTemplate, fileName, pathList)).
		WithMetadata(MetaKeyTemplate, fileName).
		WithMetadata(MetaKeyPaths, pathList)
}

// NewNoSearchPathsError creates an error for adapters rendering without paths.
func NewNoSearchPathsError(engine string) error {
	return cuserr.NewValidationError(ErrCodeTemplate, ErrMsgNoSearchPaths).
		WithMetadata(MetaKeyEngine, engine)
}

// NewInvalidOptionError creates an error for an engine option of the wrong type.
func NewInvalidOptionError(engine, option, reason string) error {
	return cuserr.NewValidationError(ErrCodeValidation, fmt.Sprintf(ErrFmtOption, ErrMsgInvalidOption, option, reason)).
		WithMetadata(MetaKeyEngine, engine).
		WithMetadata(MetaKeyKey, option)
}

// NewConfigError wraps a configuration read or parse failure.
func NewConfigError(msg, path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, msg).
		WithMetadata(MetaKeyPaths, path)
}

// RenderError is the uniform error returned by Manager.Render when the adapter
// fails. The adapter's error is kept as Cause, so errors.Is and errors.As still
// reach engine-specific errors.
type RenderError struct {
	Message  string
	Template string
	Engine   string
	Cause    error
}

// NewRenderError wraps an adapter failure.
func NewRenderError(template, engine string, cause error) *RenderError {
	msg := ErrMsgRenderFailed
	if cause != nil {
		msg = cause.Error()
	}
	return &RenderError{
		Message:  msg,
		Template: template,
		Engine:   engine,
		Cause:    cause,
	}
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	var b strings.Builder
	b.WriteString(ErrMsgRenderFailed)
	if e.Template != "" {
		b.WriteString(" [")
		b.WriteString(e.Template)
		b.WriteString("]")
	}
	if e.Message != "" && e.Message != ErrMsgRenderFailed {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Is matches ErrRenderFailed.
func (e *RenderError) Is(target error) bool {
	return target == ErrRenderFailed
}
