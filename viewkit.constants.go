package viewkit

// Engine names used by the adapter registry and metric labels
const (
	EngineNameTwig     = "twig"
	EngineNameMustache = "mustache"
	EngineNameUnknown  = "unknown"
)

// Twig adapter option keys
const (
	OptionDebug         = "debug"
	OptionTrimBlocks    = "trim_blocks"
	OptionLStripBlocks  = "lstrip_blocks"
	OptionBannedTags    = "banned_tags"
	OptionBannedFilters = "banned_filters"
	OptionGlobals       = "globals"
)

// Mustache adapter option keys
const (
	OptionLoader         = "loader"
	OptionPartialsLoader = "partials_loader"
	OptionHelpers        = "helpers"
)

// Template set name handed to pongo2
const (
	TwigTemplateSetName = "viewkit"
)

// Built-in helper names
const (
	HelperNameSanitize = "sanitize"
)

// Operation names reported in invalid-key errors
const (
	OpSet       = "Manager.Set"
	OpMergeData = "Manager.MergeData"
	OpSetData   = "Manager.SetData"
	OpAddHelper = "Manager.AddHelper"
)

// Metric constants
const (
	MetricNamespace       = "viewkit"
	MetricRendersTotal    = "renders_total"
	MetricRendersHelp     = "Total template renders by engine and result."
	MetricRenderDuration  = "render_duration_seconds"
	MetricRenderDurHelp   = "Template render duration in seconds by engine."
	MetricLabelEngine     = "engine"
	MetricLabelResult     = "result"
	MetricResultSuccess   = "success"
	MetricResultError     = "error"
	MetricResultNotFound  = "not_found"
	MetricResultNoAdapter = "no_adapter"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyKey       = "key"
	MetaKeyOperation = "operation"
	MetaKeyHelper    = "helper"
	MetaKeyTemplate  = "template"
	MetaKeyPaths     = "paths"
	MetaKeyEngine    = "engine"
)

// Log messages
const (
	LogMsgManagerCreated    = "view manager created"
	LogMsgAdapterSet        = "view adapter set"
	LogMsgHelperAdded       = "view helper registered"
	LogMsgHelperCollision   = "view helper name already registered"
	LogMsgRenderStart       = "rendering template"
	LogMsgRenderDone        = "template rendered"
	LogMsgRenderFailed      = "template render failed"
	LogMsgTemplateNotFound  = "template not found in search paths"
	LogMsgTemplateLoaded    = "template loaded from disk"
	LogMsgTemplateCacheHit  = "template served from loader cache"
	LogMsgMetricsRegistered = "render metrics registered"
)

// Log field names
const (
	LogFieldRenderID  = "render_id"
	LogFieldEngine    = "engine"
	LogFieldTemplate  = "template"
	LogFieldExtension = "extension"
	LogFieldPaths     = "paths"
	LogFieldHelper    = "helper"
	LogFieldFile      = "file"
	LogFieldDuration  = "duration"
	LogFieldBytes     = "bytes"
)
