package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameExists  = "exists"
	CmdNameEngines = "engines"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagConfig    = "config"
	FlagTemplate  = "template"
	FlagPath      = "path"
	FlagExtension = "extension"
	FlagEngine    = "engine"
	FlagData      = "data"
	FlagDataFile  = "data-file"
	FlagOutput    = "output"
	FlagSanitize  = "sanitize"
	FlagVerbose   = "verbose"
	FlagFormat    = "format"
)

// Flag names - short form
const (
	FlagConfigShort    = "c"
	FlagTemplateShort  = "t"
	FlagPathShort      = "p"
	FlagExtensionShort = "e"
	FlagEngineShort    = "E"
	FlagDataShort      = "d"
	FlagDataFileShort  = "f"
	FlagOutputShort    = "o"
	FlagVerboseShort   = "v"
	FlagFormatShort    = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
	FlagDefaultEngine = "twig"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeNotFound   = 3
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgMissingTemplate   = "template name required"
	ErrMsgInvalidFlags      = "invalid flags"
	ErrMsgInvalidData       = "invalid view data"
	ErrMsgSetupFailed       = "failed to set up view manager"
	ErrMsgRenderFailed      = "render failed"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgInvalidFormat     = "invalid output format"
)

// Help text templates
const (
	HelpMainUsage = `go-viewkit - Template view rendering CLI

Usage:
    viewkit <command> [options]

Commands:
    render      Render a template from the search paths
    exists      Check whether a template can be found
    engines     List the available template engines
    version     Show version information
    help        Show help for a command

Use "viewkit help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template from the search paths

Usage:
    viewkit render [options]

Options:
    -c, --config <file>      YAML view config (engine, template, paths, options, data)
    -t, --template <name>    Template name, without extension
    -p, --path <dir>         Search path (repeatable, first wins)
    -e, --extension <ext>    Template file extension
    -E, --engine <name>      Template engine: twig, mustache (default: twig)
    -d, --data <json>        JSON data string
    -f, --data-file <file>   YAML or JSON data file (use "-" for stdin)
    -o, --output <file>      Output file (default: stdout)
    --sanitize               Register the "sanitize" helper
    -v, --verbose            Log render progress to stderr

Examples:
    viewkit render -p ./views -t index -e html -d '{"name": "Alice"}'
    viewkit render -E mustache -p ./views/theme -p ./views/default -t index -e mustache
    viewkit render -c viewkit.yaml -f data.yaml -o index.html`

	HelpExistsUsage = `Check whether a template can be found

Usage:
    viewkit exists [options]

Options:
    -c, --config <file>      YAML view config
    -t, --template <name>    Template name, without extension
    -p, --path <dir>         Search path (repeatable)
    -e, --extension <ext>    Template file extension

Exits with status 3 when the template is not found.`

	HelpEnginesUsage = `List the available template engines

Usage:
    viewkit engines [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpVersionUsage = `Show version information and the available template engines

Usage:
    viewkit version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    viewkit help [command]

Commands:
    render      Show help for render command
    exists      Show help for exists command
    engines     Show help for engines command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-viewkit version %s\nCommit: %s\nGo: %s\nEngines: %s (default: %s)"
	VersionUnknown      = "unknown"
	EngineListSeparator = ", "
)

// Exists output
const (
	ExistsTextFound    = "template found: %s\n"
	ExistsTextNotFound = "template not found: %s\n"
)

// CLI metadata
const (
	CLIName        = "viewkit"
	CLIDescription = "Template view rendering CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
	FmtJSONIndent      = "  "
)
