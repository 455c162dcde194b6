package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/itsatony/go-viewkit"
)

// viewFlags holds the flags shared by commands that resolve templates
type viewFlags struct {
	configPath string
	template   string
	paths      pathList
	extension  string
	engine     string
}

// renderConfig holds parsed render command configuration
type renderConfig struct {
	view         viewFlags
	dataJSON     string
	dataFilePath string
	outputPath   string
	sanitize     bool
	verbose      bool
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	logger := zap.NewNop()
	if cfg.verbose {
		logger = newStderrLogger(stderr)
	}
	defer func() { _ = logger.Sync() }()

	manager, err := cfg.view.newManager(logger, true)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgSetupFailed, err)
		return ExitCodeInputError
	}
	if manager.Template() == "" {
		fmt.Fprintln(stderr, ErrMsgMissingTemplate)
		return ExitCodeUsageError
	}

	data, err := loadData(cfg.dataJSON, cfg.dataFilePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidData, err)
		return ExitCodeInputError
	}
	if err := manager.MergeData(data); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidData, err)
		return ExitCodeInputError
	}

	if cfg.sanitize {
		if err := manager.AddHelper(viewkit.NewSanitizeHelper()); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgSetupFailed, err)
			return ExitCodeError
		}
	}

	result, err := manager.Render(context.Background())
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		if errors.Is(err, viewkit.ErrInvalidTemplate) {
			return ExitCodeNotFound
		}
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	cfg.view.register(fs)
	fs.StringVar(&cfg.view.engine, FlagEngine, "", "")
	fs.StringVar(&cfg.view.engine, FlagEngineShort, "", "")
	fs.StringVar(&cfg.dataJSON, FlagData, "", "")
	fs.StringVar(&cfg.dataJSON, FlagDataShort, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFileShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.sanitize, FlagSanitize, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.view.template == "" && cfg.view.configPath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}

// register binds the shared template flags to fs
func (v *viewFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&v.configPath, FlagConfig, "", "")
	fs.StringVar(&v.configPath, FlagConfigShort, "", "")
	fs.StringVar(&v.template, FlagTemplate, "", "")
	fs.StringVar(&v.template, FlagTemplateShort, "", "")
	fs.Var(&v.paths, FlagPath, "")
	fs.Var(&v.paths, FlagPathShort, "")
	fs.StringVar(&v.extension, FlagExtension, "", "")
	fs.StringVar(&v.extension, FlagExtensionShort, "", "")
}

// newManager builds a manager from the config file, then the flags.
// Flag paths are searched before config paths. With needsEngine set and no
// engine chosen anywhere, the default engine is used.
func (v *viewFlags) newManager(logger *zap.Logger, needsEngine bool) (*viewkit.Manager, error) {
	manager, err := viewkit.New(viewkit.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	if v.configPath != "" {
		cfg, err := viewkit.LoadConfig(v.configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Apply(manager); err != nil {
			return nil, err
		}
	}

	if v.template != "" {
		manager.SetTemplate(v.template)
	}
	if v.extension != "" {
		manager.SetExtension(v.extension)
	}
	manager.PrependPaths(v.paths)

	engine := v.engine
	if engine == "" && needsEngine {
		if _, err := manager.Adapter(); err != nil {
			engine = FlagDefaultEngine
		}
	}
	if engine != "" {
		if err := manager.UseEngine(engine); err != nil {
			return nil, err
		}
	}

	return manager, nil
}

// loadData decodes the data file (YAML or JSON) and then merges the JSON
// string over it
func loadData(jsonStr, filePath string, stdin io.Reader) (map[string]any, error) {
	result := make(map[string]any)

	if filePath != "" {
		raw, err := readInput(filePath, stdin)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, &result); err != nil {
			return nil, err
		}
		if result == nil {
			result = make(map[string]any)
		}
	}

	if jsonStr != "" {
		var inline map[string]any
		if err := json.Unmarshal([]byte(jsonStr), &inline); err != nil {
			return nil, err
		}
		for key, value := range inline {
			result[key] = value
		}
	}

	return result, nil
}

// newStderrLogger creates a development-style console logger writing to w
func newStderrLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
