package viewkit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/flosch/pongo2/v6"
	"go.uber.org/zap"

	"github.com/itsatony/go-viewkit/internal"
)

// TwigAdapter renders Twig/Django-style templates with pongo2.
//
// Each render builds a fresh template set, so nothing compiled is kept between
// renders. Every template name, including the targets of extends, include and
// import, is resolved against the search paths in order and the first path
// holding the file wins. Search paths that do not exist are skipped.
// Recognised options:
//
//	debug           bool       enables pongo2 debug output
//	trim_blocks     bool       drops the first newline after a block tag
//	lstrip_blocks   bool       strips whitespace before a block tag
//	banned_tags     []string   tags templates may not use
//	banned_filters  []string   filters templates may not use
//	globals         map        extra globals; helpers win on name clash
//
// Unknown option keys are ignored. A recognised key holding a value of the
// wrong type fails the render.
type TwigAdapter struct {
	BaseAdapter
}

var (
	_ Adapter      = (*TwigAdapter)(nil)
	_ EngineNamer  = (*TwigAdapter)(nil)
	_ LoggerSetter = (*TwigAdapter)(nil)
)

// NewTwigAdapter creates a Twig-style adapter.
func NewTwigAdapter() *TwigAdapter {
	return &TwigAdapter{}
}

// EngineName implements EngineNamer.
func (a *TwigAdapter) EngineName() string {
	return EngineNameTwig
}

// Render implements Adapter. pongo2 errors are returned unchanged.
func (a *TwigAdapter) Render(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	set, err := a.templateSet()
	if err != nil {
		return "", err
	}

	tpl, err := set.FromFile(a.TemplateFile())
	if err != nil {
		return "", err
	}

	data := make(pongo2.Context, len(a.data))
	for key, value := range a.data {
		data[key] = value
	}
	return tpl.Execute(data)
}

func (a *TwigAdapter) templateSet() (*pongo2.TemplateSet, error) {
	if len(a.paths) == 0 {
		return nil, NewNoSearchPathsError(EngineNameTwig)
	}

	loader := &searchPathLoader{paths: a.paths, logger: a.Logger()}
	set := pongo2.NewSet(TwigTemplateSetName, loader)
	if set.Globals == nil {
		set.Globals = make(pongo2.Context)
	}

	if err := a.applyOptions(set); err != nil {
		return nil, err
	}

	for name, helper := range a.helpers {
		set.Globals[name] = helper
	}
	return set, nil
}

func (a *TwigAdapter) applyOptions(set *pongo2.TemplateSet) error {
	for key, value := range a.options {
		switch key {
		case OptionDebug:
			debug, ok := value.(bool)
			if !ok {
				return NewInvalidOptionError(EngineNameTwig, key, fmt.Sprintf("%T", value))
			}
			set.Debug = debug
		case OptionTrimBlocks, OptionLStripBlocks:
			enabled, ok := value.(bool)
			if !ok {
				return NewInvalidOptionError(EngineNameTwig, key, fmt.Sprintf("%T", value))
			}
			if set.Options == nil {
				set.Options = &pongo2.Options{}
			}
			if key == OptionTrimBlocks {
				set.Options.TrimBlocks = enabled
			} else {
				set.Options.LStripBlocks = enabled
			}
		case OptionBannedTags:
			names, err := stringList(key, value)
			if err != nil {
				return err
			}
			for _, name := range names {
				if err := set.BanTag(name); err != nil {
					return err
				}
			}
		case OptionBannedFilters:
			names, err := stringList(key, value)
			if err != nil {
				return err
			}
			for _, name := range names {
				if err := set.BanFilter(name); err != nil {
					return err
				}
			}
		case OptionGlobals:
			globals, ok := value.(map[string]any)
			if !ok {
				return NewInvalidOptionError(EngineNameTwig, key, fmt.Sprintf("%T", value))
			}
			set.Globals.Update(pongo2.Context(globals))
		}
	}
	return nil
}

// stringList accepts []string or a []any of strings, the shape YAML and JSON
// decoding produce.
func stringList(key string, value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, NewInvalidOptionError(EngineNameTwig, key, fmt.Sprintf("%T", item))
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, NewInvalidOptionError(EngineNameTwig, key, fmt.Sprintf("%T", value))
	}
}

// searchPathLoader is a pongo2.TemplateLoader over an ordered list of search
// paths. Names stay relative to the path roots so that parents and includes
// are searched the same way as the top-level template.
type searchPathLoader struct {
	paths  []string
	logger *zap.Logger
}

var _ pongo2.TemplateLoader = (*searchPathLoader)(nil)

// Abs implements pongo2.TemplateLoader. Names are not tied to the including
// template's directory.
func (l *searchPathLoader) Abs(_, name string) string {
	return name
}

// Get implements pongo2.TemplateLoader.
func (l *searchPathLoader) Get(name string) (io.Reader, error) {
	file := name
	if !filepath.IsAbs(name) {
		found, ok := internal.FindFile(l.paths, name)
		if !ok {
			return nil, NewUnknownTemplateError(name, l.paths)
		}
		file = found
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	l.logger.Debug(LogMsgTemplateLoaded, zap.String(LogFieldFile, file), zap.Int(LogFieldBytes, len(raw)))
	return bytes.NewReader(raw), nil
}
