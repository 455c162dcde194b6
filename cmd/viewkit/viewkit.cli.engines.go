package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-viewkit"
)

// enginesOutput represents JSON output for engines
type enginesOutput struct {
	Engines []string `json:"engines"`
	Default string   `json:"default"`
}

func runEngines(args []string, stdout, stderr io.Writer) int {
	format, err := parseFormatFlag(CmdNameEngines, args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	names := viewkit.ListAdapters()

	if format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(enginesOutput{Engines: names, Default: FlagDefaultEngine}, "", FmtJSONIndent)
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}
	return ExitCodeSuccess
}

// parseFormatFlag parses a command that only takes --format
func parseFormatFlag(name string, args []string) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var format string
	fs.StringVar(&format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return "", err
	}

	if format != OutputFormatText && format != OutputFormatJSON {
		return "", errors.New(ErrMsgInvalidFormat)
	}

	return format, nil
}
