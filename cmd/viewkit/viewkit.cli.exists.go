package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// existsConfig holds parsed exists command configuration
type existsConfig struct {
	view viewFlags
}

func runExists(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseExistsFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	manager, err := cfg.view.newManager(zap.NewNop(), false)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgSetupFailed, err)
		return ExitCodeInputError
	}
	if manager.Template() == "" {
		fmt.Fprintln(stderr, ErrMsgMissingTemplate)
		return ExitCodeUsageError
	}

	file := manager.Template() + manager.Extension()
	if !manager.TemplateExists() {
		fmt.Fprintf(stdout, ExistsTextNotFound, file)
		return ExitCodeNotFound
	}

	fmt.Fprintf(stdout, ExistsTextFound, file)
	return ExitCodeSuccess
}

func parseExistsFlags(args []string) (*existsConfig, error) {
	fs := flag.NewFlagSet(CmdNameExists, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &existsConfig{}
	cfg.view.register(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.view.template == "" && cfg.view.configPath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}
