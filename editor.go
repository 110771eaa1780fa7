package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.abhg.dev/scribe/internal/editor"
	"go.abhg.dev/scribe/internal/sigstack"
)

var _lookupEnv editor.Lookup = os.LookupEnv

// resolveEditor returns the editor command to run.
// An editor passed with --editor takes precedence over the environment.
func resolveEditor(opts *globalOptions) (editor.Command, error) {
	if opts.Editor != "" {
		return editor.Parse(opts.Editor)
	}

	cmd, err := editor.Resolve(_lookupEnv)
	if errors.Is(err, editor.ErrMissingEditor) {
		return nil, fmt.Errorf("%w: set one of them, or use --editor", err)
	}
	return cmd, err
}

// editorRunner builds the runner for edit sessions.
func editorRunner(log *slog.Logger, opts *globalOptions, sigs *sigstack.Stack) *editor.Runner {
	return &editor.Runner{
		Ext:     opts.Ext,
		Signals: sigs,
		Log:     log,
	}
}
