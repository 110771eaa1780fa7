package main

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"
	"go.abhg.dev/scribe/internal/text"
	"go.abhg.dev/scribe/internal/xec"
)

type whichCmd struct{}

func (*whichCmd) Help() string {
	return text.Dedent(`
		Prints the editor command scribe would run,
		quoted so that it can be pasted into a shell.
		The path of the file to edit is appended to it when it runs.
	`)
}

func (*whichCmd) Run(log *slog.Logger, opts *globalOptions, app *kong.Kong) error {
	command, err := resolveEditor(opts)
	if err != nil {
		return err
	}

	if path, err := xec.LookPath(command.Name()); err != nil {
		log.Warn("Editor was not found", "name", command.Name(), "error", err)
	} else {
		log.Debug("Editor found", "path", path)
	}

	_, err = fmt.Fprintln(app.Stdout, command.String())
	return err
}
