package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"go.abhg.dev/scribe/internal/sigstack"
	"go.abhg.dev/scribe/internal/text"
	"go.abhg.dev/scribe/internal/ui"
)

var errEmptyMessage = errors.New("aborting: empty message")

var _stdin io.Reader = os.Stdin

type composeCmd struct {
	Message string `short:"m" placeholder:"MSG" xor:"seed" help:"Text to start editing from"`
	File    string `short:"F" placeholder:"FILE" xor:"seed" help:"Read the text to start editing from FILE. Use '-' for stdin"`

	Output     string `short:"o" placeholder:"FILE" help:"Write the result to FILE instead of stdout"`
	AllowEmpty bool   `help:"Succeed even if the result is empty"`
	Prompt     bool   `short:"p" help:"Ask before opening the editor"`
}

func (*composeCmd) Help() string {
	return text.Dedent(`
		Opens your editor on a temporary file holding the starting text,
		and prints what you saved once the editor exits.
		The editor is taken from $VISUAL, then $EDITOR,
		unless one is given with --editor.

		If you save an empty file, nothing is printed
		and scribe exits with an error, unless --allow-empty is set.
	`)
}

func (cmd *composeCmd) Run(
	ctx context.Context,
	log *slog.Logger,
	opts *globalOptions,
	sigs *sigstack.Stack,
	app *kong.Kong,
) error {
	seed, err := cmd.seed()
	if err != nil {
		return err
	}

	command, err := resolveEditor(opts)
	if err != nil {
		return err
	}
	log.Debug("Using editor", "command", command.String())

	runner := editorRunner(log, opts, sigs)

	var (
		result string
		ok     bool
	)
	if cmd.Prompt {
		if opts.NonInteractive {
			return errNonInteractive
		}

		result = seed
		field := ui.NewOpenEditor(ctx, runner, command, &result).
			WithTitle("Message")
		if err := ui.NewPrompt(field).Run(&ui.RunOptions{
			Output: os.Stderr,
		}); err != nil {
			return err
		}
		ok = result != ""
	} else {
		result, ok, err = runner.Run(ctx, seed, command)
		if err != nil {
			return err
		}
	}

	if !ok {
		if !cmd.AllowEmpty {
			return errEmptyMessage
		}
		log.Debug("Editor left the file empty")
	}

	return cmd.write(app.Stdout, result)
}

func (cmd *composeCmd) seed() (string, error) {
	switch cmd.File {
	case "":
		return cmd.Message, nil

	case "-":
		bs, err := io.ReadAll(_stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(bs), nil

	default:
		bs, err := os.ReadFile(cmd.File)
		if err != nil {
			return "", fmt.Errorf("read starting text: %w", err)
		}
		return string(bs), nil
	}
}

func (cmd *composeCmd) write(stdout io.Writer, result string) error {
	if cmd.Output == "" {
		_, err := io.WriteString(stdout, result)
		return err
	}

	if err := os.WriteFile(cmd.Output, []byte(result), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
