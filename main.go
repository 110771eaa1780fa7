// scribe is a command line tool to write text in your preferred editor.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"go.abhg.dev/scribe/internal/editor"
	"go.abhg.dev/scribe/internal/sigstack"
)

var errNonInteractive = errors.New("cannot proceed in non-interactive mode")

func main() {
	var logLevel slog.LevelVar // info by default
	logger := newLogger(os.Stderr, &logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Interrupts cancel the context.
	// Edit sessions push their own handler on top of this one
	// while the editor owns the terminal.
	var sigs sigstack.Stack
	sigc := make(chan sigstack.Signal, 1)
	sigs.Notify(sigc, os.Interrupt)
	go func() {
		select {
		case <-sigc:
			logger.Info("Cleaning up. Press Ctrl-C again to exit immediately.")
			sigs.Stop(sigc)
			cancel()
		case <-ctx.Done():
		}
	}()

	isTerminal := isatty.IsTerminal(os.Stdin.Fd())

	var cmd mainCmd
	parser, err := newParser(&cmd,
		kong.Bind(logger, &logLevel, &cmd.globalOptions, &sigs),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Vars{
			// Default to non-interactive mode if we're not in a terminal.
			"nonInteractive": strconv.FormatBool(!isTerminal),
		},
	)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fatalf(logger, "scribe: %v", err)
	}

	if err := kctx.Run(); err != nil {
		fatalf(logger, "scribe: %v", err)
	}
}

func newParser(cmd *mainCmd, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("scribe"),
		kong.Description("scribe opens your editor to write some text, and prints the result."),
		kong.Vars{
			"defaultExt": editor.DefaultExt,
		},
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	}, opts...)
	return kong.New(cmd, opts...)
}

type globalOptions struct {
	Editor string `short:"e" env:"SCRIBE_EDITOR" placeholder:"CMD" help:"Editor command to use instead of $VISUAL or $EDITOR"`
	Ext    string `default:"${defaultExt}" placeholder:"EXT" help:"Extension of the file being edited"`

	NonInteractive bool `name:"non-interactive" short:"I" default:"${nonInteractive}" help:"Disable interactive prompts"`
}

type mainCmd struct {
	globalOptions

	// Flags with side effects whose values are never accessed directly.
	Verbose bool        `short:"v" help:"Enable verbose output" env:"SCRIBE_VERBOSE"`
	Version versionFlag `help:"Print version information and quit"`

	Compose composeCmd `cmd:"" default:"withargs" aliases:"c" help:"Write text in your editor (default)"`
	Which   whichCmd   `cmd:"" help:"Print the editor command that would be used"`
}

func (cmd *mainCmd) AfterApply(logLevel *slog.LevelVar) error {
	if cmd.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	return nil
}
