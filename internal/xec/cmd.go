// Package xec is a wrapper around os/exec
// that centralizes how external programs are started.
//
// Unlike a bare [exec.Cmd], a [Cmd] is wired to the standard streams
// of the current process by default:
// the programs scribe runs are interactive
// and expect to own the terminal while they run.
//
// Actual execution goes through an [Execer]
// so that tests can intercept it.
package xec

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"

)

// Cmd is an external command being prepared or run.
type Cmd struct {
	cmd     *exec.Cmd
	log     *slog.Logger
	_execer Execer
}

// Command constructs a Cmd to execute a program with the given arguments.
//
// ctx controls the lifetime of the command:
// if it's cancelled before the command exits, the process is killed.
// log receives debug-level traces of the command's lifecycle.
// If log is nil, nothing is logged.
func Command(ctx context.Context, log *slog.Logger, name string, args ...string) *Cmd {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return &Cmd{
		cmd:     cmd,
		log:     log,
		_execer: DefaultExecer,
	}
}

// WithExecer sets the Execer used to run the command.
// If nil, the DefaultExecer is used.
func (c *Cmd) WithExecer(execer Execer) *Cmd {
	c._execer = execer
	return c
}

func (c *Cmd) execer() Execer {
	if c._execer != nil {
		return c._execer
	}
	return DefaultExecer
}

// Start starts the command, returning immediately.
// It returns an error if the command fails to start.
func (c *Cmd) Start() error {
	c.log.Debug("Starting process", "name", c.Name(), "args", c.Args())
	return c.execer().Start(c.cmd)
}

// Wait waits for a command started with Start to complete.
// It returns an [ExitError] if the command exits with a non-zero exit code.
func (c *Cmd) Wait() error {
	err := c.execer().Wait(c.cmd)
	if state := c.cmd.ProcessState; state != nil {
		c.log.Debug("Process exited", "name", c.Name(), "status", state.String())
	}
	return err
}

// Name returns the name of the program as it was passed to Command.
func (c *Cmd) Name() string {
	return c.cmd.Args[0]
}

// Args returns the arguments passed to the command,
// not including the command name itself (os.Args[0]).
func (c *Cmd) Args() []string {
	return c.cmd.Args[1:]
}

// WithStdin supplies the command's stdin from the given reader.
// If r is nil, the command reads from the null device.
func (c *Cmd) WithStdin(r io.Reader) *Cmd {
	c.cmd.Stdin = r
	return c
}

// WithStdout redirects the command's stdout to the given writer.
// If w is nil, output is discarded.
func (c *Cmd) WithStdout(w io.Writer) *Cmd {
	c.cmd.Stdout = w
	return c
}

// WithStderr redirects the command's stderr to the given writer.
// If w is nil, output is discarded.
func (c *Cmd) WithStderr(w io.Writer) *Cmd {
	c.cmd.Stderr = w
	return c
}
