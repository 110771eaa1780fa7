package editor

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"go.abhg.dev/scribe/internal/osutil"
	"go.abhg.dev/scribe/internal/sigstack"
	"go.abhg.dev/scribe/internal/xec"
)

// DefaultExt is the extension given to the temporary file
// if [Runner.Ext] is unset.
// Editors use it to pick syntax highlighting.
const DefaultExt = "md"

// Runner runs edit sessions.
//
// The zero value is ready to use:
// it stages files in the default temporary directory
// and connects the editor to the process's own standard streams.
type Runner struct {
	// Ext is the extension of the temporary file,
	// with or without the leading ".".
	// Defaults to [DefaultExt].
	Ext string

	// Dir is the directory in which temporary files are created.
	// Defaults to [os.TempDir].
	Dir string

	// Standard streams for the editor.
	// Each defaults to the corresponding stream of this process.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Signals, if set, is used to shield the caller from os.Interrupt
	// while the editor is running.
	// The terminal sends Ctrl-C to the whole foreground process group,
	// but it's meant for the editor.
	Signals *sigstack.Stack

	// Execer runs the editor process.
	// Defaults to [xec.DefaultExecer].
	Execer xec.Execer

	// Log receives debug-level traces of each session.
	// Nothing is logged if unset.
	Log *slog.Logger
}

// Run edits seed with the given editor command
// using a zero-valued [Runner].
func Run(ctx context.Context, seed string, cmd Command) (text string, ok bool, err error) {
	return new(Runner).Run(ctx, seed, cmd)
}

// Run lets the user edit seed with the given editor command,
// blocking until the editor exits.
// Only the calling goroutine waits on the editor.
//
// On success, it returns the final contents of the file and true.
// If the user left the file empty, it returns "", false, and no error:
// that's the caller's cue that nothing was written.
//
// It fails with [ErrEmptyCommand] if cmd is empty,
// [*SpawnError] if the editor couldn't be started,
// and [*ExitError] if the editor reported failure.
// I/O errors from the temporary file are wrapped and returned as-is.
// If ctx is cancelled while the editor is running,
// the editor is killed and the error matches ctx.Err().
//
// The temporary file is removed before Run returns in all cases.
func (r *Runner) Run(ctx context.Context, seed string, cmd Command) (text string, ok bool, err error) {
	s := r.Session(ctx, seed, cmd)
	if err := s.Run(); err != nil {
		return "", false, err
	}
	text, ok = s.Result()
	return text, ok, nil
}

// Session prepares a single edit session without running it.
//
// Most callers want [Runner.Run].
// Session exists for callers that need to run the editor themselves,
// for example with bubbletea's tea.Exec,
// which suspends the program's UI around [Session.Run].
func (r *Runner) Session(ctx context.Context, seed string, cmd Command) *Session {
	if r == nil {
		r = new(Runner)
	}

	return &Session{
		ctx:     ctx,
		seed:    seed,
		cmd:     slices.Clone(cmd),
		ext:     strings.TrimPrefix(cmp.Or(r.Ext, DefaultExt), "."),
		dir:     r.Dir,
		stdin:   cmp.Or[io.Reader](r.Stdin, os.Stdin),
		stdout:  cmp.Or[io.Writer](r.Stdout, os.Stdout),
		stderr:  cmp.Or[io.Writer](r.Stderr, os.Stderr),
		signals: r.Signals,
		execer:  r.Execer,
		log:     cmp.Or(r.Log, slog.New(slog.DiscardHandler)),
	}
}

// State is a point in the lifecycle of a [Session].
type State int

const (
	// StateCreated is a session that hasn't been run yet.
	StateCreated State = iota

	// StateStaged is a session whose seed text has been written
	// to a temporary file.
	StateStaged

	// StateLaunched is a session whose editor is running.
	StateLaunched

	// StateExited is a session whose editor has exited.
	StateExited

	// StateCollected is a session whose edited text has been read back.
	StateCollected

	// StateDone is a session that finished successfully
	// and cleaned up after itself.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStaged:
		return "staged"
	case StateLaunched:
		return "launched"
	case StateExited:
		return "exited"
	case StateCollected:
		return "collected"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is a single stage/launch/wait/collect cycle.
// Build one with [Runner.Session].
//
// A Session may be run only once.
type Session struct {
	ctx  context.Context
	seed string
	cmd  Command
	ext  string
	dir  string

	stdin          io.Reader
	stdout, stderr io.Writer

	signals *sigstack.Stack
	execer  xec.Execer
	log     *slog.Logger

	state State
	text  string
}

// SetStdin sets the reader the editor reads from.
func (s *Session) SetStdin(r io.Reader) { s.stdin = r }

// SetStdout sets the writer the editor writes its output to.
func (s *Session) SetStdout(w io.Writer) { s.stdout = w }

// SetStderr sets the writer the editor writes errors to.
func (s *Session) SetStderr(w io.Writer) { s.stderr = w }

// State reports how far the session got.
// After a failed Run, it's the last state the session reached.
func (s *Session) State() State { return s.state }

// Result reports the edited text after a successful [Session.Run].
// ok is false if the user left the file empty,
// or if the session has not completed successfully.
func (s *Session) Result() (text string, ok bool) {
	if s.state != StateDone || s.text == "" {
		return "", false
	}
	return s.text, true
}

// Run runs the session to completion.
// See [Runner.Run] for the errors it reports.
func (s *Session) Run() (err error) {
	if s.state != StateCreated {
		return fmt.Errorf("edit session already %v", s.state)
	}
	if len(s.cmd) == 0 {
		return ErrEmptyCommand
	}
	if err := s.ctx.Err(); err != nil {
		return err
	}

	path, err := osutil.CreateTemp(s.dir, "*."+s.ext, []byte(s.seed))
	if err != nil {
		return fmt.Errorf("stage text to edit: %w", err)
	}
	s.state = StateStaged
	s.log.Debug("Staged text to edit", "path", path)
	defer func() {
		// The editor may have removed the file already.
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			err = errors.Join(err, fmt.Errorf("remove temporary file: %w", rmErr))
		}
	}()

	if err := s.launch(path); err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read edited text: %w", err)
	}
	s.state = StateCollected
	s.text = string(content)
	s.log.Debug("Collected edited text", "bytes", len(content))

	s.state = StateDone
	return nil
}

// launch runs the editor on path and waits for it to exit.
func (s *Session) launch(path string) error {
	args := append(slices.Clone(s.cmd.Args()), path)
	cmd := xec.Command(s.ctx, s.log, s.cmd.Name(), args...).
		WithExecer(s.execer).
		WithStdin(s.stdin).
		WithStdout(s.stdout).
		WithStderr(s.stderr)

	if s.signals != nil {
		defer s.signals.Shield(os.Interrupt)()
	}

	if err := cmd.Start(); err != nil {
		return &SpawnError{Name: s.cmd.Name(), Err: err}
	}
	s.state = StateLaunched

	err := cmd.Wait()
	s.state = StateExited
	if err == nil {
		return nil
	}

	if ctxErr := s.ctx.Err(); ctxErr != nil {
		return fmt.Errorf("wait for editor: %w", ctxErr)
	}

	var exitErr *xec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{
			Command: s.cmd,
			Code:    exitErr.ExitCode(),
			Status:  exitErr.String(),
			Err:     err,
		}
	}
	return fmt.Errorf("wait for editor: %w", err)
}
