package editor

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingEditor indicates that no editor is configured.
	// Users can fix this by setting VISUAL or EDITOR.
	ErrMissingEditor = errors.New("neither VISUAL nor EDITOR is set")

	// ErrEmptyCommand indicates that an editor command has no words,
	// either because it was configured as a blank string
	// or because an empty [Command] was passed to a session.
	ErrEmptyCommand = errors.New("editor command is empty")
)

// ParseError is returned when an editor command line
// is not valid shell text.
type ParseError struct {
	// Value is the command line that failed to parse.
	Value string

	// Err is the error reported by the tokenizer.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse editor command %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SpawnError is returned when the editor program could not be started,
// for example because it does not exist or is not executable.
type SpawnError struct {
	Name string // program that failed to start
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("start editor %q: %v", e.Name, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError is returned when the editor ran but did not report success.
// The edited file is not read in that case.
type ExitError struct {
	Command Command

	// Code is the exit code of the editor,
	// or -1 if it was terminated by a signal.
	Code int

	// Status is the raw exit status for display,
	// e.g. "exit status 1" or "signal: killed".
	Status string

	Err error // underlying error, if any
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("editor %q exited unsuccessfully: %v", e.Command.Name(), e.Status)
}

func (e *ExitError) Unwrap() error { return e.Err }
