// Package editor lets a terminal program hand text off
// to the user's preferred editor, the way git does for commit messages.
//
// Use it in two steps:
// [Resolve] determines which editor to run from VISUAL or EDITOR,
// and [Runner.Run] stages the text in a temporary file,
// runs the editor on it in the foreground, and reads the result back.
//
//	cmd, err := editor.Resolve(os.LookupEnv)
//	if err != nil {
//		return err
//	}
//	text, ok, err := editor.Run(ctx, seed, cmd)
//
// # Terminal ownership
//
// The editor inherits the caller's standard streams
// so that full-screen editors can take over the terminal.
// Programs that put the terminal in raw mode or the alternate screen
// must restore it before running a session and re-enter it afterwards.
// bubbletea programs get this for free by passing a [Session] to tea.Exec.
package editor

import (
	"errors"
	"os"
	"strings"
	"unicode/utf8"

	"al.essio.dev/pkg/shellescape"
	"github.com/buildkite/shellwords"
)

// Environment variables consulted by [Resolve], in order of precedence.
const (
	VisualEnv = "VISUAL"
	EditorEnv = "EDITOR"
)

// Lookup retrieves the value of a configuration variable,
// reporting whether it was set.
//
// [os.LookupEnv] is a Lookup.
type Lookup func(name string) (value string, ok bool)

// Command is an editor command line.
// The first element is the program to run,
// and the rest are arguments passed to it
// before the path of the file to edit.
//
// A Command returned by [Resolve] or [Parse] is never empty.
type Command []string

// Name returns the program to run.
// It's empty if the command is empty.
func (c Command) Name() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Args returns the arguments of the command,
// not including the program name.
func (c Command) Args() []string {
	if len(c) == 0 {
		return nil
	}
	return c[1:]
}

// String renders the command as a POSIX shell command line
// that [Parse] turns back into the same Command.
func (c Command) String() string {
	return shellescape.QuoteCommand(c)
}

// Resolve determines the user's editor command.
//
// VISUAL is consulted first, then EDITOR.
// The first of these that is set is used on its own;
// values are never merged.
// A variable holding text that isn't valid UTF-8 is treated as unset.
// A variable that is set but blank is not skipped:
// it fails with [ErrEmptyCommand].
//
// If lookup is nil, the process environment is used.
//
// Resolve fails with [ErrMissingEditor] if neither variable is set,
// and otherwise with the errors documented on [Parse].
func Resolve(lookup Lookup) (Command, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	for _, name := range []string{VisualEnv, EditorEnv} {
		raw, ok := lookup(name)
		if !ok || !utf8.ValidString(raw) {
			continue
		}

		cmd, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		return cmd, nil
	}

	return nil, ErrMissingEditor
}

// Parse splits an editor command line into words
// following POSIX shell rules:
// words are separated by whitespace,
// and quotes and backslashes are honored.
// No expansion of any kind takes place.
//
//	Parse(`code --wait`)          // ["code", "--wait"]
//	Parse(`prog --flag "a b"`)    // ["prog", "--flag", "a b"]
//
// It returns a [*ParseError] if raw isn't valid shell text
// (for example, if it has an unterminated quote),
// and [ErrEmptyCommand] if it holds no words.
func Parse(raw string) (Command, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyCommand
	}

	if danglingEscape(raw) {
		return nil, &ParseError{Value: raw, Err: errDanglingEscape}
	}

	words, err := shellwords.SplitPosix(raw)
	if err != nil {
		return nil, &ParseError{Value: raw, Err: err}
	}
	if len(words) == 0 {
		return nil, ErrEmptyCommand
	}

	return Command(words), nil
}

var errDanglingEscape = errors.New("backslash at end of input escapes nothing")

// danglingEscape reports whether raw ends with a backslash
// that would escape the next character, if there were one.
// SplitPosix drops such a backslash silently.
// Inside quotes, it reports an unterminated quote instead.
func danglingEscape(raw string) bool {
	var (
		quote   byte // opening quote character, or 0
		escaped bool
	)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case quote == 0 && (c == '\'' || c == '"'):
			quote = c
		case c == quote:
			quote = 0
		}
	}
	return escaped && quote == 0
}
