// Package logtest provides a logger for testing.
package logtest

import (
	"io"
	"log/slog"

	"go.abhg.dev/log/silog"
)

// T is a subset of the testing.TB interface.
type T interface {
	Helper()
	Output() io.Writer
}

// New builds a logger that writes messages
// to the given testing.TB at debug level.
// Output is uncolored and has no timestamps.
func New(t T) *slog.Logger {
	t.Helper()

	return slog.New(silog.NewHandler(t.Output(), &silog.HandlerOptions{
		Level: slog.LevelDebug,
		Style: silog.PlainStyle(nil),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if len(groups) == 0 && attr.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return attr
		},
	}))
}
