package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.abhg.dev/log/silog"
)

// newLogger builds the CLI's logger.
// Its level can be changed after the fact through lvl.
func newLogger(w io.Writer, lvl *slog.LevelVar) *slog.Logger {
	return slog.New(silog.NewHandler(w, &silog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: dropTime,
	}))
}

// dropTime removes timestamps from log records.
// Messages are read by a person at a terminal, as they happen.
func dropTime(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 && attr.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return attr
}

var _exit = os.Exit

// fatalf logs an error message and exits with status 1.
func fatalf(log *slog.Logger, format string, args ...any) {
	log.Error(fmt.Sprintf(format, args...))
	_exit(1)
}
