package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/alecthomas/kong"
)

var _version = "dev"

var (
	_debugReadBuildInfo  = debug.ReadBuildInfo
	_generateBuildReport = generateBuildReport
)

type versionFlag bool

func (v versionFlag) BeforeReset(app *kong.Kong) error {
	fmt.Fprint(app.Stdout, "scribe ", _version)
	if report := _generateBuildReport(); report != "" {
		fmt.Fprintf(app.Stdout, " (%s)", report)
	}
	fmt.Fprintln(app.Stdout)
	fmt.Fprintln(app.Stdout, "This program comes with ABSOLUTELY NO WARRANTY")
	app.Exit(0)
	return nil
}

// generateBuildReport describes the build of the running binary:
// the VCS revision it was built from, when, and with which Go toolchain.
// Pieces that aren't known are left out.
//
//	0123456789ab+dirty, built 2026-01-02T03:04:05Z, go1.26.0
func generateBuildReport() string {
	info, ok := _debugReadBuildInfo()
	if !ok || info == nil {
		return ""
	}

	var revision, built string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		case "vcs.time":
			built = s.Value
		}
	}

	var parts []string
	if revision != "" {
		if len(revision) > _shortRevisionLen {
			revision = revision[:_shortRevisionLen]
		}
		if dirty {
			revision += "+dirty"
		}
		parts = append(parts, revision)
	}
	if built != "" {
		parts = append(parts, "built "+built)
	}
	if info.GoVersion != "" {
		parts = append(parts, info.GoVersion)
	}
	return strings.Join(parts, ", ")
}

const _shortRevisionLen = 12
