package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/scribe/internal/mockedit"
)

var (
	_update = flag.Bool("update", false, "update golden files")
	_debug  = flag.Bool("debug", false, "enable debug logging")
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"scribe": func() int {
			main()
			return 0
		},
		"mockedit": mockedit.Main,
	}))
}

// Scripts get a clean environment.
// Neither VISUAL nor EDITOR is set unless a script sets them.
func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:                filepath.Join("testdata", "script"),
		UpdateScripts:      *_update,
		RequireUniqueNames: true,
		Setup: func(e *testscript.Env) error {
			t := e.T().(testing.TB)

			homeDir := filepath.Join(e.WorkDir, "home")
			require.NoError(t, os.Mkdir(homeDir, 0o755))
			e.Setenv("HOME", homeDir)

			if *_debug {
				e.Setenv("SCRIBE_VERBOSE", "true")
			}
			return nil
		},
	})
}
