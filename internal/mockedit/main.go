// Package mockedit provides a fake editor for tests.
// It's a simple process controlled with environment variables:
//
//   - MOCKEDIT_GIVE:
//     Path to a file whose contents replace the edited file.
//     If unset, the edited file is left unchanged.
//   - MOCKEDIT_RECORD:
//     Path to a file where the original contents of the edited file
//     should be copied.
//     This is optional.
//   - MOCKEDIT_EXIT:
//     Exit status to report.
//     If set to a non-zero value, the edited file is not modified.
//
// The process expects the path to a file to edit as its last argument.
// Any arguments before it are ignored,
// so mockedit can stand in for editors like "code --wait".
package mockedit

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Main runs the mock editor with the process's arguments
// and returns its exit status.
func Main() int {
	return run(os.Args[1:], os.Stderr, os.Getenv)
}

func run(args []string, stderr io.Writer, getenv func(string) string) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: mockedit [args ...] file")
		return 2
	}
	input := args[len(args)-1]

	data, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(stderr, "read %s: %s\n", input, err)
		return 1
	}

	if record := getenv("MOCKEDIT_RECORD"); record != "" {
		if err := os.WriteFile(record, data, 0o644); err != nil {
			fmt.Fprintf(stderr, "write %s: %s\n", record, err)
			return 1
		}
	}

	if s := getenv("MOCKEDIT_EXIT"); s != "" {
		code, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintf(stderr, "bad MOCKEDIT_EXIT %q: %s\n", s, err)
			return 2
		}
		if code != 0 {
			return code
		}
	}

	give := getenv("MOCKEDIT_GIVE")
	if give == "" {
		return 0
	}

	bs, err := os.ReadFile(give)
	if err != nil {
		fmt.Fprintf(stderr, "read %s: %s\n", give, err)
		return 1
	}

	if err := os.WriteFile(input, bs, 0o644); err != nil {
		fmt.Fprintf(stderr, "write %s: %s\n", input, err)
		return 1
	}

	return 0
}
