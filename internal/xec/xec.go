package xec

import "os/exec"

// ExitError is returned from Wait
// when the command exits with a non-zero exit code.
type ExitError = exec.ExitError

// LookPath searches for an executable named file
// in the directories named by the PATH environment variable.
// If file contains a slash, it is tried directly.
func LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
