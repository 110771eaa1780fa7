// Package osutil holds small filesystem helpers.
package osutil

import (
	"errors"
	"os"
)

// CreateTemp creates a new temporary file in dir
// holding the given contents, and returns its path.
//
// pattern is interpreted as with [os.CreateTemp]:
// the last "*" is replaced with a random string,
// so "*.md" yields a unique name ending in ".md".
// If dir is empty, the default directory for temporary files is used.
//
// The file is closed before returning.
// If writing the contents fails, the file is removed.
// Removing the file once it's no longer needed
// is the caller's responsibility.
func CreateTemp(dir, pattern string, contents []byte) (string, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}
	name := f.Name()

	_, err = f.Write(contents)
	if err := errors.Join(err, f.Close()); err != nil {
		return "", errors.Join(err, os.Remove(name))
	}

	return name, nil
}
