// Package text provides text manipulation functions.
package text

import "strings"

// Dedent strips the indentation of a multi-line string literal
// so that it can be written indented alongside the code around it.
//
//	text.Dedent(`
//		foo
//		  bar
//	`)
//
// yields "foo\n  bar".
//
// The indentation to strip is that of the first non-blank line.
// Leading blank lines and a trailing blank line are dropped.
// Lines that don't start with the indentation are kept as is.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}
	if len(lines) == 0 {
		return ""
	}

	first := lines[0]
	indent := first[:len(first)-len(strings.TrimLeft(first, " \t"))]
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}
	return strings.Join(lines, "\n")
}
