// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

var isTerminal = term.IsTerminal

// IsInteractive reports whether stdin and stdout are both interactive terminals.
// Prompts fall back to plain line input when this is false.
func IsInteractive() bool {
	return IsInteractiveFiles(os.Stdin, os.Stdout)
}

// IsInteractiveFiles reports whether both files are attached to a terminal.
func IsInteractiveFiles(in *os.File, out *os.File) bool {
	if in == nil || out == nil {
		return false
	}
	return isTerminal(int(in.Fd())) && isTerminal(int(out.Fd()))
}
