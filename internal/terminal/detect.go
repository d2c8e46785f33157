// Package terminal answers interactivity and width questions for the CLI
// layer. Width resolution honors the COLUMNS override the same way the
// command builder forwards it to child processes.
package terminal

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultWidth applies when neither COLUMNS nor the terminal answers.
const DefaultWidth = 80

var (
	isTerminal = term.IsTerminal
	termSize   = term.GetSize
	getenv     = os.Getenv
)

// IsInteractive reports whether stdin and stdout are both interactive
// terminals. This is the canonical check across the codebase.
func IsInteractive() bool {
	return isTerminal(int(os.Stdin.Fd())) && isTerminal(int(os.Stdout.Fd()))
}

// Width returns the usable column count for stdout.
func Width() int {
	return WidthOf(int(os.Stdout.Fd()))
}

// WidthOf resolves the column count for a descriptor: a positive COLUMNS
// override wins, then the measured terminal width, then DefaultWidth.
func WidthOf(fd int) int {
	if cols := getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	if w, _, err := termSize(fd); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}
