// Package terminal probes the controlling terminal for layout decisions.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions for when stdout is not a terminal (pipes, CI).
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// Size returns the current terminal width and height, or the fallback
// dimensions when they cannot be determined.
func Size() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return FallbackWidth, FallbackHeight
	}
	return width, height
}

// Width returns the current terminal width.
func Width() int {
	w, _ := Size()
	return w
}
