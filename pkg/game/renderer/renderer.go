// Package renderer is the display collaborator for the portal engine. The
// engine core only flips activation flags; restyling claimed tiles is this
// package's job. The Console backend writes styled text to stdout.
package renderer

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"wallgate/pkg/engine/terminal"
)

// Map icons.
const (
	IconWall   = "▒"
	IconPortal = "◊"
	IconVoid   = " "
)

var (
	ColorWall    color.Style
	ColorPortal  color.Style
	ColorSubtle  color.Style
	ColorMessage color.Style
	ColorDenied  color.Style
)

// InitColors initializes the color styles.
func InitColors() {
	ColorWall = color.Style{color.FgGray}
	ColorPortal = color.Style{color.FgCyan, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorMessage = color.Style{color.FgGreen}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
}

// PrintDivider prints a horizontal rule with a centered label spanning the
// terminal width.
func PrintDivider(label string) {
	width := terminal.Width()
	if label != "" {
		label = " " + label + " "
	}
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	right := width - sideLen - len(label)
	if right < 1 {
		right = 1
	}
	fmt.Println(ColorSubtle.Sprint(strings.Repeat("─", sideLen) + label + strings.Repeat("─", right)))
}
