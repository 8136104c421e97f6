package renderer

import (
	"fmt"
	"io"
	"os"

	"github.com/leonelquinteros/gotext"

	"wallgate/pkg/game/portal"
)

// Console reports portal activations as styled text lines. It satisfies
// the portal controller's Notifier interface.
type Console struct {
	out io.Writer
}

// NewConsole creates a console notifier writing to stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleTo creates a console notifier writing to w. Used by tests.
func NewConsoleTo(w io.Writer) *Console {
	return &Console{out: w}
}

// PortalCellActivated restyles one claimed wall tile. The console backend
// prints a line per cell; a graphical backend would swap the tile sprite.
func (c *Console) PortalCellActivated(a portal.Activation) {
	if c == nil || c.out == nil {
		return
	}
	msg := gotext.Get("Portal tile %d/%d opened for puzzle %s",
		a.SegmentIndex+1, a.SegmentLength, a.PuzzleID)
	fmt.Fprintln(c.out, ColorPortal.Sprint(IconPortal)+" "+ColorMessage.Sprint(msg)+
		" "+ColorSubtle.Sprint("["+a.GroupID+"]"))
}

// ShowMessage displays a message to the user.
func (c *Console) ShowMessage(msg string) {
	if c == nil || c.out == nil {
		return
	}
	fmt.Fprintln(c.out, ColorMessage.Sprint(msg))
}

// ShowDenied displays a rejection message to the user.
func (c *Console) ShowDenied(msg string) {
	if c == nil || c.out == nil {
		return
	}
	fmt.Fprintln(c.out, ColorDenied.Sprint(msg))
}
