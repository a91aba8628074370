package term

import (
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/scribe/editor"
)

// overlayCapture is the terminal's input-capture element. The terminal
// always delivers keys to the program, so focus is tracked, not enforced.
type overlayCapture struct {
	focused     bool
	composition string
	caret       editor.Rect
}

func (c *overlayCapture) Focus()                  { c.focused = true }
func (c *overlayCapture) Focused() bool           { return c.focused }
func (c *overlayCapture) SetComposition(s string) { c.composition = s }
func (c *overlayCapture) Place(caret editor.Rect) { c.caret = caret }

func (c *overlayCapture) blur() { c.focused = false }

// render draws pending composition text over base at the caret cell.
func (c *overlayCapture) render(base string, style lipgloss.Style, cols, rows int) string {
	if c.composition == "" || cols <= 0 || rows <= 0 {
		return base
	}
	box := style.Render(c.composition)
	x := min(max(0, cellIndex(c.caret.X)), max(0, cols-lipgloss.Width(box)))
	y := min(max(0, cellIndex(c.caret.Y)), rows-1)
	return overlay.Composite(box, base, overlay.Left, overlay.Top, x, y)
}
