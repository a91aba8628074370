package editor

// InputCapture is the focus-holding element that receives keyboard and IME
// input. It draws uncommitted composition text itself; that text never
// reaches the Surface.
type InputCapture interface {
	Focus()
	Focused() bool
	// SetComposition shows uncommitted IME text. An empty string hides it.
	SetComposition(text string)
	// Place moves the element over the caret so IME candidate windows
	// follow the insertion point.
	Place(caret Rect)
}

// Surface is the non-interactive render target. It only consumes frames.
type Surface interface {
	Draw(f Frame)
}

// headlessCapture is used when the host supplies no InputCapture.
type headlessCapture struct {
	focused     bool
	composition string
	caret       Rect
}

func (c *headlessCapture) Focus()                  { c.focused = true }
func (c *headlessCapture) Focused() bool           { return c.focused }
func (c *headlessCapture) SetComposition(s string) { c.composition = s }
func (c *headlessCapture) Place(caret Rect)        { c.caret = caret }

type discardSurface struct{}

func (discardSurface) Draw(Frame) {}
