package editor

import (
	"log/slog"
	"math"
)

// ViewportState is a read-only snapshot of the camera over the document.
// All lengths are logical pixels.
type ViewportState struct {
	ScrollTop, ScrollLeft float64

	// FirstLine and LastLine bound the visible lines as [FirstLine, LastLine).
	FirstLine, LastLine int

	LineHeight             float64
	NarrowWidth, WideWidth float64
	Padding                Padding

	CanvasWidth, CanvasHeight float64
	DevicePixelRatio          float64
}

// VisibleLines returns the number of lines in the visible range.
func (s ViewportState) VisibleLines() int {
	return s.LastLine - s.FirstLine
}

// LineTop returns the canvas y of row's top edge.
func (s ViewportState) LineTop(row int) float64 {
	return s.Padding.Top + float64(row)*s.LineHeight - s.ScrollTop
}

// TextLeft returns the canvas x of column 0.
func (s ViewportState) TextLeft() float64 {
	return s.Padding.Left - s.ScrollLeft
}

// BackingSize returns the canvas size in device pixels.
func (s ViewportState) BackingSize() (w, h int) {
	return int(math.Ceil(s.CanvasWidth * s.DevicePixelRatio)), int(math.Ceil(s.CanvasHeight * s.DevicePixelRatio))
}

func (s ViewportState) textHeight() float64 {
	return math.Max(0, s.CanvasHeight-s.Padding.Top)
}

func (s ViewportState) textWidth() float64 {
	return math.Max(0, s.CanvasWidth-s.Padding.Left)
}

// Viewport owns the ViewportState and recomputes it on resize, scroll, and
// document changes. Every recompute that changes the state bumps Generation.
type Viewport struct {
	state  ViewportState
	lines  int
	gen    uint64
	logger *slog.Logger
}

func newViewport(cfg Config, lines int) *Viewport {
	v := &Viewport{
		state: ViewportState{
			LineHeight:       cfg.LineHeight,
			NarrowWidth:      cfg.Metrics.Narrow,
			WideWidth:        cfg.Metrics.Wide,
			Padding:          cfg.Padding,
			CanvasWidth:      cfg.Width,
			CanvasHeight:     cfg.Height,
			DevicePixelRatio: cfg.DevicePixelRatio,
		},
		lines:  max(1, lines),
		logger: cfg.Logger,
	}
	v.recompute()
	return v
}

func (v *Viewport) State() ViewportState { return v.state }

func (v *Viewport) Generation() uint64 { return v.gen }

// Resize applies a new canvas size. A non-positive or non-finite width or
// height keeps the last known good state and returns false. A missing device
// pixel ratio keeps the current one.
func (v *Viewport) Resize(width, height, dpr float64) bool {
	if !positive(width) || !positive(height) {
		v.logger.Warn("viewport: ignoring invalid resize, keeping last known good size",
			"width", width, "height", height,
			"keep_width", v.state.CanvasWidth, "keep_height", v.state.CanvasHeight)
		return false
	}
	if !positive(dpr) {
		dpr = v.state.DevicePixelRatio
	}
	v.state.CanvasWidth = width
	v.state.CanvasHeight = height
	v.state.DevicePixelRatio = dpr
	v.recompute()
	return true
}

// ScrollTo sets the scroll offsets. Values are clamped to the document.
func (v *Viewport) ScrollTo(top, left float64) {
	v.state.ScrollTop = finite(top)
	v.state.ScrollLeft = finite(left)
	v.recompute()
}

func (v *Viewport) ScrollBy(dx, dy float64) {
	v.ScrollTo(v.state.ScrollTop+finite(dy), v.state.ScrollLeft+finite(dx))
}

// SetLineCount updates the document line count after a mutation.
func (v *Viewport) SetLineCount(n int) {
	n = max(1, n)
	if n == v.lines {
		return
	}
	v.lines = n
	v.recompute()
}

// SetGlyphWidths records the metric constants in effect.
func (v *Viewport) SetGlyphWidths(narrow, wide float64) {
	v.state.NarrowWidth = narrow
	v.state.WideWidth = wide
	v.bump()
}

// EnsureVisible scrolls the minimum amount that brings a box at content
// coordinates (row, x..x+w) fully into view.
func (v *Viewport) EnsureVisible(row int, x, w float64) {
	st := v.state
	lh := st.LineHeight
	top := float64(row) * lh
	if top < st.ScrollTop {
		st.ScrollTop = top
	} else if th := st.textHeight(); top+lh > st.ScrollTop+th {
		st.ScrollTop = top + lh - th
	}

	x = finite(x)
	if x < st.ScrollLeft {
		st.ScrollLeft = x
	} else if tw := st.textWidth(); x+w > st.ScrollLeft+tw {
		st.ScrollLeft = x + w - tw
	}
	v.ScrollTo(st.ScrollTop, st.ScrollLeft)
}

func (v *Viewport) recompute() {
	prev := v.state
	st := &v.state

	maxTop := math.Max(0, float64(v.lines)*st.LineHeight-st.textHeight())
	st.ScrollTop = clampFloat(st.ScrollTop, 0, maxTop)
	st.ScrollLeft = math.Max(0, st.ScrollLeft)

	first := int(math.Floor(st.ScrollTop / st.LineHeight))
	first = clampInt(first, 0, v.lines-1)
	last := int(math.Ceil((st.ScrollTop + st.textHeight()) / st.LineHeight))
	last = clampInt(last, first+1, v.lines)
	st.FirstLine = first
	st.LastLine = last

	if *st != prev {
		v.gen++
	}
}

func (v *Viewport) bump() { v.gen++ }
