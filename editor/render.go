package editor

import (
	"log/slog"

	"github.com/iw2rmb/scribe/buffer"
)

type frameKey struct {
	version      uint64
	viewportGen  uint64
	caretVisible bool
}

// RenderDispatcher turns buffer, viewport, and cursor state into a Frame and
// pushes it to the Surface. Redraw is idempotent: an unchanged frame key
// skips both the build and the draw.
type RenderDispatcher struct {
	buf     *buffer.Buffer
	vp      *Viewport
	mapper  *CoordinateMapper
	focus   *FocusCoordinator
	theme   Theme
	atlas   GlyphAtlas
	surface Surface
	logger  *slog.Logger

	last    Frame
	lastKey frameKey
	hasLast bool
	pinned  bool
	draws   int
}

func NewRenderDispatcher(buf *buffer.Buffer, vp *Viewport, mapper *CoordinateMapper, focus *FocusCoordinator, theme Theme, atlas GlyphAtlas, surface Surface, logger *slog.Logger) *RenderDispatcher {
	if atlas == nil {
		atlas = NewRuneAtlas()
	}
	if surface == nil {
		surface = discardSurface{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RenderDispatcher{
		buf:     buf,
		vp:      vp,
		mapper:  mapper,
		focus:   focus,
		theme:   theme.normalized(),
		atlas:   atlas,
		surface: surface,
		logger:  logger,
	}
}

// Frame returns the last frame pushed to the surface.
func (d *RenderDispatcher) Frame() Frame { return d.last }

// Draws counts frames pushed to the surface.
func (d *RenderDispatcher) Draws() int { return d.draws }

// Invalidate forces the next Redraw to rebuild.
func (d *RenderDispatcher) Invalidate() { d.hasLast = false }

// Pin freezes the surface on the last drawn frame. While pinned, Redraw
// neither builds nor draws, so the canvas is never cleared.
func (d *RenderDispatcher) Pin() { d.pinned = true }

func (d *RenderDispatcher) Unpin() {
	if d.pinned {
		d.pinned = false
		d.Invalidate()
	}
}

func (d *RenderDispatcher) Pinned() bool { return d.pinned }

func (d *RenderDispatcher) SetTheme(t Theme) {
	d.theme = t.normalized()
	d.Invalidate()
}

// Redraw builds and draws a frame when state changed since the last one. It
// reports whether a frame was pushed.
func (d *RenderDispatcher) Redraw() (Frame, bool) {
	if d.pinned {
		return d.last, false
	}
	key := d.key()
	if d.hasLast && key == d.lastKey {
		return d.last, false
	}
	f := d.build(key.caretVisible)
	d.last, d.lastKey, d.hasLast = f, key, true
	d.surface.Draw(f)
	d.draws++
	d.logger.Debug("render: frame drawn", "version", key.version, "viewport", key.viewportGen, "glyphs", len(f.Glyphs))
	return f, true
}

func (d *RenderDispatcher) key() frameKey {
	return frameKey{
		version:      d.buf.Version(),
		viewportGen:  d.vp.Generation(),
		caretVisible: d.focus == nil || d.focus.State().Holder == FocusInputCapture,
	}
}

func (d *RenderDispatcher) build(focused bool) Frame {
	st := d.vp.State()
	f := Frame{
		Width:            st.CanvasWidth,
		Height:           st.CanvasHeight,
		DevicePixelRatio: st.DevicePixelRatio,
		Background:       d.theme.Background,
		FirstLine:        st.FirstLine,
		LastLine:         st.LastLine,
		SelectionColor:   d.theme.Selection,
		CaretColor:       d.theme.Caret,
	}

	sel, hasSel := d.buf.Selection()
	metrics := d.mapper.Metrics()
	left := st.TextLeft()
	canvas := Rect{W: st.CanvasWidth, H: st.CanvasHeight}

	for row := st.FirstLine; row < st.LastLine; row++ {
		line := d.buf.Line(row)
		adv := metrics.Advances(line)
		lineStart := d.buf.LineStart(row)
		y := st.LineTop(row)

		x := left
		var box Rect
		for i, r := range line {
			w := adv[i]
			gx := x
			x += w
			// Zero-width runes are drawn over the glyph before them.
			if w > 0 || i == 0 {
				box = Rect{X: gx, Y: y, W: max(w, metrics.Narrow), H: st.LineHeight}
			}
			if r == ' ' || r == '\t' || r == '\r' {
				continue
			}
			if !box.Intersects(canvas) {
				continue
			}
			color := d.theme.Text
			if hasSel && sel.Contains(lineStart+i) {
				color = d.theme.SelectedText
			}
			f.Glyphs = append(f.Glyphs, DrawGlyph{
				Position:   Point{X: gx, Y: y},
				GlyphIndex: d.atlas.Index(r),
				Rune:       r,
				Width:      w,
				Color:      color,
				Line:       row,
			})
		}

		if hasSel {
			if r, ok := selectionRect(sel, lineStart, len(line), adv, left, y, st.LineHeight, metrics.Narrow); ok {
				f.Selection = append(f.Selection, r)
			}
		}
	}

	cursor := d.buf.Cursor()
	f.Caret = d.mapper.OffsetToPixel(cursor)
	f.Caret.W = caretWidth
	row := d.buf.PosFromOffset(cursor).Row
	f.CaretVisible = focused && row >= st.FirstLine && row < st.LastLine
	return f
}

const caretWidth = 2

// selectionRect returns the highlighted box of sel on one line. A selection
// running past the line end also covers one narrow cell for the newline.
func selectionRect(sel buffer.Range, lineStart, lineLen int, adv []float64, left, y, h, narrow float64) (Rect, bool) {
	lineEnd := lineStart + lineLen
	if sel.End <= lineStart || sel.Start > lineEnd {
		return Rect{}, false
	}
	from := max(sel.Start, lineStart) - lineStart
	to := min(sel.End, lineEnd) - lineStart

	x0, x1 := 0.0, 0.0
	for i, w := range adv {
		if i < from {
			x0 += w
		}
		if i < to {
			x1 += w
		}
	}
	if sel.End > lineEnd {
		x1 += narrow
	}
	if x1 <= x0 {
		return Rect{}, false
	}
	return Rect{X: left + x0, Y: y, W: x1 - x0, H: h}, true
}
