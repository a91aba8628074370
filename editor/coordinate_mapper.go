package editor

import (
	"math"

	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/glyph"
)

// hitEpsilon absorbs float error when a coordinate produced by OffsetToPixel
// is mapped back to its line and column.
const hitEpsilon = 1e-6

// CoordinateMapper converts between canvas pixels and buffer offsets. It reads
// the buffer, metrics, and viewport but never mutates them.
type CoordinateMapper struct {
	buf     *buffer.Buffer
	metrics glyph.Metrics
	vp      *Viewport
}

func NewCoordinateMapper(buf *buffer.Buffer, metrics glyph.Metrics, vp *Viewport) *CoordinateMapper {
	return &CoordinateMapper{buf: buf, metrics: metrics.Normalize(), vp: vp}
}

func (cm *CoordinateMapper) Metrics() glyph.Metrics { return cm.metrics }

func (cm *CoordinateMapper) setMetrics(m glyph.Metrics) { cm.metrics = m.Normalize() }

// PixelToOffset maps a logical-pixel canvas coordinate to a buffer offset.
//
// The line is clamped to the visible range and the column to the line, so
// every input maps to a valid offset.
func (cm *CoordinateMapper) PixelToOffset(x, y float64) int {
	if cm.buf == nil {
		return 0
	}
	st := cm.vp.State()
	row := cm.lineAtY(finite(y), st)
	cx := finite(x) - st.TextLeft()
	return cm.buf.LineStart(row) + cm.columnAt(cm.buf.Line(row), cx)
}

// DevicePixelToOffset maps device pixels by dividing by dpr first. A
// non-positive dpr uses the viewport's ratio.
func (cm *CoordinateMapper) DevicePixelToOffset(x, y, dpr float64) int {
	if !positive(dpr) {
		dpr = cm.vp.State().DevicePixelRatio
	}
	return cm.PixelToOffset(x/dpr, y/dpr)
}

// OffsetToPixel returns the caret rectangle for off in logical pixels. Its
// width is the advance of the character at off, or Narrow at line end.
func (cm *CoordinateMapper) OffsetToPixel(off int) Rect {
	st := cm.vp.State()
	if cm.buf == nil {
		return Rect{X: st.TextLeft(), Y: st.LineTop(0), W: cm.metrics.Narrow, H: st.LineHeight}
	}
	p := cm.buf.PosFromOffset(off)
	line := cm.buf.Line(p.Row)
	x, w := cm.columnBox(line, p.Col)
	return Rect{
		X: st.TextLeft() + x,
		Y: st.LineTop(p.Row),
		W: w,
		H: st.LineHeight,
	}
}

// OffsetAtLineX maps a content x (relative to column 0, unscrolled) on row to
// an offset. Used for vertical caret moves that keep the pixel column.
func (cm *CoordinateMapper) OffsetAtLineX(row int, x float64) int {
	if cm.buf == nil {
		return 0
	}
	row = clampInt(row, 0, cm.buf.LineCount()-1)
	return cm.buf.LineStart(row) + cm.columnAt(cm.buf.Line(row), finite(x))
}

// contentX returns the unscrolled x of off relative to column 0.
func (cm *CoordinateMapper) contentX(off int) (row int, x float64) {
	p := cm.buf.PosFromOffset(off)
	x, _ = cm.columnBox(cm.buf.Line(p.Row), p.Col)
	return p.Row, x
}

func (cm *CoordinateMapper) lineAtY(y float64, st ViewportState) int {
	row := st.FirstLine
	if st.LineHeight > 0 {
		rel := (y - st.Padding.Top + st.ScrollTop) / st.LineHeight
		rel = clampFloat(rel, -1, float64(st.LastLine)+1)
		row = int(math.Floor(rel + hitEpsilon))
	}
	row = clampInt(row, st.FirstLine, st.LastLine-1)
	return clampInt(row, 0, cm.buf.LineCount()-1)
}

// columnAt returns the index of the first character whose midpoint lies
// beyond x, or len(line) when x is past every midpoint.
//
// Offsets around a run of zero-width runes share one x. A point on that edge
// resolves to the middle of the run, rounding up, so a single combining mark
// stays attached to its base.
func (cm *CoordinateMapper) columnAt(line []rune, x float64) int {
	adv := cm.metrics.Advances(line)
	acc := 0.0
	for i, w := range adv {
		if w == 0 && acc+hitEpsilon >= x {
			j := i
			for j < len(adv) && adv[j] == 0 {
				j++
			}
			return (i + j + 1) / 2
		}
		if acc+w/2 > x {
			return i
		}
		acc += w
	}
	return len(line)
}

// columnBox returns the prefix width up to col and the advance at col.
func (cm *CoordinateMapper) columnBox(line []rune, col int) (x, w float64) {
	adv := cm.metrics.Advances(line)
	col = clampInt(col, 0, len(adv))
	for _, a := range adv[:col] {
		x += a
	}
	if col < len(adv) && adv[col] > 0 {
		return x, adv[col]
	}
	return x, cm.metrics.Narrow
}
