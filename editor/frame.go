package editor

import (
	"encoding/binary"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// DrawGlyph is one glyph draw instruction. Position is the top-left of the
// glyph cell in logical pixels.
type DrawGlyph struct {
	Position   Point
	GlyphIndex int
	Rune       rune
	Width      float64
	Color      lipgloss.Color
	Line       int
}

// Frame is everything a Surface needs to paint the visible viewport.
type Frame struct {
	Width, Height    float64
	DevicePixelRatio float64
	Background       lipgloss.Color

	FirstLine, LastLine int

	Glyphs []DrawGlyph

	Selection      []Rect
	SelectionColor lipgloss.Color

	Caret        Rect
	CaretVisible bool
	CaretColor   lipgloss.Color
}

// MarshalBinary encodes the frame deterministically. Two frames that paint
// the same pixels encode to the same bytes.
func (f Frame) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 64+len(f.Glyphs)*48)
	b = appendFloat(b, f.Width, f.Height, f.DevicePixelRatio)
	b = appendString(b, string(f.Background))
	b = binary.AppendVarint(b, int64(f.FirstLine))
	b = binary.AppendVarint(b, int64(f.LastLine))

	b = binary.AppendUvarint(b, uint64(len(f.Glyphs)))
	for _, g := range f.Glyphs {
		b = appendFloat(b, g.Position.X, g.Position.Y, g.Width)
		b = binary.AppendVarint(b, int64(g.GlyphIndex))
		b = binary.AppendVarint(b, int64(g.Rune))
		b = binary.AppendVarint(b, int64(g.Line))
		b = appendString(b, string(g.Color))
	}

	b = binary.AppendUvarint(b, uint64(len(f.Selection)))
	for _, r := range f.Selection {
		b = appendFloat(b, r.X, r.Y, r.W, r.H)
	}
	b = appendString(b, string(f.SelectionColor))

	b = appendFloat(b, f.Caret.X, f.Caret.Y, f.Caret.W, f.Caret.H)
	if f.CaretVisible {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	b = appendString(b, string(f.CaretColor))
	return b, nil
}

func appendFloat(b []byte, vs ...float64) []byte {
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
	}
	return b
}

func appendString(b []byte, s string) []byte {
	b = binary.AppendUvarint(b, uint64(len(s)))
	return append(b, s...)
}
