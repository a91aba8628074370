// Package glyph models how wide each character renders on the canvas.
//
// Widths come from an injected Metrics table rather than globals. A Measurer
// fed by real font measurements takes precedence; the narrow/wide constants
// are only the fallback when no measurement exists.
package glyph

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Classifier reports whether r renders at the wide width.
type Classifier func(r rune) bool

// Measurer supplies measured advance widths in logical pixels. ok is false
// when r has not been measured.
type Measurer interface {
	MeasureRune(r rune) (w float64, ok bool)
}

// Metrics is the width table used for layout and hit testing.
type Metrics struct {
	// Narrow is the advance of Latin/ASCII-range runes in logical pixels.
	Narrow float64
	// Wide is the advance of CJK and fullwidth runes in logical pixels.
	Wide float64
	// TabStop is the tab interval measured in Narrow cells.
	TabStop int

	// Classify decides narrow vs wide. Nil means ClassifyEastAsian.
	Classify Classifier
	// Measurer, when set, overrides the constants for measured runes.
	Measurer Measurer
}

const (
	defaultNarrow  = 8
	defaultTabStop = 4
)

// DefaultMetrics returns an 8px narrow / 16px wide table with 4-cell tabs.
func DefaultMetrics() Metrics {
	return Metrics{
		Narrow:   defaultNarrow,
		Wide:     2 * defaultNarrow,
		TabStop:  defaultTabStop,
		Classify: ClassifyEastAsian,
	}
}

// Normalize fills zero or invalid fields with defaults.
func (m Metrics) Normalize() Metrics {
	if !(m.Narrow > 0) {
		m.Narrow = defaultNarrow
	}
	if !(m.Wide > 0) {
		m.Wide = 2 * m.Narrow
	}
	if m.TabStop <= 0 {
		m.TabStop = defaultTabStop
	}
	if m.Classify == nil {
		m.Classify = ClassifyEastAsian
	}
	return m
}

// ClassifyCodepoint treats every code point above 255 as wide. It is cheap
// and matches fixed-width canvas layouts that only distinguish Latin-1.
func ClassifyCodepoint(r rune) bool {
	return r > 255
}

// eastAsian pins ambiguous-width runes to narrow so layout does not depend
// on the process locale.
var eastAsian = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// ClassifyEastAsian uses East Asian Width data. Runes runewidth does not
// know fall back to uniseg's grapheme width.
func ClassifyEastAsian(r rune) bool {
	switch eastAsian.RuneWidth(r) {
	case 2:
		return true
	case 1:
		return false
	}
	return uniseg.StringWidth(string(r)) >= 2
}

// WidthOf returns the advance of r ignoring tab stops. A tab reports a full
// tab interval.
func (m Metrics) WidthOf(r rune) float64 {
	m = m.Normalize()
	return m.widthOf(r)
}

func (m Metrics) widthOf(r rune) float64 {
	if r == '\t' {
		return float64(m.TabStop) * m.Narrow
	}
	if m.Measurer != nil {
		if w, ok := m.Measurer.MeasureRune(r); ok && w >= 0 {
			return w
		}
	}
	if isZeroWidth(r) {
		return 0
	}
	if m.Classify(r) {
		return m.Wide
	}
	return m.Narrow
}

// isZeroWidth reports combining marks and format characters that never
// advance the pen.
func isZeroWidth(r rune) bool {
	if r < 0x300 {
		return false
	}
	return eastAsian.RuneWidth(r) == 0 && uniseg.StringWidth(string(r)) == 0
}

// Advances returns the advance of every rune in line. Tabs advance to the
// next tab stop, so the result depends on position.
func (m Metrics) Advances(line []rune) []float64 {
	m = m.Normalize()
	out := make([]float64, len(line))
	x := 0.0
	for i, r := range line {
		w := m.widthOf(r)
		if r == '\t' {
			w = m.tabAdvance(x)
		}
		out[i] = w
		x += w
	}
	return out
}

func (m Metrics) tabAdvance(x float64) float64 {
	stop := float64(m.TabStop) * m.Narrow
	if stop <= 0 {
		return m.Narrow
	}
	n := int(x/stop) + 1
	return float64(n)*stop - x
}

// LinePrefixWidth sums the advances of line[:upTo]. upTo is clamped.
func (m Metrics) LinePrefixWidth(line []rune, upTo int) float64 {
	if upTo <= 0 {
		return 0
	}
	if upTo > len(line) {
		upTo = len(line)
	}
	total := 0.0
	for _, w := range m.Advances(line[:upTo]) {
		total += w
	}
	return total
}

// LineWidth is the total advance of line.
func (m Metrics) LineWidth(line []rune) float64 {
	return m.LinePrefixWidth(line, len(line))
}
