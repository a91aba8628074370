package glyph

// MeasuredWidths is a Measurer backed by widths reported by a text
// measurement service. The zero value is empty and ready to use.
//
// It is not safe for concurrent use; the editor core feeds it from the
// event loop.
type MeasuredWidths struct {
	widths map[rune]float64
}

// Set records the measured advance of r. Negative or NaN widths are ignored.
func (mw *MeasuredWidths) Set(r rune, w float64) {
	if !(w >= 0) {
		return
	}
	if mw.widths == nil {
		mw.widths = make(map[rune]float64)
	}
	mw.widths[r] = w
}

// SetString records the same width for every rune in s.
func (mw *MeasuredWidths) SetString(s string, w float64) {
	for _, r := range s {
		mw.Set(r, w)
	}
}

// Forget drops the measurement for r so the constants apply again.
func (mw *MeasuredWidths) Forget(r rune) {
	delete(mw.widths, r)
}

func (mw *MeasuredWidths) Len() int { return len(mw.widths) }

func (mw *MeasuredWidths) MeasureRune(r rune) (float64, bool) {
	if mw == nil {
		return 0, false
	}
	w, ok := mw.widths[r]
	return w, ok
}
