package buffer

// Pos points into the document by (row, col). Col counts runes from the
// start of the row. Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Range is a half-open span of character offsets: [Start, End).
type Range struct {
	Start int
	End   int
}

// TextEdit replaces the text in Range with Text (which may contain '\n').
type TextEdit struct {
	Range Range
	Text  string
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

// NormalizeRange orders r so that Start <= End.
func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Len returns the number of characters covered by the normalized range.
func (r Range) Len() int {
	r = NormalizeRange(r)
	return r.End - r.Start
}

// Contains reports whether off lies in [Start, End).
func (r Range) Contains(off int) bool {
	r = NormalizeRange(r)
	return off >= r.Start && off < r.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampOffset clamps off into [0, n].
func ClampOffset(off, n int) int {
	return clampInt(off, 0, n)
}

// ClampRange clamps both ends of r into [0, n] and normalizes it.
func ClampRange(r Range, n int) Range {
	return NormalizeRange(Range{
		Start: ClampOffset(r.Start, n),
		End:   ClampOffset(r.End, n),
	})
}
