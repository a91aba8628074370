package buffer

import "slices"

// lineIndex caches the offset at which each row starts. Edits patch it in
// place; Reset drops it and the next read rebuilds it.
type lineIndex struct {
	valid  bool
	starts []int
}

func (li *lineIndex) invalidate() {
	li.valid = false
	li.starts = li.starts[:0]
}

// edit patches the cached starts after [start, end) was replaced by ins.
// Starts inside the removed range go away, later starts shift by the length
// delta and every newline in ins adds one.
func (li *lineIndex) edit(start, end int, ins []rune) {
	if !li.valid {
		return
	}
	lo, _ := slices.BinarySearch(li.starts, start+1)
	hi, _ := slices.BinarySearch(li.starts, end+1)

	var added []int
	for i, r := range ins {
		if r == '\n' {
			added = append(added, start+i+1)
		}
	}

	delta := len(ins) - (end - start)
	if delta != 0 {
		for i := hi; i < len(li.starts); i++ {
			li.starts[i] += delta
		}
	}
	li.starts = slices.Replace(li.starts, lo, hi, added...)
}

func (b *Buffer) lineStarts() []int {
	if b.lines.valid {
		return b.lines.starts
	}
	starts := append(b.lines.starts[:0], 0)
	b.table.each(func(off int, r rune) {
		if r == '\n' {
			starts = append(starts, off+1)
		}
	})
	b.lines.starts = starts
	b.lines.valid = true
	return starts
}

// LineCount returns the number of rows. An empty document has one row.
func (b *Buffer) LineCount() int {
	return len(b.lineStarts())
}

// LineStart returns the offset of the first character of row (clamped).
func (b *Buffer) LineStart(row int) int {
	starts := b.lineStarts()
	return starts[clampInt(row, 0, len(starts)-1)]
}

// LineEnd returns the offset just before row's line break, or Len for the
// last row.
func (b *Buffer) LineEnd(row int) int {
	starts := b.lineStarts()
	row = clampInt(row, 0, len(starts)-1)
	if row+1 < len(starts) {
		return starts[row+1] - 1
	}
	return b.Len()
}

// LineLen returns the rune length of row, excluding the line break.
func (b *Buffer) LineLen(row int) int {
	return b.LineEnd(row) - b.LineStart(row)
}

// Line returns a copy of row's runes, excluding the line break.
func (b *Buffer) Line(row int) []rune {
	return b.table.slice(b.LineStart(row), b.LineEnd(row))
}

func (b *Buffer) LineText(row int) string {
	return string(b.Line(row))
}

// PosFromOffset converts a character offset to (row, col), clamping off.
func (b *Buffer) PosFromOffset(off int) Pos {
	off = ClampOffset(off, b.Len())
	starts := b.lineStarts()

	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return Pos{Row: lo, Col: off - starts[lo]}
}

// OffsetFromPos converts (row, col) to a character offset. Row is clamped to
// the document and Col to the row's length.
func (b *Buffer) OffsetFromPos(p Pos) int {
	row := clampInt(p.Row, 0, b.LineCount()-1)
	col := clampInt(p.Col, 0, b.LineLen(row))
	return b.LineStart(row) + col
}

// ClampPos clamps p into document bounds.
func (b *Buffer) ClampPos(p Pos) Pos {
	return b.PosFromOffset(b.OffsetFromPos(p))
}
