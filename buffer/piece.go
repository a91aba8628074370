package buffer

type pieceSource uint8

const (
	sourceOriginal pieceSource = iota
	sourceAdd
)

// piece is a run of runes taken from one of the two backing arrays.
type piece struct {
	src    pieceSource
	start  int
	length int
}

// pieceTable stores text as an ordered list of pieces over an immutable
// original array and an append-only add array. Edits never copy document
// text; they only split and drop pieces.
type pieceTable struct {
	original []rune
	add      []rune
	pieces   []piece
	length   int
}

func newPieceTable(rs []rune) pieceTable {
	t := pieceTable{original: rs, length: len(rs)}
	if len(rs) > 0 {
		t.pieces = []piece{{src: sourceOriginal, start: 0, length: len(rs)}}
	}
	return t
}

func (t *pieceTable) source(src pieceSource) []rune {
	if src == sourceAdd {
		return t.add
	}
	return t.original
}

// locate returns the index of the piece containing off and the offset inside
// it. An offset on a piece boundary resolves to the following piece with
// inner == 0; off == length resolves to (len(pieces), 0).
func (t *pieceTable) locate(off int) (idx, inner int) {
	pos := 0
	for i, p := range t.pieces {
		if off < pos+p.length {
			return i, off - pos
		}
		pos += p.length
	}
	return len(t.pieces), 0
}

// insert places rs at off. off must already be clamped to [0, length].
func (t *pieceTable) insert(off int, rs []rune) {
	if len(rs) == 0 {
		return
	}

	addStart := len(t.add)
	t.add = append(t.add, rs...)
	t.length += len(rs)

	idx, inner := t.locate(off)
	if inner == 0 && idx > 0 {
		// Typing appends to the add array; grow the previous piece instead of
		// adding a new one when it ends exactly where the new runes start.
		prev := &t.pieces[idx-1]
		if prev.src == sourceAdd && prev.start+prev.length == addStart {
			prev.length += len(rs)
			return
		}
	}

	np := piece{src: sourceAdd, start: addStart, length: len(rs)}
	if inner == 0 {
		t.pieces = append(t.pieces, piece{})
		copy(t.pieces[idx+1:], t.pieces[idx:])
		t.pieces[idx] = np
		return
	}

	cur := t.pieces[idx]
	left := piece{src: cur.src, start: cur.start, length: inner}
	right := piece{src: cur.src, start: cur.start + inner, length: cur.length - inner}

	out := make([]piece, 0, len(t.pieces)+2)
	out = append(out, t.pieces[:idx]...)
	out = append(out, left, np, right)
	out = append(out, t.pieces[idx+1:]...)
	t.pieces = out
}

// remove deletes [start, end) and returns the removed runes. The range must
// already be clamped and normalized.
func (t *pieceTable) remove(start, end int) []rune {
	if start >= end {
		return nil
	}

	removed := make([]rune, 0, end-start)
	out := make([]piece, 0, len(t.pieces)+1)
	pos := 0
	for _, p := range t.pieces {
		pStart, pEnd := pos, pos+p.length
		pos = pEnd
		if pEnd <= start || pStart >= end {
			out = append(out, p)
			continue
		}

		if pStart < start {
			out = append(out, piece{src: p.src, start: p.start, length: start - pStart})
		}
		lo := max(start, pStart)
		hi := min(end, pEnd)
		src := t.source(p.src)
		removed = append(removed, src[p.start+lo-pStart:p.start+hi-pStart]...)
		if pEnd > end {
			out = append(out, piece{src: p.src, start: p.start + end - pStart, length: pEnd - end})
		}
	}

	t.pieces = out
	t.length -= len(removed)
	return removed
}

// slice returns a copy of [start, end). The range must already be clamped.
func (t *pieceTable) slice(start, end int) []rune {
	if start >= end {
		return nil
	}
	out := make([]rune, 0, end-start)
	pos := 0
	for _, p := range t.pieces {
		pStart, pEnd := pos, pos+p.length
		pos = pEnd
		if pEnd <= start {
			continue
		}
		if pStart >= end {
			break
		}
		lo := max(start, pStart)
		hi := min(end, pEnd)
		src := t.source(p.src)
		out = append(out, src[p.start+lo-pStart:p.start+hi-pStart]...)
	}
	return out
}

// each calls fn for every rune in document order with its offset.
func (t *pieceTable) each(fn func(off int, r rune)) {
	off := 0
	for _, p := range t.pieces {
		src := t.source(p.src)
		for _, r := range src[p.start : p.start+p.length] {
			fn(off, r)
			off++
		}
	}
}

func (t *pieceTable) String() string {
	return string(t.slice(0, t.length))
}
