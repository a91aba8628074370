package buffer

import "github.com/iw2rmb/scribe/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	b.MoveTo(b.moveCursor(b.cursor, m), m.Extend)
}

// MoveTo places the cursor at off. With extend, the selection grows from the
// existing anchor (or the previous cursor); otherwise it is cleared.
func (b *Buffer) MoveTo(off int, extend bool) {
	prevCursor := b.cursor
	prevSel := b.sel
	next := ClampOffset(off, b.Len())

	nextSel := selectionState{}
	if extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor, end: next}
		}
	}

	if prevCursor == next && selectionStateEqual(prevSel, nextSel) {
		return
	}

	b.cursor = next
	b.sel = nextSel
	b.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (b *Buffer) moveCursor(off int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		return b.moveDoc(off, m.Dir)
	default:
		return off
	}
}

func (b *Buffer) moveGrapheme(off int, dir MoveDir) int {
	p := b.PosFromOffset(off)
	switch dir {
	case DirLeft:
		if off == 0 {
			return off
		}
		if p.Col == 0 {
			return off - 1
		}
		return off - grapheme.LastRunes(b.Line(p.Row)[:p.Col])
	case DirRight:
		if off == b.Len() {
			return off
		}
		line := b.Line(p.Row)
		if p.Col >= len(line) {
			return off + 1
		}
		return off + grapheme.FirstRunes(line[p.Col:])
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	p := b.PosFromOffset(off)
	switch dir {
	case DirHome:
		return b.LineStart(p.Row)
	case DirEnd:
		return b.LineEnd(p.Row)
	case DirUp:
		if p.Row == 0 {
			return off
		}
		return b.OffsetFromPos(Pos{Row: p.Row - 1, Col: p.Col})
	case DirDown:
		if p.Row == b.LineCount()-1 {
			return off
		}
		return b.OffsetFromPos(Pos{Row: p.Row + 1, Col: p.Col})
	default:
		return off
	}
}

func (b *Buffer) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return b.Len()
	default:
		return off
	}
}
