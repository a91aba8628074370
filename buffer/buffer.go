package buffer

type Options struct {
	// MaxLen caps the document length in runes. Inserts that would exceed it
	// are truncated. Zero means unlimited.
	MaxLen int
}

type selectionState struct {
	active bool
	anchor int
	end    int
}

// CursorState is a snapshot of the cursor offset and the optional selection.
type CursorState struct {
	Offset    int
	Selection SelectionState
}

// Buffer is the pure document state: text, cursor, and selection.
type Buffer struct {
	table pieceTable
	lines lineIndex

	version     uint64
	textVersion uint64

	cursor int
	sel    selectionState

	opt Options

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.MaxLen < 0 {
		opt.MaxLen = 0
	}
	b := &Buffer{opt: opt}
	b.table = newPieceTable(b.truncate([]rune(text), 0))
	return b
}

// Len returns the document length in runes.
func (b *Buffer) Len() int { return b.table.length }

// String materializes the full document.
func (b *Buffer) String() string { return b.table.String() }

// Slice returns the text in r after clamping.
func (b *Buffer) Slice(r Range) string {
	r = ClampRange(r, b.Len())
	return string(b.table.slice(r.Start, r.End))
}

// Version increments on every effective change to text, cursor or selection.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when document text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() int { return b.cursor }

func (b *Buffer) CursorState() CursorState {
	return CursorState{
		Offset:    b.cursor,
		Selection: b.sel.public(),
	}
}

func (b *Buffer) SetCursor(off int) {
	next := ClampOffset(off, b.Len())
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	st := b.sel.public()
	return st.Range, st.Active
}

// SelectionRaw returns the raw selection anchor/end without normalization.
//
// This is useful for hosts that need the selection direction (e.g.
// shift+click extends from the anchor) while still treating empty selections
// as inactive.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

func (b *Buffer) SetSelection(r Range) {
	n := b.Len()
	next := selectionState{
		active: true,
		anchor: ClampOffset(r.Start, n),
		end:    ClampOffset(r.End, n),
	}
	if next.anchor == next.end {
		next = selectionState{}
	}

	prev := b.sel.public()
	b.sel = next
	if prev != next.public() {
		b.version++
	}
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	wasVisible := b.sel.anchor != b.sel.end
	b.sel = selectionState{}
	if wasVisible {
		b.version++
	}
}

// Insert inserts text at off and returns the offset actually used. off is
// clamped to [0, Len]. Inserting "" is a no-op.
//
// Positions strictly after off shift right; a cursor exactly at off stays.
func (b *Buffer) Insert(off int, text string) int {
	off = ClampOffset(off, b.Len())
	if text == "" {
		return off
	}

	change := b.openChange()
	_, applied, changed := b.replaceRange(Range{Start: off, End: off}, text)
	if !changed {
		return off
	}
	b.version++
	b.textVersion++
	change.record(applied)
	b.closeChange(change)
	return off
}

// Remove deletes the text in [start, end). Both ends are clamped to
// [0, Len] and swapped when start > end. Empty spans are no-ops.
func (b *Buffer) Remove(start, end int) {
	r := ClampRange(Range{Start: start, End: end}, b.Len())
	if r.IsEmpty() {
		return
	}

	change := b.openChange()
	_, applied, changed := b.replaceRange(r, "")
	if !changed {
		return
	}
	b.version++
	b.textVersion++
	change.record(applied)
	b.closeChange(change)
}

// Reset replaces the whole document, moving the cursor to 0 and clearing the
// selection.
func (b *Buffer) Reset(text string) {
	change := b.openChange()
	before := b.String()
	b.table = newPieceTable(b.truncate([]rune(text), b.table.length))
	b.lines.invalidate()
	b.cursor = 0
	b.sel = selectionState{}
	b.version++

	after := b.String()
	if before != after {
		b.textVersion++
		change.record(AppliedEdit{
			RangeBefore: Range{Start: 0, End: len([]rune(before))},
			RangeAfter:  Range{Start: 0, End: b.Len()},
			InsertText:  after,
			DeletedText: before,
		})
	}
	b.closeChange(change)
}

// replaceRange swaps the clamped range r for text and shifts the cursor and
// selection through the edit. The caller bumps versions.
func (b *Buffer) replaceRange(r Range, text string) (end int, applied AppliedEdit, changed bool) {
	r = ClampRange(r, b.Len())
	ins := b.truncate([]rune(text), r.Len())
	if r.IsEmpty() && len(ins) == 0 {
		return r.Start, AppliedEdit{}, false
	}

	deleted := b.table.remove(r.Start, r.End)
	b.table.insert(r.Start, ins)
	b.lines.edit(r.Start, r.End, ins)

	shift := func(p int) int {
		switch {
		case p <= r.Start:
			return p
		case p >= r.End:
			return p - r.Len() + len(ins)
		default:
			return r.Start
		}
	}
	b.cursor = ClampOffset(shift(b.cursor), b.Len())
	if b.sel.active {
		b.sel.anchor = ClampOffset(shift(b.sel.anchor), b.Len())
		b.sel.end = ClampOffset(shift(b.sel.end), b.Len())
		if b.sel.anchor == b.sel.end {
			b.sel = selectionState{}
		}
	}

	end = r.Start + len(ins)
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: end},
		InsertText:  string(ins),
		DeletedText: string(deleted),
	}
	return end, applied, true
}

// truncate trims rs so that the document stays within MaxLen once removed
// runes are gone.
func (b *Buffer) truncate(rs []rune, removed int) []rune {
	if b.opt.MaxLen <= 0 {
		return rs
	}
	room := b.opt.MaxLen - (b.table.length - removed)
	if room <= 0 {
		return nil
	}
	if len(rs) > room {
		return rs[:room]
	}
	return rs
}
