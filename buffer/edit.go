package buffer

import "github.com/iw2rmb/scribe/internal/grapheme"

// InsertText inserts text at the cursor, or replaces the active selection,
// and leaves the cursor after the inserted text.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.replaceAndPlace(r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics. A whole grapheme cluster is
// removed, so combining sequences never leave a dangling mark.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == 0 {
		return
	}

	p := b.PosFromOffset(b.cursor)
	n := 1
	if p.Col > 0 {
		n = grapheme.LastRunes(b.Line(p.Row)[:p.Col])
	}
	b.replaceAndPlace(Range{Start: b.cursor - n, End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == b.Len() {
		return
	}

	p := b.PosFromOffset(b.cursor)
	n := 1
	if line := b.Line(p.Row); p.Col < len(line) {
		n = grapheme.FirstRunes(line[p.Col:])
	}
	b.replaceAndPlace(Range{Start: b.cursor, End: b.cursor + n}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.replaceAndPlace(r, "")
}

// replaceAndPlace replaces r with text as one change, moving the cursor to
// the end of the inserted text and clearing the selection.
func (b *Buffer) replaceAndPlace(r Range, text string) {
	change := b.openChange()
	end, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	b.cursor = end
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	change.record(applied)
	b.closeChange(change)
}
