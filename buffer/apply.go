package buffer

// Apply runs edits in order as one change. Each range is read against the
// text left by the edits before it and clamped to [0, Len]. An empty range
// inserts.
//
// When at least one edit changes the text, the cursor lands after the last
// inserted text, the selection collapses and both versions bump once for the
// whole batch. Edits that change nothing are skipped and leave no record.
func (b *Buffer) Apply(edits ...TextEdit) {
	change := b.openChange()
	cursor := -1
	for _, e := range edits {
		if end, applied, ok := b.replaceRange(e.Range, e.Text); ok {
			cursor = end
			change.record(applied)
		}
	}
	if cursor < 0 {
		return
	}

	b.cursor = ClampOffset(cursor, b.Len())
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.closeChange(change)
}
