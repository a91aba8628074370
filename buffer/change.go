package buffer

// SelectionState is the exported view of a selection. Range is normalized
// and Active is false for a collapsed selection.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit is one replacement inside a Change, in rune offsets.
// RangeBefore addresses the text as it was, RangeAfter the text that
// replaced it.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change records the last mutation that altered text: the versions and caret
// on both sides plus every replacement in application order.
type Change struct {
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    int
	CursorAfter     int
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

// pendingChange collects edits between openChange and closeChange.
type pendingChange struct {
	Change
}

// LastChange returns a copy of the most recent text change. ok is false
// until the text has changed once.
func (b *Buffer) LastChange() (c Change, ok bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	c = b.lastChange
	c.AppliedEdits = append([]AppliedEdit(nil), c.AppliedEdits...)
	return c, true
}

func (s selectionState) public() SelectionState {
	if !s.active || s.anchor == s.end {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: NormalizeRange(Range{Start: s.anchor, End: s.end})}
}

func (b *Buffer) openChange() pendingChange {
	return pendingChange{Change{
		VersionBefore:   b.version,
		CursorBefore:    b.cursor,
		SelectionBefore: b.sel.public(),
	}}
}

func (p *pendingChange) record(e AppliedEdit) {
	e.RangeBefore = NormalizeRange(e.RangeBefore)
	e.RangeAfter = NormalizeRange(e.RangeAfter)
	p.AppliedEdits = append(p.AppliedEdits, e)
}

// closeChange publishes p as the last change when the version moved and at
// least one edit was recorded. Cursor-only moves keep the previous change.
func (b *Buffer) closeChange(p pendingChange) {
	if b.version == p.VersionBefore || len(p.AppliedEdits) == 0 {
		return
	}
	c := p.Change
	c.VersionAfter = b.version
	c.CursorAfter = b.cursor
	c.SelectionAfter = b.sel.public()
	b.lastChange, b.hasLastChange = c, true
}
