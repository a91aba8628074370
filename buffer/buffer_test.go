package buffer

import (
	"strings"
	"testing"
)

func TestBuffer_InsertBeyondLenAppends(t *testing.T) {
	b := New("Hello", Options{})
	if got := b.Insert(1000, " World"); got != 5 {
		t.Fatalf("insert offset: got %d, want 5", got)
	}
	if got, want := b.String(), "Hello World"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Len(); got != 11 {
		t.Fatalf("len=%d, want 11", got)
	}
}

func TestBuffer_InsertNegativeOffsetPrepends(t *testing.T) {
	b := New("b", Options{})
	b.Insert(-3, "a")
	if got, want := b.String(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_InsertEmptyIsNoOp(t *testing.T) {
	for _, off := range []int{-10, 0, 3, 5, 10000} {
		b := New("Hello", Options{})
		b.Insert(off, "")
		if b.String() != "Hello" || b.Version() != 0 || b.TextVersion() != 0 {
			t.Fatalf("insert(%d, \"\") changed buffer: text=%q version=%d", off, b.String(), b.Version())
		}
		if _, ok := b.LastChange(); ok {
			t.Fatalf("insert(%d, \"\") recorded a change", off)
		}
	}
}

func TestBuffer_RemoveOrderIndependent(t *testing.T) {
	text := "abc\n日本語\nxyz"
	n := len([]rune(text))
	for s := -2; s <= n+2; s++ {
		for e := -2; e <= n+2; e++ {
			if s <= e {
				continue
			}
			a := New(text, Options{})
			b := New(text, Options{})
			a.Remove(s, e)
			b.Remove(e, s)
			if a.String() != b.String() {
				t.Fatalf("remove(%d,%d)=%q, remove(%d,%d)=%q", s, e, a.String(), e, s, b.String())
			}
		}
	}
}

func TestBuffer_RemoveBeyondLenEmpties(t *testing.T) {
	b := New("some\ntext", Options{})
	b.Remove(0, 10000)
	if b.String() != "" || b.Len() != 0 {
		t.Fatalf("expected empty buffer, got %q", b.String())
	}
	if b.LineCount() != 1 {
		t.Fatalf("empty buffer line count: got %d, want 1", b.LineCount())
	}
}

func TestBuffer_RemoveNoOps(t *testing.T) {
	empty := New("", Options{})
	empty.Remove(0, 0)
	if empty.Version() != 0 || empty.Len() != 0 {
		t.Fatalf("remove(0,0) on empty buffer must be a no-op")
	}

	b := New("abc", Options{})
	b.Remove(2, 2)
	b.Remove(10, 20)
	b.Remove(-5, -1)
	if b.String() != "abc" || b.Version() != 0 {
		t.Fatalf("empty/out-of-range removes changed buffer: %q v=%d", b.String(), b.Version())
	}
}

func TestBuffer_InsertShiftsCursorAndSelection(t *testing.T) {
	b := New("abcdef", Options{})
	b.SetCursor(4)
	b.SetSelection(Range{Start: 1, End: 3})

	b.Insert(2, "XY")
	if got := b.Cursor(); got != 6 {
		t.Fatalf("cursor after insert before it: got %d, want 6", got)
	}
	if r, ok := b.Selection(); !ok || r != (Range{Start: 1, End: 5}) {
		t.Fatalf("selection: got %v (%v), want [1,5)", r, ok)
	}

	b.Insert(6, "!")
	if got := b.Cursor(); got != 6 {
		t.Fatalf("cursor at insertion point must stay: got %d, want 6", got)
	}
}

func TestBuffer_RemoveCollapsesCursorInsideSpan(t *testing.T) {
	b := New("0123456789", Options{})
	b.SetCursor(5)
	b.Remove(3, 8)
	if got := b.Cursor(); got != 3 {
		t.Fatalf("cursor inside removed span: got %d, want 3", got)
	}

	b.SetCursor(5)
	b.Remove(0, 2)
	if got := b.Cursor(); got != 3 {
		t.Fatalf("cursor after removed span: got %d, want 3", got)
	}
}

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetCursor(999)
	if got := b.Cursor(); got != 4 {
		t.Fatalf("cursor=%d, want 4", got)
	}
	if b.Version() != 1 || b.TextVersion() != 0 {
		t.Fatalf("versions: got %d/%d, want 1/0", b.Version(), b.TextVersion())
	}

	b.SetCursor(4)
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.SetCursor(-1)
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}
}

func TestBuffer_SetSelection_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetSelection(Range{Start: 99, End: -1})
	r, ok := b.Selection()
	if !ok || r != (Range{Start: 0, End: 4}) {
		t.Fatalf("selection=%v (%v), want [0,4)", r, ok)
	}
	raw, _ := b.SelectionRaw()
	if raw != (Range{Start: 4, End: 0}) {
		t.Fatalf("raw selection keeps direction: got %v", raw)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	// Same effective selection, different direction: no bump.
	b.SetSelection(Range{Start: 0, End: 4})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	b.ClearSelection()
	if b.Version() != 2 {
		t.Fatalf("expected version 2, got %d", b.Version())
	}
}

func TestBuffer_MaxLenTruncatesInserts(t *testing.T) {
	b := New("abcdef", Options{MaxLen: 4})
	if got := b.String(); got != "abcd" {
		t.Fatalf("initial text=%q, want %q", got, "abcd")
	}
	b.Insert(4, "xyz")
	if got := b.String(); got != "abcd" {
		t.Fatalf("insert at capacity: got %q", got)
	}
	b.Remove(0, 2)
	b.Insert(0, "123")
	if got := b.String(); got != "12cd" {
		t.Fatalf("insert truncated to room: got %q, want %q", got, "12cd")
	}
}

func TestBuffer_ResetReplacesContent(t *testing.T) {
	b := New("old", Options{})
	b.SetCursor(2)
	b.Reset("new\ntext")

	if b.String() != "new\ntext" || b.Cursor() != 0 {
		t.Fatalf("reset: text=%q cursor=%d", b.String(), b.Cursor())
	}
	if b.LineCount() != 2 {
		t.Fatalf("line index must be rebuilt: got %d lines", b.LineCount())
	}
	ch, ok := b.LastChange()
	if !ok || len(ch.AppliedEdits) != 1 || ch.AppliedEdits[0].DeletedText != "old" {
		t.Fatalf("reset change: %+v (%v)", ch, ok)
	}
}

func TestBuffer_LargeDocument(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100000; i++ {
		sb.WriteString("line\n")
	}
	b := New(sb.String(), Options{})
	if got := b.LineCount(); got != 100001 {
		t.Fatalf("line count=%d, want 100001", got)
	}
	b.Insert(b.LineStart(50000), "X")
	if got := b.LineText(50000); got != "Xline" {
		t.Fatalf("line 50000=%q, want %q", got, "Xline")
	}
}
