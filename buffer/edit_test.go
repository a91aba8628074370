package buffer

import "testing"

func TestBuffer_InsertText_ReplacesSelection(t *testing.T) {
	b := New("hello world", Options{})
	b.SetSelection(Range{Start: 0, End: 5})
	b.InsertText("bye")

	if got, want := b.String(), "bye world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Cursor(); got != 3 {
		t.Fatalf("cursor=%d, want 3", got)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestBuffer_InsertText_EmptyDeletesSelectionOnly(t *testing.T) {
	b := New("abc", Options{})
	b.InsertText("")
	if b.Version() != 0 {
		t.Fatalf("empty insert without selection must be a no-op")
	}

	b.SetSelection(Range{Start: 1, End: 2})
	b.InsertText("")
	if got := b.String(); got != "ac" {
		t.Fatalf("text=%q, want %q", got, "ac")
	}
}

func TestBuffer_DeleteBackward(t *testing.T) {
	cases := []struct {
		name       string
		text       string
		cursor     int
		wantText   string
		wantCursor int
	}{
		{name: "bof", text: "ab", cursor: 0, wantText: "ab", wantCursor: 0},
		{name: "ascii", text: "ab", cursor: 2, wantText: "a", wantCursor: 1},
		{name: "join lines", text: "a\nb", cursor: 2, wantText: "ab", wantCursor: 1},
		{name: "combining cluster", text: "xe\u0301", cursor: 3, wantText: "x", wantCursor: 1},
		{name: "wide", text: "日本", cursor: 2, wantText: "日", wantCursor: 1},
	}
	for _, tc := range cases {
		b := New(tc.text, Options{})
		b.SetCursor(tc.cursor)
		b.DeleteBackward()
		if got := b.String(); got != tc.wantText {
			t.Fatalf("%s: text=%q, want %q", tc.name, got, tc.wantText)
		}
		if got := b.Cursor(); got != tc.wantCursor {
			t.Fatalf("%s: cursor=%d, want %d", tc.name, got, tc.wantCursor)
		}
	}
}

func TestBuffer_DeleteForward(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		cursor   int
		wantText string
	}{
		{name: "eof", text: "ab", cursor: 2, wantText: "ab"},
		{name: "ascii", text: "ab", cursor: 0, wantText: "b"},
		{name: "join lines", text: "a\nb", cursor: 1, wantText: "ab"},
		{name: "combining cluster", text: "e\u0301x", cursor: 0, wantText: "x"},
	}
	for _, tc := range cases {
		b := New(tc.text, Options{})
		b.SetCursor(tc.cursor)
		b.DeleteForward()
		if got := b.String(); got != tc.wantText {
			t.Fatalf("%s: text=%q, want %q", tc.name, got, tc.wantText)
		}
		if got := b.Cursor(); got != tc.cursor {
			t.Fatalf("%s: cursor=%d, want %d", tc.name, got, tc.cursor)
		}
	}
}

func TestBuffer_InsertNewline(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(1)
	b.InsertNewline()
	if got := b.String(); got != "a\nb" {
		t.Fatalf("text=%q", got)
	}
	if got := b.PosFromOffset(b.Cursor()); got != (Pos{Row: 1, Col: 0}) {
		t.Fatalf("cursor pos=%v, want (1,0)", got)
	}
}
