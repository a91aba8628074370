package editor

import (
	"math"
	"strings"
	"testing"

	"github.com/iw2rmb/scribe/glyph"
)

func TestCoordinateMapper_Reversible(t *testing.T) {
	texts := map[string]string{
		"ascii":     "hello world\nsecond line\n\nlast",
		"wide":      "ab日本語cd\n한국어 text\n",
		"tabs":      "\tindent\na\tb\tc",
		"combining": "caf\u00e9 ok\ne\u0301e\u0301",
		"stacked":   "a\u0301\u0302b\nx\u0301\u0302",
		"emoji":     "hi \U0001F600 there",
	}
	paddings := []Padding{{}, {Left: 12.5, Top: 7}}

	for name, text := range texts {
		for _, pad := range paddings {
			e, _, _ := newTestEditor(t, Config{Text: text, Padding: pad})
			cm := e.Mapper()
			for o := 0; o <= e.Buffer().Len(); o++ {
				r := cm.OffsetToPixel(o)
				got := cm.PixelToOffset(r.X, r.Y)
				if abs(got-o) > 1 {
					t.Fatalf("%s pad=%v: PixelToOffset(OffsetToPixel(%d)) = %d", name, pad, o, got)
				}
			}
		}
	}
}

func TestCoordinateMapper_ReversibleWhenScrolled(t *testing.T) {
	var sb strings.Builder
	for i := range 200 {
		sb.WriteString(strings.Repeat("x", i%40))
		sb.WriteString("日\n")
	}
	e, _, _ := newTestEditor(t, Config{Text: sb.String(), Width: 200, Height: 100, LineHeight: 17.5})
	e.Viewport().ScrollTo(1234.25, 33.3)

	st := e.ViewportState()
	cm := e.Mapper()
	b := e.Buffer()
	for row := st.FirstLine; row < st.LastLine; row++ {
		for o := b.LineStart(row); o <= b.LineEnd(row); o++ {
			r := cm.OffsetToPixel(o)
			if got := cm.PixelToOffset(r.X, r.Y); abs(got-o) > 1 {
				t.Fatalf("row %d: PixelToOffset(OffsetToPixel(%d)) = %d", row, o, got)
			}
		}
	}
}

func TestCoordinateMapper_ClickPastLineEndClampsToLineEnd(t *testing.T) {
	e, _, _ := newTestEditor(t, Config{Text: "hello\nworld!!"})
	cm := e.Mapper()

	if got := cm.PixelToOffset(1000, 5); got != 5 {
		t.Fatalf("past end of line 0: got %d, want %d", got, 5)
	}
	if got := cm.PixelToOffset(1000, 25); got != 13 {
		t.Fatalf("past end of line 1: got %d, want %d", got, 13)
	}
}

func TestCoordinateMapper_MidpointRule(t *testing.T) {
	e, _, _ := newTestEditor(t, Config{Text: "ab日c"})
	cm := e.Mapper()

	tests := []struct {
		x    float64
		want int
	}{
		{-5, 0},
		{0, 0},
		{3.9, 0},
		{4.1, 1},
		{11.9, 1},
		{12.1, 2},
		{23.9, 2},
		{24.1, 3},
		{35.9, 3},
		{36.1, 4},
	}
	for _, tc := range tests {
		if got := cm.PixelToOffset(tc.x, 1); got != tc.want {
			t.Fatalf("PixelToOffset(%v): got %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestCoordinateMapper_ZeroWidthRunEdge(t *testing.T) {
	tests := []struct {
		name string
		text string
		at   int
		want int
	}{
		{"single mark stays with base", "e\u0301x", 1, 2},
		{"two marks split the run", "a\u0301\u0302b", 1, 2},
		{"three marks", "a\u0301\u0302\u0303b", 1, 3},
		{"leading marks", "\u0301\u0302b", 0, 1},
	}
	for _, tc := range tests {
		e, _, _ := newTestEditor(t, Config{Text: tc.text})
		cm := e.Mapper()
		edge := cm.OffsetToPixel(tc.at)
		if got := cm.PixelToOffset(edge.X, edge.Y); got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestCoordinateMapper_ClampsToVisibleLines(t *testing.T) {
	e, _, _ := newTestEditor(t, Config{Text: strings.Repeat("line\n", 100), Height: 100})
	cm := e.Mapper()

	if got := cm.PixelToOffset(0, -500); got != 0 {
		t.Fatalf("above canvas: got %d, want %d", got, 0)
	}
	// Five visible lines; anything below lands on line 4.
	if got := cm.PixelToOffset(0, 5000); got != e.Buffer().LineStart(4) {
		t.Fatalf("below canvas: got %d, want %d", got, e.Buffer().LineStart(4))
	}
	if got := cm.PixelToOffset(math.NaN(), math.Inf(1)); got != 0 {
		t.Fatalf("non-finite input: got %d, want %d", got, 0)
	}
}

func TestCoordinateMapper_DevicePixelRatios(t *testing.T) {
	line := strings.Repeat("a", 100)
	for _, dpr := range []float64{1, 2, 3} {
		e, _, _ := newTestEditor(t, Config{Text: line + "\nnext", Padding: Padding{Left: 10, Top: 4}})
		e.Dispatch(Event{Type: EventResize, Width: 1000, Height: 400, DevicePixelRatio: dpr})

		end := e.Mapper().OffsetToPixel(100)
		got := e.Mapper().DevicePixelToOffset(end.X*dpr, (end.Y+end.H/2)*dpr, dpr)
		if abs(got-100) > 10 {
			t.Fatalf("dpr %v: end-of-line click got %d, want 100±10", dpr, got)
		}

		e.Dispatch(Event{Type: EventPointerDown, X: end.X * dpr, Y: (end.Y + 1) * dpr, DevicePixelRatio: dpr})
		if got := e.Buffer().Cursor(); abs(got-100) > 10 {
			t.Fatalf("dpr %v: pointer cursor got %d, want 100±10", dpr, got)
		}
	}
}

func TestCoordinateMapper_MeasuredWidthsAreAuthoritative(t *testing.T) {
	mw := &glyph.MeasuredWidths{}
	mw.Set('W', 20)
	m := glyph.DefaultMetrics()
	m.Measurer = mw
	e, _, _ := newTestEditor(t, Config{Text: "WWa", Metrics: m})

	if got := e.Mapper().OffsetToPixel(2).X; got != 40 {
		t.Fatalf("x after two measured glyphs: got %v, want %v", got, 40)
	}
	if got := e.Mapper().PixelToOffset(25, 1); got != 1 {
		t.Fatalf("hit inside second glyph: got %d, want %d", got, 1)
	}
}

func TestCoordinateMapper_OffsetToPixelCaretBox(t *testing.T) {
	e, _, _ := newTestEditor(t, Config{Text: "a日\nb", LineHeight: 18, Padding: Padding{Left: 3, Top: 2}})
	cm := e.Mapper()

	tests := []struct {
		off  int
		want Rect
	}{
		{0, Rect{X: 3, Y: 2, W: 8, H: 18}},
		{1, Rect{X: 11, Y: 2, W: 16, H: 18}},
		{2, Rect{X: 27, Y: 2, W: 8, H: 18}},
		{3, Rect{X: 3, Y: 20, W: 8, H: 18}},
		{99, Rect{X: 11, Y: 20, W: 8, H: 18}},
	}
	for _, tc := range tests {
		if got := cm.OffsetToPixel(tc.off); got != tc.want {
			t.Fatalf("OffsetToPixel(%d): got %+v, want %+v", tc.off, got, tc.want)
		}
	}
}
