package editor

import (
	"math"
	"strings"
	"testing"
)

func testViewport(lines int) *Viewport {
	cfg := Config{Width: 100, Height: 100, LineHeight: 20}.normalized()
	return newViewport(cfg, lines)
}

func TestViewport_VisibleRange(t *testing.T) {
	v := testViewport(100)
	st := v.State()
	if st.FirstLine != 0 || st.LastLine != 5 {
		t.Fatalf("initial visible range: got [%d,%d), want [0,5)", st.FirstLine, st.LastLine)
	}

	v.ScrollTo(30, 0)
	st = v.State()
	if st.FirstLine != 1 || st.LastLine != 7 {
		t.Fatalf("scrolled visible range: got [%d,%d), want [1,7)", st.FirstLine, st.LastLine)
	}
}

func TestViewport_ScrollClamps(t *testing.T) {
	v := testViewport(10)

	v.ScrollTo(-50, -3)
	if st := v.State(); st.ScrollTop != 0 || st.ScrollLeft != 0 {
		t.Fatalf("negative scroll: got (%v,%v), want (0,0)", st.ScrollTop, st.ScrollLeft)
	}

	v.ScrollTo(1e9, 0)
	// 10 lines * 20px - 100px canvas.
	if got := v.State().ScrollTop; got != 100 {
		t.Fatalf("max scroll top: got %v, want %v", got, 100)
	}
	if st := v.State(); st.LastLine != 10 {
		t.Fatalf("last line at bottom: got %d, want %d", st.LastLine, 10)
	}

	v.ScrollTo(math.NaN(), math.Inf(1))
	if st := v.State(); st.ScrollTop != 0 || st.ScrollLeft != 0 {
		t.Fatalf("non-finite scroll: got (%v,%v), want (0,0)", st.ScrollTop, st.ScrollLeft)
	}
}

func TestViewport_ShortDocumentDoesNotScroll(t *testing.T) {
	v := testViewport(2)
	v.ScrollBy(0, 500)
	st := v.State()
	if st.ScrollTop != 0 || st.FirstLine != 0 || st.LastLine != 2 {
		t.Fatalf("short document: got %+v", st)
	}
}

func TestViewport_ResizeDegradesToLastKnownGood(t *testing.T) {
	logger, logs := newLogBuffer()
	cfg := Config{Width: 100, Height: 100, Logger: logger}.normalized()
	v := newViewport(cfg, 50)

	if !v.Resize(200, 300, 2) {
		t.Fatalf("valid resize rejected")
	}
	good := v.State()
	gen := v.Generation()

	for _, tc := range []struct{ w, h float64 }{
		{0, 300},
		{200, 0},
		{-1, -1},
		{math.NaN(), 100},
		{math.Inf(1), 100},
	} {
		if v.Resize(tc.w, tc.h, 1) {
			t.Fatalf("Resize(%v,%v) accepted, want rejected", tc.w, tc.h)
		}
	}
	if got := v.State(); got != good {
		t.Fatalf("state after invalid resizes: got %+v, want %+v", got, good)
	}
	if v.Generation() != gen {
		t.Fatalf("generation changed on invalid resize")
	}
	if !strings.Contains(logs.String(), "invalid resize") {
		t.Fatalf("expected a warning log, got %q", logs.String())
	}
}

func TestViewport_ResizeKeepsRatioWhenMissing(t *testing.T) {
	v := testViewport(10)
	v.Resize(100, 100, 3)
	v.Resize(120, 100, 0)
	if got := v.State().DevicePixelRatio; got != 3 {
		t.Fatalf("dpr: got %v, want %v", got, 3)
	}
	if w, h := v.State().BackingSize(); w != 360 || h != 300 {
		t.Fatalf("backing size: got %dx%d, want 360x300", w, h)
	}
}

func TestViewport_EnsureVisible(t *testing.T) {
	v := testViewport(100)

	v.EnsureVisible(20, 0, 8)
	st := v.State()
	// Row 20 bottom edge (420) aligned to the canvas bottom.
	if st.ScrollTop != 320 {
		t.Fatalf("scroll down to row 20: got %v, want %v", st.ScrollTop, 320)
	}
	if st.FirstLine != 16 || st.LastLine != 21 {
		t.Fatalf("visible after follow: got [%d,%d), want [16,21)", st.FirstLine, st.LastLine)
	}

	v.EnsureVisible(3, 0, 8)
	if got := v.State().ScrollTop; got != 60 {
		t.Fatalf("scroll up to row 3: got %v, want %v", got, 60)
	}

	v.EnsureVisible(3, 150, 8)
	if got := v.State().ScrollLeft; got != 58 {
		t.Fatalf("scroll right: got %v, want %v", got, 58)
	}
	v.EnsureVisible(3, 10, 8)
	if got := v.State().ScrollLeft; got != 10 {
		t.Fatalf("scroll left: got %v, want %v", got, 10)
	}
}

func TestViewport_GenerationTracksChanges(t *testing.T) {
	v := testViewport(100)
	g0 := v.Generation()

	v.ScrollTo(0, 0)
	if v.Generation() != g0 {
		t.Fatalf("no-op scroll bumped generation")
	}
	v.ScrollBy(0, 10)
	if v.Generation() == g0 {
		t.Fatalf("scroll did not bump generation")
	}
}
