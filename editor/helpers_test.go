package editor

import (
	"bytes"
	"log/slog"
	"testing"
)

type fakeCapture struct {
	focused     bool
	focusCalls  int
	composition string
	caret       Rect
	places      int
}

func (c *fakeCapture) Focus()                  { c.focused = true; c.focusCalls++ }
func (c *fakeCapture) Focused() bool           { return c.focused }
func (c *fakeCapture) SetComposition(s string) { c.composition = s }
func (c *fakeCapture) Place(r Rect)            { c.caret = r; c.places++ }

// blur simulates the host moving native focus elsewhere.
func (c *fakeCapture) blur() { c.focused = false }

type fakeSurface struct {
	frames []Frame
}

func (s *fakeSurface) Draw(f Frame) { s.frames = append(s.frames, f) }

func (s *fakeSurface) last() Frame {
	if len(s.frames) == 0 {
		return Frame{}
	}
	return s.frames[len(s.frames)-1]
}

func newTestEditor(t *testing.T, cfg Config) (*Editor, *fakeCapture, *fakeSurface) {
	t.Helper()
	capture := &fakeCapture{}
	surface := &fakeSurface{}
	return New(cfg, capture, surface), capture, surface
}

func newLogBuffer() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func frameBytes(t *testing.T, f Frame) []byte {
	t.Helper()
	b, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	return b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
