package editor

import (
	"log/slog"
	"math"

	"github.com/iw2rmb/scribe/glyph"
)

const (
	defaultLineHeight   = 20
	defaultCanvasWidth  = 800
	defaultCanvasHeight = 600
)

// Padding is the space between the canvas edge and the text origin.
type Padding struct {
	Left, Top float64
}

// Config configures an Editor. Zero values resolve to defaults.
type Config struct {
	// Initial text for the internal buffer.
	Text string
	// MaxLen caps the document length in runes. Zero means unlimited.
	MaxLen int
	// ReadOnly disables keyboard and composition edits.
	ReadOnly bool

	Metrics    glyph.Metrics
	LineHeight float64
	Padding    Padding

	// Initial canvas size in logical pixels. A resize event replaces it.
	Width, Height    float64
	DevicePixelRatio float64

	Theme        Theme
	KeyMap       *KeyMap
	ScrollPolicy ScrollPolicy
	// WheelLines is the number of lines one unit of DeltaY scrolls when the
	// host reports line deltas. Zero means pixel deltas.
	WheelLines int

	Atlas     GlyphAtlas
	Clipboard Clipboard

	// OnChange is called synchronously after a dispatched event changed the
	// buffer's text, cursor, or selection.
	OnChange func(ChangeEvent)

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

func (c Config) normalized() Config {
	c.Metrics = c.Metrics.Normalize()
	if !positive(c.LineHeight) {
		c.LineHeight = defaultLineHeight
	}
	if !positive(c.Width) {
		c.Width = defaultCanvasWidth
	}
	if !positive(c.Height) {
		c.Height = defaultCanvasHeight
	}
	if !positive(c.DevicePixelRatio) {
		c.DevicePixelRatio = 1
	}
	c.Padding.Left = math.Max(0, finite(c.Padding.Left))
	c.Padding.Top = math.Max(0, finite(c.Padding.Top))
	c.Theme = c.Theme.normalized()
	if c.KeyMap == nil {
		km := DefaultKeyMap()
		c.KeyMap = &km
	}
	if c.WheelLines < 0 {
		c.WheelLines = 0
	}
	if c.Atlas == nil {
		c.Atlas = NewRuneAtlas()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
