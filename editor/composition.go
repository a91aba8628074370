package editor

import (
	"log/slog"
	"unicode/utf8"

	"github.com/iw2rmb/scribe/buffer"
)

// CompositionPhase is the observable phase of an IME composition.
type CompositionPhase uint8

const (
	CompositionIdle CompositionPhase = iota
	CompositionComposing
	CompositionCommitting
)

func (p CompositionPhase) String() string {
	switch p {
	case CompositionIdle:
		return "idle"
	case CompositionComposing:
		return "composing"
	case CompositionCommitting:
		return "committing"
	default:
		return "unknown"
	}
}

// CompositionState is a snapshot of the composition controller.
type CompositionState struct {
	Phase   CompositionPhase
	Pending string
	Anchor  int
	// Replace is the selection the commit will replace, if any.
	Replace buffer.Range
}

// Active reports whether a composition session is open.
func (s CompositionState) Active() bool { return s.Phase != CompositionIdle }

// compositionState is sealed: each phase only has the transitions that are
// legal from it.
type compositionState interface {
	snapshot() CompositionState
}

type idleState struct{}

type composingState struct {
	anchor  int
	replace buffer.Range
	pending string
}

type committingState struct {
	anchor  int
	replace buffer.Range
	text    string
}

func (idleState) snapshot() CompositionState { return CompositionState{Phase: CompositionIdle} }

func (s composingState) snapshot() CompositionState {
	return CompositionState{Phase: CompositionComposing, Pending: s.pending, Anchor: s.anchor, Replace: s.replace}
}

func (s committingState) snapshot() CompositionState {
	return CompositionState{Phase: CompositionCommitting, Pending: s.text, Anchor: s.anchor, Replace: s.replace}
}

func (idleState) start(anchor int, replace buffer.Range) composingState {
	return composingState{anchor: anchor, replace: replace}
}

func (s composingState) update(text string) composingState {
	s.pending = text
	return s
}

func (s composingState) end(text string) committingState {
	return committingState{anchor: s.anchor, replace: s.replace, text: text}
}

func (composingState) cancel() idleState { return idleState{} }

func (committingState) done() idleState { return idleState{} }

// CompositionController runs the IME state machine. Pending text lives only
// in the controller and the InputCapture until commit.
type CompositionController struct {
	state   compositionState
	buf     *buffer.Buffer
	capture InputCapture
	logger  *slog.Logger
}

func NewCompositionController(buf *buffer.Buffer, capture InputCapture, logger *slog.Logger) *CompositionController {
	if capture == nil {
		capture = &headlessCapture{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CompositionController{state: idleState{}, buf: buf, capture: capture, logger: logger}
}

func (c *CompositionController) State() CompositionState { return c.state.snapshot() }

func (c *CompositionController) Active() bool { return c.State().Active() }

// Start opens a session anchored at the cursor. An active selection is
// recorded and replaced on commit. The buffer is not touched.
func (c *CompositionController) Start() bool {
	s, ok := c.state.(idleState)
	if !ok {
		c.reject("compositionstart")
		return false
	}
	anchor := c.buf.Cursor()
	var replace buffer.Range
	if r, ok := c.buf.Selection(); ok {
		anchor, replace = r.Start, r
	}
	c.state = s.start(anchor, replace)
	c.logger.Debug("composition: start", "anchor", anchor)
	return true
}

// Update replaces the pending text and forwards it to the InputCapture only.
func (c *CompositionController) Update(text string) bool {
	s, ok := c.state.(composingState)
	if !ok {
		c.reject("compositionupdate")
		return false
	}
	c.state = s.update(text)
	c.capture.SetComposition(text)
	return true
}

// End commits text (or the last pending text when text is empty) at the
// anchor and moves the cursor past it. It returns the committed text.
func (c *CompositionController) End(text string) (string, bool) {
	s, ok := c.state.(composingState)
	if !ok {
		c.reject("compositionend")
		return "", false
	}
	if text == "" {
		text = s.pending
	}
	commit := s.end(text)
	c.state = commit
	c.capture.SetComposition("")

	switch {
	case !commit.replace.IsEmpty():
		c.buf.Apply(buffer.TextEdit{Range: commit.replace, Text: commit.text})
	case commit.text != "":
		n := c.buf.Len()
		at := c.buf.Insert(commit.anchor, commit.text)
		c.buf.MoveTo(at+c.buf.Len()-n, false)
	}

	c.state = commit.done()
	c.logger.Debug("composition: commit", "anchor", commit.anchor, "runes", utf8.RuneCountInString(commit.text))
	return commit.text, true
}

// Cancel drops the session without touching the buffer.
func (c *CompositionController) Cancel() bool {
	s, ok := c.state.(composingState)
	if !ok {
		return false
	}
	c.state = s.cancel()
	c.capture.SetComposition("")
	c.logger.Debug("composition: cancel", "anchor", s.anchor)
	return true
}

func (c *CompositionController) reject(event string) {
	c.logger.Warn("composition: ignoring out-of-order event",
		"event", event, "phase", c.state.snapshot().Phase.String())
}
