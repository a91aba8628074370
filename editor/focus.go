package editor

import "log/slog"

// FocusHolder is who currently owns keyboard focus.
type FocusHolder uint8

const (
	FocusInputCapture FocusHolder = iota
	FocusOther
)

func (h FocusHolder) String() string {
	if h == FocusInputCapture {
		return "inputcapture"
	}
	return "other"
}

type FocusState struct {
	Holder FocusHolder
}

// FocusCoordinator keeps keyboard focus on the InputCapture. Transient
// holders (chrome, context menus, window blur) are recorded, and focus is
// restored before the next surface click or keystroke is processed.
type FocusCoordinator struct {
	capture   InputCapture
	state     FocusState
	refocused int
	logger    *slog.Logger
}

func NewFocusCoordinator(capture InputCapture, logger *slog.Logger) *FocusCoordinator {
	if capture == nil {
		capture = &headlessCapture{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fc := &FocusCoordinator{capture: capture, logger: logger}
	fc.capture.Focus()
	return fc
}

func (fc *FocusCoordinator) State() FocusState { return fc.state }

// Refocused counts how many times focus was explicitly restored.
func (fc *FocusCoordinator) Refocused() int { return fc.refocused }

// PointerDown routes a pointer press. A press on the surface synchronously
// re-focuses the InputCapture and returns true so the caller may move the
// cursor. Any other target records a transient holder and returns false.
func (fc *FocusCoordinator) PointerDown(target Target) bool {
	if target != TargetSurface {
		fc.state.Holder = FocusOther
		fc.logger.Debug("focus: pointer outside surface", "target", target.String())
		return false
	}
	fc.restore()
	return true
}

// ContextMenuOpened records the context menu as the focus holder.
func (fc *FocusCoordinator) ContextMenuOpened() {
	fc.state.Holder = FocusOther
}

// ContextMenuDismissed returns focus to the InputCapture.
func (fc *FocusCoordinator) ContextMenuDismissed() {
	fc.restore()
}

// FocusOut records that the InputCapture lost focus (window blur, tab).
func (fc *FocusCoordinator) FocusOut() {
	fc.state.Holder = FocusOther
}

// BeforeKey runs before every keystroke or composition event. It restores
// focus when it is held elsewhere or was silently stolen from the capture.
func (fc *FocusCoordinator) BeforeKey() {
	if fc.state.Holder == FocusInputCapture && fc.capture.Focused() {
		return
	}
	fc.restore()
}

func (fc *FocusCoordinator) restore() {
	if fc.state.Holder != FocusInputCapture || !fc.capture.Focused() {
		fc.logger.Debug("focus: restored to input capture", "from", fc.state.Holder.String())
	}
	fc.capture.Focus()
	fc.state.Holder = FocusInputCapture
	fc.refocused++
}
