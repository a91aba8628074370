package editor

import "github.com/iw2rmb/scribe/buffer"

// EventType names a native input or lifecycle event delivered by the host.
type EventType uint8

const (
	EventUnknown EventType = iota
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventKeyDown
	EventCompositionStart
	EventCompositionUpdate
	EventCompositionEnd
	EventResize
	EventScroll
	EventFocusOut
	EventContextMenu
	EventContextMenuDismissed
)

var eventTypeNames = [...]string{
	EventUnknown:              "unknown",
	EventPointerDown:          "pointerdown",
	EventPointerMove:          "pointermove",
	EventPointerUp:            "pointerup",
	EventKeyDown:              "keydown",
	EventCompositionStart:     "compositionstart",
	EventCompositionUpdate:    "compositionupdate",
	EventCompositionEnd:       "compositionend",
	EventResize:               "resize",
	EventScroll:               "scroll",
	EventFocusOut:             "focusout",
	EventContextMenu:          "contextmenu",
	EventContextMenuDismissed: "contextmenudismissed",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return eventTypeNames[EventUnknown]
}

// ParseEventType maps a host event name (for example "compositionend") to its
// EventType.
func ParseEventType(name string) (EventType, bool) {
	for i, n := range eventTypeNames {
		if i != int(EventUnknown) && n == name {
			return EventType(i), true
		}
	}
	return EventUnknown, false
}

// Target identifies what a pointer event landed on.
type Target uint8

const (
	// TargetSurface is the rendering canvas.
	TargetSurface Target = iota
	// TargetChrome is any UI outside the editor (toolbars, sidebars).
	TargetChrome
	// TargetContextMenu is an open context menu.
	TargetContextMenu
)

func (t Target) String() string {
	switch t {
	case TargetSurface:
		return "surface"
	case TargetChrome:
		return "chrome"
	case TargetContextMenu:
		return "contextmenu"
	default:
		return "unknown"
	}
}

type PointerButton uint8

const (
	ButtonPrimary PointerButton = iota
	ButtonSecondary
)

// Event is the host-neutral event record consumed by Editor.Dispatch.
//
// Pointer coordinates are logical pixels relative to the canvas. When a
// pointer event carries a positive DevicePixelRatio, X and Y are device pixels
// and are divided by it before hit testing.
type Event struct {
	Type EventType

	X, Y   float64
	Button PointerButton
	Shift  bool
	Target Target

	// Key is the normalized key name ("left", "shift+up", "ctrl+a").
	Key string
	// Text is inserted text for keydown, or composition text.
	Text string

	Width, Height    float64
	DevicePixelRatio float64

	DeltaX, DeltaY float64
}

// ChangeEvent is delivered through Config.OnChange after a dispatched event
// changed the buffer's text, cursor, or selection.
type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Cursor      int
	Selection   buffer.SelectionState

	// Change is the last buffer change when the text changed.
	Change    buffer.Change
	HasChange bool
}

func buildChangeEvent(b *buffer.Buffer, textChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Cursor:      b.Cursor(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection = buffer.SelectionState{Active: true, Range: r}
	}
	if textChanged {
		ev.Change, ev.HasChange = b.LastChange()
	}
	return ev
}
