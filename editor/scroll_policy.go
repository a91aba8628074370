package editor

// ScrollPolicy controls how viewport scrolling is allowed to move relative to
// the cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual allows manual viewport scrolling (for example via mouse
	// wheel) even when the cursor does not move.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly keeps viewport movement cursor-driven.
	// Scroll events are ignored.
	ScrollFollowCursorOnly
)
