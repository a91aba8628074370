package editor

func (e *Editor) pointerDown(ev Event) {
	if !e.focus.PointerDown(ev.Target) {
		return
	}
	if e.comp.Active() {
		// Clicking away commits what the IME has so far.
		e.commitComposition("")
	}
	if ev.Button == ButtonSecondary {
		e.focus.ContextMenuOpened()
		return
	}

	e.buf.MoveTo(e.offsetAt(ev), ev.Shift)
	e.dragging = true
	e.hasGoalX = false
}

func (e *Editor) pointerMove(ev Event) {
	if !e.dragging || e.comp.Active() {
		return
	}
	e.buf.MoveTo(e.offsetAt(ev), true)
}

func (e *Editor) offsetAt(ev Event) int {
	if ev.DevicePixelRatio > 0 {
		return e.mapper.DevicePixelToOffset(ev.X, ev.Y, ev.DevicePixelRatio)
	}
	return e.mapper.PixelToOffset(ev.X, ev.Y)
}

func (e *Editor) scroll(ev Event) {
	if e.cfg.ScrollPolicy == ScrollFollowCursorOnly {
		return
	}
	dx, dy := ev.DeltaX, ev.DeltaY
	if e.cfg.WheelLines > 0 {
		st := e.vp.State()
		dx *= float64(e.cfg.WheelLines) * st.NarrowWidth
		dy *= float64(e.cfg.WheelLines) * st.LineHeight
	}
	e.vp.ScrollBy(dx, dy)
}
