package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/scribe/buffer"
)

func (e *Editor) keyDown(ev Event) {
	e.focus.BeforeKey()
	if e.comp.Active() {
		// The IME owns keystrokes until compositionend.
		e.logger.Debug("editor: keydown ignored during composition", "key", ev.Key)
		return
	}

	km := e.cfg.KeyMap
	k := keyName(ev.Key)
	vertical := false

	switch {
	case key.Matches(k, km.Left):
		e.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(k, km.Right):
		e.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(k, km.Up):
		e.moveVertical(-1, false)
		vertical = true
	case key.Matches(k, km.Down):
		e.moveVertical(1, false)
		vertical = true

	case key.Matches(k, km.ShiftLeft):
		e.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(k, km.ShiftRight):
		e.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(k, km.ShiftUp):
		e.moveVertical(-1, true)
		vertical = true
	case key.Matches(k, km.ShiftDown):
		e.moveVertical(1, true)
		vertical = true

	case key.Matches(k, km.Home):
		e.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(k, km.End):
		e.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(k, km.ShiftHome):
		e.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome, Extend: true})
	case key.Matches(k, km.ShiftEnd):
		e.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd, Extend: true})
	case key.Matches(k, km.DocStart):
		e.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(k, km.DocEnd):
		e.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(k, km.PageUp):
		e.movePage(-1)
		vertical = true
	case key.Matches(k, km.PageDown):
		e.movePage(1)
		vertical = true

	case key.Matches(k, km.SelectAll):
		e.buf.MoveTo(0, false)
		e.buf.MoveTo(e.buf.Len(), true)

	case key.Matches(k, km.Backspace):
		if !e.cfg.ReadOnly {
			e.buf.DeleteBackward()
		}
	case key.Matches(k, km.Delete):
		if !e.cfg.ReadOnly {
			e.buf.DeleteForward()
		}
	case key.Matches(k, km.Enter):
		if !e.cfg.ReadOnly {
			e.buf.InsertNewline()
		}
	case key.Matches(k, km.Tab):
		if !e.cfg.ReadOnly {
			e.buf.InsertText("\t")
		}

	case key.Matches(k, km.Copy):
		e.copySelection(false)
	case key.Matches(k, km.Cut):
		e.copySelection(!e.cfg.ReadOnly)
	case key.Matches(k, km.Paste):
		e.paste()

	default:
		if ev.Text != "" && !e.cfg.ReadOnly {
			e.buf.InsertText(normalizeNewlines(ev.Text))
		}
	}

	if !vertical {
		e.hasGoalX = false
	}
}

// moveVertical moves the caret dir lines, keeping its pixel x. Moving past
// the first or last line goes to the document start or end.
func (e *Editor) moveVertical(dir int, extend bool) {
	row, x := e.mapper.contentX(e.buf.Cursor())
	if e.hasGoalX {
		x = e.goalX
	}
	target := row + dir
	switch {
	case target < 0:
		e.buf.MoveTo(0, extend)
	case target >= e.buf.LineCount():
		e.buf.MoveTo(e.buf.Len(), extend)
	default:
		e.buf.MoveTo(e.mapper.OffsetAtLineX(target, x), extend)
	}
	e.goalX, e.hasGoalX = x, true
}

// movePage moves the caret one screen minus a line of context. On the first
// or last row it falls back to a single line move.
func (e *Editor) movePage(dir int) {
	n := max(e.vp.State().VisibleLines()-1, 1)
	row := e.buf.PosFromOffset(e.buf.Cursor()).Row
	target := clampInt(row+dir*n, 0, e.buf.LineCount()-1)
	if target == row {
		e.moveVertical(dir, false)
		return
	}
	e.moveVertical(target-row, false)
}

func (e *Editor) copySelection(cut bool) {
	r, ok := e.buf.Selection()
	if !ok || e.cfg.Clipboard == nil {
		return
	}
	if err := e.cfg.Clipboard.WriteText(e.buf.Slice(r)); err != nil {
		e.logger.Warn("editor: clipboard write failed", "error", err)
		return
	}
	if cut {
		e.buf.DeleteSelection()
	}
}

func (e *Editor) paste() {
	if e.cfg.ReadOnly || e.cfg.Clipboard == nil {
		return
	}
	s, err := e.cfg.Clipboard.ReadText()
	if err != nil {
		e.logger.Warn("editor: clipboard read failed", "error", err)
		return
	}
	if s != "" {
		e.buf.InsertText(normalizeNewlines(s))
	}
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
