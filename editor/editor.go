package editor

import (
	"context"
	"log/slog"

	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/document"
	"github.com/iw2rmb/scribe/glyph"
)

// Editor wires the buffer, viewport, mapper, composition, focus, and render
// components behind a single event entry point.
//
// Editor is not safe for concurrent use. The host delivers events from one
// goroutine, in arrival order.
type Editor struct {
	cfg     Config
	logger  *slog.Logger
	capture InputCapture

	buf    *buffer.Buffer
	vp     *Viewport
	mapper *CoordinateMapper
	comp   *CompositionController
	focus  *FocusCoordinator
	render *RenderDispatcher

	lastVersion     uint64
	lastTextVersion uint64

	dragging bool

	// goalX is the content x kept across consecutive vertical moves.
	goalX    float64
	hasGoalX bool
}

// New builds an editor over cfg.Text. A nil capture or surface is replaced
// with a headless stand-in. The first frame is drawn before New returns.
func New(cfg Config, capture InputCapture, surface Surface) *Editor {
	cfg = cfg.normalized()
	if capture == nil {
		capture = &headlessCapture{}
	}

	e := &Editor{cfg: cfg, logger: cfg.Logger, capture: capture}
	e.buf = buffer.New(cfg.Text, buffer.Options{MaxLen: cfg.MaxLen})
	e.vp = newViewport(cfg, e.buf.LineCount())
	e.mapper = NewCoordinateMapper(e.buf, cfg.Metrics, e.vp)
	e.comp = NewCompositionController(e.buf, capture, cfg.Logger)
	e.focus = NewFocusCoordinator(capture, cfg.Logger)
	e.render = NewRenderDispatcher(e.buf, e.vp, e.mapper, e.focus, cfg.Theme, cfg.Atlas, surface, cfg.Logger)

	e.lastVersion = e.buf.Version()
	e.lastTextVersion = e.buf.TextVersion()
	e.capture.Place(e.mapper.OffsetToPixel(e.buf.Cursor()))
	e.render.Redraw()
	return e
}

func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

func (e *Editor) Text() string { return e.buf.String() }

func (e *Editor) Cursor() buffer.CursorState { return e.buf.CursorState() }

func (e *Editor) ViewportState() ViewportState { return e.vp.State() }

func (e *Editor) Viewport() *Viewport { return e.vp }

func (e *Editor) Focus() FocusState { return e.focus.State() }

func (e *Editor) FocusCoordinator() *FocusCoordinator { return e.focus }

func (e *Editor) Composition() CompositionState { return e.comp.State() }

func (e *Editor) Mapper() *CoordinateMapper { return e.mapper }

func (e *Editor) Renderer() *RenderDispatcher { return e.render }

// Frame returns the frame currently on the surface.
func (e *Editor) Frame() Frame { return e.render.Frame() }

// Dispatch processes one host event to completion. Internal faults are
// recovered and logged; the editor keeps its last good state.
func (e *Editor) Dispatch(ev Event) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("editor: recovered from panic while dispatching", "event", ev.Type.String(), "panic", r)
			e.render.Invalidate()
		}
	}()

	switch ev.Type {
	case EventPointerDown:
		e.pointerDown(ev)
	case EventPointerMove:
		e.pointerMove(ev)
	case EventPointerUp:
		e.dragging = false
	case EventKeyDown:
		e.keyDown(ev)
	case EventCompositionStart:
		e.focus.BeforeKey()
		if e.cfg.ReadOnly {
			return
		}
		e.sync()
		if e.comp.Start() {
			e.render.Pin()
		}
	case EventCompositionUpdate:
		e.comp.Update(ev.Text)
	case EventCompositionEnd:
		e.commitComposition(ev.Text)
	case EventResize:
		e.vp.Resize(ev.Width, ev.Height, ev.DevicePixelRatio)
	case EventScroll:
		e.scroll(ev)
	case EventFocusOut:
		e.focus.FocusOut()
	case EventContextMenu:
		e.focus.ContextMenuOpened()
	case EventContextMenuDismissed:
		e.focus.ContextMenuDismissed()
	default:
		e.logger.Debug("editor: ignoring unknown event", "event", ev.Type.String())
		return
	}
	e.sync()
}

// Redraw pushes a frame if anything changed since the last one. Hosts call
// it after mutating the buffer directly.
func (e *Editor) Redraw() {
	e.sync()
}

// SetMetrics swaps the width table, for example after the host measured new
// glyphs into a glyph.MeasuredWidths.
func (e *Editor) SetMetrics(m glyph.Metrics) {
	e.mapper.setMetrics(m)
	m = e.mapper.Metrics()
	e.vp.SetGlyphWidths(m.Narrow, m.Wide)
	e.render.Invalidate()
	e.sync()
}

func (e *Editor) SetTheme(t Theme) {
	e.render.SetTheme(t)
	e.sync()
}

// Load replaces the document with the content at path. On failure the
// buffer is left untouched and the store's error is returned.
func (e *Editor) Load(ctx context.Context, store document.Store, path string) error {
	text, err := store.Open(ctx, path)
	if err != nil {
		e.logger.Warn("editor: load failed, keeping current document", "path", path, "error", err)
		return err
	}
	if e.comp.Cancel() {
		e.render.Unpin()
	}
	e.dragging = false
	e.hasGoalX = false
	e.buf.Reset(text)
	e.vp.SetLineCount(e.buf.LineCount())
	e.vp.ScrollTo(0, 0)
	e.sync()
	e.logger.Info("editor: loaded document", "path", path, "runes", e.buf.Len())
	return nil
}

// Save writes the committed buffer content to path. Pending composition
// text is not part of the document and is not saved.
func (e *Editor) Save(ctx context.Context, store document.Store, path string) error {
	if err := store.Save(ctx, path, e.buf.String()); err != nil {
		e.logger.Warn("editor: save failed", "path", path, "error", err)
		return err
	}
	e.logger.Info("editor: saved document", "path", path, "runes", e.buf.Len())
	return nil
}

func (e *Editor) commitComposition(text string) {
	if _, ok := e.comp.End(text); ok {
		e.render.Unpin()
	}
}

// sync propagates buffer changes to the viewport, the input capture, and the
// change hook, then redraws.
func (e *Editor) sync() {
	ver := e.buf.Version()
	textVer := e.buf.TextVersion()
	textChanged := textVer != e.lastTextVersion
	if textChanged {
		e.vp.SetLineCount(e.buf.LineCount())
	}

	if ver != e.lastVersion {
		e.followCursor()
		e.lastVersion = ver
		e.lastTextVersion = textVer
		if e.cfg.OnChange != nil {
			e.cfg.OnChange(buildChangeEvent(e.buf, textChanged))
		}
	}

	e.capture.Place(e.mapper.OffsetToPixel(e.buf.Cursor()))
	e.render.Redraw()
}

func (e *Editor) followCursor() {
	cursor := e.buf.Cursor()
	row, x := e.mapper.contentX(cursor)
	e.vp.EnsureVisible(row, x, e.mapper.OffsetToPixel(cursor).W)
}
