package term

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/scribe/document"
	"github.com/iw2rmb/scribe/editor"
)

const defaultWheelLines = 3

// Config configures a terminal Model.
type Config struct {
	// Editor configures the hosted core. Glyph widths and line height are
	// replaced with cell units; the classifier and measurer are kept.
	Editor editor.Config

	Store document.Store
	Path  string

	KeyMap *KeyMap
	// Renderer renders styled cells. Nil uses the default renderer.
	Renderer *lipgloss.Renderer
	Logger   *slog.Logger
}

// Model is a Bubble Tea component hosting an editor.Editor.
type Model struct {
	cfg      Config
	keys     KeyMap
	renderer *lipgloss.Renderer
	logger   *slog.Logger

	ed      *editor.Editor
	surface *cellSurface
	capture *overlayCapture

	width, height int

	composing bool
	pending   []rune

	savedTextVersion uint64
	status           string
}

func New(cfg Config) *Model {
	m := &Model{
		cfg:      cfg,
		keys:     DefaultKeyMap(),
		renderer: cfg.Renderer,
		logger:   cfg.Logger,
		surface:  &cellSurface{},
		capture:  &overlayCapture{},
	}
	if cfg.KeyMap != nil {
		m.keys = *cfg.KeyMap
	}
	if m.renderer == nil {
		m.renderer = lipgloss.DefaultRenderer()
	}
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}

	ec := cfg.Editor
	ec.Metrics.Narrow, ec.Metrics.Wide = 1, 2
	ec.LineHeight = 1
	ec.Padding = editor.Padding{}
	ec.DevicePixelRatio = 1
	if ec.WheelLines == 0 {
		ec.WheelLines = defaultWheelLines
	}
	if ec.Logger == nil {
		ec.Logger = m.logger
	}
	m.ed = editor.New(ec, m.capture, m.surface)
	m.savedTextVersion = m.ed.Buffer().TextVersion()
	return m
}

func (m *Model) Editor() *editor.Editor { return m.ed }

// Load reads cfg.Path from cfg.Store. A missing file starts an empty
// document that will be created on save.
func (m *Model) Load(ctx context.Context) error {
	if m.cfg.Store == nil || m.cfg.Path == "" {
		return nil
	}
	err := m.ed.Load(ctx, m.cfg.Store, m.cfg.Path)
	switch {
	case err == nil:
		m.status = fmt.Sprintf("opened %s", m.cfg.Path)
	case errors.Is(err, fs.ErrNotExist):
		m.status = fmt.Sprintf("new file %s", m.cfg.Path)
		err = nil
	default:
		return fmt.Errorf("open %s: %w", m.cfg.Path, err)
	}
	m.savedTextVersion = m.ed.Buffer().TextVersion()
	return err
}

// Dirty reports unsaved changes.
func (m *Model) Dirty() bool {
	return m.ed.Buffer().TextVersion() != m.savedTextVersion
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = max(0, msg.Width), max(0, msg.Height)
		m.ed.Dispatch(editor.Event{
			Type:   editor.EventResize,
			Width:  float64(m.width),
			Height: float64(m.editorRows()),
		})
	case tea.KeyMsg:
		return m, m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
	case tea.BlurMsg:
		m.capture.blur()
		m.ed.Dispatch(editor.Event{Type: editor.EventFocusOut})
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Save):
		m.save()
	case m.composing:
		m.updateCompose(msg)
	case key.Matches(msg, m.keys.Compose):
		m.composing, m.pending = true, nil
		m.ed.Dispatch(editor.Event{Type: editor.EventCompositionStart})
		m.composing = m.ed.Composition().Active()
	default:
		m.ed.Dispatch(keyEvent(msg))
	}
	return nil
}

func (m *Model) updateCompose(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.CommitCompose):
		m.ed.Dispatch(editor.Event{Type: editor.EventCompositionEnd, Text: string(m.pending)})
		m.composing, m.pending = false, nil
		return
	case key.Matches(msg, m.keys.CancelCompose):
		m.ed.Dispatch(editor.Event{Type: editor.EventCompositionUpdate})
		m.ed.Dispatch(editor.Event{Type: editor.EventCompositionEnd})
		m.composing, m.pending = false, nil
		return
	case msg.Type == tea.KeyBackspace:
		if len(m.pending) == 0 {
			return
		}
		m.pending = m.pending[:len(m.pending)-1]
	case msg.Type == tea.KeyRunes:
		m.pending = append(m.pending, msg.Runes...)
	case msg.Type == tea.KeySpace:
		m.pending = append(m.pending, ' ')
	default:
		return
	}
	m.ed.Dispatch(editor.Event{Type: editor.EventCompositionUpdate, Text: string(m.pending)})
}

func keyEvent(msg tea.KeyMsg) editor.Event {
	ev := editor.Event{Type: editor.EventKeyDown, Key: msg.String()}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Paste {
			ev.Key = ""
		}
		if !msg.Alt {
			ev.Text = string(msg.Runes)
		}
	case tea.KeySpace:
		ev.Text = " "
	}
	return ev
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	// Cell left edges hit the glyph in that cell; the vertical center avoids
	// line boundaries.
	x, y := float64(msg.X), float64(msg.Y)+0.5
	target := editor.TargetSurface
	if msg.Y >= m.editorRows() {
		target = editor.TargetChrome
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonLeft:
			m.ed.Dispatch(editor.Event{Type: editor.EventPointerDown, X: x, Y: y, Shift: msg.Shift, Target: target})
		case tea.MouseButtonWheelUp:
			m.ed.Dispatch(editor.Event{Type: editor.EventScroll, DeltaY: -1})
		case tea.MouseButtonWheelDown:
			m.ed.Dispatch(editor.Event{Type: editor.EventScroll, DeltaY: 1})
		case tea.MouseButtonWheelLeft:
			m.ed.Dispatch(editor.Event{Type: editor.EventScroll, DeltaX: -1})
		case tea.MouseButtonWheelRight:
			m.ed.Dispatch(editor.Event{Type: editor.EventScroll, DeltaX: 1})
		}
	case tea.MouseActionMotion:
		m.ed.Dispatch(editor.Event{Type: editor.EventPointerMove, X: x, Y: y})
	case tea.MouseActionRelease:
		m.ed.Dispatch(editor.Event{Type: editor.EventPointerUp, X: x, Y: y})
	}
}

func (m *Model) save() {
	if m.cfg.Store == nil || m.cfg.Path == "" {
		m.status = "no file to save to"
		return
	}
	if err := m.ed.Save(context.Background(), m.cfg.Store, m.cfg.Path); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.savedTextVersion = m.ed.Buffer().TextVersion()
	m.status = fmt.Sprintf("saved %s", m.cfg.Path)
}

func (m *Model) editorRows() int {
	return max(0, m.height-1)
}

func (m *Model) View() string {
	rows := m.editorRows()
	body := m.surface.render(m.renderer, m.width, rows)
	body = m.capture.render(body, m.renderer.NewStyle().Underline(true), m.width, rows)
	if m.height == 0 {
		return body
	}
	if rows == 0 {
		return m.statusLine()
	}
	return body + "\n" + m.statusLine()
}

func (m *Model) statusLine() string {
	var parts []string
	name := m.cfg.Path
	if name == "" {
		name = "[scratch]"
	}
	if m.Dirty() {
		name += " [+]"
	}
	parts = append(parts, name)

	p := m.ed.Buffer().PosFromOffset(m.ed.Buffer().Cursor())
	parts = append(parts, fmt.Sprintf("%d:%d", p.Row+1, p.Col+1))
	if m.composing {
		parts = append(parts, "COMPOSE")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return m.renderer.NewStyle().Reverse(true).Width(m.width).MaxWidth(m.width).Render(strings.Join(parts, "  "))
}
