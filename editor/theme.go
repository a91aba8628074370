package editor

import "github.com/charmbracelet/lipgloss"

// Theme holds the colors carried by draw instructions. Colors use lipgloss
// notation (ANSI index or "#rrggbb") so that pixel and terminal surfaces can
// share one palette.
type Theme struct {
	Background   lipgloss.Color
	Text         lipgloss.Color
	SelectedText lipgloss.Color
	Selection    lipgloss.Color
	Caret        lipgloss.Color
}

func DefaultTheme() Theme {
	return Theme{
		Background:   lipgloss.Color("#1e1e1e"),
		Text:         lipgloss.Color("#d4d4d4"),
		SelectedText: lipgloss.Color("#ffffff"),
		Selection:    lipgloss.Color("#264f78"),
		Caret:        lipgloss.Color("#aeafad"),
	}
}

func (t Theme) normalized() Theme {
	d := DefaultTheme()
	if t.Background == "" {
		t.Background = d.Background
	}
	if t.Text == "" {
		t.Text = d.Text
	}
	if t.SelectedText == "" {
		t.SelectedText = t.Text
	}
	if t.Selection == "" {
		t.Selection = d.Selection
	}
	if t.Caret == "" {
		t.Caret = t.Text
	}
	return t
}
