package term

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the host-level bindings handled before the editor sees a key.
type KeyMap struct {
	Save    key.Binding
	Quit    key.Binding
	Compose key.Binding
	// CommitCompose and CancelCompose apply while compose mode is on.
	CommitCompose key.Binding
	CancelCompose key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save:          key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:          key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
		Compose:       key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "compose")),
		CommitCompose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		CancelCompose: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
