package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/vidyasagar/minichrome/internal/ui"
)

// KeyMap defines the normal-mode keybindings. Each toolbar button has a
// binding.
type KeyMap struct {
	// Scrolling
	ScrollDown   key.Binding
	ScrollUp     key.Binding
	HalfPageDown key.Binding
	HalfPageUp   key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding

	// Toolbar
	OpenURL     key.Binding
	Back        key.Binding
	Forward     key.Binding
	Home        key.Binding
	SetHome     key.Binding
	Frequent    key.Binding
	SetFavorite key.Binding
	Favorite    key.Binding

	// Page
	Reload     key.Binding
	FollowLink key.Binding

	// Other
	CommandMode   key.Binding
	HistoryToggle key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default vim-style keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "top of page"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom of page"),
		),
		OpenURL: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "edit location"),
		),
		Back: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "next"),
		),
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "home"),
		),
		SetHome: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "set home to this page"),
		),
		Frequent: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "frequently visited"),
		),
		SetFavorite: key.NewBinding(
			key.WithKeys("*"),
			key.WithHelp("*", "set favorite to this page"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("'"),
			key.WithHelp("'", "go to favorite"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		FollowLink: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow link by number"),
		),
		CommandMode: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command"),
		),
		HistoryToggle: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "session history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type helpSection struct {
	name     string
	bindings []key.Binding
}

func (k KeyMap) sections() []helpSection {
	return []helpSection{
		{"Toolbar", []key.Binding{k.OpenURL, k.Back, k.Forward, k.Home, k.SetHome, k.Frequent, k.SetFavorite, k.Favorite}},
		{"Page", []key.Binding{k.FollowLink, k.Reload, k.ScrollDown, k.ScrollUp, k.HalfPageDown, k.HalfPageUp, k.GotoTop, k.GotoBottom}},
		{"Other", []key.Binding{k.CommandMode, k.HistoryToggle, k.Help, k.Quit}},
	}
}

// welcome lists the toolbar bindings for the start screen.
func (k KeyMap) welcome() []ui.Shortcut {
	var out []ui.Shortcut
	for _, b := range k.sections()[0].bindings {
		out = append(out, ui.Shortcut{Key: b.Help().Key, Desc: b.Help().Desc})
	}
	return append(out,
		ui.Shortcut{Key: k.FollowLink.Help().Key, Desc: k.FollowLink.Help().Desc},
		ui.Shortcut{Key: k.Help.Help().Key, Desc: "all keys"},
	)
}
