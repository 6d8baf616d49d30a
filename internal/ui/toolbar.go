package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/minichrome/internal/theme"
)

// ToolbarState says which toolbar buttons can be used right now.
type ToolbarState struct {
	CanBack       bool
	CanForward    bool
	HasCurrent    bool
	HasHome       bool
	HasFavorite   bool
	FavoriteLabel string
	HasVisits     bool
}

type button struct {
	label   string
	key     string
	enabled bool
}

// Toolbar is the row of navigation buttons under the location field.
// Buttons are activated by their keys; disabled ones are drawn dimmed.
type Toolbar struct {
	theme theme.Theme
	state ToolbarState
	width int
}

// NewToolbar creates a toolbar with every button disabled.
func NewToolbar(th theme.Theme) Toolbar {
	return Toolbar{theme: th}
}

// SetTheme swaps the palette.
func (tb *Toolbar) SetTheme(th theme.Theme) {
	tb.theme = th
}

// SetWidth sets the available width.
func (tb *Toolbar) SetWidth(w int) {
	tb.width = w
}

// SetState updates which buttons are enabled.
func (tb *Toolbar) SetState(s ToolbarState) {
	tb.state = s
}

// State returns the last state set.
func (tb *Toolbar) State() ToolbarState {
	return tb.state
}

func (tb *Toolbar) buttons() []button {
	s := tb.state
	fav := "☆ no favorite"
	if s.HasFavorite {
		fav = "★ " + s.FavoriteLabel
	}
	return []button{
		{"◀ Back", "H", s.CanBack},
		{"Next ▶", "L", s.CanForward},
		{"⌂ Home", "h", s.HasHome},
		{"Set Home", "S", s.HasCurrent},
		{"Frequently Visited", "F", s.HasVisits},
		{"Set Favorite", "*", s.HasCurrent},
		{fav, "'", s.HasFavorite},
	}
}

// View renders the button row, dropping trailing buttons that do not fit.
func (tb *Toolbar) View() string {
	t := tb.theme

	on := lipgloss.NewStyle().Foreground(t.Button).Bold(true)
	off := lipgloss.NewStyle().Foreground(t.ButtonDisabled)
	keyOn := lipgloss.NewStyle().Foreground(t.Accent)
	keyOff := lipgloss.NewStyle().Foreground(t.ButtonDisabled)

	var rendered []string
	used := 0
	for _, b := range tb.buttons() {
		var cell string
		if b.enabled {
			cell = on.Render(b.label) + keyOn.Render(" "+b.key)
		} else {
			cell = off.Render(b.label) + keyOff.Render(" "+b.key)
		}
		w := lipgloss.Width(cell) + 3
		if tb.width > 0 && used+w > tb.width {
			break
		}
		used += w
		rendered = append(rendered, cell)
	}

	sep := lipgloss.NewStyle().Foreground(t.Border).Render(" │ ")
	return lipgloss.NewStyle().
		Background(t.Surface).
		Width(max(tb.width, 0)).
		Render(strings.Join(rendered, sep))
}
