package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/minichrome/internal/theme"
)

const placeholder = "Enter a location..."

// URLBar is the location field at the top of the browser. While idle it
// shows the current location; once focused it is an editable input.
type URLBar struct {
	theme    theme.Theme
	input    textinput.Model
	active   bool
	width    int
	location string
	failed   bool
}

// NewURLBar creates a location field styled with th.
func NewURLBar(th theme.Theme) URLBar {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 2048
	ti.Width = 60

	return URLBar{theme: th, input: ti}
}

// SetTheme swaps the palette.
func (u *URLBar) SetTheme(th theme.Theme) {
	u.theme = th
}

// SetWidth updates the bar width.
func (u *URLBar) SetWidth(w int) {
	u.width = w
	u.input.Width = max(w-8, 1)
}

// Focus starts editing with an empty input; the current location is
// shown as the placeholder.
func (u *URLBar) Focus() tea.Cmd {
	u.active = true
	u.failed = false
	u.input.Reset()
	u.input.Placeholder = placeholder
	if u.location != "" {
		u.input.Placeholder = u.location
	}
	return u.input.Focus()
}

// Blur stops editing and drops whatever was typed.
func (u *URLBar) Blur() {
	u.active = false
	u.input.Blur()
	u.input.Reset()
}

// IsActive reports whether the bar is being edited.
func (u *URLBar) IsActive() bool {
	return u.active
}

// Value returns the text being edited.
func (u *URLBar) Value() string {
	return u.input.Value()
}

// SetValue replaces the text being edited.
func (u *URLBar) SetValue(s string) {
	u.input.SetValue(s)
	u.input.CursorEnd()
}

// SetLocation sets the location shown while idle.
func (u *URLBar) SetLocation(loc string) {
	u.location = loc
	u.failed = false
}

// Location returns the location shown while idle.
func (u *URLBar) Location() string {
	return u.location
}

// SetFailed marks the last entry as unloadable; the border turns red
// until the next edit or successful load.
func (u *URLBar) SetFailed(failed bool) {
	u.failed = failed
}

// Update handles messages while editing.
func (u *URLBar) Update(msg tea.Msg) (*URLBar, tea.Cmd) {
	if !u.active {
		return u, nil
	}
	var cmd tea.Cmd
	u.input, cmd = u.input.Update(msg)
	return u, cmd
}

// View renders the bar.
func (u *URLBar) View() string {
	t := u.theme

	border := t.Border
	fg := t.TextDim
	switch {
	case u.failed:
		border = t.Error
	case u.active:
		border = t.BorderFocus
		fg = t.Text
	}

	barStyle := lipgloss.NewStyle().
		Foreground(fg).
		Background(t.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(u.width-2, 1))

	promptStyle := lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	var body string
	if u.active {
		body = u.input.View()
	} else if u.location != "" {
		body = u.location
	} else {
		body = lipgloss.NewStyle().Foreground(t.TextDim).Render(placeholder)
	}

	return barStyle.Render(promptStyle.Render("Go") + " " + body)
}
