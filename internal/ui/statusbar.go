package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/minichrome/internal/theme"
)

// Mode names shown on the left of the status bar.
const (
	ModeNormal   = "NORMAL"
	ModeOpen     = "OPEN"
	ModeCommand  = "COMMAND"
	ModeFollow   = "FOLLOW"
	ModeLabel    = "FAVORITE"
	ModeFrequent = "FREQUENT"
	ModeHistory  = "HISTORY"
	ModeHelp     = "HELP"
)

// StatusBar shows the mode, page title or messages, and position info.
type StatusBar struct {
	theme      theme.Theme
	width      int
	mode       string
	title      string
	loading    string
	message    string
	isError    bool
	scrollInfo string
	linkCount  int
	position   int // 1-based history position, 0 when empty
	historyLen int
	visits     int
}

// NewStatusBar creates a status bar in normal mode.
func NewStatusBar(th theme.Theme) StatusBar {
	return StatusBar{theme: th, mode: ModeNormal}
}

func (s *StatusBar) SetTheme(th theme.Theme)   { s.theme = th }
func (s *StatusBar) SetWidth(w int)            { s.width = w }
func (s *StatusBar) SetMode(mode string)       { s.mode = mode }
func (s *StatusBar) SetTitle(title string)     { s.title = title }
func (s *StatusBar) SetScrollInfo(info string) { s.scrollInfo = info }
func (s *StatusBar) SetLinkCount(n int)        { s.linkCount = n }

// Mode returns the current mode name.
func (s *StatusBar) Mode() string { return s.mode }

// SetLoading shows a loading indicator for target; an empty target hides it.
func (s *StatusBar) SetLoading(target string) {
	s.loading = target
}

// SetPosition records where the cursor sits in the session history and how
// many times the current location was visited.
func (s *StatusBar) SetPosition(cursor, length, visits int) {
	s.position = cursor + 1
	s.historyLen = length
	s.visits = visits
}

// SetMessage shows an informational message until the next one.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
	s.isError = false
}

// SetError shows msg styled as an error.
func (s *StatusBar) SetError(msg string) {
	s.message = msg
	s.isError = true
}

// ClearMessage removes any message.
func (s *StatusBar) ClearMessage() {
	s.message = ""
	s.isError = false
}

// Message returns the current message text.
func (s *StatusBar) Message() string {
	return s.message
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := s.theme

	modeBg := t.Primary
	switch s.mode {
	case ModeOpen:
		modeBg = t.Success
	case ModeCommand, ModeLabel:
		modeBg = t.Accent
	case ModeFollow:
		modeBg = t.Link
	case ModeFrequent, ModeHistory, ModeHelp:
		modeBg = t.Button
	}
	mode := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(t.Surface).
		Background(modeBg).
		Render(s.mode)

	cell := lipgloss.NewStyle().Background(t.Surface).Padding(0, 1)

	var left string
	switch {
	case s.loading != "":
		left = cell.Foreground(t.Warning).Bold(true).Render("Loading " + s.loading + "...")
	case s.message != "" && s.isError:
		left = cell.Foreground(t.Error).Render(s.message)
	case s.message != "":
		left = cell.Foreground(t.Text).Render(s.message)
	case s.title != "":
		left = cell.Foreground(t.Text).Render(s.title)
	}

	var parts []string
	if s.historyLen > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", s.position, s.historyLen))
	}
	if s.visits > 0 {
		parts = append(parts, fmt.Sprintf("visits %d", s.visits))
	}
	if s.linkCount > 0 {
		parts = append(parts, fmt.Sprintf("%d links", s.linkCount))
	}
	if s.scrollInfo != "" {
		parts = append(parts, s.scrollInfo)
	}
	right := cell.Foreground(t.TextDim).Render(strings.Join(parts, "  "))

	// Long messages lose their tail before the right-hand info does.
	room := s.width - lipgloss.Width(mode) - lipgloss.Width(right)
	if lipgloss.Width(left) > room {
		left = clip(left, max(room, 0))
	}
	spacer := lipgloss.NewStyle().
		Background(t.Surface).
		Render(strings.Repeat(" ", max(room-lipgloss.Width(left), 0)))

	return mode + left + spacer + right
}
