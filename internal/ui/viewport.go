package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/minichrome/internal/theme"
)

// PageViewport is the scrollable content area.
type PageViewport struct {
	theme      theme.Theme
	viewport   viewport.Model
	ready      bool
	contentSet bool
	welcome    []Shortcut
}

// Shortcut is one line of the welcome screen.
type Shortcut struct {
	Key  string
	Desc string
}

// NewPageViewport creates a viewport; dimensions arrive with the first
// WindowSizeMsg. welcome is listed on the start screen.
func NewPageViewport(th theme.Theme, welcome []Shortcut) PageViewport {
	return PageViewport{theme: th, welcome: welcome}
}

// SetTheme swaps the palette.
func (pv *PageViewport) SetTheme(th theme.Theme) {
	pv.theme = th
}

// SetSize updates the viewport dimensions.
func (pv *PageViewport) SetSize(width, height int) {
	if !pv.ready {
		pv.viewport = viewport.New(width, height)
		pv.viewport.MouseWheelEnabled = true
		pv.viewport.MouseWheelDelta = 3
		pv.ready = true
		return
	}
	pv.viewport.Width = width
	pv.viewport.Height = height
}

// SetContent replaces the content and scrolls to the top.
func (pv *PageViewport) SetContent(content string) {
	if !pv.ready {
		return
	}
	pv.viewport.SetContent(content)
	pv.contentSet = true
	pv.viewport.GotoTop()
}

// Clear goes back to the welcome screen.
func (pv *PageViewport) Clear() {
	pv.contentSet = false
	if pv.ready {
		pv.viewport.SetContent("")
	}
}

// HasContent reports whether a page has been shown.
func (pv *PageViewport) HasContent() bool {
	return pv.contentSet
}

// Update forwards messages to the viewport.
func (pv *PageViewport) Update(msg tea.Msg) (*PageViewport, tea.Cmd) {
	if !pv.ready {
		return pv, nil
	}
	var cmd tea.Cmd
	pv.viewport, cmd = pv.viewport.Update(msg)
	return pv, cmd
}

// View renders the viewport.
func (pv *PageViewport) View() string {
	if !pv.ready {
		return "\n  Initializing..."
	}
	if !pv.contentSet {
		return pv.renderWelcome()
	}
	return pv.viewport.View()
}

// ScrollInfo returns "TOP", "BOT" or a percentage.
func (pv *PageViewport) ScrollInfo() string {
	if !pv.ready || !pv.contentSet {
		return ""
	}
	pct := pv.viewport.ScrollPercent()
	switch {
	case pct <= 0:
		return "TOP"
	case pct >= 1:
		return "BOT"
	default:
		return fmt.Sprintf("%d%%", int(pct*100))
	}
}

func (pv *PageViewport) HalfPageDown() {
	if pv.ready {
		pv.viewport.HalfViewDown()
	}
}

func (pv *PageViewport) HalfPageUp() {
	if pv.ready {
		pv.viewport.HalfViewUp()
	}
}

func (pv *PageViewport) LineDown(n int) {
	if pv.ready {
		pv.viewport.LineDown(n)
	}
}

func (pv *PageViewport) LineUp(n int) {
	if pv.ready {
		pv.viewport.LineUp(n)
	}
}

func (pv *PageViewport) GotoTop() {
	if pv.ready {
		pv.viewport.GotoTop()
	}
}

func (pv *PageViewport) GotoBottom() {
	if pv.ready {
		pv.viewport.GotoBottom()
	}
}

// Width returns the viewport width, 0 before the first resize.
func (pv *PageViewport) Width() int {
	if !pv.ready {
		return 0
	}
	return pv.viewport.Width
}

// Height returns the viewport height, 0 before the first resize.
func (pv *PageViewport) Height() int {
	if !pv.ready {
		return 0
	}
	return pv.viewport.Height
}

func (pv *PageViewport) renderWelcome() string {
	t := pv.theme

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	sub := lipgloss.NewStyle().Foreground(t.TextDim)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent)
	desc := lipgloss.NewStyle().Foreground(t.Text)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(title.Render("  minichrome"))
	sb.WriteString("\n")
	sb.WriteString(sub.Render("  a small browser for the terminal"))
	sb.WriteString("\n\n")

	for _, s := range pv.welcome {
		sb.WriteString(keyStyle.Render(fmt.Sprintf("  %-12s", s.Key)))
		sb.WriteString(desc.Render(s.Desc))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(sub.Render("  Press o and type a location to start."))
	sb.WriteString("\n")
	return sb.String()
}
