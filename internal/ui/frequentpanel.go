package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/minichrome/internal/theme"
)

// FrequentItem is one entry of the Frequently Visited popup.
type FrequentItem struct {
	URL    string
	Name   string
	Visits int
}

// FrequentPanel is the Frequently Visited popup: a short ranked list of
// sites that can be picked with j/k and Enter or by number.
type FrequentPanel struct {
	theme   theme.Theme
	items   []FrequentItem
	cursor  int
	visible bool
	width   int
}

// NewFrequentPanel creates a hidden popup.
func NewFrequentPanel(th theme.Theme) FrequentPanel {
	return FrequentPanel{theme: th}
}

// SetTheme swaps the palette.
func (fp *FrequentPanel) SetTheme(th theme.Theme) {
	fp.theme = th
}

// SetWidth sets the screen width the popup is centered in.
func (fp *FrequentPanel) SetWidth(w int) {
	fp.width = w
}

// Show opens the popup with items, cursor on the first one.
func (fp *FrequentPanel) Show(items []FrequentItem) {
	fp.items = items
	fp.cursor = 0
	fp.visible = true
}

// Hide closes the popup.
func (fp *FrequentPanel) Hide() {
	fp.visible = false
}

// IsVisible reports whether the popup is open.
func (fp *FrequentPanel) IsVisible() bool {
	return fp.visible
}

// Len returns the number of items.
func (fp *FrequentPanel) Len() int {
	return len(fp.items)
}

// CursorUp moves the selection up.
func (fp *FrequentPanel) CursorUp() {
	if fp.cursor > 0 {
		fp.cursor--
	}
}

// CursorDown moves the selection down.
func (fp *FrequentPanel) CursorDown() {
	if fp.cursor < len(fp.items)-1 {
		fp.cursor++
	}
}

// Selected returns the highlighted item.
func (fp *FrequentPanel) Selected() (FrequentItem, bool) {
	if fp.cursor < 0 || fp.cursor >= len(fp.items) {
		return FrequentItem{}, false
	}
	return fp.items[fp.cursor], true
}

// Pick returns the item numbered n, counting from 1.
func (fp *FrequentPanel) Pick(n int) (FrequentItem, bool) {
	if n < 1 || n > len(fp.items) {
		return FrequentItem{}, false
	}
	return fp.items[n-1], true
}

// View renders the popup.
func (fp *FrequentPanel) View() string {
	if !fp.visible {
		return ""
	}
	t := fp.theme

	inner := min(max(fp.width/2, 30), 60)

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("Frequently Visited")
	selected := lipgloss.NewStyle().Foreground(t.TextBright).Background(t.Primary).Bold(true).Width(inner)
	normal := lipgloss.NewStyle().Foreground(t.Text).Width(inner)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n\n")

	if len(fp.items) == 0 {
		sb.WriteString(dim.Render("Nothing visited yet."))
	}
	for i, it := range fp.items {
		line := clip(fmt.Sprintf("%d  %s  (%d)", i+1, it.Name, it.Visits), inner)
		if i == fp.cursor {
			sb.WriteString(selected.Render(line))
		} else {
			sb.WriteString(normal.Render(line))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(dim.Render("j/k move  1-9/Enter open  Esc close"))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(0, 1).
		Render(sb.String())
}
