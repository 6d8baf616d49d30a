package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/minichrome/internal/storage"
	"github.com/vidyasagar/minichrome/internal/theme"
)

// HistoryPanel lists the session journal, newest first, with vim-style
// movement. It replaces the page view while open.
type HistoryPanel struct {
	theme    theme.Theme
	entries  []storage.JournalEntry
	cursor   int
	offset   int
	width    int
	height   int
	visible  bool
	lastGKey bool
}

// NewHistoryPanel creates a hidden panel.
func NewHistoryPanel(th theme.Theme) HistoryPanel {
	return HistoryPanel{theme: th}
}

// SetTheme swaps the palette.
func (hp *HistoryPanel) SetTheme(th theme.Theme) {
	hp.theme = th
}

// SetEntries replaces the listed entries and moves to the top.
func (hp *HistoryPanel) SetEntries(entries []storage.JournalEntry) {
	hp.entries = entries
	hp.cursor = 0
	hp.offset = 0
}

// SetSize updates the panel dimensions.
func (hp *HistoryPanel) SetSize(w, h int) {
	hp.width = w
	hp.height = h
	hp.ensureVisible()
}

// Show opens the panel.
func (hp *HistoryPanel) Show() {
	hp.visible = true
	hp.cursor = 0
	hp.offset = 0
	hp.lastGKey = false
}

// Hide closes the panel.
func (hp *HistoryPanel) Hide() {
	hp.visible = false
	hp.lastGKey = false
}

// IsVisible reports whether the panel is open.
func (hp *HistoryPanel) IsVisible() bool {
	return hp.visible
}

// CursorUp moves up one entry.
func (hp *HistoryPanel) CursorUp() {
	hp.moveTo(hp.cursor - 1)
}

// CursorDown moves down one entry.
func (hp *HistoryPanel) CursorDown() {
	hp.moveTo(hp.cursor + 1)
}

// HalfPageDown moves down half a screen.
func (hp *HistoryPanel) HalfPageDown() {
	hp.moveTo(hp.cursor + hp.visibleCount()/2)
}

// HalfPageUp moves up half a screen.
func (hp *HistoryPanel) HalfPageUp() {
	hp.moveTo(hp.cursor - hp.visibleCount()/2)
}

// GotoTop moves to the newest entry.
func (hp *HistoryPanel) GotoTop() {
	hp.moveTo(0)
}

// GotoBottom moves to the oldest entry.
func (hp *HistoryPanel) GotoBottom() {
	hp.moveTo(len(hp.entries) - 1)
}

// HandleGKey tracks "gg". It returns true when the second g jumped to the top.
func (hp *HistoryPanel) HandleGKey() bool {
	if hp.lastGKey {
		hp.GotoTop()
		return true
	}
	hp.lastGKey = true
	return false
}

func (hp *HistoryPanel) moveTo(i int) {
	hp.lastGKey = false
	hp.cursor = max(min(i, len(hp.entries)-1), 0)
	hp.ensureVisible()
}

// SelectedEntry returns the entry under the cursor.
func (hp *HistoryPanel) SelectedEntry() (storage.JournalEntry, bool) {
	if hp.cursor < 0 || hp.cursor >= len(hp.entries) {
		return storage.JournalEntry{}, false
	}
	return hp.entries[hp.cursor], true
}

// RemoveSelected drops the entry under the cursor from the list.
func (hp *HistoryPanel) RemoveSelected() {
	if hp.cursor < 0 || hp.cursor >= len(hp.entries) {
		return
	}
	hp.entries = append(hp.entries[:hp.cursor], hp.entries[hp.cursor+1:]...)
	hp.moveTo(hp.cursor)
}

// Two header lines, two lines per entry and a hint line.
func (hp *HistoryPanel) visibleCount() int {
	return max((hp.height-3)/2, 1)
}

func (hp *HistoryPanel) ensureVisible() {
	visible := hp.visibleCount()
	if hp.cursor < hp.offset {
		hp.offset = hp.cursor
	}
	if hp.cursor >= hp.offset+visible {
		hp.offset = hp.cursor - visible + 1
	}
	hp.offset = max(hp.offset, 0)
}

// View renders the panel.
func (hp *HistoryPanel) View() string {
	if !hp.visible {
		return ""
	}
	t := hp.theme
	w := max(hp.width, 12)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Background(t.Surface).Width(w).Padding(0, 1)
	rowStyle := lipgloss.NewStyle().Foreground(t.Text).Width(w).Padding(0, 1)
	subStyle := lipgloss.NewStyle().Foreground(t.TextDim).Width(w).Padding(0, 1)
	selStyle := rowStyle.Foreground(t.TextBright).Background(t.Primary).Bold(true)
	selSubStyle := subStyle.Foreground(t.Link).Background(t.Primary)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Italic(true).Padding(0, 1)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Session history (%d)", len(hp.entries))))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", w)))
	sb.WriteString("\n")

	if len(hp.entries) == 0 {
		sb.WriteString(subStyle.Render("Nothing visited in this session."))
		return sb.String()
	}

	end := min(hp.offset+hp.visibleCount(), len(hp.entries))
	for i := hp.offset; i < end; i++ {
		e := hp.entries[i]
		title := e.Title
		if title == "" {
			title = e.URL
		}
		title = clip(title, w-4)
		sub := clip(fmt.Sprintf("%s  %s  %s", e.URL, e.Kind, timeAgo(e.VisitedAt)), w-4)

		if i == hp.cursor {
			sb.WriteString(selStyle.Render("▸ " + title))
			sb.WriteString("\n")
			sb.WriteString(selSubStyle.Render("  " + sub))
		} else {
			sb.WriteString(rowStyle.Render("  " + title))
			sb.WriteString("\n")
			sb.WriteString(subStyle.Render("  " + sub))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(hintStyle.Render("j/k move  Enter open  d delete  Esc close"))
	return sb.String()
}
