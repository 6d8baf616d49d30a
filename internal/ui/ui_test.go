package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidyasagar/minichrome/internal/storage"
	"github.com/vidyasagar/minichrome/internal/theme"
)

func TestFrequentPanelSelection(t *testing.T) {
	fp := NewFrequentPanel(theme.Default())
	fp.SetWidth(80)
	fp.Show([]FrequentItem{
		{URL: "http://youtube.com", Name: "youtube", Visits: 3},
		{URL: "http://google.com", Name: "google", Visits: 1},
	})

	if !fp.IsVisible() {
		t.Fatal("panel should be visible after Show")
	}
	if it, _ := fp.Selected(); it.Name != "youtube" {
		t.Errorf("first selection = %q, want youtube", it.Name)
	}
	fp.CursorDown()
	fp.CursorDown()
	if it, _ := fp.Selected(); it.Name != "google" {
		t.Errorf("cursor should stop at the last item, got %q", it.Name)
	}
	fp.CursorUp()
	if it, _ := fp.Selected(); it.Name != "youtube" {
		t.Errorf("after CursorUp got %q", it.Name)
	}

	if it, ok := fp.Pick(2); !ok || it.URL != "http://google.com" {
		t.Errorf("Pick(2) = %v, %v", it, ok)
	}
	if _, ok := fp.Pick(3); ok {
		t.Error("Pick past the end should fail")
	}

	view := fp.View()
	for _, want := range []string{"Frequently Visited", "youtube", "google"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	fp.Hide()
	if fp.View() != "" {
		t.Error("hidden panel should render nothing")
	}
}

func TestFrequentPanelEmpty(t *testing.T) {
	fp := NewFrequentPanel(theme.Default())
	fp.Show(nil)
	if _, ok := fp.Selected(); ok {
		t.Error("empty panel has no selection")
	}
	if !strings.Contains(fp.View(), "Nothing visited yet") {
		t.Error("empty panel should say so")
	}
}

func TestToolbarShowsFavoriteLabel(t *testing.T) {
	tb := NewToolbar(theme.Default())
	tb.SetWidth(200)
	tb.SetState(ToolbarState{HasCurrent: true, HasFavorite: true, FavoriteLabel: "News"})

	view := tb.View()
	for _, want := range []string{"Back", "Next", "Home", "Set Home", "Frequently Visited", "Set Favorite", "News"} {
		if !strings.Contains(view, want) {
			t.Errorf("toolbar missing %q", want)
		}
	}
}

func TestHistoryPanelNavigation(t *testing.T) {
	hp := NewHistoryPanel(theme.Default())
	hp.SetSize(60, 20)
	hp.Show()
	now := time.Now()
	hp.SetEntries([]storage.JournalEntry{
		{ID: 3, URL: "http://c.com", Kind: storage.KindVisit, VisitedAt: now},
		{ID: 2, URL: "http://b.com", Title: "B", Kind: storage.KindReplay, VisitedAt: now},
		{ID: 1, URL: "http://a.com", Title: "A", Kind: storage.KindVisit, VisitedAt: now},
	})

	hp.GotoBottom()
	if e, _ := hp.SelectedEntry(); e.ID != 1 {
		t.Errorf("GotoBottom selected %d", e.ID)
	}
	if hp.HandleGKey() {
		t.Error("single g should not jump")
	}
	if !hp.HandleGKey() {
		t.Error("gg should jump to top")
	}
	if e, _ := hp.SelectedEntry(); e.ID != 3 {
		t.Errorf("gg selected %d", e.ID)
	}

	hp.RemoveSelected()
	if e, _ := hp.SelectedEntry(); e.ID != 2 {
		t.Errorf("after remove selected %d", e.ID)
	}
	if !strings.Contains(hp.View(), "http://b.com") {
		t.Error("view should list remaining entries")
	}
}

func TestCommandBarSubmitAndRecall(t *testing.T) {
	cb := NewCommandBar(theme.Default())
	cb.SetWidth(80)

	cb.Open(CommandEx)
	cb.SetValue("  sethome ")
	res := cb.Submit()
	if res.Type != CommandEx || res.Value != "sethome" {
		t.Errorf("Submit = %+v", res)
	}
	if cb.IsActive() {
		t.Error("Submit should close the bar")
	}

	cb.Open(CommandEx)
	cb.Update(tea.KeyMsg{Type: tea.KeyUp})
	if cb.Value() != "sethome" {
		t.Errorf("up should recall the last command, got %q", cb.Value())
	}
	cb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cb.IsActive() {
		t.Error("esc should close the bar")
	}
}

func TestStatusBarErrorMessage(t *testing.T) {
	sb := NewStatusBar(theme.Default())
	sb.SetWidth(100)
	sb.SetPosition(1, 3, 2)
	sb.SetError("Could not load nowhere")

	view := sb.View()
	for _, want := range []string{"NORMAL", "Could not load nowhere", "2/3", "visits 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("status bar missing %q in %q", want, view)
		}
	}
}

func TestURLBarFocus(t *testing.T) {
	u := NewURLBar(theme.Default())
	u.SetWidth(80)
	u.SetLocation("http://example.com")
	u.Focus()
	if u.Value() != "" {
		t.Errorf("focus should start with an empty input, got %q", u.Value())
	}
	u.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("go.dev")})
	if u.Value() != "go.dev" {
		t.Errorf("typed value = %q", u.Value())
	}
	u.Blur()
	if u.IsActive() || u.Value() != "" {
		t.Error("blur should stop editing and clear input")
	}
	if !strings.Contains(u.View(), "http://example.com") {
		t.Error("idle bar should show the location")
	}
}
