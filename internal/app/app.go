// Package app is the top-level bubbletea model. It turns key presses into
// navigation.State operations and page loads, and keeps the chrome (url
// bar, toolbar, status bar) in step with the state.
package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/vidyasagar/minichrome/internal/browser"
	"github.com/vidyasagar/minichrome/internal/navigation"
	"github.com/vidyasagar/minichrome/internal/storage"
	"github.com/vidyasagar/minichrome/internal/theme"
	"github.com/vidyasagar/minichrome/internal/ui"
)

// Mode represents the current input mode.
type Mode int

const (
	ModeNormal   Mode = iota
	ModeInsert        // url bar focused
	ModeCommand       // command bar active (ex, follow or favorite label)
	ModeFrequent      // frequently visited popup
	ModeHistory       // session history panel
)

const (
	urlBarHeight    = 3
	toolbarHeight   = 1
	statusBarHeight = 1
)

// PageLoader loads and renders a page. *browser.Loader implements it.
type PageLoader interface {
	Load(ctx context.Context, url string, width int, useCache bool) (*browser.RenderedPage, error)
	Purge()
}

// Options is the per-session configuration handed to New.
type Options struct {
	Theme         theme.Theme
	Keys          KeyMap
	Loader        PageLoader
	Journal       *storage.Journal // optional
	Config        *storage.Config  // optional; :theme is saved to it
	Logger        *zap.Logger
	StartURL      string
	FrequentCount int
}

// Model is the top-level bubbletea model.
type Model struct {
	urlBar        ui.URLBar
	toolbar       ui.Toolbar
	viewport      ui.PageViewport
	statusBar     ui.StatusBar
	commandBar    ui.CommandBar
	frequentPanel ui.FrequentPanel
	historyPanel  ui.HistoryPanel

	nav     *navigation.State
	loader  PageLoader
	journal *storage.Journal
	config  *storage.Config
	log     *zap.Logger

	theme         theme.Theme
	keys          KeyMap
	mode          Mode
	width         int
	height        int
	ready         bool
	lastGKey      bool
	startURL      string
	frequentCount int
	favoriteLabel string

	page    *browser.RenderedPage
	loadSeq int
	cancel  context.CancelFunc
}

type loadKind int

const (
	loadVisit  loadKind = iota // success is recorded with RecordVisit
	loadReplay                 // back/forward, cursor already moved
	loadReload
)

// openMsg asks for input to be visited, as if typed in the url bar.
type openMsg struct {
	input string
}

// pageLoadedMsg is sent when a page load finishes.
type pageLoadedMsg struct {
	seq   int
	kind  loadKind
	loc   navigation.Location
	input string
	page  *browser.RenderedPage
	err   error
}

// New creates the model for one browser session.
func New(opts Options) Model {
	th := opts.Theme
	if th.Name == "" {
		th = theme.Default()
	}
	keys := opts.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = DefaultKeyMap()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	k := opts.FrequentCount
	if k <= 0 {
		k = navigation.DefaultTopK
	}

	return Model{
		urlBar:        ui.NewURLBar(th),
		toolbar:       ui.NewToolbar(th),
		viewport:      ui.NewPageViewport(th, keys.welcome()),
		statusBar:     ui.NewStatusBar(th),
		commandBar:    ui.NewCommandBar(th),
		frequentPanel: ui.NewFrequentPanel(th),
		historyPanel:  ui.NewHistoryPanel(th),
		nav:           navigation.New(),
		loader:        opts.Loader,
		journal:       opts.Journal,
		config:        opts.Config,
		log:           log,
		theme:         th,
		keys:          keys,
		startURL:      opts.StartURL,
		frequentCount: k,
	}
}

// Navigation exposes the session state.
func (m Model) Navigation() *navigation.State {
	return m.nav
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.startURL == "" {
		return nil
	}
	input := m.startURL
	return func() tea.Msg { return openMsg{input: input} }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case openMsg:
		cmd := m.visit(msg.input)
		return m, cmd

	case pageLoadedMsg:
		return m.handlePageLoaded(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	vp, cmd := m.viewport.Update(msg)
	m.viewport = *vp
	m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Starting minichrome..."
	}

	body := m.viewport.View()
	if m.historyPanel.IsVisible() {
		body = m.historyPanel.View()
	}
	if m.frequentPanel.IsVisible() {
		body = lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
			m.frequentPanel.View(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	sections := []string{
		m.urlBar.View(),
		m.toolbar.View(),
		body,
		m.statusBar.View(),
	}
	if m.commandBar.IsActive() {
		sections = append(sections, m.commandBar.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) bodyHeight() int {
	h := m.height - urlBarHeight - toolbarHeight - statusBarHeight
	if m.commandBar.IsActive() {
		h--
	}
	return max(h, 1)
}

// layout recalculates dimensions for all components.
func (m *Model) layout() {
	m.urlBar.SetWidth(m.width)
	m.toolbar.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.commandBar.SetWidth(m.width)
	m.frequentPanel.SetWidth(m.width)
	m.historyPanel.SetSize(m.width, m.bodyHeight())
	m.viewport.SetSize(m.width, m.bodyHeight())
}

func (m *Model) setMode(mode Mode, label string) {
	m.mode = mode
	m.statusBar.SetMode(label)
	m.layout()
}

// handleKeyMsg dispatches on the current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeInsert:
		return m.handleInsertMode(msg)
	case ModeCommand:
		return m.handleCommandMode(msg)
	case ModeFrequent:
		return m.handleFrequentMode(msg)
	case ModeHistory:
		return m.handleHistoryMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleNormalMode processes keys while browsing.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.GotoTop) {
		if m.lastGKey {
			m.lastGKey = false
			m.viewport.GotoTop()
			m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())
		} else {
			m.lastGKey = true
		}
		return m, nil
	}
	m.lastGKey = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.GotoBottom):
		m.viewport.GotoBottom()

	case key.Matches(msg, m.keys.OpenURL):
		m.setMode(ModeInsert, ui.ModeOpen)
		cmd := m.urlBar.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Back):
		cmd := m.navigate(navigation.Back)
		return m, cmd
	case key.Matches(msg, m.keys.Forward):
		cmd := m.navigate(navigation.Forward)
		return m, cmd

	case key.Matches(msg, m.keys.Home):
		cmd := m.goHome()
		return m, cmd
	case key.Matches(msg, m.keys.SetHome):
		m.setHome()
	case key.Matches(msg, m.keys.Frequent):
		m.openFrequent()

	case key.Matches(msg, m.keys.SetFavorite):
		cur, ok := m.nav.Current()
		if !ok {
			m.statusBar.SetError("No page to set as favorite")
			return m, nil
		}
		m.setMode(ModeCommand, ui.ModeLabel)
		cmd := m.commandBar.Open(ui.CommandLabel)
		m.commandBar.SetValue(browser.SiteName(cur.String()))
		return m, cmd
	case key.Matches(msg, m.keys.Favorite):
		cmd := m.goFavorite()
		return m, cmd

	case key.Matches(msg, m.keys.Reload):
		cmd := m.reload()
		return m, cmd

	case key.Matches(msg, m.keys.FollowLink):
		if m.page == nil || len(m.page.Links) == 0 {
			m.statusBar.SetError("No links on this page")
			return m, nil
		}
		m.setMode(ModeCommand, ui.ModeFollow)
		cmd := m.commandBar.Open(ui.CommandFollow)
		return m, cmd

	case key.Matches(msg, m.keys.CommandMode):
		m.setMode(ModeCommand, ui.ModeCommand)
		cmd := m.commandBar.Open(ui.CommandEx)
		return m, cmd

	case key.Matches(msg, m.keys.HistoryToggle):
		m.openHistory("")

	case key.Matches(msg, m.keys.Help):
		m.showHelp()

	default:
		vp, cmd := m.viewport.Update(msg)
		m.viewport = *vp
		m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())
		return m, cmd
	}

	m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())
	return m, nil
}

// handleInsertMode processes keys while the url bar is focused.
func (m Model) handleInsertMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.urlBar.Blur()
		m.setMode(ModeNormal, ui.ModeNormal)
		return m, nil

	case tea.KeyEnter:
		input := m.urlBar.Value()
		m.urlBar.Blur()
		m.setMode(ModeNormal, ui.ModeNormal)
		cmd := m.visit(input)
		return m, cmd
	}

	ub, cmd := m.urlBar.Update(msg)
	m.urlBar = *ub
	return m, cmd
}

// handleCommandMode processes keys while the command bar is open.
func (m Model) handleCommandMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.commandBar.Close()
		m.statusBar.ClearMessage()
		m.setMode(ModeNormal, ui.ModeNormal)
		return m, nil

	case tea.KeyEnter:
		result := m.commandBar.Submit()
		m.statusBar.ClearMessage()
		m.setMode(ModeNormal, ui.ModeNormal)
		return m.handleCommandResult(result)
	}

	cb, cmd := m.commandBar.Update(msg)
	m.commandBar = *cb
	if m.commandBar.Type() == ui.CommandFollow {
		m.previewLink(m.commandBar.Value())
	}
	return m, cmd
}

func (m Model) handleCommandResult(result ui.CommandResult) (tea.Model, tea.Cmd) {
	switch result.Type {
	case ui.CommandEx:
		return m.executeCommand(result.Value)
	case ui.CommandFollow:
		cmd := m.followLink(result.Value)
		return m, cmd
	case ui.CommandLabel:
		m.setFavorite(result.Value)
	}
	return m, nil
}

// handleFrequentMode processes keys while the frequently visited popup is open.
func (m Model) handleFrequentMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	switch s {
	case "esc", "q", "F":
		m.frequentPanel.Hide()
		m.setMode(ModeNormal, ui.ModeNormal)
	case "j", "down":
		m.frequentPanel.CursorDown()
	case "k", "up":
		m.frequentPanel.CursorUp()
	case "enter":
		item, ok := m.frequentPanel.Selected()
		m.frequentPanel.Hide()
		m.setMode(ModeNormal, ui.ModeNormal)
		if ok {
			cmd := m.visit(item.URL)
			return m, cmd
		}
	default:
		if n, err := strconv.Atoi(s); err == nil {
			if item, ok := m.frequentPanel.Pick(n); ok {
				m.frequentPanel.Hide()
				m.setMode(ModeNormal, ui.ModeNormal)
				cmd := m.visit(item.URL)
				return m, cmd
			}
		}
	}
	return m, nil
}

// handleHistoryMode processes keys while the session history panel is open.
func (m Model) handleHistoryMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc" || msg.String() == "q" || key.Matches(msg, m.keys.HistoryToggle):
		m.historyPanel.Hide()
		m.setMode(ModeNormal, ui.ModeNormal)
	case msg.String() == "g":
		m.historyPanel.HandleGKey()
	case key.Matches(msg, m.keys.ScrollDown):
		m.historyPanel.CursorDown()
	case key.Matches(msg, m.keys.ScrollUp):
		m.historyPanel.CursorUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.historyPanel.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.historyPanel.HalfPageUp()
	case key.Matches(msg, m.keys.GotoBottom):
		m.historyPanel.GotoBottom()
	case msg.String() == "enter":
		entry, ok := m.historyPanel.SelectedEntry()
		m.historyPanel.Hide()
		m.setMode(ModeNormal, ui.ModeNormal)
		if ok {
			cmd := m.visit(entry.URL)
			return m, cmd
		}
	case msg.String() == "d":
		entry, ok := m.historyPanel.SelectedEntry()
		if ok && m.journal != nil {
			if _, err := m.journal.Remove(context.Background(), entry.ID); err != nil {
				m.log.Warn("removing journal entry", zap.Int64("id", entry.ID), zap.Error(err))
				m.statusBar.SetError("Could not remove entry")
				return m, nil
			}
			m.historyPanel.RemoveSelected()
		}
	}
	return m, nil
}

// executeCommand handles : commands.
func (m Model) executeCommand(cmd string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return m, nil
	}
	arg := strings.Join(parts[1:], " ")

	switch parts[0] {
	case "q", "quit":
		return m, tea.Quit
	case "o", "open":
		if arg == "" {
			m.statusBar.SetError("Usage: :open <location>")
			return m, nil
		}
		cmd := m.visit(arg)
		return m, cmd
	case "home":
		cmd := m.goHome()
		return m, cmd
	case "sethome":
		m.setHome()
	case "fav", "favorite":
		cmd := m.goFavorite()
		return m, cmd
	case "setfav", "setfavorite":
		if _, ok := m.nav.Current(); !ok {
			m.statusBar.SetError("No page to set as favorite")
			return m, nil
		}
		m.setFavorite(arg)
	case "back":
		cmd := m.navigate(navigation.Back)
		return m, cmd
	case "forward", "next":
		cmd := m.navigate(navigation.Forward)
		return m, cmd
	case "reload":
		cmd := m.reload()
		return m, cmd
	case "frequent":
		m.openFrequent()
	case "history":
		m.openHistory(arg)
	case "clearhistory":
		m.clearHistory()
	case "theme":
		m.switchTheme(arg)
	case "help":
		m.showHelp()
	default:
		m.statusBar.SetError(fmt.Sprintf("Unknown command: %s", parts[0]))
	}
	return m, nil
}

// visit completes input into a location and loads it. The location is
// recorded only once the load succeeds.
func (m *Model) visit(input string) tea.Cmd {
	loc, ok := m.nav.Complete(input)
	if !ok {
		m.log.Info("location not found", zap.String("input", input))
		m.loadFailed(input)
		return nil
	}
	return m.startLoad(loc, input, loadVisit)
}

// navigate moves through history. The move itself never touches visit
// counts; the page at the new position is then loaded for display.
func (m *Model) navigate(dir navigation.Direction) tea.Cmd {
	before := m.nav.Cursor()
	loc, err := m.nav.Navigate(dir)
	if errors.Is(err, navigation.ErrOutOfRange) {
		m.statusBar.SetMessage("No history yet")
		return nil
	}
	// The same location may sit at neighbouring positions, so compare cursors.
	if m.nav.Cursor() == before {
		return nil
	}
	m.log.Debug("navigate", zap.Stringer("direction", dir), zap.String("url", loc.String()))
	m.syncChrome()
	return m.startLoad(loc, loc.String(), loadReplay)
}

func (m *Model) reload() tea.Cmd {
	cur, ok := m.nav.Current()
	if !ok {
		return nil
	}
	return m.startLoad(cur, cur.String(), loadReload)
}

func (m *Model) goHome() tea.Cmd {
	home, ok := m.nav.Home()
	if !ok {
		m.statusBar.SetError("No home page set")
		return nil
	}
	return m.startLoad(home, home.String(), loadVisit)
}

func (m *Model) goFavorite() tea.Cmd {
	fav, ok := m.nav.Favorite()
	if !ok {
		m.statusBar.SetError("No favorite set")
		return nil
	}
	return m.startLoad(fav, fav.String(), loadVisit)
}

func (m *Model) setHome() {
	if !m.nav.SetHomeToCurrent() {
		m.statusBar.SetError("No page to set as home")
		return
	}
	home, _ := m.nav.Home()
	m.log.Info("home set", zap.String("url", home.String()))
	m.statusBar.SetMessage("Home set to " + home.String())
	m.syncChrome()
}

// setFavorite makes the current page the favorite, shown on the toolbar
// under label.
func (m *Model) setFavorite(label string) {
	if !m.nav.SetFavoriteToCurrent() {
		m.statusBar.SetError("No page to set as favorite")
		return
	}
	fav, _ := m.nav.Favorite()
	label = strings.TrimSpace(label)
	if label == "" {
		label = browser.SiteName(fav.String())
	}
	m.favoriteLabel = label
	m.log.Info("favorite set", zap.String("url", fav.String()), zap.String("label", label))
	m.statusBar.SetMessage(fmt.Sprintf("Favorite %q set to %s", label, fav.String()))
	m.syncChrome()
}

func (m *Model) openFrequent() {
	top := m.nav.TopFrequent(m.frequentCount)
	items := make([]ui.FrequentItem, 0, len(top))
	for _, loc := range top {
		items = append(items, ui.FrequentItem{
			URL:    loc.String(),
			Name:   browser.SiteName(loc.String()),
			Visits: m.nav.VisitCount(loc),
		})
	}
	m.frequentPanel.Show(items)
	m.setMode(ModeFrequent, ui.ModeFrequent)
}

// openHistory shows the session journal, filtered by query when given.
func (m *Model) openHistory(query string) {
	if m.journal == nil {
		m.statusBar.SetError("Session history not available")
		return
	}
	var (
		entries []storage.JournalEntry
		err     error
	)
	if query == "" {
		entries, err = m.journal.List(context.Background(), 0)
	} else {
		entries, err = m.journal.Search(context.Background(), query)
	}
	if err != nil {
		m.log.Warn("listing journal", zap.Error(err))
		m.statusBar.SetError("Could not read session history")
		return
	}
	m.historyPanel.SetEntries(entries)
	m.historyPanel.Show()
	m.setMode(ModeHistory, ui.ModeHistory)
}

// clearHistory forgets the session: history, counts, cached pages and the
// journal. Home and favorite are kept.
func (m *Model) clearHistory() {
	m.cancelLoad()
	m.nav.Reset()
	if m.loader != nil {
		m.loader.Purge()
	}
	if m.journal != nil {
		if err := m.journal.Clear(context.Background()); err != nil {
			m.log.Warn("clearing journal", zap.Error(err))
		}
	}
	m.page = nil
	m.viewport.Clear()
	m.urlBar.SetLocation("")
	m.statusBar.SetTitle("")
	m.statusBar.SetLinkCount(0)
	m.statusBar.SetMessage("History cleared")
	m.syncChrome()
}

func (m *Model) switchTheme(name string) {
	if name == "" {
		m.statusBar.SetMessage(fmt.Sprintf("Theme: %s (available: %s)", m.theme.Name, strings.Join(theme.List(), ", ")))
		return
	}
	th, ok := theme.Lookup(name)
	if !ok {
		m.statusBar.SetError(fmt.Sprintf("Unknown theme: %s (available: %s)", name, strings.Join(theme.List(), ", ")))
		return
	}
	m.applyTheme(th)
	m.statusBar.SetMessage("Theme: " + th.Name)

	if m.config != nil {
		m.config.Theme = th.Name
		// Only the theme goes to disk; flag and env overrides stay in memory.
		err := storage.UpdateConfigFile(m.config.Path(), func(c *storage.Config) {
			c.Theme = th.Name
		})
		if err != nil {
			m.log.Warn("saving config", zap.Error(err))
		}
	}
}

func (m *Model) applyTheme(th theme.Theme) {
	m.theme = th
	m.urlBar.SetTheme(th)
	m.toolbar.SetTheme(th)
	m.viewport.SetTheme(th)
	m.statusBar.SetTheme(th)
	m.commandBar.SetTheme(th)
	m.frequentPanel.SetTheme(th)
	m.historyPanel.SetTheme(th)
}

// previewLink shows the URL of the link number typed so far.
func (m *Model) previewLink(input string) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		m.statusBar.ClearMessage()
		return
	}
	if link, ok := m.page.LinkByIndex(n); ok {
		m.statusBar.SetMessage(fmt.Sprintf("[%d] %s", n, link.URL))
	} else {
		m.statusBar.SetError(fmt.Sprintf("No link [%d]", n))
	}
}

func (m *Model) followLink(input string) tea.Cmd {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		m.statusBar.SetError(fmt.Sprintf("Invalid link number: %s", input))
		return nil
	}
	link, ok := m.page.LinkByIndex(n)
	if !ok {
		m.statusBar.SetError(fmt.Sprintf("Link [%d] not found", n))
		return nil
	}
	return m.visit(link.URL)
}

func (m *Model) cancelLoad() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.loadSeq++
	m.statusBar.SetLoading("")
}

// startLoad cancels any pending load and loads loc in the background.
func (m *Model) startLoad(loc navigation.Location, input string, kind loadKind) tea.Cmd {
	m.cancelLoad()
	if m.loader == nil {
		m.loadFailed(input)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	seq := m.loadSeq
	m.statusBar.ClearMessage()
	m.statusBar.SetLoading(loc.String())

	loader := m.loader
	width := m.viewport.Width()
	if width <= 0 {
		width = 80
	}
	useCache := kind != loadReload

	return func() tea.Msg {
		page, err := loader.Load(ctx, loc.String(), width, useCache)
		return pageLoadedMsg{seq: seq, kind: kind, loc: loc, input: input, page: page, err: err}
	}
}

// handlePageLoaded applies a finished load. Results of superseded loads
// are dropped.
func (m Model) handlePageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.loadSeq {
		return m, nil
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.statusBar.SetLoading("")

	if msg.err != nil {
		m.log.Info("load failed",
			zap.String("url", msg.loc.String()),
			zap.Int("kind", int(msg.kind)),
			zap.Error(msg.err),
		)
		if msg.kind == loadVisit {
			m.loadFailed(msg.input)
			return m, nil
		}
		m.showError(msg.loc, msg.err)
		return m, nil
	}

	journalKind := storage.KindReplay
	switch msg.kind {
	case loadVisit:
		m.nav.RecordVisit(msg.loc)
		journalKind = storage.KindVisit
		m.log.Info("visit",
			zap.String("url", msg.loc.String()),
			zap.Int("count", m.nav.VisitCount(msg.loc)),
		)
	case loadReload:
		journalKind = storage.KindReload
	}

	if m.journal != nil {
		if err := m.journal.Add(context.Background(), msg.loc.String(), msg.page.Title, journalKind); err != nil {
			m.log.Warn("journal add", zap.Error(err))
		}
	}

	m.page = msg.page
	m.viewport.SetContent(msg.page.Content)
	m.statusBar.SetTitle(msg.page.Title)
	m.statusBar.SetLinkCount(len(msg.page.Links))
	m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())
	m.syncChrome()
	return m, nil
}

// loadFailed reports that input could not be shown. State is untouched.
func (m *Model) loadFailed(input string) {
	m.statusBar.SetError(fmt.Sprintf("Could not load %s", strings.TrimSpace(input)))
	m.urlBar.SetFailed(true)
}

func (m *Model) showError(loc navigation.Location, err error) {
	errStyle := lipgloss.NewStyle().Foreground(m.theme.Error).Bold(true).Padding(2, 4)
	detailStyle := lipgloss.NewStyle().Foreground(m.theme.TextDim).Padding(0, 4)

	var se *browser.StatusError
	detail := err.Error()
	if errors.As(err, &se) {
		detail = fmt.Sprintf("The server answered %d.", se.StatusCode)
	}

	m.page = nil
	m.viewport.SetContent(errStyle.Render("Could not load page") + "\n\n" +
		detailStyle.Render(fmt.Sprintf("URL: %s\n%s", loc.String(), detail)))
	m.statusBar.SetTitle("")
	m.statusBar.SetLinkCount(0)
	m.statusBar.SetError(fmt.Sprintf("Could not load %s", loc.String()))
	m.syncChrome()
}

// syncChrome updates the url bar, toolbar and status bar from the
// navigation state.
func (m *Model) syncChrome() {
	cur, hasCurrent := m.nav.Current()
	_, hasHome := m.nav.Home()
	_, hasFav := m.nav.Favorite()

	if hasCurrent {
		m.urlBar.SetLocation(cur.String())
	}
	m.toolbar.SetState(ui.ToolbarState{
		CanBack:       m.nav.CanGoBack(),
		CanForward:    m.nav.CanGoForward(),
		HasCurrent:    hasCurrent,
		HasHome:       hasHome,
		HasFavorite:   hasFav,
		FavoriteLabel: m.favoriteLabel,
		HasVisits:     m.nav.Len() > 0,
	})

	visits := 0
	if hasCurrent {
		visits = m.nav.VisitCount(cur)
	}
	m.statusBar.SetPosition(m.nav.Cursor(), m.nav.Len(), visits)
}

// showHelp puts the keybinding reference in the viewport.
func (m *Model) showHelp() {
	t := m.theme
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	keyStyle := lipgloss.NewStyle().Foreground(t.Button).Width(16)
	descStyle := lipgloss.NewStyle().Foreground(t.Text)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("minichrome keys"))
	sb.WriteString("\n\n")

	for _, sec := range m.keys.sections() {
		sb.WriteString(sectionStyle.Render(sec.name))
		sb.WriteString("\n")
		for _, b := range sec.bindings {
			sb.WriteString(keyStyle.Render(b.Help().Key))
			sb.WriteString(descStyle.Render(b.Help().Desc))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(sectionStyle.Render("Commands"))
	sb.WriteString("\n")
	for _, c := range [][2]string{
		{":open <loc>", "visit a location"},
		{":home / :sethome", "go home / set home to this page"},
		{":fav / :setfav [label]", "go to / set the favorite"},
		{":frequent", "frequently visited"},
		{":history", "session history"},
		{":clearhistory", "forget this session"},
		{":theme [name]", "switch theme"},
		{":quit", "quit"},
	} {
		sb.WriteString(keyStyle.Width(24).Render(c[0]))
		sb.WriteString(descStyle.Render(c[1]))
		sb.WriteString("\n")
	}

	m.page = nil
	m.viewport.SetContent(sb.String())
	m.statusBar.SetTitle("Help")
	m.statusBar.SetLinkCount(0)
}
