package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/minichrome/internal/theme"
)

// CommandType identifies what the command bar is collecting.
type CommandType int

const (
	CommandNone   CommandType = iota
	CommandEx                 // : commands
	CommandFollow             // f link number
	CommandLabel              // favorite label
)

// CommandResult is what the user submitted.
type CommandResult struct {
	Type  CommandType
	Value string
}

// CommandBar is the single-line prompt at the bottom of the screen.
type CommandBar struct {
	theme      theme.Theme
	input      textinput.Model
	active     bool
	cmdType    CommandType
	width      int
	history    []string
	historyPos int
}

// NewCommandBar creates a closed command bar.
func NewCommandBar(th theme.Theme) CommandBar {
	ti := textinput.New()
	ti.CharLimit = 256

	return CommandBar{
		theme:      th,
		input:      ti,
		historyPos: -1,
	}
}

// SetTheme swaps the palette.
func (c *CommandBar) SetTheme(th theme.Theme) {
	c.theme = th
}

// SetWidth sets the bar width.
func (c *CommandBar) SetWidth(w int) {
	c.width = w
	c.input.Width = max(w-4, 1)
}

// Open activates the bar for the given kind of input.
func (c *CommandBar) Open(ct CommandType) tea.Cmd {
	c.active = true
	c.cmdType = ct
	c.input.Reset()
	c.historyPos = -1

	switch ct {
	case CommandEx:
		c.input.Placeholder = "command..."
		c.input.Prompt = ":"
	case CommandFollow:
		c.input.Placeholder = "link #..."
		c.input.Prompt = "f"
	case CommandLabel:
		c.input.Placeholder = "favorite label..."
		c.input.Prompt = "* "
	}

	return c.input.Focus()
}

// Close deactivates the bar.
func (c *CommandBar) Close() {
	c.active = false
	c.cmdType = CommandNone
	c.input.Blur()
	c.input.Reset()
}

// IsActive reports whether the bar is open.
func (c *CommandBar) IsActive() bool {
	return c.active
}

// SetValue pre-fills the input.
func (c *CommandBar) SetValue(val string) {
	c.input.SetValue(val)
	c.input.CursorEnd()
}

// Value returns the text typed so far.
func (c *CommandBar) Value() string {
	return c.input.Value()
}

// Type returns what the bar is collecting.
func (c *CommandBar) Type() CommandType {
	return c.cmdType
}

// Submit closes the bar and returns what was typed. Ex commands are kept
// for up/down recall.
func (c *CommandBar) Submit() CommandResult {
	val := strings.TrimSpace(c.input.Value())
	result := CommandResult{Type: c.cmdType, Value: val}

	if val != "" && c.cmdType == CommandEx {
		c.history = append(c.history, val)
	}

	c.Close()
	return result
}

// Update processes messages while the bar is open. Enter is left to the
// caller, which calls Submit.
func (c *CommandBar) Update(msg tea.Msg) (*CommandBar, tea.Cmd) {
	if !c.active {
		return c, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc:
			c.Close()
			return c, nil
		case tea.KeyEnter:
			return c, nil
		case tea.KeyUp:
			if c.cmdType == CommandEx && len(c.history) > 0 {
				if c.historyPos < len(c.history)-1 {
					c.historyPos++
				}
				c.SetValue(c.history[len(c.history)-1-c.historyPos])
			}
			return c, nil
		case tea.KeyDown:
			switch {
			case c.cmdType != CommandEx:
			case c.historyPos > 0:
				c.historyPos--
				c.SetValue(c.history[len(c.history)-1-c.historyPos])
			case c.historyPos == 0:
				c.historyPos = -1
				c.input.Reset()
			}
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// View renders the bar, or nothing when closed.
func (c *CommandBar) View() string {
	if !c.active {
		return ""
	}

	return lipgloss.NewStyle().
		Foreground(c.theme.Text).
		Background(c.theme.Surface).
		Width(c.width).
		Render(c.input.View())
}
