// Package theme holds the color palettes for the browser chrome.
//
// There is no package-level active theme. The app picks one at startup
// and hands it to each component.
package theme

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultName is the palette used when none is configured.
const DefaultName = "default"

// Theme defines the color palette for the TUI.
type Theme struct {
	Name string

	Primary lipgloss.Color
	Accent  lipgloss.Color

	Text       lipgloss.Color
	TextDim    lipgloss.Color
	TextBright lipgloss.Color

	Surface     lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Toolbar buttons
	Button         lipgloss.Color
	ButtonDisabled lipgloss.Color

	Link      lipgloss.Color
	LinkIndex lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
}

var palettes = map[string]Theme{
	"default": {
		Name:           "default",
		Primary:        lipgloss.Color("#7C3AED"),
		Accent:         lipgloss.Color("#F59E0B"),
		Text:           lipgloss.Color("#E2E8F0"),
		TextDim:        lipgloss.Color("#64748B"),
		TextBright:     lipgloss.Color("#F8FAFC"),
		Surface:        lipgloss.Color("#1E293B"),
		Border:         lipgloss.Color("#334155"),
		BorderFocus:    lipgloss.Color("#7C3AED"),
		Button:         lipgloss.Color("#06B6D4"),
		ButtonDisabled: lipgloss.Color("#475569"),
		Link:           lipgloss.Color("#38BDF8"),
		LinkIndex:      lipgloss.Color("#F59E0B"),
		Error:          lipgloss.Color("#EF4444"),
		Success:        lipgloss.Color("#22C55E"),
		Warning:        lipgloss.Color("#F59E0B"),
	},
	"gruvbox": {
		Name:           "gruvbox",
		Primary:        lipgloss.Color("#D65D0E"),
		Accent:         lipgloss.Color("#D79921"),
		Text:           lipgloss.Color("#EBDBB2"),
		TextDim:        lipgloss.Color("#928374"),
		TextBright:     lipgloss.Color("#FBF1C7"),
		Surface:        lipgloss.Color("#3C3836"),
		Border:         lipgloss.Color("#504945"),
		BorderFocus:    lipgloss.Color("#D65D0E"),
		Button:         lipgloss.Color("#458588"),
		ButtonDisabled: lipgloss.Color("#665C54"),
		Link:           lipgloss.Color("#83A598"),
		LinkIndex:      lipgloss.Color("#FABD2F"),
		Error:          lipgloss.Color("#FB4934"),
		Success:        lipgloss.Color("#B8BB26"),
		Warning:        lipgloss.Color("#FABD2F"),
	},
	"nord": {
		Name:           "nord",
		Primary:        lipgloss.Color("#88C0D0"),
		Accent:         lipgloss.Color("#EBCB8B"),
		Text:           lipgloss.Color("#ECEFF4"),
		TextDim:        lipgloss.Color("#4C566A"),
		TextBright:     lipgloss.Color("#ECEFF4"),
		Surface:        lipgloss.Color("#3B4252"),
		Border:         lipgloss.Color("#434C5E"),
		BorderFocus:    lipgloss.Color("#88C0D0"),
		Button:         lipgloss.Color("#81A1C1"),
		ButtonDisabled: lipgloss.Color("#4C566A"),
		Link:           lipgloss.Color("#88C0D0"),
		LinkIndex:      lipgloss.Color("#EBCB8B"),
		Error:          lipgloss.Color("#BF616A"),
		Success:        lipgloss.Color("#A3BE8C"),
		Warning:        lipgloss.Color("#EBCB8B"),
	},
	"dracula": {
		Name:           "dracula",
		Primary:        lipgloss.Color("#BD93F9"),
		Accent:         lipgloss.Color("#F1FA8C"),
		Text:           lipgloss.Color("#F8F8F2"),
		TextDim:        lipgloss.Color("#6272A4"),
		TextBright:     lipgloss.Color("#F8F8F2"),
		Surface:        lipgloss.Color("#44475A"),
		Border:         lipgloss.Color("#6272A4"),
		BorderFocus:    lipgloss.Color("#BD93F9"),
		Button:         lipgloss.Color("#8BE9FD"),
		ButtonDisabled: lipgloss.Color("#6272A4"),
		Link:           lipgloss.Color("#8BE9FD"),
		LinkIndex:      lipgloss.Color("#F1FA8C"),
		Error:          lipgloss.Color("#FF5555"),
		Success:        lipgloss.Color("#50FA7B"),
		Warning:        lipgloss.Color("#F1FA8C"),
	},
	"light": {
		Name:           "light",
		Primary:        lipgloss.Color("#1A73E8"),
		Accent:         lipgloss.Color("#E37400"),
		Text:           lipgloss.Color("#202124"),
		TextDim:        lipgloss.Color("#5F6368"),
		TextBright:     lipgloss.Color("#000000"),
		Surface:        lipgloss.Color("#F1F3F4"),
		Border:         lipgloss.Color("#DADCE0"),
		BorderFocus:    lipgloss.Color("#1A73E8"),
		Button:         lipgloss.Color("#1967D2"),
		ButtonDisabled: lipgloss.Color("#BDC1C6"),
		Link:           lipgloss.Color("#1A0DAB"),
		LinkIndex:      lipgloss.Color("#E37400"),
		Error:          lipgloss.Color("#D93025"),
		Success:        lipgloss.Color("#188038"),
		Warning:        lipgloss.Color("#E37400"),
	},
}

// Default returns the default palette.
func Default() Theme {
	return palettes[DefaultName]
}

// Lookup finds a palette by name, ignoring case.
func Lookup(name string) (Theme, bool) {
	t, ok := palettes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// List returns all available theme names in sorted order.
func List() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
