package theme

import (
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name string
	Dark bool // selects the dark glamour style for page content

	// Core colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Text colors
	Text       lipgloss.Color
	TextDim    lipgloss.Color
	TextBright lipgloss.Color

	// UI element colors
	Surface     lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color

	// Semantic colors
	Directory lipgloss.Color
	Document  lipgloss.Color
	Match     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Info      lipgloss.Color
}

var themes = map[string]Theme{
	"default":    Default,
	"light":      Light,
	"catppuccin": Catppuccin,
	"nord":       Nord,
	"gruvbox":    Gruvbox,
}

var Default = Theme{
	Name:        "default",
	Dark:        true,
	Primary:     lipgloss.Color("#7C3AED"),
	Secondary:   lipgloss.Color("#06B6D4"),
	Accent:      lipgloss.Color("#F59E0B"),
	Text:        lipgloss.Color("#E2E8F0"),
	TextDim:     lipgloss.Color("#64748B"),
	TextBright:  lipgloss.Color("#F8FAFC"),
	Surface:     lipgloss.Color("#1E293B"),
	Border:      lipgloss.Color("#334155"),
	BorderFocus: lipgloss.Color("#7C3AED"),
	Selection:   lipgloss.Color("#334155"),
	Directory:   lipgloss.Color("#A78BFA"),
	Document:    lipgloss.Color("#38BDF8"),
	Match:       lipgloss.Color("#F59E0B"),
	Error:       lipgloss.Color("#EF4444"),
	Success:     lipgloss.Color("#22C55E"),
	Warning:     lipgloss.Color("#F59E0B"),
	Info:        lipgloss.Color("#3B82F6"),
}

var Light = Theme{
	Name:        "light",
	Dark:        false,
	Primary:     lipgloss.Color("#0F62FE"),
	Secondary:   lipgloss.Color("#0E7490"),
	Accent:      lipgloss.Color("#B45309"),
	Text:        lipgloss.Color("#1F2937"),
	TextDim:     lipgloss.Color("#6B7280"),
	TextBright:  lipgloss.Color("#111827"),
	Surface:     lipgloss.Color("#F3F4F6"),
	Border:      lipgloss.Color("#D1D5DB"),
	BorderFocus: lipgloss.Color("#0F62FE"),
	Selection:   lipgloss.Color("#DBEAFE"),
	Directory:   lipgloss.Color("#7C3AED"),
	Document:    lipgloss.Color("#0F62FE"),
	Match:       lipgloss.Color("#B45309"),
	Error:       lipgloss.Color("#DC2626"),
	Success:     lipgloss.Color("#15803D"),
	Warning:     lipgloss.Color("#B45309"),
	Info:        lipgloss.Color("#1D4ED8"),
}

var Catppuccin = Theme{
	Name:        "catppuccin",
	Dark:        true,
	Primary:     lipgloss.Color("#CBA6F7"),
	Secondary:   lipgloss.Color("#89DCEB"),
	Accent:      lipgloss.Color("#F9E2AF"),
	Text:        lipgloss.Color("#CDD6F4"),
	TextDim:     lipgloss.Color("#6C7086"),
	TextBright:  lipgloss.Color("#F5E0DC"),
	Surface:     lipgloss.Color("#313244"),
	Border:      lipgloss.Color("#45475A"),
	BorderFocus: lipgloss.Color("#CBA6F7"),
	Selection:   lipgloss.Color("#45475A"),
	Directory:   lipgloss.Color("#CBA6F7"),
	Document:    lipgloss.Color("#89B4FA"),
	Match:       lipgloss.Color("#F9E2AF"),
	Error:       lipgloss.Color("#F38BA8"),
	Success:     lipgloss.Color("#A6E3A1"),
	Warning:     lipgloss.Color("#F9E2AF"),
	Info:        lipgloss.Color("#89B4FA"),
}

var Nord = Theme{
	Name:        "nord",
	Dark:        true,
	Primary:     lipgloss.Color("#88C0D0"),
	Secondary:   lipgloss.Color("#81A1C1"),
	Accent:      lipgloss.Color("#EBCB8B"),
	Text:        lipgloss.Color("#ECEFF4"),
	TextDim:     lipgloss.Color("#4C566A"),
	TextBright:  lipgloss.Color("#ECEFF4"),
	Surface:     lipgloss.Color("#3B4252"),
	Border:      lipgloss.Color("#434C5E"),
	BorderFocus: lipgloss.Color("#88C0D0"),
	Selection:   lipgloss.Color("#434C5E"),
	Directory:   lipgloss.Color("#81A1C1"),
	Document:    lipgloss.Color("#88C0D0"),
	Match:       lipgloss.Color("#EBCB8B"),
	Error:       lipgloss.Color("#BF616A"),
	Success:     lipgloss.Color("#A3BE8C"),
	Warning:     lipgloss.Color("#EBCB8B"),
	Info:        lipgloss.Color("#5E81AC"),
}

var Gruvbox = Theme{
	Name:        "gruvbox",
	Dark:        true,
	Primary:     lipgloss.Color("#D65D0E"),
	Secondary:   lipgloss.Color("#458588"),
	Accent:      lipgloss.Color("#D79921"),
	Text:        lipgloss.Color("#EBDBB2"),
	TextDim:     lipgloss.Color("#928374"),
	TextBright:  lipgloss.Color("#FBF1C7"),
	Surface:     lipgloss.Color("#3C3836"),
	Border:      lipgloss.Color("#504945"),
	BorderFocus: lipgloss.Color("#D65D0E"),
	Selection:   lipgloss.Color("#504945"),
	Directory:   lipgloss.Color("#FB4934"),
	Document:    lipgloss.Color("#83A598"),
	Match:       lipgloss.Color("#FABD2F"),
	Error:       lipgloss.Color("#FB4934"),
	Success:     lipgloss.Color("#B8BB26"),
	Warning:     lipgloss.Color("#FABD2F"),
	Info:        lipgloss.Color("#83A598"),
}

// Current is the active theme.
var Current = Light

// darkName is the theme used while dark mode is on.
var darkName = "default"

// Set changes the active theme by name. Choosing a dark theme also makes it
// the one dark mode switches to.
func Set(name string) bool {
	t, ok := themes[name]
	if !ok {
		return false
	}
	Current = t
	if t.Dark {
		darkName = name
	}
	return true
}

// SetDark switches between the light theme and the preferred dark theme.
func SetDark(dark bool) {
	if dark {
		Current = themes[darkName]
	} else {
		Current = Light
	}
}

// IsDark reports whether the active theme is a dark one.
func IsDark() bool {
	return Current.Dark
}

// List returns all available theme names, sorted.
func List() []string {
	return slices.Sorted(maps.Keys(themes))
}
