package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/docview/internal/theme"
)

// SearchBar is the filter input above the document tree.
type SearchBar struct {
	input  textinput.Model
	active bool
	width  int
}

// NewSearchBar creates a new search bar.
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search docs..."
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 20

	return SearchBar{
		input: ti,
	}
}

// SetWidth updates the search bar width.
func (s *SearchBar) SetWidth(w int) {
	s.width = w
	s.input.Width = max(w-8, 1) // account for icon, border and padding
}

// Focus activates the search bar for input.
func (s *SearchBar) Focus() tea.Cmd {
	s.active = true
	return s.input.Focus()
}

// Blur deactivates the search bar but keeps the query.
func (s *SearchBar) Blur() {
	s.active = false
	s.input.Blur()
}

// IsActive reports whether the search bar is focused.
func (s *SearchBar) IsActive() bool {
	return s.active
}

// Value returns the current query.
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// SetValue sets the query text.
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
}

// Reset clears the query.
func (s *SearchBar) Reset() {
	s.input.Reset()
}

// Update handles messages for the search bar.
func (s *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	if !s.active {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// Height is the number of rows the bar occupies.
func (s *SearchBar) Height() int {
	return 3
}

// View renders the search bar.
func (s *SearchBar) View() string {
	t := theme.Current

	border := t.Border
	fg := t.TextDim
	if s.active {
		border = t.BorderFocus
		fg = t.Text
	}

	barStyle := lipgloss.NewStyle().
		Foreground(fg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(s.width-2, 1))

	iconStyle := lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	return barStyle.Render(iconStyle.Render("🔍") + " " + s.input.View())
}
