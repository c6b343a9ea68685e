package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/docview/internal/theme"
)

// StatusBar shows the current document info at the bottom of the screen.
type StatusBar struct {
	title      string
	loading    bool
	scrollInfo string
	mode       string
	linkCount  int
	zoom       float64
	readerMode bool
	width      int
	message    string // temporary status message
	isError    bool
}

// NewStatusBar creates a new status bar.
func NewStatusBar() StatusBar {
	return StatusBar{
		mode: "NORMAL",
		zoom: 1.0,
	}
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetTitle updates the document title.
func (s *StatusBar) SetTitle(title string) {
	s.title = title
}

// SetLoading sets the loading indicator state.
func (s *StatusBar) SetLoading(loading bool) {
	s.loading = loading
}

// SetScrollInfo sets the scroll position string (e.g. "42%", "TOP", "BOT").
func (s *StatusBar) SetScrollInfo(info string) {
	s.scrollInfo = info
}

// SetMode sets the current mode indicator (NORMAL, TREE, COMMAND, etc).
func (s *StatusBar) SetMode(mode string) {
	s.mode = mode
}

// Mode returns the mode indicator text.
func (s *StatusBar) Mode() string {
	return s.mode
}

// SetLinkCount sets the total link count displayed.
func (s *StatusBar) SetLinkCount(n int) {
	s.linkCount = n
}

// SetZoom sets the zoom factor shown as a percentage.
func (s *StatusBar) SetZoom(z float64) {
	s.zoom = z
}

// SetReaderMode toggles the reader badge.
func (s *StatusBar) SetReaderMode(on bool) {
	s.readerMode = on
}

// SetMessage sets a temporary status message.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
	s.isError = false
}

// SetError sets a temporary message rendered in the error color.
func (s *StatusBar) SetError(msg string) {
	s.message = msg
	s.isError = true
}

// Message returns the current status message.
func (s *StatusBar) Message() string {
	return s.message
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := theme.Current

	modeColor := t.Secondary
	modeIcon := ""
	switch s.mode {
	case "NORMAL":
		modeColor, modeIcon = t.Primary, "👁 "
	case "TREE":
		modeColor, modeIcon = t.Secondary, "📁 "
	case "SEARCH":
		modeColor, modeIcon = t.Warning, "🔍 "
	case "COMMAND":
		modeColor, modeIcon = t.Accent, "⌘ "
	case "FOLLOW":
		modeColor, modeIcon = t.Info, "🔗 "
	case "RECENT":
		modeColor, modeIcon = t.Secondary, "🕘 "
	case "LEADER":
		modeColor, modeIcon = t.Primary, "⚡ "
	}

	modeStyle := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(t.Surface).
		Background(modeColor)
	mode := modeStyle.Render(modeIcon + s.mode)

	barStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface)

	// Left side: loading, message or title.
	var left string
	switch {
	case s.loading:
		left = lipgloss.NewStyle().
			Foreground(t.Warning).
			Background(t.Surface).
			Bold(true).
			Padding(0, 1).
			Render("⏳ Loading...")
	case s.message != "":
		color := t.Info
		if s.isError {
			color = t.Error
		}
		left = lipgloss.NewStyle().
			Foreground(color).
			Background(t.Surface).
			Padding(0, 1).
			Render(s.message)
	case s.title != "":
		left = lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1).
			Render(s.title)
	}

	// Right side: badges, zoom and scroll position.
	rightStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface).
		Padding(0, 1)

	var badges []string
	if s.readerMode {
		badges = append(badges, "📖 reader")
	}
	if t.Dark {
		badges = append(badges, "🌙")
	} else {
		badges = append(badges, "☀")
	}
	badges = append(badges, fmt.Sprintf("%d%%", int(s.zoom*100+0.5)))
	if s.linkCount > 0 {
		badges = append(badges, fmt.Sprintf("🔗 %d", s.linkCount))
	}
	right := rightStyle.Render(strings.Join(badges, "  "))

	if s.scrollInfo != "" {
		scrollStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary).
			Background(t.Surface).
			Padding(0, 1)
		right += scrollStyle.Render(s.scrollInfo)
	}

	// Truncate the left part before it pushes the badges off screen.
	room := s.width - lipgloss.Width(mode) - lipgloss.Width(right)
	if room < 0 {
		room = 0
	}
	if lipgloss.Width(left) > room {
		left = lipgloss.NewStyle().MaxWidth(room).Render(left)
	}

	spacerWidth := room - lipgloss.Width(left)
	if spacerWidth < 0 {
		spacerWidth = 0
	}
	spacer := lipgloss.NewStyle().
		Background(t.Surface).
		Render(strings.Repeat(" ", spacerWidth))

	return barStyle.Render(mode + left + spacer + right)
}
