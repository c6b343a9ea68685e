package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/docview/internal/theme"
)

// Shortcut is a key and what it does, shown on the welcome page.
type Shortcut struct {
	Key  string
	Desc string
}

// PageViewport wraps bubbles/viewport with scroll info and a welcome page.
type PageViewport struct {
	viewport   viewport.Model
	ready      bool
	contentSet bool
	docsRoot   string
	shortcuts  []Shortcut
}

// NewPageViewport creates a new viewport (dimensions set on first WindowSizeMsg).
func NewPageViewport(docsRoot string, shortcuts []Shortcut) PageViewport {
	return PageViewport{docsRoot: docsRoot, shortcuts: shortcuts}
}

// SetSize updates the viewport dimensions.
func (pv *PageViewport) SetSize(width, height int) {
	if !pv.ready {
		pv.viewport = viewport.New(width, height)
		pv.viewport.MouseWheelEnabled = true
		pv.viewport.MouseWheelDelta = 3
		pv.ready = true
	} else {
		pv.viewport.Width = width
		pv.viewport.Height = height
	}
}

// SetContent replaces the viewport content and scrolls to the top.
func (pv *PageViewport) SetContent(content string) {
	if !pv.ready {
		return
	}
	pv.viewport.SetContent(content)
	pv.contentSet = true
	pv.viewport.GotoTop()
}

// Rewrap replaces the content of the same document, keeping the reader at
// the same relative position.
func (pv *PageViewport) Rewrap(content string) {
	if !pv.ready {
		return
	}
	pct := pv.viewport.ScrollPercent()
	pv.viewport.SetContent(content)
	pv.contentSet = true
	lines := pv.viewport.TotalLineCount() - pv.viewport.Height
	pv.viewport.SetYOffset(int(pct * float64(max(lines, 0))))
}

// ShowWelcome drops any content so the welcome page is shown.
func (pv *PageViewport) ShowWelcome() {
	pv.contentSet = false
	if pv.ready {
		pv.viewport.SetContent("")
	}
}

// HasContent reports whether a page is shown instead of the welcome page.
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

// ScrollPercent returns the scroll percentage.
func (pv *PageViewport) ScrollPercent() float64 {
	if !pv.ready {
		return 0
	}
	return pv.viewport.ScrollPercent()
}

// ScrollInfo returns a string like "42%" or "TOP" or "BOT".
func (pv *PageViewport) ScrollInfo() string {
	if !pv.contentSet {
		return ""
	}
	pct := pv.ScrollPercent()
	switch {
	case pct <= 0:
		return "TOP"
	case pct >= 1:
		return "BOT"
	default:
		return fmt.Sprintf("%d%%", int(pct*100))
	}
}

// HalfPageDown scrolls down half a page.
func (pv *PageViewport) HalfPageDown() {
	if pv.ready {
		pv.viewport.HalfViewDown()
	}
}

// HalfPageUp scrolls up half a page.
func (pv *PageViewport) HalfPageUp() {
	if pv.ready {
		pv.viewport.HalfViewUp()
	}
}

// LineDown scrolls down n lines.
func (pv *PageViewport) LineDown(n int) {
	if pv.ready {
		pv.viewport.LineDown(n)
	}
}

// LineUp scrolls up n lines.
func (pv *PageViewport) LineUp(n int) {
	if pv.ready {
		pv.viewport.LineUp(n)
	}
}

// GotoTop scrolls to the top.
func (pv *PageViewport) GotoTop() {
	if pv.ready {
		pv.viewport.GotoTop()
	}
}

// GotoBottom scrolls to the bottom.
func (pv *PageViewport) GotoBottom() {
	if pv.ready {
		pv.viewport.GotoBottom()
	}
}

// Width returns the viewport width.
func (pv *PageViewport) Width() int {
	if !pv.ready {
		return 0
	}
	return pv.viewport.Width
}

// Height returns the viewport height.
func (pv *PageViewport) Height() int {
	if !pv.ready {
		return 0
	}
	return pv.viewport.Height
}

func (pv *PageViewport) renderWelcome() string {
	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	accentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Secondary)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	logo := `
  ⚡     _
     __| | ___   _____   _(_) _____      __
    / _' |/ _ \ / __\ \ / / |/ _ \ \ /\ / /
   | (_| | (_) | (__ \ V /| |  __/\ V  V /
    \__,_|\___/ \___| \_/ |_|\___| \_/\_/
`

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(logo))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("  Fast, keyboard-driven browser for HTML API documentation"))
	sb.WriteString("\n\n")
	if pv.docsRoot != "" {
		sb.WriteString(descStyle.Render("  Docs: " + pv.docsRoot))
		sb.WriteString("\n")
	}
	sb.WriteString(subtitleStyle.Render("  Select a file from the sidebar to get started"))
	sb.WriteString("\n\n")
	sb.WriteString(accentStyle.Render("  ⌨ Keyboard Shortcuts"))
	sb.WriteString("\n\n")

	for _, s := range pv.shortcuts {
		sb.WriteString(keyStyle.Render(fmt.Sprintf("    %-14s", s.Key)))
		sb.WriteString(descStyle.Render(s.Desc))
		sb.WriteString("\n")
	}

	return sb.String()
}
