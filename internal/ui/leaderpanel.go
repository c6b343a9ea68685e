package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/docview/internal/theme"
)

// LeaderBinding represents a single leader key shortcut.
type LeaderBinding struct {
	Key  string // the key to press after leader (e.g. "t", "d", "+")
	Desc string
}

// LeaderGroup is a named group of leader shortcuts.
type LeaderGroup struct {
	Name     string
	Icon     string
	Bindings []LeaderBinding
}

// LeaderPanel renders the popup shortcut palette shown after pressing the leader key.
type LeaderPanel struct {
	visible bool
	groups  []LeaderGroup
}

// NewLeaderPanel creates a leader panel listing groups.
func NewLeaderPanel(groups []LeaderGroup) LeaderPanel {
	return LeaderPanel{groups: groups}
}

// Groups returns the shortcut groups shown by the panel.
func (lp *LeaderPanel) Groups() []LeaderGroup {
	return lp.groups
}

// Show makes the panel visible.
func (lp *LeaderPanel) Show() {
	lp.visible = true
}

// Hide closes the panel.
func (lp *LeaderPanel) Hide() {
	lp.visible = false
}

// IsVisible reports whether the panel is shown.
func (lp *LeaderPanel) IsVisible() bool {
	return lp.visible
}

// View renders the palette as a bordered box; the caller centers it.
func (lp *LeaderPanel) View() string {
	if !lp.visible {
		return ""
	}

	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	groupNameStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Underline(true)

	keyBadgeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Surface).
		Background(t.Secondary).
		Padding(0, 1)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Italic(true)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	const colWidth = 18

	maxRows := 0
	for _, g := range lp.groups {
		maxRows = max(maxRows, len(g.Bindings))
	}

	colStyle := lipgloss.NewStyle().Width(colWidth)

	var columns []string
	for i, group := range lp.groups {
		lines := []string{
			groupNameStyle.Render(group.Icon + " " + group.Name),
			"",
		}
		for _, b := range group.Bindings {
			lines = append(lines, keyBadgeStyle.Render(b.Key)+descStyle.Render(" "+b.Desc))
		}
		for j := len(group.Bindings); j < maxRows; j++ {
			lines = append(lines, "")
		}

		col := colStyle.Render(strings.Join(lines, "\n"))
		columns = append(columns, col)

		if i < len(lp.groups)-1 {
			sep := strings.Repeat(" │ \n", lipgloss.Height(col))
			columns = append(columns, separatorStyle.Render(strings.TrimSuffix(sep, "\n")))
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	bodyWidth := lipgloss.Width(body)
	rule := separatorStyle.Render(strings.Repeat("─", bodyWidth))

	footer := dimStyle.Render("press a key or Esc to dismiss")
	if fw := lipgloss.Width(footer); fw < bodyWidth {
		footer = strings.Repeat(" ", (bodyWidth-fw)/2) + footer
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("⚡ Leader Key"),
		rule,
		"",
		body,
		"",
		rule,
		footer,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Render(content)
}
