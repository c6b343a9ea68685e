package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/vidyasagar/docview/internal/theme"
)

// ListItem is one row of a ListPanel.
type ListItem struct {
	Label  string
	Detail string // dimmed text after the label
	Value  string // opaque payload, usually a path
	Depth  int    // indentation level
	IsDir  bool
	Open   bool // expanded directory
}

// ListPanel is a scrollable single-column list with vim navigation. It backs
// both the document tree sidebar and the recent files panel.
type ListPanel struct {
	title    string
	hint     string
	empty    string
	items    []ListItem
	cursor   int
	offset   int // scroll offset for visible window
	width    int
	height   int
	visible  bool
	focused  bool
	lastGKey bool // for gg detection within the panel
}

// NewListPanel creates a panel with the given header and footer hint.
func NewListPanel(title, hint, empty string) ListPanel {
	return ListPanel{title: title, hint: hint, empty: empty}
}

// SetTitle replaces the header text.
func (lp *ListPanel) SetTitle(title string) {
	lp.title = title
}

// SetItems replaces the rows and resets the cursor.
func (lp *ListPanel) SetItems(items []ListItem) {
	lp.items = items
	lp.cursor = 0
	lp.offset = 0
}

// ReplaceItems swaps the rows but keeps the cursor on the same Value when
// it is still present.
func (lp *ListPanel) ReplaceItems(items []ListItem) {
	var selected string
	if it := lp.Selected(); it != nil {
		selected = it.Value
	}
	lp.items = items
	lp.cursor = 0
	for i, it := range items {
		if it.Value == selected {
			lp.cursor = i
			break
		}
	}
	lp.ensureVisible()
}

// Items returns the current rows.
func (lp *ListPanel) Items() []ListItem {
	return lp.items
}

// SetSize updates the panel dimensions.
func (lp *ListPanel) SetSize(w, h int) {
	lp.width = w
	lp.height = h
	lp.ensureVisible()
}

// Show makes the panel visible.
func (lp *ListPanel) Show() {
	lp.visible = true
	lp.lastGKey = false
}

// Hide closes the panel.
func (lp *ListPanel) Hide() {
	lp.visible = false
	lp.focused = false
	lp.lastGKey = false
}

// IsVisible reports whether the panel is shown.
func (lp *ListPanel) IsVisible() bool {
	return lp.visible
}

// SetFocused marks the panel as receiving keys.
func (lp *ListPanel) SetFocused(f bool) {
	lp.focused = f
}

// Focused reports whether the panel receives keys.
func (lp *ListPanel) Focused() bool {
	return lp.focused
}

// CursorUp moves the cursor up one entry.
func (lp *ListPanel) CursorUp() {
	lp.lastGKey = false
	if lp.cursor > 0 {
		lp.cursor--
		lp.ensureVisible()
	}
}

// CursorDown moves the cursor down one entry.
func (lp *ListPanel) CursorDown() {
	lp.lastGKey = false
	if lp.cursor < len(lp.items)-1 {
		lp.cursor++
		lp.ensureVisible()
	}
}

// GotoTop moves to the first entry.
func (lp *ListPanel) GotoTop() {
	lp.lastGKey = false
	lp.cursor = 0
	lp.offset = 0
}

// GotoBottom moves to the last entry.
func (lp *ListPanel) GotoBottom() {
	lp.lastGKey = false
	if len(lp.items) > 0 {
		lp.cursor = len(lp.items) - 1
		lp.ensureVisible()
	}
}

// HalfPageDown moves the cursor down half a page.
func (lp *ListPanel) HalfPageDown() {
	lp.lastGKey = false
	lp.cursor = min(lp.cursor+lp.visibleCount()/2, len(lp.items)-1)
	lp.cursor = max(lp.cursor, 0)
	lp.ensureVisible()
}

// HalfPageUp moves the cursor up half a page.
func (lp *ListPanel) HalfPageUp() {
	lp.lastGKey = false
	lp.cursor = max(lp.cursor-lp.visibleCount()/2, 0)
	lp.ensureVisible()
}

// HandleGKey handles the "g" key for gg detection.
// Returns true if "gg" was completed (go to top).
func (lp *ListPanel) HandleGKey() bool {
	if lp.lastGKey {
		lp.GotoTop()
		return true
	}
	lp.lastGKey = true
	return false
}

// ResetGKey resets the g key state (called on any non-g key press).
func (lp *ListPanel) ResetGKey() {
	lp.lastGKey = false
}

// Selected returns the item at the cursor, or nil if empty.
func (lp *ListPanel) Selected() *ListItem {
	if lp.cursor < 0 || lp.cursor >= len(lp.items) {
		return nil
	}
	return &lp.items[lp.cursor]
}

// SelectedIndex returns the cursor index.
func (lp *ListPanel) SelectedIndex() int {
	return lp.cursor
}

// Select moves the cursor to the row whose Value is v.
func (lp *ListPanel) Select(v string) bool {
	for i, it := range lp.items {
		if it.Value == v {
			lp.cursor = i
			lp.ensureVisible()
			return true
		}
	}
	return false
}

// visibleCount returns how many rows fit below the header and above the hint.
func (lp *ListPanel) visibleCount() int {
	available := lp.height - 2 // title + separator
	if lp.hint != "" {
		available--
	}
	return max(available, 1)
}

// ensureVisible adjusts offset so the cursor is within the visible window.
func (lp *ListPanel) ensureVisible() {
	visible := lp.visibleCount()
	if lp.cursor < lp.offset {
		lp.offset = lp.cursor
	}
	if lp.cursor >= lp.offset+visible {
		lp.offset = lp.cursor - visible + 1
	}
	lp.offset = max(lp.offset, 0)
}

// View renders the panel.
func (lp *ListPanel) View() string {
	if !lp.visible {
		return ""
	}

	t := theme.Current
	inner := max(lp.width-2, 1)

	titleColor := t.TextDim
	if lp.focused {
		titleColor = t.Primary
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(titleColor).
		Background(t.Surface).
		Width(lp.width).
		Padding(0, 1)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	rowStyle := lipgloss.NewStyle().
		Width(lp.width).
		Padding(0, 1)

	selectedStyle := rowStyle.
		Foreground(t.TextBright).
		Background(t.Selection).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(ansi.Truncate(lp.title, inner, "…")))
	sb.WriteString("\n")
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", max(lp.width, 1))))
	sb.WriteString("\n")

	lines := 0
	if len(lp.items) == 0 {
		sb.WriteString(rowStyle.Foreground(t.TextDim).Render(lp.empty))
		sb.WriteString("\n")
		lines++
	}

	end := min(lp.offset+lp.visibleCount(), len(lp.items))
	for i := lp.offset; i < end; i++ {
		item := lp.items[i]

		icon := "📄 "
		color := t.Document
		if item.IsDir {
			icon, color = "▸ ", t.Directory
			if item.Open {
				icon = "▾ "
			}
		}

		text := strings.Repeat("  ", item.Depth) + icon + item.Label
		if item.Detail != "" {
			text += "  " + dimStyle.Render(item.Detail)
		}
		text = ansi.Truncate(text, inner, "…")

		if i == lp.cursor && lp.focused {
			sb.WriteString(selectedStyle.Render(text))
		} else if i == lp.cursor {
			sb.WriteString(rowStyle.Foreground(color).Underline(true).Render(text))
		} else {
			sb.WriteString(rowStyle.Foreground(color).Render(text))
		}
		sb.WriteString("\n")
		lines++
	}

	if lp.hint != "" && lp.focused {
		// Pad so the hint sits on the last line.
		for remaining := lp.height - 2 - lines - 1; remaining > 0; remaining-- {
			sb.WriteString("\n")
		}
		hintStyle := lipgloss.NewStyle().
			Foreground(t.TextDim).
			Italic(true).
			Padding(0, 1)
		sb.WriteString(hintStyle.Render(ansi.Truncate(lp.hint, inner, "…")))
	}

	return lipgloss.NewStyle().
		Width(lp.width).
		Height(lp.height).
		MaxHeight(lp.height).
		Render(strings.TrimSuffix(sb.String(), "\n"))
}
