package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/docview/internal/theme"
)

const (
	minSidebarWidth = 16
	minMainWidth    = 20
	ratioStep       = 0.05
)

// SplitPane lays out the sidebar and the document side by side.
// Ratio is the share of the width given to the sidebar.
type SplitPane struct {
	Ratio   float64 // 0.0-1.0
	visible bool
	width   int
	height  int
}

// NewSplitPane creates a split pane with the sidebar shown.
func NewSplitPane(ratio float64) SplitPane {
	sp := SplitPane{visible: true}
	sp.SetRatio(ratio)
	return sp
}

// SetSize updates the split pane dimensions.
func (sp *SplitPane) SetSize(w, h int) {
	sp.width = w
	sp.height = h
}

// SetRatio sets the sidebar share, clamped to [0, 1].
func (sp *SplitPane) SetRatio(r float64) {
	sp.Ratio = min(max(r, 0), 1)
}

// Widen grows the sidebar by one step.
func (sp *SplitPane) Widen() {
	sp.SetRatio(sp.Ratio + ratioStep)
}

// Narrow shrinks the sidebar by one step.
func (sp *SplitPane) Narrow() {
	sp.SetRatio(sp.Ratio - ratioStep)
}

// SidebarVisible reports whether the sidebar is shown.
func (sp *SplitPane) SidebarVisible() bool {
	return sp.visible && sp.Ratio > 0
}

// ToggleSidebar shows or hides the sidebar without touching the ratio.
func (sp *SplitPane) ToggleSidebar() {
	sp.visible = !sp.visible
}

// SidebarWidth returns the columns given to the sidebar, 0 when hidden.
func (sp *SplitPane) SidebarWidth() int {
	if !sp.SidebarVisible() || sp.width <= 0 {
		return 0
	}
	w := int(float64(sp.width) * sp.Ratio)
	w = max(w, minSidebarWidth)
	// Keep room for the divider and a usable document column.
	if w > sp.width-minMainWidth-1 {
		w = sp.width - minMainWidth - 1
	}
	return max(w, 0)
}

// MainWidth returns the columns left for the document.
func (sp *SplitPane) MainWidth() int {
	sw := sp.SidebarWidth()
	if sw == 0 {
		return sp.width
	}
	return sp.width - sw - 1 // -1 for divider
}

// Render joins the sidebar and the document with a divider.
func (sp *SplitPane) Render(sidebar, main string) string {
	sw := sp.SidebarWidth()
	if sw == 0 {
		return main
	}

	t := theme.Current

	leftStyle := lipgloss.NewStyle().
		Width(sw).
		MaxWidth(sw).
		Height(sp.height).
		MaxHeight(sp.height)

	rightStyle := lipgloss.NewStyle().
		Width(sp.MainWidth()).
		Height(sp.height).
		MaxHeight(sp.height)

	divider := lipgloss.NewStyle().
		Foreground(t.Border).
		Render(strings.TrimSuffix(strings.Repeat("│\n", max(sp.height, 1)), "\n"))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(sidebar),
		divider,
		rightStyle.Render(main),
	)
}
