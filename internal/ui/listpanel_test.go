package ui

import (
	"fmt"
	"strings"
	"testing"
)

func numberedItems(n int) []ListItem {
	items := make([]ListItem, n)
	for i := range items {
		items[i] = ListItem{Label: fmt.Sprintf("item%d", i), Value: fmt.Sprintf("/p/%d", i)}
	}
	return items
}

func TestListPanelNavigation(t *testing.T) {
	lp := NewListPanel("Docs", "", "empty")
	lp.SetSize(30, 7) // 5 visible rows
	lp.SetItems(numberedItems(20))

	lp.CursorUp()
	if lp.SelectedIndex() != 0 {
		t.Errorf("cursor moved above first row: %d", lp.SelectedIndex())
	}

	lp.GotoBottom()
	if got := lp.Selected().Value; got != "/p/19" {
		t.Errorf("GotoBottom selected %q", got)
	}
	lp.CursorDown()
	if lp.SelectedIndex() != 19 {
		t.Errorf("cursor moved past last row: %d", lp.SelectedIndex())
	}

	if lp.HandleGKey() {
		t.Error("single g should not jump")
	}
	if !lp.HandleGKey() || lp.SelectedIndex() != 0 {
		t.Errorf("gg should go to top, cursor=%d", lp.SelectedIndex())
	}

	lp.HalfPageDown()
	if lp.SelectedIndex() != 2 {
		t.Errorf("HalfPageDown cursor = %d, want 2", lp.SelectedIndex())
	}
}

func TestListPanelReplaceItemsKeepsSelection(t *testing.T) {
	lp := NewListPanel("Docs", "", "empty")
	lp.SetSize(30, 10)
	lp.SetItems(numberedItems(5))
	lp.Select("/p/3")

	lp.ReplaceItems(numberedItems(8))
	if got := lp.Selected().Value; got != "/p/3" {
		t.Errorf("selection = %q, want /p/3", got)
	}

	lp.ReplaceItems(numberedItems(2))
	if lp.SelectedIndex() != 0 {
		t.Errorf("missing selection should reset cursor, got %d", lp.SelectedIndex())
	}
}

func TestListPanelEmpty(t *testing.T) {
	lp := NewListPanel("Recent", "", "No recent files")
	lp.SetSize(30, 6)
	lp.Show()

	if lp.Selected() != nil {
		t.Error("empty panel should have no selection")
	}
	if !strings.Contains(lp.View(), "No recent files") {
		t.Error("empty text not rendered")
	}
}

func TestListPanelHiddenRendersNothing(t *testing.T) {
	lp := NewListPanel("Docs", "", "")
	lp.SetItems(numberedItems(3))
	if lp.View() != "" {
		t.Error("hidden panel should render nothing")
	}
}
