package ui

import "testing"

func TestSplitPaneWidths(t *testing.T) {
	tests := []struct {
		name        string
		ratio       float64
		width       int
		wantSidebar int
		wantMain    int
	}{
		{"default ratio", 0.2, 100, 20, 79},
		{"minimum sidebar", 0.05, 100, minSidebarWidth, 100 - minSidebarWidth - 1},
		{"keeps main column", 1.0, 100, 100 - minMainWidth - 1, minMainWidth},
		{"zero ratio hides", 0, 100, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := NewSplitPane(tt.ratio)
			sp.SetSize(tt.width, 30)
			if got := sp.SidebarWidth(); got != tt.wantSidebar {
				t.Errorf("SidebarWidth() = %d, want %d", got, tt.wantSidebar)
			}
			if got := sp.MainWidth(); got != tt.wantMain {
				t.Errorf("MainWidth() = %d, want %d", got, tt.wantMain)
			}
		})
	}
}

func TestSplitPaneToggleKeepsRatio(t *testing.T) {
	sp := NewSplitPane(0.3)
	sp.SetSize(100, 10)

	sp.ToggleSidebar()
	if sp.SidebarVisible() || sp.SidebarWidth() != 0 || sp.MainWidth() != 100 {
		t.Error("sidebar should be hidden")
	}
	sp.ToggleSidebar()
	if !sp.SidebarVisible() || sp.Ratio != 0.3 {
		t.Errorf("sidebar should be back at 0.3, got visible=%v ratio=%v", sp.SidebarVisible(), sp.Ratio)
	}
}

func TestSplitPaneRatioClamped(t *testing.T) {
	sp := NewSplitPane(2)
	if sp.Ratio != 1 {
		t.Errorf("Ratio = %v, want 1", sp.Ratio)
	}
	sp.Widen()
	if sp.Ratio != 1 {
		t.Errorf("Ratio after Widen = %v, want 1", sp.Ratio)
	}
	sp.SetRatio(0.02)
	sp.Narrow()
	if sp.Ratio != 0 {
		t.Errorf("Ratio after Narrow = %v, want 0", sp.Ratio)
	}
}
