package browser

import (
	"fmt"
	"slices"
	"testing"
)

func TestHistoryNew(t *testing.T) {
	h := NewHistory()

	if h.CanGoBack() || h.CanGoForward() {
		t.Error("New history should not allow back or forward")
	}
	if _, ok := h.Current(); ok {
		t.Error("New history should have no current entry")
	}
	if h.Index() != -1 {
		t.Errorf("Index = %d, want -1", h.Index())
	}
	if _, ok := h.Back(); ok {
		t.Error("Back on empty history should be a no-op")
	}
	if _, ok := h.Forward(); ok {
		t.Error("Forward on empty history should be a no-op")
	}
}

func TestHistoryTwoVisits(t *testing.T) {
	h := NewHistory()
	h.Push("/docs/A.html")
	h.Push("/docs/B.html")

	cur, ok := h.Current()
	if !ok || cur != "/docs/B.html" {
		t.Errorf("Current = %q, %v; want /docs/B.html", cur, ok)
	}
	if !h.CanGoBack() {
		t.Error("Should be able to go back")
	}
	if h.CanGoForward() {
		t.Error("Should not be able to go forward")
	}
}

func TestHistoryBackToStart(t *testing.T) {
	h := NewHistory()
	h.Push("a")
	h.Push("b")
	h.Push("c")

	if got, ok := h.Back(); !ok || got != "b" {
		t.Errorf("Back = %q, %v; want b", got, ok)
	}
	if got, ok := h.Back(); !ok || got != "a" {
		t.Errorf("Back = %q, %v; want a", got, ok)
	}
	if h.CanGoBack() {
		t.Error("Should not be able to go back past the first entry")
	}
	if got, ok := h.Back(); ok || got != "" {
		t.Errorf("Back at start = %q, %v; want no-op", got, ok)
	}
	if h.Index() != 0 {
		t.Errorf("Index = %d, want 0", h.Index())
	}

	if got, ok := h.Forward(); !ok || got != "b" {
		t.Errorf("Forward = %q, %v; want b", got, ok)
	}
}

func TestHistoryPushTruncatesForward(t *testing.T) {
	h := NewHistory()
	h.Push("a")
	h.Push("b")
	h.Back()
	h.Push("c")

	if got := h.Entries(); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("Entries = %v, want [a c]", got)
	}
	if h.CanGoForward() {
		t.Error("Forward branch should be discarded")
	}
	if cur, _ := h.Current(); cur != "c" {
		t.Errorf("Current = %q, want c", cur)
	}
}

func TestHistoryKeepsDuplicates(t *testing.T) {
	h := NewHistory()
	h.Push("a")
	h.Push("a")

	if h.Len() != 2 {
		t.Errorf("Len = %d, want 2", h.Len())
	}
	if got, ok := h.Back(); !ok || got != "a" {
		t.Errorf("Back = %q, %v; want a", got, ok)
	}
}

func TestHistoryAcceptsEmptyPath(t *testing.T) {
	h := NewHistory()
	h.Push("")

	cur, ok := h.Current()
	if !ok || cur != "" {
		t.Errorf("Current = %q, %v; want empty path present", cur, ok)
	}
}

func TestHistoryBounded(t *testing.T) {
	h := NewHistory()
	for i := 0; i < MaxHistory*3; i++ {
		h.Push(fmt.Sprintf("p%d", i))
		if h.Len() > MaxHistory {
			t.Fatalf("Len = %d after %d pushes, want <= %d", h.Len(), i+1, MaxHistory)
		}
		if cur, _ := h.Current(); cur != fmt.Sprintf("p%d", i) {
			t.Fatalf("Current = %q after pushing p%d", cur, i)
		}
	}

	entries := h.Entries()
	if entries[0] != fmt.Sprintf("p%d", MaxHistory*2) {
		t.Errorf("Oldest entry = %q, want p%d", entries[0], MaxHistory*2)
	}
	if h.Index() != MaxHistory-1 {
		t.Errorf("Index = %d, want %d", h.Index(), MaxHistory-1)
	}
}

func TestHistoryEvictionAfterTruncation(t *testing.T) {
	h := NewHistory()
	for i := 0; i < MaxHistory; i++ {
		h.Push(fmt.Sprintf("p%d", i))
	}
	// Step back once; the next push drops p49 and lands at the end.
	h.Back()
	h.Push("new")

	if h.Len() != MaxHistory {
		t.Errorf("Len = %d, want %d", h.Len(), MaxHistory)
	}
	if cur, _ := h.Current(); cur != "new" {
		t.Errorf("Current = %q, want new", cur)
	}
	if h.CanGoForward() {
		t.Error("Should not be able to go forward")
	}

	// At the bound with the cursor at the end, the oldest entry is evicted.
	h.Push("newer")
	entries := h.Entries()
	if h.Len() != MaxHistory || entries[0] != "p1" {
		t.Errorf("Len = %d, oldest = %q; want %d, p1", h.Len(), entries[0], MaxHistory)
	}
	if cur, _ := h.Current(); cur != "newer" {
		t.Errorf("Current = %q, want newer", cur)
	}
}

func TestHistoryEntriesIsCopy(t *testing.T) {
	h := NewHistory()
	h.Push("a")
	h.Entries()[0] = "mutated"

	if cur, _ := h.Current(); cur != "a" {
		t.Errorf("Current = %q, caller mutation leaked into history", cur)
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory()
	h.Push("a")
	h.Push("b")
	h.Clear()

	if h.Len() != 0 || h.Index() != -1 {
		t.Errorf("After Clear: Len = %d, Index = %d", h.Len(), h.Index())
	}
}
