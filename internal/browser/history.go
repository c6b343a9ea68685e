package browser

// MaxHistory is the number of visits kept before the oldest is evicted.
const MaxHistory = 50

// History is a linear back/forward visit list. Recording a visit while
// the cursor is behind the newest entry discards the abandoned forward
// branch, like a web browser.
type History struct {
	entries []string
	pos     int // -1 when empty
}

// NewHistory creates an empty navigation history.
func NewHistory() *History {
	return &History{
		entries: nil,
		pos:     -1,
	}
}

// Push records a visit to path, truncating any forward entries.
//
// When the bound is exceeded the oldest entry is dropped and the cursor is
// left where it is, which still points at the new last entry.
func (h *History) Push(path string) {
	if h.pos < len(h.entries)-1 {
		h.entries = h.entries[:h.pos+1]
	}
	h.entries = append(h.entries, path)
	if len(h.entries) > MaxHistory {
		h.entries = h.entries[1:]
		return
	}
	h.pos++
}

// Back moves one step back in history. Returns the path and true if possible.
func (h *History) Back() (string, bool) {
	if !h.CanGoBack() {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Forward moves one step forward in history. Returns the path and true if possible.
func (h *History) Forward() (string, bool) {
	if !h.CanGoForward() {
		return "", false
	}
	h.pos++
	return h.entries[h.pos], true
}

// Current returns the path under the cursor, or false if history is empty.
func (h *History) Current() (string, bool) {
	if h.pos < 0 || h.pos >= len(h.entries) {
		return "", false
	}
	return h.entries[h.pos], true
}

// CanGoBack reports whether there is a previous entry.
func (h *History) CanGoBack() bool {
	return h.pos > 0
}

// CanGoForward reports whether there is a next entry.
func (h *History) CanGoForward() bool {
	return h.pos < len(h.entries)-1
}

// Len returns the total number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Index returns the cursor position, -1 when empty.
func (h *History) Index() int {
	return h.pos
}

// Entries returns a copy of the visit list, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear resets the history.
func (h *History) Clear() {
	h.entries = nil
	h.pos = -1
}
