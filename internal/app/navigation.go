package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/docview/internal/browser"
	"github.com/vidyasagar/docview/internal/docs"
	"github.com/vidyasagar/docview/internal/theme"
	"github.com/vidyasagar/docview/internal/ui"
)

// navKind says how a document load was triggered.
type navKind int

const (
	navNew     navKind = iota // selection, link or :open; recorded in history even if it fails
	navHistory                // back or forward; the cursor has already moved
	navReload                 // cache entry dropped, same position
	navRefresh                // re-layout of the current page
)

// pendingLoad remembers the load in flight.
type pendingLoad struct {
	path   string
	kind   navKind
	active bool
}

// docLoadedMsg is sent when a document has been read and rendered.
type docLoadedMsg struct {
	seq  int
	path string
	kind navKind
	page *browser.RenderedPage
	err  error
}

func loadTree(root string) tea.Cmd {
	return func() tea.Msg {
		node, err := docs.BuildTree(root)
		return treeLoadedMsg{root: root, node: node, err: err}
	}
}

// renderOptions returns the layout the current page should be rendered with.
func (m *Model) renderOptions() browser.RenderOptions {
	return browser.RenderOptions{
		Width:    m.viewport.Width(),
		MaxWidth: m.maxWidth,
		Zoom:     m.zoom,
		Dark:     m.dark,
	}
}

func pageKey(path string, opts browser.RenderOptions, reader bool) string {
	return fmt.Sprintf("%s|%d|%t|%t", path, browser.ContentWidth(opts), opts.Dark, reader)
}

// open starts loading path. The file is read through the content cache
// inside the returned command, off the update loop.
func (m *Model) open(path string, kind navKind) tea.Cmd {
	if path == "" {
		return nil
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if m.cancelLoad != nil {
		m.cancelLoad()
		m.cancelLoad = nil
	}
	m.loadSeq++
	seq := m.loadSeq
	m.pending = pendingLoad{path: path, kind: kind, active: true}

	if kind == navReload {
		m.cache.Invalidate(path)
		prefix := path + "|"
		for _, k := range m.pageCache.Keys() {
			if strings.HasPrefix(k, prefix) {
				m.pageCache.Remove(k)
			}
		}
	}

	opts := m.renderOptions()
	readerMode := m.readerMode
	key := pageKey(path, opts, readerMode)

	if page, ok := m.pageCache.Get(key); ok {
		m.logger.Debug("rendered page cache hit", "path", path)
		return func() tea.Msg {
			return docLoadedMsg{seq: seq, path: path, kind: kind, page: page}
		}
	}

	if kind != navRefresh {
		m.statusBar.SetLoading(true)
		m.statusBar.SetMessage("")
	}

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	m.cancelLoad = cancel

	cache := m.cache
	pageCache := m.pageCache
	logger := m.logger

	return func() tea.Msg {
		defer cancel()

		logger.Debug("loading document", "path", path, "cached", cache.Has(path))
		text, err := cache.Get(ctx, path)
		if err != nil {
			logger.Warn("document read failed", "path", path, "error", err)
			return docLoadedMsg{seq: seq, path: path, kind: kind, err: err}
		}

		extract := browser.Extract
		if readerMode {
			extract = browser.ExtractReadable
		}
		article, err := extract(path, text)
		if err != nil {
			return docLoadedMsg{seq: seq, path: path, kind: kind, err: err}
		}

		page := browser.Render(article, opts)
		pageCache.Add(key, page)
		logger.Debug("document rendered", "path", path, "links", len(page.Links), "cached_documents", cache.Len())

		return docLoadedMsg{seq: seq, path: path, kind: kind, page: page}
	}
}

// handleDocLoaded shows a finished load unless a newer one has started.
func (m Model) handleDocLoaded(msg docLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.loadSeq {
		return m, nil
	}
	m.pending = pendingLoad{}
	m.cancelLoad = nil
	m.statusBar.SetLoading(false)

	// A failed visit stays in history so back leaves it and reload
	// retries it. Only documents that were shown become recent.
	if msg.kind == navNew {
		m.history.Push(msg.path)
	}
	if msg.err != nil {
		m.showLoadError(msg.path, msg.err)
		return m, nil
	}
	if msg.kind != navRefresh {
		m.recent.Record(msg.path)
	}

	m.page = msg.page
	m.content = contentPage
	if msg.kind == navRefresh {
		m.viewport.Rewrap(msg.page.Content)
	} else {
		m.viewport.SetContent(msg.page.Content)
		m.statusBar.SetMessage("Loaded: " + filepath.Base(msg.path))
		m.revealInTree(msg.path)
	}
	m.statusBar.SetTitle(msg.page.Title)
	if m.recentPanel.IsVisible() {
		m.recentPanel.SetItems(m.recentItems())
	}
	m.syncStatusBar()
	return m, nil
}

// showLoadError replaces the document with an error placeholder.
func (m *Model) showLoadError(path string, err error) {
	t := theme.Current

	errStyle := lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true).
		Padding(2, 4)
	detailStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 4)

	reason := err.Error()
	var re *browser.ReadError
	if errors.As(err, &re) {
		reason = re.Err.Error()
	}

	m.page = nil
	m.content = contentError
	m.viewport.SetContent(errStyle.Render("⚠ Error Loading File") + "\n\n" +
		detailStyle.Render(fmt.Sprintf("File: %s\nError: %s", path, reason)))
	m.statusBar.SetTitle("")
	m.statusBar.SetError("Error loading file: " + filepath.Base(path))
	m.syncStatusBar()
}

// refresh re-lays out whatever the document area shows. A load still in
// flight is restarted so it picks up the new layout.
func (m *Model) refresh() tea.Cmd {
	if m.pending.active {
		return m.open(m.pending.path, m.pending.kind)
	}
	switch m.content {
	case contentPage:
		if m.page != nil {
			return m.open(m.page.Path, navRefresh)
		}
	case contentHelp:
		m.showHelp()
	}
	return nil
}

func (m *Model) goBack() tea.Cmd {
	path, ok := m.history.Back()
	if !ok {
		m.statusBar.SetMessage("No previous document")
		return nil
	}
	return m.open(path, navHistory)
}

func (m *Model) goForward() tea.Cmd {
	path, ok := m.history.Forward()
	if !ok {
		m.statusBar.SetMessage("No next document")
		return nil
	}
	return m.open(path, navHistory)
}

func (m *Model) reload() tea.Cmd {
	path, ok := m.history.Current()
	if m.page != nil {
		path, ok = m.page.Path, true
	}
	if !ok {
		m.statusBar.SetMessage("Nothing to reload")
		return nil
	}
	return m.open(path, navReload)
}

// followLink opens the numbered link of the current page.
func (m *Model) followLink(input string) tea.Cmd {
	if m.page == nil {
		m.statusBar.SetMessage("No page loaded")
		return nil
	}

	num, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		m.statusBar.SetError(fmt.Sprintf("Invalid link number: %s", input))
		return nil
	}

	for _, link := range m.page.Links {
		if link.Index != num {
			continue
		}
		if link.Target == "" {
			m.statusBar.SetMessage(fmt.Sprintf("External link not followed: %s", link.Href))
			return nil
		}
		return m.open(link.Target, navNew)
	}

	m.statusBar.SetError(fmt.Sprintf("Link [%d] not found", num))
	return nil
}

// showWelcome goes back to the welcome page without touching history.
func (m *Model) showWelcome() {
	m.page = nil
	m.content = contentWelcome
	m.viewport.ShowWelcome()
	m.statusBar.SetTitle("")
	m.statusBar.SetMessage("Welcome - Ready to browse documentation")
	m.syncStatusBar()
}

// handleTreeLoaded installs a freshly scanned docs tree.
func (m Model) handleTreeLoaded(msg treeLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error("scanning docs failed", "root", msg.root, "error", msg.err)
		m.statusBar.SetError(fmt.Sprintf("Cannot read docs: %s", msg.err))
		return m, nil
	}

	m.tree = msg.node
	m.docsRoot = msg.node.Path
	m.expanded = make(map[string]bool)
	m.sidebar.SetTitle(fmt.Sprintf("📚 %s (%d)", msg.node.Name, docs.Count(msg.node)))
	m.logger.Info("docs loaded", "root", m.docsRoot, "documents", docs.Count(msg.node))

	if m.query != "" {
		m.applySearch(m.query)
	} else {
		m.refreshTree()
	}
	if m.page != nil {
		m.revealInTree(m.page.Path)
	}
	return m, nil
}

// refreshTree rebuilds the sidebar rows from the tree and expansion state.
func (m *Model) refreshTree() {
	if m.tree == nil {
		m.sidebar.SetItems(nil)
		return
	}
	rows := m.tree.Flatten(m.expanded)
	items := make([]ui.ListItem, 0, len(rows))
	for _, n := range rows {
		items = append(items, ui.ListItem{
			Label: n.Name,
			Value: n.Path,
			Depth: n.Depth - 1,
			IsDir: !n.IsDoc,
			Open:  m.expanded[n.Path],
		})
	}
	m.sidebar.ReplaceItems(items)
}

// revealInTree expands the parents of path and moves the cursor onto it.
func (m *Model) revealInTree(path string) {
	if m.tree == nil || m.query != "" || docs.Find(m.tree, path) == nil {
		return
	}
	for dir := filepath.Dir(path); dir != m.docsRoot && len(dir) > len(m.docsRoot); dir = filepath.Dir(dir) {
		m.expanded[dir] = true
	}
	m.refreshTree()
	m.sidebar.Select(path)
}

// activateTreeItem opens the selected document or folds a directory.
func (m *Model) activateTreeItem() tea.Cmd {
	item := m.sidebar.Selected()
	if item == nil {
		return nil
	}
	if item.IsDir {
		m.expanded[item.Value] = !m.expanded[item.Value]
		m.refreshTree()
		return nil
	}
	return m.open(item.Value, navNew)
}

// collapseTreeItem folds the selected directory, or the one containing the
// selected document.
func (m *Model) collapseTreeItem() {
	item := m.sidebar.Selected()
	if item == nil || m.query != "" {
		return
	}
	target := item.Value
	if !item.IsDir || !m.expanded[target] {
		target = filepath.Dir(item.Value)
	}
	if target == m.docsRoot || !m.expanded[target] {
		return
	}
	m.expanded[target] = false
	m.refreshTree()
	m.sidebar.Select(target)
}

func (m *Model) toggleSidebar() tea.Cmd {
	m.splitPane.ToggleSidebar()
	if !m.splitPane.SidebarVisible() && (m.mode == ModeTree || m.mode == ModeSearch) {
		m.searchBar.Blur()
		m.setMode(ModeNormal)
	}
	m.layout()
	return m.refresh()
}

// focusSearch moves the keyboard to the search bar, showing the sidebar.
func (m *Model) focusSearch() tea.Cmd {
	var cmds []tea.Cmd
	if !m.splitPane.SidebarVisible() {
		m.splitPane.ToggleSidebar()
		if !m.splitPane.SidebarVisible() {
			// A zero divider position hides the sidebar for good.
			m.splitPane.SetRatio(0.2)
		}
		m.layout()
		cmds = append(cmds, m.refresh())
	}
	m.hideRecent()
	m.setMode(ModeSearch)
	cmds = append(cmds, m.searchBar.Focus())
	return tea.Batch(cmds...)
}

// applySearch filters the sidebar to documents matching q; an empty query
// restores the tree.
func (m *Model) applySearch(q string) {
	q = strings.TrimSpace(q)
	if q == m.query && q != "" {
		return
	}
	m.query = q
	if q == "" {
		if m.tree != nil {
			m.sidebar.SetTitle(fmt.Sprintf("📚 %s (%d)", m.tree.Name, docs.Count(m.tree)))
		}
		m.refreshTree()
		m.statusBar.SetMessage("")
		return
	}

	results := docs.Search(m.tree, q)
	items := make([]ui.ListItem, 0, len(results))
	for _, n := range results {
		rel, err := filepath.Rel(m.docsRoot, filepath.Dir(n.Path))
		if err != nil || rel == "." {
			rel = ""
		}
		items = append(items, ui.ListItem{
			Label:  n.Name,
			Detail: filepath.ToSlash(rel),
			Value:  n.Path,
		})
	}
	m.sidebar.SetItems(items)
	m.sidebar.SetTitle(fmt.Sprintf("🔍 %d results", len(results)))
	m.statusBar.SetMessage(fmt.Sprintf("Found %d results for: %s", len(results), q))
	m.logger.Debug("search", "query", q, "results", len(results))
}

func (m *Model) clearSearch() {
	m.searchBar.Reset()
	m.applySearch("")
	if m.page != nil {
		m.revealInTree(m.page.Path)
	}
}

// recentItems lists the recent files, newest first.
func (m *Model) recentItems() []ui.ListItem {
	paths := m.recent.Paths()
	items := make([]ui.ListItem, 0, len(paths))
	i := 0
	for name := range m.recent.DisplayNames() {
		items = append(items, ui.ListItem{
			Label:  name,
			Detail: filepath.Base(filepath.Dir(paths[i])),
			Value:  paths[i],
		})
		i++
	}
	return items
}

func (m *Model) showRecent() tea.Cmd {
	m.recentPanel.SetItems(m.recentItems())
	m.recentPanel.Show()
	m.searchBar.Blur()
	m.setMode(ModeRecent)
	if !m.splitPane.SidebarVisible() {
		m.splitPane.ToggleSidebar()
		m.layout()
		return m.refresh()
	}
	return nil
}

func (m *Model) hideRecent() {
	if !m.recentPanel.IsVisible() {
		return
	}
	m.recentPanel.Hide()
	if m.mode == ModeRecent {
		m.setMode(ModeNormal)
	}
}
