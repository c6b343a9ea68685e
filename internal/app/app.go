package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vidyasagar/docview/internal/browser"
	"github.com/vidyasagar/docview/internal/docs"
	"github.com/vidyasagar/docview/internal/storage"
	"github.com/vidyasagar/docview/internal/theme"
	"github.com/vidyasagar/docview/internal/ui"
)

// Mode represents the current input mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeTree         // sidebar focused
	ModeSearch       // search bar focused
	ModeCommand      // command bar active
	ModeFollow       // link follow mode
	ModeRecent       // recent files panel active
	ModeLeader       // leader key palette active
)

func (md Mode) String() string {
	switch md {
	case ModeTree:
		return "TREE"
	case ModeSearch:
		return "SEARCH"
	case ModeCommand:
		return "COMMAND"
	case ModeFollow:
		return "FOLLOW"
	case ModeRecent:
		return "RECENT"
	case ModeLeader:
		return "LEADER"
	default:
		return "NORMAL"
	}
}

// contentKind is what the document area currently shows.
type contentKind int

const (
	contentWelcome contentKind = iota
	contentPage
	contentHelp
	contentError
)

const (
	pageCacheSize = 50
	loadTimeout   = 30 * time.Second
	leaderTimeout = 2 * time.Second
)

// Options configures a new Model.
type Options struct {
	DocsRoot    string // directory shown in the sidebar, may be empty
	StartFile   string // document opened on startup, may be empty
	Preferences storage.Preferences
	MaxWidth    int  // text column at 100% zoom
	ReaderMode  bool // start with readability extraction
	Reader      browser.Reader
	Clipboard   func(string) error
	Logger      *slog.Logger
}

// Model is the top-level bubbletea model for docview.
type Model struct {
	// UI components
	statusBar   ui.StatusBar
	commandBar  ui.CommandBar
	searchBar   ui.SearchBar
	splitPane   ui.SplitPane
	viewport    ui.PageViewport
	sidebar     ui.ListPanel
	recentPanel ui.ListPanel
	leaderPanel ui.LeaderPanel

	keys     KeyMap
	mode     Mode
	width    int
	height   int
	lastGKey bool // for "gg" detection
	ready    bool

	// Documents
	history    *browser.History
	recent     *browser.RecentFiles
	cache      *browser.ContentCache
	pageCache  *lru.Cache[string, *browser.RenderedPage] // rendered pages by path and layout
	page       *browser.RenderedPage
	content    contentKind
	loadSeq    int
	pending    pendingLoad
	cancelLoad context.CancelFunc

	// Doc tree
	docsRoot string
	tree     *docs.Node
	expanded map[string]bool
	query    string

	// View settings
	zoom       float64
	dark       bool
	readerMode bool
	maxWidth   int

	// Carried through to the saved preferences.
	maximized    bool
	windowWidth  float64
	windowHeight float64

	startFile string
	clipboard func(string) error
	logger    *slog.Logger
}

// treeLoadedMsg is sent when the docs directory has been scanned.
type treeLoadedMsg struct {
	root string
	node *docs.Node
	err  error
}

// openDocMsg asks the model to open a document as a new navigation.
type openDocMsg struct {
	path string
}

// leaderTimeoutMsg is sent when the leader key palette times out.
type leaderTimeoutMsg struct{}

// New creates a new docview Model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	reader := opts.Reader
	if reader == nil {
		reader = browser.NewFileReader()
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	// Rendered pages make back/forward and re-layout instant.
	pageCache, _ := lru.New[string, *browser.RenderedPage](pageCacheSize)

	prefs := opts.Preferences
	keys := DefaultKeyMap()

	m := Model{
		statusBar:   ui.NewStatusBar(),
		commandBar:  ui.NewCommandBar(commandNames...),
		searchBar:   ui.NewSearchBar(),
		splitPane:   ui.NewSplitPane(prefs.DividerPosition),
		viewport:    ui.NewPageViewport(opts.DocsRoot, keys.welcomeShortcuts()),
		sidebar:     ui.NewListPanel("📚 Documentation", "Enter:open  h/l:fold  /:search  Esc:back", "No documentation loaded"),
		recentPanel: ui.NewListPanel("🕘 Recent Files", "j/k:move  Enter:open  Esc:close", "No recent files"),
		leaderPanel: ui.NewLeaderPanel(leaderGroups()),
		keys:        keys,
		mode:        ModeNormal,

		history:   browser.NewHistory(),
		recent:    browser.NewRecentFiles(prefs.RecentFiles...),
		cache:     browser.NewContentCache(reader),
		pageCache: pageCache,

		docsRoot: opts.DocsRoot,
		expanded: make(map[string]bool),

		zoom:       browser.ClampZoom(prefs.Zoom),
		dark:       prefs.DarkMode,
		readerMode: opts.ReaderMode,
		maxWidth:   opts.MaxWidth,

		maximized:    prefs.Maximized,
		windowWidth:  prefs.WindowWidth,
		windowHeight: prefs.WindowHeight,

		startFile: opts.StartFile,
		clipboard: copyFn,
		logger:    logger,
	}

	theme.SetDark(m.dark)
	m.sidebar.Show()
	m.statusBar.SetZoom(m.zoom)
	m.statusBar.SetReaderMode(m.readerMode)
	m.statusBar.SetMessage("Welcome - Ready to browse documentation")

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.docsRoot != "" {
		cmds = append(cmds, loadTree(m.docsRoot))
	}
	if m.startFile != "" {
		path := m.startFile
		cmds = append(cmds, func() tea.Msg { return openDocMsg{path: path} })
	}
	return tea.Batch(cmds...)
}

// Preferences returns the state to persist between sessions.
func (m Model) Preferences() storage.Preferences {
	return storage.Preferences{
		DarkMode:        m.dark,
		Zoom:            m.zoom,
		DividerPosition: m.splitPane.Ratio,
		Maximized:       m.maximized,
		WindowWidth:     m.windowWidth,
		WindowHeight:    m.windowHeight,
		RecentFiles:     m.recent.Paths(),
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		cmd := m.refresh()
		return m, cmd

	case treeLoadedMsg:
		return m.handleTreeLoaded(msg)

	case openDocMsg:
		cmd := m.open(msg.path, navNew)
		return m, cmd

	case docLoadedMsg:
		return m.handleDocLoaded(msg)

	case leaderTimeoutMsg:
		if m.mode == ModeLeader {
			m.leaderPanel.Hide()
			m.setMode(ModeNormal)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Forward mouse and other messages to the document.
	vp, cmd := m.viewport.Update(msg)
	m.viewport = *vp
	m.syncStatusBar()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Loading docview..."
	}

	// Layout:
	// [search bar | document]
	// [tree       |         ]
	// [status bar]
	// [command bar] (if active)

	list := m.sidebar.View()
	if m.recentPanel.IsVisible() {
		list = m.recentPanel.View()
	}
	sidebar := lipgloss.JoinVertical(lipgloss.Left, m.searchBar.View(), list)

	sections := []string{
		m.splitPane.Render(sidebar, m.viewport.View()),
		m.statusBar.View(),
	}
	if m.commandBar.IsActive() {
		sections = append(sections, m.commandBar.View())
	}

	result := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Overlay the leader palette if active.
	if m.leaderPanel.IsVisible() {
		result = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.leaderPanel.View(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	return result
}

// layout recalculates dimensions for all components.
func (m *Model) layout() {
	m.statusBar.SetWidth(m.width)
	m.commandBar.SetWidth(m.width)

	bodyHeight := m.height - 1 // status bar
	if m.commandBar.IsActive() {
		bodyHeight--
	}
	bodyHeight = max(bodyHeight, 1)

	m.splitPane.SetSize(m.width, bodyHeight)
	sw := m.splitPane.SidebarWidth()
	m.searchBar.SetWidth(sw)

	listHeight := max(bodyHeight-m.searchBar.Height(), 1)
	m.sidebar.SetSize(sw, listHeight)
	m.recentPanel.SetSize(sw, listHeight)

	m.viewport.SetSize(m.splitPane.MainWidth(), bodyHeight)
}

// setMode switches the input mode and the focus that goes with it.
func (m *Model) setMode(md Mode) {
	m.mode = md
	m.statusBar.SetMode(md.String())
	m.sidebar.SetFocused(md == ModeTree)
	m.recentPanel.SetFocused(md == ModeRecent)
}

// handleKeyMsg processes key events based on current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always allow Ctrl+C to quit.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchMode(msg)
	case ModeCommand, ModeFollow:
		return m.handleCommandMode(msg)
	case ModeRecent:
		return m.handleRecentMode(msg)
	case ModeLeader:
		return m.handleLeaderMode(msg)
	case ModeTree:
		return m.handleTreeMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleGlobalKey runs the bindings shared by the document and the tree.
// It reports false when msg is not one of them.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Leader):
		m.leaderPanel.Show()
		m.setMode(ModeLeader)
		return m, tea.Tick(leaderTimeout, func(time.Time) tea.Msg {
			return leaderTimeoutMsg{}
		}), true

	case key.Matches(msg, m.keys.Back):
		cmd := m.goBack()
		return m, cmd, true

	case key.Matches(msg, m.keys.Forward):
		cmd := m.goForward()
		return m, cmd, true

	case key.Matches(msg, m.keys.ToggleSidebar):
		cmd := m.toggleSidebar()
		return m, cmd, true

	case key.Matches(msg, m.keys.Search):
		cmd := m.focusSearch()
		return m, cmd, true

	case key.Matches(msg, m.keys.Recent):
		cmd := m.showRecent()
		return m, cmd, true

	case key.Matches(msg, m.keys.DarkMode):
		cmd := m.toggleDark()
		return m, cmd, true

	case key.Matches(msg, m.keys.ReaderMode):
		cmd := m.toggleReader()
		return m, cmd, true

	case key.Matches(msg, m.keys.WidenSidebar):
		m.splitPane.Widen()
		m.layout()
		cmd := m.refresh()
		return m, cmd, true

	case key.Matches(msg, m.keys.NarrowSidebar):
		m.splitPane.Narrow()
		m.layout()
		cmd := m.refresh()
		return m, cmd, true

	case key.Matches(msg, m.keys.CommandMode):
		m.setMode(ModeCommand)
		cmd := m.commandBar.Open(ui.CommandEx)
		m.layout()
		return m, cmd, true

	case key.Matches(msg, m.keys.Help):
		m.showHelp()
		return m, nil, true
	}
	return m, nil, false
}

// handleNormalMode processes keys while reading a document.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// gg detection: first "g" sets flag, second "g" goes to top.
	if msg.String() == "g" {
		if m.lastGKey {
			m.lastGKey = false
			m.viewport.GotoTop()
			m.syncStatusBar()
			return m, nil
		}
		m.lastGKey = true
		return m, nil
	}
	m.lastGKey = false

	if next, cmd, ok := m.handleGlobalKey(msg); ok {
		return next, cmd
	}

	switch {
	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.GotoTop):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.GotoBottom):
		m.viewport.GotoBottom()

	case key.Matches(msg, m.keys.FocusSwitch):
		if m.splitPane.SidebarVisible() {
			m.setMode(ModeTree)
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		cmd := m.reload()
		return m, cmd

	case key.Matches(msg, m.keys.FollowLink):
		if m.page == nil || len(m.page.Links) == 0 {
			m.statusBar.SetMessage("No links on this page")
			return m, nil
		}
		m.setMode(ModeFollow)
		cmd := m.commandBar.Open(ui.CommandFollow)
		m.layout()
		return m, cmd

	case key.Matches(msg, m.keys.Home):
		m.showWelcome()
		return m, nil

	case key.Matches(msg, m.keys.ZoomIn):
		cmd := m.setZoom(m.zoom + browser.ZoomStep)
		return m, cmd
	case key.Matches(msg, m.keys.ZoomOut):
		cmd := m.setZoom(m.zoom - browser.ZoomStep)
		return m, cmd
	case key.Matches(msg, m.keys.ZoomReset):
		cmd := m.setZoom(browser.DefaultZoom)
		return m, cmd

	case key.Matches(msg, m.keys.YankCode):
		m.yankCode("")
		return m, nil

	default:
		vp, cmd := m.viewport.Update(msg)
		m.viewport = *vp
		m.syncStatusBar()
		return m, cmd
	}

	m.syncStatusBar()
	return m, nil
}

// handleTreeMode processes keys while the sidebar has focus.
func (m Model) handleTreeMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.sidebar.CursorDown()
		return m, nil
	case "k", "up":
		m.sidebar.CursorUp()
		return m, nil
	case "g":
		m.sidebar.HandleGKey()
		return m, nil
	case "G":
		m.sidebar.GotoBottom()
		return m, nil
	case "d", "pgdown":
		m.sidebar.HalfPageDown()
		return m, nil
	case "u", "pgup":
		m.sidebar.HalfPageUp()
		return m, nil
	case "enter", "l", "right":
		cmd := m.activateTreeItem()
		return m, cmd
	case "h", "left":
		m.collapseTreeItem()
		return m, nil
	case "tab":
		m.setMode(ModeNormal)
		return m, nil
	case "esc":
		if m.query != "" {
			m.clearSearch()
			return m, nil
		}
		m.setMode(ModeNormal)
		return m, nil
	}
	m.sidebar.ResetGKey()

	if next, cmd, ok := m.handleGlobalKey(msg); ok {
		return next, cmd
	}
	return m, nil
}

// handleSearchMode processes keys while typing a search query.
func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchBar.Blur()
		m.clearSearch()
		m.setMode(ModeNormal)
		return m, nil

	case tea.KeyEnter, tea.KeyDown, tea.KeyTab:
		m.searchBar.Blur()
		m.setMode(ModeTree)
		return m, nil
	}

	sb, cmd := m.searchBar.Update(msg)
	m.searchBar = *sb
	m.applySearch(m.searchBar.Value())
	return m, cmd
}

// handleRecentMode processes keys when the recent files panel is active.
func (m Model) handleRecentMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.recentPanel.CursorDown()
	case "k", "up":
		m.recentPanel.CursorUp()
	case "g":
		m.recentPanel.HandleGKey()
		return m, nil
	case "G":
		m.recentPanel.GotoBottom()
	case "enter":
		item := m.recentPanel.Selected()
		m.hideRecent()
		if item != nil {
			cmd := m.open(item.Value, navNew)
			return m, cmd
		}
	case "esc", "q", "ctrl+r":
		m.hideRecent()
	}
	m.recentPanel.ResetGKey()
	return m, nil
}

// handleCommandMode processes keys in command/follow mode.
func (m Model) handleCommandMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.commandBar.Close()
		m.setMode(ModeNormal)
		m.layout()
		return m, nil

	case tea.KeyEnter:
		result := m.commandBar.Submit()
		m.setMode(ModeNormal)
		m.layout()
		return m.handleCommandResult(result)
	}

	cb, cmd := m.commandBar.Update(msg)
	m.commandBar = *cb
	return m, cmd
}

// handleCommandResult processes a submitted command.
func (m Model) handleCommandResult(result ui.CommandResult) (tea.Model, tea.Cmd) {
	switch result.Type {
	case ui.CommandEx:
		return m.executeCommand(result.Value)
	case ui.CommandFollow:
		cmd := m.followLink(result.Value)
		return m, cmd
	}
	return m, nil
}

// handleLeaderMode processes keys when the leader palette is active.
// Each key maps to a specific action, then returns to normal mode.
func (m Model) handleLeaderMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.leaderPanel.Hide()
	m.setMode(ModeNormal)

	switch msg.String() {
	case "b":
		cmd := m.goBack()
		return m, cmd
	case "f":
		cmd := m.goForward()
		return m, cmd
	case "l":
		if m.page != nil && len(m.page.Links) > 0 {
			m.setMode(ModeFollow)
			cmd := m.commandBar.Open(ui.CommandFollow)
			m.layout()
			return m, cmd
		}
		m.statusBar.SetMessage("No links on this page")
	case "r":
		cmd := m.reload()
		return m, cmd
	case "w":
		m.showWelcome()
	case "t":
		cmd := m.toggleSidebar()
		return m, cmd
	case "s":
		cmd := m.focusSearch()
		return m, cmd
	case "R":
		cmd := m.showRecent()
		return m, cmd
	case "o":
		m.setMode(ModeCommand)
		cmd := m.commandBar.Open(ui.CommandEx)
		m.commandBar.SetValue("open ")
		m.layout()
		return m, cmd
	case "d":
		cmd := m.toggleDark()
		return m, cmd
	case "+", "=":
		cmd := m.setZoom(m.zoom + browser.ZoomStep)
		return m, cmd
	case "-":
		cmd := m.setZoom(m.zoom - browser.ZoomStep)
		return m, cmd
	case "0":
		cmd := m.setZoom(browser.DefaultZoom)
		return m, cmd
	case "e":
		cmd := m.toggleReader()
		return m, cmd
	case "T":
		cmd := m.cycleTheme()
		return m, cmd
	case "y":
		m.yankCode("")
	case ":":
		m.setMode(ModeCommand)
		cmd := m.commandBar.Open(ui.CommandEx)
		m.layout()
		return m, cmd
	case "?":
		m.showHelp()
	}
	return m, nil
}

// syncStatusBar refreshes the parts of the status bar derived from the view.
func (m *Model) syncStatusBar() {
	m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())
	m.statusBar.SetZoom(m.zoom)
	m.statusBar.SetReaderMode(m.readerMode)
	if m.content == contentPage && m.page != nil {
		m.statusBar.SetLinkCount(len(m.page.Links))
	} else {
		m.statusBar.SetLinkCount(0)
	}
}
