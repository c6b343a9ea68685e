package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/vidyasagar/docview/internal/ui"
)

// KeyMap defines all keybindings for docview.
type KeyMap struct {
	// Scrolling
	ScrollDown   key.Binding
	ScrollUp     key.Binding
	HalfPageDown key.Binding
	HalfPageUp   key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding

	// Navigation
	Back       key.Binding
	Forward    key.Binding
	Reload     key.Binding
	FollowLink key.Binding
	Home       key.Binding

	// Panels
	ToggleSidebar key.Binding
	FocusSwitch   key.Binding
	Search        key.Binding
	Recent        key.Binding
	WidenSidebar  key.Binding
	NarrowSidebar key.Binding

	// View
	DarkMode   key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	ZoomReset  key.Binding
	ReaderMode key.Binding
	YankCode   key.Binding

	// Modes
	CommandMode key.Binding
	Leader      key.Binding

	// Actions
	Quit key.Binding
	Help key.Binding
}

// DefaultKeyMap returns the default keybindings: the desktop shortcuts
// plus vim-style keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "scroll up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("d", "pgdown"),
			key.WithHelp("d/PgDn", "half page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("u", "pgup"),
			key.WithHelp("u/PgUp", "half page up"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("gg", "go to top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		Back: key.NewBinding(
			key.WithKeys("alt+left", "H"),
			key.WithHelp("Alt+←/H", "go back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("alt+right", "L"),
			key.WithHelp("Alt+→/L", "go forward"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r/F5", "reload document"),
		),
		FollowLink: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow link"),
		),
		Home: key.NewBinding(
			key.WithKeys("W"),
			key.WithHelp("W", "welcome page"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("Ctrl+b", "toggle sidebar"),
		),
		FocusSwitch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "switch tree/document"),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+f", "/"),
			key.WithHelp("Ctrl+f or /", "search docs"),
		),
		Recent: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+r", "recent files"),
		),
		WidenSidebar: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "widen sidebar"),
		),
		NarrowSidebar: key.NewBinding(
			key.WithKeys("<"),
			key.WithHelp("<", "narrow sidebar"),
		),
		DarkMode: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("Ctrl+d", "toggle dark mode"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		ZoomReset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset zoom"),
		),
		ReaderMode: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("Ctrl+e", "toggle reader mode"),
		),
		YankCode: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy first code sample"),
		),
		CommandMode: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command mode"),
		),
		Leader: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "shortcut palette"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// welcomeShortcuts lists the bindings advertised on the welcome page.
func (k KeyMap) welcomeShortcuts() []ui.Shortcut {
	var out []ui.Shortcut
	for _, b := range []key.Binding{
		k.Search, k.ToggleSidebar, k.DarkMode, k.Back, k.Forward,
		k.ZoomIn, k.ZoomOut, k.ZoomReset, k.Recent, k.Leader, k.Help,
	} {
		out = append(out, ui.Shortcut{Key: b.Help().Key, Desc: b.Help().Desc})
	}
	return out
}

// leaderGroups returns the shortcuts offered after the leader key.
func leaderGroups() []ui.LeaderGroup {
	return []ui.LeaderGroup{
		{
			Name: "Navigate",
			Icon: "🧭",
			Bindings: []ui.LeaderBinding{
				{Key: "b", Desc: "Back"},
				{Key: "f", Desc: "Forward"},
				{Key: "l", Desc: "Follow link"},
				{Key: "r", Desc: "Reload"},
				{Key: "w", Desc: "Welcome"},
			},
		},
		{
			Name: "Panels",
			Icon: "📁",
			Bindings: []ui.LeaderBinding{
				{Key: "t", Desc: "Sidebar"},
				{Key: "s", Desc: "Search"},
				{Key: "R", Desc: "Recent"},
				{Key: "o", Desc: "Open path"},
			},
		},
		{
			Name: "View",
			Icon: "👁",
			Bindings: []ui.LeaderBinding{
				{Key: "d", Desc: "Dark mode"},
				{Key: "+", Desc: "Zoom in"},
				{Key: "-", Desc: "Zoom out"},
				{Key: "0", Desc: "Reset zoom"},
				{Key: "e", Desc: "Reader mode"},
				{Key: "T", Desc: "Theme cycle"},
			},
		},
		{
			Name: "Tools",
			Icon: "🔧",
			Bindings: []ui.LeaderBinding{
				{Key: "y", Desc: "Copy code"},
				{Key: ":", Desc: "Command"},
				{Key: "?", Desc: "Help"},
			},
		},
	}
}
