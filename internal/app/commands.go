package app

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/docview/internal/browser"
	"github.com/vidyasagar/docview/internal/theme"
)

// commandNames are offered for tab completion in the command bar.
var commandNames = []string{
	"back", "clearrecent", "dark", "divider", "docs", "forward", "help",
	"home", "open", "quit", "reader", "recent", "reload", "theme",
	"welcome", "yank", "zoom",
}

// executeCommand handles :commands.
func (m Model) executeCommand(cmd string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return m, nil
	}
	arg := strings.Join(parts[1:], " ")

	switch parts[0] {
	case "q", "quit":
		return m, tea.Quit

	case "o", "open":
		if arg == "" {
			m.statusBar.SetMessage("Usage: :open <path>")
			return m, nil
		}
		path := m.resolvePath(arg)
		info, err := os.Stat(path)
		if err != nil {
			m.statusBar.SetError(fmt.Sprintf("No such file: %s", arg))
			return m, nil
		}
		if info.IsDir() {
			m.statusBar.SetError(fmt.Sprintf("%s is a directory, use :docs to browse it", arg))
			return m, nil
		}
		c := m.open(path, navNew)
		return m, c

	case "b", "back":
		c := m.goBack()
		return m, c
	case "f", "forward":
		c := m.goForward()
		return m, c
	case "reload":
		c := m.reload()
		return m, c

	case "zoom":
		z, ok := parseZoom(arg, m.zoom)
		if !ok {
			m.statusBar.SetMessage("Usage: :zoom <percent|in|out|reset>")
			return m, nil
		}
		c := m.setZoom(z)
		return m, c

	case "theme":
		if arg == "" {
			m.statusBar.SetMessage(fmt.Sprintf("Current: %s | Available: %s", theme.Current.Name, strings.Join(theme.List(), ", ")))
			return m, nil
		}
		if !theme.Set(arg) {
			m.statusBar.SetMessage(fmt.Sprintf("Unknown theme: %s (available: %s)", arg, strings.Join(theme.List(), ", ")))
			return m, nil
		}
		m.dark = theme.IsDark()
		m.statusBar.SetMessage(fmt.Sprintf("Theme: %s", arg))
		c := m.refresh()
		return m, c

	case "dark":
		c := m.toggleDark()
		return m, c
	case "reader":
		c := m.toggleReader()
		return m, c

	case "recent":
		c := m.showRecent()
		return m, c
	case "clearrecent":
		m.recent.Clear()
		if m.recentPanel.IsVisible() {
			m.recentPanel.SetItems(nil)
		}
		m.statusBar.SetMessage("Recent files cleared")

	case "yank", "y":
		m.yankCode(arg)

	case "docs":
		if arg == "" {
			m.statusBar.SetMessage("Usage: :docs <directory>")
			return m, nil
		}
		dir := expandHome(arg)
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		m.statusBar.SetMessage(fmt.Sprintf("Loading %s...", dir))
		return m, loadTree(dir)

	case "divider":
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			m.statusBar.SetMessage("Usage: :divider <0.0-1.0>")
			return m, nil
		}
		m.splitPane.SetRatio(v)
		m.layout()
		m.statusBar.SetMessage(fmt.Sprintf("Divider: %.2f", m.splitPane.Ratio))
		c := m.refresh()
		return m, c

	case "help":
		m.showHelp()
	case "welcome", "home":
		m.showWelcome()

	default:
		m.statusBar.SetMessage(fmt.Sprintf("Unknown command: %s", parts[0]))
	}

	return m, nil
}

// resolvePath interprets p relative to the docs root, falling back to the
// working directory.
func (m *Model) resolvePath(p string) string {
	p = expandHome(p)
	if filepath.IsAbs(p) {
		return p
	}
	if m.docsRoot != "" {
		candidate := filepath.Join(m.docsRoot, p)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}

// parseZoom reads a :zoom argument: a percentage or in/out/reset.
func parseZoom(arg string, current float64) (float64, bool) {
	switch arg {
	case "in", "+":
		return current + browser.ZoomStep, true
	case "out", "-":
		return current - browser.ZoomStep, true
	case "reset", "0":
		return browser.DefaultZoom, true
	}
	pct, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
	if err != nil || pct <= 0 {
		return 0, false
	}
	return pct / 100, true
}

// setZoom applies a zoom level, snapped to 10% steps, and re-renders.
func (m *Model) setZoom(z float64) tea.Cmd {
	z = browser.ClampZoom(math.Round(z*10) / 10)
	if z == m.zoom {
		m.statusBar.SetMessage(fmt.Sprintf("Zoom: %d%%", int(math.Round(z*100))))
		return nil
	}
	m.zoom = z
	m.statusBar.SetZoom(z)
	m.statusBar.SetMessage(fmt.Sprintf("Zoom: %d%%", int(math.Round(z*100))))
	return m.refresh()
}

func (m *Model) toggleDark() tea.Cmd {
	m.dark = !m.dark
	theme.SetDark(m.dark)
	if m.dark {
		m.statusBar.SetMessage("Dark mode on")
	} else {
		m.statusBar.SetMessage("Dark mode off")
	}
	return m.refresh()
}

func (m *Model) toggleReader() tea.Cmd {
	m.readerMode = !m.readerMode
	m.statusBar.SetReaderMode(m.readerMode)
	if m.readerMode {
		m.statusBar.SetMessage("Reader mode on")
	} else {
		m.statusBar.SetMessage("Reader mode off")
	}
	return m.refresh()
}

// cycleTheme switches to the next available theme.
func (m *Model) cycleTheme() tea.Cmd {
	themes := theme.List()
	if len(themes) == 0 {
		return nil
	}
	next := themes[0]
	for i, t := range themes {
		if t == theme.Current.Name {
			next = themes[(i+1)%len(themes)]
			break
		}
	}
	theme.Set(next)
	m.dark = theme.IsDark()
	m.statusBar.SetMessage(fmt.Sprintf("Theme: %s", next))
	return m.refresh()
}

// yankCode copies a code sample of the current page to the clipboard.
// arg selects the sample by number ("2" or "c2"); empty means the first.
func (m *Model) yankCode(arg string) {
	if m.page == nil || len(m.page.CodeBlocks) == 0 {
		m.statusBar.SetMessage("No code samples on this page")
		return
	}

	n := 1
	if arg = strings.TrimPrefix(strings.TrimSpace(arg), "c"); arg != "" {
		v, err := strconv.Atoi(arg)
		if err != nil {
			m.statusBar.SetError(fmt.Sprintf("Invalid code sample: %s", arg))
			return
		}
		n = v
	}
	if n < 1 || n > len(m.page.CodeBlocks) {
		m.statusBar.SetError(fmt.Sprintf("Code sample [c%d] not found", n))
		return
	}

	if err := m.clipboard(m.page.CodeBlocks[n-1]); err != nil {
		m.logger.Warn("clipboard write failed", "error", err)
		m.statusBar.SetError("Copy failed: " + err.Error())
		return
	}
	m.statusBar.SetMessage(fmt.Sprintf("Copied code sample [c%d]", n))
}

// showHelp displays the keybinding reference in the document area.
func (m *Model) showHelp() {
	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Secondary).
		Width(18)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	type row struct{ k, d string }
	bindings := func(bs ...key.Binding) []row {
		rows := make([]row, 0, len(bs))
		for _, b := range bs {
			rows = append(rows, row{b.Help().Key, b.Help().Desc})
		}
		return rows
	}

	k := m.keys
	sections := []struct {
		name string
		rows []row
	}{
		{"Reading", bindings(k.ScrollDown, k.ScrollUp, k.HalfPageDown, k.HalfPageUp, k.GotoTop, k.GotoBottom)},
		{"Navigation", bindings(k.Back, k.Forward, k.Reload, k.FollowLink, k.Home)},
		{"Panels", bindings(k.ToggleSidebar, k.FocusSwitch, k.Search, k.Recent, k.WidenSidebar, k.NarrowSidebar)},
		{"View", bindings(k.DarkMode, k.ZoomIn, k.ZoomOut, k.ZoomReset, k.ReaderMode, k.YankCode)},
		{"Sidebar", []row{
			{"Enter / l", "Open document or fold folder"},
			{"h", "Collapse folder"},
			{"Esc", "Clear search / back to document"},
		}},
		{"Modes", bindings(k.CommandMode, k.Leader, k.Help, k.Quit)},
		{"Commands", []row{
			{":open <path>", "Open a document"},
			{":docs <dir>", "Browse another docs folder"},
			{":zoom <pct>", "Set zoom (also in/out/reset)"},
			{":theme [name]", "Change theme"},
			{":dark", "Toggle dark mode"},
			{":reader", "Toggle reader mode"},
			{":divider <0-1>", "Set sidebar width"},
			{":yank [n]", "Copy code sample [cN]"},
			{":recent", "Recent files"},
			{":clearrecent", "Forget recent files"},
			{":back / :forward", "History navigation"},
			{":reload", "Re-read from disk"},
			{":welcome", "Welcome page"},
			{":quit", "Quit docview"},
		}},
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("docview Keybindings"))
	sb.WriteString("\n")
	for _, s := range sections {
		sb.WriteString(sectionStyle.Render(s.name))
		sb.WriteString("\n")
		for _, r := range s.rows {
			sb.WriteString("  ")
			sb.WriteString(keyStyle.Render(r.k))
			sb.WriteString(descStyle.Render(r.d))
			sb.WriteString("\n")
		}
	}

	wasHelp := m.content == contentHelp
	m.page = nil
	m.content = contentHelp
	if wasHelp {
		m.viewport.Rewrap(sb.String())
	} else {
		m.viewport.SetContent(sb.String())
	}
	m.statusBar.SetTitle("Help")
	m.syncStatusBar()
}
