package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidyasagar/docview/internal/app"
	"github.com/vidyasagar/docview/internal/storage"
	"github.com/vidyasagar/docview/internal/theme"
)

var (
	version = "0.1.0"
)

func main() {
	var (
		themeName   string
		docsPath    string
		debug       bool
		showVersion bool
	)

	flag.StringVar(&themeName, "theme", "", "color theme ("+strings.Join(theme.List(), ", ")+")")
	flag.StringVar(&docsPath, "docs", "", "documentation folder shown in the sidebar")
	flag.BoolVar(&debug, "debug", false, "write a debug log to the data directory")
	flag.BoolVar(&showVersion, "version", false, "show version")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "docview - a terminal viewer for local HTML documentation\n\n")
		fmt.Fprintf(os.Stderr, "Usage: docview [flags] [file|dir]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  docview                                # browse the configured docs folder\n")
		fmt.Fprintf(os.Stderr, "  docview ~/javadoc                      # browse a folder\n")
		fmt.Fprintf(os.Stderr, "  docview ~/javadoc/java/util/List.html  # open a page\n")
		fmt.Fprintf(os.Stderr, "  docview --theme nord                   # use the nord theme\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("docview %s\n", version)
		os.Exit(0)
	}

	if err := run(themeName, docsPath, debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(themeName, docsPath string, debug bool) error {
	// Check the theme before anything is opened.
	if themeName != "" && !slices.Contains(theme.List(), themeName) {
		return fmt.Errorf("unknown theme: %s (available: %s)", themeName, strings.Join(theme.List(), ", "))
	}

	cfg, err := storage.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		def := storage.DefaultConfig()
		cfg = &def
	}

	logger, closeLog := newLogger(debug)
	defer closeLog()

	// Preferences are best effort: without the database docview still runs
	// with defaults and nothing is remembered.
	prefs := storage.DefaultPreferences()
	var store *storage.PrefStore
	if dataDir, err := storage.DataDir(); err != nil {
		logger.Warn("no data directory", "error", err)
	} else if db, err := storage.OpenDB(dataDir); err != nil {
		logger.Warn("opening preferences failed", "error", err)
	} else {
		defer db.Close()
		logger.Debug("preferences opened", "path", db.Path())
		store = storage.NewPrefStore(db)
		if prefs, err = store.Load(nil); err != nil {
			logger.Warn("loading preferences failed", "error", err)
			prefs = storage.DefaultPreferences()
		}
	}

	// An explicit --theme wins over the saved dark mode setting. The
	// configured theme only picks which dark theme dark mode uses.
	if themeName != "" {
		theme.Set(themeName)
		prefs.DarkMode = theme.IsDark()
	} else if cfg.Theme != "" && !theme.Set(cfg.Theme) {
		logger.Warn("unknown theme in config", "theme", cfg.Theme)
	}

	var startFile string
	if flag.NArg() > 0 {
		arg := flag.Arg(0)
		if info, err := os.Stat(arg); err == nil && info.IsDir() {
			if docsPath == "" {
				docsPath = arg
			}
		} else {
			startFile = arg
		}
	}
	if docsPath == "" {
		docsPath = cfg.DocsPath
	}
	if docsPath == "" && startFile != "" {
		docsPath = filepath.Dir(startFile)
	}
	if docsPath != "" {
		if abs, err := filepath.Abs(docsPath); err == nil {
			docsPath = abs
		}
	}

	logger.Info("starting", "version", version, "docs", docsPath, "file", startFile)

	m := app.New(app.Options{
		DocsRoot:    docsPath,
		StartFile:   startFile,
		Preferences: prefs,
		MaxWidth:    cfg.MaxWidth,
		ReaderMode:  cfg.ReaderMode,
		Logger:      logger,
	})
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	if store != nil {
		if fm, ok := final.(app.Model); ok {
			if err := store.Save(fm.Preferences()); err != nil {
				logger.Error("saving preferences failed", "error", err)
				fmt.Fprintf(os.Stderr, "Warning: preferences not saved: %v\n", err)
			}
		}
	}
	return nil
}

// newLogger writes to docview.log in the data directory when debug is set
// and discards everything otherwise.
func newLogger(debug bool) (*slog.Logger, func()) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	if !debug {
		return discard, func() {}
	}

	dir, err := storage.DataDir()
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
		return discard, func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "docview.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
		return discard, func() {}
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }
}
