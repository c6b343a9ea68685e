package storage

import (
	"path/filepath"
	"slices"
	"testing"
)

func openTestStore(t *testing.T) *PrefStore {
	t.Helper()
	db, err := open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPrefStore(db)
}

func allExist(string) bool { return true }

func TestLoadDefaults(t *testing.T) {
	ps := openTestStore(t)

	got, err := ps.Load(allExist)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultPreferences()
	if got.DarkMode != want.DarkMode || got.Zoom != want.Zoom ||
		got.DividerPosition != want.DividerPosition || got.Maximized != want.Maximized ||
		got.WindowWidth != want.WindowWidth || got.WindowHeight != want.WindowHeight {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if len(got.RecentFiles) != 0 {
		t.Errorf("expected no recent files, got %v", got.RecentFiles)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ps := openTestStore(t)

	in := Preferences{
		DarkMode:        true,
		Zoom:            1.5,
		DividerPosition: 0.3,
		Maximized:       false,
		WindowWidth:     1024,
		WindowHeight:    768,
		RecentFiles:     []string{"/docs/b.html", "/docs/a.html"},
	}
	if err := ps.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := ps.Load(allExist)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !out.DarkMode || out.Zoom != 1.5 || out.DividerPosition != 0.3 || out.Maximized {
		t.Errorf("unexpected scalars: %+v", out)
	}
	if out.WindowWidth != 1024 || out.WindowHeight != 768 {
		t.Errorf("window = %vx%v, want 1024x768", out.WindowWidth, out.WindowHeight)
	}
	if !slices.Equal(out.RecentFiles, in.RecentFiles) {
		t.Errorf("recent = %v, want %v", out.RecentFiles, in.RecentFiles)
	}
}

func TestSaveMaximizedKeepsWindowSize(t *testing.T) {
	ps := openTestStore(t)

	if err := ps.Save(Preferences{Zoom: 1, Maximized: false, WindowWidth: 800, WindowHeight: 600}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := ps.Save(Preferences{Zoom: 1, Maximized: true, WindowWidth: 10, WindowHeight: 10}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := ps.Load(allExist)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Maximized {
		t.Error("expected maximized")
	}
	if got.WindowWidth != 800 || got.WindowHeight != 600 {
		t.Errorf("window = %vx%v, want previous 800x600", got.WindowWidth, got.WindowHeight)
	}
}

func TestSaveRemovesStaleRecentKeys(t *testing.T) {
	ps := openTestStore(t)

	if err := ps.Save(Preferences{Zoom: 1, RecentFiles: []string{"/a.html", "/b.html", "/c.html"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := ps.Save(Preferences{Zoom: 1, RecentFiles: []string{"/c.html"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, ok, _ := ps.get(RecentKey(1)); ok {
		t.Errorf("%s should have been removed", RecentKey(1))
	}
	got, err := ps.Load(allExist)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(got.RecentFiles, []string{"/c.html"}) {
		t.Errorf("recent = %v", got.RecentFiles)
	}
}

func TestLoadDropsMissingRecentFiles(t *testing.T) {
	ps := openTestStore(t)

	if err := ps.Save(Preferences{Zoom: 1, RecentFiles: []string{"/gone.html", "/here.html"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := ps.Load(func(p string) bool { return p == "/here.html" })
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(got.RecentFiles, []string{"/here.html"}) {
		t.Errorf("recent = %v, want [/here.html]", got.RecentFiles)
	}
}

func TestLoadClampsAndIgnoresMalformed(t *testing.T) {
	ps := openTestStore(t)

	for k, v := range map[string]string{
		KeyZoom:            "9",
		KeyDividerPosition: "-1",
		KeyDarkMode:        "maybe",
		KeyWindowWidth:     "wide",
	} {
		if err := put(ps.db, k, v); err != nil {
			t.Fatalf("put %s: %v", k, err)
		}
	}

	got, err := ps.Load(allExist)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Zoom != 3.0 {
		t.Errorf("zoom = %v, want 3", got.Zoom)
	}
	if got.DividerPosition != 0 {
		t.Errorf("divider = %v, want 0", got.DividerPosition)
	}
	if got.DarkMode {
		t.Error("malformed darkMode should fall back to false")
	}
	if got.WindowWidth != 1400 {
		t.Errorf("width = %v, want default 1400", got.WindowWidth)
	}
}

func TestPutOverwrites(t *testing.T) {
	ps := openTestStore(t)

	if err := put(ps.db, "k", "one"); err != nil {
		t.Fatal(err)
	}
	if err := put(ps.db, "k", "two"); err != nil {
		t.Fatal(err)
	}
	v, ok, err := ps.get("k")
	if err != nil || !ok || v != "two" {
		t.Errorf("get = %q, %v, %v", v, ok, err)
	}
	if _, ok, _ := ps.get("missing"); ok {
		t.Error("missing key reported as set")
	}
}
