package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Theme != "default" || cfg.MaxWidth != 100 || cfg.ReaderMode {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"theme":"nord","docs_path":"/opt/javadoc","reader_mode":true,"max_width":0}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Theme != "nord" || cfg.DocsPath != "/opt/javadoc" || !cfg.ReaderMode {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.MaxWidth != 100 {
		t.Errorf("MaxWidth = %d, want default 100", cfg.MaxWidth)
	}
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfigFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestDataDirHonorsXDG(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG only applies on unix")
	}
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	dir, err := DataDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg", "docview") {
		t.Errorf("DataDir = %q", dir)
	}
}
