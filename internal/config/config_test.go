package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	withConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	if cfg != want {
		t.Errorf("Load with no file = %+v, want defaults %+v", cfg, want)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	withConfigHome(t)

	cfg := DefaultConfig()
	cfg.General.DatabasePath = "/tmp/custom/grants.db"
	cfg.General.EndingSoonDays = 30
	cfg.Appearance.Theme = "flexoki-light"
	cfg.TUI.AutoRefresh = false
	cfg.TUI.CacheTTLSec = 5

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip: got %+v, want %+v", got, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := withConfigHome(t)

	path := filepath.Join(dir, "grantwatch", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[appearance]\ntheme = \"flexoki-light\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-light" {
		t.Errorf("Theme = %q, want flexoki-light", cfg.Appearance.Theme)
	}
	if cfg.General.EndingSoonDays != 90 {
		t.Errorf("EndingSoonDays = %d, want default 90", cfg.General.EndingSoonDays)
	}
}

func TestDatabasePath(t *testing.T) {
	var cfg Config
	cfg.General.DatabasePath = "/data/grants.db"
	if got := cfg.DatabasePath(); got != "/data/grants.db" {
		t.Errorf("DatabasePath = %q", got)
	}

	t.Setenv("XDG_DATA_HOME", "/xdg-data")
	cfg.General.DatabasePath = ""
	want := filepath.Join("/xdg-data", "grantwatch", "grants.db")
	if got := cfg.DatabasePath(); got != want {
		t.Errorf("DatabasePath = %q, want %q", got, want)
	}
}
