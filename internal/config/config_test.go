package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.AllowsAnnounceHost("x.com") {
		t.Error("default allowlist should include x.com")
	}
	if !cfg.AllowsAnnounceHost("instagram.com") {
		t.Error("default allowlist should include instagram.com")
	}
	if cfg.AllowsAnnounceHost("example.com") {
		t.Error("default allowlist should not include example.com")
	}
}

func TestAllowsAnnounceHost_CaseInsensitive(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.AllowsAnnounceHost("X.com") {
		t.Error("host comparison should be case-insensitive")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.AllowsAnnounceHost("x.com") {
		t.Error("missing config file should yield defaults")
	}
}

func TestLoad_Overlay(t *testing.T) {
	tmpDir := t.TempDir()
	content := `{
		"allowed_announce_hosts": ["gallery.example.jp"],
		"db_max_open_conns": 1,
		"disabled_tools": ["event_submit"]
	}`
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// The allowlist is replaced wholesale, not merged
	if !cfg.AllowsAnnounceHost("gallery.example.jp") {
		t.Error("configured host missing from allowlist")
	}
	if cfg.AllowsAnnounceHost("x.com") {
		t.Error("overlay allowlist should replace the default list")
	}
	if cfg.DBMaxOpenConns != 1 {
		t.Errorf("DBMaxOpenConns = %d, want 1", cfg.DBMaxOpenConns)
	}
	if len(cfg.DisabledTools) != 1 || cfg.DisabledTools[0] != "event_submit" {
		t.Errorf("DisabledTools = %v", cfg.DisabledTools)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte("{not json"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Error("Load accepted invalid JSON")
	}
}

func TestMerge_DisableListsAreMerged(t *testing.T) {
	base := &Config{DisabledTools: []string{"event_submit"}}
	overlay := &Config{DisabledTools: []string{"event_list", "event_submit"}}

	merged := Merge(base, overlay)
	if len(merged.DisabledTools) != 2 {
		t.Errorf("DisabledTools = %v, want deduplicated merge of both", merged.DisabledTools)
	}
}

func TestLoadAliases(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "aliases.yaml")
	content := `venues:
  - ["シグマギャラリー", "sigma gallery"]
exhibitions:
  - ["ご当地フォトフェス"]
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write aliases: %v", err)
	}

	aliases, err := LoadAliases(path)
	if err != nil {
		t.Fatalf("LoadAliases failed: %v", err)
	}
	if len(aliases.Venues) != 1 || len(aliases.Venues[0]) != 2 {
		t.Errorf("Venues = %v", aliases.Venues)
	}
	if len(aliases.Exhibitions) != 1 {
		t.Errorf("Exhibitions = %v", aliases.Exhibitions)
	}
}

func TestLoadAliases_Missing(t *testing.T) {
	aliases, err := LoadAliases(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing alias file should not error, got %v", err)
	}
	if len(aliases.Venues) != 0 || len(aliases.Exhibitions) != 0 {
		t.Errorf("expected empty alias config, got %+v", aliases)
	}
}

func TestBuildVenueTable(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "aliases.yaml")
	content := `venues:
  - ["シグマギャラリー"]
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write aliases: %v", err)
	}

	cfg := DefaultConfig()
	cfg.AliasFile = path

	table, err := BuildVenueTable(cfg)
	if err != nil {
		t.Fatalf("BuildVenueTable failed: %v", err)
	}
	if !table.IsMajorVenue("シグマギャラリー") {
		t.Error("configured venue cluster not loaded")
	}
	if !table.IsMajorVenue("ニコンサロン") {
		t.Error("built-in clusters missing from configured table")
	}
}

func TestBuildVenueTable_NoFile(t *testing.T) {
	table, err := BuildVenueTable(DefaultConfig())
	if err != nil {
		t.Fatalf("BuildVenueTable failed: %v", err)
	}
	if !table.IsMajorVenue("ニコンサロン") {
		t.Error("default table missing built-in clusters")
	}
}
