package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NAVIHIVE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.UI.CompactWidth != 80 {
		t.Fatalf("compact width = %d, want 80", c.UI.CompactWidth)
	}
	if c.UI.ScrollMargin != 2 {
		t.Fatalf("scroll margin = %d, want 2", c.UI.ScrollMargin)
	}
	if !c.Watch.Enabled || c.Watch.DebounceMS != 400 {
		t.Fatalf("watch defaults = %+v", c.Watch)
	}
	if c.Log.Level != "info" {
		t.Fatalf("log level = %q", c.Log.Level)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[ui]\ncompact_width = 60\nstyle = \"dark\"\n\n[watch]\nenabled = false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("NAVIHIVE_CONFIG", path)

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.UI.CompactWidth != 60 || c.UI.Style != "dark" {
		t.Fatalf("ui = %+v", c.UI)
	}
	if c.Watch.Enabled {
		t.Fatalf("watch.enabled should be overridden to false")
	}
	if c.UI.ScrollMargin != 2 {
		t.Fatalf("unset keys must keep defaults, margin = %d", c.UI.ScrollMargin)
	}
}
