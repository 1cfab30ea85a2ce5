package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestConfigDirEnv(t *testing.T) {
	t.Setenv("TEDIT_CONFIG_HOME", "/tmp/tedit-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/tedit-config" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/tedit-config")
	}

	t.Setenv("TEDIT_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg/tedit" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/xdg/tedit")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TEDIT_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.ReadTimeout() != 100*time.Millisecond {
		t.Fatalf("ReadTimeout = %v, want 100ms", cfg.ReadTimeout())
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEDIT_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "config.toml"), `
[editor]
read-timeout-ms = 300
show-banner = false

[log]
debug = true
file = "/tmp/tedit-test.log"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ReadTimeout() != 300*time.Millisecond {
		t.Fatalf("ReadTimeout = %v, want 300ms", cfg.ReadTimeout())
	}
	if cfg.Editor.ShowBanner {
		t.Fatalf("ShowBanner = true, want false")
	}
	if !cfg.Log.Debug {
		t.Fatalf("Debug = false, want true")
	}
	if cfg.Log.File != "/tmp/tedit-test.log" {
		t.Fatalf("File = %q, want %q", cfg.Log.File, "/tmp/tedit-test.log")
	}
}

func TestLoadKeepsBannerWhenUnset(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEDIT_CONFIG_HOME", dir)
	writeFile(t, filepath.Join(dir, "config.toml"), `
[editor]
read-timeout-ms = -5
`)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Editor.ShowBanner {
		t.Fatalf("ShowBanner = false, want true")
	}
	if cfg.Editor.ReadTimeoutMs != 100 {
		t.Fatalf("ReadTimeoutMs = %d, want 100", cfg.Editor.ReadTimeoutMs)
	}
}

func TestLoadInvalidToml(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEDIT_CONFIG_HOME", dir)
	writeFile(t, filepath.Join(dir, "config.toml"), "[editor\n")
	if _, err := Load(); err == nil {
		t.Fatalf("Load succeeded on invalid toml")
	}
}
