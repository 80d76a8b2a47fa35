package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("expected default port 8081, got %s", cfg.Port)
	}
	if cfg.DraftBackend != "sqlite" {
		t.Fatalf("expected default backend sqlite, got %s", cfg.DraftBackend)
	}
	if cfg.DraftKey != "invoice-draft" {
		t.Fatalf("expected default draft key, got %s", cfg.DraftKey)
	}
	if cfg.AutosaveInterval != 30*time.Second {
		t.Fatalf("expected 30s autosave interval, got %v", cfg.AutosaveInterval)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DRAFT_BACKEND", "file")
	t.Setenv("AUTOSAVE_INTERVAL", "2m")
	t.Setenv("MAX_LOGO_BYTES", "2048")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.DraftBackend != "file" {
		t.Fatalf("expected file backend, got %s", cfg.DraftBackend)
	}
	if cfg.AutosaveInterval != 2*time.Minute {
		t.Fatalf("expected 2m interval, got %v", cfg.AutosaveInterval)
	}
	if cfg.MaxLogoBytes != 2048 {
		t.Fatalf("expected 2048 max logo bytes, got %d", cfg.MaxLogoBytes)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		dir := t.TempDir()
		return &Config{
			Port:             "8081",
			DraftBackend:     "sqlite",
			SQLiteDBPath:     filepath.Join(dir, "test.db"),
			DraftFilePath:    filepath.Join(dir, "draft.json"),
			DraftKey:         "invoice-draft",
			AutosaveInterval: 30 * time.Second,
			MaxLogoBytes:     5 * 1024 * 1024,
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"bad port", func(c *Config) { c.Port = "nope" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"bad backend", func(c *Config) { c.DraftBackend = "redis" }, "invalid draft backend"},
		{"empty draft key", func(c *Config) { c.DraftKey = "" }, "draft key"},
		{"interval too small", func(c *Config) { c.AutosaveInterval = time.Millisecond }, "autosave interval"},
		{"logo limit too small", func(c *Config) { c.MaxLogoBytes = 10 }, "logo size limit"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("error %q missing %q", err, tc.wantSub)
			}
		})
	}
}
