package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ListenAddr != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.ListenAddr)
	}
	if cfg.DBPath != "garrison.sqlite3" {
		t.Errorf("expected garrison.sqlite3, got %q", cfg.DBPath)
	}
	if cfg.JWTSecret != "" {
		t.Error("default config should not carry a JWT secret")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garrison.yaml")
	content := []byte("listen_addr: \":9090\"\njwt_secret: sekrit\nlog_file: /var/log/garrison.log\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("expected :9090, got %q", cfg.ListenAddr)
	}
	if cfg.JWTSecret != "sekrit" {
		t.Errorf("expected sekrit, got %q", cfg.JWTSecret)
	}
	if cfg.LogFile != "/var/log/garrison.log" {
		t.Errorf("unexpected log file %q", cfg.LogFile)
	}
	// Unset fields keep their defaults.
	if cfg.DBPath != "garrison.sqlite3" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("listen_addr: [unclosed"), 0644)

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
