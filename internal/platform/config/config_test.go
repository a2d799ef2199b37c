package config_test

import (
	"path/filepath"
	"testing"

	"bplog/internal/platform/config"
)

func TestNewDerivesPaths(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.ConfigFile != filepath.Join(dir, "config.yaml") {
		t.Fatalf("unexpected config file %s", cfg.ConfigFile)
	}
	if cfg.DefaultDBPath != filepath.Join(dir, "bplog.db") {
		t.Fatalf("unexpected default db path %s", cfg.DefaultDBPath)
	}
	if _, err := config.New(""); err == nil {
		t.Fatalf("empty dir should fail")
	}
}
