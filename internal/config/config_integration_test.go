package config

import (
	"path/filepath"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "arrlist", "config.toml")
	if err := WriteDefault(cfgPath, false); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	t.Setenv("ARRLIST_API_KEY", "test-arrlist-key")
	t.Setenv("RADARR_API_KEY", "test-radarr-key")
	t.Setenv("SONARR_API_KEY", "test-sonarr-key")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.APIKey != "test-arrlist-key" {
		t.Errorf("expected server key substituted, got %q", cfg.Server.APIKey)
	}
	if !cfg.Radarr.Enabled() || cfg.Radarr.APIKey != "test-radarr-key" {
		t.Errorf("expected radarr enabled with substituted key, got %+v", cfg.Radarr)
	}
	if !cfg.Sonarr.Enabled() {
		t.Errorf("expected sonarr enabled, got %+v", cfg.Sonarr)
	}
	if len(cfg.Unresolved) != 0 {
		t.Errorf("expected no unresolved vars, got %v", cfg.Unresolved)
	}
	if cfg.Server.Port != 8484 {
		t.Errorf("expected default port 8484, got %d", cfg.Server.Port)
	}
	if cfg.Notifications.Ntfy != nil {
		t.Errorf("expected ntfy disabled in the default config, got %+v", cfg.Notifications.Ntfy)
	}
}
