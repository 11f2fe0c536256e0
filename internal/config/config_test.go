package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigLoadSave(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &Config{
		APIKey:      "test-api-key",
		Style:       "Noir Horror",
		AspectRatio: "16:9",
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	// Verify file exists with restrictive permissions
	path := filepath.Join(tmpDir, "director-ai", "config.json")
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}
	if err != nil {
		t.Fatalf("Failed to stat config: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected 0600 permissions, got %o", perm)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.APIKey != "test-api-key" {
		t.Errorf("Expected APIKey test-api-key, got %s", loaded.APIKey)
	}
	if loaded.Style != "Noir Horror" {
		t.Errorf("Expected style Noir Horror, got %s", loaded.Style)
	}
	if loaded.AspectRatio != "16:9" {
		t.Errorf("Expected aspect ratio 16:9, got %s", loaded.AspectRatio)
	}
}

func TestLoadNonExistent(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error for non-existent config, got %v", err)
	}
	if cfg == nil {
		t.Fatal("Expected non-nil config")
	}
	if cfg.APIKey != "" {
		t.Errorf("Expected empty API key, got %s", cfg.APIKey)
	}
}

func TestResolvedKeyEnvWins(t *testing.T) {
	cfg := &Config{APIKey: "stored-key"}

	t.Setenv(EnvAPIKey, "")
	if got := cfg.ResolvedKey(); got != "stored-key" {
		t.Errorf("Expected stored-key, got %s", got)
	}

	t.Setenv(EnvAPIKey, "env-key")
	if got := cfg.ResolvedKey(); got != "env-key" {
		t.Errorf("Expected env-key to win, got %s", got)
	}
}

func TestHasKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	cfg := &Config{}
	if cfg.HasKey() {
		t.Error("Expected HasKey() to be false for empty config")
	}

	cfg.APIKey = "some-key"
	if !cfg.HasKey() {
		t.Error("Expected HasKey() to be true")
	}
}
