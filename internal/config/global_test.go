// Where: internal/config/global_test.go
// What: Tests for global config helpers.
// Why: Ensure global config round-trips correctly.
package config

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestGlobalConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := GlobalConfig{
		Version:       1,
		ActiveProject: "token-vault",
		Projects: map[string]ProjectEntry{
			"token-vault": {
				Path:     "/path/to/token-vault",
				LastUsed: "2026-08-29T10:00:00+00:00",
			},
		},
		DeployEnvs: map[string]string{
			"token-vault": "testnet",
		},
	}

	if err := SaveGlobalConfig(path, cfg); err != nil {
		t.Fatalf("save global config: %v", err)
	}

	loaded, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loaded) {
		t.Fatalf("config mismatch: expected %#v, got %#v", cfg, loaded)
	}
}

func TestGlobalConfigPathHonorsOverride(t *testing.T) {
	baseDir := t.TempDir()
	overridePath := filepath.Join(baseDir, "custom", "config.yaml")
	t.Setenv("CAPSULE_CONFIG_PATH", overridePath)

	got, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("global config path: %v", err)
	}
	if got != overridePath {
		t.Fatalf("unexpected config path: %s", got)
	}
}

func TestGlobalConfigPathHonorsHomeOverride(t *testing.T) {
	baseDir := t.TempDir()
	t.Setenv("CAPSULE_CONFIG_PATH", "")
	t.Setenv("CAPSULE_CONFIG_HOME", baseDir)

	got, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("global config path: %v", err)
	}
	if got != filepath.Join(baseDir, "config.yaml") {
		t.Fatalf("unexpected config path: %s", got)
	}
}

func TestEnsureGlobalConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capsule", "config.yaml")
	t.Setenv("CAPSULE_CONFIG_PATH", path)

	if err := EnsureGlobalConfig(); err != nil {
		t.Fatalf("ensure global config: %v", err)
	}

	loaded, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}
	if loaded.Version != 1 {
		t.Errorf("version = %d, want 1", loaded.Version)
	}
}
