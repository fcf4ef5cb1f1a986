package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenDefaultFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(DefaultPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Level != "" || cfg.Server.Port != 2222 || cfg.Logging.Level != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	data := `
seed = 99
level = "arena"

[logging]
level = "debug"
format = "json"

[server]
port = 2300
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 99 || cfg.Level != "arena" {
		t.Errorf("top-level = %+v", cfg)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Server.Port != 2300 || cfg.Server.HostKey != "server_host_key" {
		t.Errorf("server = %+v; host key default must survive", cfg.Server)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	os.WriteFile(path, []byte("seed = ["), 0o644)
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	os.WriteFile(path, []byte("seed = 1\n[server]\nport = 2300\n"), 0o644)
	t.Setenv("ROGUE_SEED", "7")
	t.Setenv("ROGUE_SERVER_PORT", "4000")
	t.Setenv("ROGUE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 7 || cfg.Server.Port != 4000 || cfg.Logging.Level != "warn" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestEnvBadValue(t *testing.T) {
	t.Setenv("ROGUE_SEED", "many")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for non-numeric seed")
	}
}
