package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig("missing.yaml")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Storage.Driver != "memory" || cfg.Client.Debounce != 500*time.Millisecond {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("server:\n  port: 9000\njwt:\n  secret: from-file\n  access_ttl: 5m\nclient:\n  page_size: 10\n  rooms_source: rooms.json\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("CLIENT_TIMEOUT", "3s")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Fatalf("port: expected 9000, got %d", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "from-env" {
		t.Fatalf("secret: expected from-env, got %q", cfg.JWT.Secret)
	}
	if cfg.JWT.AccessTTL != 5*time.Minute || cfg.JWT.RefreshTTL != 7*24*time.Hour {
		t.Fatalf("ttls: got %v and %v", cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	}
	if cfg.Client.PageSize != 10 || cfg.Client.RoomsSource != "rooms.json" || cfg.Client.Timeout != 3*time.Second {
		t.Fatalf("client: got %+v", cfg.Client)
	}
}

func TestApplyEnvRejectsBadNumbers(t *testing.T) {
	cfg := Default()
	lookup := func(key string) (string, bool) {
		if key == "SERVER_PORT" {
			return "eighty", true
		}
		return "", false
	}
	if err := cfg.applyEnv(lookup); err == nil {
		t.Fatalf("expected error for non-numeric port")
	}
}

func TestDSN(t *testing.T) {
	cfg := Default()
	cfg.Database.Password = "pw"
	want := "host=localhost port=5432 user=postgres password=pw dbname=hotel sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN: expected %q, got %q", want, got)
	}
}
