package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Addr != ":8080" || c.Storage.Driver != "sqlite" || c.Log.Level != "info" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
addr: ":9090"
log:
  level: debug
  format: json
storage:
  driver: memory
seed: true
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Addr != ":9090" || c.Log.Level != "debug" || c.Log.Format != "json" {
		t.Fatalf("yaml not applied: %+v", c)
	}
	if c.Storage.Driver != "memory" || !c.Seed {
		t.Fatalf("yaml not applied: %+v", c)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "7070")
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("SEED", "true")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Addr != ":7070" {
		t.Fatalf("PORT should win over file: %+v", c)
	}
	if c.Storage.Driver != "memory" || !c.Seed {
		t.Fatalf("env not applied: %+v", c)
	}
}

func TestUnknownDriverIsRejected(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestMalformedYAMLIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: [broken\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
