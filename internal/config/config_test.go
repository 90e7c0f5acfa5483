package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Index:    IndexConfig{Addrs: []string{"localhost:6379"}},
		Database: DatabaseConfig{DSN: "postgres://localhost/gunpla"},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}

	cfg.HTTP.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestValidate_MissingIndexAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Index.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing index addrs")
	}
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Database.DSN = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database dsn")
	}
}

func TestValidate_PageSizeBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Search.DefaultPageSize = 200
	cfg.Search.MaxPageSize = 100

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when default page size exceeds max")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Index.Driver != "valkey" {
		t.Errorf("expected driver=valkey, got %q", cfg.Index.Driver)
	}
	if cfg.Index.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Index.ReadinessTimeout)
	}
	if cfg.Search.DefaultPageSize != 20 {
		t.Errorf("expected DefaultPageSize=20, got %d", cfg.Search.DefaultPageSize)
	}
	if cfg.Search.MaxPageSize != 100 {
		t.Errorf("expected MaxPageSize=100, got %d", cfg.Search.MaxPageSize)
	}
	if cfg.Search.PreviewSize != 8 {
		t.Errorf("expected PreviewSize=8, got %d", cfg.Search.PreviewSize)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Index:  IndexConfig{Driver: "redis", ReadinessTimeout: 15},
		Search: SearchConfig{DefaultPageSize: 10, MaxPageSize: 50, PreviewSize: 4},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Index.Driver != "redis" {
		t.Errorf("expected driver=redis, got %q", cfg.Index.Driver)
	}
	if cfg.Search.DefaultPageSize != 10 || cfg.Search.MaxPageSize != 50 || cfg.Search.PreviewSize != 4 {
		t.Errorf("search config overridden: %+v", cfg.Search)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("KITSEARCH_TEST_DSN", "postgres://db/gunpla")

	in := []byte("dsn: ${KITSEARCH_TEST_DSN}\nport: ${KITSEARCH_TEST_PORT:-8080}\n")
	out := string(expandEnvVars(in))

	want := "dsn: postgres://db/gunpla\nport: 8080\n"
	if out != want {
		t.Errorf("expanded:\ngot:  %q\nwant: %q", out, want)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "config")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}

	yaml := `
http:
  port: 9090
index:
  addrs:
    - "localhost:6379"
database:
  dsn: "${KITSEARCH_TEST_DB_DSN:-postgres://localhost/gunpla}"
search:
  preview_size: 6
`
	if err := os.WriteFile(filepath.Join(cfgDir, "test.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTP.Port != 9090 {
		t.Errorf("port: %d", cfg.HTTP.Port)
	}
	if cfg.Database.DSN != "postgres://localhost/gunpla" {
		t.Errorf("dsn default not expanded: %q", cfg.Database.DSN)
	}
	if cfg.Search.PreviewSize != 6 {
		t.Errorf("preview size: %d", cfg.Search.PreviewSize)
	}
	// Untouched fields pick up defaults.
	if cfg.Index.Driver != "valkey" || cfg.Search.MaxPageSize != 100 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("expected local, got %q", got)
	}

	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("expected prod, got %q", got)
	}
}
