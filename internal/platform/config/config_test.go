package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("Server.ListenAddr = %q, want :8080", cfg.Server.ListenAddr)
	}
	if cfg.Upstream.BaseURL != "http://192.168.20.86:8000" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Postgres.DSN != "" {
		t.Errorf("Postgres.DSN should be empty by default, got %q", cfg.Postgres.DSN)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("UPSTREAM_BASE_URL", "https://status.example.com")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("UPSTREAM_MAX_RETRIES", "5")
	t.Setenv("POSTGRES_DSN", "postgres://u:p@localhost/db?sslmode=disable")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Upstream.BaseURL != "https://status.example.com" {
		t.Errorf("BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Upstream.Timeout)
	}
	if cfg.Upstream.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.Upstream.MaxRetries)
	}
	if cfg.Postgres.DSN == "" {
		t.Errorf("expected DSN from environment")
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Logging.Format)
	}
	// untouched defaults survive
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.Server.ShutdownTimeout)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  listen_addr: ":9090"
upstream:
  base_url: "http://file.example.com:8000"
  retry_wait: 1s
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("SERVER_LISTEN_ADDR", ":7070")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.ListenAddr != ":7070" {
		t.Errorf("env must win over file, got %q", cfg.Server.ListenAddr)
	}
	if cfg.Upstream.BaseURL != "http://file.example.com:8000" {
		t.Errorf("BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.RetryWait != time.Second {
		t.Errorf("RetryWait = %v, want 1s", cfg.Upstream.RetryWait)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("UPSTREAM_BASE_URL", "ftp://nope")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "upstream.base_url") {
		t.Fatalf("expected base_url validation error, got %v", err)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.ListenAddr = ""
	cfg.Upstream.BreakerFailRatio = 2
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{"listen_addr", "breaker_fail_ratio", "logging.format"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("missing %q in %v", want, err)
		}
	}
}
