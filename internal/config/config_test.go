package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWithEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("POSTGRES_DSN", "postgres://localhost/trends")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("expected default addr, got %s", cfg.HTTP.Addr)
	}
	if cfg.Trends.MaxKeywords != 5 || cfg.Trends.DefaultSource != SourceRemote {
		t.Fatalf("unexpected trends defaults: %+v", cfg.Trends)
	}
	if cfg.Postgres.DSN != "postgres://localhost/trends" {
		t.Fatalf("expected DSN from env, got %s", cfg.Postgres.DSN)
	}
}

func TestLoad_YAMLThenEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeConfig(t, `
http:
  addr: ":9090"
postgres:
  dsn: "postgres://yaml/trends"
trend_api:
  url: "http://trends.internal"
  timeout: 3s
  qps: 0.5
trends:
  default_source: stored
  max_keywords: 3
log:
  level: debug
`)
	t.Setenv("POSTGRES_DSN", "postgres://env/trends")
	t.Setenv("TREND_MAX_KEYWORDS", "4")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("expected addr from yaml, got %s", cfg.HTTP.Addr)
	}
	if cfg.Postgres.DSN != "postgres://env/trends" {
		t.Fatalf("expected env to override yaml, got %s", cfg.Postgres.DSN)
	}
	if cfg.TrendAPI.Timeout != 3*time.Second || cfg.TrendAPI.QPS != 0.5 {
		t.Fatalf("unexpected trend api config: %+v", cfg.TrendAPI)
	}
	if cfg.TrendAPI.RetryCount != 2 {
		t.Fatalf("expected untouched default retry count, got %d", cfg.TrendAPI.RetryCount)
	}
	if cfg.Trends.DefaultSource != SourceStored || cfg.Trends.MaxKeywords != 4 {
		t.Fatalf("unexpected trends config: %+v", cfg.Trends)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected debug level, got %s", cfg.Log.Level)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("POSTGRES_DSN=postgres://dotenv/trends\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// godotenv never overrides variables that are already set
	t.Setenv("POSTGRES_DSN", "")
	os.Unsetenv("POSTGRES_DSN")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Postgres.DSN != "postgres://dotenv/trends" {
		t.Fatalf("expected DSN from .env, got %s", cfg.Postgres.DSN)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr string
	}{
		{"missing_dsn", "", nil, "POSTGRES_DSN"},
		{"bad_source", "trends:\n  default_source: psychic\n", map[string]string{"POSTGRES_DSN": "x"}, "default_source"},
		{"bad_max_keywords_env", "", map[string]string{"POSTGRES_DSN": "x", "TREND_MAX_KEYWORDS": "many"}, "TREND_MAX_KEYWORDS"},
		{"zero_max_keywords", "trends:\n  max_keywords: 0\n", map[string]string{"POSTGRES_DSN": "x"}, "max_keywords"},
		{"broken_yaml", "http: [", map[string]string{"POSTGRES_DSN": "x"}, "parsing config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv("POSTGRES_DSN", "")
			t.Setenv("TREND_MAX_KEYWORDS", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			if tt.yaml != "" {
				path = writeConfig(t, tt.yaml)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("POSTGRES_DSN", "x")

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}
