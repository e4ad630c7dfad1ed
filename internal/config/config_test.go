package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var allKeys = []string{
	"APP_PORT", "HISTORY_ENABLED", "MYSQL_HOST", "MYSQL_PORT", "MYSQL_DB", "MYSQL_USER", "MYSQL_PASS",
	"REDIS_ADDR", "REDIS_DB", "IDEMPOTENCY_TTL_SECONDS",
}

// clearEnv blanks every key Load reads and runs the test from an empty dir so no .env is picked up.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
	// Equivalent of t.Chdir (Go 1.24+) for older toolchains.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q, want 8080", c.AppPort)
	}
	if !c.HistoryEnabled {
		t.Fatalf("HistoryEnabled = false, want true")
	}
	if c.RedisAddr != "" {
		t.Fatalf("RedisAddr = %q, want empty", c.RedisAddr)
	}
	if c.IdempotencyTTL() != 300*time.Second {
		t.Fatalf("IdempotencyTTL = %v, want 5m", c.IdempotencyTTL())
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate defaults: %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("HISTORY_ENABLED", "false")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")

	c := Load()
	if c.AppPort != "9090" || c.HistoryEnabled || c.RedisAddr != "localhost:6379" || c.RedisDB != 3 {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.IdempotencyTTL() != time.Minute {
		t.Fatalf("IdempotencyTTL = %v, want 1m", c.IdempotencyTTL())
	}
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "x")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "soon")
	t.Setenv("HISTORY_ENABLED", "maybe")

	c := Load()
	if c.RedisDB != 0 || c.IdempTTLSecs != 300 || !c.HistoryEnabled {
		t.Fatalf("unexpected fallbacks: %+v", c)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, so unset the ones under test
	os.Unsetenv("MYSQL_DB")
	os.Unsetenv("APP_PORT")
	t.Cleanup(func() {
		os.Unsetenv("MYSQL_DB")
		os.Unsetenv("APP_PORT")
	})
	if err := os.WriteFile(filepath.Join(".", ".env"), []byte("MYSQL_DB=fromfile\nAPP_PORT=7070\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	c := Load()
	if c.MySQLDB != "fromfile" || c.AppPort != "7070" {
		t.Fatalf("expected values from .env, got MySQLDB=%q AppPort=%q", c.MySQLDB, c.AppPort)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			AppPort: "8080", HistoryEnabled: true,
			MySQLHost: "db", MySQLPort: "3306", MySQLDB: "mortgage", MySQLUser: "u",
			IdempTTLSecs: 300,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"ok", func(c *Config) {}, ""},
		{"missing app port", func(c *Config) { c.AppPort = "" }, "APP_PORT"},
		{"bad app port", func(c *Config) { c.AppPort = "notaport" }, "APP_PORT"},
		{"missing mysql host", func(c *Config) { c.MySQLHost = "" }, "MySQL"},
		{"bad mysql port", func(c *Config) { c.MySQLPort = "abc" }, "MYSQL_PORT"},
		{"history disabled skips mysql", func(c *Config) { c.HistoryEnabled = false; c.MySQLHost = "" }, ""},
		{"redis with zero ttl", func(c *Config) { c.RedisAddr = "r:6379"; c.IdempTTLSecs = 0 }, "IDEMPOTENCY_TTL_SECONDS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	c := &Config{MySQLHost: "db", MySQLPort: "3306", MySQLDB: "mortgage", MySQLUser: "u", MySQLPass: "p"}
	want := "u:p@tcp(db:3306)/mortgage?parseTime=true&charset=utf8mb4,utf8"
	if got := c.MySQLDSN(); got != want {
		t.Fatalf("DSN = %q, want %q", got, want)
	}
}
