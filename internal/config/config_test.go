// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var configEnv = []string{
	"APP_HOST", "APP_PORT", "APP_ENV", "LOG_LEVEL",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD", "VALKEY_DB",
	"WHATSAPP_NUMBER", "METRICS_ADDR",
	"TRANSITION_DELAY", "PAGE_CACHE_TTL", "RATE_LIMIT", "SHUTDOWN_TIMEOUT",
}

// cleanEnv unsets every variable Load reads and moves into an empty
// directory so no stray .env file is picked up.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "") // registers restore
		os.Unsetenv(key)
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	cleanEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"Host", cfg.Host, "0.0.0.0"},
		{"Port", cfg.Port, "8080"},
		{"Env", cfg.Env, "development"},
		{"ValkeyHost", cfg.ValkeyHost, "localhost"},
		{"ValkeyPort", cfg.ValkeyPort, "6379"},
		{"WhatsAppNumber", cfg.WhatsAppNumber, "918921142220"},
		{"TransitionDelay", cfg.TransitionDelay, 400 * time.Millisecond},
		{"PageCacheTTL", cfg.PageCacheTTL, 5 * time.Minute},
		{"RateLimit", cfg.RateLimit, 10},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
	if !cfg.IsDev() {
		t.Error("expected IsDev() for default env")
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr: got %q", cfg.Addr())
	}
}

func TestLoad_Overrides(t *testing.T) {
	cleanEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("TRANSITION_DELAY", "250ms")
	t.Setenv("RATE_LIMIT", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" || cfg.TransitionDelay != 250*time.Millisecond || cfg.RateLimit != 3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel: got %v", cfg.SlogLevel())
	}
}

func TestLoad_DotEnv(t *testing.T) {
	cleanEnv(t)
	if err := os.WriteFile(filepath.Join(".", ".env"), []byte("WHATSAPP_NUMBER=15550001111\nAPP_PORT=7000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("APP_PORT", "7100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WhatsAppNumber != "15550001111" {
		t.Errorf("WhatsAppNumber from .env: got %q", cfg.WhatsAppNumber)
	}
	if cfg.Port != "7100" {
		t.Errorf(".env must not override the environment: got %q", cfg.Port)
	}
}

func TestLoad_ProductionRequiresValkeyPassword(t *testing.T) {
	cleanEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "VALKEY_PASSWORD") {
		t.Fatalf("expected VALKEY_PASSWORD error, got %v", err)
	}

	t.Setenv("VALKEY_PASSWORD", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IsDev() {
		t.Error("production config reported IsDev")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"TRANSITION_DELAY", "soon"},
		{"TRANSITION_DELAY", "-1s"},
		{"RATE_LIMIT", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cleanEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestSlogLevelFallback(t *testing.T) {
	if got := (&Config{LogLevel: "loud"}).SlogLevel(); got != slog.LevelInfo {
		t.Errorf("got %v, want info", got)
	}
}
