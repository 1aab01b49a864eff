package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "TLS_CERT_FILE", "TLS_KEY_FILE", "TOKEN_KEY", "TOKEN_TTL_HOURS",
		"CORS_ALLOWED_ORIGIN", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOG_LEVEL", "LOG_FORMAT", "MAX_UPLOAD_MB"} {
		t.Setenv(k, "")
	}
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8443" {
		t.Errorf("expected port 8443, got %q", cfg.Port)
	}
	if cfg.TokenTTL != 720*time.Hour {
		t.Errorf("expected 720h TTL, got %v", cfg.TokenTTL)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("unexpected rate limit %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Errorf("expected 10 MiB upload limit, got %d", cfg.MaxUploadBytes)
	}
	if cfg.CORSAllowedOrigin != "*" || cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.TLSEnabled() || cfg.AuthEnabled() {
		t.Error("TLS and auth must be off by default")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TOKEN_KEY", "secret")
	t.Setenv("TOKEN_TTL_HOURS", "2")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("TLS_CERT_FILE", "cert.pem")
	t.Setenv("TLS_KEY_FILE", "key.pem")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" || cfg.TokenTTL != 2*time.Hour || cfg.RateLimitRPS != 0.5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if !cfg.TLSEnabled() || !cfg.AuthEnabled() {
		t.Error("expected TLS and auth enabled")
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"TOKEN_TTL_HOURS", "abc"},
		{"TOKEN_TTL_HOURS", "0"},
		{"RATE_LIMIT_RPS", "-1"},
		{"RATE_LIMIT_BURST", "x"},
		{"MAX_UPLOAD_MB", "0"},
		{"TLS_CERT_FILE", "cert.pem"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv("TLS_KEY_FILE", "")
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("expected an error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
