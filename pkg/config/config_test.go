package config

import (
	"errors"
	"testing"
	"time"
)

const strongSecret = "k3J9x!qP7zR2mW8vN4tB6yH1cF5gD0sL"

func TestValidateSecret(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr error
	}{
		{name: "missing", secret: "", wantErr: ErrMissingSecret},
		{name: "too short", secret: "abc123", wantErr: ErrWeakSecret},
		{name: "placeholder", secret: "your-secret-key-change-in-production-please", wantErr: ErrWeakSecret},
		{name: "repetitive", secret: "abababababababababababababababababab", wantErr: ErrWeakSecret},
		{name: "strong", secret: strongSecret, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSecret(tt.secret)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", strongSecret)
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_ACCESS_EXPIRY", "2h")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.JWTAccessExpiry != 2*time.Hour {
		t.Errorf("expected 2h access expiry, got %v", cfg.JWTAccessExpiry)
	}
	if cfg.JWTRefreshExpiry != 168*time.Hour {
		t.Errorf("expected default refresh expiry, got %v", cfg.JWTRefreshExpiry)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Errorf("expected 1024 upload bytes, got %d", cfg.MaxUploadBytes)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://b.test" {
		t.Errorf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}
