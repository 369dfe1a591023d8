package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const minSecretLength = 32

// placeholderSecrets are values that show up in sample .env files and must never sign real tokens.
var placeholderSecrets = []string{
	"your-secret-key-change-in-production",
	"django-insecure-test-key",
	"changeme",
	"secret",
}

var (
	ErrMissingSecret = errors.New("JWT_SECRET is required")
	ErrWeakSecret    = errors.New("JWT_SECRET is too weak")
)

type Config struct {
	Port               string
	GinMode            string
	DatabaseURL        string
	DBMaxOpenConns     int
	DBMaxIdleConns     int
	JWTSecret          string
	JWTAccessExpiry    time.Duration
	JWTRefreshExpiry   time.Duration
	RedisURL           string
	UploadDir          string
	MaxUploadBytes     int64
	CORSAllowedOrigins []string
}

// Load reads configuration from the environment (and a .env file if one exists).
// It fails when the signing secret is absent or weak; there is no insecure fallback.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		DatabaseURL:        getEnv("DATABASE_URL", "planner.db"),
		DBMaxOpenConns:     getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:     getEnvInt("DB_MAX_IDLE_CONNS", 10),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTAccessExpiry:    getEnvDuration("JWT_ACCESS_EXPIRY", 168*time.Hour), // 7 days
		JWTRefreshExpiry:   getEnvDuration("JWT_REFRESH_EXPIRY", 168*time.Hour),
		RedisURL:           getEnv("REDIS_URL", ""),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:     int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if err := ValidateSecret(cfg.JWTSecret); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// ValidateSecret checks that a signing secret is present, long enough and not trivially guessable.
func ValidateSecret(secret string) error {
	if secret == "" {
		return ErrMissingSecret
	}
	if len(secret) < minSecretLength {
		return fmt.Errorf("%w: must be at least %d bytes", ErrWeakSecret, minSecretLength)
	}
	lower := strings.ToLower(secret)
	for _, p := range placeholderSecrets {
		if strings.Contains(lower, p) {
			return fmt.Errorf("%w: looks like a placeholder value", ErrWeakSecret)
		}
	}
	distinct := make(map[byte]struct{})
	for i := 0; i < len(secret); i++ {
		distinct[secret[i]] = struct{}{}
	}
	if len(distinct) < 12 {
		return fmt.Errorf("%w: not enough distinct characters", ErrWeakSecret)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
