package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the process needs, read once at startup and
// passed by reference to the components that use it. Nothing reads the
// environment after Load returns.
type Config struct {
	Port            string
	AcceptedOrigins []string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	DatabaseDSN string

	JWTSecret string
	TokenTTL  time.Duration

	// Optional bootstrap credentials: when both are set and the user does not
	// exist yet, an admin account is created at startup.
	AdminEmail    string
	AdminPassword string

	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
	S3BaseEndpoint string
	// Presigned download URLs expire after this long.
	S3URLExpiry time.Duration

	ResendAPIKey   string
	ResendFrom     string
	ContactEmailTo string
}

// Load builds a Config from the process environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getString("PORT", "8080"),
		AcceptedOrigins: splitOrigins(getString("ACCEPTED_ORIGINS", "*")),

		ReadTimeout:  getSeconds("READ_TIMEOUT_SECONDS", 180),
		WriteTimeout: getSeconds("WRITE_TIMEOUT_SECONDS", 180),
		IdleTimeout:  getSeconds("IDLE_TIMEOUT_SECONDS", 180),

		DatabaseDSN: buildDSN(),

		JWTSecret: getString("JWT_SECRET", ""),
		TokenTTL:  getSeconds("TOKEN_TTL_SECONDS", 24*3600),

		AdminEmail:    getString("ADMIN_EMAIL", ""),
		AdminPassword: getString("ADMIN_PASSWORD", ""),

		S3Region:       getString("S3_REGION", "us-east-1"),
		S3Bucket:       getString("S3_BUCKET", ""),
		S3AccessKey:    getString("S3_ACCESS_KEY", ""),
		S3SecretKey:    getString("S3_SECRET_KEY", ""),
		S3BaseEndpoint: getString("S3_BASE_ENDPOINT", ""),
		S3URLExpiry:    getSeconds("S3_URL_EXPIRY_SECONDS", 7*24*3600),

		ResendAPIKey:   getString("RESEND_API_KEY", ""),
		ResendFrom:     getString("RESEND_FROM_EMAIL", ""),
		ContactEmailTo: getString("CONTACT_EMAIL_TO", ""),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

// buildDSN assembles a postgres connection string from the DB_* variables.
func buildDSN() string {
	if dsn := getString("DATABASE_DSN", ""); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getString("DB_HOST", "localhost"),
		getString("DB_USER", "postgres"),
		getString("DB_PASSWORD", ""),
		getString("DB_NAME", "portfolio"),
		getString("DB_PORT", "5432"),
		getString("DB_SSLMODE", "disable"),
	)
}

func getString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getSeconds(key string, fallback int) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return time.Duration(fallback) * time.Second
	}
	asInt, err := strconv.Atoi(value)
	if err != nil {
		return time.Duration(fallback) * time.Second
	}
	return time.Duration(asInt) * time.Second
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
