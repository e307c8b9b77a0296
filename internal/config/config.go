package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the API process reads from the environment.
// Values come from real env vars; cmd/api loads a .env file first in dev.
type Config struct {
	HTTPAddr string
	DBDSN    string

	JWTSecret string
	JWTTTL    time.Duration

	ClientURL    string // public storefront URL, used in reset-password links
	ContactEmail string // where contact/quote messages land

	SMTP SMTPConfig

	StorageDriver string // "local" or "s3"
}

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	From          string
	FromName      string
	TLSMode       string // "", "starttls" or "tls"
	SkipVerifyTLS bool
}

func FromEnv() (Config, error) {
	cfg := Config{
		HTTPAddr:      envOr("HTTP_ADDR", ":5000"),
		DBDSN:         os.Getenv("DB_DSN"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTL:        24 * time.Hour,
		ClientURL:     envOr("CLIENT_URL", "http://localhost:3000"),
		ContactEmail:  envOr("CONTACT_EMAIL", "contact@janadistrib.fr"),
		StorageDriver: envOr("STORAGE_DRIVER", "local"),
		SMTP: SMTPConfig{
			Host:          envOr("SMTP_HOST", "localhost"),
			Port:          envOr("SMTP_PORT", "587"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			From:          envOr("SMTP_FROM", "no-reply@janadistrib.fr"),
			FromName:      envOr("SMTP_FROM_NAME", "Jana Distrib"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: envBool("SMTP_SKIP_VERIFY_TLS"),
		},
	}

	if cfg.DBDSN == "" {
		return Config{}, fmt.Errorf("DB_DSN environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if raw := os.Getenv("JWT_TTL_HOURS"); raw != "" {
		h, err := strconv.Atoi(raw)
		if err != nil || h <= 0 {
			return Config{}, fmt.Errorf("invalid JWT_TTL_HOURS: %q", raw)
		}
		cfg.JWTTTL = time.Duration(h) * time.Hour
	}

	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string) bool {
	v, _ := strconv.ParseBool(os.Getenv(k))
	return v
}
