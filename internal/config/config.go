// Package config gathers runtime settings from the environment and an
// optional .env file.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds all application configuration.
type Config struct {
	// Port the web server listens on (PORT)
	Port string
	// GinMode is passed to gin.SetMode when set (GIN_MODE)
	GinMode string
	// ContentPath overrides the embedded portfolio document (CONTENT_PATH)
	ContentPath string
	// StaticDir is served under /static (STATIC_DIR)
	StaticDir string
	// BaseURL is the canonical site URL; falls back to the profile (BASE_URL)
	BaseURL string
	// LogLevel is one of debug, info, warn, error (LOG_LEVEL)
	LogLevel string

	Session SessionConfig
	SMTP    SMTPConfig
}

// SessionConfig bounds the per-visitor view state kept by the web server.
type SessionConfig struct {
	Capacity int
	TTL      time.Duration
}

// SMTPConfig configures the contact form relay.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	// To defaults to the profile email when empty
	To string
}

// Enabled reports whether credentials are present.
func (s SMTPConfig) Enabled() bool {
	return s.User != "" && s.Pass != ""
}

// DefaultConfig returns defaults used when the environment is silent.
func DefaultConfig() *Config {
	return &Config{
		Port:      "8080",
		StaticDir: "./static",
		LogLevel:  "info",
		Session: SessionConfig{
			Capacity: 1024,
			TTL:      30 * time.Minute,
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
	}
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment over DefaultConfig.
func FromEnv() (*Config, error) {
	cfg := DefaultConfig()

	setString(&cfg.Port, "PORT")
	setString(&cfg.GinMode, "GIN_MODE")
	setString(&cfg.ContentPath, "CONTENT_PATH")
	setString(&cfg.StaticDir, "STATIC_DIR")
	setString(&cfg.BaseURL, "BASE_URL")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	setString(&cfg.SMTP.Host, "SMTP_HOST")
	setString(&cfg.SMTP.Port, "SMTP_PORT")
	setString(&cfg.SMTP.User, "SMTP_USER")
	setString(&cfg.SMTP.Pass, "SMTP_PASS")
	setString(&cfg.SMTP.To, "TO_EMAIL")

	if v := os.Getenv("SESSION_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, errors.Errorf("SESSION_CAPACITY must be a positive integer, got %q", v)
		}
		cfg.Session.Capacity = n
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, errors.Errorf("SESSION_TTL must be a positive duration, got %q", v)
		}
		cfg.Session.TTL = d
	}

	return cfg, nil
}

// Addr returns the listen address for the web server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
