package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvProduction represents the production environment.
	EnvProduction = "production"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Env       string `envconfig:"ENV" default:"development"`
	Port      string `envconfig:"PORT" default:"8080"`
	PublicDir string `envconfig:"PUBLIC_DIR" default:"./public"`

	// Security settings
	HSTSMaxAge int    `envconfig:"HSTS_MAX_AGE" default:"31536000"`
	CSPMode    string `envconfig:"CSP_MODE" default:"relaxed"`

	// Logging settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Content settings
	ContentPath string `envconfig:"CONTENT_PATH"`

	// SSH settings
	SSHHost        string        `envconfig:"SSH_HOST" default:"0.0.0.0"`
	SSHPort        string        `envconfig:"SSH_PORT" default:"2222"`
	SSHHostKeyPath string        `envconfig:"SSH_HOST_KEY_PATH" default:".ssh/portfolio_ed25519"`
	SSHIdleTimeout time.Duration `envconfig:"SSH_IDLE_TIMEOUT" default:"10m"`
	SSHMaxSessions int           `envconfig:"SSH_MAX_SESSIONS" default:"32"`

	// Theme settings
	PrefsBackend string `envconfig:"PREFS_BACKEND" default:"file"`
	PrefsPath    string `envconfig:"PREFS_PATH"`
	SystemTheme  string `envconfig:"SYSTEM_THEME" default:"auto"`
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (*Config, error) {
	// Try to load .env file (optional for development)
	if err := godotenv.Load(); err != nil {
		// Not an error if file doesn't exist (expected in production)
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	// Parse environment variables into config struct
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects values the servers cannot start with.
func (c *Config) Validate() error {
	switch c.SystemTheme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("invalid SYSTEM_THEME %q: must be auto, dark or light", c.SystemTheme)
	}
	if c.SSHMaxSessions < 1 {
		return fmt.Errorf("invalid SSH_MAX_SESSIONS %d: must be at least 1", c.SSHMaxSessions)
	}
	return nil
}

// BuildCSP constructs Content Security Policy based on mode.
func BuildCSP(mode string) string {
	if mode == "strict" {
		// Production CSP
		return "default-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"script-src 'self'; " +
			"img-src 'self' data:; " +
			"object-src 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'"
	}

	// Development/relaxed CSP
	return "default-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"script-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:; " +
		"form-action 'self'"
}
