package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Provider exposes application configuration to the rest of the app.
// Consumers depend on this interface so tests can substitute fixed values.
type Provider interface {
	GetAPIBaseURL() string
	GetAddr() string
	GetSessionSecret() string
	GetStateDir() string
	GetRequestTimeoutSeconds() int
}

// Config holds all configuration for the console.
type Config struct {
	APIBaseURL            string
	Addr                  string
	SessionSecret         string
	StateDir              string
	RequestTimeoutSeconds int
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		Addr:          os.Getenv("ADDR"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		StateDir:      os.Getenv("STATE_DIR"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:4000"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("Required environment variable SESSION_SECRET is not set.")
	}
	if cfg.StateDir == "" {
		cfg.StateDir = ".openpersona"
	}
	if raw := os.Getenv("REQUEST_TIMEOUT_SECONDS"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			cfg.RequestTimeoutSeconds = v
		}
	}

	return cfg
}

func (c *Config) GetAPIBaseURL() string { return c.APIBaseURL }

func (c *Config) GetAddr() string { return c.Addr }

func (c *Config) GetSessionSecret() string { return c.SessionSecret }

func (c *Config) GetStateDir() string { return c.StateDir }

func (c *Config) GetRequestTimeoutSeconds() int { return c.RequestTimeoutSeconds }
