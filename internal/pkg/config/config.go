package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds the settings for the admin console binary.
type Config struct {
	// APIURL is the base URL of the remote admin API.
	APIURL string `env:"API_URL, default=http://localhost:8080"`
	// CredentialsFile is where the bearer token and user projection are
	// persisted between runs. Empty selects a default under the user
	// config dir.
	CredentialsFile string `env:"CREDENTIALS_FILE"`
	// LogFile is where the TUI writes structured logs (the terminal is
	// owned by the dashboard). Empty selects a default next to the
	// credentials file.
	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
}

// ServerConfig holds the settings for the mock API server binary.
type ServerConfig struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev-secret"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	// SeedAdminPassword is the password of the seeded admin account.
	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD, default=admin123"`
}

// Load reads console configuration from .env (when present) and the
// environment, then fills in path defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}

	if cfg.CredentialsFile == "" || cfg.LogFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve user config dir: %w", err)
		}
		base := filepath.Join(dir, "maja-admin")
		if cfg.CredentialsFile == "" {
			cfg.CredentialsFile = filepath.Join(base, "credentials.json")
		}
		if cfg.LogFile == "" {
			cfg.LogFile = filepath.Join(base, "admin.log")
		}
	}
	return &cfg, nil
}

// LoadServer reads mock API server configuration from .env and environment.
func LoadServer() (*ServerConfig, error) {
	_ = godotenv.Load()

	var cfg ServerConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
