package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `json:"server"`
	Strava   StravaConfig   `json:"strava"`
	Database DatabaseConfig `json:"database"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Address string `json:"address"`
}

// StravaConfig holds Strava API credentials and endpoints
type StravaConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	BaseURL      string `json:"base_url"`
	RedirectURL  string `json:"redirect_url"`
}

// DatabaseConfig holds the SQLite settings
type DatabaseConfig struct {
	Path string `json:"path"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Address: ":8080",
		},
		Strava: StravaConfig{
			BaseURL:     "https://www.strava.com/api/v3",
			RedirectURL: "http://localhost:8080/callback",
		},
		Database: DatabaseConfig{
			Path: "data/stravaproxy.db",
		},
	}
}

// Load reads the configuration file at path, falling back to defaults for
// missing values and applying environment overrides last. A missing file is
// not an error; the environment alone can carry the credentials.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)

	return &cfg, nil
}

// applyDefaults fills values a partial config file left empty
func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.Server.Address == "" {
		cfg.Server.Address = defaults.Server.Address
	}
	if cfg.Strava.BaseURL == "" {
		cfg.Strava.BaseURL = defaults.Strava.BaseURL
	}
	if cfg.Strava.RedirectURL == "" {
		cfg.Strava.RedirectURL = defaults.Strava.RedirectURL
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = defaults.Database.Path
	}
}

// applyEnv lets the environment override file values
func applyEnv(cfg *Config) {
	setFromEnv(&cfg.Server.Address, "HTTP_ADDRESS")
	setFromEnv(&cfg.Strava.ClientID, "STRAVA_CLIENT_ID")
	setFromEnv(&cfg.Strava.ClientSecret, "STRAVA_CLIENT_SECRET")
	setFromEnv(&cfg.Strava.BaseURL, "STRAVA_BASE_URL")
	setFromEnv(&cfg.Strava.RedirectURL, "STRAVA_REDIRECT_URL")
	setFromEnv(&cfg.Database.Path, "DATABASE_PATH")
}

func setFromEnv(target *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*target = value
	}
}

// Validate checks if the config has required fields
func (c *Config) Validate() error {
	if c.Strava.ClientID == "" {
		return errors.New("strava.client_id is required - get it from https://www.strava.com/settings/api")
	}
	if c.Strava.ClientSecret == "" {
		return errors.New("strava.client_secret is required - get it from https://www.strava.com/settings/api")
	}
	if c.Strava.BaseURL == "" {
		return errors.New("strava.base_url is required")
	}
	return nil
}
