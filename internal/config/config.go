package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EnvAPIKey is the environment variable checked before the config file
const EnvAPIKey = "GEMINI_API_KEY"

// Config stores all application configuration
type Config struct {
	// Gemini API key entered through the setup screen
	APIKey string `json:"api_key,omitempty"`
	// Last selected visual style
	Style string `json:"style,omitempty"`
	// Last selected aspect ratio
	AspectRatio string `json:"aspect_ratio,omitempty"`
}

// Dir returns the configuration directory path
func Dir() (string, error) {
	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "director-ai"), nil
	}

	// Fall back to ~/.config
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "director-ai"), nil
}

// configPath returns the full path to the config file
func configPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration from disk
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to disk
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	// The file holds a credential
	return os.WriteFile(path, data, 0600)
}

// ResolvedKey returns the API key to use: the environment variable wins
// over the stored key
func (c *Config) ResolvedKey() string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	return c.APIKey
}

// HasKey returns true if a usable API key is available
func (c *Config) HasKey() bool {
	return c.ResolvedKey() != ""
}
