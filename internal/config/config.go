// Package config owns the user-scoped configuration: the small JSON
// file remembering the last-used account, and the per-user directories
// the credentials and token files live in.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const appName = "gcal"

// Dir returns the per-user configuration directory.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, appName)
}

// CacheDir returns the per-user cache directory where OAuth tokens are
// stored.
func CacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, appName)
}

// CredentialsFile returns the path of the OAuth client credentials JSON
// downloaded from the Google Cloud console.
func CredentialsFile() string {
	return filepath.Join(Dir(), "credentials.json")
}

func configFile() string {
	return filepath.Join(Dir(), "config.json")
}

// Config holds the persisted user settings.
type Config struct {
	// Account is the last-used account name, the default for commands
	// run without --account.
	Account string `json:"account,omitempty"`
}

// Load reads the config file. A missing file is not an error and yields
// an empty config.
func Load() (*Config, error) {
	data, err := os.ReadFile(configFile())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configFile(), err)
	}
	return &cfg, nil
}

// Save writes the config file, creating the config directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(Dir(), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFile(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
