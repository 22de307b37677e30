package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment overrides.
const (
	EnvDataDir = "BIKESHARE_DATA_DIR"
	EnvConfig  = "BIKESHARE_CONFIG"
)

// LoadDotEnv loads variables from a .env file without overriding the ones
// already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ConfigPath returns the config path, honoring BIKESHARE_CONFIG.
func ConfigPath() string {
	if v := os.Getenv(EnvConfig); v != "" {
		return v
	}
	return DefaultConfigPath()
}

// DefaultDataDir returns the dataset directory, honoring BIKESHARE_DATA_DIR.
func DefaultDataDir() string {
	if v := os.Getenv(EnvDataDir); v != "" {
		return v
	}
	return "."
}
