// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileConfig represents the configuration file.
type FileConfig struct {
	Data   DataConfig        `toml:"data" yaml:"data"`
	Cities map[string]string `toml:"cities" yaml:"cities"`
	Report ReportConfig      `toml:"report" yaml:"report"`
}

// DataConfig maps dataset location settings.
type DataConfig struct {
	Dir *string `toml:"dir" yaml:"dir"`
}

// ReportConfig maps report and prompt settings.
type ReportConfig struct {
	Timing   *bool `toml:"timing" yaml:"timing"`
	Progress *bool `toml:"progress" yaml:"progress"`
	Plain    *bool `toml:"plain" yaml:"plain"`
}

// LoadConfig reads a TOML config from the given path. Paths ending in .yaml or
// .yml are decoded as YAML. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return FileConfig{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	}
	return cfg, nil
}
