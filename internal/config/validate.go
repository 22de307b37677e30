package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/bikestats/internal/model"
)

var validate = validator.New()

// Validate checks the resolved runtime settings.
func Validate(cfg model.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NormalizeCities lower-cases and trims city keys so they match the names
// accepted by validation and the registry.
func NormalizeCities(cities map[string]string) map[string]string {
	if cities == nil {
		return nil
	}
	out := make(map[string]string, len(cities))
	for name, path := range cities {
		out[strings.Join(strings.Fields(strings.ToLower(name)), " ")] = path
	}
	return out
}
