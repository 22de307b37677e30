// Package registry maps cities to their backing datasets.
package registry

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/bikestats/internal/model"
)

var defaultFiles = map[model.City]string{
	model.Chicago:     "chicago.csv",
	model.NewYorkCity: "new_york_city.csv",
	model.Washington:  "washington.csv",
}

// Registry resolves the dataset locator for each city.
type Registry struct {
	dataDir string
	paths   map[model.City]string
}

// New builds a registry rooted at dataDir. Overrides replace the default file
// for a city and are keyed by city name.
func New(dataDir string, overrides map[string]string) (*Registry, error) {
	paths := make(map[model.City]string, len(defaultFiles))
	for city, file := range defaultFiles {
		paths[city] = file
	}
	for name, path := range overrides {
		city, err := model.ParseCity(name)
		if err != nil {
			return nil, fmt.Errorf("invalid city override: %w", err)
		}
		path = strings.TrimSpace(path)
		if path == "" {
			return nil, fmt.Errorf("empty path for city %q", city)
		}
		paths[city] = path
	}
	return &Registry{dataDir: dataDir, paths: paths}, nil
}

// Path returns the locator for city. Relative paths are joined with the data
// directory; absolute paths and DSNs are returned as is.
func (r *Registry) Path(city model.City) string {
	path, ok := r.paths[city]
	if !ok {
		return ""
	}
	if IsDSN(path) || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.dataDir, path)
}

// Cities returns the registered cities in menu order.
func (r *Registry) Cities() []model.City {
	return append([]model.City(nil), model.Cities...)
}

// IsDSN reports whether path is a scheme://... locator.
func IsDSN(path string) bool {
	return strings.Contains(path, "://")
}
