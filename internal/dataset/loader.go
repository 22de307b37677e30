// Package dataset loads bikeshare trip tables and applies selection filters.
package dataset

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/bikestats/internal/model"
	"github.com/verte-zerg/bikestats/internal/registry"
)

// Loader reads city datasets resolved through a registry.
type Loader struct {
	registry *registry.Registry
	progress io.Writer
}

// Option configures a Loader.
type Option func(*Loader)

// WithProgress renders a byte progress bar to w while CSV files load.
func WithProgress(w io.Writer) Option {
	return func(l *Loader) {
		l.progress = w
	}
}

// NewLoader constructs a loader over reg.
func NewLoader(reg *registry.Registry, opts ...Option) *Loader {
	l := &Loader{registry: reg}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the selected city and applies the month and day filters.
// The table is rebuilt from the source on every call.
func (l *Loader) Load(ctx context.Context, sel model.Selection) (*model.Table, error) {
	table, err := l.LoadCity(ctx, sel.City)
	if err != nil {
		return nil, err
	}
	return Filter(table, sel.Month, sel.Day), nil
}

// LoadCity reads every trip of city without filtering.
func (l *Loader) LoadCity(ctx context.Context, city model.City) (*model.Table, error) {
	locator := l.registry.Path(city)
	if locator == "" {
		return nil, fmt.Errorf("no dataset registered for %q", city)
	}
	f, err := l.read(ctx, locator)
	if err != nil {
		return nil, err
	}
	return buildTable(f, city)
}

func (l *Loader) read(ctx context.Context, locator string) (*frame, error) {
	switch {
	case isMySQLLocator(locator):
		return readMySQL(ctx, locator)
	case registry.IsDSN(locator):
		scheme, _, _ := strings.Cut(locator, "://")
		return nil, fmt.Errorf("unsupported dataset scheme %q", scheme)
	case isSQLiteFile(locator):
		return readSQLite(ctx, locator)
	default:
		return readCSV(ctx, locator, l.progress)
	}
}
