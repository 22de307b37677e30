package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/verte-zerg/bikestats/internal/model"
)

const (
	banner         = "Hello! Let's explore some US bikeshare data!"
	restartPrompt  = "Would you like to restart? Enter yes or no."
	cityPrompt     = "Please choose a city:"
	monthPrompt    = "Please choose a month:"
	dayPrompt      = "Please choose a day:"
	separatorWidth = 40
)

// Selector collects the filter triple for one pass.
type Selector struct {
	prompter *Prompter
	cities   []model.City
}

// NewSelector constructs a selector offering cities in order.
func NewSelector(p *Prompter, cities []model.City) *Selector {
	if len(cities) == 0 {
		cities = model.Cities
	}
	return &Selector{prompter: p, cities: cities}
}

// Select prints the banner and asks for city, month and day.
func (s *Selector) Select(ctx context.Context) (model.Selection, error) {
	if _, err := fmt.Fprintln(s.prompter.out, banner); err != nil {
		return model.Selection{}, err
	}
	city, err := choose(ctx, s.prompter, cityPrompt, s.cities)
	if err != nil {
		return model.Selection{}, err
	}
	month, err := choose(ctx, s.prompter, monthPrompt, model.MonthOptions())
	if err != nil {
		return model.Selection{}, err
	}
	day, err := choose(ctx, s.prompter, dayPrompt, model.WeekdayOptions())
	if err != nil {
		return model.Selection{}, err
	}
	if _, err := fmt.Fprintln(s.prompter.out, strings.Repeat("-", separatorWidth)); err != nil {
		return model.Selection{}, err
	}
	return model.Selection{City: city, Month: month, Day: day}, nil
}

// Confirm asks whether to run another pass.
func (s *Selector) Confirm(ctx context.Context) (bool, error) {
	return s.prompter.Confirm(ctx, restartPrompt)
}

func choose[T ~string](ctx context.Context, p *Prompter, title string, options []T) (T, error) {
	names := make([]string, len(options))
	for i, option := range options {
		names[i] = string(option)
	}
	idx, err := p.Choose(ctx, title, names)
	if err != nil {
		var zero T
		return zero, err
	}
	return options[idx], nil
}
