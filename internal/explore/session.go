// Package explore runs the prompt, load, report and restart loop.
package explore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/verte-zerg/bikestats/internal/menu"
	"github.com/verte-zerg/bikestats/internal/model"
	"github.com/verte-zerg/bikestats/internal/stats"
)

// Selector collects the filters for one pass.
type Selector interface {
	Select(ctx context.Context) (model.Selection, error)
}

// Loader builds the filtered table for a selection.
type Loader interface {
	Load(ctx context.Context, sel model.Selection) (*model.Table, error)
}

// Confirmer asks whether to run another pass.
type Confirmer interface {
	Confirm(ctx context.Context) (bool, error)
}

// Session wires the interactive loop.
type Session struct {
	Selector  Selector
	Loader    Loader
	Confirmer Confirmer
	Out       io.Writer
	Err       io.Writer
	Report    stats.Options
}

// Run repeats select, load, report and restart until the user stops.
// Leaving a menu or declining the restart ends the loop without error.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		sel, err := s.Selector.Select(ctx)
		if err != nil {
			if errors.Is(err, menu.ErrAborted) {
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("failed to read filters: %w", err)
		}

		table, err := s.Loader.Load(ctx, sel)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			s.logf("Could not load data: %v\n", err)
		} else if err := s.report(table); err != nil {
			return err
		}

		again, err := s.Confirmer.Confirm(ctx)
		if err != nil {
			if errors.Is(err, menu.ErrAborted) {
				return nil
			}
			return fmt.Errorf("failed to read answer: %w", err)
		}
		if !again {
			return nil
		}
	}
}

// Pass loads one selection and prints its report. Load warnings go to Err.
func (s *Session) Pass(ctx context.Context, sel model.Selection) error {
	table, err := s.Loader.Load(ctx, sel)
	if err != nil {
		return err
	}
	return s.report(table)
}

func (s *Session) report(table *model.Table) error {
	for _, w := range table.Warnings {
		s.logf("warning: %s\n", w)
	}
	if err := stats.WriteReport(s.Out, table, s.Report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (s *Session) logf(format string, args ...any) {
	w := s.Err
	if w == nil {
		w = s.Out
	}
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		// Best-effort diagnostics.
		_ = err
	}
}
