package explore

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/bikestats/internal/menu"
	"github.com/verte-zerg/bikestats/internal/model"
	"github.com/verte-zerg/bikestats/internal/stats"
)

type fakeSelector struct {
	selections []model.Selection
	calls      int
	err        error
}

func (f *fakeSelector) Select(context.Context) (model.Selection, error) {
	if f.calls >= len(f.selections) {
		if f.err != nil {
			return model.Selection{}, f.err
		}
		return model.Selection{}, menu.ErrAborted
	}
	sel := f.selections[f.calls]
	f.calls++
	return sel, nil
}

type fakeLoader struct {
	tables map[model.City]*model.Table
	err    error
	seen   []model.Selection
}

func (f *fakeLoader) Load(_ context.Context, sel model.Selection) (*model.Table, error) {
	f.seen = append(f.seen, sel)
	if f.err != nil {
		return nil, f.err
	}
	table, ok := f.tables[sel.City]
	if !ok {
		return nil, errors.New("no such city")
	}
	table.Selection = sel
	return table, nil
}

type fakeConfirmer struct {
	answers []bool
	calls   int
}

func (f *fakeConfirmer) Confirm(context.Context) (bool, error) {
	if f.calls >= len(f.answers) {
		return false, nil
	}
	answer := f.answers[f.calls]
	f.calls++
	return answer, nil
}

func chicagoTable() *model.Table {
	start := time.Date(2017, 1, 2, 9, 0, 0, 0, time.UTC)
	return &model.Table{
		City: model.Chicago,
		Trips: []model.Trip{{
			Start:        start,
			StartStation: "A",
			EndStation:   "B",
			Duration:     60,
			UserType:     "Subscriber",
			Month:        1,
			DayOfWeek:    "Monday",
			Hour:         9,
		}},
		Warnings: []string{`row 3: invalid Birth Year "abc"`},
	}
}

func newSession(sel *fakeSelector, loader *fakeLoader, confirm *fakeConfirmer) (*Session, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Session{
		Selector:  sel,
		Loader:    loader,
		Confirmer: confirm,
		Out:       &out,
		Err:       &errOut,
		Report:    stats.Options{},
	}, &out, &errOut
}

func TestRunSinglePass(t *testing.T) {
	sel := model.Selection{City: model.Chicago, Month: model.MonthAll, Day: model.WeekdayAll}
	loader := &fakeLoader{tables: map[model.City]*model.Table{model.Chicago: chicagoTable()}}
	confirm := &fakeConfirmer{answers: []bool{false}}
	s, out, errOut := newSession(&fakeSelector{selections: []model.Selection{sel}}, loader, confirm)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(loader.seen) != 1 {
		t.Fatalf("expected one load, got %d", len(loader.seen))
	}
	if !strings.Contains(out.String(), "Chicago: 1 trip") {
		t.Fatalf("expected report output:\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), `warning: row 3: invalid Birth Year "abc"`) {
		t.Fatalf("expected warning on stderr:\n%s", errOut.String())
	}
	if confirm.calls != 1 {
		t.Fatalf("expected one restart prompt, got %d", confirm.calls)
	}
}

func TestRunRestarts(t *testing.T) {
	sel := model.Selection{City: model.Chicago, Month: model.MonthAll, Day: model.WeekdayAll}
	loader := &fakeLoader{tables: map[model.City]*model.Table{model.Chicago: chicagoTable()}}
	selector := &fakeSelector{selections: []model.Selection{sel, sel}}
	s, out, _ := newSession(selector, loader, &fakeConfirmer{answers: []bool{true, false}})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if selector.calls != 2 {
		t.Fatalf("expected two passes, got %d", selector.calls)
	}
	if got := strings.Count(out.String(), "Calculating Trip Duration..."); got != 2 {
		t.Fatalf("expected two reports, got %d", got)
	}
}

func TestRunLoadErrorGoesToRestart(t *testing.T) {
	sel := model.Selection{City: model.Washington, Month: model.MonthAll, Day: model.WeekdayAll}
	loader := &fakeLoader{err: errors.New("failed to open washington.csv")}
	confirm := &fakeConfirmer{answers: []bool{false}}
	s, out, errOut := newSession(&fakeSelector{selections: []model.Selection{sel}}, loader, confirm)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(errOut.String(), "Could not load data: failed to open washington.csv") {
		t.Fatalf("expected load error message:\n%s", errOut.String())
	}
	if out.Len() != 0 {
		t.Fatalf("expected no report output:\n%s", out.String())
	}
	if confirm.calls != 1 {
		t.Fatalf("expected restart prompt after load error")
	}
}

func TestRunAbortIsCleanExit(t *testing.T) {
	s, _, _ := newSession(&fakeSelector{}, &fakeLoader{}, &fakeConfirmer{})
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("expected nil on abort, got %v", err)
	}
}

func TestRunSelectorError(t *testing.T) {
	boom := errors.New("boom")
	s, _, _ := newSession(&fakeSelector{err: boom}, &fakeLoader{}, &fakeConfirmer{})
	if err := s.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped selector error, got %v", err)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, _, _ := newSession(&fakeSelector{}, &fakeLoader{}, &fakeConfirmer{})
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPassReturnsLoadError(t *testing.T) {
	boom := errors.New("boom")
	s, _, _ := newSession(&fakeSelector{}, &fakeLoader{err: boom}, &fakeConfirmer{})
	if err := s.Pass(context.Background(), model.Selection{City: model.Chicago}); !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
}
