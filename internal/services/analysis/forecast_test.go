package analysis

import (
	"context"
	"math"
	"testing"
	"time"

	"TradeScout/internal/domain/models"
)

// fakeSource serves a flat daily close for every business day before the
// cutoff and records each requested window.
type fakeSource struct {
	close  float64
	cutoff time.Time // zero means unbounded
	calls  [][2]time.Time
}

func (s *fakeSource) History(_ context.Context, _ string, from, to time.Time) ([]models.PricePoint, error) {
	s.calls = append(s.calls, [2]time.Time{from, to})
	var out []models.PricePoint
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		if !IsBusinessDay(d) {
			continue
		}
		if !s.cutoff.IsZero() && !d.Before(s.cutoff) {
			continue
		}
		out = append(out, models.PricePoint{Date: d, Close: s.close})
	}
	return out, nil
}

func TestComputeFlatSeriesAllOnes(t *testing.T) {
	src := &fakeSource{close: 42}
	f := NewForecaster(src)

	got, err := f.Compute(context.Background(), "SPY", date(2024, 10, 7), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(DefaultHorizons) {
		t.Fatalf("expected %d ratios, got %d", len(DefaultHorizons), len(got))
	}
	for i, r := range got {
		if r != 1.0 {
			t.Fatalf("flat series must forecast 1.0 at horizon %d, got %v", DefaultHorizons[i], r)
		}
	}
}

func TestComputeMissingWindowIsNaN(t *testing.T) {
	// data stops two weeks in; the long horizons have nothing to average
	src := &fakeSource{close: 42, cutoff: date(2024, 10, 21)}
	f := NewForecaster(src)

	got, err := f.Compute(context.Background(), "SPY", date(2024, 10, 7), []int{5, 105})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != 1.0 {
		t.Fatalf("near horizon should be covered, got %v", got[0])
	}
	if !math.IsNaN(got[1]) {
		t.Fatalf("far horizon must degrade to NaN, got %v", got[1])
	}
}

func TestComputeCursorIsCumulative(t *testing.T) {
	src := &fakeSource{close: 10}
	f := NewForecaster(src)

	// Monday base date; two one-day horizons land on Tue then Wed, because
	// the second horizon advances from where the first one landed.
	if _, err := f.Compute(context.Background(), "SPY", date(2024, 10, 7), []int{1, 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(src.calls) != 3 {
		t.Fatalf("expected 3 window fetches, got %d", len(src.calls))
	}
	if !src.calls[1][0].Equal(date(2024, 10, 8)) {
		t.Fatalf("first horizon window must start tuesday, got %v", src.calls[1][0])
	}
	if !src.calls[2][0].Equal(date(2024, 10, 9)) {
		t.Fatalf("second horizon window must start wednesday, got %v", src.calls[2][0])
	}
}

func TestComputeEmptyBaselinePoisonsAll(t *testing.T) {
	src := &fakeSource{close: 42, cutoff: date(2024, 1, 1)}
	f := NewForecaster(src)

	got, err := f.Compute(context.Background(), "SPY", date(2024, 10, 7), []int{21})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got[0]) {
		t.Fatalf("NaN baseline must propagate, got %v", got[0])
	}
}
