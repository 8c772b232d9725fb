package usecase

import (
	"context"
	"testing"
	"time"

	"TradeScout/internal/domain/models"
	"TradeScout/internal/services/analysis"
	"TradeScout/internal/services/marketdata"
)

// flatSource serves the same close for every business day in range.
type flatSource struct {
	close float64
}

func (s *flatSource) History(_ context.Context, _ string, from, to time.Time) ([]models.PricePoint, error) {
	var out []models.PricePoint
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		if analysis.IsBusinessDay(d) {
			out = append(out, models.PricePoint{Date: d, Close: s.close})
		}
	}
	return out, nil
}

func TestForecastFlatSeries(t *testing.T) {
	uc := NewForecastUseCase(&flatSource{close: 42}, nil)

	f, err := uc.Compute(context.Background(), ForecastParams{
		Symbol: "SPY",
		Date:   time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Horizons) != len(analysis.DefaultHorizons) {
		t.Fatalf("defaults not applied: %v", f.Horizons)
	}
	for i, r := range f.Ratios {
		if r != 1.0 {
			t.Fatalf("flat series ratio at %d: %v", i, r)
		}
	}
}

func TestForecastUsesConfiguredDefaultHorizons(t *testing.T) {
	uc := NewForecastUseCase(&flatSource{close: 42}, nil)
	uc.SetDefaultHorizons([]int{5, 10})

	f, err := uc.Compute(context.Background(), ForecastParams{
		Symbol: "SPY",
		Date:   time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Horizons) != 2 || f.Horizons[0] != 5 || f.Horizons[1] != 10 {
		t.Fatalf("configured horizons not applied: %v", f.Horizons)
	}
}

// recordingStore captures stored signals and serves canned recent forecasts.
type recordingStore struct {
	recent []*models.Forecast
}

func (s *recordingStore) Init(context.Context) error { return nil }

func (s *recordingStore) StoreTurningPoints(context.Context, *models.TurningPoints) error {
	return nil
}

func (s *recordingStore) StoreForecast(context.Context, *models.Forecast) error { return nil }

func (s *recordingStore) Health(context.Context) error { return nil }

func (s *recordingStore) Close() error { return nil }

func (s *recordingStore) RecentForecasts(_ context.Context, symbol string, limit int) ([]*models.Forecast, error) {
	out := s.recent
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestRecentForecasts(t *testing.T) {
	uc := NewForecastUseCase(&flatSource{close: 42}, nil)

	if _, err := uc.Recent(context.Background(), "SPY", 10); err == nil {
		t.Fatalf("expected error without a store")
	}

	store := &recordingStore{recent: []*models.Forecast{
		{Symbol: "SPY"}, {Symbol: "SPY"}, {Symbol: "SPY"},
	}}
	uc.SetStore(store)

	list, err := uc.Recent(context.Background(), "SPY", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 forecasts, got %d", len(list))
	}

	if _, err := uc.Recent(context.Background(), "", 2); err == nil {
		t.Fatalf("expected error for missing symbol")
	}
}

func TestForecastValidation(t *testing.T) {
	uc := NewForecastUseCase(&marketdata.MockSource{Price: 100}, nil)
	if _, err := uc.Compute(context.Background(), ForecastParams{Date: time.Now()}); err == nil {
		t.Fatalf("expected error for missing symbol")
	}
	if _, err := uc.Compute(context.Background(), ForecastParams{Symbol: "SPY"}); err == nil {
		t.Fatalf("expected error for missing date")
	}
}
