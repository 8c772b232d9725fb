package usecase

import (
	"context"
	"fmt"
	"time"

	"TradeScout/internal/domain/models"
	domrepo "TradeScout/internal/domain/repository"
	"TradeScout/internal/services/analysis"
	applogger "TradeScout/pkg/logger"
)

// ForecastUseCase computes forward-return forecasts and fans them out to
// the optional store and publisher.
type ForecastUseCase struct {
	calc            *analysis.Forecaster
	store           domrepo.SignalStore
	pub             domrepo.SignalPublisher
	metrics         domrepo.Metrics
	l               *applogger.Logger
	defaultHorizons []int
}

func NewForecastUseCase(source domrepo.PriceSource, metrics domrepo.Metrics) *ForecastUseCase {
	return &ForecastUseCase{calc: analysis.NewForecaster(source), metrics: metrics}
}

// SetStore injects an optional signal store.
func (u *ForecastUseCase) SetStore(store domrepo.SignalStore) { u.store = store }

// SetPublisher injects an optional signal publisher.
func (u *ForecastUseCase) SetPublisher(pub domrepo.SignalPublisher) { u.pub = pub }

// SetLogger injects a structured logger.
func (u *ForecastUseCase) SetLogger(l *applogger.Logger) { u.l = l }

// SetDefaultHorizons sets the horizons used when a request does not
// specify any.
func (u *ForecastUseCase) SetDefaultHorizons(horizons []int) { u.defaultHorizons = horizons }

type ForecastParams struct {
	Symbol   string
	Date     time.Time
	Horizons []int
}

func (u *ForecastUseCase) Compute(ctx context.Context, p ForecastParams) (*models.Forecast, error) {
	if p.Symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	if p.Date.IsZero() {
		return nil, fmt.Errorf("date required")
	}
	if len(p.Horizons) == 0 {
		p.Horizons = u.defaultHorizons
	}
	if len(p.Horizons) == 0 {
		p.Horizons = analysis.DefaultHorizons
	}

	start := time.Now()
	ratios, err := u.calc.Compute(ctx, p.Symbol, p.Date, p.Horizons)
	if err != nil {
		if u.metrics != nil {
			u.metrics.RecordError("forecast")
		}
		return nil, fmt.Errorf("compute forecast: %w", err)
	}

	f := &models.Forecast{
		Symbol:    p.Symbol,
		Date:      p.Date,
		Timestamp: time.Now(),
		Horizons:  p.Horizons,
		Ratios:    ratios,
	}

	if u.metrics != nil {
		u.metrics.RecordForecast(p.Symbol)
		u.metrics.RecordLatency("forecast", time.Since(start).Seconds())
	}
	if u.l != nil {
		u.l.Info("forecast computed",
			applogger.String("symbol", p.Symbol),
			applogger.Time("date", p.Date),
			applogger.Ints("horizons", p.Horizons),
		)
	}

	if u.store != nil {
		if err := u.store.StoreForecast(ctx, f); err != nil && u.l != nil {
			u.l.Warn("store forecast failed", applogger.Error(err))
		}
	}
	if u.pub != nil {
		if err := u.pub.PublishForecast(ctx, f); err != nil && u.l != nil {
			u.l.Warn("publish forecast failed", applogger.Error(err))
		}
	}

	return f, nil
}

// Recent returns the latest stored forecasts for a symbol, newest first.
func (u *ForecastUseCase) Recent(ctx context.Context, symbol string, limit int) ([]*models.Forecast, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	if u.store == nil {
		return nil, fmt.Errorf("signal store not configured")
	}
	if limit <= 0 {
		limit = 10
	}
	return u.store.RecentForecasts(ctx, symbol, limit)
}
