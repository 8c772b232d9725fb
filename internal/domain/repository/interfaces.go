package repository

import (
	"context"
	"time"

	"TradeScout/internal/domain/models"
)

// PriceSource supplies an ordered daily price history for a symbol. The
// returned series is ascending by date, [from, to) exclusive of to, and may
// be empty when the range holds no data.
type PriceSource interface {
	History(ctx context.Context, symbol string, from, to time.Time) ([]models.PricePoint, error)
}

// SignalStore persists computed signals for later inspection.
type SignalStore interface {
	Init(ctx context.Context) error // ensure tables, health checks
	StoreTurningPoints(ctx context.Context, tp *models.TurningPoints) error
	StoreForecast(ctx context.Context, f *models.Forecast) error
	RecentForecasts(ctx context.Context, symbol string, limit int) ([]*models.Forecast, error)
	Health(ctx context.Context) error
	Close() error
}

// SignalPublisher emits signal events to downstream consumers.
type SignalPublisher interface {
	PublishTurningPoints(ctx context.Context, tp *models.TurningPoints) error
	PublishForecast(ctx context.Context, f *models.Forecast) error
	Close() error
}

// Metrics records operational metrics.
type Metrics interface {
	RecordScan(symbol string)
	RecordForecast(symbol string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
