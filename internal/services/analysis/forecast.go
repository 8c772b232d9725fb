package analysis

import (
	"context"
	"fmt"
	"math"
	"time"

	"TradeScout/internal/domain/models"
	domrepo "TradeScout/internal/domain/repository"
)

// DefaultHorizons approximates 1, 5 and 12 months of trading days.
var DefaultHorizons = []int{21, 105, 252}

// windowDays is the width of each averaging window in business days.
const windowDays = 3

// Forecaster computes forward-return ratios against a baseline price
// window. It holds no cross-call state and is safe for concurrent use when
// the underlying source is.
type Forecaster struct {
	source domrepo.PriceSource
}

func NewForecaster(source domrepo.PriceSource) *Forecaster {
	return &Forecaster{source: source}
}

// Compute returns one ratio per horizon, aligned with horizons. The
// baseline is the mean close over a 3-business-day window starting at date.
// Each horizon advances a cursor by that many business days from where the
// previous horizon landed, so later horizons compound on earlier ones.
// A window with no data turns into NaN at that position rather than an
// error; only source I/O failures propagate.
func (f *Forecaster) Compute(ctx context.Context, symbol string, date time.Time, horizons []int) ([]float64, error) {
	if len(horizons) == 0 {
		horizons = DefaultHorizons
	}

	baseline, err := f.windowMean(ctx, symbol, date)
	if err != nil {
		return nil, fmt.Errorf("baseline window: %w", err)
	}

	out := make([]float64, len(horizons))
	cursor := date
	for idx, h := range horizons {
		cursor = BusinessDays(cursor, h)
		mean, err := f.windowMean(ctx, symbol, cursor)
		if err != nil {
			return nil, fmt.Errorf("horizon %d window: %w", h, err)
		}
		out[idx] = mean / baseline
	}
	return out, nil
}

// windowMean fetches [start, start+3bd) and averages the closes.
// An empty window yields NaN.
func (f *Forecaster) windowMean(ctx context.Context, symbol string, start time.Time) (float64, error) {
	end := BusinessDays(start, windowDays)
	pts, err := f.source.History(ctx, symbol, start, end)
	if err != nil {
		return 0, err
	}
	return meanClose(pts), nil
}

func meanClose(pts []models.PricePoint) float64 {
	if len(pts) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, p := range pts {
		sum += p.Close
	}
	return sum / float64(len(pts))
}
