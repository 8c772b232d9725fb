package marketdata

import (
	"context"
	"time"

	"TradeScout/internal/domain/models"
	domrepo "TradeScout/internal/domain/repository"
	"TradeScout/internal/services/analysis"
	"TradeScout/pkg/util"
)

// MockSource returns controllable fixed data for development and testing.
// When Series is nil it generates a gently drifting daily close around
// Price for every weekday in the requested range.
type MockSource struct {
	Price  float64
	Series []models.PricePoint
}

func (m *MockSource) History(_ context.Context, _ string, from, to time.Time) ([]models.PricePoint, error) {
	if m.Series != nil {
		out := make([]models.PricePoint, 0, len(m.Series))
		for _, p := range m.Series {
			if !p.Date.Before(from) && p.Date.Before(to) {
				out = append(out, p)
			}
		}
		return out, nil
	}

	var out []models.PricePoint
	i := 0
	for d := util.Midnight(from); d.Before(util.Midnight(to)); d = d.AddDate(0, 0, 1) {
		if !analysis.IsBusinessDay(d) {
			continue
		}
		p := m.Price * (1 + float64(i%10-5)*0.001)
		out = append(out, models.PricePoint{
			Date:   d,
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		})
		i++
	}
	return out, nil
}

var _ domrepo.PriceSource = (*MockSource)(nil)
