package api

import (
	"math"
	"time"

	models "TradeScout/internal/domain/models"
	"TradeScout/pkg/util"
)

// forecastResponse is the wire form of a forecast. Ratios with no price data
// behind them are null rather than NaN, which JSON cannot carry.
type forecastResponse struct {
	Symbol    string     `json:"symbol"`
	Date      string     `json:"date"`
	Timestamp time.Time  `json:"timestamp"`
	Horizons  []int      `json:"horizons"`
	Ratios    []*float64 `json:"ratios"`
}

func forecastView(f *models.Forecast) forecastResponse {
	ratios := make([]*float64, len(f.Ratios))
	for i := range f.Ratios {
		if !math.IsNaN(f.Ratios[i]) {
			r := f.Ratios[i]
			ratios[i] = &r
		}
	}
	return forecastResponse{
		Symbol:    f.Symbol,
		Date:      f.Date.Format(util.DateFormat),
		Timestamp: f.Timestamp,
		Horizons:  f.Horizons,
		Ratios:    ratios,
	}
}
