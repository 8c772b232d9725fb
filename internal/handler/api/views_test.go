package api

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	models "TradeScout/internal/domain/models"
)

func TestForecastViewNaNBecomesNull(t *testing.T) {
	f := &models.Forecast{
		Symbol:    "SPY",
		Date:      time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC),
		Timestamp: time.Now(),
		Horizons:  []int{21, 105},
		Ratios:    []float64{1.05, math.NaN()},
	}

	v := forecastView(f)
	if v.Ratios[0] == nil || *v.Ratios[0] != 1.05 {
		t.Fatalf("expected first ratio 1.05, got %v", v.Ratios[0])
	}
	if v.Ratios[1] != nil {
		t.Fatalf("expected NaN ratio to map to nil, got %v", *v.Ratios[1])
	}
	if v.Date != "2024-10-07" {
		t.Fatalf("expected date 2024-10-07, got %s", v.Date)
	}

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), "null") {
		t.Fatalf("expected null in payload, got %s", b)
	}
}
