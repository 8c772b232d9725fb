package usecase

import (
	"context"
	"testing"
	"time"

	"TradeScout/internal/domain/models"
	"TradeScout/internal/services/marketdata"
)

func day(d int) time.Time {
	// 2024-09-02 is a Monday; stepping calendar days gives a run of dates
	// whose weekdays do not matter for the detector.
	return time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func seriesFromCloses(closes []float64) []models.PricePoint {
	out := make([]models.PricePoint, len(closes))
	for i, c := range closes {
		out[i] = models.PricePoint{Date: day(i), Close: c}
	}
	return out
}

func TestScanFindsFilteredPair(t *testing.T) {
	closes := []float64{100, 100, 100, 100, 100, 150, 100, 100, 100, 100, 50, 100, 100, 100, 100, 100}
	src := &marketdata.MockSource{Series: seriesFromCloses(closes)}
	scanner := NewSignalScanner(src, nil)

	tp, err := scanner.Scan(context.Background(), ScanParams{
		Symbol: "SPY",
		From:   day(0),
		To:     day(len(closes)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tp.Peaks) != 1 || tp.Peaks[0] != 5 {
		t.Fatalf("expected peak at 5, got %v", tp.Peaks)
	}
	if len(tp.Valleys) != 1 || tp.Valleys[0] != 10 {
		t.Fatalf("expected valley at 10, got %v", tp.Valleys)
	}
}

func TestScanEmptyRange(t *testing.T) {
	src := &marketdata.MockSource{Series: []models.PricePoint{}}
	scanner := NewSignalScanner(src, nil)

	tp, err := scanner.Scan(context.Background(), ScanParams{
		Symbol: "SPY",
		From:   day(0),
		To:     day(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tp.Peaks) != 0 || len(tp.Valleys) != 0 {
		t.Fatalf("expected empty result, got %v %v", tp.Peaks, tp.Valleys)
	}
}

func TestScanUsesConfiguredDefaultStride(t *testing.T) {
	// Too short for the built-in stride of 5 to visit any index, so a
	// result here proves the configured default was used.
	closes := []float64{100, 100, 100, 150, 100, 100, 50, 100, 100, 100}
	src := &marketdata.MockSource{Series: seriesFromCloses(closes)}

	scanner := NewSignalScanner(src, nil)
	tp, err := scanner.Scan(context.Background(), ScanParams{Symbol: "SPY", From: day(0), To: day(len(closes))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tp.Peaks) != 0 || len(tp.Valleys) != 0 {
		t.Fatalf("built-in stride should find nothing, got %v %v", tp.Peaks, tp.Valleys)
	}

	scanner.SetDefaultStride(3)
	tp, err = scanner.Scan(context.Background(), ScanParams{Symbol: "SPY", From: day(0), To: day(len(closes))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tp.Peaks) != 1 || tp.Peaks[0] != 3 {
		t.Fatalf("expected peak at 3 with stride 3, got %v", tp.Peaks)
	}
	if len(tp.Valleys) != 1 || tp.Valleys[0] != 6 {
		t.Fatalf("expected valley at 6 with stride 3, got %v", tp.Valleys)
	}
}

func TestScanValidation(t *testing.T) {
	scanner := NewSignalScanner(&marketdata.MockSource{Price: 100}, nil)
	if _, err := scanner.Scan(context.Background(), ScanParams{From: day(0), To: day(1)}); err == nil {
		t.Fatalf("expected error for missing symbol")
	}
	if _, err := scanner.Scan(context.Background(), ScanParams{Symbol: "SPY", From: day(1), To: day(0)}); err == nil {
		t.Fatalf("expected error for inverted range")
	}
}
