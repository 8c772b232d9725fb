package marketdata

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

func chartFixture(t *testing.T, timestamps []int64, values string) yahooChart {
	t.Helper()
	ts, err := json.Marshal(timestamps)
	if err != nil {
		t.Fatalf("marshal timestamps: %v", err)
	}
	payload := fmt.Sprintf(`{"chart":{"result":[{"timestamp":%s,"indicators":{"quote":[{"open":%s,"high":%s,"low":%s,"close":%s,"volume":%s}]}}]}}`,
		ts, values, values, values, values, values)

	var chart yahooChart
	if err := json.Unmarshal([]byte(payload), &chart); err != nil {
		t.Fatalf("unmarshal chart: %v", err)
	}
	return chart
}

func TestChartPointsRaggedArrays(t *testing.T) {
	from := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)

	// Three timestamps but only two quote values; the trailing bar must be
	// dropped, not panic.
	timestamps := []int64{
		time.Date(2024, 10, 2, 0, 0, 0, 0, time.UTC).Unix(),
		time.Date(2024, 10, 3, 0, 0, 0, 0, time.UTC).Unix(),
		time.Date(2024, 10, 4, 0, 0, 0, 0, time.UTC).Unix(),
	}
	chart := chartFixture(t, timestamps, `[100.0,101.0]`)

	pts := chartPoints(chart, from, to)
	if len(pts) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(pts))
	}
	if pts[0].Close != 100.0 || pts[1].Close != 101.0 {
		t.Fatalf("unexpected closes: %v %v", pts[0].Close, pts[1].Close)
	}
}

func TestChartPointsNullBarsAndRange(t *testing.T) {
	from := time.Date(2024, 10, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 10, 4, 0, 0, 0, 0, time.UTC)

	timestamps := []int64{
		time.Date(2024, 10, 2, 0, 0, 0, 0, time.UTC).Unix(),
		time.Date(2024, 10, 3, 0, 0, 0, 0, time.UTC).Unix(),
		time.Date(2024, 10, 4, 0, 0, 0, 0, time.UTC).Unix(),
	}
	// First bar is outside [from, to); the last is a null bar.
	chart := chartFixture(t, timestamps, `[100.0,101.0,null]`)

	pts := chartPoints(chart, from, to)
	if len(pts) != 1 {
		t.Fatalf("expected 1 bar, got %d", len(pts))
	}
	if !pts[0].Date.Equal(from) || pts[0].Close != 101.0 {
		t.Fatalf("unexpected bar: %+v", pts[0])
	}
}

func TestChartPointsEmptyResult(t *testing.T) {
	var chart yahooChart
	if pts := chartPoints(chart, time.Now().AddDate(0, 0, -1), time.Now()); len(pts) != 0 {
		t.Fatalf("expected no bars, got %d", len(pts))
	}
}
