package models

import "time"

// PricePoint is one daily sample of a price history. Series are always
// ordered ascending by date with no duplicate dates.
type PricePoint struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Closes extracts the closing prices of a series, preserving order.
func Closes(pts []PricePoint) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Close
	}
	return out
}

// TurningPoints holds the noise-filtered structural extrema of a price
// series. Peaks and Valleys are index lists into Closes; the i-th peak is
// paired with the i-th valley.
type TurningPoints struct {
	Symbol    string
	From      time.Time
	To        time.Time
	Timestamp time.Time
	Closes    []float64
	Peaks     []int
	Valleys   []int
}

// Forecast is a forward-return forecast for one symbol at one base date.
// Ratios is aligned with Horizons; a ratio above 1.0 is a gain, below 1.0
// a loss, NaN means no data was available at that horizon.
type Forecast struct {
	Symbol    string
	Date      time.Time
	Timestamp time.Time
	Horizons  []int // business-day offsets
	Ratios    []float64
}

// NewsArticle is a single news item returned by the news service.
type NewsArticle struct {
	Symbol      string
	Title       string
	Source      string
	URL         string
	PublishedAt time.Time
	Text        string
}

// Briefing is a condensed, retrieval-backed summary of recent news for a
// symbol.
type Briefing struct {
	Symbol    string
	Query     string
	Snippet   string
	Articles  int
	Timestamp time.Time
}
