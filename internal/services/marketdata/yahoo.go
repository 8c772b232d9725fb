package marketdata

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"TradeScout/internal/domain/models"
	domrepo "TradeScout/internal/domain/repository"
	"TradeScout/pkg/config"
	xhttp "TradeScout/pkg/http"
	"TradeScout/pkg/util"
)

const defaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// YahooSource implements PriceSource using the Yahoo Finance chart API.
type YahooSource struct {
	baseURL   string
	client    *xhttp.Client
	symbolMap map[string]string // maps internal symbol to Yahoo ticker
}

// NewYahooSource creates a Yahoo Finance price source.
func NewYahooSource(cfg *config.Config) *YahooSource {
	timeout := cfg.MarketData.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	baseURL := cfg.MarketData.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	symbolMap := cfg.MarketData.SymbolMap
	if symbolMap == nil {
		symbolMap = map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		}
	}
	opts := []xhttp.ClientOption{xhttp.WithTimeout(timeout)}
	if cfg.MarketData.ProxyURL != "" {
		opts = append(opts, xhttp.WithProxy(cfg.MarketData.ProxyURL))
	}
	return &YahooSource{
		baseURL:   baseURL,
		client:    xhttp.NewClient(opts...),
		symbolMap: symbolMap,
	}
}

func (s *YahooSource) yahooSymbol(symbol string) string {
	if mapped, ok := s.symbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// History fetches daily bars for [from, to), ascending by date. An empty
// range inside trading history returns an empty slice, not an error.
func (s *YahooSource) History(ctx context.Context, symbol string, from, to time.Time) ([]models.PricePoint, error) {
	if !from.Before(to) {
		return nil, nil
	}

	var chart yahooChart
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/%s", s.baseURL, s.yahooSymbol(symbol)),
		Headers: map[string]string{
			"User-Agent": "Mozilla/5.0",
		},
		QueryParams: map[string][]string{
			"interval": {"1d"},
			"period1":  {strconv.FormatInt(util.Midnight(from).Unix(), 10)},
			"period2":  {strconv.FormatInt(util.Midnight(to).Unix(), 10)},
		},
	}, &chart)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %w", symbol, err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	return chartPoints(chart, from, to), nil
}

// chartPoints converts a chart payload to daily bars in [from, to),
// ascending by date. Quote arrays shorter than the timestamp list are
// truncated to the shortest; Yahoo occasionally returns ragged arrays.
func chartPoints(chart yahooChart, from, to time.Time) []models.PricePoint {
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	n := len(result.Timestamp)
	for _, m := range []int{len(quote.Open), len(quote.High), len(quote.Low), len(quote.Close), len(quote.Volume)} {
		if m < n {
			n = m
		}
	}
	pts := make([]models.PricePoint, 0, n)

	for i := 0; i < n; i++ {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		d := util.Midnight(time.Unix(result.Timestamp[i], 0))
		if d.Before(util.Midnight(from)) || !d.Before(util.Midnight(to)) {
			continue
		}
		pts = append(pts, models.PricePoint{
			Date:   d,
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}

	sort.Slice(pts, func(i, j int) bool { return pts[i].Date.Before(pts[j].Date) })
	return pts
}

var _ domrepo.PriceSource = (*YahooSource)(nil)
