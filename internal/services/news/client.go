package news

import (
	"context"
	"fmt"
	"time"

	"TradeScout/internal/domain/models"
	domsvc "TradeScout/internal/domain/service"
	"TradeScout/pkg/config"
	xhttp "TradeScout/pkg/http"
	"TradeScout/pkg/util"
)

// HTTPNewsFetcher implements NewsFetcher against a company-news HTTP API.
type HTTPNewsFetcher struct {
	baseURL string
	apiKey  string
	client  *xhttp.Client
}

func NewHTTPNewsFetcher(cfg *config.Config) *HTTPNewsFetcher {
	timeout := cfg.News.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPNewsFetcher{
		baseURL: cfg.News.BaseURL,
		apiKey:  cfg.News.APIKey,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

type newsItem struct {
	Headline string `json:"headline"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	Summary  string `json:"summary"`
	Datetime int64  `json:"datetime"` // unix seconds
}

// FetchNews returns articles for symbol published within [from, to].
func (f *HTTPNewsFetcher) FetchNews(ctx context.Context, symbol string, from, to time.Time) ([]models.NewsArticle, error) {
	if f.baseURL == "" {
		return nil, fmt.Errorf("news service not configured")
	}

	var items []newsItem
	err := f.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    f.baseURL + "/company-news",
		QueryParams: map[string][]string{
			"symbol": {symbol},
			"from":   {from.Format(util.DateFormat)},
			"to":     {to.Format(util.DateFormat)},
			"token":  {f.apiKey},
		},
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("fetch news %s: %w", symbol, err)
	}

	out := make([]models.NewsArticle, 0, len(items))
	for _, it := range items {
		out = append(out, models.NewsArticle{
			Symbol:      symbol,
			Title:       it.Headline,
			Source:      it.Source,
			URL:         it.URL,
			PublishedAt: time.Unix(it.Datetime, 0).UTC(),
			Text:        it.Summary,
		})
	}
	return out, nil
}

var _ domsvc.NewsFetcher = (*HTTPNewsFetcher)(nil)
