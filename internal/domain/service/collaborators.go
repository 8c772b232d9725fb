package service

import (
	"context"
	"time"

	"TradeScout/internal/domain/models"
)

// NewsFetcher retrieves news articles for a symbol within a date range.
type NewsFetcher interface {
	FetchNews(ctx context.Context, symbol string, from, to time.Time) ([]models.NewsArticle, error)
}

// SnippetRetriever returns the text most relevant to query from a corpus
// using embedding-based vector search. The embedding model lifecycle lives
// entirely behind this interface.
type SnippetRetriever interface {
	Retrieve(ctx context.Context, query, corpus string) (string, error)
}
