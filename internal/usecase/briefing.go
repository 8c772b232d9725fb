package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"TradeScout/internal/domain/models"
	domsvc "TradeScout/internal/domain/service"
	"TradeScout/internal/services/retrieval"
	applogger "TradeScout/pkg/logger"
)

// BriefingUseCase condenses recent news for a symbol into a short snippet
// via the retrieval sidecar, falling back to local keyword extraction when
// the sidecar is unreachable.
type BriefingUseCase struct {
	news      domsvc.NewsFetcher
	retriever domsvc.SnippetRetriever
	l         *applogger.Logger
}

func NewBriefingUseCase(news domsvc.NewsFetcher, retriever domsvc.SnippetRetriever) *BriefingUseCase {
	return &BriefingUseCase{news: news, retriever: retriever}
}

// SetLogger injects a structured logger.
func (u *BriefingUseCase) SetLogger(l *applogger.Logger) { u.l = l }

type BriefingParams struct {
	Symbol string
	Query  string
	Days   int
}

func (u *BriefingUseCase) Brief(ctx context.Context, p BriefingParams) (*models.Briefing, error) {
	if p.Symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	if u.news == nil {
		return nil, fmt.Errorf("news service not configured")
	}
	if p.Days <= 0 {
		p.Days = 7
	}
	if p.Query == "" {
		p.Query = p.Symbol + " stock outlook"
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -p.Days)
	articles, err := u.news.FetchNews(ctx, p.Symbol, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}

	var b strings.Builder
	for _, a := range articles {
		b.WriteString(a.Title)
		b.WriteString(". ")
		b.WriteString(a.Text)
		b.WriteString(" ")
	}
	corpus := b.String()

	snippet := ""
	if corpus != "" {
		if u.retriever != nil {
			snippet, err = u.retriever.Retrieve(ctx, p.Query, corpus)
			if err != nil {
				if u.l != nil {
					u.l.Warn("retrieval failed, using keyword fallback", applogger.Error(err))
				}
				snippet = retrieval.MentionedText(p.Symbol, corpus, 512)
			}
		} else {
			snippet = retrieval.MentionedText(p.Symbol, corpus, 512)
		}
	}

	return &models.Briefing{
		Symbol:    p.Symbol,
		Query:     p.Query,
		Snippet:   snippet,
		Articles:  len(articles),
		Timestamp: time.Now(),
	}, nil
}
