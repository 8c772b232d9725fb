package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"TradeScout/internal/domain/models"
)

type fakeNews struct {
	articles []models.NewsArticle
}

func (f *fakeNews) FetchNews(_ context.Context, _ string, _, _ time.Time) ([]models.NewsArticle, error) {
	return f.articles, nil
}

type fakeRetriever struct {
	text string
	err  error
}

func (f *fakeRetriever) Retrieve(_ context.Context, _, _ string) (string, error) {
	return f.text, f.err
}

func TestBriefUsesRetriever(t *testing.T) {
	uc := NewBriefingUseCase(
		&fakeNews{articles: []models.NewsArticle{{Title: "AAPL beats estimates", Text: "Strong quarter."}}},
		&fakeRetriever{text: "relevant snippet"},
	)

	b, err := uc.Brief(context.Background(), BriefingParams{Symbol: "AAPL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Snippet != "relevant snippet" {
		t.Fatalf("unexpected snippet %q", b.Snippet)
	}
	if b.Articles != 1 {
		t.Fatalf("expected 1 article, got %d", b.Articles)
	}
	if b.Query == "" {
		t.Fatalf("default query must be set")
	}
}

func TestBriefFallsBackToKeyword(t *testing.T) {
	uc := NewBriefingUseCase(
		&fakeNews{articles: []models.NewsArticle{{Title: "Daily wrap", Text: "Shares of AAPL climbed on upgrade news today."}}},
		&fakeRetriever{err: fmt.Errorf("sidecar down")},
	)

	b, err := uc.Brief(context.Background(), BriefingParams{Symbol: "AAPL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(b.Snippet, "AAPL climbed") {
		t.Fatalf("keyword fallback failed, got %q", b.Snippet)
	}
}

func TestBriefNoNews(t *testing.T) {
	uc := NewBriefingUseCase(&fakeNews{}, &fakeRetriever{text: "x"})

	b, err := uc.Brief(context.Background(), BriefingParams{Symbol: "AAPL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Snippet != "" || b.Articles != 0 {
		t.Fatalf("expected empty briefing, got %+v", b)
	}
}
