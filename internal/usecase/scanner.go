package usecase

import (
	"context"
	"fmt"
	"time"

	"TradeScout/internal/domain/models"
	domrepo "TradeScout/internal/domain/repository"
	"TradeScout/internal/services/analysis"
	applogger "TradeScout/pkg/logger"
)

// SignalScanner runs the turning-point pipeline: fetch a price history,
// detect stride-sampled extrema, then drop pairs too weak for the series
// volatility. Persistence and event publishing are best-effort; the scan
// result does not depend on them.
type SignalScanner struct {
	source        domrepo.PriceSource
	store         domrepo.SignalStore
	pub           domrepo.SignalPublisher
	metrics       domrepo.Metrics
	l             *applogger.Logger
	defaultStride int
}

func NewSignalScanner(source domrepo.PriceSource, metrics domrepo.Metrics) *SignalScanner {
	return &SignalScanner{source: source, metrics: metrics}
}

// SetStore injects an optional signal store.
func (s *SignalScanner) SetStore(store domrepo.SignalStore) { s.store = store }

// SetPublisher injects an optional signal publisher.
func (s *SignalScanner) SetPublisher(pub domrepo.SignalPublisher) { s.pub = pub }

// SetLogger injects a structured logger.
func (s *SignalScanner) SetLogger(l *applogger.Logger) { s.l = l }

// SetDefaultStride sets the stride used when a scan does not specify one.
func (s *SignalScanner) SetDefaultStride(stride int) { s.defaultStride = stride }

type ScanParams struct {
	Symbol string
	From   time.Time
	To     time.Time
	Stride int
}

func (s *SignalScanner) Scan(ctx context.Context, p ScanParams) (*models.TurningPoints, error) {
	if p.Symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	if p.From.After(p.To) {
		return nil, fmt.Errorf("from must be <= to")
	}
	if p.Stride <= 0 {
		p.Stride = s.defaultStride
	}
	if p.Stride <= 0 {
		p.Stride = analysis.DefaultStride
	}

	start := time.Now()
	pts, err := s.source.History(ctx, p.Symbol, p.From, p.To)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordError("price_fetch")
		}
		return nil, fmt.Errorf("fetch history: %w", err)
	}

	closes := models.Closes(pts)
	peaks, valleys := analysis.FindPeaksValleys(closes, p.Stride)
	fp, fv, err := analysis.FilterPairs(closes, peaks, valleys)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordError("extrema_filter")
		}
		return nil, fmt.Errorf("filter extrema: %w", err)
	}

	tp := &models.TurningPoints{
		Symbol:    p.Symbol,
		From:      p.From,
		To:        p.To,
		Timestamp: time.Now(),
		Closes:    closes,
		Peaks:     fp,
		Valleys:   fv,
	}

	if s.metrics != nil {
		s.metrics.RecordScan(p.Symbol)
		s.metrics.RecordLatency("scan", time.Since(start).Seconds())
	}
	if s.l != nil {
		s.l.Info("turning points scanned",
			applogger.String("symbol", p.Symbol),
			applogger.Int("samples", len(closes)),
			applogger.Int("peaks", len(fp)),
			applogger.Int("valleys", len(fv)),
		)
	}

	if s.store != nil {
		if err := s.store.StoreTurningPoints(ctx, tp); err != nil && s.l != nil {
			s.l.Warn("store turning points failed", applogger.Error(err))
		}
	}
	if s.pub != nil {
		if err := s.pub.PublishTurningPoints(ctx, tp); err != nil && s.l != nil {
			s.l.Warn("publish turning points failed", applogger.Error(err))
		}
	}

	return tp, nil
}
