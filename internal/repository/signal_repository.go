package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"TradeScout/internal/domain/models"
	"TradeScout/internal/domain/repository"
	pkgkafka "TradeScout/pkg/kafka"
)

// ClickHouseSignalStore implements SignalStore for ClickHouse.
type ClickHouseSignalStore struct {
	db       *sql.DB
	database string
}

// NewClickHouseSignalStore creates a ClickHouse-backed signal store.
func NewClickHouseSignalStore(db *sql.DB, database string) repository.SignalStore {
	return &ClickHouseSignalStore{db: db, database: database}
}

func (s *ClickHouseSignalStore) Init(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", s.database),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.turning_points (
			ts DateTime,
			symbol String,
			from_date Date,
			to_date Date,
			closes Array(Float64),
			peaks Array(Int32),
			valleys Array(Int32)
		) ENGINE = MergeTree()
		PARTITION BY toYYYYMM(ts)
		ORDER BY (symbol, ts)`, s.database),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.forecasts (
			ts DateTime,
			symbol String,
			base_date Date,
			horizons Array(Int32),
			ratios Array(Float64)
		) ENGINE = MergeTree()
		PARTITION BY toYYYYMM(ts)
		ORDER BY (symbol, ts)`, s.database),
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init signal schema: %w", err)
		}
	}
	return nil
}

func (s *ClickHouseSignalStore) StoreTurningPoints(ctx context.Context, tp *models.TurningPoints) error {
	q := fmt.Sprintf("INSERT INTO %s.turning_points (ts, symbol, from_date, to_date, closes, peaks, valleys) VALUES (?, ?, ?, ?, ?, ?, ?)", s.database)
	_, err := s.db.ExecContext(ctx, q,
		tp.Timestamp,
		tp.Symbol,
		tp.From,
		tp.To,
		tp.Closes,
		toInt32(tp.Peaks),
		toInt32(tp.Valleys),
	)
	if err != nil {
		return fmt.Errorf("store turning points: %w", err)
	}
	return nil
}

func (s *ClickHouseSignalStore) StoreForecast(ctx context.Context, f *models.Forecast) error {
	q := fmt.Sprintf("INSERT INTO %s.forecasts (ts, symbol, base_date, horizons, ratios) VALUES (?, ?, ?, ?, ?)", s.database)
	_, err := s.db.ExecContext(ctx, q,
		f.Timestamp,
		f.Symbol,
		f.Date,
		toInt32(f.Horizons),
		f.Ratios,
	)
	if err != nil {
		return fmt.Errorf("store forecast: %w", err)
	}
	return nil
}

func (s *ClickHouseSignalStore) RecentForecasts(ctx context.Context, symbol string, limit int) ([]*models.Forecast, error) {
	q := fmt.Sprintf("SELECT ts, symbol, base_date, horizons, ratios FROM %s.forecasts WHERE symbol = ? ORDER BY ts DESC LIMIT ?", s.database)
	rows, err := s.db.QueryContext(ctx, q, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("query forecasts: %w", err)
	}
	defer rows.Close()

	var out []*models.Forecast
	for rows.Next() {
		var f models.Forecast
		var horizons []int32
		if err := rows.Scan(&f.Timestamp, &f.Symbol, &f.Date, &horizons, &f.Ratios); err != nil {
			return nil, fmt.Errorf("scan forecast: %w", err)
		}
		f.Horizons = make([]int, len(horizons))
		for i, h := range horizons {
			f.Horizons[i] = int(h)
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

func (s *ClickHouseSignalStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHouseSignalStore) Close() error {
	return nil // Connection pool is managed by pkg/clickhouse.
}

func toInt32(in []int) []int32 {
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}
	return out
}

// KafkaSignalPublisher implements SignalPublisher for Kafka.
type KafkaSignalPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaSignalPublisher creates a Kafka signal publisher.
func NewKafkaSignalPublisher(producer *pkgkafka.Producer, topic string) repository.SignalPublisher {
	return &KafkaSignalPublisher{producer: producer, topic: topic}
}

func (p *KafkaSignalPublisher) PublishTurningPoints(ctx context.Context, tp *models.TurningPoints) error {
	return p.producer.Publish(ctx, p.topic, []byte(tp.Symbol), map[string]interface{}{
		"type":    "turning_points",
		"symbol":  tp.Symbol,
		"ts":      tp.Timestamp.Unix(),
		"from":    tp.From.Format("2006-01-02"),
		"to":      tp.To.Format("2006-01-02"),
		"peaks":   tp.Peaks,
		"valleys": tp.Valleys,
	})
}

func (p *KafkaSignalPublisher) PublishForecast(ctx context.Context, f *models.Forecast) error {
	// NaN ratios are not representable in JSON; they travel as null.
	ratios := make([]interface{}, len(f.Ratios))
	for i, r := range f.Ratios {
		if math.IsNaN(r) {
			ratios[i] = nil
		} else {
			ratios[i] = r
		}
	}
	return p.producer.Publish(ctx, p.topic, []byte(f.Symbol), map[string]interface{}{
		"type":     "forecast",
		"symbol":   f.Symbol,
		"ts":       f.Timestamp.Unix(),
		"date":     f.Date.Format("2006-01-02"),
		"horizons": f.Horizons,
		"ratios":   ratios,
	})
}

func (p *KafkaSignalPublisher) Close() error {
	return p.producer.Close()
}
