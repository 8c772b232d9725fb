package di

import (
	"context"
	"fmt"
	"time"

	"TradeScout/internal/domain/repository"
	domsvc "TradeScout/internal/domain/service"
	"TradeScout/internal/handler/api"
	internalrepo "TradeScout/internal/repository"
	icache "TradeScout/internal/service/cache"
	"TradeScout/internal/services/marketdata"
	"TradeScout/internal/services/news"
	"TradeScout/internal/services/retrieval"
	"TradeScout/internal/usecase"
	pkgch "TradeScout/pkg/clickhouse"
	"TradeScout/pkg/config"
	pkgkafka "TradeScout/pkg/kafka"
	applogger "TradeScout/pkg/logger"
	"TradeScout/pkg/metrics"
	"TradeScout/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideClickHouseClient creates a ClickHouse client, or nil when the
// store is disabled in config.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if !cfg.ClickHouse.Enabled {
		return nil, nil
	}
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}
	return client, nil
}

// ProvideKafkaProducer creates a Kafka producer, or nil when publishing is
// disabled in config.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithBatch(cfg.Kafka.BatchSize, cfg.Kafka.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, cfg.Kafka.ReadTimeout),
		pkgkafka.WithAsync(cfg.Kafka.Async),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideSignalStore creates the ClickHouse signal store and ensures its
// schema exists.
func ProvideSignalStore(chClient *pkgch.Client, cfg *config.Config) (repository.SignalStore, error) {
	if chClient == nil {
		return nil, nil
	}
	store := internalrepo.NewClickHouseSignalStore(chClient.DB(), cfg.ClickHouse.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("signal store schema: %w", err)
	}
	return store, nil
}

// ProvideSignalPublisher creates the Kafka signal publisher.
func ProvideSignalPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.SignalPublisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaSignalPublisher(producer, cfg.Kafka.Topic)
}

// ProvidePriceSource selects the configured price history source.
func ProvidePriceSource(cfg *config.Config) repository.PriceSource {
	if cfg.MarketData.Provider == "mock" {
		return &marketdata.MockSource{Price: 100}
	}
	return marketdata.NewYahooSource(cfg)
}

// ProvideNewsFetcher creates the company news client.
func ProvideNewsFetcher(cfg *config.Config) domsvc.NewsFetcher {
	if cfg.News.BaseURL == "" {
		return nil
	}
	return news.NewHTTPNewsFetcher(cfg)
}

// ProvideSnippetRetriever creates the retrieval sidecar client when one is
// configured. Without it briefings fall back to keyword extraction.
func ProvideSnippetRetriever(cfg *config.Config) domsvc.SnippetRetriever {
	if cfg.Retrieval.ServiceURL == "" {
		return nil
	}
	return retrieval.NewHTTPSnippetRetriever(cfg)
}

// ProvideSignalScanner creates the turning-point scanner use case.
func ProvideSignalScanner(
	cfg *config.Config,
	source repository.PriceSource,
	m repository.Metrics,
	store repository.SignalStore,
	pub repository.SignalPublisher,
	l *applogger.Logger,
) *usecase.SignalScanner {
	s := usecase.NewSignalScanner(source, m)
	s.SetStore(store)
	s.SetPublisher(pub)
	s.SetLogger(l)
	s.SetDefaultStride(cfg.Analysis.Stride)
	return s
}

// ProvideForecastUseCase creates the forecast use case.
func ProvideForecastUseCase(
	cfg *config.Config,
	source repository.PriceSource,
	m repository.Metrics,
	store repository.SignalStore,
	pub repository.SignalPublisher,
	l *applogger.Logger,
) *usecase.ForecastUseCase {
	u := usecase.NewForecastUseCase(source, m)
	u.SetStore(store)
	u.SetPublisher(pub)
	u.SetLogger(l)
	u.SetDefaultHorizons(cfg.Analysis.Horizons)
	return u
}

// ProvideBriefingUseCase creates the news briefing use case.
func ProvideBriefingUseCase(
	fetcher domsvc.NewsFetcher,
	retriever domsvc.SnippetRetriever,
	l *applogger.Logger,
) *usecase.BriefingUseCase {
	u := usecase.NewBriefingUseCase(fetcher, retriever)
	u.SetLogger(l)
	return u
}

// ProvideCache selects the response cache backend.
func ProvideCache(cfg *config.Config) icache.BytesCache {
	if cfg.Cache.Redis.Enabled {
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return icache.NewTTLCache()
}

// ProvideSignalsHandler creates the Echo API handler.
func ProvideSignalsHandler(
	cfg *config.Config,
	scanner *usecase.SignalScanner,
	forecast *usecase.ForecastUseCase,
	briefing *usecase.BriefingUseCase,
	cache icache.BytesCache,
	l *applogger.Logger,
) *api.SignalsHandler {
	h := api.NewSignalsHandler(scanner, forecast, briefing)
	h.SetCache(cache)
	h.SetCacheTTL(cfg.Cache.TTL)
	h.SetLogger(l)
	return h
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	handler *api.SignalsHandler,
	chClient *pkgch.Client,
	producer *pkgkafka.Producer,
	l *applogger.Logger,
) *server.App {
	return server.New(cfg, handler, chClient, producer, l)
}
