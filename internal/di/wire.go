//go:build wireinject
// +build wireinject

package di

import (
	"TradeScout/pkg/config"
	"TradeScout/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,

		// Repositories
		ProvideSignalStore,
		ProvideSignalPublisher,

		// External collaborators
		ProvidePriceSource,
		ProvideNewsFetcher,
		ProvideSnippetRetriever,

		// Use cases
		ProvideSignalScanner,
		ProvideForecastUseCase,
		ProvideBriefingUseCase,

		// HTTP surface
		ProvideCache,
		ProvideSignalsHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
