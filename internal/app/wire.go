//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"orders/internal/pkg/config"
	orderService "orders/internal/service/order"
	"orders/pkg/logger"

	"github.com/google/wire"
)

// InitializeApplication builds the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, func(), error) {
	wire.Build(
		provideStore,
		provideSender,
		provideDispatcher,
		provideAccessGate,
		provideOrderService,

		provideOrderStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
	)
	return nil, nil, nil
}

// InitializeNotifierWorker builds the Kafka worker (cmd/worker-order-notifier).
func InitializeNotifierWorker(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*NotifierWorkerApp, func(), error) {
	wire.Build(
		provideRedisClient,
		provideDispatchGuard,
		provideMailer,
		provideRelay,

		wire.Struct(new(NotifierWorkerApp), "*"),
	)
	return nil, nil, nil
}
