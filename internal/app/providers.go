package app

import (
	"context"
	"fmt"
	"time"

	"orders/internal/gateway/kafka/order_events"
	"orders/internal/gateway/smtp/order_mailer"
	"orders/internal/handlers/rest/customer_orders_get"
	"orders/internal/handlers/rest/healthcheck_head"
	"orders/internal/handlers/rest/order_delete"
	"orders/internal/handlers/rest/order_payment_put"
	"orders/internal/handlers/rest/order_post"
	"orders/internal/handlers/rest/order_status_put"
	"orders/internal/handlers/rest/orders_get"
	"orders/internal/handlers/rest/revenue_get"
	"orders/internal/handlers/tasks/order_stats"
	"orders/internal/pkg/config"
	"orders/internal/pkg/kafka"
	"orders/internal/pkg/mongodb"
	"orders/internal/pkg/postgres"
	redisconn "orders/internal/pkg/redis"
	"orders/internal/repository/dispatch_guard"
	orderRepo "orders/internal/repository/order"
	"orders/internal/repository/order_document"
	"orders/internal/service/access"
	"orders/internal/service/notification"
	orderService "orders/internal/service/order"
	"orders/pkg/background"
	"orders/pkg/logger"
	"orders/pkg/querier"
	"orders/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/redis/go-redis/v9"
)

const disconnectTimeout = 5 * time.Second

// OrderRepository is what every storage backend provides.
type OrderRepository interface {
	orderService.Repository
	order_stats.Repository
}

// Store is the storage backend picked by STORAGE_BACKEND.
type Store struct {
	Repository OrderRepository
	TxManager  orderService.TxManager
	Pinger     healthcheck_head.Pinger
}

type ServiceOrder interface {
	order_post.Service
	orders_get.Service
	order_status_put.Service
	order_payment_put.Service
	order_delete.Service
	customer_orders_get.Service
	revenue_get.Service
}

type Application struct {
	ServiceOrder      ServiceOrder
	Dispatcher        *notification.Dispatcher
	Store             *Store
	BackgroundWorkers *background.Worker
}

type NotifierWorkerApp struct {
	Relay *notification.Relay
	Redis *redis.Client
}

func provideStore(ctx context.Context, log logger.Logger, cfg *config.Config) (*Store, func(), error) {
	storeLog := log.With(logger.NewField("storage", cfg.Storage.Backend))

	if cfg.Storage.Backend == config.StorageMongo {
		conn := mongodb.NewOrdersCollection(storeLog, &cfg.Mongo)
		cleanup := func() {
			ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
			defer cancel()
			if err := mongodb.Disconnect(ctx, conn); err != nil {
				storeLog.Error("failed to disconnect mongodb", logger.NewField("error", err))
			}
		}
		return &Store{
			Repository: order_document.New(conn),
			TxManager:  tx.NewNoop(),
			Pinger:     mongodb.NewPinger(conn),
		}, cleanup, nil
	}

	pool, err := postgres.NewConnPool(ctx, storeLog, &cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database: %w", err)
	}
	if err := postgres.Migrate(storeLog, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	return &Store{
		Repository: orderRepo.New(querier.New(pool, pgxv5.DefaultCtxGetter)),
		TxManager:  tx.New(pool),
		Pinger:     pool,
	}, pool.Close, nil
}

func provideSender(ctx context.Context, log logger.Logger, cfg *config.Config) (notification.Sender, func(), error) {
	if cfg.Notification.Transport == config.TransportKafka {
		producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, cfg.KafkaBrokers())
		if err != nil {
			return nil, nil, fmt.Errorf("kafka producer: %w", err)
		}
		cleanup := func() {
			if err := producer.Close(); err != nil {
				log.Error("failed to close kafka producer", logger.NewField("error", err))
			}
		}
		return order_events.New(producer, cfg.Kafka.Topic), cleanup, nil
	}

	mailer, err := provideMailer(cfg)
	if err != nil {
		return nil, nil, err
	}
	return mailer, func() {}, nil
}

func provideMailer(cfg *config.Config) (*order_mailer.Mailer, error) {
	client, err := order_mailer.NewClient(&cfg.SMTP)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return order_mailer.New(client, cfg.SMTP.From, cfg.Notification.Recipient), nil
}

func provideDispatcher(log logger.Logger, sender notification.Sender, cfg *config.Config) *notification.Dispatcher {
	return notification.NewDispatcher(log, sender, cfg.Notification.Timeout)
}

func provideAccessGate(cfg *config.Config) *access.Gate {
	return access.New(cfg.Access.AdminEmails)
}

func provideOrderService(
	store *Store,
	gate *access.Gate,
	dispatcher *notification.Dispatcher,
	cfg *config.Config,
) *orderService.Service {
	return orderService.New(
		store.Repository,
		store.TxManager,
		gate,
		dispatcher,
		orderService.Policy{
			StrictStatus: cfg.Orders.StrictStatus,
			VerifyTotal:  cfg.Orders.VerifyTotal,
		},
	)
}

func provideOrderStatsTask(store *Store, cfg *config.Config) *order_stats.OrderStats {
	return order_stats.NewOrderStats(store.Repository, cfg.Tasks.OrderStatsInterval)
}

func provideTaskList(orderStatsTask *order_stats.OrderStats) []background.Task {
	return []background.Task{
		orderStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideRedisClient(ctx context.Context, log logger.Logger, cfg *config.Config) (*redis.Client, func(), error) {
	client, err := redisconn.Connect(ctx, log, cfg.Redis.Addr)
	if err != nil {
		return nil, nil, fmt.Errorf("redis: %w", err)
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close redis client", logger.NewField("error", err))
		}
	}
	return client, cleanup, nil
}

func provideDispatchGuard(client *redis.Client, cfg *config.Config) *dispatch_guard.Guard {
	return dispatch_guard.New(client, cfg.Redis.GuardTTL)
}

func provideRelay(log logger.Logger, guard *dispatch_guard.Guard, mailer *order_mailer.Mailer) *notification.Relay {
	return notification.NewRelay(log, guard, mailer)
}
