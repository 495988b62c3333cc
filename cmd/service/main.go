package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // served only on ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "orders/internal/app"
	"orders/internal/handlers/rest/customer_orders_get"
	"orders/internal/handlers/rest/healthcheck_head"
	"orders/internal/handlers/rest/order_delete"
	"orders/internal/handlers/rest/order_payment_put"
	"orders/internal/handlers/rest/order_post"
	"orders/internal/handlers/rest/order_status_put"
	"orders/internal/handlers/rest/orders_get"
	"orders/internal/handlers/rest/ping_get"
	"orders/internal/handlers/rest/revenue_get"
	"orders/internal/pkg/config"
	"orders/internal/pkg/dotenv"
	"orders/internal/pkg/grpcserver"
	metrics_system "orders/internal/pkg/metrics"
	"orders/internal/pkg/middlewares/graceful_shutdown"
	"orders/internal/pkg/middlewares/metrics"
	"orders/internal/pkg/middlewares/rate_limiter"
	"orders/internal/pkg/middlewares/timeout"
	"orders/pkg/logger"
	"orders/pkg/logger/zap_adapter"
	"orders/pkg/token_bucket"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load environment: %v", err)
	}

	cfg, err := config.Load(config.HTTPService)
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level, logger.NewField("service", "orders"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting orders service",
		logger.NewField("storage", cfg.Storage.Backend),
		logger.NewField("notification_transport", cfg.Notification.Transport),
	)

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdown contexts derive from context.Background() on purpose
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	businessApp, cleanup, err := application.InitializeApplication(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer cleanup()

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx is the BaseContext of every request. It survives SIGTERM and
	// is cancelled only after server.Shutdown so in-flight requests finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	healthServer := grpcserver.NewHealthServer(log)
	healthServerErr := make(chan error, 1)
	go func() {
		defer close(healthServerErr)
		if err := healthServer.ListenAndServe(cfg.Server.GRPCHealthPort); err != nil {
			healthServerErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	healthServer.Drain()

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not derive from ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var pprofErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		pprofErr = pprofServer.Shutdown(shutdownCtx)
		if pprofErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", pprofErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || pprofErr != nil {
		runLog.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	if err := businessApp.Dispatcher.Wait(shutdownCtx); err != nil {
		runLog.Warn("notifications still in flight at shutdown", logger.NewField("error", err))
	}

	healthServer.Stop()

	runLog.Info("server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.Store.Pinger)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.Handle("/orders", order_post.New(log, app.ServiceOrder)).Methods(http.MethodPost)
	api.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	api.Handle("/orders/{orderId}", order_status_put.New(log, app.ServiceOrder)).Methods(http.MethodPut)
	api.Handle("/orders/{orderId}/confirm-payment", order_payment_put.New(log, app.ServiceOrder)).Methods(http.MethodPut)
	api.Handle("/orders/{orderId}", order_delete.New(log, app.ServiceOrder)).Methods(http.MethodDelete)

	api.Handle("/customer-orders", customer_orders_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	api.Handle("/analytics/revenue", revenue_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
