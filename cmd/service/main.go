package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "trackit/internal/app"
	"trackit/internal/handlers/rest/chat_get"
	"trackit/internal/handlers/rest/chat_post"
	"trackit/internal/handlers/rest/healthcheck_head"
	"trackit/internal/handlers/rest/notifications_delete"
	"trackit/internal/handlers/rest/notifications_get"
	"trackit/internal/handlers/rest/package_get"
	"trackit/internal/handlers/rest/package_post"
	"trackit/internal/handlers/rest/package_station_put"
	"trackit/internal/handlers/rest/package_status_put"
	"trackit/internal/handlers/rest/packages_get"
	"trackit/internal/handlers/rest/ping_get"
	"trackit/internal/handlers/rest/stations_get"
	"trackit/internal/handlers/rest/tracking_detect_get"
	"trackit/internal/handlers/rest/tracking_validate_get"
	"trackit/internal/pkg/config"
	"trackit/internal/pkg/dotenv"
	"trackit/internal/pkg/kafka"
	metrics_system "trackit/internal/pkg/metrics"
	"trackit/internal/pkg/middlewares/auth"
	"trackit/internal/pkg/middlewares/graceful_shutdown"
	"trackit/internal/pkg/middlewares/metrics"
	"trackit/internal/pkg/middlewares/rate_limiter"
	"trackit/internal/pkg/middlewares/timeout"
	"trackit/internal/pkg/postgres"
	"trackit/internal/pkg/redisclient"
	"trackit/internal/repository/package_cache"
	"trackit/internal/service/shipment"
	"trackit/pkg/logger"
	"trackit/pkg/logger/zap_adapter"
	"trackit/pkg/token_bucket"
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.WithDebug(cfg.Log.Debug))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("app", "trackit"))

	mainLog.Info("starting trackit service")

	if err := run(context.Background(), cfg, appLogger); err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // contexts derived from context.Background() are part of graceful shutdown
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

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, log, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	// the lookup cache is optional: the service keeps working straight against GraphQL without it
	var cache shipment.PackageCache
	if cfg.Redis.Addr != "" {
		redisClient, err := redisclient.New(ctx, log, &cfg.Redis)
		if err != nil {
			runLog.Warn("package cache disabled", logger.NewField("error", err))
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					runLog.Error("failed to close redis connection", logger.NewField("error", err))
				}
			}()
			cache = package_cache.New(redisClient, cfg.Redis.CacheTTL)
		}
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cache, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	notificationsErr := make(chan error, 1)
	var notificationsWG sync.WaitGroup
	switch cfg.Notifications.Source {
	case config.NotificationsSourceKafka:
		consumer, err := kafka.NewConsumer(ctx, log, &cfg.Kafka, businessApp.KafkaHandler)
		if err != nil {
			return fmt.Errorf("kafka consumer: %w", err)
		}
		defer func() {
			if err := consumer.Close(); err != nil {
				runLog.Error("failed to close kafka consumer", logger.NewField("error", err))
			}
		}()

		notificationsWG.Add(1)
		go func() {
			defer notificationsWG.Done()
			if err := consumer.Start(ctx); err != nil {
				notificationsErr <- err
			}
		}()
	default:
		notificationsWG.Add(1)
		go func() {
			defer notificationsWG.Done()
			if err := businessApp.SubscriptionListener.Run(ctx); err != nil {
				notificationsErr <- err
			}
		}()
	}

	// ongoingCtx feeds BaseContext and must survive SIGTERM.
	// It is cancelled only after server.Shutdown() so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, pool, cfg),
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
			logger.NewField("notifications_source", cfg.Notifications.Source),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
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
	case err := <-pprofServerErr: // nil channel when pprof is disabled, never selected
		return fmt.Errorf("pprof server: %w", err)
	case err := <-notificationsErr:
		return fmt.Errorf("notifications: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not derive from ctx, which is already cancelled here
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	notificationsWG.Wait()
	<-businessApp.BackgroundWorkers.Done()

	runLog.Info("server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	database healthcheck_head.Pinger,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Use(auth.Middleware(log, cfg.Auth.JWTSecret))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, database)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/chat", chat_post.New(log, app.ServiceChat)).Methods("POST")
	router.Handle("/chat/{conversationID}", chat_get.New(log, app.ServiceChat)).Methods("GET")

	router.Handle("/tracking/detect", tracking_detect_get.New(log)).Methods("GET")
	router.Handle("/tracking/validate", tracking_validate_get.New(log)).Methods("GET")
	router.Handle("/stations", stations_get.New(log)).Methods("GET")

	router.Handle("/package/{trackingNumber}", package_get.New(log, app.ServicePackages)).Methods("GET")
	router.Handle("/packages", packages_get.New(log, app.ServicePackages)).Methods("GET")

	router.Handle("/notifications", notifications_get.New(log, app.ServiceNotifications)).Methods("GET")
	router.Handle("/notifications", notifications_delete.New(log, app.ServiceNotifications)).Methods("DELETE")

	// registered last: a matcher-less subrouter would otherwise shadow the routes above
	admin := router.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin(cfg.Auth.AdminUserID))
	admin.Handle("/package", package_post.New(log, app.ServicePackages)).Methods("POST")
	admin.Handle("/package/{id}/status", package_status_put.New(log, app.ServicePackages)).Methods("PUT")
	admin.Handle("/package/{id}/station", package_station_put.New(log, app.ServicePackages)).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
