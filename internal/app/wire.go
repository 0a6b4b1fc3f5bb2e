//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"trackit/internal/gateway/graphql"
	"trackit/internal/gateway/graphql/packages"
	"trackit/internal/gateway/graphql/subscription"
	"trackit/internal/handlers/kafka-consumer/package_updated"
	"trackit/internal/handlers/rest/chat_get"
	"trackit/internal/handlers/rest/chat_post"
	"trackit/internal/handlers/rest/notifications_delete"
	"trackit/internal/handlers/rest/notifications_get"
	"trackit/internal/handlers/rest/package_get"
	"trackit/internal/handlers/rest/package_post"
	"trackit/internal/handlers/rest/package_station_put"
	"trackit/internal/handlers/rest/package_status_put"
	"trackit/internal/handlers/rest/packages_get"
	"trackit/internal/handlers/tasks/transcript_cleanup"
	"trackit/internal/pkg/config"
	transcriptRepo "trackit/internal/repository/transcript"
	assistantService "trackit/internal/service/assistant"
	notificationService "trackit/internal/service/notification"
	shipmentService "trackit/internal/service/shipment"
	"trackit/pkg/background"
	"trackit/pkg/logger"
	"trackit/pkg/querier"
	"trackit/pkg/tx"
)

type Application struct {
	ServicePackages      ServicePackages
	ServiceChat          ServiceChat
	ServiceNotifications ServiceNotifications
	SubscriptionListener *subscription.Listener
	KafkaHandler         *package_updated.Handler
	BackgroundWorkers    *background.Worker
}

type ServicePackages interface {
	package_get.Service
	packages_get.Service
	package_post.Service
	package_status_put.Service
	package_station_put.Service
}

type ServiceChat interface {
	chat_post.Service
	chat_get.Service
}

type ServiceNotifications interface {
	notifications_get.Service
	notifications_delete.Service
}

// InitializeApplication wires the HTTP service (cmd/service). cache may be nil.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cache shipmentService.PackageCache,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideTranscriptRepository,

		provideGraphQLClient,
		providePackageGateway,
		provideCacheInvalidator,

		provideShipmentService,
		provideAssistantService,
		provideNotificationService,

		provideSubscriptionListener,
		provideKafkaHandler,

		provideTranscriptCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServicePackages), new(*shipmentService.Service)),
		wire.Bind(new(ServiceChat), new(*assistantService.Service)),
		wire.Bind(new(ServiceNotifications), new(*notificationService.Service)),

		wire.Bind(new(shipmentService.PackageGateway), new(*packages.Gateway)),
		wire.Bind(new(assistantService.Shipment), new(*shipmentService.Service)),
		wire.Bind(new(assistantService.Repository), new(*transcriptRepo.Repository)),
		wire.Bind(new(assistantService.TxManager), new(*tx.Manager)),
		wire.Bind(new(subscription.NotificationService), new(*notificationService.Service)),
		wire.Bind(new(package_updated.NotificationService), new(*notificationService.Service)),

		wire.Bind(new(transcript_cleanup.Service), new(*assistantService.Service)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideTranscriptRepository(querier *querier.Querier) *transcriptRepo.Repository {
	return transcriptRepo.New(querier)
}

func provideGraphQLClient(cfg *config.Config) *graphql.Client {
	return graphql.NewClient(
		cfg.GraphQL.HTTPEndpoint,
		graphql.WithHTTPClient(&http.Client{Timeout: cfg.GraphQL.RequestTimeout}),
	)
}

func providePackageGateway(client *graphql.Client) *packages.Gateway {
	return packages.New(client)
}

// provideCacheInvalidator keeps a nil cache an untyped nil for the notification service.
func provideCacheInvalidator(cache shipmentService.PackageCache) notificationService.CacheInvalidator {
	if cache == nil {
		return nil
	}
	return cache
}

func provideShipmentService(
	gateway shipmentService.PackageGateway,
	cache shipmentService.PackageCache,
	log logger.Logger,
) *shipmentService.Service {
	return shipmentService.New(gateway, cache, log.With(logger.NewField("service", "shipment")))
}

func provideAssistantService(
	shipment assistantService.Shipment,
	repository assistantService.Repository,
	txManager assistantService.TxManager,
	log logger.Logger,
) *assistantService.Service {
	return assistantService.New(shipment, repository, txManager, log.With(logger.NewField("service", "assistant")))
}

func provideNotificationService(
	cfg *config.Config,
	invalidator notificationService.CacheInvalidator,
	log logger.Logger,
) *notificationService.Service {
	return notificationService.New(
		cfg.Notifications.Capacity,
		invalidator,
		log.With(logger.NewField("service", "notification")),
	)
}

func provideSubscriptionListener(
	cfg *config.Config,
	service subscription.NotificationService,
	log logger.Logger,
) *subscription.Listener {
	return subscription.New(subscription.Config{
		Endpoint: cfg.GraphQL.WSEndpoint,
		Token:    cfg.GraphQL.ServiceToken,
	}, service, log)
}

func provideKafkaHandler(
	cfg *config.Config,
	service package_updated.NotificationService,
	log logger.Logger,
) *package_updated.Handler {
	return package_updated.New(log, service, cfg.Kafka.Handlers.PackageUpdated.ProcessTimeout)
}

func provideTranscriptCleanupTask(
	cfg *config.Config,
	service transcript_cleanup.Service,
) *transcript_cleanup.TranscriptCleanup {
	return transcript_cleanup.NewTranscriptCleanup(
		service,
		cfg.Tasks.TranscriptCleanupInterval,
		cfg.Tasks.TranscriptRetention,
	)
}

func provideTaskList(
	transcriptCleanupTask *transcript_cleanup.TranscriptCleanup,
) []background.Task {
	return []background.Task{
		transcriptCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

