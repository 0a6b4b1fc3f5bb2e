// Package subscription keeps a graphql-transport-ws subscription to packageUpdated open
// and hands every update to the notification store.
package subscription

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	gql "github.com/hasura/go-graphql-client"
	"trackit/pkg/logger"
	retrierconfig "trackit/pkg/retrier"
	"trackit/pkg/retrier/backoff_adapter"
)

const (
	defaultAckTimeout   = 10 * time.Second
	defaultMinReconnect = 500 * time.Millisecond
	defaultMaxReconnect = 30 * time.Second
)

type Config struct {
	Endpoint string
	// Token is sent as "Bearer <token>" in the connection_init payload when set.
	Token        string
	AckTimeout   time.Duration
	MinReconnect time.Duration
	MaxReconnect time.Duration
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type Listener struct {
	cfg     Config
	service NotificationService
	log     listenerLogger
	retrier retrier
}

func New(cfg Config, service NotificationService, log listenerLogger) *Listener {
	if cfg.AckTimeout <= 0 {
		cfg.AckTimeout = defaultAckTimeout
	}
	if cfg.MinReconnect <= 0 {
		cfg.MinReconnect = defaultMinReconnect
	}
	if cfg.MaxReconnect < cfg.MinReconnect {
		cfg.MaxReconnect = max(defaultMaxReconnect, cfg.MinReconnect)
	}

	l := &Listener{
		cfg:     cfg,
		service: service,
		log:     log.With(logger.NewField("component", "subscription")),
	}
	l.retrier = backoff_adapter.New(retrierconfig.Config{
		InitialInterval: cfg.MinReconnect,
		MaxInterval:     cfg.MaxReconnect,
		Randomization:   0.5,
		Multiplier:      2,
		Notify: func(err error, wait time.Duration) {
			l.log.With(
				logger.NewField("error", err),
				logger.NewField("retry_in", wait.String()),
			).Warn("subscription session failed, reconnecting")
		},
	})
	return l
}

// Run keeps the subscription alive until ctx is done. It only returns nil.
func (l *Listener) Run(ctx context.Context) error {
	l.log.Info("subscription listener started", logger.NewField("endpoint", l.cfg.Endpoint))
	defer l.log.Info("subscription listener stopped")

	attempts := 0
	for {
		_ = l.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
			if attempts > 0 {
				SubscriptionReconnectsTotal.Inc()
			}
			attempts++

			return l.session(ctx)
		})

		// An acknowledged session ended; start over with a fresh backoff.
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.cfg.MinReconnect):
		}
	}
}

// session returns nil once a subscription that was acknowledged ends, and an error
// when the connection could not be established.
func (l *Listener) session(ctx context.Context) error {
	client := gql.NewSubscriptionClient(l.cfg.Endpoint).
		WithProtocol(gql.GraphQLWS).
		WithTimeout(l.cfg.AckTimeout).
		// Reconnects go through the backoff retrier, not the client's own loop.
		WithRetryTimeout(time.Nanosecond).
		WithSyncMode(true).
		WithExitWhenNoSubscription(true).
		OnError(func(_ *gql.SubscriptionClient, err error) error {
			return err
		}).
		OnConnected(func() {
			l.log.Info("subscribed to packageUpdated")
		})
	if l.cfg.Token != "" {
		client = client.WithConnectionParams(map[string]any{"Authorization": "Bearer " + l.cfg.Token})
	}

	if _, err := client.Exec(packageUpdatedQuery, nil, func(data []byte, err error) error {
		l.handleNext(ctx, data, err)
		return nil
	}); err != nil {
		return fmt.Errorf("subscribe packageUpdated: %w", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-ctx.Done():
			_ = client.Close()
		case <-done:
		}
	}()

	err := client.Run()
	close(done)
	wg.Wait()

	if ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("subscription %s: %w", l.cfg.Endpoint, err)
	}
	l.log.Warn("subscription connection lost")
	return nil
}

func (l *Listener) handleNext(ctx context.Context, data []byte, err error) {
	if err != nil {
		SubscriptionMessagesTotal.WithLabelValues("error").Inc()
		l.log.With(logger.NewField("error", err)).Warn("packageUpdated carried errors")
	}
	if len(data) == 0 {
		return
	}
	SubscriptionMessagesTotal.WithLabelValues("next").Inc()

	var payload packageUpdatedData
	if err := json.Unmarshal(data, &payload); err != nil {
		l.log.With(logger.NewField("error", err)).Warn("decode packageUpdated payload")
		return
	}
	if payload.PackageUpdated == nil {
		return
	}

	update := toDomain(payload.PackageUpdated)
	if _, err := l.service.Add(ctx, update); err != nil {
		l.log.With(
			logger.NewField("package_id", update.PackageID),
			logger.NewField("error", err),
		).Warn("store package update")
		return
	}
	l.log.Info("package update received",
		logger.NewField("package_id", update.PackageID),
		logger.NewField("status", update.Status.String()),
		logger.NewField("station", update.Station.String()),
	)
}
