package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"trackit/internal/pkg/config"
	"trackit/pkg/logger"
	retrierconfig "trackit/pkg/retrier"
	"trackit/pkg/retrier/backoff_adapter"
)

const (
	dialTimeout  = 3 * time.Second
	readTimeout  = time.Second
	writeTimeout = time.Second

	initialInterval = 500 * time.Millisecond
	maxInterval     = 5 * time.Second
	maxElapsedTime  = 20 * time.Second
	randomization   = 0.5
	multiplier      = 2
)

// New connects to redis and waits until it answers PING.
func New(ctx context.Context, log logger.Logger, cfg *config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})

	redisLog := log.With(
		logger.NewField("addr", cfg.Addr),
		logger.NewField("db", cfg.DB),
	)

	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		Notify: func(err error, wait time.Duration) {
			redisLog.Warn("redis not ready",
				logger.NewField("error", err),
				logger.NewField("retry_in", wait.String()),
			)
		},
	})

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		redisLog.Info("attempting redis connection", logger.NewField("attempt", attempt))
		return client.Ping(ctx).Err()
	})
	if err != nil {
		_ = client.Close()
		redisLog.Error("redis connection failed after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	redisLog.Info("redis connection established", logger.NewField("attempts", attempt))
	return client, nil
}
