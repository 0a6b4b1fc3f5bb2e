package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc observes a failed attempt together with the wait before the next one.
type NotifyFunc func(err error, wait time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	// Zero means retry until the context is done.
	MaxElapsedTime time.Duration
	Randomization  float64
	Multiplier     float64

	// nil retries every error; otherwise only errors for which it returns true.
	ShouldRetry ShouldRetryFunc
	// Not called for permanent errors or for the last attempt.
	Notify NotifyFunc
}
