package notification

import (
	"context"
	"time"

	"trackit/internal/entities"
	"trackit/pkg/logger"
	"trackit/pkg/ring"
)

const DefaultCapacity = 20

type Option func(*Service)

// WithClock replaces time.Now for ReceivedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service keeps the most recent package updates seen by this process, newest first.
// Updates are never deduplicated: two updates for one package are two notifications.
type Service struct {
	buffer      *ring.Buffer[entities.Notification]
	invalidator CacheInvalidator
	log         serviceLogger
	now         func() time.Time
}

func New(capacity int, invalidator CacheInvalidator, log serviceLogger, opts ...Option) *Service {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	s := &Service{
		buffer:      ring.New[entities.Notification](capacity),
		invalidator: invalidator,
		log:         log,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Add(ctx context.Context, update entities.PackageUpdate) (entities.Notification, error) {
	if update.PackageID == "" {
		return entities.Notification{}, ErrMissingPackageID
	}

	n := entities.Notification{
		PackageID:   update.PackageID,
		Status:      update.Status,
		Station:     update.Station,
		Coordinates: update.Coordinates,
		History:     update.History,
		ReceivedAt:  s.now().UTC(),
	}
	s.buffer.Push(n)

	// Invalidation failures never drop the notification.
	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, update.PackageID, ""); err != nil {
			s.log.Warn("invalidate cached package",
				logger.NewField("package_id", update.PackageID),
				logger.NewField("error", err),
			)
		}
	}

	return n, nil
}

func (s *Service) List() []entities.Notification {
	return s.buffer.Items()
}

func (s *Service) Clear() {
	s.buffer.Reset()
}

func (s *Service) Capacity() int {
	return s.buffer.Cap()
}
