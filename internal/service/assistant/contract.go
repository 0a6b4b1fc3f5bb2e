//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assistant_test
package assistant

import (
	"context"
	"time"

	"github.com/google/uuid"
	"trackit/internal/entities"
	"trackit/pkg/logger"
)

type Shipment interface {
	GetPackageByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Package, error)
}

type Repository interface {
	Save(ctx context.Context, message entities.ChatMessage) error
	ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]entities.ChatMessage, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
