//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=subscription_test
package subscription

import (
	"context"

	"trackit/internal/entities"
	"trackit/pkg/logger"
)

type listenerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type NotificationService interface {
	Add(ctx context.Context, update entities.PackageUpdate) (entities.Notification, error)
}
