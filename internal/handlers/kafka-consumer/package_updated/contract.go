//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_updated_test
package package_updated

import (
	"context"

	"trackit/internal/entities"
	"trackit/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type NotificationService interface {
	Add(ctx context.Context, update entities.PackageUpdate) (entities.Notification, error)
}
