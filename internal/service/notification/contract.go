//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"trackit/pkg/logger"
)

type CacheInvalidator interface {
	Invalidate(ctx context.Context, packageID, trackingNumber string) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
