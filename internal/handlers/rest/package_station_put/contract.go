//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_station_put_test
package package_station_put

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

type Service interface {
	UpdatePackageStation(ctx context.Context, id string, station entities.Station) (*entities.Package, error)
}
