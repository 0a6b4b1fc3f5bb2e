//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"trackit/internal/entities"
	"trackit/pkg/logger"
)

type PackageGateway interface {
	GetPackages(ctx context.Context) ([]entities.Package, error)
	GetPackageByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Package, error)
	CreatePackage(ctx context.Context, create entities.PackageCreate) (*entities.Package, error)
	UpdatePackageStatus(ctx context.Context, id string, status entities.PackageStatus) (*entities.Package, error)
	UpdatePackageStation(ctx context.Context, id string, station entities.Station) (*entities.Package, error)
}

// PackageCache returns ErrCacheMiss from Get when nothing is stored. Set skips the
// write when Invalidate ran after the generation it is given was read.
type PackageCache interface {
	Get(ctx context.Context, trackingNumber string) (*entities.Package, error)
	Generation(ctx context.Context, trackingNumber string) (int64, error)
	Set(ctx context.Context, pkg entities.Package, generation int64) error
	Invalidate(ctx context.Context, packageID, trackingNumber string) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
