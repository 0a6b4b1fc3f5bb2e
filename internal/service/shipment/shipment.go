package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trackit/internal/entities"
	"trackit/pkg/logger"
)

type Service struct {
	gateway PackageGateway
	cache   PackageCache
	log     serviceLogger
}

// New accepts a nil cache; lookups then always go to the gateway.
func New(gateway PackageGateway, cache PackageCache, log serviceLogger) *Service {
	return &Service{
		gateway: gateway,
		cache:   cache,
		log:     log,
	}
}

func (s *Service) GetPackages(ctx context.Context) ([]entities.Package, error) {
	packages, err := s.gateway.GetPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("get packages: %w", err)
	}
	return packages, nil
}

func (s *Service) GetPackageByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Package, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}

	writeBack := false
	var generation int64
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, trackingNumber)
		switch {
		case err == nil:
			return cached, nil
		case !errors.Is(err, ErrCacheMiss):
			s.warn("read package cache", trackingNumber, err)
		}

		// Read before the lookup so an update landing meanwhile wins.
		generation, err = s.cache.Generation(ctx, trackingNumber)
		if err != nil {
			s.warn("read package cache generation", trackingNumber, err)
		} else {
			writeBack = true
		}
	}

	pkg, err := s.gateway.GetPackageByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("get package %s: %w", trackingNumber, err)
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	if writeBack {
		if err := s.cache.Set(ctx, *pkg, generation); err != nil {
			s.warn("write package cache", trackingNumber, err)
		}
	}
	return pkg, nil
}

func (s *Service) CreatePackage(ctx context.Context, create entities.PackageCreate) (*entities.Package, error) {
	if !isValidPackageCreate(create) {
		return nil, ErrMissingRequiredFields
	}

	pkg, err := s.gateway.CreatePackage(ctx, entities.PackageCreate{
		Sender:      strings.TrimSpace(create.Sender),
		Receiver:    strings.TrimSpace(create.Receiver),
		Destination: strings.TrimSpace(create.Destination),
		UserID:      strings.TrimSpace(create.UserID),
	})
	if err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}
	return pkg, nil
}

func (s *Service) UpdatePackageStatus(ctx context.Context, id string, status entities.PackageStatus) (*entities.Package, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingRequiredFields
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	pkg, err := s.gateway.UpdatePackageStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update package %s status: %w", id, err)
	}

	s.invalidate(ctx, id, pkg)
	return pkg, nil
}

func (s *Service) UpdatePackageStation(ctx context.Context, id string, station entities.Station) (*entities.Package, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingRequiredFields
	}
	if !station.Valid() {
		return nil, ErrInvalidStation
	}

	pkg, err := s.gateway.UpdatePackageStation(ctx, id, station)
	if err != nil {
		return nil, fmt.Errorf("update package %s station: %w", id, err)
	}

	s.invalidate(ctx, id, pkg)
	return pkg, nil
}

func (s *Service) invalidate(ctx context.Context, id string, updated *entities.Package) {
	if s.cache == nil {
		return
	}
	var trackingNumber string
	if updated != nil {
		trackingNumber = updated.TrackingNumber
	}
	if err := s.cache.Invalidate(ctx, id, trackingNumber); err != nil {
		s.log.Warn("invalidate package cache",
			logger.NewField("package_id", id),
			logger.NewField("error", err),
		)
	}
}

func (s *Service) warn(msg, trackingNumber string, err error) {
	s.log.Warn(msg,
		logger.NewField("tracking_number", trackingNumber),
		logger.NewField("error", err),
	)
}
