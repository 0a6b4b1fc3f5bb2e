package packages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trackit/internal/entities"
	"trackit/internal/gateway/graphql"
	"trackit/internal/service/shipment"
	retrierconfig "trackit/pkg/retrier"
	"trackit/pkg/retrier/backoff_adapter"
)

const serviceName = "package-service"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Gateway struct {
	client  client
	retrier retrier
}

type Option func(*Gateway)

func WithRetrier(r retrier) Option {
	return func(g *Gateway) {
		g.retrier = r
	}
}

func New(client client, opts ...Option) *Gateway {
	g := &Gateway{
		client: client,
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
			ShouldRetry:     graphql.Retryable,
		}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) GetPackages(ctx context.Context) ([]entities.Package, error) {
	var data getPackagesData

	err := g.query(ctx, "getPackages", graphql.Request{Query: getPackagesQuery}, &data)
	if err != nil {
		return nil, fmt.Errorf("gateway packages, get packages: %w", err)
	}
	return toDomainList(data.GetPackages), nil
}

func (g *Gateway) GetPackageByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Package, error) {
	var data getPackageData

	err := g.query(ctx, "getPackageByTrackingNumber", graphql.Request{
		Query:     getPackageByTrackingNumberQuery,
		Variables: map[string]any{"trackingNumber": trackingNumber},
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("gateway packages, get package: %s: %w", trackingNumber, notFound(err))
	}
	if data.GetPackageByTrackingNumber == nil {
		return nil, fmt.Errorf("gateway packages: %s: %w", trackingNumber, shipment.ErrPackageNotFound)
	}
	return toDomain(data.GetPackageByTrackingNumber), nil
}

func (g *Gateway) CreatePackage(ctx context.Context, create entities.PackageCreate) (*entities.Package, error) {
	var data createPackageData

	err := g.mutate(ctx, "createPackage", graphql.Request{
		Query: createPackageMutation,
		Variables: map[string]any{
			"sender":      create.Sender,
			"receiver":    create.Receiver,
			"destination": create.Destination,
			"userId":      create.UserID,
		},
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("gateway packages, create package: %w", err)
	}
	if data.CreatePackage == nil {
		return nil, errors.New("gateway packages, create package: empty response")
	}
	return toDomain(data.CreatePackage), nil
}

func (g *Gateway) UpdatePackageStatus(ctx context.Context, id string, status entities.PackageStatus) (*entities.Package, error) {
	var data updatePackageStatusData

	err := g.mutate(ctx, "updatePackageStatus", graphql.Request{
		Query:     updatePackageStatusMutation,
		Variables: map[string]any{"id": id, "status": status.String()},
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("gateway packages, update status: %s: %w", id, notFound(err))
	}
	if data.UpdatePackageStatus == nil {
		return nil, fmt.Errorf("gateway packages: %s: %w", id, shipment.ErrPackageNotFound)
	}
	return toDomain(data.UpdatePackageStatus), nil
}

func (g *Gateway) UpdatePackageStation(ctx context.Context, id string, station entities.Station) (*entities.Package, error) {
	var data updatePackageStationData

	err := g.mutate(ctx, "updatePackageStation", graphql.Request{
		Query:     updatePackageStationMutation,
		Variables: map[string]any{"id": id, "station": station.String()},
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("gateway packages, update station: %s: %w", id, notFound(err))
	}
	if data.UpdatePackageStation == nil {
		return nil, fmt.Errorf("gateway packages: %s: %w", id, shipment.ErrPackageNotFound)
	}
	return toDomain(data.UpdatePackageStation), nil
}

// query is retried on transient failures.
func (g *Gateway) query(ctx context.Context, operation string, req graphql.Request, out any) error {
	return g.executeWithMetrics(ctx, operation, true, req, out)
}

// mutate runs exactly once: a mutation that timed out may still have been applied.
func (g *Gateway) mutate(ctx context.Context, operation string, req graphql.Request, out any) error {
	return g.executeWithMetrics(ctx, operation, false, req, out)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, operation string, retry bool, req graphql.Request, out any) error {
	var attempt uint64
	start := time.Now()

	call := func(ctx context.Context) error {
		attempt++
		return g.client.Do(ctx, req, out)
	}

	var err error
	if retry {
		err = g.retrier.ExecuteWithContext(ctx, call)
	} else {
		err = call(ctx)
	}

	code := graphql.Code(err)
	GatewayRequestDuration.WithLabelValues(serviceName, operation, code).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, operation, code).Inc()
	}
	return err
}

func notFound(err error) error {
	var gqlErr *graphql.Error
	if errors.As(err, &gqlErr) && gqlErr.NotFound() {
		return fmt.Errorf("%w: %w", shipment.ErrPackageNotFound, err)
	}
	return err
}
