//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=packages_test
package packages

import (
	"context"

	"trackit/internal/gateway/graphql"
)

type client interface {
	Do(ctx context.Context, req graphql.Request, out any) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
