//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test
package healthcheck_head

import "context"

// Pinger reports whether a dependency the service cannot work without is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
