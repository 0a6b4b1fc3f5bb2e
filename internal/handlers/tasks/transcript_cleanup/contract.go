//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transcript_cleanup_test
package transcript_cleanup

import (
	"context"
	"time"
)

type Service interface {
	CleanupTranscripts(ctx context.Context, retention time.Duration) (int64, error)
}
