package graceful_shutdown

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"trackit/internal/handlers/rest/response"
)

// retryAfter is what a client should wait before trying another replica.
const retryAfter = 5 * time.Second

// Middleware answers 503 once draining has begun, so load balancers move chat and
// tracking traffic elsewhere while in-flight lookups finish.
func Middleware(draining *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && draining.Load() {
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
				_ = response.Error(w, http.StatusServiceUnavailable, "service is shutting down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
