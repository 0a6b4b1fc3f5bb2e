package transcript_cleanup

import (
	"context"
	"fmt"
	"time"
)

// TranscriptCleanup drops chat messages older than the retention window on every tick.
type TranscriptCleanup struct {
	service   Service
	interval  time.Duration
	retention time.Duration
}

func NewTranscriptCleanup(service Service, interval, retention time.Duration) *TranscriptCleanup {
	return &TranscriptCleanup{
		service:   service,
		interval:  interval,
		retention: retention,
	}
}

func (t *TranscriptCleanup) TTL() time.Duration {
	return t.interval
}

func (t *TranscriptCleanup) Do(ctx context.Context) error {
	timeout := t.interval
	if timeout <= 0 {
		timeout = time.Minute
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := t.service.CleanupTranscripts(ctxWithTimeout, t.retention); err != nil {
		return fmt.Errorf("cleanup transcripts: %w", err)
	}
	return nil
}

func (t *TranscriptCleanup) Info() string {
	return "transcript cleanup"
}
