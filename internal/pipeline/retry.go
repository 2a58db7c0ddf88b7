package pipeline

import (
	"context"
	"time"

	"github.com/schoolboyqueue/specforge/internal/spec"
)

// retryBaseDelay is the first backoff interval; each subsequent attempt
// doubles it (100ms, 200ms, 400ms, ...).
const retryBaseDelay = 100 * time.Millisecond

// GenerateWithRetries attempts the entire pipeline up to MaxRetries times,
// sleeping between attempts but not after the last. A retry re-runs every
// stage from scratch; there is no mid-pipeline resume, so stages that
// succeeded on a prior attempt run again. On exhaustion the last observed
// error is returned.
func (m *Manager) GenerateWithRetries(ctx context.Context, s *spec.Specification, targetPath string, opts Options) (*GenerationResult, error) {
	attempts := m.config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		result, err := m.Generate(ctx, s, targetPath, opts)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt < attempts-1 {
			delay := retryBaseDelay << attempt
			if err := m.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}
	}

	return nil, lastErr
}

// sleepContext waits out a backoff delay, returning early if the context
// is canceled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
