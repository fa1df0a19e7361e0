package backoff

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
)

// Config holds retry policy settings
type Config struct {
	// MaxAttempts bounds how many times the operation runs
	MaxAttempts int

	// BaseDelay is the delay before the first retry
	BaseDelay time.Duration

	// MaxDelay caps the growing delay
	MaxDelay time.Duration

	// Clock allows tests to use a fake clock. Defaults to the real clock.
	Clock clockwork.Clock
}

// permanentError marks an error that must not be retried
type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}

// Permanent wraps an error so Retry stops immediately instead of retrying
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Retry runs op until it succeeds, returns a permanent error, the attempt
// budget is exhausted, or the context is cancelled. The delay between
// attempts doubles from BaseDelay up to MaxDelay.
func Retry(ctx context.Context, cfg *Config, op func(ctx context.Context) error) error {
	if cfg == nil {
		cfg = &Config{}
	}

	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}

	delay := cfg.BaseDelay
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}

	maxDelay := cfg.MaxDelay
	if maxDelay <= 0 {
		maxDelay = 5 * time.Second
	}

	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-clock.After(delay):
			}

			delay *= 2
			if delay > maxDelay {
				delay = maxDelay
			}
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(lastErr, &perm) {
			return perm.err
		}
	}

	return lastErr
}
