package sdk

import (
	"context"
	"errors"
	"time"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = time.Second
)

// RetryOptions bounds the retry loop. The zero value means the defaults:
// 3 attempts total with a fixed 1s delay between them.
type RetryOptions struct {
	Attempts int
	Delay    time.Duration
}

// Retry runs fn up to 3 times with a fixed 1s delay between attempts.
//
// Retry is opt-in per call and intended for idempotent-safe requests only;
// nothing stops a caller from wrapping a mutating call, but the SDK does not
// do so itself. Auth failures (session expired, forbidden) are never retried:
// repeating them without re-authenticating cannot succeed.
func Retry[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	return RetryWith(ctx, RetryOptions{}, fn)
}

// RetryWith is Retry with explicit bounds.
func RetryWith[T any](ctx context.Context, opts RetryOptions, fn func(context.Context) (T, error)) (T, error) {
	attempts := opts.Attempts
	if attempts <= 0 {
		attempts = defaultRetryAttempts
	}
	delay := opts.Delay
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	var zero T
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, ctx.Err()
			case <-timer.C:
			}
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		var apiErr *Error
		if errors.As(err, &apiErr) && !apiErr.Retryable() {
			return zero, err
		}
	}
	return zero, lastErr
}
