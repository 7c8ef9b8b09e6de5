package service

import (
	"context"
	"fmt"
	"time"
)

// RetryPolicy retries an operation with exponential backoff. It replaces
// per-call-site retry loops so every orchestrator counts attempts the
// same way.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration

	sleep func(ctx context.Context, d time.Duration) error
}

func NewRetryPolicy(maxRetries int, baseDelay time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxRetries: maxRetries,
		BaseDelay:  baseDelay,
		sleep:      sleepCtx,
	}
}

// Do runs op once and retries it up to MaxRetries more times, waiting
// BaseDelay*2^(attempt-1) between attempts. It returns the number of
// retries consumed alongside the final error, if any.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) error) (int, error) {
	retries := p.MaxRetries
	if retries < 0 {
		retries = 0
	}
	attempts := retries + 1

	sleep := p.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = op(ctx); err == nil {
			return attempt - 1, nil
		}

		if attempt == attempts {
			break
		}

		backoff := p.BaseDelay << (attempt - 1)
		if serr := sleep(ctx, backoff); serr != nil {
			return attempt, serr
		}
	}

	return attempts - 1, fmt.Errorf("after %d attempts: %w", attempts, err)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
