package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(maxRetries int, delays *[]time.Duration) RetryPolicy {
	p := NewRetryPolicy(maxRetries, 100*time.Millisecond)
	p.sleep = func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
	return p
}

func TestRetryPolicy_NoRetryOnSuccess(t *testing.T) {
	var delays []time.Duration
	p := testPolicy(3, &delays)

	retries, err := p.Do(context.Background(), func(context.Context) error { return nil })

	require.NoError(t, err)
	assert.Zero(t, retries)
	assert.Empty(t, delays)
}

func TestRetryPolicy_BackoffDoublesPerAttempt(t *testing.T) {
	var delays []time.Duration
	p := testPolicy(3, &delays)

	calls := 0
	retries, err := p.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, retries)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, delays)
}

func TestRetryPolicy_ExhaustionWrapsLastError(t *testing.T) {
	var delays []time.Duration
	p := testPolicy(3, &delays)

	last := errors.New("still broken")
	calls := 0
	retries, err := p.Do(context.Background(), func(context.Context) error {
		calls++
		return last
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, last)

	// three retries on top of the initial attempt
	assert.Equal(t, 4, calls)
	assert.Equal(t, 3, retries)
	assert.Len(t, delays, 3)
}

func TestRetryPolicy_CancellationStopsRetrying(t *testing.T) {
	p := NewRetryPolicy(5, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := p.Do(ctx, func(context.Context) error {
		calls++
		return errors.New("transient")
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_ZeroRetriesRunsOnce(t *testing.T) {
	p := NewRetryPolicy(0, time.Millisecond)

	calls := 0
	retries, err := p.Do(context.Background(), func(context.Context) error {
		calls++
		return errors.New("nope")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Zero(t, retries)
}
