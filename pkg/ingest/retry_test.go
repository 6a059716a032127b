package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearRetry_DelayGrowsWithAttempt(t *testing.T) {
	const delay = 30 * time.Millisecond
	var calls []time.Time
	err := LinearRetry(3, delay)(context.Background(), func() error {
		calls = append(calls, time.Now())
		return errors.New("provider unavailable")
	})
	require.EqualError(t, err, "provider unavailable")
	require.Len(t, calls, 3)

	assert.GreaterOrEqual(t, calls[1].Sub(calls[0]), delay, "first wait is delay")
	assert.GreaterOrEqual(t, calls[2].Sub(calls[1]), 2*delay, "second wait is twice the delay")
}

func TestLinearRetry_Success(t *testing.T) {
	attempts := 0
	err := LinearRetry(3, time.Millisecond)(context.Background(), func() error {
		attempts++
		if attempts < 2 {
			return errors.New("timeout")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestLinearRetry_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	err := LinearRetry(5, time.Hour)(ctx, func() error {
		attempts++
		cancel()
		return errors.New("failed")
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}
