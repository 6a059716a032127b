package ingest

import (
	"context"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// RetryFunc runs op until it succeeds or the retry policy gives up
type RetryFunc func(ctx context.Context, op func() error) error

// LinearRetry makes up to attempts calls of op, waiting delay multiplied by the attempt number between them
func LinearRetry(attempts int, delay time.Duration) RetryFunc {
	return func(ctx context.Context, op func() error) error {
		return repeater.NewBackoff(attempts, delay,
			repeater.WithBackoffType(repeater.BackoffLinear),
			repeater.WithJitter(0),
			repeater.WithMaxDelay(delay*time.Duration(max(attempts, 1))),
		).Do(ctx, op)
	}
}
