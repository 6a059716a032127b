package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/umputun/feedrank/pkg/config"
	"github.com/umputun/feedrank/pkg/metrics"
)

// callGuard rate-limits provider calls and stops calling a failing provider for a while
type callGuard[T any] struct {
	name    string
	breaker *gobreaker.CircuitBreaker[T]
	limiter *rate.Limiter
}

func newCallGuard[T any](name string, rps float64, bc config.BreakerConfig) *callGuard[T] {
	maxFailures := bc.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	g := &callGuard[T]{name: name}
	g.breaker = gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     bc.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			lgr.Printf("[WARN] %s provider circuit breaker %s -> %s", name, from, to)
		},
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
	})
	if rps > 0 {
		g.limiter = rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
	}
	return g
}

// do runs fn once the limiter allows it, through the breaker
func (g *callGuard[T]) do(ctx context.Context, fn func() (T, error)) (T, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			var zero T
			return zero, fmt.Errorf("%s rate limit wait: %w", g.name, err)
		}
	}
	res, err := g.breaker.Execute(fn)
	metrics.ProviderRequest(g.name, err)
	return res, err
}
