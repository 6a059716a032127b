package profile

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/metrics"
)

// Request asks the worker to consider recomputing a user profile.
// Force skips the volume gate, used when interests change.
type Request struct {
	UserID    string
	EventType domain.EventType
	Force     bool
}

// Notifier queues profile update requests without blocking the caller
type Notifier struct {
	ch chan Request
}

// NewNotifier makes a notifier with a bounded queue
func NewNotifier(size int) *Notifier {
	if size <= 0 {
		size = 100
	}
	return &Notifier{ch: make(chan Request, size)}
}

// Notify queues a request, it is dropped if the queue is full
func (n *Notifier) Notify(req Request) {
	select {
	case n.ch <- req:
	default:
		lgr.Printf("[WARN] profile update queue is full, dropping update for %s", req.UserID)
		metrics.ProfileUpdate("dropped")
	}
}

// Requests returns the receiving side of the queue
func (n *Notifier) Requests() <-chan Request {
	return n.ch
}

// Run processes profile update requests until ctx is canceled or requests is closed.
// Consecutive queued requests for the same user are collapsed into one recomputation.
func (b *Builder) Run(ctx context.Context, requests <-chan Request) {
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-requests:
			if !ok {
				return
			}
			batch := map[string]Request{req.UserID: req}
			order := []string{req.UserID}
		drain:
			for {
				select {
				case next, ok := <-requests:
					if !ok {
						break drain
					}
					prev, seen := batch[next.UserID]
					if !seen {
						order = append(order, next.UserID)
					}
					batch[next.UserID] = merge(prev, next, seen)
				default:
					break drain
				}
			}
			for _, userID := range order {
				if ctx.Err() != nil {
					return
				}
				b.process(ctx, batch[userID])
			}
		}
	}
}

// merge keeps the strongest reason to recompute
func merge(prev, next Request, seen bool) Request {
	if !seen {
		return next
	}
	if prev.Force || prev.EventType.HighSignal() {
		return prev
	}
	return next
}

func (b *Builder) process(ctx context.Context, req Request) {
	if !req.Force {
		ok, err := b.ShouldUpdateProfile(ctx, req.UserID, req.EventType)
		if err != nil {
			lgr.Printf("[WARN] profile gate for %s failed: %v", req.UserID, err)
			metrics.ProfileUpdate("error")
			return
		}
		if !ok {
			metrics.ProfileUpdate("skipped")
			return
		}
	}

	p, err := b.UpdateProfile(ctx, req.UserID)
	switch {
	case err != nil:
		lgr.Printf("[WARN] failed to update profile of %s: %v", req.UserID, err)
		metrics.ProfileUpdate("error")
	case p == nil:
		metrics.ProfileUpdate("empty")
	default:
		metrics.ProfileUpdate("updated")
	}
}
