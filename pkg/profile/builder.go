package profile

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedrank/pkg/config"
	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/vector"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store provides engagement history, interests and profile persistence
type Store interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	UpsertProfile(ctx context.Context, profile *domain.UserProfile) error
	CountUserEvents(ctx context.Context, userID string, since time.Time) (int64, error)
	GetRecentSignals(ctx context.Context, userID string, limit int) ([]domain.EngagementSignal, error)
	GetInterests(ctx context.Context, userID string) ([]domain.UserInterest, error)
}

// Builder computes user profile embeddings from engagement signals and explicit interests
type Builder struct {
	store     Store
	cfg       config.ProfileConfig
	retryFunc func(ctx context.Context, operation func() error) error
	now       func() time.Time
}

// BuilderConfig holds configuration for Builder
type BuilderConfig struct {
	Store     Store
	Profile   config.ProfileConfig
	RetryFunc func(ctx context.Context, operation func() error) error // optional, wraps the profile upsert
}

// NewBuilder makes a profile builder, zero config values fall back to defaults
func NewBuilder(cfg BuilderConfig) *Builder {
	pc := cfg.Profile
	if len(pc.EventWeights) == 0 {
		pc.EventWeights = config.DefaultProfileWeights()
	}
	if pc.TemporalDecayDays <= 0 {
		pc.TemporalDecayDays = 30
	}
	if pc.LowSignalThreshold <= 0 {
		pc.LowSignalThreshold = 5
	}
	if pc.MaxEngagements <= 0 {
		pc.MaxEngagements = 100
	}
	if pc.BlendRatio == nil {
		ratio := config.DefaultBlendRatio
		pc.BlendRatio = &ratio
	}
	retry := cfg.RetryFunc
	if retry == nil {
		retry = func(_ context.Context, op func() error) error { return op() }
	}
	return &Builder{store: cfg.Store, cfg: pc, retryFunc: retry, now: time.Now}
}

// GetProfile returns the stored profile of a user, nil if none was computed yet
func (b *Builder) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	p, err := b.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", userID, err)
	}
	return p, nil
}

// ShouldUpdateProfile reports whether an event of the given type warrants recomputation.
// Likes and dislikes always do. Other events need LowSignalThreshold events in total
// for a user without a profile, or that many new events since the last update.
func (b *Builder) ShouldUpdateProfile(ctx context.Context, userID string, eventType domain.EventType) (bool, error) {
	if eventType.HighSignal() {
		return true, nil
	}

	p, err := b.store.GetProfile(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("get profile %s: %w", userID, err)
	}

	var since time.Time
	if p != nil {
		since = p.LastUpdatedAt
	}
	count, err := b.store.CountUserEvents(ctx, userID, since)
	if err != nil {
		return false, fmt.Errorf("count events of %s: %w", userID, err)
	}
	return count >= int64(b.cfg.LowSignalThreshold), nil
}

// UpdateProfile recomputes and stores the profile of a user.
// Returns nil without writing anything when the user has neither engagement nor interests.
func (b *Builder) UpdateProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	signals, err := b.store.GetRecentSignals(ctx, userID, b.cfg.MaxEngagements)
	if err != nil {
		return nil, fmt.Errorf("get engagement signals of %s: %w", userID, err)
	}
	interests, err := b.store.GetInterests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get interests of %s: %w", userID, err)
	}

	now := b.now()
	engagement, used := b.engagementTerm(signals, now)
	interest := interestTerm(interests, len(engagement))

	var embedding []float64
	switch {
	case engagement != nil && interest != nil:
		if embedding, err = vector.Blend(engagement, interest, *b.cfg.BlendRatio); err != nil {
			return nil, fmt.Errorf("blend profile of %s: %w", userID, err)
		}
	case engagement != nil:
		embedding = engagement
	case interest != nil:
		embedding = interest
	default:
		lgr.Printf("[DEBUG] no engagement or interests for %s, profile not created", userID)
		return nil, nil
	}

	p := &domain.UserProfile{UserID: userID, Embedding: embedding, EngagementCount: used, LastUpdatedAt: now}
	if err := b.retryFunc(ctx, func() error { return b.store.UpsertProfile(ctx, p) }); err != nil {
		return nil, fmt.Errorf("save profile of %s: %w", userID, err)
	}
	lgr.Printf("[DEBUG] profile of %s updated from %d events and %d interests", userID, used, len(interests))
	return p, nil
}

// engagementTerm is the decayed weighted average of signal embeddings, nil when nothing contributes.
// Signals with a dimension different from the newest one are skipped.
func (b *Builder) engagementTerm(signals []domain.EngagementSignal, now time.Time) (res []float64, used int) {
	var acc vector.WeightedAccumulator
	dim := 0
	for _, s := range signals {
		if len(s.Embedding) == 0 {
			continue
		}
		if dim == 0 {
			dim = len(s.Embedding)
		}
		if len(s.Embedding) != dim {
			lgr.Printf("[WARN] skip engagement signal with dimension %d, expected %d", len(s.Embedding), dim)
			continue
		}
		weight, ok := b.cfg.EventWeights[string(s.EventType)]
		if !ok || weight == 0 {
			continue
		}
		ageDays := max(0, now.Sub(s.CreatedAt).Hours()/24)
		if err := acc.Add(s.Embedding, weight*math.Exp(-ageDays/b.cfg.TemporalDecayDays)); err != nil {
			continue
		}
		used++
	}
	return acc.Result(), used
}

// interestTerm is the plain mean of interest embeddings, nil without interests.
// A non-zero dim drops interests of another dimension.
func interestTerm(interests []domain.UserInterest, dim int) []float64 {
	vs := make([][]float64, 0, len(interests))
	for _, in := range interests {
		if len(in.Embedding) == 0 {
			continue
		}
		if dim == 0 {
			dim = len(in.Embedding)
		}
		if len(in.Embedding) != dim {
			lgr.Printf("[WARN] skip interest %s with dimension %d, expected %d", in.ID, len(in.Embedding), dim)
			continue
		}
		vs = append(vs, in.Embedding)
	}
	res, err := vector.Mean(vs)
	if err != nil {
		return nil
	}
	return res
}
