package profile

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedrank/pkg/config"
	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/profile/mocks"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestBuilder(store Store) *Builder {
	b := NewBuilder(BuilderConfig{Store: store, Profile: config.ProfileConfig{
		EventWeights:       config.DefaultProfileWeights(),
		TemporalDecayDays:  30,
		LowSignalThreshold: 5,
		MaxEngagements:     100,
	}})
	b.now = func() time.Time { return testNow }
	return b
}

// dataStore serves fixed signals and interests and records upserts
func dataStore(signals []domain.EngagementSignal, interests []domain.UserInterest) *mocks.StoreMock {
	return &mocks.StoreMock{
		GetRecentSignalsFunc: func(context.Context, string, int) ([]domain.EngagementSignal, error) {
			return signals, nil
		},
		GetInterestsFunc: func(context.Context, string) ([]domain.UserInterest, error) {
			return interests, nil
		},
		UpsertProfileFunc: func(context.Context, *domain.UserProfile) error { return nil },
	}
}

func assertVector(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "element %d", i)
	}
}

func TestBuilder_ShouldUpdateProfile(t *testing.T) {
	t.Run("high signal always updates", func(t *testing.T) {
		store := &mocks.StoreMock{}
		b := newTestBuilder(store)
		for _, et := range []domain.EventType{domain.EventLike, domain.EventDislike} {
			ok, err := b.ShouldUpdateProfile(context.Background(), "u1", et)
			require.NoError(t, err)
			assert.True(t, ok)
		}
		assert.Empty(t, store.GetProfileCalls())
	})

	t.Run("no profile counts all events", func(t *testing.T) {
		count := int64(4)
		store := &mocks.StoreMock{
			GetProfileFunc: func(context.Context, string) (*domain.UserProfile, error) { return nil, nil },
			CountUserEventsFunc: func(_ context.Context, _ string, since time.Time) (int64, error) {
				assert.True(t, since.IsZero())
				return count, nil
			},
		}
		b := newTestBuilder(store)
		ok, err := b.ShouldUpdateProfile(context.Background(), "u1", domain.EventScroll)
		require.NoError(t, err)
		assert.False(t, ok)

		count = 5
		ok, err = b.ShouldUpdateProfile(context.Background(), "u1", domain.EventOpen)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("existing profile counts new events", func(t *testing.T) {
		updated := testNow.Add(-time.Hour)
		store := &mocks.StoreMock{
			GetProfileFunc: func(context.Context, string) (*domain.UserProfile, error) {
				return &domain.UserProfile{UserID: "u1", LastUpdatedAt: updated}, nil
			},
			CountUserEventsFunc: func(_ context.Context, _ string, since time.Time) (int64, error) {
				assert.Equal(t, updated, since)
				return 2, nil
			},
		}
		ok, err := newTestBuilder(store).ShouldUpdateProfile(context.Background(), "u1", domain.EventExpandSummary)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store error", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetProfileFunc: func(context.Context, string) (*domain.UserProfile, error) { return nil, errors.New("db") },
		}
		_, err := newTestBuilder(store).ShouldUpdateProfile(context.Background(), "u1", domain.EventOpen)
		require.Error(t, err)
	})
}

func TestBuilder_UpdateProfile(t *testing.T) {
	t.Run("blend of engagement and interests", func(t *testing.T) {
		signals := []domain.EngagementSignal{
			{EventType: domain.EventLike, Embedding: []float64{1, 0}, CreatedAt: testNow},
			{EventType: domain.EventOpen, Embedding: []float64{0, 1}, CreatedAt: testNow},
		}
		interests := []domain.UserInterest{
			{ID: "i1", Embedding: []float64{0, 1}},
			{ID: "i2", Embedding: []float64{0, 3}},
		}
		store := dataStore(signals, interests)

		p, err := newTestBuilder(store).UpdateProfile(context.Background(), "u1")
		require.NoError(t, err)
		require.NotNil(t, p)

		e := []float64{1.0 / 1.5, 0.5 / 1.5}
		i := []float64{0, 2}
		assertVector(t, []float64{(e[0] + i[0]) / 2, (e[1] + i[1]) / 2}, p.Embedding)
		assert.Equal(t, "u1", p.UserID)
		assert.Equal(t, 2, p.EngagementCount)
		assert.Equal(t, testNow, p.LastUpdatedAt)

		require.Len(t, store.UpsertProfileCalls(), 1)
		assert.Equal(t, p, store.UpsertProfileCalls()[0].Profile)
		assert.Equal(t, 100, store.GetRecentSignalsCalls()[0].Limit)
	})

	t.Run("explicit blend ratio", func(t *testing.T) {
		signals := []domain.EngagementSignal{{EventType: domain.EventLike, Embedding: []float64{1, 0}, CreatedAt: testNow}}
		interests := []domain.UserInterest{{Embedding: []float64{0, 1}}}
		for _, tc := range []struct {
			ratio float64
			want  []float64
		}{
			{ratio: 0, want: []float64{0, 1}},
			{ratio: 1, want: []float64{1, 0}},
			{ratio: 0.25, want: []float64{0.25, 0.75}},
		} {
			ratio := tc.ratio
			b := NewBuilder(BuilderConfig{Store: dataStore(signals, interests), Profile: config.ProfileConfig{BlendRatio: &ratio}})
			b.now = func() time.Time { return testNow }
			p, err := b.UpdateProfile(context.Background(), "u1")
			require.NoError(t, err)
			require.NotNil(t, p)
			assertVector(t, tc.want, p.Embedding)
		}
	})

	t.Run("zero config blends evenly", func(t *testing.T) {
		signals := []domain.EngagementSignal{{EventType: domain.EventLike, Embedding: []float64{1, 0}, CreatedAt: testNow}}
		interests := []domain.UserInterest{{Embedding: []float64{0, 1}}}
		b := NewBuilder(BuilderConfig{Store: dataStore(signals, interests)})
		b.now = func() time.Time { return testNow }
		p, err := b.UpdateProfile(context.Background(), "u1")
		require.NoError(t, err)
		require.NotNil(t, p)
		assertVector(t, []float64{0.5, 0.5}, p.Embedding)
	})

	t.Run("interests only equals their average", func(t *testing.T) {
		store := dataStore(nil, []domain.UserInterest{
			{Embedding: []float64{0.2, 0.4, 0.6}},
			{Embedding: []float64{0.4, 0.0, 0.2}},
		})
		p, err := newTestBuilder(store).UpdateProfile(context.Background(), "u1")
		require.NoError(t, err)
		require.NotNil(t, p)
		assertVector(t, []float64{0.3, 0.2, 0.4}, p.Embedding)
		assert.Zero(t, p.EngagementCount)
	})

	t.Run("engagement only with decay and dislike", func(t *testing.T) {
		store := dataStore([]domain.EngagementSignal{
			{EventType: domain.EventLike, Embedding: []float64{1, 0}, CreatedAt: testNow},
			{EventType: domain.EventLike, Embedding: []float64{0, 1}, CreatedAt: testNow.Add(-30 * 24 * time.Hour)},
			{EventType: domain.EventDislike, Embedding: []float64{1, 1}, CreatedAt: testNow},
		}, nil)
		p, err := newTestBuilder(store).UpdateProfile(context.Background(), "u1")
		require.NoError(t, err)
		require.NotNil(t, p)

		decayed := math.Exp(-1)
		total := 1 + decayed + 0.8
		assertVector(t, []float64{(1 - 0.8) / total, (decayed - 0.8) / total}, p.Embedding)
		assert.Equal(t, 3, p.EngagementCount)
	})

	t.Run("mismatched dimensions skipped", func(t *testing.T) {
		store := dataStore([]domain.EngagementSignal{
			{EventType: domain.EventLike, Embedding: []float64{1, 0}, CreatedAt: testNow},
			{EventType: domain.EventLike, Embedding: []float64{1, 2, 3}, CreatedAt: testNow},
		}, []domain.UserInterest{{Embedding: []float64{9, 9, 9}}})
		p, err := newTestBuilder(store).UpdateProfile(context.Background(), "u1")
		require.NoError(t, err)
		require.NotNil(t, p)
		assertVector(t, []float64{1, 0}, p.Embedding)
		assert.Equal(t, 1, p.EngagementCount)
	})

	t.Run("nothing to build from", func(t *testing.T) {
		store := dataStore(nil, nil)
		p, err := newTestBuilder(store).UpdateProfile(context.Background(), "u1")
		require.NoError(t, err)
		assert.Nil(t, p)
		assert.Empty(t, store.UpsertProfileCalls())
	})

	t.Run("upsert retried", func(t *testing.T) {
		store := dataStore(nil, []domain.UserInterest{{Embedding: []float64{1}}})
		failures := 1
		store.UpsertProfileFunc = func(context.Context, *domain.UserProfile) error {
			if failures > 0 {
				failures--
				return errors.New("database is locked")
			}
			return nil
		}
		b := NewBuilder(BuilderConfig{Store: store, RetryFunc: func(_ context.Context, op func() error) error {
			if err := op(); err != nil {
				return op()
			}
			return nil
		}})
		p, err := b.UpdateProfile(context.Background(), "u1")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Len(t, store.UpsertProfileCalls(), 2)
	})

	t.Run("signals error", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetRecentSignalsFunc: func(context.Context, string, int) ([]domain.EngagementSignal, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := newTestBuilder(store).UpdateProfile(context.Background(), "u1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestBuilder_Run(t *testing.T) {
	var mu sync.Mutex
	upserted := map[string]int{}
	store := dataStore(nil, []domain.UserInterest{{Embedding: []float64{1, 1}}})
	store.UpsertProfileFunc = func(_ context.Context, p *domain.UserProfile) error {
		mu.Lock()
		upserted[p.UserID]++
		mu.Unlock()
		return nil
	}
	store.GetProfileFunc = func(context.Context, string) (*domain.UserProfile, error) { return nil, nil }
	store.CountUserEventsFunc = func(_ context.Context, userID string, _ time.Time) (int64, error) {
		if userID == "quiet" {
			return 1, nil
		}
		return 10, nil
	}

	n := NewNotifier(10)
	n.Notify(Request{UserID: "u1", EventType: domain.EventLike})
	n.Notify(Request{UserID: "u1", EventType: domain.EventScroll})
	n.Notify(Request{UserID: "quiet", EventType: domain.EventScroll})
	n.Notify(Request{UserID: "busy", EventType: domain.EventOpen})
	n.Notify(Request{UserID: "forced", Force: true})
	close(n.ch)

	newTestBuilder(store).Run(context.Background(), n.Requests())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, map[string]int{"u1": 1, "busy": 1, "forced": 1}, upserted)
}

func TestNotifier_Full(t *testing.T) {
	n := NewNotifier(1)
	n.Notify(Request{UserID: "a"})
	n.Notify(Request{UserID: "b"})
	require.Len(t, n.ch, 1)
	assert.Equal(t, "a", (<-n.Requests()).UserID)
}

func TestBuilder_Run_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		newTestBuilder(&mocks.StoreMock{}).Run(ctx, make(chan Request))
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
