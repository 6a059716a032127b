package popularity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedrank/pkg/config"
	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/popularity/mocks"
)

func TestAggregator_GetBatchPopularity(t *testing.T) {
	store := &mocks.StoreMock{
		CountEventsByArticleFunc: func(_ context.Context, ids []string, since time.Time) (map[string]domain.EventCounts, error) {
			assert.True(t, since.IsZero(), "batch stats are all-time")
			return map[string]domain.EventCounts{
				"a1": {domain.EventOpen: 10, domain.EventLike: 3, domain.EventDislike: 1, domain.EventScroll: 4},
				"a2": {domain.EventDislike: 2},
			}, nil
		},
	}
	agg := NewAggregator(store, config.PopularityConfig{})

	stats, err := agg.GetBatchPopularity(context.Background(), []string{"a1", "a2", "a3"})
	require.NoError(t, err)
	require.Len(t, stats, 3)

	a1 := stats["a1"]
	assert.Equal(t, "a1", a1.ArticleID)
	assert.Equal(t, int64(18), a1.TotalEngagements)
	assert.Equal(t, int64(10), a1.Opens)
	assert.Equal(t, int64(3), a1.Likes)
	assert.Equal(t, int64(1), a1.Dislikes)
	assert.InDelta(t, 0.75, a1.LikeRatio, 1e-9)
	assert.InDelta(t, 10*1+3*3-1*1, a1.TrendingScore, 1e-9, "scroll not part of batch trending")

	assert.InDelta(t, 0.0, stats["a2"].LikeRatio, 1e-9)
	assert.InDelta(t, -2, stats["a2"].TrendingScore, 1e-9)

	a3 := stats["a3"]
	assert.Equal(t, "a3", a3.ArticleID)
	assert.Zero(t, a3.TotalEngagements)
	assert.InDelta(t, 0.5, a3.LikeRatio, 1e-9, "neutral ratio without votes")
	assert.Zero(t, a3.TrendingScore)

	// empty input skips the store
	empty, err := agg.GetBatchPopularity(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Len(t, store.CountEventsByArticleCalls(), 1)
}

func TestAggregator_GetArticlePopularity(t *testing.T) {
	store := &mocks.StoreMock{
		CountEventsByArticleFunc: func(_ context.Context, ids []string, _ time.Time) (map[string]domain.EventCounts, error) {
			assert.Equal(t, []string{"a1"}, ids)
			return map[string]domain.EventCounts{"a1": {domain.EventLike: 2}}, nil
		},
	}
	stats, err := NewAggregator(store, config.PopularityConfig{}).GetArticlePopularity(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Likes)
	assert.InDelta(t, 1.0, stats.LikeRatio, 1e-9)

	store.CountEventsByArticleFunc = func(context.Context, []string, time.Time) (map[string]domain.EventCounts, error) {
		return nil, errors.New("db down")
	}
	_, err = NewAggregator(store, config.PopularityConfig{}).GetArticlePopularity(context.Background(), "a1")
	require.Error(t, err)
}

func TestAggregator_GetTrendingArticleIDs(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := &mocks.StoreMock{
		CountEventsByArticleFunc: func(_ context.Context, ids []string, since time.Time) (map[string]domain.EventCounts, error) {
			assert.Nil(t, ids)
			assert.Equal(t, now.Add(-24*time.Hour), since)
			return map[string]domain.EventCounts{
				"low":      {domain.EventScroll: 1},                                // 0.5
				"high":     {domain.EventExpandSummary: 2, domain.EventLike: 1},    // 7
				"negative": {domain.EventDislike: 3, domain.EventOpen: 1},          // -2
				"zero":     {domain.EventDislike: 1, domain.EventOpen: 1},          // 0
				"mid":      {domain.EventOpen: 2},                                  // 2
				"mid2":     {domain.EventExpandSummary: 1},                         // 2
			}, nil
		},
	}
	agg := NewAggregator(store, config.PopularityConfig{TrendingWindow: 24 * time.Hour, TrendingLimit: 3})
	agg.now = func() time.Time { return now }

	ids, err := agg.GetTrendingArticleIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "mid", "mid2"}, ids)

	agg.cfg.TrendingLimit = 10
	ids, err = agg.GetTrendingArticleIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "mid", "mid2", "low"}, ids, "non-positive scores excluded")
}

func TestLikeRatio(t *testing.T) {
	assert.InDelta(t, 0.5, LikeRatio(0, 0), 1e-9)
	assert.InDelta(t, 1.0, LikeRatio(5, 0), 1e-9)
	assert.InDelta(t, 0.25, LikeRatio(1, 3), 1e-9)
}
