package popularity

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/umputun/feedrank/pkg/config"
	"github.com/umputun/feedrank/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store provides raw engagement counts
type Store interface {
	CountEventsByArticle(ctx context.Context, articleIDs []string, since time.Time) (map[string]domain.EventCounts, error)
}

// Aggregator derives popularity stats and trending scores from engagement events
type Aggregator struct {
	store Store
	cfg   config.PopularityConfig
	now   func() time.Time
}

// NewAggregator makes a popularity aggregator, missing event weights use defaults
func NewAggregator(store Store, cfg config.PopularityConfig) *Aggregator {
	if len(cfg.EventWeights) == 0 {
		cfg.EventWeights = config.DefaultPopularityWeights()
	}
	if cfg.TrendingWindow <= 0 {
		cfg.TrendingWindow = 48 * time.Hour
	}
	if cfg.TrendingLimit <= 0 {
		cfg.TrendingLimit = 100
	}
	return &Aggregator{store: store, cfg: cfg, now: time.Now}
}

// GetArticlePopularity returns all-time stats of a single article
func (a *Aggregator) GetArticlePopularity(ctx context.Context, articleID string) (domain.PopularityStats, error) {
	stats, err := a.GetBatchPopularity(ctx, []string{articleID})
	if err != nil {
		return domain.PopularityStats{}, err
	}
	return stats[articleID], nil
}

// GetBatchPopularity returns all-time stats for every requested article.
// Articles without events get zero counts and a neutral like ratio.
func (a *Aggregator) GetBatchPopularity(ctx context.Context, articleIDs []string) (map[string]domain.PopularityStats, error) {
	res := make(map[string]domain.PopularityStats, len(articleIDs))
	if len(articleIDs) == 0 {
		return res, nil
	}
	counts, err := a.store.CountEventsByArticle(ctx, articleIDs, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	for _, id := range articleIDs {
		res[id] = a.stats(id, counts[id])
	}
	return res, nil
}

// GetTrendingArticleIDs returns ids of articles with a positive trending score within
// the trending window, highest score first
func (a *Aggregator) GetTrendingArticleIDs(ctx context.Context) ([]string, error) {
	counts, err := a.store.CountEventsByArticle(ctx, nil, a.now().Add(-a.cfg.TrendingWindow))
	if err != nil {
		return nil, fmt.Errorf("count recent events: %w", err)
	}

	type scored struct {
		id    string
		score float64
	}
	items := make([]scored, 0, len(counts))
	for id, c := range counts {
		score := 0.0
		for et, n := range c {
			score += float64(n) * a.cfg.EventWeights[string(et)]
		}
		if score > 0 {
			items = append(items, scored{id: id, score: score})
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return items[i].id < items[j].id
	})

	res := make([]string, 0, min(len(items), a.cfg.TrendingLimit))
	for i := 0; i < len(items) && i < a.cfg.TrendingLimit; i++ {
		res = append(res, items[i].id)
	}
	return res, nil
}

// stats builds popularity stats from counts, trending uses the open, like and dislike weights
func (a *Aggregator) stats(articleID string, c domain.EventCounts) domain.PopularityStats {
	opens, likes, dislikes := c[domain.EventOpen], c[domain.EventLike], c[domain.EventDislike]
	res := domain.PopularityStats{
		ArticleID:        articleID,
		TotalEngagements: c.Total(),
		Opens:            opens,
		Likes:            likes,
		Dislikes:         dislikes,
		LikeRatio:        LikeRatio(likes, dislikes),
	}
	w := a.cfg.EventWeights
	res.TrendingScore = float64(opens)*w[string(domain.EventOpen)] +
		float64(likes)*w[string(domain.EventLike)] +
		float64(dislikes)*w[string(domain.EventDislike)]
	return res
}

// LikeRatio is likes/(likes+dislikes), 0.5 when there are no votes
func LikeRatio(likes, dislikes int64) float64 {
	if likes+dislikes == 0 {
		return 0.5
	}
	return float64(likes) / float64(likes+dislikes)
}
