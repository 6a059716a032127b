package ranking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedrank/pkg/config"
	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/metrics"
	"github.com/umputun/feedrank/pkg/vector"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/popularity.go -pkg mocks -skip-ensure -fmt goimports . Popularity
//go:generate moq -out mocks/embedder.go -pkg mocks -skip-ensure -fmt goimports . Embedder

// ErrEmptyQuery is returned by SearchArticles for a blank query
var ErrEmptyQuery = errors.New("empty search query")

// Store provides articles, user state and the similarity index
type Store interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	GetInterests(ctx context.Context, userID string) ([]domain.UserInterest, error)
	FindSimilarArticles(ctx context.Context, embedding []float64, opts domain.SimilarityOptions) ([]domain.ArticleMatch, error)
	GetEngagedArticleIDs(ctx context.Context, userID string) (map[string]bool, error)
	GetSeenTagIDs(ctx context.Context, userID string) (map[string]bool, error)
	GetArticleTagIDs(ctx context.Context, articleIDs []string) (map[string][]string, error)
	GetRecentArticles(ctx context.Context, limit int) ([]domain.Article, error)
}

// Popularity provides engagement aggregates of articles
type Popularity interface {
	GetBatchPopularity(ctx context.Context, articleIDs []string) (map[string]domain.PopularityStats, error)
}

// Embedder embeds search queries
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Options controls a personalized feed request, nil fields use configured defaults
type Options struct {
	Limit          int
	MinSimilarity  *float64
	IncludeEngaged bool
}

// Engine ranks articles for users
type Engine struct {
	store      Store
	popularity Popularity
	embedder   Embedder
	cfg        config.RankingConfig
	now        func() time.Time
	random     func() float64
}

// EngineConfig holds configuration for Engine
type EngineConfig struct {
	Store      Store
	Popularity Popularity
	Embedder   Embedder
	Ranking    config.RankingConfig
	Random     func() float64 // optional, source of the exploration term in [0,1)
}

// NewEngine makes a ranking engine
func NewEngine(cfg EngineConfig) *Engine {
	rc := cfg.Ranking
	if rc.DefaultLimit <= 0 {
		rc.DefaultLimit = 20
	}
	if rc.CandidateMultiplier <= 0 {
		rc.CandidateMultiplier = 3
	}
	if rc.RecencyDecayDays <= 0 {
		rc.RecencyDecayDays = 7
	}
	if rc.ProfileFreshness <= 0 {
		rc.ProfileFreshness = time.Hour
	}
	random := cfg.Random
	if random == nil {
		random = rand.Float64 //nolint:gosec // exploration noise, not security sensitive
	}
	return &Engine{store: cfg.Store, popularity: cfg.Popularity, embedder: cfg.Embedder, cfg: rc, now: time.Now, random: random}
}

// GetRecentFeed returns the newest articles
func (e *Engine) GetRecentFeed(ctx context.Context, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}
	articles, err := e.store.GetRecentArticles(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get recent articles: %w", err)
	}
	return articles, nil
}

// SearchArticles embeds the query and returns the most similar articles
func (e *Engine) SearchArticles(ctx context.Context, query string, limit int, minSimilarity *float64) ([]domain.ArticleMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}
	emb, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	matches, err := e.store.FindSimilarArticles(ctx, emb, domain.SimilarityOptions{TopK: limit, MinSimilarity: e.minSimilarity(minSimilarity)})
	if err != nil {
		return nil, fmt.Errorf("find similar articles: %w", err)
	}
	return matches, nil
}

// GetPersonalizedFeed ranks similarity candidates by a weighted blend of similarity, recency,
// popularity and exploration. Users without a fresh profile or interests get the recent feed,
// and so does everyone when ranking inputs can't be loaded.
func (e *Engine) GetPersonalizedFeed(ctx context.Context, userID string, opts Options) ([]domain.ScoredArticle, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	query, mode, err := e.queryEmbedding(ctx, userID)
	if err != nil {
		lgr.Printf("[WARN] can't build query embedding for %s, serving recent feed: %v", userID, err)
		return e.fallbackFeed(ctx, limit, metrics.FeedDegraded)
	}
	if query == nil {
		return e.fallbackFeed(ctx, limit, metrics.FeedColdStart)
	}

	res, err := e.rank(ctx, userID, query, limit, opts)
	if err != nil {
		lgr.Printf("[WARN] personalized ranking for %s failed, serving recent feed: %v", userID, err)
		return e.fallbackFeed(ctx, limit, metrics.FeedDegraded)
	}
	metrics.FeedRequest(mode)
	return res, nil
}

// queryEmbedding picks a fresh profile, then the interest average. Nil means cold start.
func (e *Engine) queryEmbedding(ctx context.Context, userID string) ([]float64, string, error) {
	p, err := e.store.GetProfile(ctx, userID)
	if err != nil {
		lgr.Printf("[WARN] can't load profile of %s: %v", userID, err)
		p = nil
	}
	if p != nil && len(p.Embedding) > 0 && e.now().Sub(p.LastUpdatedAt) < e.cfg.ProfileFreshness {
		return p.Embedding, metrics.FeedPersonalized, nil
	}

	interests, err := e.store.GetInterests(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("get interests: %w", err)
	}
	vs := make([][]float64, 0, len(interests))
	for _, in := range interests {
		if len(in.Embedding) > 0 && (len(vs) == 0 || len(in.Embedding) == len(vs[0])) {
			vs = append(vs, in.Embedding)
		}
	}
	mean, err := vector.Mean(vs)
	if err != nil {
		return nil, "", fmt.Errorf("average interests: %w", err)
	}
	return mean, metrics.FeedInterests, nil
}

func (e *Engine) rank(ctx context.Context, userID string, query []float64, limit int, opts Options) ([]domain.ScoredArticle, error) {
	matches, err := e.store.FindSimilarArticles(ctx, query, domain.SimilarityOptions{
		TopK:          limit * e.cfg.CandidateMultiplier,
		MinSimilarity: e.minSimilarity(opts.MinSimilarity),
	})
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}

	if !opts.IncludeEngaged && len(matches) > 0 {
		engaged, err := e.store.GetEngagedArticleIDs(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("get engaged articles: %w", err)
		}
		kept := make([]domain.ArticleMatch, 0, len(matches))
		for _, m := range matches {
			if !engaged[m.Article.ID] {
				kept = append(kept, m)
			}
		}
		matches = kept
	}
	if len(matches) == 0 {
		return []domain.ScoredArticle{}, nil
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.Article.ID)
	}
	stats, err := e.popularity.GetBatchPopularity(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get popularity: %w", err)
	}
	seenTags, err := e.store.GetSeenTagIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get seen tags: %w", err)
	}
	articleTags, err := e.store.GetArticleTagIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get article tags: %w", err)
	}

	maxTrending := 1.0
	for _, s := range stats {
		maxTrending = max(maxTrending, s.TrendingScore)
	}

	now := e.now()
	w := e.cfg.Weights
	res := make([]domain.ScoredArticle, 0, len(matches))
	for _, m := range matches {
		s := stats[m.Article.ID]
		scores := domain.Scores{
			Similarity:  m.Similarity,
			Recency:     e.recency(m.Article, now),
			Popularity:  0.7*(s.TrendingScore/maxTrending) + 0.3*likeRatio(s),
			Exploration: e.exploration(articleTags[m.Article.ID], seenTags),
		}
		scores.Final = w.Similarity*scores.Similarity + w.Recency*scores.Recency +
			w.Popularity*scores.Popularity + w.Exploration*scores.Exploration
		res = append(res, domain.ScoredArticle{Article: m.Article, Scores: scores})
	}

	sort.SliceStable(res, func(i, j int) bool { return res[i].Scores.Final > res[j].Scores.Final })
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

// fallbackFeed serves the recent feed with only a random exploration score
func (e *Engine) fallbackFeed(ctx context.Context, limit int, mode string) ([]domain.ScoredArticle, error) {
	articles, err := e.GetRecentFeed(ctx, limit)
	if err != nil {
		return nil, err
	}
	res := make([]domain.ScoredArticle, 0, len(articles))
	for _, a := range articles {
		res = append(res, domain.ScoredArticle{Article: a, Scores: domain.Scores{Exploration: e.cfg.RandomExplorationFactor * e.random()}})
	}
	metrics.FeedRequest(mode)
	return res, nil
}

func (e *Engine) recency(a domain.Article, now time.Time) float64 {
	days := max(0, now.Sub(a.EffectiveTime()).Hours()/24)
	return math.Exp(-days / e.cfg.RecencyDecayDays)
}

// exploration rewards articles whose tags the user hasn't engaged with yet
func (e *Engine) exploration(tagIDs []string, seen map[string]bool) float64 {
	noise := e.cfg.RandomExplorationFactor * e.random()
	if len(tagIDs) == 0 {
		return noise
	}
	unseen := 0
	for _, id := range tagIDs {
		if !seen[id] {
			unseen++
		}
	}
	ratio := float64(unseen) / float64(len(tagIDs))
	return min(1, ratio*e.cfg.ExplorationBoost+noise)
}

func (e *Engine) minSimilarity(v *float64) float64 {
	if v != nil {
		return *v
	}
	return e.cfg.DefaultMinSimilarity
}

func likeRatio(s domain.PopularityStats) float64 {
	if s.Likes+s.Dislikes == 0 {
		return 0.5
	}
	return s.LikeRatio
}
