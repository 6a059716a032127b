package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/metrics"
	"github.com/umputun/feedrank/pkg/ranking"
	"github.com/umputun/feedrank/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/ranker.go -pkg mocks -skip-ensure -fmt goimports . Ranker
//go:generate moq -out mocks/articles.go -pkg mocks -skip-ensure -fmt goimports . Articles
//go:generate moq -out mocks/popularity.go -pkg mocks -skip-ensure -fmt goimports . Popularity
//go:generate moq -out mocks/tags.go -pkg mocks -skip-ensure -fmt goimports . Tags
//go:generate moq -out mocks/engagement.go -pkg mocks -skip-ensure -fmt goimports . Engagement
//go:generate moq -out mocks/interests.go -pkg mocks -skip-ensure -fmt goimports . Interests
//go:generate moq -out mocks/profiles.go -pkg mocks -skip-ensure -fmt goimports . Profiles
//go:generate moq -out mocks/similarity.go -pkg mocks -skip-ensure -fmt goimports . Similarity
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	ranker     Ranker
	articles   Articles
	popularity Popularity
	tags       Tags
	engagement Engagement
	interests  Interests
	profiles   Profiles
	similarity Similarity
	scheduler  Scheduler
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
	GetFeedURLs() []string
}

// Ranker serves ranked, recent and search feeds
type Ranker interface {
	GetPersonalizedFeed(ctx context.Context, userID string, opts ranking.Options) ([]domain.ScoredArticle, error)
	GetRecentFeed(ctx context.Context, limit int) ([]domain.Article, error)
	SearchArticles(ctx context.Context, query string, limit int, minSimilarity *float64) ([]domain.ArticleMatch, error)
}

// Articles provides article lookups
type Articles interface {
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	GetArticlesByIDs(ctx context.Context, ids []string) ([]domain.Article, error)
	GetArticleTags(ctx context.Context, articleID string) ([]domain.Tag, error)
	CountArticles(ctx context.Context) (int64, error)
}

// Popularity provides engagement aggregates
type Popularity interface {
	GetArticlePopularity(ctx context.Context, articleID string) (domain.PopularityStats, error)
	GetTrendingArticleIDs(ctx context.Context) ([]string, error)
}

// Tags provides tag browsing
type Tags interface {
	AllTags(ctx context.Context) ([]domain.TagWithCount, error)
	ArticlesByTags(ctx context.Context, names []string, limit int) ([]domain.Article, error)
}

// Engagement records user interactions
type Engagement interface {
	Record(ctx context.Context, userID, articleID string, eventType domain.EventType, metadata map[string]any) (*domain.EngagementEvent, error)
	Remove(ctx context.Context, userID, articleID string, eventType domain.EventType) (int64, error)
	Status(ctx context.Context, userID, articleID string) (domain.EngagementStatus, error)
}

// Interests manages user interests
type Interests interface {
	Add(ctx context.Context, userID, text string) (*domain.UserInterest, error)
	Remove(ctx context.Context, userID, interestID string) error
	List(ctx context.Context, userID string) ([]domain.UserInterest, error)
}

// Profiles provides computed user profiles
type Profiles interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	DeleteProfile(ctx context.Context, userID string) error
}

// Similarity matches an embedding against stored interests and profiles
type Similarity interface {
	FindSimilarInterests(ctx context.Context, embedding []float64, userID string, opts domain.SimilarityOptions) ([]domain.InterestMatch, error)
	FindSimilarProfiles(ctx context.Context, embedding []float64, opts domain.SimilarityOptions) ([]domain.ProfileMatch, error)
}

// Scheduler triggers ingestion on demand
type Scheduler interface {
	IngestNow(ctx context.Context) (domain.IngestResult, error)
	LastRun() *scheduler.RunStatus
}

// Params holds server dependencies
type Params struct {
	Config     ConfigProvider
	Ranker     Ranker
	Articles   Articles
	Popularity Popularity
	Tags       Tags
	Engagement Engagement
	Interests  Interests
	Profiles   Profiles
	Similarity Similarity
	Scheduler  Scheduler
	Version    string
	Debug      bool
}

// New initializes a new server instance
func New(params Params) *Server {
	s := &Server{
		config:     params.Config,
		ranker:     params.Ranker,
		articles:   params.Articles,
		popularity: params.Popularity,
		tags:       params.Tags,
		engagement: params.Engagement,
		interests:  params.Interests,
		profiles:   params.Profiles,
		similarity: params.Similarity,
		scheduler:  params.Scheduler,
		version:    params.Version,
		debug:      params.Debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		// ingestion triggered over http may run longer than regular requests
		WriteTimeout: 0,
		IdleTimeout:  timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedrank", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /ingest", s.ingestHandler)

		r.HandleFunc("GET /feed/{user}", s.feedHandler)
		r.HandleFunc("GET /recent", s.recentHandler)
		r.HandleFunc("GET /search", s.searchHandler)
		r.HandleFunc("GET /trending", s.trendingHandler)
		r.HandleFunc("GET /articles/{id}", s.articleHandler)
		r.HandleFunc("GET /articles/{id}/popularity", s.popularityHandler)
		r.HandleFunc("GET /articles/{id}/audience", s.audienceHandler)

		r.HandleFunc("GET /tags", s.tagsHandler)
		r.HandleFunc("GET /tags/{slug}/articles", s.tagArticlesHandler)

		r.HandleFunc("POST /engagement", s.recordEngagementHandler)
		r.HandleFunc("DELETE /engagement", s.removeEngagementHandler)
		r.HandleFunc("GET /engagement/{user}/{article}", s.engagementStatusHandler)

		r.HandleFunc("GET /interests/{user}", s.listInterestsHandler)
		r.HandleFunc("POST /interests/{user}", s.addInterestHandler)
		r.HandleFunc("DELETE /interests/{user}/{id}", s.removeInterestHandler)
		r.HandleFunc("GET /interests/{user}/matches", s.interestMatchesHandler)

		r.HandleFunc("GET /profile/{user}", s.profileHandler)
		r.HandleFunc("DELETE /profile/{user}", s.deleteProfileHandler)
	})

	s.router.HandleFunc("GET /rss/{user}", s.rssHandler)
	s.router.HandleFunc("GET /opml", s.opmlHandler)
	s.router.Handle("GET /metrics", metrics.Handler())
}
