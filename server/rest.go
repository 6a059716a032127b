package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/goccy/go-json"

	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/engagement"
	"github.com/umputun/feedrank/pkg/interest"
	"github.com/umputun/feedrank/pkg/ranking"
	"github.com/umputun/feedrank/pkg/repository"
	"github.com/umputun/feedrank/pkg/scheduler"
)

const maxListLimit = 200

// engagementRequest is the body of engagement record and remove requests
type engagementRequest struct {
	UserID    string           `json:"user_id"`
	ArticleID string           `json:"article_id"`
	EventType domain.EventType `json:"event_type"`
	Metadata  map[string]any   `json:"metadata,omitempty"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	if count, err := s.articles.CountArticles(r.Context()); err == nil {
		status["articles"] = count
	} else {
		lgr.Printf("[WARN] failed to count articles: %v", err)
	}
	if last := s.scheduler.LastRun(); last != nil {
		status["last_ingest"] = last
	}
	renderJSON(w, r, http.StatusOK, status)
}

// ingestHandler runs ingestion synchronously and returns its result.
// The run is not canceled if the client disconnects.
func (s *Server) ingestHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.scheduler.IngestNow(context.WithoutCancel(r.Context()))
	if err != nil {
		if errors.Is(err, scheduler.ErrIngestRunning) {
			renderError(w, r, err, http.StatusConflict)
			return
		}
		lgr.Printf("[WARN] ingestion failed: %v", err)
		renderJSON(w, r, http.StatusInternalServerError, map[string]any{"error": err.Error(), "result": res})
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// feedHandler returns the personalized feed of a user
func (s *Server) feedHandler(w http.ResponseWriter, r *http.Request) {
	opts, err := feedOptions(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	feed, err := s.ranker.GetPersonalizedFeed(r.Context(), r.PathValue("user"), opts)
	if err != nil {
		lgr.Printf("[ERROR] failed to get feed for %s: %v", r.PathValue("user"), err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, feed)
}

// recentHandler returns the newest articles
func (s *Server) recentHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	articles, err := s.ranker.GetRecentFeed(r.Context(), limit)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, articles)
}

// searchHandler returns articles semantically similar to the query
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	minSim, err := queryFloat(r, "min_similarity")
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	matches, err := s.ranker.SearchArticles(r.Context(), r.URL.Query().Get("q"), limit, minSim)
	if err != nil {
		if errors.Is(err, ranking.ErrEmptyQuery) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		lgr.Printf("[ERROR] search failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, matches)
}

// trendingHandler returns trending articles, most trending first
func (s *Server) trendingHandler(w http.ResponseWriter, r *http.Request) {
	ids, err := s.popularity.GetTrendingArticleIDs(r.Context())
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	articles, err := s.articles.GetArticlesByIDs(r.Context(), ids)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	byID := make(map[string]domain.Article, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}
	res := make([]domain.Article, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			res = append(res, a)
		}
	}
	renderJSON(w, r, http.StatusOK, res)
}

// articleHandler returns an article with its tags
func (s *Server) articleHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	article, err := s.articles.GetArticle(r.Context(), id)
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	tags, err := s.articles.GetArticleTags(r.Context(), id)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"article": article, "tags": tags})
}

// popularityHandler returns engagement aggregates of an article
func (s *Server) popularityHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.popularity.GetArticlePopularity(r.Context(), r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// audienceHandler returns users whose profiles are closest to an article
func (s *Server) audienceHandler(w http.ResponseWriter, r *http.Request) {
	opts, err := similarityOptions(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	article, err := s.articles.GetArticle(r.Context(), r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	matches, err := s.similarity.FindSimilarProfiles(r.Context(), article.Embedding, opts)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, matches)
}

// tagsHandler lists all tags with article counts
func (s *Server) tagsHandler(w http.ResponseWriter, r *http.Request) {
	tags, err := s.tags.AllTags(r.Context())
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, tags)
}

// tagArticlesHandler lists newest articles with the tag
func (s *Server) tagArticlesHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	articles, err := s.tags.ArticlesByTags(r.Context(), []string{r.PathValue("slug")}, limit)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, articles)
}

// recordEngagementHandler records an engagement event
func (s *Server) recordEngagementHandler(w http.ResponseWriter, r *http.Request) {
	var req engagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	event, err := s.engagement.Record(r.Context(), req.UserID, req.ArticleID, req.EventType, req.Metadata)
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusCreated, event)
}

// removeEngagementHandler removes engagement events of a type
func (s *Server) removeEngagementHandler(w http.ResponseWriter, r *http.Request) {
	var req engagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	removed, err := s.engagement.Remove(r.Context(), req.UserID, req.ArticleID, req.EventType)
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int64{"removed": removed})
}

// engagementStatusHandler reports like and dislike status of a user for an article
func (s *Server) engagementStatusHandler(w http.ResponseWriter, r *http.Request) {
	status, err := s.engagement.Status(r.Context(), r.PathValue("user"), r.PathValue("article"))
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listInterestsHandler lists interests of a user
func (s *Server) listInterestsHandler(w http.ResponseWriter, r *http.Request) {
	interests, err := s.interests.List(r.Context(), r.PathValue("user"))
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, interests)
}

// addInterestHandler adds an interest for a user
func (s *Server) addInterestHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	in, err := s.interests.Add(r.Context(), r.PathValue("user"), req.Text)
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusCreated, in)
}

// removeInterestHandler removes an interest of a user
func (s *Server) removeInterestHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.interests.Remove(r.Context(), r.PathValue("user"), r.PathValue("id")); err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// interestMatchesHandler returns the interests of a user closest to the article given by the "article" parameter
func (s *Server) interestMatchesHandler(w http.ResponseWriter, r *http.Request) {
	articleID := r.URL.Query().Get("article")
	if articleID == "" {
		renderError(w, r, errors.New("article parameter is required"), http.StatusBadRequest)
		return
	}
	opts, err := similarityOptions(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	article, err := s.articles.GetArticle(r.Context(), articleID)
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	matches, err := s.similarity.FindSimilarInterests(r.Context(), article.Embedding, r.PathValue("user"), opts)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, matches)
}

// deleteProfileHandler drops the computed profile of a user, it is rebuilt from later engagement
func (s *Server) deleteProfileHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.profiles.DeleteProfile(r.Context(), r.PathValue("user")); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// profileHandler returns the computed profile of a user
func (s *Server) profileHandler(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.GetProfile(r.Context(), r.PathValue("user"))
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if p == nil {
		renderError(w, r, fmt.Errorf("no profile for %s", r.PathValue("user")), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{
		"profile":    p,
		"dimensions": len(p.Embedding),
	})
}

// feedOptions parses personalized feed query parameters
func feedOptions(r *http.Request) (ranking.Options, error) {
	var opts ranking.Options
	var err error
	if opts.Limit, err = queryLimit(r); err != nil {
		return opts, err
	}
	if opts.MinSimilarity, err = queryFloat(r, "min_similarity"); err != nil {
		return opts, err
	}
	if v := r.URL.Query().Get("include_engaged"); v != "" {
		if opts.IncludeEngaged, err = strconv.ParseBool(v); err != nil {
			return opts, fmt.Errorf("invalid include_engaged %q", v)
		}
	}
	return opts, nil
}

// queryLimit parses the limit parameter, zero means the default limit
func queryLimit(r *http.Request) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(v)
	if err != nil || limit < 0 || limit > maxListLimit {
		return 0, fmt.Errorf("invalid limit %q, expected 0-%d", v, maxListLimit)
	}
	return limit, nil
}

// similarityOptions parses limit and min_similarity of similarity lookups
func similarityOptions(r *http.Request) (domain.SimilarityOptions, error) {
	var opts domain.SimilarityOptions
	var err error
	if opts.TopK, err = queryLimit(r); err != nil {
		return opts, err
	}
	minSim, err := queryFloat(r, "min_similarity")
	if err != nil {
		return opts, err
	}
	if minSim != nil {
		opts.MinSimilarity = *minSim
	}
	return opts, nil
}

// queryFloat parses an optional float parameter
func queryFloat(r *http.Request, name string) (*float64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, v)
	}
	return &f, nil
}

// errorStatus maps service errors to http status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, engagement.ErrInvalidEvent), errors.Is(err, interest.ErrEmptyText):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
