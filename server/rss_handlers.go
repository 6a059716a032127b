package server

import (
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedrank/pkg/feed"
	"github.com/umputun/feedrank/pkg/ranking"
)

// rssHandler serves the personalized feed of a user as RSS
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user")

	limit, err := queryLimit(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	articles, err := s.ranker.GetPersonalizedFeed(r.Context(), userID, ranking.Options{Limit: limit})
	if err != nil {
		lgr.Printf("[ERROR] failed to get feed for RSS of %s: %v", userID, err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := feed.NewGenerator(s.config.GetBaseURL()).GenerateRSS(articles, userID)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// opmlHandler serves the configured feed subscriptions as OPML
func (s *Server) opmlHandler(w http.ResponseWriter, _ *http.Request) {
	opml, err := feed.NewGenerator(s.config.GetBaseURL()).GenerateOPML(s.config.GetFeedURLs())
	if err != nil {
		lgr.Printf("[ERROR] failed to generate OPML: %v", err)
		http.Error(w, "Failed to generate OPML", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/x-opml; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="feedrank.opml"`)
	if _, err := w.Write([]byte(opml)); err != nil {
		lgr.Printf("[ERROR] failed to write OPML response: %v", err)
	}
}
