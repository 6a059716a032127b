package server

import (
	"context"
	"encoding/xml"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/ranking"
)

func TestServer_rssHandler(t *testing.T) {
	published := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	deps := newTestDeps()
	deps.ranker.GetPersonalizedFeedFunc = func(context.Context, string, ranking.Options) ([]domain.ScoredArticle, error) {
		return []domain.ScoredArticle{
			{Article: domain.Article{ID: "a1", Title: "Ranked first", Summary: "about go", KeyFacts: []string{"fact"},
				SourceURL: "https://example.com/1", PublishedAt: &published}, Scores: domain.Scores{Final: 0.91}},
			{Article: domain.Article{ID: "a2", Title: "Ranked second", SourceURL: "https://example.com/2",
				CreatedAt: published}, Scores: domain.Scores{Final: 0.42}},
		}, nil
	}

	w := serve(deps.server(), httptest.NewRequest("GET", "/rss/user1?limit=2", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))

	var doc struct {
		Channel struct {
			Title string `xml:"title"`
			Items []struct {
				Title       string `xml:"title"`
				Link        string `xml:"link"`
				Description string `xml:"description"`
			} `xml:"item"`
		} `xml:"channel"`
	}
	require.NoError(t, xml.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Feedrank - user1", doc.Channel.Title)
	require.Len(t, doc.Channel.Items, 2)
	assert.Equal(t, "Ranked first", doc.Channel.Items[0].Title)
	assert.Equal(t, "https://example.com/2", doc.Channel.Items[1].Link)
	assert.Contains(t, doc.Channel.Items[0].Description, "Score: 0.91")

	calls := deps.ranker.GetPersonalizedFeedCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "user1", calls[0].UserID)
	assert.Equal(t, 2, calls[0].Opts.Limit)
}

func TestServer_rssHandler_Errors(t *testing.T) {
	deps := newTestDeps()
	deps.ranker.GetPersonalizedFeedFunc = func(context.Context, string, ranking.Options) ([]domain.ScoredArticle, error) {
		return nil, errors.New("ranking failed")
	}
	srv := deps.server()

	w := serve(srv, httptest.NewRequest("GET", "/rss/user1", http.NoBody))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate RSS feed")

	w = serve(srv, httptest.NewRequest("GET", "/rss/user1?limit=x", http.NoBody))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_opmlHandler(t *testing.T) {
	deps := newTestDeps()
	deps.cfg.GetFeedURLsFunc = func() []string {
		return []string{"https://example.com/rss", "https://blog.example.org/atom.xml"}
	}

	w := serve(deps.server(), httptest.NewRequest("GET", "/opml", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/x-opml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "feedrank.opml")

	var doc struct {
		Outlines []struct {
			XMLURL string `xml:"xmlUrl,attr"`
		} `xml:"body>outline"`
	}
	require.NoError(t, xml.Unmarshal(w.Body.Bytes(), &doc))
	require.Len(t, doc.Outlines, 2)
	assert.Equal(t, "https://blog.example.org/atom.xml", doc.Outlines[1].XMLURL)
}
