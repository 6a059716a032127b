package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/scheduler"
	"github.com/umputun/feedrank/server/mocks"
)

// testDeps holds mocks for every server dependency, tests override what they need
type testDeps struct {
	cfg        *mocks.ConfigProviderMock
	ranker     *mocks.RankerMock
	articles   *mocks.ArticlesMock
	popularity *mocks.PopularityMock
	tags       *mocks.TagsMock
	engagement *mocks.EngagementMock
	interests  *mocks.InterestsMock
	profiles   *mocks.ProfilesMock
	similarity *mocks.SimilarityMock
	scheduler  *mocks.SchedulerMock
}

func newTestDeps() *testDeps {
	return &testDeps{
		cfg: &mocks.ConfigProviderMock{
			GetServerConfigFunc: func() (string, time.Duration) { return ":8080", 30 * time.Second },
			GetBaseURLFunc:      func() string { return "http://localhost:8080" },
			GetFeedURLsFunc:     func() []string { return []string{"https://example.com/rss"} },
		},
		ranker:     &mocks.RankerMock{},
		articles:   &mocks.ArticlesMock{},
		popularity: &mocks.PopularityMock{},
		tags:       &mocks.TagsMock{},
		engagement: &mocks.EngagementMock{},
		interests:  &mocks.InterestsMock{},
		profiles:   &mocks.ProfilesMock{},
		similarity: &mocks.SimilarityMock{},
		scheduler: &mocks.SchedulerMock{
			LastRunFunc: func() *scheduler.RunStatus { return nil },
		},
	}
}

func (d *testDeps) server() *Server {
	return New(Params{
		Config:     d.cfg,
		Ranker:     d.ranker,
		Articles:   d.articles,
		Popularity: d.popularity,
		Tags:       d.tags,
		Engagement: d.engagement,
		Interests:  d.interests,
		Profiles:   d.profiles,
		Similarity: d.similarity,
		Scheduler:  d.scheduler,
		Version:    "1.0.0",
	})
}

// serve sends the request through the full router, including middleware
func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestServer_New(t *testing.T) {
	srv := newTestDeps().server()
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	deps := newTestDeps()
	deps.cfg.GetServerConfigFunc = func() (string, time.Duration) {
		return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
	}
	srv := deps.server()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		return err == nil
	}, time.Second, 20*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
	assert.Equal(t, "feedrank", resp.Header.Get("App-Name"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server not stopped")
	}
}

func TestServer_Routes(t *testing.T) {
	deps := newTestDeps()
	deps.ranker.GetRecentFeedFunc = func(context.Context, int) ([]domain.Article, error) { return []domain.Article{}, nil }
	deps.tags.AllTagsFunc = func(context.Context) ([]domain.TagWithCount, error) { return []domain.TagWithCount{}, nil }
	srv := deps.server()

	tbl := []struct {
		method, path string
		code         int
	}{
		{"GET", "/api/v1/recent", http.StatusOK},
		{"GET", "/api/v1/tags", http.StatusOK},
		{"POST", "/api/v1/recent", http.StatusMethodNotAllowed},
		{"GET", "/api/v1/unknown", http.StatusNotFound},
		{"GET", "/metrics", http.StatusOK},
	}
	for _, tt := range tbl {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(srv, httptest.NewRequest(tt.method, tt.path, http.NoBody))
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
