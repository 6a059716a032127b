package ingest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedrank/pkg/config"
	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/ingest/mocks"
	"github.com/umputun/feedrank/pkg/repository"
	"github.com/umputun/feedrank/pkg/tag"
)

func feedItems(n int) []domain.FeedItem {
	res := make([]domain.FeedItem, 0, n)
	for i := 1; i <= n; i++ {
		res = append(res, domain.FeedItem{
			Title:       fmt.Sprintf("item %d", i),
			Description: fmt.Sprintf("description %d", i),
			Link:        fmt.Sprintf("https://example.com/%d", i),
		})
	}
	return res
}

func staticSource(items []domain.FeedItem) *mocks.FeedSourceMock {
	return &mocks.FeedSourceMock{FetchItemsFunc: func(context.Context) ([]domain.FeedItem, error) { return items, nil }}
}

func okSummarizer() *mocks.SummarizerMock {
	return &mocks.SummarizerMock{SummarizeFunc: func(_ context.Context, title, _ string) (*domain.Summary, error) {
		return &domain.Summary{Summary: "summary of " + title, KeyFacts: []string{"fact"}, Tags: []string{"Go", "news"}}, nil
	}}
}

func okEmbedder() *mocks.EmbedderMock {
	return &mocks.EmbedderMock{EmbedFunc: func(context.Context, string) ([]float64, error) { return []float64{0.1, 0.2}, nil }}
}

// memArticles is a thread-safe article store keyed by source url
func memArticles(existing ...string) *mocks.ArticleStoreMock {
	var mu sync.Mutex
	stored := map[string]bool{}
	for _, u := range existing {
		stored[u] = true
	}
	seq := 0
	return &mocks.ArticleStoreMock{
		ExistingSourceURLsFunc: func(_ context.Context, urls []string) (map[string]bool, error) {
			mu.Lock()
			defer mu.Unlock()
			res := map[string]bool{}
			for _, u := range urls {
				if stored[u] {
					res[u] = true
				}
			}
			return res, nil
		},
		CreateArticleFunc: func(_ context.Context, a *domain.Article) error {
			mu.Lock()
			defer mu.Unlock()
			if stored[a.SourceURL] {
				return repository.ErrDuplicate
			}
			stored[a.SourceURL] = true
			seq++
			a.ID = fmt.Sprintf("article-%d", seq)
			return nil
		},
	}
}

func okTags() *mocks.TagResolverMock {
	return &mocks.TagResolverMock{ResolveAndLinkFunc: func(_ context.Context, _ string, names []string) ([]domain.Tag, error) {
		res := make([]domain.Tag, 0, len(names))
		for _, n := range names {
			res = append(res, domain.Tag{ID: n, Name: n, Slug: tag.NormalizeSlug(n)})
		}
		return res, nil
	}}
}

func noRetry(ctx context.Context, op func() error) error { return op() }

func TestPipeline_Ingest_Scenario(t *testing.T) {
	items := feedItems(3)
	embedder := &mocks.EmbedderMock{EmbedFunc: func(_ context.Context, text string) ([]float64, error) {
		if text == "summary of item 3\n\nfact" {
			return nil, errors.New("embedding provider unavailable")
		}
		return []float64{1, 0}, nil
	}}
	articles := memArticles(items[0].Link)
	tags := okTags()

	p := NewPipeline(PipelineConfig{
		Source: staticSource(items), Summarizer: okSummarizer(), Embedder: embedder, Articles: articles, Tags: tags,
		Ingestion: config.IngestionConfig{BatchSize: 2, MaxRetries: 3, RetryDelay: time.Millisecond},
	})

	res, err := p.Ingest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalFetched)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 1, res.NewArticles)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], `Failed to process "item 3": `)
	assert.Contains(t, res.Errors[0], "embedding provider unavailable")
	assert.Equal(t, res.TotalFetched, res.NewArticles+res.Skipped+res.Failed)

	require.Len(t, articles.ExistingSourceURLsCalls(), 1, "one batched existence check")
	assert.Len(t, articles.ExistingSourceURLsCalls()[0].Urls, 3)

	require.Len(t, articles.CreateArticleCalls(), 1)
	stored := articles.CreateArticleCalls()[0].Article
	assert.Equal(t, "item 2", stored.Title)
	assert.Equal(t, "summary of item 2", stored.Summary)
	assert.Equal(t, []string{"fact"}, stored.KeyFacts)
	assert.Equal(t, "description 2", stored.Content)
	assert.Equal(t, []float64{1, 0}, stored.Embedding)
	assert.Equal(t, "https://example.com/2", stored.SourceURL)

	require.Len(t, tags.ResolveAndLinkCalls(), 1)
	assert.Equal(t, stored.ID, tags.ResolveAndLinkCalls()[0].ArticleID)
	assert.Equal(t, []string{"Go", "news"}, tags.ResolveAndLinkCalls()[0].Names)
}

func TestPipeline_Ingest_RetryBound(t *testing.T) {
	var calls atomic.Int32
	summarizer := &mocks.SummarizerMock{SummarizeFunc: func(context.Context, string, string) (*domain.Summary, error) {
		calls.Add(1)
		return nil, errors.New("provider timeout")
	}}
	p := NewPipeline(PipelineConfig{
		Source: staticSource(feedItems(1)), Summarizer: summarizer, Embedder: okEmbedder(), Articles: memArticles(), Tags: okTags(),
		Ingestion: config.IngestionConfig{MaxRetries: 3, RetryDelay: time.Millisecond},
	})

	res, err := p.Ingest(context.Background())
	require.NoError(t, err, "item failures never abort the run")
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 1, res.Failed)
	assert.Zero(t, res.NewArticles)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "provider timeout")
}

func TestPipeline_Ingest_RecoversAfterRetry(t *testing.T) {
	var calls atomic.Int32
	summarizer := &mocks.SummarizerMock{SummarizeFunc: func(_ context.Context, title, _ string) (*domain.Summary, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("rate limited")
		}
		return &domain.Summary{Summary: "s", KeyFacts: []string{"f"}, Tags: []string{}}, nil
	}}
	p := NewPipeline(PipelineConfig{
		Source: staticSource(feedItems(1)), Summarizer: summarizer, Embedder: okEmbedder(), Articles: memArticles(), Tags: okTags(),
		Ingestion: config.IngestionConfig{MaxRetries: 3, RetryDelay: time.Millisecond},
	})

	res, err := p.Ingest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.NewArticles)
	assert.Empty(t, res.Errors)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPipeline_Ingest_StorageErrorNotRetried(t *testing.T) {
	articles := memArticles()
	articles.CreateArticleFunc = func(context.Context, *domain.Article) error {
		return fmt.Errorf("insert article: %w", repository.ErrDuplicate)
	}
	var retries atomic.Int32
	p := NewPipeline(PipelineConfig{
		Source: staticSource(feedItems(2)), Summarizer: okSummarizer(), Embedder: okEmbedder(), Articles: articles, Tags: okTags(),
		RetryFunc: func(_ context.Context, op func() error) error {
			retries.Add(1)
			return op()
		},
	})

	res, err := p.Ingest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Failed)
	assert.Len(t, articles.CreateArticleCalls(), 2, "storage called once per item")
	assert.Equal(t, int32(4), retries.Load(), "only summarize and embed go through retry")
	for _, e := range res.Errors {
		assert.Contains(t, e, "duplicate record")
	}
}

func TestPipeline_Ingest_TagFailureFailsItem(t *testing.T) {
	tags := &mocks.TagResolverMock{ResolveAndLinkFunc: func(context.Context, string, []string) ([]domain.Tag, error) {
		return nil, errors.New("link article tags: disk I/O error")
	}}
	articles := memArticles()
	p := NewPipeline(PipelineConfig{
		Source: staticSource(feedItems(1)), Summarizer: okSummarizer(), Embedder: okEmbedder(), Articles: articles, Tags: tags,
		RetryFunc: noRetry,
	})
	res, err := p.Ingest(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.NewArticles)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], `Failed to process "item 1": `)
	assert.Contains(t, res.Errors[0], "disk I/O error")
	assert.Len(t, articles.CreateArticleCalls(), 1, "article row is written before tags")
}

func TestPipeline_Ingest_SummarizesDescription(t *testing.T) {
	items := []domain.FeedItem{
		{Title: "with both", Description: "the description", Content: "the full body", Link: "https://example.com/both"},
		{Title: "content only", Content: "only body", Link: "https://example.com/body"},
	}
	summarizer := okSummarizer()
	articles := memArticles()
	p := NewPipeline(PipelineConfig{
		Source: staticSource(items), Summarizer: summarizer, Embedder: okEmbedder(), Articles: articles, Tags: okTags(),
		Ingestion: config.IngestionConfig{BatchSize: 1}, RetryFunc: noRetry,
	})
	res, err := p.Ingest(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, res.NewArticles)

	inputs := map[string]string{}
	for _, c := range summarizer.SummarizeCalls() {
		inputs[c.Title] = c.Content
	}
	assert.Equal(t, "the description", inputs["with both"])
	assert.Equal(t, "only body", inputs["content only"])

	stored := map[string]string{}
	for _, c := range articles.CreateArticleCalls() {
		stored[c.Article.Title] = c.Article.Content
	}
	assert.Equal(t, "the full body", stored["with both"])
	assert.Equal(t, "only body", stored["content only"])
}

func TestPipeline_Ingest_FetchFailed(t *testing.T) {
	source := &mocks.FeedSourceMock{FetchItemsFunc: func(context.Context) ([]domain.FeedItem, error) {
		return nil, errors.New("all 2 feeds failed")
	}}
	articles := memArticles()
	p := NewPipeline(PipelineConfig{Source: source, Articles: articles, RetryFunc: noRetry})

	_, err := p.Ingest(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch feed items")
	assert.Empty(t, articles.ExistingSourceURLsCalls())
}

func TestPipeline_Ingest_ExistenceCheckFailed(t *testing.T) {
	articles := memArticles()
	articles.ExistingSourceURLsFunc = func(context.Context, []string) (map[string]bool, error) {
		return nil, errors.New("database is closed")
	}
	p := NewPipeline(PipelineConfig{Source: staticSource(feedItems(2)), Articles: articles, RetryFunc: noRetry})
	res, err := p.Ingest(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, res.TotalFetched)
}

func TestPipeline_Ingest_Empty(t *testing.T) {
	articles := memArticles()
	p := NewPipeline(PipelineConfig{Source: staticSource(nil), Articles: articles, RetryFunc: noRetry})
	res, err := p.Ingest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.IngestResult{Errors: []string{}}, res)
	assert.Empty(t, articles.ExistingSourceURLsCalls())
}

func TestPipeline_Ingest_BoundedConcurrency(t *testing.T) {
	var active, peak atomic.Int32
	summarizer := &mocks.SummarizerMock{SummarizeFunc: func(context.Context, string, string) (*domain.Summary, error) {
		n := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return &domain.Summary{Summary: "s", KeyFacts: []string{"f"}, Tags: []string{"t"}}, nil
	}}
	p := NewPipeline(PipelineConfig{
		Source: staticSource(feedItems(12)), Summarizer: summarizer, Embedder: okEmbedder(), Articles: memArticles(), Tags: okTags(),
		Ingestion: config.IngestionConfig{BatchSize: 3}, RetryFunc: noRetry,
	})
	res, err := p.Ingest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, res.NewArticles)
	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.Len(t, summarizer.SummarizeCalls(), 12)
}

func TestPipeline_Ingest_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var processed atomic.Int32
	summarizer := &mocks.SummarizerMock{SummarizeFunc: func(ctx context.Context, _, _ string) (*domain.Summary, error) {
		if processed.Add(1) == 2 {
			cancel()
			return nil, ctx.Err()
		}
		return &domain.Summary{Summary: "s", KeyFacts: []string{"f"}, Tags: []string{}}, nil
	}}
	p := NewPipeline(PipelineConfig{
		Source: staticSource(feedItems(5)), Summarizer: summarizer, Embedder: okEmbedder(), Articles: memArticles(), Tags: okTags(),
		Ingestion: config.IngestionConfig{BatchSize: 1}, RetryFunc: noRetry,
	})

	res, err := p.Ingest(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 5, res.TotalFetched)
	assert.Equal(t, 1, res.NewArticles)
	assert.Zero(t, res.Failed, "interrupted item is not counted as failed")
	assert.LessOrEqual(t, res.NewArticles+res.Skipped+res.Failed, res.TotalFetched)
}

func TestPipeline_Ingest_Idempotent(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: filepath.Join(t.TempDir(), "ingest.db")})
	require.NoError(t, err)
	defer repos.Close()

	p := NewPipeline(PipelineConfig{
		Source: staticSource(feedItems(4)), Summarizer: okSummarizer(), Embedder: okEmbedder(),
		Articles: repos.Article, Tags: tag.NewResolver(repos.Tag),
		Ingestion: config.IngestionConfig{BatchSize: 4}, RetryFunc: noRetry,
	})

	first, err := p.Ingest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, first.NewArticles)
	assert.Empty(t, first.Errors)

	second, err := p.Ingest(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.NewArticles)
	assert.Equal(t, second.TotalFetched, second.Skipped)

	count, err := repos.Article.CountArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	tags, err := repos.Tag.GetAllTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2, "shared tags created once")
	for _, tc := range tags {
		assert.Equal(t, 4, tc.ArticleCount)
	}
}
