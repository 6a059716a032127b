// Package ingest turns feed items into summarized, embedded and tagged articles.
package ingest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedrank/pkg/config"
	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/metrics"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . FeedSource
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/embedder.go -pkg mocks -skip-ensure -fmt goimports . Embedder
//go:generate moq -out mocks/articles.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/tags.go -pkg mocks -skip-ensure -fmt goimports . TagResolver

// FeedSource provides the current items of all feeds
type FeedSource interface {
	FetchItems(ctx context.Context) ([]domain.FeedItem, error)
}

// Summarizer condenses an article into a summary, key facts and tag names
type Summarizer interface {
	Summarize(ctx context.Context, title, content string) (*domain.Summary, error)
}

// Embedder embeds article text
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// ArticleStore persists articles
type ArticleStore interface {
	ExistingSourceURLs(ctx context.Context, urls []string) (map[string]bool, error)
	CreateArticle(ctx context.Context, article *domain.Article) error
}

// TagResolver finds or creates tags and links them to an article
type TagResolver interface {
	ResolveAndLink(ctx context.Context, articleID string, names []string) ([]domain.Tag, error)
}

// Pipeline ingests new feed items. Provider calls are retried, storage errors fail the item.
type Pipeline struct {
	source     FeedSource
	summarizer Summarizer
	embedder   Embedder
	articles   ArticleStore
	tags       TagResolver
	workers    int
	retryFunc  RetryFunc
}

// PipelineConfig holds configuration for Pipeline
type PipelineConfig struct {
	Source     FeedSource
	Summarizer Summarizer
	Embedder   Embedder
	Articles   ArticleStore
	Tags       TagResolver
	Ingestion  config.IngestionConfig
	RetryFunc  RetryFunc // optional, linear backoff from Ingestion settings by default
}

// NewPipeline makes an ingestion pipeline
func NewPipeline(cfg PipelineConfig) *Pipeline {
	ic := cfg.Ingestion
	if ic.BatchSize <= 0 {
		ic.BatchSize = 10
	}
	if ic.MaxRetries <= 0 {
		ic.MaxRetries = 3
	}
	if ic.RetryDelay <= 0 {
		ic.RetryDelay = time.Second
	}
	retryFunc := cfg.RetryFunc
	if retryFunc == nil {
		retryFunc = LinearRetry(ic.MaxRetries, ic.RetryDelay)
	}
	return &Pipeline{
		source:     cfg.Source,
		summarizer: cfg.Summarizer,
		embedder:   cfg.Embedder,
		articles:   cfg.Articles,
		tags:       cfg.Tags,
		workers:    ic.BatchSize,
		retryFunc:  retryFunc,
	}
}

// Ingest fetches all feed items, skips the ones already stored and processes the rest
// with a bounded pool of workers. Per-item failures are reported in the result.
// Only a failed fetch or existence check is returned as an error; on cancellation
// the partial result is returned together with the context error.
func (p *Pipeline) Ingest(ctx context.Context) (res domain.IngestResult, err error) {
	started := time.Now()
	res.Errors = []string{}
	defer func() { metrics.IngestRun(started, err) }()

	items, err := p.source.FetchItems(ctx)
	if err != nil {
		return res, fmt.Errorf("fetch feed items: %w", err)
	}
	res.TotalFetched = len(items)
	if len(items) == 0 {
		lgr.Printf("[INFO] no feed items to ingest")
		return res, nil
	}

	urls := make([]string, 0, len(items))
	for _, item := range items {
		urls = append(urls, item.Link)
	}
	existing, err := p.articles.ExistingSourceURLs(ctx, urls)
	if err != nil {
		return res, fmt.Errorf("check existing articles: %w", err)
	}

	fresh := make([]domain.FeedItem, 0, len(items))
	for _, item := range items {
		if existing[item.Link] {
			res.Skipped++
			continue
		}
		fresh = append(fresh, item)
	}
	metrics.IngestItems(metrics.ItemSkipped, res.Skipped)
	lgr.Printf("[INFO] fetched %d items, %d new, %d already ingested", res.TotalFetched, len(fresh), res.Skipped)

	var mu sync.Mutex
	record := func(item domain.FeedItem, itemErr error) {
		mu.Lock()
		defer mu.Unlock()
		if itemErr == nil {
			res.NewArticles++
			metrics.IngestItems(metrics.ItemNew, 1)
			return
		}
		res.Failed++
		res.Errors = append(res.Errors, fmt.Sprintf("Failed to process %q: %v", item.Title, itemErr))
		metrics.IngestItems(metrics.ItemFailed, 1)
		lgr.Printf("[WARN] failed to process %q (%s): %v", item.Title, item.Link, itemErr)
	}

	queue := make(chan domain.FeedItem, len(fresh))
	for _, item := range fresh {
		queue <- item
	}
	close(queue)

	var g errgroup.Group
	for range min(p.workers, len(fresh)) {
		g.Go(func() error {
			for item := range queue {
				if ctx.Err() != nil {
					return nil
				}
				itemErr := p.processItem(ctx, item)
				if itemErr != nil && ctx.Err() != nil {
					// interrupted items are left for the next run
					return nil
				}
				record(item, itemErr)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		lgr.Printf("[WARN] ingestion interrupted: %d new, %d skipped, %d failed of %d", res.NewArticles, res.Skipped, res.Failed, res.TotalFetched)
		return res, fmt.Errorf("ingestion interrupted: %w", err)
	}
	lgr.Printf("[INFO] ingestion completed: %d new, %d skipped, %d failed of %d", res.NewArticles, res.Skipped, res.Failed, res.TotalFetched)
	return res, nil
}

// processItem summarizes, embeds, stores and tags a single item.
// The summarizer gets the item description, the stored article keeps the full content.
func (p *Pipeline) processItem(ctx context.Context, item domain.FeedItem) error {
	text := item.Description
	if text == "" {
		text = item.Content
	}
	body := item.Content
	if body == "" {
		body = item.Description
	}

	var summary *domain.Summary
	err := p.withRetry(ctx, "summarization", item.Title, func() (err error) {
		summary, err = p.summarizer.Summarize(ctx, item.Title, text)
		return err
	})
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	var embedding []float64
	err = p.withRetry(ctx, "embedding", item.Title, func() (err error) {
		embedding, err = p.embedder.Embed(ctx, summary.EmbeddingInput())
		return err
	})
	if err != nil {
		return fmt.Errorf("embed: %w", err)
	}

	article := &domain.Article{
		Title:       item.Title,
		Summary:     summary.Summary,
		KeyFacts:    summary.KeyFacts,
		Content:     body,
		Embedding:   embedding,
		SourceURL:   item.Link,
		PublishedAt: item.PublishedAt,
	}
	if err := p.articles.CreateArticle(ctx, article); err != nil {
		return fmt.Errorf("store article: %w", err)
	}

	tags, err := p.tags.ResolveAndLink(ctx, article.ID, summary.Tags)
	if err != nil {
		return fmt.Errorf("link tags of article %s: %w", article.ID, err)
	}
	lgr.Printf("[DEBUG] ingested %q as %s with %d tags", item.Title, article.ID, len(tags))
	return nil
}

// withRetry runs a provider call under the retry policy, logging each failed attempt
func (p *Pipeline) withRetry(ctx context.Context, what, title string, fn func() error) error {
	attempt := 0
	return p.retryFunc(ctx, func() error {
		attempt++
		err := fn()
		if err != nil {
			lgr.Printf("[DEBUG] %s of %q failed, attempt %d: %v", what, title, attempt, err)
		}
		return err
	})
}
