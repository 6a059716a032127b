package feed

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedrank/pkg/config"
	"github.com/umputun/feedrank/pkg/domain"
)

//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . ItemParser

// Extractor retrieves the main text of an article page
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// ItemParser fetches a single feed
type ItemParser interface {
	Parse(ctx context.Context, url string) ([]domain.FeedItem, error)
}

// Source collects items from all configured feeds
type Source struct {
	parser    ItemParser
	extractor Extractor
	cfg       config.FeedsConfig
}

// NewSource makes a feed source. A nil extractor disables full-text extraction.
func NewSource(cfg config.FeedsConfig, parser ItemParser, extractor Extractor) *Source {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 4
	}
	return &Source{parser: parser, extractor: extractor, cfg: cfg}
}

// FetchItems fetches every feed concurrently and returns items deduplicated by link,
// in feed order. Individual feed failures are logged, the call fails only if no feed could be read.
func (s *Source) FetchItems(ctx context.Context) ([]domain.FeedItem, error) {
	if len(s.cfg.URLs) == 0 {
		return []domain.FeedItem{}, nil
	}

	results := make([][]domain.FeedItem, len(s.cfg.URLs))
	errs := make([]error, len(s.cfg.URLs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxConcurrent)
	for i, url := range s.cfg.URLs {
		g.Go(func() error {
			items, err := s.parser.Parse(gctx, url)
			if err != nil {
				lgr.Printf("[WARN] failed to fetch feed %s: %v", url, err)
				errs[i] = fmt.Errorf("feed %s: %w", url, err)
				return nil
			}
			lgr.Printf("[DEBUG] fetched %d items from %s", len(items), url)
			results[i] = items
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed == len(s.cfg.URLs) {
		return nil, fmt.Errorf("all %d feeds failed: %w", failed, errors.Join(errs...))
	}

	seen := make(map[string]struct{})
	var items []domain.FeedItem
	for _, feedItems := range results {
		for _, item := range feedItems {
			if _, ok := seen[item.Link]; ok {
				continue
			}
			seen[item.Link] = struct{}{}
			items = append(items, item)
		}
	}
	if items == nil {
		items = []domain.FeedItem{}
	}

	if s.extractor != nil && s.cfg.ExtractContent {
		s.fillContent(ctx, items)
	}
	return items, nil
}

// fillContent extracts full text for items with a short body, extraction errors keep the original body
func (s *Source) fillContent(ctx context.Context, items []domain.FeedItem) {
	var g errgroup.Group
	g.SetLimit(s.cfg.MaxConcurrent)
	for i := range items {
		if body := bodyOf(items[i]); utf8.RuneCountInString(body) >= s.cfg.MinTextLength {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			text, err := s.extractor.Extract(ctx, items[i].Link)
			if err != nil {
				lgr.Printf("[DEBUG] content extraction for %s failed: %v", items[i].Link, err)
				return nil
			}
			if utf8.RuneCountInString(text) > utf8.RuneCountInString(bodyOf(items[i])) {
				items[i].Content = text
			}
			return nil
		})
	}
	_ = g.Wait()
}

func bodyOf(item domain.FeedItem) string {
	if item.Content != "" {
		return item.Content
	}
	return item.Description
}
