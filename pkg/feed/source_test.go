package feed

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedrank/pkg/config"
	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/feed/mocks"
)

func TestSource_FetchItems(t *testing.T) {
	feeds := map[string][]domain.FeedItem{
		"http://a.example.com/rss": {
			{Title: "A1", Link: "http://example.com/1", Description: "short"},
			{Title: "A2", Link: "http://example.com/2", Content: strings.Repeat("long body ", 30)},
		},
		"http://b.example.com/rss": {
			{Title: "B1 duplicate", Link: "http://example.com/1", Description: "dup"},
			{Title: "B2", Link: "http://example.com/3", Description: "another short one"},
		},
	}

	parser := &mocks.ItemParserMock{
		ParseFunc: func(_ context.Context, url string) ([]domain.FeedItem, error) {
			if url == "http://broken.example.com/rss" {
				return nil, errors.New("connection refused")
			}
			return feeds[url], nil
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, url string) (string, error) {
			if url == "http://example.com/3" {
				return "", errors.New("no content")
			}
			return "extracted full text for " + url, nil
		},
	}

	cfg := config.FeedsConfig{
		URLs:           []string{"http://a.example.com/rss", "http://broken.example.com/rss", "http://b.example.com/rss"},
		MaxConcurrent:  2,
		ExtractContent: true,
		MinTextLength:  100,
	}
	items, err := NewSource(cfg, parser, extractor).FetchItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "A1", items[0].Title, "first occurrence of a link wins")
	assert.Equal(t, "extracted full text for http://example.com/1", items[0].Content)
	assert.Equal(t, strings.Repeat("long body ", 30), items[1].Content, "long body not extracted")
	assert.Equal(t, "B2", items[2].Title)
	assert.Empty(t, items[2].Content, "failed extraction keeps original")

	assert.Len(t, parser.ParseCalls(), 3)
	assert.Len(t, extractor.ExtractCalls(), 2)
}

func TestSource_FetchItems_ExtractionDisabled(t *testing.T) {
	parser := &mocks.ItemParserMock{
		ParseFunc: func(context.Context, string) ([]domain.FeedItem, error) {
			return []domain.FeedItem{{Title: "t", Link: "http://example.com/1"}}, nil
		},
	}
	extractor := &mocks.ExtractorMock{}

	cfg := config.FeedsConfig{URLs: []string{"http://a.example.com/rss"}, MinTextLength: 100}
	items, err := NewSource(cfg, parser, extractor).FetchItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Empty(t, extractor.ExtractCalls())

	items, err = NewSource(config.FeedsConfig{URLs: cfg.URLs, ExtractContent: true}, parser, nil).FetchItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestSource_FetchItems_AllFailed(t *testing.T) {
	var calls atomic.Int32
	parser := &mocks.ItemParserMock{
		ParseFunc: func(context.Context, string) ([]domain.FeedItem, error) {
			calls.Add(1)
			return nil, errors.New("timeout")
		},
	}
	cfg := config.FeedsConfig{URLs: []string{"http://a.example.com/rss", "http://b.example.com/rss"}}
	_, err := NewSource(cfg, parser, nil).FetchItems(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 feeds failed")
	assert.Contains(t, err.Error(), "http://b.example.com/rss: timeout")
	assert.Equal(t, int32(2), calls.Load())
}

func TestSource_FetchItems_NoFeeds(t *testing.T) {
	items, err := NewSource(config.FeedsConfig{}, &mocks.ItemParserMock{}, nil).FetchItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSource_FetchItems_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	parser := &mocks.ItemParserMock{
		ParseFunc: func(ctx context.Context, _ string) ([]domain.FeedItem, error) {
			return nil, ctx.Err()
		},
	}
	_, err := NewSource(config.FeedsConfig{URLs: []string{"http://a.example.com/rss"}}, parser, nil).FetchItems(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
