package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/feedrank/pkg/content"
	"github.com/umputun/feedrank/pkg/domain"
)

// Parser fetches and parses RSS/Atom feeds into feed items
type Parser struct {
	client    *http.Client
	userAgent string
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Parse fetches a feed and converts its entries to plain-text feed items.
// Entries without a link are dropped, they can't be deduplicated.
func (p *Parser) Parse(ctx context.Context, url string) ([]domain.FeedItem, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]domain.FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		link := strings.TrimSpace(item.Link)
		if link == "" && item.GUID != "" && strings.HasPrefix(item.GUID, "http") {
			link = strings.TrimSpace(item.GUID)
		}
		if link == "" {
			continue
		}

		fi := domain.FeedItem{
			Title:       strings.TrimSpace(content.PlainText(item.Title)),
			Description: content.PlainText(item.Description),
			Link:        link,
			Content:     content.PlainText(item.Content),
		}
		switch {
		case item.PublishedParsed != nil:
			ts := item.PublishedParsed.UTC()
			fi.PublishedAt = &ts
		case item.UpdatedParsed != nil:
			ts := item.UpdatedParsed.UTC()
			fi.PublishedAt = &ts
		}
		items = append(items, fi)
	}
	return items, nil
}

func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	content.SetFeedHeaders(req, p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}
