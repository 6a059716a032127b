package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html/charset"
)

// ErrNoContent is returned when a page has no extractable text
var ErrNoContent = errors.New("no content extracted")

const defaultUserAgent = "Mozilla/5.0 (compatible; Feedrank/1.0)"

// Extractor pulls the main article text from a web page using trafilatura
type Extractor struct {
	client    *http.Client
	userAgent string
}

// NewExtractor creates a new content extractor, an empty user agent uses the default one
func NewExtractor(timeout time.Duration, userAgent string) *Extractor {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Extractor{client: &http.Client{Timeout: timeout}, userAgent: userAgent}
}

// Extract retrieves the page at urlStr and returns its main text content
func (e *Extractor) Extract(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %q", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	setPageHeaders(req, e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	// legacy encodings are converted to utf-8
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("detect charset of %s: %w", urlStr, err)
	}

	result, err := trafilatura.Extract(body, trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	})
	if err != nil {
		return "", fmt.Errorf("extract content from %s: %w", urlStr, err)
	}
	if result == nil {
		return "", fmt.Errorf("%s: %w", urlStr, ErrNoContent)
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return "", fmt.Errorf("%s: %w", urlStr, ErrNoContent)
	}
	return text, nil
}
