package content

import (
	"math/rand"
	"net/http"
)

var acceptLanguages = []string{
	"en-US,en;q=0.9",
	"en-GB,en;q=0.9",
	"en-US,en;q=0.9,de;q=0.8",
	"en-US,en;q=0.9,fr;q=0.8",
	"de-DE,de;q=0.9,en;q=0.8",
}

// pageAccept is sent for article pages
const pageAccept = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// feedAccept is sent for syndication feeds
const feedAccept = "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,text/html;q=0.7,*/*;q=0.5"

// setPageHeaders makes an article request look like a browser navigation
func setPageHeaders(req *http.Request, userAgent string) {
	setCommonHeaders(req, userAgent, pageAccept)
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
}

// SetFeedHeaders sets headers used when fetching syndication feeds
func SetFeedHeaders(req *http.Request, userAgent string) {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	setCommonHeaders(req, userAgent, feedAccept)
}

// accept-encoding is left to the transport so responses are decompressed transparently
func setCommonHeaders(req *http.Request, userAgent, accept string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // header variation only
	if rand.Float32() < 0.3 { //nolint:gosec // header variation only
		req.Header.Set("DNT", "1")
	}
}
