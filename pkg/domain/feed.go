package domain

import "time"

// FeedItem is a raw item produced by the feed collaborator
type FeedItem struct {
	Title       string
	Description string
	Link        string
	PublishedAt *time.Time
	Content     string
}

// IngestResult is the outcome of a single ingestion run
type IngestResult struct {
	TotalFetched int      `json:"total_fetched"`
	NewArticles  int      `json:"new_articles"`
	Skipped      int      `json:"skipped"`
	Failed       int      `json:"failed"`
	Errors       []string `json:"errors"`
}
