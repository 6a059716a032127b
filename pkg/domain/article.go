package domain

import (
	"strings"
	"time"
)

// Article represents an ingested, summarized and embedded article
type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	KeyFacts    []string   `json:"key_facts"`
	Content     string     `json:"content,omitempty"`
	Embedding   []float64  `json:"-"`
	SourceURL   string     `json:"source_url"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// EffectiveTime returns publication time, falling back to creation time
func (a Article) EffectiveTime() time.Time {
	if a.PublishedAt != nil && !a.PublishedAt.IsZero() {
		return *a.PublishedAt
	}
	return a.CreatedAt
}

// Tag represents a normalized topic label
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TagWithCount is a tag with the number of articles linked to it
type TagWithCount struct {
	Tag
	ArticleCount int `json:"article_count"`
}

// Summary is the output of the summarization provider
type Summary struct {
	Summary  string   `json:"summary" validate:"required"`
	KeyFacts []string `json:"keyFacts" validate:"required,dive,required"`
	Tags     []string `json:"tags" validate:"required,dive,required"`
}

// EmbeddingInput builds the text embedded for an article from its summary
func (s Summary) EmbeddingInput() string {
	if len(s.KeyFacts) == 0 {
		return s.Summary
	}
	return s.Summary + "\n\n" + strings.Join(s.KeyFacts, " ")
}

// ArticleMatch is an article returned by the similarity index
type ArticleMatch struct {
	Article    Article `json:"article"`
	Similarity float64 `json:"similarity"`
}

// InterestMatch is a user interest returned by the similarity index
type InterestMatch struct {
	Interest   UserInterest `json:"interest"`
	Similarity float64      `json:"similarity"`
}

// ProfileMatch is a user profile returned by the similarity index
type ProfileMatch struct {
	Profile    UserProfile `json:"profile"`
	Similarity float64     `json:"similarity"`
}

// SimilarityOptions limits similarity search results
type SimilarityOptions struct {
	TopK          int
	MinSimilarity float64
}

// Scores holds per-factor ranking scores of an article
type Scores struct {
	Similarity  float64 `json:"similarity"`
	Recency     float64 `json:"recency"`
	Popularity  float64 `json:"popularity"`
	Exploration float64 `json:"exploration"`
	Final       float64 `json:"final"`
}

// ScoredArticle is an article ranked for a user
type ScoredArticle struct {
	Article Article `json:"article"`
	Scores  Scores  `json:"scores"`
}
