package domain

import "time"

// EventType is the kind of user engagement with an article
type EventType string

// engagement event types
const (
	EventOpen          EventType = "open"
	EventExpandSummary EventType = "expand_summary"
	EventLike          EventType = "like"
	EventDislike       EventType = "dislike"
	EventScroll        EventType = "scroll"
)

// EventTypes lists all supported engagement event types
var EventTypes = []EventType{EventOpen, EventExpandSummary, EventLike, EventDislike, EventScroll}

// Valid reports whether the event type is supported
func (e EventType) Valid() bool {
	for _, t := range EventTypes {
		if e == t {
			return true
		}
	}
	return false
}

// HighSignal reports whether the event forces profile recomputation
func (e EventType) HighSignal() bool {
	return e == EventLike || e == EventDislike
}

// EngagementEvent is a single user interaction with an article
type EngagementEvent struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	ArticleID string         `json:"article_id"`
	EventType EventType      `json:"event_type"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// EngagementSignal is an engagement event joined with its article embedding
type EngagementSignal struct {
	EventType EventType
	Embedding []float64
	CreatedAt time.Time
}

// EngagementStatus reports user votes on an article
type EngagementStatus struct {
	HasLiked    bool `json:"has_liked"`
	HasDisliked bool `json:"has_disliked"`
}

// EventCounts holds per event type counts for an article
type EventCounts map[EventType]int64

// Total returns the sum of all counts
func (c EventCounts) Total() int64 {
	var total int64
	for _, v := range c {
		total += v
	}
	return total
}

// PopularityStats is the engagement aggregate of an article
type PopularityStats struct {
	ArticleID        string  `json:"article_id"`
	TotalEngagements int64   `json:"total_engagements"`
	Opens            int64   `json:"opens"`
	Likes            int64   `json:"likes"`
	Dislikes         int64   `json:"dislikes"`
	LikeRatio        float64 `json:"like_ratio"`
	TrendingScore    float64 `json:"trending_score"`
}

// UserInterest is an explicit free-text interest of a user
type UserInterest struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Embedding []float64 `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProfile is the blended taste embedding of a user
type UserProfile struct {
	UserID          string    `json:"user_id"`
	Embedding       []float64 `json:"-"`
	EngagementCount int       `json:"engagement_count"`
	LastUpdatedAt   time.Time `json:"last_updated_at"`
}
