package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedrank/pkg/domain"
)

// EngagementRepository handles the append-only engagement event log
type EngagementRepository struct {
	db *sqlx.DB
}

// engagementSQL represents an engagement event for SQL operations
type engagementSQL struct {
	ID        string      `db:"id"`
	UserID    string      `db:"user_id"`
	ArticleID string      `db:"article_id"`
	EventType string      `db:"event_type"`
	Metadata  metadataSQL `db:"metadata"`
	CreatedAt time.Time   `db:"created_at"`
}

// NewEngagementRepository creates a new engagement repository
func NewEngagementRepository(db *sqlx.DB) *EngagementRepository {
	return &EngagementRepository{db: db}
}

// RecordEvent appends an engagement event, assigning id and time when missing
func (r *EngagementRepository) RecordEvent(ctx context.Context, event *domain.EngagementEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	row := engagementSQL{
		ID:        event.ID,
		UserID:    event.UserID,
		ArticleID: event.ArticleID,
		EventType: string(event.EventType),
		Metadata:  metadataSQL(event.Metadata),
		CreatedAt: utc(event.CreatedAt),
	}
	query := `INSERT INTO engagement_events (id, user_id, article_id, event_type, metadata, created_at)
		VALUES (:id, :user_id, :article_id, :event_type, :metadata, :created_at)`
	err := withLockRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
	if err != nil {
		return fmt.Errorf("record engagement: %w", err)
	}
	return nil
}

// DeleteEvents removes events of the given type for a user and article, returns deleted count
func (r *EngagementRepository) DeleteEvents(ctx context.Context, userID, articleID string, eventType domain.EventType) (int64, error) {
	var affected int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `DELETE FROM engagement_events WHERE user_id = ? AND article_id = ? AND event_type = ?`,
			userID, articleID, string(eventType))
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("delete engagement: %w", err)
	}
	return affected, nil
}

// GetStatus reports whether the user liked or disliked the article
func (r *EngagementRepository) GetStatus(ctx context.Context, userID, articleID string) (domain.EngagementStatus, error) {
	var types []string
	query := `SELECT DISTINCT event_type FROM engagement_events
		WHERE user_id = ? AND article_id = ? AND event_type IN ('like', 'dislike')`
	if err := r.db.SelectContext(ctx, &types, query, userID, articleID); err != nil {
		return domain.EngagementStatus{}, fmt.Errorf("get engagement status: %w", err)
	}
	var res domain.EngagementStatus
	for _, t := range types {
		switch domain.EventType(t) {
		case domain.EventLike:
			res.HasLiked = true
		case domain.EventDislike:
			res.HasDisliked = true
		}
	}
	return res, nil
}

// GetEventsForArticle returns events of an article, newest first
func (r *EngagementRepository) GetEventsForArticle(ctx context.Context, articleID string) ([]domain.EngagementEvent, error) {
	var rows []engagementSQL
	query := `SELECT id, user_id, article_id, event_type, metadata, created_at FROM engagement_events
		WHERE article_id = ? ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, articleID); err != nil {
		return nil, fmt.Errorf("get article events: %w", err)
	}
	res := make([]domain.EngagementEvent, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.EngagementEvent{
			ID:        row.ID,
			UserID:    row.UserID,
			ArticleID: row.ArticleID,
			EventType: domain.EventType(row.EventType),
			Metadata:  map[string]any(row.Metadata),
			CreatedAt: row.CreatedAt,
		})
	}
	return res, nil
}

// GetEngagedArticleIDs returns ids of all articles the user has any event for
func (r *EngagementRepository) GetEngagedArticleIDs(ctx context.Context, userID string) (map[string]bool, error) {
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, `SELECT DISTINCT article_id FROM engagement_events WHERE user_id = ?`, userID); err != nil {
		return nil, fmt.Errorf("get engaged article ids: %w", err)
	}
	res := make(map[string]bool, len(ids))
	for _, id := range ids {
		res[id] = true
	}
	return res, nil
}

// CountUserEvents returns the number of user events created after since, zero since counts all
func (r *EngagementRepository) CountUserEvents(ctx context.Context, userID string, since time.Time) (int64, error) {
	var count int64
	var err error
	if since.IsZero() {
		err = r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM engagement_events WHERE user_id = ?`, userID)
	} else {
		err = r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM engagement_events WHERE user_id = ? AND created_at > ?`,
			userID, utc(since))
	}
	if err != nil {
		return 0, fmt.Errorf("count user events: %w", err)
	}
	return count, nil
}

// GetRecentSignals returns the latest user events joined with article embeddings, newest first
func (r *EngagementRepository) GetRecentSignals(ctx context.Context, userID string, limit int) ([]domain.EngagementSignal, error) {
	query := `SELECT e.event_type, a.embedding, e.created_at
		FROM engagement_events e JOIN articles a ON a.id = e.article_id
		WHERE e.user_id = ? AND a.embedding IS NOT NULL
		ORDER BY e.created_at DESC
		LIMIT ?`
	var rows []struct {
		EventType string       `db:"event_type"`
		Embedding embeddingSQL `db:"embedding"`
		CreatedAt time.Time    `db:"created_at"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("get recent signals: %w", err)
	}
	res := make([]domain.EngagementSignal, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.EngagementSignal{
			EventType: domain.EventType(row.EventType),
			Embedding: []float64(row.Embedding),
			CreatedAt: row.CreatedAt,
		})
	}
	return res, nil
}

// CountEventsByArticle returns per article event counts. Empty articleIDs
// counts over all articles, zero since counts over all time.
func (r *EngagementRepository) CountEventsByArticle(ctx context.Context, articleIDs []string, since time.Time) (map[string]domain.EventCounts, error) {
	res := make(map[string]domain.EventCounts)
	build := func(ids []string) sq.SelectBuilder {
		b := sq.Select("article_id", "event_type", "COUNT(*) AS cnt").From("engagement_events").GroupBy("article_id", "event_type")
		if len(ids) > 0 {
			b = b.Where(sq.Eq{"article_id": ids})
		}
		if !since.IsZero() {
			b = b.Where(sq.GtOrEq{"created_at": utc(since)})
		}
		return b
	}

	batches := chunks(articleIDs, maxInParams)
	if len(articleIDs) == 0 {
		batches = [][]string{nil}
	}
	for _, ids := range batches {
		query, args, err := build(ids).ToSql()
		if err != nil {
			return nil, fmt.Errorf("build counts query: %w", err)
		}
		var rows []struct {
			ArticleID string `db:"article_id"`
			EventType string `db:"event_type"`
			Count     int64  `db:"cnt"`
		}
		if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
			return nil, fmt.Errorf("count events by article: %w", err)
		}
		for _, row := range rows {
			if res[row.ArticleID] == nil {
				res[row.ArticleID] = domain.EventCounts{}
			}
			res[row.ArticleID][domain.EventType(row.EventType)] = row.Count
		}
	}
	return res, nil
}
