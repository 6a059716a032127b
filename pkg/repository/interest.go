package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedrank/pkg/domain"
)

// InterestRepository handles explicit user interests
type InterestRepository struct {
	db *sqlx.DB
}

// interestSQL represents a user interest for SQL operations
type interestSQL struct {
	ID        string       `db:"id"`
	UserID    string       `db:"user_id"`
	Text      string       `db:"text"`
	Embedding embeddingSQL `db:"embedding"`
	CreatedAt time.Time    `db:"created_at"`
}

// NewInterestRepository creates a new interest repository
func NewInterestRepository(db *sqlx.DB) *InterestRepository {
	return &InterestRepository{db: db}
}

// AddInterest stores a user interest with its embedding
func (r *InterestRepository) AddInterest(ctx context.Context, interest *domain.UserInterest) error {
	if interest.ID == "" {
		interest.ID = uuid.NewString()
	}
	if interest.CreatedAt.IsZero() {
		interest.CreatedAt = time.Now()
	}
	row := interestSQL{
		ID:        interest.ID,
		UserID:    interest.UserID,
		Text:      interest.Text,
		Embedding: embeddingSQL(interest.Embedding),
		CreatedAt: utc(interest.CreatedAt),
	}
	query := `INSERT INTO user_interests (id, user_id, text, embedding, created_at)
		VALUES (:id, :user_id, :text, :embedding, :created_at)`
	err := withLockRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
	if err != nil {
		return fmt.Errorf("add interest: %w", err)
	}
	return nil
}

// RemoveInterest deletes a user's interest, ErrNotFound if the user has no such interest
func (r *InterestRepository) RemoveInterest(ctx context.Context, userID, interestID string) error {
	var affected int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `DELETE FROM user_interests WHERE id = ? AND user_id = ?`, interestID, userID)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("remove interest: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("interest %s: %w", interestID, ErrNotFound)
	}
	return nil
}

// GetInterests returns user interests, oldest first
func (r *InterestRepository) GetInterests(ctx context.Context, userID string) ([]domain.UserInterest, error) {
	var rows []interestSQL
	query := `SELECT id, user_id, text, embedding, created_at FROM user_interests WHERE user_id = ? ORDER BY created_at, id`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("get interests: %w", err)
	}
	res := make([]domain.UserInterest, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

func (i interestSQL) toDomain() domain.UserInterest {
	return domain.UserInterest{
		ID:        i.ID,
		UserID:    i.UserID,
		Text:      i.Text,
		Embedding: []float64(i.Embedding),
		CreatedAt: i.CreatedAt,
	}
}
