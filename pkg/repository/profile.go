package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedrank/pkg/domain"
)

// ProfileRepository handles user profile embeddings
type ProfileRepository struct {
	db *sqlx.DB
}

// profileSQL represents a user profile for SQL operations
type profileSQL struct {
	UserID          string       `db:"user_id"`
	Embedding       embeddingSQL `db:"embedding"`
	EngagementCount int          `db:"engagement_count"`
	LastUpdatedAt   time.Time    `db:"last_updated_at"`
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetProfile returns the user's profile, nil without error if the user has none
func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var row profileSQL
	err := r.db.GetContext(ctx, &row, `SELECT user_id, embedding, engagement_count, last_updated_at FROM user_profiles WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return row.toDomain(), nil
}

// UpsertProfile creates or overwrites the user's profile in a single statement
func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile *domain.UserProfile) error {
	row := profileSQL{
		UserID:          profile.UserID,
		Embedding:       embeddingSQL(profile.Embedding),
		EngagementCount: profile.EngagementCount,
		LastUpdatedAt:   utc(profile.LastUpdatedAt),
	}
	query := `INSERT INTO user_profiles (user_id, embedding, engagement_count, last_updated_at)
		VALUES (:user_id, :embedding, :engagement_count, :last_updated_at)
		ON CONFLICT(user_id) DO UPDATE SET
			embedding = excluded.embedding,
			engagement_count = excluded.engagement_count,
			last_updated_at = excluded.last_updated_at`
	err := withLockRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// DeleteProfile removes the user's profile
func (r *ProfileRepository) DeleteProfile(ctx context.Context, userID string) error {
	err := withLockRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `DELETE FROM user_profiles WHERE user_id = ?`, userID)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

func (p profileSQL) toDomain() *domain.UserProfile {
	return &domain.UserProfile{
		UserID:          p.UserID,
		Embedding:       []float64(p.Embedding),
		EngagementCount: p.EngagementCount,
		LastUpdatedAt:   p.LastUpdatedAt,
	}
}
