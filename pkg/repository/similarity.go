package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/vector"
)

// SimilarityRepository finds stored entities nearest to a query embedding by cosine similarity
type SimilarityRepository struct {
	db *sqlx.DB
}

// NewSimilarityRepository creates a new similarity repository
func NewSimilarityRepository(db *sqlx.DB) *SimilarityRepository {
	return &SimilarityRepository{db: db}
}

const defaultTopK = 10

// FindSimilarArticles returns up to TopK articles with similarity >= MinSimilarity, most similar first
func (r *SimilarityRepository) FindSimilarArticles(ctx context.Context, embedding []float64, opts domain.SimilarityOptions) ([]domain.ArticleMatch, error) {
	if len(embedding) == 0 {
		return nil, fmt.Errorf("find similar articles: empty query embedding")
	}
	query := `SELECT ` + articleColumns + `, cosine_similarity(embedding, ?) AS similarity
		FROM articles
		WHERE cosine_similarity(embedding, ?) >= ?
		ORDER BY similarity DESC, created_at DESC
		LIMIT ?`
	blob := vector.Encode(embedding)
	var rows []struct {
		articleSQL
		Similarity float64 `db:"similarity"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, blob, blob, opts.MinSimilarity, topK(opts)); err != nil {
		return nil, fmt.Errorf("find similar articles: %w", err)
	}
	res := make([]domain.ArticleMatch, 0, len(rows))
	for i := range rows {
		res = append(res, domain.ArticleMatch{Article: *rows[i].toDomain(), Similarity: rows[i].Similarity})
	}
	return res, nil
}

// FindSimilarInterests returns the user's interests closest to the embedding
func (r *SimilarityRepository) FindSimilarInterests(ctx context.Context, embedding []float64, userID string, opts domain.SimilarityOptions) ([]domain.InterestMatch, error) {
	if len(embedding) == 0 {
		return nil, fmt.Errorf("find similar interests: empty query embedding")
	}
	query := `SELECT id, user_id, text, embedding, created_at, cosine_similarity(embedding, ?) AS similarity
		FROM user_interests
		WHERE user_id = ? AND cosine_similarity(embedding, ?) >= ?
		ORDER BY similarity DESC
		LIMIT ?`
	blob := vector.Encode(embedding)
	var rows []struct {
		interestSQL
		Similarity float64 `db:"similarity"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, blob, userID, blob, opts.MinSimilarity, topK(opts)); err != nil {
		return nil, fmt.Errorf("find similar interests: %w", err)
	}
	res := make([]domain.InterestMatch, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.InterestMatch{Interest: row.toDomain(), Similarity: row.Similarity})
	}
	return res, nil
}

// FindSimilarProfiles returns user profiles closest to the embedding
func (r *SimilarityRepository) FindSimilarProfiles(ctx context.Context, embedding []float64, opts domain.SimilarityOptions) ([]domain.ProfileMatch, error) {
	if len(embedding) == 0 {
		return nil, fmt.Errorf("find similar profiles: empty query embedding")
	}
	query := `SELECT user_id, embedding, engagement_count, last_updated_at, cosine_similarity(embedding, ?) AS similarity
		FROM user_profiles
		WHERE cosine_similarity(embedding, ?) >= ?
		ORDER BY similarity DESC
		LIMIT ?`
	blob := vector.Encode(embedding)
	var rows []struct {
		profileSQL
		Similarity float64 `db:"similarity"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, blob, blob, opts.MinSimilarity, topK(opts)); err != nil {
		return nil, fmt.Errorf("find similar profiles: %w", err)
	}
	res := make([]domain.ProfileMatch, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.ProfileMatch{Profile: *row.toDomain(), Similarity: row.Similarity})
	}
	return res, nil
}

func topK(opts domain.SimilarityOptions) int {
	if opts.TopK <= 0 {
		return defaultTopK
	}
	return opts.TopK
}
