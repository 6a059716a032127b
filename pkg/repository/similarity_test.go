package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedrank/pkg/domain"
)

func TestSimilarityRepository_FindSimilarArticles(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	same := createArticle(t, repos, "https://example.com/same", []float64{1, 0, 0}, nil)
	near := createArticle(t, repos, "https://example.com/close", []float64{1, 1, 0}, nil)
	createArticle(t, repos, "https://example.com/orthogonal", []float64{0, 0, 1}, nil)
	createArticle(t, repos, "https://example.com/opposite", []float64{-1, 0, 0}, nil)
	createArticle(t, repos, "https://example.com/none", nil, nil)
	createArticle(t, repos, "https://example.com/other-dim", []float64{1, 0}, nil)

	t.Run("ordered by similarity above floor", func(t *testing.T) {
		res, err := repos.Similarity.FindSimilarArticles(ctx, []float64{1, 0, 0}, domain.SimilarityOptions{TopK: 10, MinSimilarity: 0.5})
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, same.ID, res[0].Article.ID)
		assert.InDelta(t, 1.0, res[0].Similarity, 1e-9)
		assert.Equal(t, near.ID, res[1].Article.ID)
		assert.InDelta(t, 0.7071, res[1].Similarity, 1e-3)
		assert.Equal(t, []string{"fact 1", "fact 2"}, res[0].Article.KeyFacts)
	})

	t.Run("zero floor excludes negative and incomparable", func(t *testing.T) {
		res, err := repos.Similarity.FindSimilarArticles(ctx, []float64{1, 0, 0}, domain.SimilarityOptions{TopK: 10})
		require.NoError(t, err)
		assert.Len(t, res, 3) // same, close, orthogonal
	})

	t.Run("negative floor includes opposite", func(t *testing.T) {
		res, err := repos.Similarity.FindSimilarArticles(ctx, []float64{1, 0, 0}, domain.SimilarityOptions{TopK: 10, MinSimilarity: -1})
		require.NoError(t, err)
		require.Len(t, res, 4)
		assert.InDelta(t, -1.0, res[3].Similarity, 1e-9)
	})

	t.Run("top k caps results", func(t *testing.T) {
		res, err := repos.Similarity.FindSimilarArticles(ctx, []float64{1, 0, 0}, domain.SimilarityOptions{TopK: 1})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, same.ID, res[0].Article.ID)
	})

	t.Run("empty embedding", func(t *testing.T) {
		_, err := repos.Similarity.FindSimilarArticles(ctx, nil, domain.SimilarityOptions{})
		require.Error(t, err)
	})
}

func TestSimilarityRepository_InterestsAndProfiles(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repos.Interest.AddInterest(ctx, &domain.UserInterest{UserID: "u1", Text: "go", Embedding: []float64{1, 0}}))
	require.NoError(t, repos.Interest.AddInterest(ctx, &domain.UserInterest{UserID: "u1", Text: "rust", Embedding: []float64{0, 1}}))
	require.NoError(t, repos.Interest.AddInterest(ctx, &domain.UserInterest{UserID: "u2", Text: "golang", Embedding: []float64{1, 0}}))

	interests, err := repos.Similarity.FindSimilarInterests(ctx, []float64{1, 0.1}, "u1", domain.SimilarityOptions{TopK: 5})
	require.NoError(t, err)
	require.Len(t, interests, 2)
	assert.Equal(t, "go", interests[0].Interest.Text)
	assert.Equal(t, "u1", interests[1].Interest.UserID)

	now := time.Now()
	require.NoError(t, repos.Profile.UpsertProfile(ctx, &domain.UserProfile{UserID: "u1", Embedding: []float64{1, 0}, LastUpdatedAt: now}))
	require.NoError(t, repos.Profile.UpsertProfile(ctx, &domain.UserProfile{UserID: "u2", Embedding: []float64{0.5, 0.5}, LastUpdatedAt: now}))
	require.NoError(t, repos.Profile.UpsertProfile(ctx, &domain.UserProfile{UserID: "u3", Embedding: []float64{0, 1}, LastUpdatedAt: now}))

	profiles, err := repos.Similarity.FindSimilarProfiles(ctx, []float64{1, 0}, domain.SimilarityOptions{TopK: 2, MinSimilarity: 0.1})
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "u1", profiles[0].Profile.UserID)
	assert.Equal(t, "u2", profiles[1].Profile.UserID)
}
