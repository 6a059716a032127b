package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedrank/pkg/domain"
)

func TestTagRepository_InsertAndGet(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repos.Tag.InsertTags(ctx, []domain.Tag{{Name: "Go", Slug: "go"}, {Name: "AI", Slug: "ai"}}))
	// conflicting slug is ignored, first name stays
	require.NoError(t, repos.Tag.InsertTags(ctx, []domain.Tag{{Name: "GO", Slug: "go"}, {Name: "Rust", Slug: "rust"}}))
	require.NoError(t, repos.Tag.InsertTags(ctx, nil))

	tags, err := repos.Tag.GetTagsBySlugs(ctx, []string{"go", "rust", "missing"})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	bySlug := map[string]domain.Tag{}
	for _, tg := range tags {
		bySlug[tg.Slug] = tg
	}
	assert.Equal(t, "Go", bySlug["go"].Name)
	assert.Equal(t, "Rust", bySlug["rust"].Name)
	assert.NotEmpty(t, bySlug["go"].ID)
}

func TestTagRepository_ConcurrentInsert(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repos.Tag.InsertTags(ctx, []domain.Tag{{Name: "Shared", Slug: "shared"}})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var count int
	require.NoError(t, repos.DB.Get(&count, "SELECT COUNT(*) FROM tags WHERE slug = 'shared'"))
	assert.Equal(t, 1, count)
}

func TestTagRepository_Links(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	a1 := createArticle(t, repos, "https://example.com/1", nil, nil)
	a2 := createArticle(t, repos, "https://example.com/2", nil, nil)
	require.NoError(t, repos.Tag.InsertTags(ctx, []domain.Tag{{Name: "Go", Slug: "go"}, {Name: "AI", Slug: "ai"}, {Name: "Unused", Slug: "unused"}}))
	tags, err := repos.Tag.GetTagsBySlugs(ctx, []string{"go", "ai"})
	require.NoError(t, err)
	ids := map[string]string{}
	for _, tg := range tags {
		ids[tg.Slug] = tg.ID
	}

	require.NoError(t, repos.Tag.LinkArticleTags(ctx, a1.ID, []string{ids["go"], ids["ai"]}))
	require.NoError(t, repos.Tag.LinkArticleTags(ctx, a1.ID, []string{ids["go"]})) // duplicate link is a no-op
	require.NoError(t, repos.Tag.LinkArticleTags(ctx, a2.ID, []string{ids["go"]}))
	require.NoError(t, repos.Tag.LinkArticleTags(ctx, a2.ID, nil))

	t.Run("article tags", func(t *testing.T) {
		got, err := repos.Tag.GetArticleTags(ctx, a1.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "AI", got[0].Name)
		assert.Equal(t, "Go", got[1].Name)
	})

	t.Run("article tag ids", func(t *testing.T) {
		got, err := repos.Tag.GetArticleTagIDs(ctx, []string{a1.ID, a2.ID, "missing"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{ids["go"], ids["ai"]}, got[a1.ID])
		assert.Equal(t, []string{ids["go"]}, got[a2.ID])
		assert.NotContains(t, got, "missing")
	})

	t.Run("seen tags", func(t *testing.T) {
		require.NoError(t, repos.Engagement.RecordEvent(ctx, &domain.EngagementEvent{UserID: "u1", ArticleID: a2.ID, EventType: domain.EventOpen}))
		seen, err := repos.Tag.GetSeenTagIDs(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{ids["go"]: true}, seen)

		seen, err = repos.Tag.GetSeenTagIDs(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, seen)
	})

	t.Run("all tags with counts", func(t *testing.T) {
		all, err := repos.Tag.GetAllTags(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "go", all[0].Slug)
		assert.Equal(t, 2, all[0].ArticleCount)
		assert.Equal(t, "ai", all[1].Slug)
		assert.Equal(t, 1, all[1].ArticleCount)
		assert.Equal(t, 0, all[2].ArticleCount)
	})

	t.Run("articles by tags", func(t *testing.T) {
		got, err := repos.Tag.GetArticlesByTagSlugs(ctx, []string{"ai"}, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, a1.ID, got[0].ID)

		got, err = repos.Tag.GetArticlesByTagSlugs(ctx, []string{"go", "ai"}, 10)
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = repos.Tag.GetArticlesByTagSlugs(ctx, nil, 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
