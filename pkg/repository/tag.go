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

// TagRepository handles tags and article-tag links
type TagRepository struct {
	db *sqlx.DB
}

// tagSQL represents a tag for SQL operations
type tagSQL struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Slug         string    `db:"slug"`
	CreatedAt    time.Time `db:"created_at"`
	ArticleCount int       `db:"article_count"`
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

// GetTagsBySlugs returns stored tags matching any of the slugs
func (r *TagRepository) GetTagsBySlugs(ctx context.Context, slugs []string) ([]domain.Tag, error) {
	res := make([]domain.Tag, 0, len(slugs))
	for _, chunk := range chunks(slugs, maxInParams) {
		query, args, err := sq.Select("id", "name", "slug", "created_at").From("tags").Where(sq.Eq{"slug": chunk}).ToSql()
		if err != nil {
			return nil, fmt.Errorf("build tags query: %w", err)
		}
		var rows []tagSQL
		if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
			return nil, fmt.Errorf("get tags by slugs: %w", err)
		}
		for _, row := range rows {
			res = append(res, row.toDomain())
		}
	}
	return res, nil
}

// InsertTags creates tags, a tag whose slug already exists is skipped
func (r *TagRepository) InsertTags(ctx context.Context, tags []domain.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	now := utc(time.Now())
	builder := sq.Insert("tags").Columns("id", "name", "slug", "created_at").Suffix("ON CONFLICT(slug) DO NOTHING")
	for _, t := range tags {
		id := t.ID
		if id == "" {
			id = uuid.NewString()
		}
		builder = builder.Values(id, t.Name, t.Slug, now)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build insert tags: %w", err)
	}

	err = withLockRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("insert tags: %w", err)
	}
	return nil
}

// LinkArticleTags links tags to an article, existing links are kept as is
func (r *TagRepository) LinkArticleTags(ctx context.Context, articleID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	builder := sq.Insert("article_tags").Columns("article_id", "tag_id").Suffix("ON CONFLICT DO NOTHING")
	for _, id := range tagIDs {
		builder = builder.Values(articleID, id)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build link tags: %w", err)
	}

	err = withLockRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("link article tags: %w", err)
	}
	return nil
}

// GetArticleTags returns tags of an article ordered by name
func (r *TagRepository) GetArticleTags(ctx context.Context, articleID string) ([]domain.Tag, error) {
	query := `SELECT t.id, t.name, t.slug, t.created_at FROM tags t
		JOIN article_tags at ON at.tag_id = t.id
		WHERE at.article_id = ?
		ORDER BY t.name`
	var rows []tagSQL
	if err := r.db.SelectContext(ctx, &rows, query, articleID); err != nil {
		return nil, fmt.Errorf("get article tags: %w", err)
	}
	res := make([]domain.Tag, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

// GetArticleTagIDs returns tag ids for each of the articles, keyed by article id
func (r *TagRepository) GetArticleTagIDs(ctx context.Context, articleIDs []string) (map[string][]string, error) {
	res := make(map[string][]string, len(articleIDs))
	for _, chunk := range chunks(articleIDs, maxInParams) {
		query, args, err := sq.Select("article_id", "tag_id").From("article_tags").Where(sq.Eq{"article_id": chunk}).ToSql()
		if err != nil {
			return nil, fmt.Errorf("build article tags query: %w", err)
		}
		var rows []struct {
			ArticleID string `db:"article_id"`
			TagID     string `db:"tag_id"`
		}
		if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
			return nil, fmt.Errorf("get article tag ids: %w", err)
		}
		for _, row := range rows {
			res[row.ArticleID] = append(res[row.ArticleID], row.TagID)
		}
	}
	return res, nil
}

// GetSeenTagIDs returns ids of tags on articles the user has engaged with
func (r *TagRepository) GetSeenTagIDs(ctx context.Context, userID string) (map[string]bool, error) {
	query := `SELECT DISTINCT at.tag_id FROM article_tags at
		JOIN engagement_events e ON e.article_id = at.article_id
		WHERE e.user_id = ?`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, fmt.Errorf("get seen tag ids: %w", err)
	}
	res := make(map[string]bool, len(ids))
	for _, id := range ids {
		res[id] = true
	}
	return res, nil
}

// GetAllTags returns all tags with their article counts, most used first
func (r *TagRepository) GetAllTags(ctx context.Context) ([]domain.TagWithCount, error) {
	query := `SELECT t.id, t.name, t.slug, t.created_at, COUNT(at.article_id) AS article_count
		FROM tags t LEFT JOIN article_tags at ON at.tag_id = t.id
		GROUP BY t.id
		ORDER BY article_count DESC, t.name`
	var rows []tagSQL
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get all tags: %w", err)
	}
	res := make([]domain.TagWithCount, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.TagWithCount{Tag: row.toDomain(), ArticleCount: row.ArticleCount})
	}
	return res, nil
}

// GetArticlesByTagSlugs returns newest articles carrying any of the tags
func (r *TagRepository) GetArticlesByTagSlugs(ctx context.Context, slugs []string, limit int) ([]domain.Article, error) {
	if len(slugs) == 0 {
		return []domain.Article{}, nil
	}
	sub := sq.Select("at.article_id").From("article_tags at").Join("tags t ON t.id = at.tag_id").Where(sq.Eq{"t.slug": slugs})
	subQuery, args, err := sub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tag filter: %w", err)
	}
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id IN (` + subQuery + `)
		ORDER BY COALESCE(published_at, created_at) DESC LIMIT ?`
	args = append(args, limit)

	var rows []articleSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get articles by tags: %w", err)
	}
	return toDomainArticles(rows), nil
}

func (t tagSQL) toDomain() domain.Tag {
	return domain.Tag{ID: t.ID, Name: t.Name, Slug: t.Slug}
}
