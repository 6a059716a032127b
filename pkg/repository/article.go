package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedrank/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID          string       `db:"id"`
	Title       string       `db:"title"`
	Summary     string       `db:"summary"`
	KeyFacts    stringsSQL   `db:"key_facts"`
	Content     string       `db:"content"`
	Embedding   embeddingSQL `db:"embedding"`
	SourceURL   string       `db:"source_url"`
	PublishedAt *time.Time   `db:"published_at"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

const articleColumns = "id, title, summary, key_facts, content, embedding, source_url, published_at, created_at, updated_at"

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// CreateArticle inserts a new article, assigning id and timestamps when missing.
// Returns ErrDuplicate if an article with the same source url exists.
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	now := time.Now()
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	article.UpdatedAt = article.CreatedAt

	row := fromDomainArticle(article)
	query := `INSERT INTO articles (` + articleColumns + `)
		VALUES (:id, :title, :summary, :key_facts, :content, :embedding, :source_url, :published_at, :created_at, :updated_at)`

	err := withLockRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
	if err != nil {
		if isUniqueError(err) {
			return fmt.Errorf("insert article %s: %w", article.SourceURL, ErrDuplicate)
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetArticle returns article by id
func (r *ArticleRepository) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	var row articleSQL
	err := r.db.GetContext(ctx, &row, `SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return row.toDomain(), nil
}

// GetArticlesByIDs returns articles for the given ids, missing ids are ignored
func (r *ArticleRepository) GetArticlesByIDs(ctx context.Context, ids []string) ([]domain.Article, error) {
	res := make([]domain.Article, 0, len(ids))
	for _, chunk := range chunks(ids, maxInParams) {
		query, args, err := sq.Select(articleColumns).From("articles").Where(sq.Eq{"id": chunk}).ToSql()
		if err != nil {
			return nil, fmt.Errorf("build articles query: %w", err)
		}
		var rows []articleSQL
		if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
			return nil, fmt.Errorf("get articles by ids: %w", err)
		}
		for _, row := range rows {
			res = append(res, *row.toDomain())
		}
	}
	return res, nil
}

// ExistingSourceURLs returns the subset of urls already stored, checked in batched queries
func (r *ArticleRepository) ExistingSourceURLs(ctx context.Context, urls []string) (map[string]bool, error) {
	res := make(map[string]bool, len(urls))
	for _, chunk := range chunks(urls, maxInParams) {
		query, args, err := sq.Select("source_url").From("articles").Where(sq.Eq{"source_url": chunk}).ToSql()
		if err != nil {
			return nil, fmt.Errorf("build existence query: %w", err)
		}
		var found []string
		if err := r.db.SelectContext(ctx, &found, query, args...); err != nil {
			return nil, fmt.Errorf("check existing urls: %w", err)
		}
		for _, u := range found {
			res[u] = true
		}
	}
	return res, nil
}

// GetRecentArticles returns articles in reverse chronological order,
// by publication time falling back to creation time
func (r *ArticleRepository) GetRecentArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles
		ORDER BY COALESCE(published_at, created_at) DESC, created_at DESC
		LIMIT ?`
	var rows []articleSQL
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("get recent articles: %w", err)
	}
	return toDomainArticles(rows), nil
}

// CountArticles returns the number of stored articles
func (r *ArticleRepository) CountArticles(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM articles`); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// ClearArticles deletes all articles with their tag links and engagement events
func (r *ArticleRepository) ClearArticles(ctx context.Context) (int64, error) {
	var affected int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `DELETE FROM articles`)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("clear articles: %w", err)
	}
	return affected, nil
}

func fromDomainArticle(a *domain.Article) articleSQL {
	row := articleSQL{
		ID:        a.ID,
		Title:     a.Title,
		Summary:   a.Summary,
		KeyFacts:  stringsSQL(a.KeyFacts),
		Content:   a.Content,
		Embedding: embeddingSQL(a.Embedding),
		SourceURL: a.SourceURL,
		CreatedAt: utc(a.CreatedAt),
		UpdatedAt: utc(a.UpdatedAt),
	}
	if a.PublishedAt != nil && !a.PublishedAt.IsZero() {
		p := utc(*a.PublishedAt)
		row.PublishedAt = &p
	}
	return row
}

func (a *articleSQL) toDomain() *domain.Article {
	return &domain.Article{
		ID:          a.ID,
		Title:       a.Title,
		Summary:     a.Summary,
		KeyFacts:    []string(a.KeyFacts),
		Content:     a.Content,
		Embedding:   []float64(a.Embedding),
		SourceURL:   a.SourceURL,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toDomainArticles(rows []articleSQL) []domain.Article {
	res := make([]domain.Article, 0, len(rows))
	for i := range rows {
		res = append(res, *rows[i].toDomain())
	}
	return res
}
