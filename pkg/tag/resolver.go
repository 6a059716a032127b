package tag

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/umputun/feedrank/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the tag persistence used by the resolver
type Store interface {
	GetTagsBySlugs(ctx context.Context, slugs []string) ([]domain.Tag, error)
	InsertTags(ctx context.Context, tags []domain.Tag) error
	LinkArticleTags(ctx context.Context, articleID string, tagIDs []string) error
	GetAllTags(ctx context.Context) ([]domain.TagWithCount, error)
	GetArticlesByTagSlugs(ctx context.Context, slugs []string, limit int) ([]domain.Article, error)
}

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeSlug lowercases a tag name and collapses every run of non-alphanumeric characters into a hyphen
func NormalizeSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonAlnumRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Resolver maps free-text tag names to stored tags
type Resolver struct {
	store Store
}

// NewResolver makes a tag resolver
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// FindOrCreateTags returns one tag per distinct slug among names, creating missing ones.
// The first name seen for a slug becomes its display name. Names with an empty slug are ignored.
// Result follows the order of first appearance in names.
func (r *Resolver) FindOrCreateTags(ctx context.Context, names []string) ([]domain.Tag, error) {
	slugs := make([]string, 0, len(names))
	displayNames := make(map[string]string, len(names))
	for _, name := range names {
		slug := NormalizeSlug(name)
		if slug == "" {
			continue
		}
		if _, ok := displayNames[slug]; ok {
			continue
		}
		displayNames[slug] = strings.TrimSpace(name)
		slugs = append(slugs, slug)
	}
	if len(slugs) == 0 {
		return []domain.Tag{}, nil
	}

	existing, err := r.store.GetTagsBySlugs(ctx, slugs)
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}
	found := make(map[string]domain.Tag, len(existing))
	for _, t := range existing {
		found[t.Slug] = t
	}

	var missing []domain.Tag
	for _, slug := range slugs {
		if _, ok := found[slug]; !ok {
			missing = append(missing, domain.Tag{Name: displayNames[slug], Slug: slug})
		}
	}
	if len(missing) > 0 {
		// conflicting slugs inserted concurrently by another worker are skipped by the store
		if err := r.store.InsertTags(ctx, missing); err != nil {
			return nil, fmt.Errorf("insert tags: %w", err)
		}
		missingSlugs := make([]string, 0, len(missing))
		for _, t := range missing {
			missingSlugs = append(missingSlugs, t.Slug)
		}
		created, err := r.store.GetTagsBySlugs(ctx, missingSlugs)
		if err != nil {
			return nil, fmt.Errorf("get created tags: %w", err)
		}
		for _, t := range created {
			found[t.Slug] = t
		}
	}

	res := make([]domain.Tag, 0, len(slugs))
	for _, slug := range slugs {
		t, ok := found[slug]
		if !ok {
			return nil, fmt.Errorf("tag %q missing after insert", slug)
		}
		res = append(res, t)
	}
	return res, nil
}

// LinkTagsToArticle links tags to an article, already linked tags are left alone
func (r *Resolver) LinkTagsToArticle(ctx context.Context, articleID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	if err := r.store.LinkArticleTags(ctx, articleID, tagIDs); err != nil {
		return fmt.Errorf("link tags to article %s: %w", articleID, err)
	}
	return nil
}

// ResolveAndLink finds or creates tags by name and links them to the article
func (r *Resolver) ResolveAndLink(ctx context.Context, articleID string, names []string) ([]domain.Tag, error) {
	tags, err := r.FindOrCreateTags(ctx, names)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	if err := r.LinkTagsToArticle(ctx, articleID, ids); err != nil {
		return nil, err
	}
	return tags, nil
}

// AllTags returns every tag with its article count
func (r *Resolver) AllTags(ctx context.Context) ([]domain.TagWithCount, error) {
	tags, err := r.store.GetAllTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all tags: %w", err)
	}
	return tags, nil
}

// ArticlesByTags returns newest articles carrying any of the given tag names or slugs
func (r *Resolver) ArticlesByTags(ctx context.Context, names []string, limit int) ([]domain.Article, error) {
	slugs := make([]string, 0, len(names))
	for _, n := range names {
		if s := NormalizeSlug(n); s != "" {
			slugs = append(slugs, s)
		}
	}
	if len(slugs) == 0 {
		return []domain.Article{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	articles, err := r.store.GetArticlesByTagSlugs(ctx, slugs, limit)
	if err != nil {
		return nil, fmt.Errorf("get articles by tags: %w", err)
	}
	return articles, nil
}
