// Package service composes repositories into the storage interfaces of the engine components.
package service

import (
	"context"
	"time"

	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/repository"
)

// Store provides unified access to repositories for ingestion, profiles, ranking and engagement
type Store struct {
	articleRepo    *repository.ArticleRepository
	tagRepo        *repository.TagRepository
	engagementRepo *repository.EngagementRepository
	interestRepo   *repository.InterestRepository
	profileRepo    *repository.ProfileRepository
	similarityRepo *repository.SimilarityRepository
}

// NewStore creates a new store over the given repositories
func NewStore(repos *repository.Repositories) *Store {
	return &Store{
		articleRepo:    repos.Article,
		tagRepo:        repos.Tag,
		engagementRepo: repos.Engagement,
		interestRepo:   repos.Interest,
		profileRepo:    repos.Profile,
		similarityRepo: repos.Similarity,
	}
}

// Article methods

func (s *Store) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	return s.articleRepo.GetArticle(ctx, id)
}

func (s *Store) CreateArticle(ctx context.Context, article *domain.Article) error {
	return s.articleRepo.CreateArticle(ctx, article)
}

func (s *Store) ExistingSourceURLs(ctx context.Context, urls []string) (map[string]bool, error) {
	return s.articleRepo.ExistingSourceURLs(ctx, urls)
}

func (s *Store) GetRecentArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	return s.articleRepo.GetRecentArticles(ctx, limit)
}

func (s *Store) GetArticlesByIDs(ctx context.Context, ids []string) ([]domain.Article, error) {
	return s.articleRepo.GetArticlesByIDs(ctx, ids)
}

func (s *Store) CountArticles(ctx context.Context) (int64, error) {
	return s.articleRepo.CountArticles(ctx)
}

func (s *Store) ClearArticles(ctx context.Context) (int64, error) {
	return s.articleRepo.ClearArticles(ctx)
}

// Tag methods

func (s *Store) GetArticleTags(ctx context.Context, articleID string) ([]domain.Tag, error) {
	return s.tagRepo.GetArticleTags(ctx, articleID)
}

func (s *Store) GetArticleTagIDs(ctx context.Context, articleIDs []string) (map[string][]string, error) {
	return s.tagRepo.GetArticleTagIDs(ctx, articleIDs)
}

func (s *Store) GetSeenTagIDs(ctx context.Context, userID string) (map[string]bool, error) {
	return s.tagRepo.GetSeenTagIDs(ctx, userID)
}

// Engagement methods

func (s *Store) RecordEvent(ctx context.Context, event *domain.EngagementEvent) error {
	return s.engagementRepo.RecordEvent(ctx, event)
}

func (s *Store) DeleteEvents(ctx context.Context, userID, articleID string, eventType domain.EventType) (int64, error) {
	return s.engagementRepo.DeleteEvents(ctx, userID, articleID, eventType)
}

func (s *Store) GetStatus(ctx context.Context, userID, articleID string) (domain.EngagementStatus, error) {
	return s.engagementRepo.GetStatus(ctx, userID, articleID)
}

func (s *Store) GetEventsForArticle(ctx context.Context, articleID string) ([]domain.EngagementEvent, error) {
	return s.engagementRepo.GetEventsForArticle(ctx, articleID)
}

func (s *Store) GetEngagedArticleIDs(ctx context.Context, userID string) (map[string]bool, error) {
	return s.engagementRepo.GetEngagedArticleIDs(ctx, userID)
}

func (s *Store) CountUserEvents(ctx context.Context, userID string, since time.Time) (int64, error) {
	return s.engagementRepo.CountUserEvents(ctx, userID, since)
}

func (s *Store) GetRecentSignals(ctx context.Context, userID string, limit int) ([]domain.EngagementSignal, error) {
	return s.engagementRepo.GetRecentSignals(ctx, userID, limit)
}

func (s *Store) CountEventsByArticle(ctx context.Context, articleIDs []string, since time.Time) (map[string]domain.EventCounts, error) {
	return s.engagementRepo.CountEventsByArticle(ctx, articleIDs, since)
}

// Interest methods

func (s *Store) AddInterest(ctx context.Context, interest *domain.UserInterest) error {
	return s.interestRepo.AddInterest(ctx, interest)
}

func (s *Store) RemoveInterest(ctx context.Context, userID, interestID string) error {
	return s.interestRepo.RemoveInterest(ctx, userID, interestID)
}

func (s *Store) GetInterests(ctx context.Context, userID string) ([]domain.UserInterest, error) {
	return s.interestRepo.GetInterests(ctx, userID)
}

// Profile methods

func (s *Store) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return s.profileRepo.GetProfile(ctx, userID)
}

func (s *Store) UpsertProfile(ctx context.Context, profile *domain.UserProfile) error {
	return s.profileRepo.UpsertProfile(ctx, profile)
}

func (s *Store) DeleteProfile(ctx context.Context, userID string) error {
	return s.profileRepo.DeleteProfile(ctx, userID)
}

// Similarity methods

func (s *Store) FindSimilarArticles(ctx context.Context, embedding []float64, opts domain.SimilarityOptions) ([]domain.ArticleMatch, error) {
	return s.similarityRepo.FindSimilarArticles(ctx, embedding, opts)
}

func (s *Store) FindSimilarInterests(ctx context.Context, embedding []float64, userID string, opts domain.SimilarityOptions) ([]domain.InterestMatch, error) {
	return s.similarityRepo.FindSimilarInterests(ctx, embedding, userID, opts)
}

func (s *Store) FindSimilarProfiles(ctx context.Context, embedding []float64, opts domain.SimilarityOptions) ([]domain.ProfileMatch, error) {
	return s.similarityRepo.FindSimilarProfiles(ctx, embedding, opts)
}
