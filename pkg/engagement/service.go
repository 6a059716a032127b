// Package engagement records user interactions with articles and signals profile updates.
package engagement

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/profile"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// ErrInvalidEvent is returned for an event without a user or with an unknown type
var ErrInvalidEvent = errors.New("invalid engagement event")

// Store persists engagement events
type Store interface {
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	RecordEvent(ctx context.Context, event *domain.EngagementEvent) error
	DeleteEvents(ctx context.Context, userID, articleID string, eventType domain.EventType) (int64, error)
	GetStatus(ctx context.Context, userID, articleID string) (domain.EngagementStatus, error)
	GetEventsForArticle(ctx context.Context, articleID string) ([]domain.EngagementEvent, error)
}

// Notifier receives profile update requests
type Notifier interface {
	Notify(req profile.Request)
}

// Service records engagement events
type Service struct {
	store    Store
	notifier Notifier
}

// NewService makes engagement service, notifier is optional
func NewService(store Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// Record stores an event for an existing article. A like removes the user's dislike
// of the same article and vice versa.
func (s *Service) Record(ctx context.Context, userID, articleID string, eventType domain.EventType, metadata map[string]any) (*domain.EngagementEvent, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("empty user id: %w", ErrInvalidEvent)
	}
	if !eventType.Valid() {
		return nil, fmt.Errorf("event type %q: %w", eventType, ErrInvalidEvent)
	}
	if _, err := s.store.GetArticle(ctx, articleID); err != nil {
		return nil, fmt.Errorf("get article %s: %w", articleID, err)
	}

	if opposite, ok := opposites[eventType]; ok {
		removed, err := s.store.DeleteEvents(ctx, userID, articleID, opposite)
		if err != nil {
			return nil, fmt.Errorf("remove %s: %w", opposite, err)
		}
		if removed > 0 {
			lgr.Printf("[DEBUG] %s of %s by %s replaced %d %s events", eventType, articleID, userID, removed, opposite)
		}
	}

	event := &domain.EngagementEvent{UserID: userID, ArticleID: articleID, EventType: eventType, Metadata: metadata}
	if err := s.store.RecordEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("record %s: %w", eventType, err)
	}
	s.notify(profile.Request{UserID: userID, EventType: eventType})
	return event, nil
}

// Remove deletes the user's events of the given type for an article
func (s *Service) Remove(ctx context.Context, userID, articleID string, eventType domain.EventType) (int64, error) {
	if strings.TrimSpace(userID) == "" || !eventType.Valid() {
		return 0, ErrInvalidEvent
	}
	removed, err := s.store.DeleteEvents(ctx, userID, articleID, eventType)
	if err != nil {
		return 0, fmt.Errorf("remove %s: %w", eventType, err)
	}
	if removed > 0 {
		s.notify(profile.Request{UserID: userID, EventType: eventType})
	}
	return removed, nil
}

// Status reports whether the user liked or disliked the article
func (s *Service) Status(ctx context.Context, userID, articleID string) (domain.EngagementStatus, error) {
	return s.store.GetStatus(ctx, userID, articleID)
}

// ForArticle lists events of an article, newest first
func (s *Service) ForArticle(ctx context.Context, articleID string) ([]domain.EngagementEvent, error) {
	return s.store.GetEventsForArticle(ctx, articleID)
}

func (s *Service) notify(req profile.Request) {
	if s.notifier != nil {
		s.notifier.Notify(req)
	}
}

var opposites = map[domain.EventType]domain.EventType{
	domain.EventLike:    domain.EventDislike,
	domain.EventDislike: domain.EventLike,
}
