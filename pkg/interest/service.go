// Package interest manages explicit free-text user interests.
package interest

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
//go:generate moq -out mocks/embedder.go -pkg mocks -skip-ensure -fmt goimports . Embedder
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// ErrEmptyText is returned when an interest has no text
var ErrEmptyText = errors.New("empty interest text")

// Store persists user interests
type Store interface {
	AddInterest(ctx context.Context, interest *domain.UserInterest) error
	RemoveInterest(ctx context.Context, userID, interestID string) error
	GetInterests(ctx context.Context, userID string) ([]domain.UserInterest, error)
}

// Embedder embeds interest text
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Notifier receives profile update requests
type Notifier interface {
	Notify(req profile.Request)
}

// Service manages user interests. Every change forces a profile update.
type Service struct {
	store    Store
	embedder Embedder
	notifier Notifier
}

// NewService makes interest service, notifier is optional
func NewService(store Store, embedder Embedder, notifier Notifier) *Service {
	return &Service{store: store, embedder: embedder, notifier: notifier}
}

// Add embeds and stores a new interest
func (s *Service) Add(ctx context.Context, userID, text string) (*domain.UserInterest, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	emb, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed interest: %w", err)
	}
	in := &domain.UserInterest{UserID: userID, Text: text, Embedding: emb}
	if err := s.store.AddInterest(ctx, in); err != nil {
		return nil, fmt.Errorf("store interest: %w", err)
	}
	lgr.Printf("[INFO] added interest %q for %s", text, userID)
	s.notify(userID)
	return in, nil
}

// Remove deletes an interest of the user
func (s *Service) Remove(ctx context.Context, userID, interestID string) error {
	if err := s.store.RemoveInterest(ctx, userID, interestID); err != nil {
		return fmt.Errorf("remove interest: %w", err)
	}
	s.notify(userID)
	return nil
}

// List returns interests of the user, oldest first
func (s *Service) List(ctx context.Context, userID string) ([]domain.UserInterest, error) {
	return s.store.GetInterests(ctx, userID)
}

func (s *Service) notify(userID string) {
	if s.notifier != nil {
		s.notifier.Notify(profile.Request{UserID: userID, Force: true})
	}
}
