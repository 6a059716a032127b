package interest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/interest/mocks"
	"github.com/umputun/feedrank/pkg/profile"
	"github.com/umputun/feedrank/pkg/repository"
)

func TestService_Add(t *testing.T) {
	store := &mocks.StoreMock{AddInterestFunc: func(_ context.Context, in *domain.UserInterest) error {
		in.ID = "i1"
		return nil
	}}
	embedder := &mocks.EmbedderMock{EmbedFunc: func(_ context.Context, text string) ([]float64, error) {
		return []float64{float64(len(text)), 1}, nil
	}}
	notifier := &mocks.NotifierMock{NotifyFunc: func(profile.Request) {}}
	svc := NewService(store, embedder, notifier)

	in, err := svc.Add(context.Background(), "u1", "  distributed systems  ")
	require.NoError(t, err)
	assert.Equal(t, "i1", in.ID)
	assert.Equal(t, "distributed systems", in.Text)
	assert.Equal(t, []float64{19, 1}, in.Embedding)
	assert.Equal(t, "distributed systems", embedder.EmbedCalls()[0].Text)

	require.Len(t, notifier.NotifyCalls(), 1)
	assert.Equal(t, profile.Request{UserID: "u1", Force: true}, notifier.NotifyCalls()[0].Req)

	t.Run("empty text", func(t *testing.T) {
		_, err := svc.Add(context.Background(), "u1", " \t ")
		require.ErrorIs(t, err, ErrEmptyText)
		assert.Len(t, embedder.EmbedCalls(), 1)
	})

	t.Run("embedding failure", func(t *testing.T) {
		embedder.EmbedFunc = func(context.Context, string) ([]float64, error) { return nil, errors.New("quota exceeded") }
		_, err := svc.Add(context.Background(), "u1", "rust")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
		assert.Len(t, store.AddInterestCalls(), 1)
	})
}

func TestService_Remove(t *testing.T) {
	store := &mocks.StoreMock{RemoveInterestFunc: func(_ context.Context, _, id string) error {
		if id == "unknown" {
			return repository.ErrNotFound
		}
		return nil
	}}
	notifier := &mocks.NotifierMock{NotifyFunc: func(profile.Request) {}}
	svc := NewService(store, nil, notifier)

	require.NoError(t, svc.Remove(context.Background(), "u1", "i1"))
	err := svc.Remove(context.Background(), "u1", "unknown")
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.Len(t, notifier.NotifyCalls(), 1)
	assert.True(t, notifier.NotifyCalls()[0].Req.Force)
}

func TestService_List(t *testing.T) {
	store := &mocks.StoreMock{GetInterestsFunc: func(context.Context, string) ([]domain.UserInterest, error) {
		return []domain.UserInterest{{ID: "i1"}, {ID: "i2"}}, nil
	}}
	res, err := NewService(store, nil, nil).List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "u1", store.GetInterestsCalls()[0].UserID)
}
