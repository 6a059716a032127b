package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/profile"
	"github.com/umputun/feedrank/pkg/scheduler/mocks"
)

func TestScheduler_IngestNow(t *testing.T) {
	ingester := &mocks.IngesterMock{IngestFunc: func(context.Context) (domain.IngestResult, error) {
		return domain.IngestResult{TotalFetched: 3, NewArticles: 2, Skipped: 1, Errors: []string{}}, nil
	}}
	s := NewScheduler(Params{Ingester: ingester})
	assert.Nil(t, s.LastRun())

	res, err := s.IngestNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.NewArticles)

	last := s.LastRun()
	require.NotNil(t, last)
	assert.Equal(t, res, last.Result)
	assert.Empty(t, last.Error)
	assert.False(t, last.FinishedAt.Before(last.StartedAt))
}

func TestScheduler_IngestNow_Overlap(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	ingester := &mocks.IngesterMock{IngestFunc: func(context.Context) (domain.IngestResult, error) {
		close(started)
		<-release
		return domain.IngestResult{}, nil
	}}
	s := NewScheduler(Params{Ingester: ingester})

	done := make(chan error)
	go func() {
		_, err := s.IngestNow(context.Background())
		done <- err
	}()
	<-started

	_, err := s.IngestNow(context.Background())
	require.ErrorIs(t, err, ErrIngestRunning)

	close(release)
	require.NoError(t, <-done)
	assert.Len(t, ingester.IngestCalls(), 1)
}

func TestScheduler_IngestNow_Timeout(t *testing.T) {
	ingester := &mocks.IngesterMock{IngestFunc: func(ctx context.Context) (domain.IngestResult, error) {
		<-ctx.Done()
		return domain.IngestResult{TotalFetched: 5, NewArticles: 1}, ctx.Err()
	}}
	s := NewScheduler(Params{Ingester: ingester, RunTimeout: 20 * time.Millisecond})

	res, err := s.IngestNow(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, res.NewArticles, "partial result kept")
	require.NotNil(t, s.LastRun())
	assert.Contains(t, s.LastRun().Error, "deadline exceeded")
}

func TestScheduler_StartStop(t *testing.T) {
	var runs atomic.Int32
	ingester := &mocks.IngesterMock{IngestFunc: func(context.Context) (domain.IngestResult, error) {
		runs.Add(1)
		return domain.IngestResult{}, errors.New("all feeds failed")
	}}
	workerDone := make(chan struct{})
	worker := &mocks.ProfileWorkerMock{RunFunc: func(ctx context.Context, _ <-chan profile.Request) {
		<-ctx.Done()
		close(workerDone)
	}}
	n := profile.NewNotifier(1)

	s := NewScheduler(Params{Ingester: ingester, ProfileWorker: worker, Requests: n.Requests(), Interval: 50 * time.Millisecond})
	s.Start(context.Background())

	require.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 10*time.Millisecond,
		"runs immediately and then on every tick")
	s.Stop()

	select {
	case <-workerDone:
	default:
		t.Fatal("profile worker not stopped")
	}
	assert.Len(t, worker.RunCalls(), 1)
	stopped := runs.Load()
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load(), "no runs after stop")
}

func TestScheduler_NoInterval(t *testing.T) {
	ingester := &mocks.IngesterMock{}
	s := NewScheduler(Params{Ingester: ingester})
	s.Start(context.Background())
	s.Stop()
	assert.Empty(t, ingester.IngestCalls())
}
