package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedrank/pkg/domain"
	"github.com/umputun/feedrank/pkg/profile"
)

//go:generate moq -out mocks/ingester.go -pkg mocks -skip-ensure -fmt goimports . Ingester
//go:generate moq -out mocks/profile_worker.go -pkg mocks -skip-ensure -fmt goimports . ProfileWorker

// ErrIngestRunning is returned by IngestNow while another run is active
var ErrIngestRunning = errors.New("ingestion already running")

// Ingester runs a single ingestion pass
type Ingester interface {
	Ingest(ctx context.Context) (domain.IngestResult, error)
}

// ProfileWorker consumes profile update requests until ctx is canceled
type ProfileWorker interface {
	Run(ctx context.Context, requests <-chan profile.Request)
}

// RunStatus describes the last finished ingestion run
type RunStatus struct {
	StartedAt  time.Time           `json:"started_at"`
	FinishedAt time.Time           `json:"finished_at"`
	Result     domain.IngestResult `json:"result"`
	Error      string              `json:"error,omitempty"`
}

// Scheduler triggers ingestion periodically and on demand, and runs the profile update worker
type Scheduler struct {
	ingester   Ingester
	profiles   ProfileWorker
	requests   <-chan profile.Request
	interval   time.Duration
	runTimeout time.Duration

	running sync.Mutex // held for the duration of an ingestion run
	mu      sync.RWMutex
	last    *RunStatus

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Params holds scheduler dependencies and settings
type Params struct {
	Ingester      Ingester
	ProfileWorker ProfileWorker          // optional
	Requests      <-chan profile.Request // profile update queue, required with ProfileWorker
	Interval      time.Duration          // zero disables periodic ingestion
	RunTimeout    time.Duration          // wall-clock budget of a run, zero means no limit
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	return &Scheduler{
		ingester:   params.Ingester,
		profiles:   params.ProfileWorker,
		requests:   params.Requests,
		interval:   params.Interval,
		runTimeout: params.RunTimeout,
	}
}

// Start begins periodic ingestion and the profile worker
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	if s.interval > 0 {
		s.wg.Add(1)
		go s.ingestWorker(ctx)
	}

	if s.profiles != nil && s.requests != nil {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.profiles.Run(ctx, s.requests)
		}()
	}

	lgr.Printf("[INFO] scheduler started with ingestion interval %v, run timeout %v", s.interval, s.runTimeout)
}

// Stop gracefully stops the scheduler, waiting for an active run to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// IngestNow runs ingestion immediately, ErrIngestRunning if a run is already active.
// An interrupted run returns the partial result with the error.
func (s *Scheduler) IngestNow(ctx context.Context) (domain.IngestResult, error) {
	if !s.running.TryLock() {
		return domain.IngestResult{}, ErrIngestRunning
	}
	defer s.running.Unlock()

	if s.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.runTimeout)
		defer cancel()
	}

	status := &RunStatus{StartedAt: time.Now()}
	res, err := s.ingester.Ingest(ctx)
	status.FinishedAt = time.Now()
	status.Result = res
	if err != nil {
		status.Error = err.Error()
	}

	s.mu.Lock()
	s.last = status
	s.mu.Unlock()
	return res, err
}

// LastRun returns the status of the last finished run, nil if nothing ran yet
func (s *Scheduler) LastRun() *RunStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return nil
	}
	res := *s.last
	return &res
}

// ingestWorker runs ingestion on start and then every interval
func (s *Scheduler) ingestWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// run immediately on start
	s.scheduledRun(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.scheduledRun(ctx)
		}
	}
}

func (s *Scheduler) scheduledRun(ctx context.Context) {
	res, err := s.IngestNow(ctx)
	switch {
	case errors.Is(err, ErrIngestRunning):
		lgr.Printf("[INFO] skipping scheduled ingestion, previous run is still active")
	case err != nil:
		lgr.Printf("[WARN] scheduled ingestion failed: %v", err)
	default:
		lgr.Printf("[DEBUG] scheduled ingestion done, %d new articles", res.NewArticles)
	}
}
