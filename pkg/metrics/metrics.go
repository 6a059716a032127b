// Package metrics defines prometheus instruments for ingestion, providers, ranking and profiles.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ingestion item results
const (
	ItemNew     = "new"
	ItemSkipped = "skipped"
	ItemFailed  = "failed"
)

// feed modes
const (
	FeedPersonalized = "personalized"
	FeedInterests    = "interests"
	FeedColdStart    = "cold_start"
	FeedDegraded     = "degraded"
)

var (
	ingestItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedrank_ingest_items_total",
		Help: "Feed items processed by the ingestion pipeline, by result",
	}, []string{"result"})

	ingestRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedrank_ingest_runs_total",
		Help: "Ingestion runs, by status",
	}, []string{"status"})

	ingestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "feedrank_ingest_duration_seconds",
		Help:    "Duration of ingestion runs",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
	})

	providerRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedrank_provider_requests_total",
		Help: "Summarization and embedding provider requests, by provider and status",
	}, []string{"provider", "status"})

	feedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedrank_feed_requests_total",
		Help: "Personalized feed requests, by the mode used to serve them",
	}, []string{"mode"})

	profileUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedrank_profile_updates_total",
		Help: "Profile recomputations, by result",
	}, []string{"result"})
)

// IngestItems adds n items with the given result
func IngestItems(result string, n int) {
	if n > 0 {
		ingestItems.WithLabelValues(result).Add(float64(n))
	}
}

// IngestRun records a finished ingestion run
func IngestRun(started time.Time, err error) {
	ingestDuration.Observe(time.Since(started).Seconds())
	ingestRuns.WithLabelValues(status(err)).Inc()
}

// ProviderRequest records a provider call outcome
func ProviderRequest(provider string, err error) {
	providerRequests.WithLabelValues(provider, status(err)).Inc()
}

// FeedRequest records how a personalized feed was served
func FeedRequest(mode string) {
	feedRequests.WithLabelValues(mode).Inc()
}

// ProfileUpdate records a profile update request outcome: updated, empty, skipped, dropped or error
func ProfileUpdate(result string) {
	profileUpdates.WithLabelValues(result).Inc()
}

// Handler returns the prometheus scrape handler
func Handler() http.Handler {
	return promhttp.Handler()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
