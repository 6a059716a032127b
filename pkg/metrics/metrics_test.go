package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(ingestItems.WithLabelValues(ItemNew))
	IngestItems(ItemNew, 3)
	IngestItems(ItemNew, 0)
	assert.InDelta(t, before+3, testutil.ToFloat64(ingestItems.WithLabelValues(ItemNew)), 1e-9)

	beforeErr := testutil.ToFloat64(providerRequests.WithLabelValues("embedding", "error"))
	ProviderRequest("embedding", errors.New("boom"))
	assert.InDelta(t, beforeErr+1, testutil.ToFloat64(providerRequests.WithLabelValues("embedding", "error")), 1e-9)

	beforeOK := testutil.ToFloat64(ingestRuns.WithLabelValues("ok"))
	IngestRun(time.Now(), nil)
	assert.InDelta(t, beforeOK+1, testutil.ToFloat64(ingestRuns.WithLabelValues("ok")), 1e-9)

	FeedRequest(FeedDegraded)
	ProfileUpdate("updated")
	assert.GreaterOrEqual(t, testutil.ToFloat64(feedRequests.WithLabelValues(FeedDegraded)), 1.0)
}

func TestHandler(t *testing.T) {
	IngestItems(ItemFailed, 1)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", http.NoBody))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `feedrank_ingest_items_total{result="failed"}`)
}
