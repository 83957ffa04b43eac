package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCountersAndHistograms(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.CacheHit()
	m.CacheHit()
	m.CacheMiss()
	m.IntegrationCall("whmcs", "GetInvoices", OutcomeFailure)
	m.IntegrationCall("exchangerate", "", OutcomeFallback)
	m.JobRun("cache-warmup", OutcomeSuccess)
	m.ObserveRefresh(300 * time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/sales/summary", http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.integrationCalls.WithLabelValues("whmcs", "GetInvoices", OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.integrationCalls.WithLabelValues("exchangerate", "unknown", OutcomeFallback)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.jobRuns.WithLabelValues("cache-warmup", OutcomeSuccess)))

	mfs, err := reg.Gather()
	require.NoError(t, err)

	refresh := findFamily(mfs, "sales_dashboard_snapshot_refresh_duration_seconds")
	require.NotNil(t, refresh)
	assert.Equal(t, uint64(1), refresh.GetMetric()[0].GetHistogram().GetSampleCount())

	httpFamily := findFamily(mfs, "sales_dashboard_http_request_duration_seconds")
	require.NotNil(t, httpFamily)
	assert.Len(t, httpFamily.GetMetric(), 1)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.CacheHit()
		m.CacheMiss()
		m.ObserveRefresh(time.Second)
		m.IntegrationCall("whmcs", "GetClients", OutcomeSuccess)
		m.JobRun("cache-warmup", OutcomeFailure)
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
	assert.Nil(t, New(nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.CacheMiss()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `sales_dashboard_snapshot_cache_lookups_total{result="miss"} 1`)
}

func findFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}
