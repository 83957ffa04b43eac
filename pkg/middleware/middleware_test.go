package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCors(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantHeader string
		wantStatus int
	}{
		{name: "qualquer origem", allowed: []string{"*"}, origin: "http://tv.local", method: http.MethodGet, wantHeader: "*", wantStatus: http.StatusOK},
		{name: "origem liberada", allowed: []string{"http://tv.local"}, origin: "http://tv.local", method: http.MethodGet, wantHeader: "http://tv.local", wantStatus: http.StatusOK},
		{name: "origem bloqueada", allowed: []string{"http://tv.local"}, origin: "http://evil.local", method: http.MethodGet, wantHeader: "", wantStatus: http.StatusOK},
		{name: "preflight", allowed: []string{"*"}, origin: "http://tv.local", method: http.MethodOptions, wantHeader: "*", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/sales/summary", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestBearerToken(t *testing.T) {
	log.SetupTestLogger()

	open := BearerToken("")(okHandler)
	rec := httptest.NewRecorder()
	open.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cache/clear", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	guarded := BearerToken("s3cret")(okHandler)

	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cache/clear", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/cache/clear", nil)
	req.Header.Set("Authorization", "Bearer errado")
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/cache/clear", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestLoggingMiddlewareKeepsStatus(t *testing.T) {
	log.SetupTestLogger()

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, log.GetCorrelationID(r.Context()))
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(notFound).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInstrument(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	rec := httptest.NewRecorder()
	Instrument(m, http.MethodGet, "/healthcheck")(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	mfs, err := reg.Gather()
	assert.NoError(t, err)

	found := false
	for _, mf := range mfs {
		if mf.GetName() == "sales_dashboard_http_request_duration_seconds" {
			found = true
			assert.Equal(t, uint64(1), mf.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
	assert.True(t, found)

	assert.NotPanics(t, func() {
		Instrument(nil, http.MethodGet, "/")(okHandler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
