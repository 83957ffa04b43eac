package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sales_dashboard"

// Outcomes usados nas chamadas aos serviços externos
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeFallback = "fallback"
)

// Metrics agrupa as métricas da aplicação. Um *Metrics nil é válido e não registra nada.
type Metrics struct {
	gatherer         prometheus.Gatherer
	httpDuration     *prometheus.HistogramVec
	cacheLookups     *prometheus.CounterVec
	cacheRefresh     prometheus.Histogram
	integrationCalls *prometheus.CounterVec
	jobRuns          *prometheus.CounterVec
}

// New registra as métricas no registry informado
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		return nil
	}

	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_cache_lookups_total",
		Help:      "Sales snapshot cache lookups by result.",
	}, []string{"result"})
	cacheRefresh := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "snapshot_refresh_duration_seconds",
		Help:      "Time spent rebuilding the sales snapshot.",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
	})
	integrationCalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "integration_calls_total",
		Help:      "Calls to remote services by integration, action and outcome.",
	}, []string{"integration", "action", "outcome"})
	jobRuns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_runs_total",
		Help:      "Scheduled job executions by job and outcome.",
	}, []string{"job", "outcome"})

	reg.MustRegister(httpDuration, cacheLookups, cacheRefresh, integrationCalls, jobRuns)

	return &Metrics{
		gatherer:         reg,
		httpDuration:     httpDuration,
		cacheLookups:     cacheLookups,
		cacheRefresh:     cacheRefresh,
		integrationCalls: integrationCalls,
		jobRuns:          jobRuns,
	}
}

// Handler expõe as métricas no formato do Prometheus
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveHTTP registra a duração de uma requisição
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	if m == nil || m.httpDuration == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

// CacheHit conta uma leitura servida pelo cache
func (m *Metrics) CacheHit() {
	if m == nil || m.cacheLookups == nil {
		return
	}
	m.cacheLookups.WithLabelValues("hit").Inc()
}

// CacheMiss conta uma leitura que exigiu nova agregação
func (m *Metrics) CacheMiss() {
	if m == nil || m.cacheLookups == nil {
		return
	}
	m.cacheLookups.WithLabelValues("miss").Inc()
}

// ObserveRefresh registra a duração de uma agregação
func (m *Metrics) ObserveRefresh(duration time.Duration) {
	if m == nil || m.cacheRefresh == nil {
		return
	}
	m.cacheRefresh.Observe(duration.Seconds())
}

// IntegrationCall conta uma chamada a um serviço externo
func (m *Metrics) IntegrationCall(integration, action, outcome string) {
	if m == nil || m.integrationCalls == nil {
		return
	}
	m.integrationCalls.WithLabelValues(normalizeLabel(integration), normalizeLabel(action), normalizeLabel(outcome)).Inc()
}

// JobRun conta uma execução de job agendado
func (m *Metrics) JobRun(job, outcome string) {
	if m == nil || m.jobRuns == nil {
		return
	}
	m.jobRuns.WithLabelValues(normalizeLabel(job), normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
