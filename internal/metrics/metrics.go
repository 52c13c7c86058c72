package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	catalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Requests sent to the catalog API, by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)
	catalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog API calls including retries.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
	catalogCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_lookups_total",
			Help: "Catalog response cache lookups by result.",
		},
		[]string{"endpoint", "result"},
	)

	storeItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_items",
			Help: "Distinct items currently held by each collection store.",
		},
		[]string{"store"},
	)
	storeWriteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_write_failures_total",
			Help: "Failed attempts to persist a collection store.",
		},
		[]string{"store"},
	)
	storeDegraded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_degraded",
			Help: "1 when a collection store has fallen back to memory only.",
		},
		[]string{"store"},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Route instruments a single route. pattern is the mux pattern it is
// registered under, which keeps the path label cardinality bounded.
func Route(pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		defer func() {
			statusCodeStr := strconv.Itoa(rw.statusCode)

			httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, pattern).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, pattern).Observe(time.Since(start).Seconds())
			httpRequestsInFlight.Dec()
		}()

		next.ServeHTTP(rw, r)
	})
}

// ObserveCatalogRequest records one logical catalog call.
func ObserveCatalogRequest(endpoint, outcome string, duration time.Duration) {
	catalogRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	catalogRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func CatalogCacheLookup(endpoint string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}

	catalogCacheTotal.WithLabelValues(endpoint, result).Inc()
}

func StoreItems(store string, n int) {
	storeItems.WithLabelValues(store).Set(float64(n))
}

func StoreWriteFailed(store string) {
	storeWriteFailures.WithLabelValues(store).Inc()
}

func StoreDegraded(store string) {
	storeDegraded.WithLabelValues(store).Set(1)
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
