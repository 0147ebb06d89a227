// Package metrics holds the process wide prometheus collectors
//
// Collectors register on the default registry at init through promauto
// Handler exposes them for scraping
//
//	metrics.RecordLoad(took, len(snap.Facts), nil)
//	defer metrics.ObserveOp("aggregate", time.Now())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// DatasetLoadsTotal counts dataset loads by outcome (ok, error)
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesboard_dataset_loads_total",
			Help: "Total number of dataset load attempts",
		},
		[]string{"outcome"},
	)

	// DatasetLoadDuration tracks how long a source load plus join takes
	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "salesboard_dataset_load_duration_seconds",
			Help:    "Duration of dataset loads in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// DatasetFacts is the number of joined facts in the live snapshot
	DatasetFacts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "salesboard_dataset_facts",
			Help: "Number of joined sales facts in the loaded snapshot",
		},
	)

	// DatasetCatalogValues is the number of distinct values per filter catalog
	DatasetCatalogValues = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "salesboard_dataset_catalog_values",
			Help: "Number of distinct values in each meta catalog list",
		},
		[]string{"catalog"},
	)

	// EngineOpDuration tracks analytical operation latency
	EngineOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salesboard_engine_op_duration_seconds",
			Help:    "Duration of engine operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"op"},
	)

	// HTTPRequestsTotal counts requests by method, route pattern and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency by route pattern
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salesboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// RecordLoad records one dataset load attempt
// facts only updates the gauge on success
func RecordLoad(took time.Duration, facts int, err error) {
	DatasetLoadDuration.Observe(took.Seconds())
	if err != nil {
		DatasetLoadsTotal.WithLabelValues("error").Inc()
		return
	}
	DatasetLoadsTotal.WithLabelValues("ok").Inc()
	DatasetFacts.Set(float64(facts))
}

// RecordCatalog sets the size of one meta catalog list
func RecordCatalog(catalog string, n int) {
	DatasetCatalogValues.WithLabelValues(catalog).Set(float64(n))
}

// ObserveOp records the time since start under op
func ObserveOp(op string, start time.Time) {
	EngineOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Middleware counts requests by their chi route pattern so path values do not explode cardinality
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the default registry in the prometheus text format
func Handler() http.Handler { return promhttp.Handler() }
