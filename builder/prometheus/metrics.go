package prometheus

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bookmark"

// collectors stay nil until InitMetrics is called, callers must check
var (
	HttpRequestsTotal     *prometheus.CounterVec
	HttpRequestDuration   *prometheus.HistogramVec
	HttpPanicsTotal       prometheus.Counter
	BookmarksCreatedTotal prometheus.Counter
	registry              *prometheus.Registry
	initOnce              sync.Once
)

func InitMetrics() {
	initOnce.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		HttpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"})
		HttpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"})
		HttpPanicsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_panics_total",
			Help:      "Number of panics recovered while serving HTTP requests.",
		})
		BookmarksCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookmarks_created_total",
			Help:      "Number of bookmarks stored.",
		})

		registry.MustRegister(
			HttpRequestsTotal,
			HttpRequestDuration,
			HttpPanicsTotal,
			BookmarksCreatedTotal,
		)
	})
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	InitMetrics()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}
