package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled HTTP requests by method, route and status
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tvstream_http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"method", "route", "status"})

	// HTTPDuration tracks request latency by route
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tvstream_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// PlaylistFetches counts remote playlist downloads by category and result
	PlaylistFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tvstream_playlist_fetches_total",
		Help: "Total number of remote playlist fetches",
	}, []string{"category", "result"})

	// CacheHits counts cache lookups that returned fresh data, by cache name
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tvstream_cache_hits_total",
		Help: "Total number of cache hits",
	}, []string{"cache"})

	// CacheMisses counts cache lookups that missed or were stale, by cache name
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tvstream_cache_misses_total",
		Help: "Total number of cache misses",
	}, []string{"cache"})

	// UpstreamErrors counts failed upstream API calls by provider
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tvstream_upstream_errors_total",
		Help: "Total number of upstream API errors",
	}, []string{"provider"})
)

// RecordPlaylistFetch increments the fetch counter for a category with
// result "success" or "error"
func RecordPlaylistFetch(category, result string) {
	PlaylistFetches.WithLabelValues(category, result).Inc()
}

// RecordCacheHit increments the hit counter for a named cache
func RecordCacheHit(cache string) {
	CacheHits.WithLabelValues(cache).Inc()
}

// RecordCacheMiss increments the miss counter for a named cache
func RecordCacheMiss(cache string) {
	CacheMisses.WithLabelValues(cache).Inc()
}

// RecordUpstreamError increments the error counter for a provider
func RecordUpstreamError(provider string) {
	UpstreamErrors.WithLabelValues(provider).Inc()
}
