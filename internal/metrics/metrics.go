package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service collectors.
type Metrics struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPRequestSeconds *prometheus.HistogramVec
	ProximityScanned   prometheus.Histogram
	ProximityMatched   prometheus.Histogram
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "address_api_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		}, []string{"method", "route", "status"}),
		HTTPRequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "address_api_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ProximityScanned: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "address_api_proximity_scanned_addresses",
			Help:    "Number of stored addresses scanned by a proximity query.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		ProximityMatched: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "address_api_proximity_matched_addresses",
			Help:    "Number of addresses returned by a proximity query.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
}

// ObserveProximityQuery records the size of one proximity scan and its result.
func (m *Metrics) ObserveProximityQuery(scanned, matched int) {
	m.ProximityScanned.Observe(float64(scanned))
	m.ProximityMatched.Observe(float64(matched))
}

// Middleware counts requests and measures their latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestSeconds.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
