package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recommendation outcomes recorded by RecordRecommendation.
const (
	OutcomeSuccess       = "success"
	OutcomeInvalidInput  = "invalid_input"
	OutcomeConfigError   = "config_error"
	OutcomeUpstreamError = "upstream_error"
	OutcomeTimeout       = "timeout"
	OutcomeNonJSON       = "non_json"
)

// Registry holds every collector exposed on /metrics.
var Registry = prometheus.NewRegistry()

var (
	factory = promauto.With(Registry)

	httpRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	recommendationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "recommendations_total",
		Help: "Total recommendation requests by outcome",
	}, []string{"outcome"})

	llmRequestDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "llm_request_duration_seconds",
		Help:    "External model call duration in seconds",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// RecordRecommendation increments the recommendation counter for outcome.
func RecordRecommendation(outcome string) {
	recommendationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveLLMDuration records the duration of one external model call.
func ObserveLLMDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	llmRequestDuration.Observe(d.Seconds())
}

// Middleware records request counts and latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
