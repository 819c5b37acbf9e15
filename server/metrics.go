package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"uvalue/model"
)

var histogramBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

var uValueBuckets = []float64{0.1, 0.12, 0.15, 0.2, 0.25, 0.3, 0.4, 0.6, 1, 2}

type metrics struct {
	registry        *prometheus.Registry
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	computations    *prometheus.CounterVec
	uValue          prometheus.Histogram
}

// 每个 Server 使用独立的 registry
func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uvalue",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "uvalue",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uvalue",
			Subsystem: "calculator",
			Name:      "computations_total",
			Help:      "Number of assembly computations by outcome",
		}, []string{"outcome"}),
		uValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "uvalue",
			Subsystem: "calculator",
			Name:      "u_value",
			Help:      "Distribution of computed finite U-values in W/(m²·K)",
			Buckets:   uValueBuckets,
		}),
	}
	m.registry.MustRegister(m.requestTotal, m.requestDuration, m.computations, m.uValue)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		labels := prometheus.Labels{
			"method": c.Request.Method,
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		}
		m.requestTotal.With(labels).Inc()
		m.requestDuration.With(labels).Observe(time.Since(start).Seconds())
	}
}

func (m *metrics) observe(res *model.AssemblyResult, err error) {
	switch {
	case err != nil:
		m.computations.With(prometheus.Labels{"outcome": "error"}).Inc()
	case res.UValue.IsInf():
		m.computations.With(prometheus.Labels{"outcome": "degenerate"}).Inc()
	case len(res.Advisories) > 0:
		m.computations.With(prometheus.Labels{"outcome": "advisory"}).Inc()
		m.uValue.Observe(float64(res.UValue))
	default:
		m.computations.With(prometheus.Labels{"outcome": "ok"}).Inc()
		m.uValue.Observe(float64(res.UValue))
	}
}
