// Package metrics collects and exposes Prometheus metrics for the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records request-level metrics. It is shared by the HTTP
// middleware and the prediction proxy.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration prometheus.Histogram
	predictionsRun  *prometheus.CounterVec
	alertsSent      prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "healthpredict_http_requests_total",
			Help: "HTTP requests by method, path and status code",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "healthpredict_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		predictionsRun: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "healthpredict_predictions_total",
			Help: "Prediction proxy calls by type and outcome",
		}, []string{"type", "outcome"}),
		alertsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "healthpredict_alert_emails_sent_total",
			Help: "Alert emails successfully sent",
		}),
	}

	reg.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.predictionsRun,
		c.alertsSent,
	)

	return c
}

func (c *Collector) RecordRequest(method, path string, statusCode int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	c.requestDuration.Observe(duration.Seconds())
}

func (c *Collector) RecordPrediction(predictionType string, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	c.predictionsRun.WithLabelValues(predictionType, outcome).Inc()
}

func (c *Collector) RecordAlertSent() {
	c.alertsSent.Inc()
}

// Handler returns the scrape handler for the given gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
