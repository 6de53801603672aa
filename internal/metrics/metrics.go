// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what handlers and middleware report to.
type Recorder interface {
	RecordHTTPStatus(statusCode int)
	RecordProjectionLoad(groupCount int)
	RecordPublishFailure()
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	httpStatus      *prometheus.CounterVec
	projectionLoads prometheus.Counter
	projectionSize  prometheus.Histogram
	publishFail     prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "socialize_http_status_total",
			Help: "Responses by HTTP status code.",
		}, []string{"status_code"}),
		projectionLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "socialize_user_with_groups_loads_total",
			Help: "User-with-groups projections served.",
		}),
		projectionSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "socialize_user_with_groups_size",
			Help:    "Number of groups in each served user-with-groups projection.",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		publishFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "socialize_event_publish_fail_total",
			Help: "Group events that could not be published.",
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.projectionLoads,
		c.projectionSize,
		c.publishFail,
	)

	return c
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordProjectionLoad(groupCount int) {
	c.projectionLoads.Inc()
	c.projectionSize.Observe(float64(groupCount))
}

func (c *Collector) RecordPublishFailure() {
	c.publishFail.Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordHTTPStatus(int)     {}
func (Nop) RecordProjectionLoad(int) {}
func (Nop) RecordPublishFailure()    {}
