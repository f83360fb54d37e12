package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IncrementalCounter counts events partitioned by label values.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter is a labeled Prometheus counter.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

// Increment adds one to the series identified by the label values.
func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// Collector exposes the underlying vector, e.g. for testutil.
func (c *Counter) Collector() *prometheus.CounterVec {
	return c.vec
}

// NewCounterWithRegistry creates a counter and registers it with reg.
// A nil reg yields a counter that is not exported anywhere.
// Registering the same name twice with one registry panics.
func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) *Counter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	if reg != nil {
		reg.MustRegister(counter)
	}

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// NopCounter discards all increments.
type NopCounter struct{}

// Increment does nothing.
func (NopCounter) Increment(...string) {}

// HandlerFor returns an HTTP handler serving the metrics gathered by reg.
func HandlerFor(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
