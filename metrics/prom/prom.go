// Package prom exports hasharray metrics to Prometheus.
//
//	c := prom.NewCollector("orders")
//	prometheus.MustRegister(c)
//	ha, _ := hasharray.New[*Order](keypath.Fields("id"), hasharray.WithMetricsCollector(c))
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/hasharray"
)

// Collector implements hasharray.MetricsCollector and prometheus.Collector.
type Collector struct {
	opLatency *prometheus.HistogramVec
	items     *prometheus.CounterVec
	lookups   *prometheus.CounterVec
	derived   *prometheus.CounterVec
}

var _ hasharray.MetricsCollector = (*Collector)(nil)

// NewCollector creates a collector whose metrics carry the given
// "collection" const label. Register it with a prometheus.Registerer.
func NewCollector(collection string) *Collector {
	labels := prometheus.Labels{"collection": collection}
	return &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "hasharray_operation_latency_seconds",
			Help:        "Latency of hash array mutations and derivations",
			Buckets:     prometheus.ExponentialBuckets(1e-6, 4, 10),
			ConstLabels: labels,
		}, []string{"op"}),
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "hasharray_items_total",
			Help:        "Items processed by mutations, by outcome",
			ConstLabels: labels,
		}, []string{"op", "outcome"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "hasharray_lookups_total",
			Help:        "Key lookups, by result",
			ConstLabels: labels,
		}, []string{"result"}),
		derived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "hasharray_derived_items_total",
			Help:        "Items placed into derived collections",
			ConstLabels: labels,
		}, []string{"op"}),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.opLatency.Describe(ch)
	c.items.Describe(ch)
	c.lookups.Describe(ch)
	c.derived.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.opLatency.Collect(ch)
	c.items.Collect(ch)
	c.lookups.Collect(ch)
	c.derived.Collect(ch)
}

// RecordAdd implements hasharray.MetricsCollector.
func (c *Collector) RecordAdd(kind hasharray.EventKind, accepted, rejected int, d time.Duration) {
	op := string(kind)
	c.opLatency.WithLabelValues(op).Observe(d.Seconds())
	c.items.WithLabelValues(op, "accepted").Add(float64(accepted))
	c.items.WithLabelValues(op, "rejected").Add(float64(rejected))
}

// RecordRemove implements hasharray.MetricsCollector.
func (c *Collector) RecordRemove(kind hasharray.EventKind, removed int, d time.Duration) {
	op := string(kind)
	c.opLatency.WithLabelValues(op).Observe(d.Seconds())
	c.items.WithLabelValues(op, "removed").Add(float64(removed))
}

// RecordLookup implements hasharray.MetricsCollector.
func (c *Collector) RecordLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.lookups.WithLabelValues(result).Inc()
}

// RecordDerive implements hasharray.MetricsCollector.
func (c *Collector) RecordDerive(op string, size int, d time.Duration) {
	c.opLatency.WithLabelValues(op).Observe(d.Seconds())
	c.derived.WithLabelValues(op).Add(float64(size))
}
