// Package metrics counts tree restructuring events with Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/btree-query-bench/leafchain/index/btree"
)

type Collector struct {
	registry *prometheus.Registry
	events   *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leafchain",
			Subsystem: "tree",
			Name:      "events_total",
			Help:      "Structural changes made by the B-tree, by kind.",
		}, []string{"event"}),
	}
	c.registry.MustRegister(c.events)
	return c
}

// Observe is a btree.Observer.
func (c *Collector) Observe(e btree.Event) {
	c.events.WithLabelValues(e.String()).Inc()
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Snapshot returns the current count per event label.
func (c *Collector) Snapshot() (map[string]float64, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "event" {
					out[lp.GetValue()] = m.GetCounter().GetValue()
				}
			}
		}
	}
	return out, nil
}
