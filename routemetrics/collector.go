// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package routemetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gofskit/fskit/route"
)

// Collector holds the metric vectors instrumenting a route.Engine's
// dispatch path. The zero value is not usable; construct with
// NewCollector.
type Collector struct {
	dispatchTotal  *prometheus.CounterVec
	handlerLatency *prometheus.HistogramVec
	inFlight       *prometheus.GaugeVec
}

// NewCollector builds an unregistered Collector. Call Register before
// a Prometheus scrape needs its metrics, and Unregister on shutdown so a
// process that creates and discards multiple Cores (as tests do) doesn't
// accumulate duplicate registrations.
func NewCollector() *Collector {
	return &Collector{
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fskit_route_dispatch_total",
			Help: "Number of route dispatches by operation kind and outcome.",
		}, []string{"op", "outcome"}),
		handlerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fskit_route_handler_seconds",
			Help:    "Handler execution latency, including any I/O continuation, by operation kind.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		inFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fskit_route_in_flight",
			Help: "Number of dispatches currently executing a handler, by operation kind.",
		}, []string{"op"}),
	}
}

// Register adds the collector's metrics to reg. It returns the first
// registration error encountered, in which case any metrics already
// registered are left in place; call Unregister to clean up.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, collector := range []prometheus.Collector{c.dispatchTotal, c.handlerLatency, c.inFlight} {
		if err := reg.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// Unregister removes the collector's metrics from reg.
func (c *Collector) Unregister(reg prometheus.Registerer) {
	reg.Unregister(c.dispatchTotal)
	reg.Unregister(c.handlerLatency)
	reg.Unregister(c.inFlight)
}

// Track marks the start of a dispatch for op and returns a function the
// caller invokes with the resulting outcome once dispatch returns. It
// holds the in-flight gauge up for op's whole span, matching how the
// route package's arbiter itself brackets a handler call.
func (c *Collector) Track(op route.Op) func(outcome route.Outcome) {
	label := op.String()
	c.inFlight.WithLabelValues(label).Inc()
	start := time.Now()
	return func(outcome route.Outcome) {
		c.inFlight.WithLabelValues(label).Dec()
		c.dispatchTotal.WithLabelValues(label, outcomeLabel(outcome)).Inc()
		if outcome == route.Dispatched {
			c.handlerLatency.WithLabelValues(label).Observe(time.Since(start).Seconds())
		}
	}
}

func outcomeLabel(outcome route.Outcome) string {
	if outcome == route.Dispatched {
		return "dispatched"
	}
	return "no_route"
}
