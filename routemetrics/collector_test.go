// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package routemetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/gofskit/fskit/route"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	var m dto.Metric
	if err := vec.WithLabelValues(labels...).Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, vec *prometheus.GaugeVec, labels ...string) float64 {
	t.Helper()
	var m dto.Metric
	if err := vec.WithLabelValues(labels...).Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetGauge().GetValue()
}

func TestTrackRecordsDispatchedOutcome(t *testing.T) {
	c := NewCollector()
	done := c.Track(route.OpStat)
	if got := gaugeValue(t, c.inFlight, "stat"); got != 1 {
		t.Errorf("in-flight during dispatch = %v, want 1", got)
	}
	done(route.Dispatched)

	if got := gaugeValue(t, c.inFlight, "stat"); got != 0 {
		t.Errorf("in-flight after dispatch = %v, want 0", got)
	}
	if got := counterValue(t, c.dispatchTotal, "stat", "dispatched"); got != 1 {
		t.Errorf("dispatchTotal[stat,dispatched] = %v, want 1", got)
	}
}

func TestTrackRecordsNoRouteWithoutLatencyObservation(t *testing.T) {
	c := NewCollector()
	done := c.Track(route.OpRead)
	done(route.NoRoute)

	if got := counterValue(t, c.dispatchTotal, "read", "no_route"); got != 1 {
		t.Errorf("dispatchTotal[read,no_route] = %v, want 1", got)
	}
	if got := counterValue(t, c.dispatchTotal, "read", "dispatched"); got != 0 {
		t.Errorf("dispatchTotal[read,dispatched] = %v, want 0", got)
	}
}

func TestRegisterUnregisterRoundTrip(t *testing.T) {
	c := NewCollector()
	reg := prometheus.NewRegistry()
	if err := c.Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}
	c.Unregister(reg)
	if err := c.Register(reg); err != nil {
		t.Fatalf("re-Register after Unregister: %v", err)
	}
}
