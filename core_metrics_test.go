// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fskit

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/gofskit/fskit/lib/clock"
	"github.com/gofskit/fskit/routemetrics"
)

func TestCoreReportsDispatchMetrics(t *testing.T) {
	metrics := routemetrics.NewCollector()
	reg := prometheus.NewRegistry()
	if err := metrics.Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}

	c := New(
		WithClock(clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))),
		WithMetrics(metrics),
	)

	if _, err := c.Stat("/"); err != nil {
		t.Fatalf("Stat: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if !hasCounterSample(families, "fskit_route_dispatch_total", "stat", "no_route") {
		t.Errorf("expected a stat/no_route dispatch sample, got families %+v", families)
	}
}

func hasCounterSample(families []*dto.MetricFamily, name, op, outcome string) bool {
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, m := range fam.GetMetric() {
			var gotOp, gotOutcome string
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "op":
					gotOp = lp.GetValue()
				case "outcome":
					gotOutcome = lp.GetValue()
				}
			}
			if gotOp == op && gotOutcome == outcome && m.GetCounter().GetValue() > 0 {
				return true
			}
		}
	}
	return false
}
