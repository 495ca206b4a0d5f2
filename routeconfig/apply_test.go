// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package routeconfig

import (
	"syscall"
	"testing"

	"github.com/gofskit/fskit/route"
)

type stubEntry struct{}

func (stubEntry) Lock()   {}
func (stubEntry) Unlock() {}

func TestApplyRegistersCannedErrnoRoutes(t *testing.T) {
	engine := route.NewEngine[struct{}]()
	cfg := &Config{Rules: []Rule{
		{Op: "write", Pattern: `/readonly/.*`, Discipline: "concurrent", Errno: "EROFS"},
	}}

	handles, err := Apply(engine, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(handles) != 1 {
		t.Fatalf("got %d handles, want 1", len(handles))
	}

	outcome, n, rc := engine.DispatchWrite(struct{}{}, "/readonly/f", stubEntry{}, []byte("x"), 0, nil, nil)
	if outcome != route.Dispatched {
		t.Fatalf("outcome = %v, want Dispatched", outcome)
	}
	if n != 0 || rc != -int(syscall.EROFS) {
		t.Errorf("n=%d rc=%d, want n=0 rc=%d", n, rc, -int(syscall.EROFS))
	}
}

func TestApplyUnknownOpFails(t *testing.T) {
	engine := route.NewEngine[struct{}]()
	cfg := &Config{Rules: []Rule{{Op: "bogus", Pattern: "/x"}}}

	if _, err := Apply(engine, cfg); err == nil {
		t.Fatal("Apply with unknown op: got nil error")
	}
}

func TestApplyUnknownErrnoFails(t *testing.T) {
	engine := route.NewEngine[struct{}]()
	cfg := &Config{Rules: []Rule{{Op: "stat", Pattern: "/x", Errno: "ENOTANERRNO"}}}

	if _, err := Apply(engine, cfg); err == nil {
		t.Fatal("Apply with unknown errno: got nil error")
	}
}

func TestApplyRollsBackOnLaterRuleFailure(t *testing.T) {
	engine := route.NewEngine[struct{}]()
	cfg := &Config{Rules: []Rule{
		{Op: "stat", Pattern: "/first"},
		{Op: "bogus", Pattern: "/second"},
	}}

	if _, err := Apply(engine, cfg); err == nil {
		t.Fatal("Apply: got nil error")
	}

	outcome, _ := engine.DispatchStat(struct{}{}, "/first", stubEntry{}, &route.Stat{})
	if outcome != route.NoRoute {
		t.Errorf("outcome for rolled-back route = %v, want NoRoute", outcome)
	}
}
