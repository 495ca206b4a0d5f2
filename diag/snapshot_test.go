// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package diag

import (
	"strings"
	"testing"

	"github.com/gofskit/fskit/lib/codec"
	"github.com/gofskit/fskit/route"
)

func TestCaptureListsRegisteredRoutes(t *testing.T) {
	engine := route.NewEngine[struct{}]()
	if _, err := engine.RouteStat("/readonly/.*", func(core struct{}, meta *route.Metadata, entry route.Entry, out *route.Stat) int {
		return 0
	}, route.Concurrent); err != nil {
		t.Fatalf("RouteStat: %v", err)
	}

	snap := Capture(engine)
	if len(snap.Routes) != 1 {
		t.Fatalf("got %d routes, want 1", len(snap.Routes))
	}
	r := snap.Routes[0]
	if r.Op != "stat" {
		t.Errorf("Op = %q, want stat", r.Op)
	}
	if r.Pattern != "/readonly/.*" {
		t.Errorf("Pattern = %q, want /readonly/.*", r.Pattern)
	}
	if r.Discipline != "concurrent" {
		t.Errorf("Discipline = %q, want concurrent", r.Discipline)
	}
}

func TestEncodeRoundTripsThroughCBOR(t *testing.T) {
	engine := route.NewEngine[struct{}]()
	if _, err := engine.RouteSync("/.*", func(core struct{}, meta *route.Metadata, entry route.Entry) int {
		return 0
	}, route.Sequential); err != nil {
		t.Fatalf("RouteSync: %v", err)
	}

	data, err := Encode(engine)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded Snapshot
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded.Routes) != 1 || decoded.Routes[0].Op != "sync" {
		t.Fatalf("decoded = %+v, want one sync route", decoded)
	}
}

func TestEncodeEmptyEngineProducesEmptyRouteList(t *testing.T) {
	engine := route.NewEngine[struct{}]()
	data, err := Encode(engine)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded Snapshot
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded.Routes) != 0 {
		t.Errorf("got %d routes, want 0", len(decoded.Routes))
	}
}

func TestWriteDiagnosticProducesReadableOutput(t *testing.T) {
	engine := route.NewEngine[struct{}]()
	if _, err := engine.RouteStat("/x", func(core struct{}, meta *route.Metadata, entry route.Entry, out *route.Stat) int {
		return 0
	}, route.Concurrent); err != nil {
		t.Fatalf("RouteStat: %v", err)
	}
	data, err := Encode(engine)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var buf strings.Builder
	if err := WriteDiagnostic(&buf, data); err != nil {
		t.Fatalf("WriteDiagnostic: %v", err)
	}
	if !strings.Contains(buf.String(), "stat") {
		t.Errorf("diagnostic output = %q, want it to mention the stat route", buf.String())
	}
}

func TestWriteDiagnosticRejectsEmptyInput(t *testing.T) {
	if err := WriteDiagnostic(&strings.Builder{}, nil); err == nil {
		t.Fatal("WriteDiagnostic with empty data: got nil error")
	}
}
