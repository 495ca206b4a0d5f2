// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package diag

import (
	"github.com/gofskit/fskit/lib/codec"
	"github.com/gofskit/fskit/route"
)

// RouteRecord is the wire form of one route.RouteInfo. Op and Discipline
// are captured as their string names rather than their underlying ints,
// so a snapshot taken by one build stays meaningful if those constants
// are ever renumbered.
type RouteRecord struct {
	Handle     int64  `cbor:"handle"`
	Op         string `cbor:"op"`
	Pattern    string `cbor:"pattern"`
	Discipline string `cbor:"discipline"`
}

// Snapshot is a full route-table dump, suitable for CBOR encoding and
// later diagnostic-notation inspection.
type Snapshot struct {
	Routes []RouteRecord `cbor:"routes"`
}

// Capture reads engine's currently registered routes into a Snapshot.
// It does not itself touch dispatch; see route.Engine.Snapshot for the
// consistency guarantees of the underlying read.
func Capture[C any](engine *route.Engine[C]) Snapshot {
	infos := engine.Snapshot()
	records := make([]RouteRecord, len(infos))
	for i, info := range infos {
		records[i] = RouteRecord{
			Handle:     int64(info.Handle),
			Op:         info.Op.String(),
			Pattern:    info.Pattern,
			Discipline: info.Discipline.String(),
		}
	}
	return Snapshot{Routes: records}
}

// Marshal encodes s to CBOR using Core Deterministic Encoding, so two
// snapshots of the same route table always produce identical bytes.
func (s Snapshot) Marshal() ([]byte, error) {
	return codec.Marshal(s)
}

// Encode captures engine's route table and encodes it to CBOR in one
// step.
func Encode[C any](engine *route.Engine[C]) ([]byte, error) {
	return Capture(engine).Marshal()
}
