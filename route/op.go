// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package route

// Op identifies which filesystem operation a route was registered
// against. Each Op has its own ordered route table and its own handler
// function type — see handlers.go.
type Op int

const (
	OpCreate Op = iota
	OpMknod
	OpMkdir
	OpOpen
	OpClose
	OpReaddir
	OpRead
	OpWrite
	OpTrunc
	OpDetach
	OpStat
	OpSync
	OpRename

	// numOps is the count of operation kinds, and the size of the
	// per-engine table array. Not exported: it is an implementation
	// detail of how many independent route sequences the table keeps,
	// not a value a caller has any use for.
	numOps
)

func (op Op) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpMknod:
		return "mknod"
	case OpMkdir:
		return "mkdir"
	case OpOpen:
		return "open"
	case OpClose:
		return "close"
	case OpReaddir:
		return "readdir"
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	case OpTrunc:
		return "trunc"
	case OpDetach:
		return "detach"
	case OpStat:
		return "stat"
	case OpSync:
		return "sync"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}
