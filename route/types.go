// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package route

import "time"

// Entry is the minimal capability the engine needs from a tree-owned
// inode: the ability to hold its own lock for the span of an
// inode-sequential handler. It is otherwise opaque to the engine — the
// engine never reads or writes through it, only locks and unlocks it, and
// passes it on to handlers uninspected.
type Entry interface {
	Lock()
	Unlock()
}

// Handle is a stable, nonnegative identifier for a registered route,
// unique within its operation kind. Handles are never reused while the
// route they identify is still live, but a revoked handle's numeric value
// may be reassigned to a later registration on the same operation kind.
type Handle int

// Stat mirrors the subset of POSIX stat(2) fields a stat-operation
// handler is asked to fill in.
type Stat struct {
	Mode  uint32
	Size  int64
	Uid   uint32
	Gid   uint32
	Nlink uint32
	Atime time.Time
	Mtime time.Time
	Ctime time.Time
}

// DirEntry is one entry passed to a readdir-operation handler. Handlers
// may return a rewritten slice of DirEntry to add, remove, or relabel
// entries before they reach the caller.
type DirEntry struct {
	Name string
	Mode uint32
}

// Outcome is the dispatcher's top-level verdict, orthogonal to the
// handler's own return code: whether a route existed to run at all.
type Outcome int

const (
	// Dispatched means a route matched and its handler ran; inspect the
	// accompanying rc for the handler's own result.
	Dispatched Outcome = iota

	// NoRoute means no registered route matched (op, path); the caller
	// must apply its own default behavior. No handler ran, no state was
	// mutated by the engine.
	NoRoute
)
