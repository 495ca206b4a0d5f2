// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package route

// Discipline is the concurrency contract a route imposes on its own
// handler invocations. It is not a flag consulted at dispatch time; it is
// an encoded choice of which lock, and in which mode, the arbiter
// acquires around the handler call. See arbiter.go.
type Discipline int

const (
	// Sequential serializes every invocation of a rule's handler across
	// the whole process, regardless of path or entry. Implemented as a
	// writer hold on the rule's arbiter lock for the handler's entire
	// span, including its I/O continuation.
	Sequential Discipline = 1

	// Concurrent allows any number of a rule's handler invocations to
	// run in parallel. Implemented as a reader hold on the rule's
	// arbiter lock — concurrent with other readers, but still mutually
	// exclusive with a revoker's writer hold, which is what lets
	// unroute drain in-flight handlers regardless of discipline.
	Concurrent Discipline = 2

	// InodeSequential allows a rule's handler to run in parallel across
	// distinct inodes but serializes invocations on the same inode. In
	// addition to a reader hold on the arbiter lock, it holds the
	// target entry's own lock for the handler's span.
	InodeSequential Discipline = 3
)

func (d Discipline) valid() bool {
	switch d {
	case Sequential, Concurrent, InodeSequential:
		return true
	default:
		return false
	}
}

func (d Discipline) String() string {
	switch d {
	case Sequential:
		return "sequential"
	case Concurrent:
		return "concurrent"
	case InodeSequential:
		return "inode-sequential"
	default:
		return "invalid"
	}
}
