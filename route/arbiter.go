// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package route

// enterArbiter acquires the lock hold r's discipline calls for and
// returns a function that releases exactly what was acquired. Callers
// must defer the returned function immediately so that every exit path
// out of the handler span — normal return, handler error, or panic —
// releases it.
//
//   - Sequential:       writer hold on r.arbiter for the whole span.
//   - Concurrent:       reader hold on r.arbiter for the whole span.
//   - InodeSequential:  reader hold on r.arbiter, plus entry's own lock.
//
// The reader hold in the concurrent and inode-sequential cases still
// blocks a revoker's writer hold, which is what makes unroute drain
// in-flight handlers under every discipline, not just sequential ones.
func enterArbiter[C any](r *routeEntry[C], entry Entry) (leave func()) {
	switch r.discipline {
	case Sequential:
		r.arbiter.Lock()
		return r.arbiter.Unlock

	case Concurrent:
		r.arbiter.RLock()
		return r.arbiter.RUnlock

	case InodeSequential:
		r.arbiter.RLock()
		entry.Lock()
		return func() {
			entry.Unlock()
			r.arbiter.RUnlock()
		}

	default:
		// register validates discipline before a routeEntry is ever
		// inserted into a table; this is unreachable in practice.
		panic("route: routeEntry has invalid discipline")
	}
}

// runContinuation invokes cont with entry's own lock held, unless r's
// discipline already holds it (InodeSequential, via enterArbiter). The
// I/O continuation reads and writes the tree entry's size and mtime;
// without this, Sequential and Concurrent handlers — which enterArbiter
// only serializes against their own route, not against the entry — could
// race that bookkeeping against a second route or a second Concurrent
// invocation touching the same entry.
func runContinuation[C any](r *routeEntry[C], entry Entry, fn func()) {
	if r.discipline == InodeSequential {
		fn()
		return
	}
	entry.Lock()
	defer entry.Unlock()
	fn()
}
