// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package route

import "fmt"

// Engine is the route table plus the registration and dispatch surface
// built on top of it. It is generic over C, the host's "core" handle type
// passed through to every handler and I/O continuation unexamined.
//
// An Engine holds no state beyond its table; multiple independent
// filesystems in one process simply construct independent Engines.
type Engine[C any] struct {
	t *table[C]
}

// NewEngine returns an empty Engine ready to accept registrations.
func NewEngine[C any]() *Engine[C] {
	return &Engine[C]{t: newTable[C]()}
}

// UnrouteAll revokes every route on every operation kind, draining
// in-flight handlers exactly as an individual Unroute* call would.
func (e *Engine[C]) UnrouteAll() {
	e.t.removeAll()
}

// Snapshot returns a point-in-time listing of every currently registered
// route across all operation kinds, for diagnostics. It does not affect
// dispatch or hold any lock beyond its own construction.
func (e *Engine[C]) Snapshot() []RouteInfo {
	return e.t.snapshot()
}

// register validates discipline and pattern, then inserts a new route for
// op with the given handler value. handler is stored as the concrete
// XxxHandler[C] type for op; only the matching Dispatch* method ever
// type-asserts it back out.
func (e *Engine[C]) register(op Op, pattern string, handler any, d Discipline) (Handle, error) {
	if !d.valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDiscipline, int(d))
	}
	pat, err := compilePattern(pattern)
	if err != nil {
		return 0, err
	}
	r := &routeEntry[C]{
		patternSrc:  pattern,
		pattern:     pat,
		numCaptures: pat.NumSubexp(),
		discipline:  d,
		handler:     handler,
	}
	return e.t.insert(op, r), nil
}
