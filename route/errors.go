// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package route

import "errors"

// Registration errors, returned directly to the registrant. No route is
// installed when one of these is returned.
var (
	// ErrInvalidPattern wraps the underlying regexp compiler diagnostic
	// when a route's pattern fails to compile as a POSIX extended
	// regular expression.
	ErrInvalidPattern = errors.New("route: invalid pattern")

	// ErrInvalidDiscipline is returned when a discipline other than
	// Sequential, Concurrent, or InodeSequential is passed to a Route*
	// call.
	ErrInvalidDiscipline = errors.New("route: invalid discipline")
)

// ErrNotFound is returned by an Unroute* call when the handle is unknown
// or already revoked. Passing a handle to the Unroute* of a different
// operation kind than the one it was issued under is treated the same
// way — the source library never documented this case, so it is
// deliberately not distinguished from an unknown handle.
var ErrNotFound = errors.New("route: handle not found")
