// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package routeconfig loads a static set of canned routes from YAML,
// for the common case of a route that just needs to return a fixed
// errno for a matched operation — a read-only overlay, a denied
// subtree, a stub device node — without writing a Go handler.
//
// A rule that needs to inspect or transform data still needs a real
// handler registered directly with route.Engine; routeconfig only
// covers the fixed-outcome case.
package routeconfig
