// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package routemetrics instruments a route.Engine's dispatch path with
// Prometheus metrics: a counter of dispatches by operation kind and
// outcome, a handler-latency histogram, and a gauge of dispatches
// currently in flight per operation kind. It has no dependency on
// fskit's tree or POSIX surface; a host calls Track around its own
// Dispatch* calls.
package routemetrics
