// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package diag serializes a route.Engine's registered routes for
// debugging and telemetry. It has no dependency on fskit itself: any
// host built on the route package can hand its engine's Snapshot to
// this package and get back a stable, inspectable wire form.
package diag
