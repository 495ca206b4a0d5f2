// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fuseadapter mounts an fskit.Core as a real FUSE filesystem
// using go-fuse. It is a thin translation layer: every go-fuse node
// callback resolves to an absolute path and calls straight into the
// corresponding fskit.Core operation, so a route registered on the Core
// observes exactly the same dispatch a program driving the Core
// in-process would see. The adapter itself holds no filesystem state —
// fskit.Core's tree is the only source of truth — beyond the small
// per-open fileHandle needed to satisfy go-fuse's handle-based Read/
// Write/Flush/Release contract.
package fuseadapter
