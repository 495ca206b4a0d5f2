// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fskit glues the route dispatch engine (package route) to an
// in-memory filesystem tree (package tree) and exposes the POSIX-style
// surface a host program calls: Create, Open, Read, Write, Truncate,
// Readdir, Stat, Sync, Unlink, Rmdir, Rename, and their directory
// counterparts.
//
// Core resolves each call's path (and, for rename, both parents) via the
// tree, dispatches it through the route engine, and applies fskit's own
// default behavior — reading and writing an in-memory content blob,
// returning tree-native stat data — when no route matches.
package fskit
