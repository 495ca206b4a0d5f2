// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package route implements the dispatch engine at the heart of fskit: the
// table of (pattern, operation, handler, discipline) rules bound to
// absolute paths, the matcher that picks the first rule matching an
// incoming filesystem operation, and the arbiter that runs the chosen
// handler under the locking discipline the rule asked for.
//
// The engine is generic over the host's "core" type (the handle a handler
// receives back so it can call into the rest of the host's filesystem).
// It knows nothing about inode allocation, directory entries, or path
// walking — those are the tree collaborator's job. All the engine asks of
// an inode is that it can hold its own writer lock for the span of an
// inode-sequential handler; see Entry.
//
// Route registration is organized by operation kind: create, mknod,
// mkdir, open (also used for opendir), close (also used for closedir),
// readdir, read, write, trunc, detach (unlink and rmdir), stat, sync, and
// rename. Each kind has its own handler function type, its own route
// table, and its own Route*/Unroute* method pair — mirroring the original
// C library's one function per (verb, operation) pair rather than folding
// them behind a single untyped registration call.
package route
