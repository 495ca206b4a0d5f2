// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package memblob is the in-memory, content-addressed backing store for a
// tree file's bytes. It hashes stored content with a keyed BLAKE3 digest
// (domain-separated the way the artifact packages this module is
// descended from key their hashes) and transparently zstd-compresses
// blobs above a size threshold, decompressing on read.
//
// A Blob is not a route.Entry; it never participates in dispatch locking.
// It is the payload a tree.Entry points at, replaced wholesale on write
// or truncate under the entry's own lock.
package memblob
