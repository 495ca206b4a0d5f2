// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tree implements the in-memory filesystem tree that fskit's route
// engine dispatches against: inode allocation, directory entries, path
// walking, and the per-entry locks the route engine's inode-sequential
// discipline borrows.
//
// The tree knows nothing about routing. It exposes Entry values that
// satisfy route.Entry (Lock/Unlock) and a Core that resolves paths to
// entries and parents. The fskit package glues tree and route together.
package tree
