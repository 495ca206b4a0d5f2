// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package route

// Each operation kind has its own handler function type rather than a
// single untyped callback behind a union, per the tagged-variant
// rendition of the source library's discriminated union: the Op field on
// a stored route says which of these a rule's handler actually is, and
// the corresponding Dispatch* method is the only code that ever asserts
// the type back out.
//
// Every handler's rc follows the same contract: 0 on success, a negative
// errno-style value on failure. A non-zero rc suppresses the I/O
// continuation for read, write, and trunc.
type (
	// CreateHandler backs routes registered with Engine.RouteCreate. It
	// receives the requested mode and returns handler-defined inode and
	// handle data alongside its rc.
	CreateHandler[C any] func(core C, meta *Metadata, entry Entry, mode uint32) (rc int, inodeData, handleData any)

	// MknodHandler backs routes registered with Engine.RouteMknod.
	MknodHandler[C any] func(core C, meta *Metadata, entry Entry, mode uint32, dev uint64) (rc int, inodeData any)

	// MkdirHandler backs routes registered with Engine.RouteMkdir.
	MkdirHandler[C any] func(core C, meta *Metadata, entry Entry, mode uint32) (rc int, inodeData any)

	// OpenHandler backs routes registered with Engine.RouteOpen. It
	// serves both open() and opendir() — the two share a signature in
	// the source library and gain nothing from being split here.
	OpenHandler[C any] func(core C, meta *Metadata, entry Entry, flags int) (rc int, handleData any)

	// CloseHandler backs routes registered with Engine.RouteClose,
	// serving both close() and closedir().
	CloseHandler[C any] func(core C, meta *Metadata, entry Entry, handleData any) (rc int)

	// IOHandler backs routes registered with Engine.RouteRead and
	// Engine.RouteWrite. For read, buf is an output parameter the
	// handler fills; for write, buf holds the caller's bytes. n is the
	// number of bytes actually read or written.
	IOHandler[C any] func(core C, meta *Metadata, entry Entry, buf []byte, off int64, handleData any) (n int, rc int)

	// TruncHandler backs routes registered with Engine.RouteTrunc.
	TruncHandler[C any] func(core C, meta *Metadata, entry Entry, size int64, handleData any) (rc int)

	// StatHandler backs routes registered with Engine.RouteStat. It
	// fills out in place.
	StatHandler[C any] func(core C, meta *Metadata, entry Entry, out *Stat) (rc int)

	// ReaddirHandler backs routes registered with Engine.RouteReaddir.
	// It may return a rewritten slice of entries; a nil mutated leaves
	// dents unchanged.
	ReaddirHandler[C any] func(core C, meta *Metadata, entry Entry, dents []DirEntry) (rc int, mutated []DirEntry)

	// DetachHandler backs routes registered with Engine.RouteDetach,
	// serving both unlink() and rmdir().
	DetachHandler[C any] func(core C, meta *Metadata, entry Entry, inodeData any) (rc int)

	// SyncHandler backs routes registered with Engine.RouteSync.
	SyncHandler[C any] func(core C, meta *Metadata, entry Entry) (rc int)

	// RenameHandler backs routes registered with Engine.RouteRename.
	// Both parents are already write-locked by the caller when the
	// handler runs. The handler is given only the destination parent
	// (newParent, also meta.NewParent), not the source parent, and must
	// not unlock either.
	RenameHandler[C any] func(core C, meta *Metadata, entry Entry, newPath string, newParent Entry) (rc int)
)

// IOContinuation runs immediately after a successful read, write, or
// trunc handler returns, so that attribute bookkeeping (size, mtime, and
// any collaborator-specific state) happens atomically with the handler's
// own effect. It never runs when the handler's rc is nonzero. The engine
// always holds entry's write lock for the call — either because the
// route's discipline already does (InodeSequential) or because
// runContinuation acquires it — so a continuation never races a second
// route or a second Concurrent invocation touching the same entry.
// Splitting this into a callback the caller invokes after Dispatch
// returns would reopen that race; it must run before the arbiter is
// released.
type IOContinuation[C any] func(core C, entry Entry, offset int64, resultSize int)
