// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tree

import (
	"sync"
	"time"

	"github.com/gofskit/fskit/memblob"
)

// Kind distinguishes the two inode types the tree supports.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Entry is one inode: a file or a directory. Its own rw-lock is the lock
// route.InodeSequential routes borrow (Entry satisfies route.Entry via
// Lock/Unlock); most tree bookkeeping additionally takes the lock in
// reader mode through RLock/RUnlock so that concurrent stat/readdir calls
// don't contend with each other.
//
// Fields below are only safe to read or write while the entry's own lock
// is held; Core's path-walking methods enforce this by construction.
type Entry struct {
	mu sync.RWMutex

	ino  uint64
	kind Kind

	mode  uint32
	uid   uint32
	gid   uint32
	nlink uint32
	size  int64

	atime time.Time
	mtime time.Time
	ctime time.Time

	parent   *Entry
	name     string
	children map[string]*Entry

	blob *memblob.Blob

	// InodeData is a slot a create/mknod/mkdir handler may use to stash
	// its own per-inode state; the tree never inspects it.
	InodeData any
}

// Lock and Unlock satisfy route.Entry, letting the route engine's
// inode-sequential discipline serialize handlers per entry.
func (e *Entry) Lock()    { e.mu.Lock() }
func (e *Entry) Unlock()  { e.mu.Unlock() }
func (e *Entry) RLock()   { e.mu.RLock() }
func (e *Entry) RUnlock() { e.mu.RUnlock() }

// Ino returns the entry's stable inode number.
func (e *Entry) Ino() uint64 { return e.ino }

// Kind returns whether the entry is a file or a directory.
func (e *Entry) Kind() Kind { return e.kind }

// Mode returns the entry's POSIX permission and type bits.
func (e *Entry) Mode() uint32 { return e.mode }

// SetMode overwrites the entry's whole mode, type bits included. Caller
// must hold the entry's write lock.
func (e *Entry) SetMode(mode uint32) { e.mode = mode }

// Uid, Gid return the entry's owning user and group.
func (e *Entry) Uid() uint32 { return e.uid }
func (e *Entry) Gid() uint32 { return e.gid }

// SetOwner sets uid and gid. Caller must hold the entry's write lock.
func (e *Entry) SetOwner(uid, gid uint32) { e.uid, e.gid = uid, gid }

// Size returns the file's content length. Zero for directories.
func (e *Entry) Size() int64 { return e.size }

// SetSize overwrites the entry's recorded size. Caller must hold the
// entry's write lock. Called by fskit's I/O continuations after a
// successful routed read, write or truncate, and by its no-route Write and
// Truncate fallbacks; CreateChild leaves a new entry's size at zero.
func (e *Entry) SetSize(size int64) { e.size = size }

// Atime, Mtime, Ctime return the entry's POSIX timestamps.
func (e *Entry) Atime() time.Time { return e.atime }
func (e *Entry) Mtime() time.Time { return e.mtime }
func (e *Entry) Ctime() time.Time { return e.ctime }

// Touch updates mtime and ctime to now. Caller must hold the entry's
// write lock.
func (e *Entry) Touch(now time.Time) { e.mtime, e.ctime = now, now }

// TouchAtime updates atime to now. Caller must hold at least the entry's
// read lock (atime updates are best-effort and don't need serialization
// against readers).
func (e *Entry) TouchAtime(now time.Time) { e.atime = now }

// Blob returns the entry's content-addressed backing store. Nil for
// directories, and for files that have never been written to.
func (e *Entry) Blob() *memblob.Blob { return e.blob }

// SetBlob replaces the entry's backing store. Caller must hold the
// entry's write lock.
func (e *Entry) SetBlob(b *memblob.Blob) { e.blob = b }

// Name returns the entry's name within its parent directory. Empty for
// the root.
func (e *Entry) Name() string { return e.name }

// Parent returns the entry's parent directory, or nil for the root.
func (e *Entry) Parent() *Entry { return e.parent }

// Nlink returns the entry's link count.
func (e *Entry) Nlink() uint32 { return e.nlink }

// Children returns a snapshot of the directory's entries in no
// particular order. Caller must hold at least the entry's read lock.
// Panics if called on a file.
func (e *Entry) Children() []*Entry {
	if e.kind != KindDir {
		panic("tree: Children called on a non-directory entry")
	}
	out := make([]*Entry, 0, len(e.children))
	for _, child := range e.children {
		out = append(out, child)
	}
	return out
}

// ChildNamed looks up a single child by name without allocating a
// snapshot of the whole directory. Caller must hold at least the entry's
// read lock. Panics if called on a file.
func (e *Entry) ChildNamed(name string) (*Entry, bool) {
	if e.kind != KindDir {
		panic("tree: ChildNamed called on a non-directory entry")
	}
	child, ok := e.children[name]
	return child, ok
}
