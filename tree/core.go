// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tree

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"syscall"

	"github.com/gofskit/fskit/lib/clock"
)

// Core is the in-memory filesystem tree: inode allocation, directory
// entries, and path resolution. It knows nothing about route dispatch;
// fskit.Core composes a tree.Core with a route.Engine.
type Core struct {
	root    *Entry
	nextIno atomic.Uint64
	clock   clock.Clock
	logger  *slog.Logger
}

// NewCore returns an empty tree with just a root directory (mode
// 0o755). clk and logger may be nil; NewCore substitutes clock.Real()
// and a no-op logger respectively.
func NewCore(clk clock.Clock, logger *slog.Logger) *Core {
	if clk == nil {
		clk = clock.Real()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}
	c := &Core{clock: clk, logger: logger}
	now := clk.Now()
	c.root = &Entry{
		ino:      c.allocIno(),
		kind:     KindDir,
		mode:     syscall.S_IFDIR | 0o755,
		children: make(map[string]*Entry),
		atime:    now,
		mtime:    now,
		ctime:    now,
		nlink:    2,
	}
	return c
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func (c *Core) allocIno() uint64 { return c.nextIno.Add(1) }

// Root returns the filesystem's root directory entry.
func (c *Core) Root() *Entry { return c.root }

// Resolve walks path from the root and returns the entry it names.
// Intermediate directories are read-locked only for the span of their
// own child lookup.
func (c *Core) Resolve(path string) (*Entry, error) {
	components := splitPath(path)
	current := c.root
	for _, name := range components {
		current.RLock()
		if current.kind != KindDir {
			current.RUnlock()
			return nil, ErrNotDir
		}
		child, ok := current.children[name]
		current.RUnlock()
		if !ok {
			return nil, ErrNotFound
		}
		current = child
	}
	return current, nil
}

// ResolveParentLocked walks to path's parent directory, returns it
// write-locked, and returns path's final component. The caller must
// call parent.Unlock() when done — typically after the route dispatch
// and any tree mutation it drives have completed.
func (c *Core) ResolveParentLocked(path string) (parent *Entry, name string, err error) {
	parentComponents, name, err := splitParent(path)
	if err != nil {
		return nil, "", err
	}
	parentEntry, err := c.Resolve("/" + joinPath(parentComponents))
	if err != nil {
		return nil, "", err
	}
	parentEntry.Lock()
	if parentEntry.kind != KindDir {
		parentEntry.Unlock()
		return nil, "", ErrNotDir
	}
	return parentEntry, name, nil
}

func joinPath(components []string) string {
	out := ""
	for i, c := range components {
		if i > 0 {
			out += "/"
		}
		out += c
	}
	return out
}

// CreateChild allocates a new entry named name under parent, which the
// caller must already hold write-locked. Returns ErrExists if an entry
// of that name is already present.
func (c *Core) CreateChild(parent *Entry, name string, kind Kind, mode uint32, uid, gid uint32) (*Entry, error) {
	if parent.kind != KindDir {
		return nil, ErrNotDir
	}
	if _, exists := parent.children[name]; exists {
		return nil, ErrExists
	}
	typeBits := uint32(syscall.S_IFREG)
	if kind == KindDir {
		typeBits = syscall.S_IFDIR
	}

	now := c.clock.Now()
	child := &Entry{
		ino:    c.allocIno(),
		kind:   kind,
		mode:   typeBits | (mode &^ syscall.S_IFMT),
		uid:    uid,
		gid:    gid,
		nlink:  1,
		parent: parent,
		name:   name,
		atime:  now,
		mtime:  now,
		ctime:  now,
	}
	if kind == KindDir {
		child.children = make(map[string]*Entry)
		child.nlink = 2
		parent.nlink++
	}
	parent.children[name] = child
	parent.mtime = now
	parent.ctime = now
	return child, nil
}

// Detach removes name from parent (already write-locked by the caller),
// enforcing the unlink/rmdir kind distinction: unlink may not remove a
// directory, rmdir may only remove an empty one. Returns the removed
// entry.
func (c *Core) Detach(parent *Entry, name string, allowDir bool) (*Entry, error) {
	child, ok := parent.children[name]
	if !ok {
		return nil, ErrNotFound
	}
	if child.kind == KindDir {
		if !allowDir {
			return nil, ErrIsDir
		}
		child.RLock()
		empty := len(child.children) == 0
		child.RUnlock()
		if !empty {
			return nil, ErrNotEmpty
		}
		parent.nlink--
	} else if allowDir {
		return nil, fmt.Errorf("tree: rmdir on non-directory %q: %w", name, ErrNotDir)
	}
	delete(parent.children, name)
	now := c.clock.Now()
	parent.mtime, parent.ctime = now, now
	return child, nil
}

// ForceDetach removes name from parent (already write-locked by the
// caller) regardless of its kind or emptiness. It exists for rolling
// back a create/mknod/mkdir whose handler reported failure — not for
// any POSIX-visible operation, which must go through Detach's unlink/
// rmdir distinction instead.
func (c *Core) ForceDetach(parent *Entry, name string) {
	if _, ok := parent.children[name]; !ok {
		return
	}
	if parent.children[name].kind == KindDir {
		parent.nlink--
	}
	delete(parent.children, name)
	now := c.clock.Now()
	parent.mtime, parent.ctime = now, now
}

// MoveChild relinks the entry named oldName under oldParent as newName
// under newParent, which must not already have an entry named newName —
// the caller is responsible for that check, since MoveChild unconditionally
// overwrites. Both parents must already be write-locked by the caller,
// typically via LockRenameParents.
func (c *Core) MoveChild(oldParent *Entry, oldName string, newParent *Entry, newName string) {
	child := oldParent.children[oldName]
	delete(oldParent.children, oldName)
	newParent.children[newName] = child
	child.parent = newParent
	child.name = newName

	now := c.clock.Now()
	if oldParent != newParent {
		if child.kind == KindDir {
			oldParent.nlink--
			newParent.nlink++
		}
		oldParent.mtime, oldParent.ctime = now, now
	}
	newParent.mtime, newParent.ctime = now, now
	child.ctime = now
}

// LockRenameParents resolves both the source and destination parent
// directories and locks them in a fixed global order — by ascending
// inode number, with a single lock taken when both paths share a
// parent — so that two concurrent renames crossing the same two
// directories in opposite directions can never deadlock. The caller
// unlocks each parent once. When both paths share a parent, that entry
// is locked once and returned as both oldParent and newParent, and the
// caller must unlock it exactly once.
func (c *Core) LockRenameParents(oldPath, newPath string) (oldParent *Entry, oldName string, newParent *Entry, newName string, err error) {
	oldParentComponents, oldName, err := splitParent(oldPath)
	if err != nil {
		return nil, "", nil, "", err
	}
	newParentComponents, newName, err := splitParent(newPath)
	if err != nil {
		return nil, "", nil, "", err
	}

	oldParentEntry, err := c.Resolve("/" + joinPath(oldParentComponents))
	if err != nil {
		return nil, "", nil, "", err
	}
	newParentEntry, err := c.Resolve("/" + joinPath(newParentComponents))
	if err != nil {
		return nil, "", nil, "", err
	}

	if oldParentEntry == newParentEntry {
		oldParentEntry.Lock()
		return oldParentEntry, oldName, oldParentEntry, newName, nil
	}

	first, second := oldParentEntry, newParentEntry
	if second.ino < first.ino {
		first, second = second, first
	}
	first.Lock()
	second.Lock()
	return oldParentEntry, oldName, newParentEntry, newName, nil
}
