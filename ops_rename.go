// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fskit

import (
	"syscall"

	"github.com/gofskit/fskit/route"
)

// Rename moves the entry at oldPath to newPath, locking both parent
// directories in a fixed global order to avoid deadlocking against a
// concurrent rename crossing the same two directories. A route's handler
// runs before the tree mutation, so it can veto the rename.
func (c *Core) Rename(oldPath, newPath string) error {
	oldParent, oldName, newParent, newName, err := c.tree.LockRenameParents(oldPath, newPath)
	if err != nil {
		return mapTreeErr(err)
	}
	unlock := func() {
		oldParent.Unlock()
		if newParent != oldParent {
			newParent.Unlock()
		}
	}

	entry, ok := oldParent.ChildNamed(oldName)
	if !ok {
		unlock()
		return syscall.ENOENT
	}
	if _, exists := newParent.ChildNamed(newName); exists {
		unlock()
		return syscall.EEXIST
	}

	done := c.track(route.OpRename)
	outcome, rc := c.engine.DispatchRename(c, oldPath, entry, newPath, newParent)
	done(outcome)
	if outcome == route.Dispatched && rc != 0 {
		unlock()
		return rcError(rc)
	}

	c.tree.MoveChild(oldParent, oldName, newParent, newName)
	unlock()
	return nil
}
