// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fskit

import (
	"syscall"

	"github.com/gofskit/fskit/route"
	"github.com/gofskit/fskit/tree"
)

// Unlink removes a file. A route's handler runs before the tree entry is
// actually removed, so it can veto the removal by returning a nonzero rc.
func (c *Core) Unlink(path string) error {
	return c.detach(path, false)
}

// Rmdir removes an empty directory, the same way Unlink removes a file.
func (c *Core) Rmdir(path string) error {
	return c.detach(path, true)
}

func (c *Core) detach(path string, dir bool) error {
	parent, name, err := c.tree.ResolveParentLocked(path)
	if err != nil {
		return mapTreeErr(err)
	}
	defer parent.Unlock()

	child, ok := parent.ChildNamed(name)
	if !ok {
		return syscall.ENOENT
	}
	if dir && child.Kind() != tree.KindDir {
		return syscall.ENOTDIR
	}
	if !dir && child.Kind() == tree.KindDir {
		return syscall.EISDIR
	}

	done := c.track(route.OpDetach)
	outcome, rc := c.engine.DispatchDetach(c, path, child, child.InodeData)
	done(outcome)
	if outcome == route.Dispatched && rc != 0 {
		return rcError(rc)
	}

	if _, err := c.tree.Detach(parent, name, dir); err != nil {
		return mapTreeErr(err)
	}
	return nil
}
