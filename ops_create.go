// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fskit

import (
	"github.com/gofskit/fskit/route"
	"github.com/gofskit/fskit/tree"
)

// Create makes a new file at path and opens it, returning a Handle. If a
// route matches, its handler decides the outcome; a nonzero handler
// return code rolls back the tree entry this call optimistically
// created. If no route matches, the file is created with the given mode
// and opened with no handler-supplied handle data.
func (c *Core) Create(path string, mode uint32, uid, gid uint32) (Handle, error) {
	parent, name, err := c.tree.ResolveParentLocked(path)
	if err != nil {
		return 0, mapTreeErr(err)
	}

	child, err := c.tree.CreateChild(parent, name, tree.KindFile, mode, uid, gid)
	if err != nil {
		parent.Unlock()
		return 0, mapTreeErr(err)
	}

	done := c.track(route.OpCreate)
	outcome, rc, inodeData, handleData := c.engine.DispatchCreate(c, path, parent, child, mode)
	done(outcome)
	parent.Unlock()

	if outcome == route.Dispatched && rc != 0 {
		c.rollbackCreate(parent, name)
		return 0, rcError(rc)
	}
	if outcome == route.Dispatched {
		child.InodeData = inodeData
	}

	h := c.allocHandle(&openHandle{entry: child, path: path, data: handleData})
	return h, nil
}

// Mknod creates a file node without opening it. The node is always a
// regular file: any type bits in mode are replaced with S_IFREG, and dev
// is only passed to a matching mknod handler.
func (c *Core) Mknod(path string, mode uint32, dev uint64, uid, gid uint32) error {
	parent, name, err := c.tree.ResolveParentLocked(path)
	if err != nil {
		return mapTreeErr(err)
	}

	child, err := c.tree.CreateChild(parent, name, tree.KindFile, mode, uid, gid)
	if err != nil {
		parent.Unlock()
		return mapTreeErr(err)
	}

	done := c.track(route.OpMknod)
	outcome, rc, inodeData := c.engine.DispatchMknod(c, path, parent, child, mode, dev)
	done(outcome)
	parent.Unlock()

	if outcome == route.Dispatched && rc != 0 {
		c.rollbackCreate(parent, name)
		return rcError(rc)
	}
	if outcome == route.Dispatched {
		child.InodeData = inodeData
	}
	return nil
}

// Mkdir creates a new directory at path.
func (c *Core) Mkdir(path string, mode uint32, uid, gid uint32) error {
	parent, name, err := c.tree.ResolveParentLocked(path)
	if err != nil {
		return mapTreeErr(err)
	}

	child, err := c.tree.CreateChild(parent, name, tree.KindDir, mode, uid, gid)
	if err != nil {
		parent.Unlock()
		return mapTreeErr(err)
	}

	done := c.track(route.OpMkdir)
	outcome, rc, inodeData := c.engine.DispatchMkdir(c, path, parent, child, mode)
	done(outcome)
	parent.Unlock()

	if outcome == route.Dispatched && rc != 0 {
		c.rollbackCreate(parent, name)
		return rcError(rc)
	}
	if outcome == route.Dispatched {
		child.InodeData = inodeData
	}
	return nil
}

// rollbackCreate detaches a just-created entry after its create/mknod/
// mkdir handler reported failure, so a failed creation leaves no trace
// in the tree.
func (c *Core) rollbackCreate(parent *tree.Entry, name string) {
	parent.Lock()
	c.tree.ForceDetach(parent, name)
	parent.Unlock()
}
