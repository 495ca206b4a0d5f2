// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fskit

import (
	"syscall"

	"github.com/gofskit/fskit/route"
	"github.com/gofskit/fskit/tree"
)

// Open resolves path to a file and dispatches an open() call, returning a
// Handle for subsequent Read/Write/Close calls. If no route matches, the
// file opens with no handler-supplied handle data.
func (c *Core) Open(path string, flags int) (Handle, error) {
	entry, err := c.tree.Resolve(path)
	if err != nil {
		return 0, mapTreeErr(err)
	}
	if entry.Kind() != tree.KindFile {
		return 0, syscall.EISDIR
	}

	done := c.track(route.OpOpen)
	outcome, rc, handleData := c.engine.DispatchOpen(c, path, entry, flags)
	done(outcome)
	if rc != 0 {
		return 0, rcError(rc)
	}

	h := c.allocHandle(&openHandle{entry: entry, path: path, data: handleData})
	return h, nil
}

// OpenDir resolves path to a directory and dispatches an open() call the
// same way Open does for files.
func (c *Core) OpenDir(path string) (Handle, error) {
	entry, err := c.tree.Resolve(path)
	if err != nil {
		return 0, mapTreeErr(err)
	}
	if entry.Kind() != tree.KindDir {
		return 0, syscall.ENOTDIR
	}

	done := c.track(route.OpOpen)
	outcome, rc, handleData := c.engine.DispatchOpen(c, path, entry, 0)
	done(outcome)
	if rc != 0 {
		return 0, rcError(rc)
	}

	h := c.allocHandle(&openHandle{entry: entry, path: path, dir: true, data: handleData})
	return h, nil
}
