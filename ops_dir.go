// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fskit

import (
	"syscall"

	"github.com/gofskit/fskit/route"
)

// Readdir lists the directory identified by handle. With no matching
// route, it lists the tree's own children directly.
func (c *Core) Readdir(handle Handle) ([]route.DirEntry, error) {
	oh, ok := c.lookupHandle(handle)
	if !ok || !oh.dir {
		return nil, syscall.EBADF
	}

	oh.entry.RLock()
	children := oh.entry.Children()
	dents := make([]route.DirEntry, len(children))
	for i, child := range children {
		dents[i] = route.DirEntry{Name: child.Name(), Mode: child.Mode()}
	}
	oh.entry.RUnlock()

	done := c.track(route.OpReaddir)
	outcome, rc, mutated := c.engine.DispatchReaddir(c, oh.path, oh.entry, dents)
	done(outcome)
	if outcome != route.Dispatched {
		return dents, nil
	}
	if rc != 0 {
		return nil, rcError(rc)
	}
	if mutated != nil {
		return mutated, nil
	}
	return dents, nil
}
