// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fskit

import (
	"github.com/gofskit/fskit/route"
)

// Stat resolves path and fills a route.Stat. With no matching route, the
// tree's own attributes are reported directly.
func (c *Core) Stat(path string) (route.Stat, error) {
	entry, err := c.tree.Resolve(path)
	if err != nil {
		return route.Stat{}, mapTreeErr(err)
	}

	entry.RLock()
	out := route.Stat{
		Mode:  entry.Mode(),
		Size:  entry.Size(),
		Uid:   entry.Uid(),
		Gid:   entry.Gid(),
		Nlink: entry.Nlink(),
		Atime: entry.Atime(),
		Mtime: entry.Mtime(),
		Ctime: entry.Ctime(),
	}
	entry.RUnlock()

	done := c.track(route.OpStat)
	outcome, rc := c.engine.DispatchStat(c, path, entry, &out)
	done(outcome)
	if outcome == route.Dispatched && rc != 0 {
		return route.Stat{}, rcError(rc)
	}
	return out, nil
}

// Sync dispatches an fsync()/fdatasync() call for path. With no matching
// route, it is a no-op success — an in-memory filesystem has nothing to
// flush to a device.
func (c *Core) Sync(path string) error {
	entry, err := c.tree.Resolve(path)
	if err != nil {
		return mapTreeErr(err)
	}

	done := c.track(route.OpSync)
	outcome, rc := c.engine.DispatchSync(c, path, entry)
	done(outcome)
	if outcome == route.Dispatched {
		return rcError(rc)
	}
	return nil
}
