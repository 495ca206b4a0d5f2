// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fskit

import (
	"syscall"

	"github.com/gofskit/fskit/memblob"
	"github.com/gofskit/fskit/route"
	"github.com/gofskit/fskit/tree"
)

// ioContinuation returns the IOContinuation the read/write dispatch
// runs on a successful handler return. It updates the tree entry's size
// and mtime/ctime, keeping those consistent with the handler's own
// bookkeeping. The engine holds entry's write lock for the call unless
// the route's discipline already does (InodeSequential), so this never
// needs to lock entry itself.
func (c *Core) ioContinuation() route.IOContinuation[*Core] {
	return func(core *Core, entry route.Entry, off int64, n int) {
		te := entry.(*tree.Entry)
		now := core.clock.Now()
		if end := off + int64(n); end > te.Size() {
			te.SetSize(end)
		}
		te.Touch(now)
	}
}

// Read reads up to len(buf) bytes at off from the file identified by
// handle. With no matching route, it reads from the entry's blob,
// zero-filling any span past the blob's length up to the entry's
// recorded size.
func (c *Core) Read(handle Handle, buf []byte, off int64) (int, error) {
	oh, ok := c.lookupHandle(handle)
	if !ok || oh.dir {
		return 0, syscall.EBADF
	}

	done := c.track(route.OpRead)
	outcome, n, rc := c.engine.DispatchRead(c, oh.path, oh.entry, buf, off, oh.data, c.ioContinuation())
	done(outcome)
	if outcome == route.Dispatched {
		if rc != 0 {
			return 0, rcError(rc)
		}
		return n, nil
	}

	oh.entry.RLock()
	blob := oh.entry.Blob()
	size := oh.entry.Size()
	oh.entry.RUnlock()

	if off >= size {
		return 0, nil
	}
	end := off + int64(len(buf))
	if end > size {
		end = size
	}
	n = int(end - off)

	if blob == nil {
		clear(buf[:n])
		return n, nil
	}
	data, err := blob.Bytes()
	if err != nil {
		return 0, syscall.EIO
	}
	if end > int64(len(data)) {
		// entry.Size() extends past the blob's own content (a route's
		// I/O continuation grew size without writing the blob, or a
		// prior truncate grew the file); serve zeros for the gap.
		if off >= int64(len(data)) {
			clear(buf[:n])
		} else {
			avail := int64(len(data)) - off
			copy(buf[:avail], data[off:])
			clear(buf[avail:n])
		}
	} else {
		copy(buf[:n], data[off:end])
	}

	oh.entry.Lock()
	oh.entry.TouchAtime(c.clock.Now())
	oh.entry.Unlock()
	return n, nil
}

// Write writes buf at off to the file identified by handle. With no
// matching route, it splices buf into a copy of the entry's current
// content and replaces the entry's blob with the result.
func (c *Core) Write(handle Handle, buf []byte, off int64) (int, error) {
	oh, ok := c.lookupHandle(handle)
	if !ok || oh.dir {
		return 0, syscall.EBADF
	}

	done := c.track(route.OpWrite)
	outcome, n, rc := c.engine.DispatchWrite(c, oh.path, oh.entry, buf, off, oh.data, c.ioContinuation())
	done(outcome)
	if outcome == route.Dispatched {
		if rc != 0 {
			return 0, rcError(rc)
		}
		return n, nil
	}

	oh.entry.Lock()
	defer oh.entry.Unlock()

	var existing []byte
	if b := oh.entry.Blob(); b != nil {
		data, err := b.Bytes()
		if err != nil {
			return 0, syscall.EIO
		}
		existing = data
	}

	end := off + int64(len(buf))
	merged := existing
	if end > int64(len(merged)) {
		grown := make([]byte, end)
		copy(grown, merged)
		merged = grown
	} else {
		merged = append([]byte(nil), merged...)
	}
	copy(merged[off:end], buf)

	oh.entry.SetBlob(memblob.New(merged))
	if end > oh.entry.Size() {
		oh.entry.SetSize(end)
	}
	oh.entry.Touch(c.clock.Now())
	return len(buf), nil
}

// Truncate resizes the file at path. With no matching route, it splices
// the entry's blob to the new size, zero-extending on growth.
func (c *Core) Truncate(path string, size int64) error {
	entry, err := c.tree.Resolve(path)
	if err != nil {
		return mapTreeErr(err)
	}
	if entry.Kind() != tree.KindFile {
		return syscall.EISDIR
	}

	done := c.track(route.OpTrunc)
	outcome, rc := c.engine.DispatchTrunc(c, path, entry, size, nil, func(core *Core, e route.Entry, _ int64, _ int) {
		te := e.(*tree.Entry)
		te.SetSize(size)
		te.Touch(core.clock.Now())
	})
	done(outcome)
	if outcome == route.Dispatched {
		return rcError(rc)
	}

	entry.Lock()
	defer entry.Unlock()

	var existing []byte
	if b := entry.Blob(); b != nil {
		data, err := b.Bytes()
		if err != nil {
			return syscall.EIO
		}
		existing = data
	}
	resized := make([]byte, size)
	copy(resized, existing)
	entry.SetBlob(memblob.New(resized))
	entry.SetSize(size)
	entry.Touch(c.clock.Now())
	return nil
}

// Close dispatches a close() or closedir() call and releases handle. The
// handle is dropped from the table regardless of the handler's rc, since
// a failed close still ends the handle's lifetime.
func (c *Core) Close(handle Handle) error {
	oh, ok := c.lookupHandle(handle)
	if !ok {
		return syscall.EBADF
	}
	defer c.dropHandle(handle)

	done := c.track(route.OpClose)
	outcome, rc := c.engine.DispatchClose(c, oh.path, oh.entry, oh.data)
	done(outcome)
	return rcError(rc)
}
