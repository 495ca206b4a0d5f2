// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package route

// This file is the dispatcher: one Dispatch* method per operation kind,
// mirroring the source library's fskit_route_call_<op> functions. Each
// follows the same shape spec.md lays out:
//
//  1. Match op/path under a released-before-handler table reader hold.
//  2. On no match, return Outcome=NoRoute without entering the arbiter.
//  3. Enter the arbiter per the matched route's discipline.
//  4. Invoke the handler.
//  5. For read/write/trunc, run the I/O continuation inside the same
//     critical section, but only when the handler reported success.
//  6. Leave the arbiter (deferred, so it runs on every exit path).

// DispatchCreate dispatches a create() call. parent is the write-locked
// parent directory entry; entry is the newly allocated child the tree
// collaborator created (and already linked under parent) for this call.
func (e *Engine[C]) DispatchCreate(core C, path string, parent, entry Entry, mode uint32) (outcome Outcome, rc int, inodeData, handleData any) {
	r, meta, ok := e.t.match(OpCreate, path)
	if !ok {
		return NoRoute, 0, nil, nil
	}
	meta.parent = parent

	leave := enterArbiter(r, entry)
	defer leave()

	h := r.handler.(CreateHandler[C])
	rc, inodeData, handleData = h(core, meta, entry, mode)
	return Dispatched, rc, inodeData, handleData
}

// DispatchMknod dispatches a mknod() call.
func (e *Engine[C]) DispatchMknod(core C, path string, parent, entry Entry, mode uint32, dev uint64) (outcome Outcome, rc int, inodeData any) {
	r, meta, ok := e.t.match(OpMknod, path)
	if !ok {
		return NoRoute, 0, nil
	}
	meta.parent = parent

	leave := enterArbiter(r, entry)
	defer leave()

	h := r.handler.(MknodHandler[C])
	rc, inodeData = h(core, meta, entry, mode, dev)
	return Dispatched, rc, inodeData
}

// DispatchMkdir dispatches a mkdir() call.
func (e *Engine[C]) DispatchMkdir(core C, path string, parent, entry Entry, mode uint32) (outcome Outcome, rc int, inodeData any) {
	r, meta, ok := e.t.match(OpMkdir, path)
	if !ok {
		return NoRoute, 0, nil
	}
	meta.parent = parent

	leave := enterArbiter(r, entry)
	defer leave()

	h := r.handler.(MkdirHandler[C])
	rc, inodeData = h(core, meta, entry, mode)
	return Dispatched, rc, inodeData
}

// DispatchOpen dispatches an open() or opendir() call.
func (e *Engine[C]) DispatchOpen(core C, path string, entry Entry, flags int) (outcome Outcome, rc int, handleData any) {
	r, meta, ok := e.t.match(OpOpen, path)
	if !ok {
		return NoRoute, 0, nil
	}

	leave := enterArbiter(r, entry)
	defer leave()

	h := r.handler.(OpenHandler[C])
	rc, handleData = h(core, meta, entry, flags)
	return Dispatched, rc, handleData
}

// DispatchClose dispatches a close() or closedir() call.
func (e *Engine[C]) DispatchClose(core C, path string, entry Entry, handleData any) (outcome Outcome, rc int) {
	r, meta, ok := e.t.match(OpClose, path)
	if !ok {
		return NoRoute, 0
	}

	leave := enterArbiter(r, entry)
	defer leave()

	h := r.handler.(CloseHandler[C])
	rc = h(core, meta, entry, handleData)
	return Dispatched, rc
}

// DispatchReaddir dispatches a readdir() call. mutated is nil when the
// handler left dents unchanged.
func (e *Engine[C]) DispatchReaddir(core C, path string, entry Entry, dents []DirEntry) (outcome Outcome, rc int, mutated []DirEntry) {
	r, meta, ok := e.t.match(OpReaddir, path)
	if !ok {
		return NoRoute, 0, nil
	}

	leave := enterArbiter(r, entry)
	defer leave()

	h := r.handler.(ReaddirHandler[C])
	rc, mutated = h(core, meta, entry, dents)
	return Dispatched, rc, mutated
}

// DispatchRead dispatches a read() call. On a successful handler return
// (rc == 0), cont — if non-nil — runs inside the same critical section
// with the number of bytes read.
func (e *Engine[C]) DispatchRead(core C, path string, entry Entry, buf []byte, off int64, handleData any, cont IOContinuation[C]) (outcome Outcome, n, rc int) {
	r, meta, ok := e.t.match(OpRead, path)
	if !ok {
		return NoRoute, 0, 0
	}

	leave := enterArbiter(r, entry)
	defer leave()

	h := r.handler.(IOHandler[C])
	n, rc = h(core, meta, entry, buf, off, handleData)
	if rc == 0 && cont != nil {
		runContinuation(r, entry, func() { cont(core, entry, off, n) })
	}
	return Dispatched, n, rc
}

// DispatchWrite dispatches a write() call. On a successful handler return
// (rc == 0), cont — if non-nil — runs inside the same critical section
// with the number of bytes written.
func (e *Engine[C]) DispatchWrite(core C, path string, entry Entry, buf []byte, off int64, handleData any, cont IOContinuation[C]) (outcome Outcome, n, rc int) {
	r, meta, ok := e.t.match(OpWrite, path)
	if !ok {
		return NoRoute, 0, 0
	}

	leave := enterArbiter(r, entry)
	defer leave()

	h := r.handler.(IOHandler[C])
	n, rc = h(core, meta, entry, buf, off, handleData)
	if rc == 0 && cont != nil {
		runContinuation(r, entry, func() { cont(core, entry, off, n) })
	}
	return Dispatched, n, rc
}

// DispatchTrunc dispatches a truncate() call. On a successful handler
// return (rc == 0), cont — if non-nil — runs inside the same critical
// section with resultSize equal to size.
func (e *Engine[C]) DispatchTrunc(core C, path string, entry Entry, size int64, handleData any, cont IOContinuation[C]) (outcome Outcome, rc int) {
	r, meta, ok := e.t.match(OpTrunc, path)
	if !ok {
		return NoRoute, 0
	}

	leave := enterArbiter(r, entry)
	defer leave()

	h := r.handler.(TruncHandler[C])
	rc = h(core, meta, entry, size, handleData)
	if rc == 0 && cont != nil {
		runContinuation(r, entry, func() { cont(core, entry, size, int(size)) })
	}
	return Dispatched, rc
}

// DispatchDetach dispatches an unlink() or rmdir() call.
func (e *Engine[C]) DispatchDetach(core C, path string, entry Entry, inodeData any) (outcome Outcome, rc int) {
	r, meta, ok := e.t.match(OpDetach, path)
	if !ok {
		return NoRoute, 0
	}

	leave := enterArbiter(r, entry)
	defer leave()

	h := r.handler.(DetachHandler[C])
	rc = h(core, meta, entry, inodeData)
	return Dispatched, rc
}

// DispatchStat dispatches a stat() call, filling out in place.
func (e *Engine[C]) DispatchStat(core C, path string, entry Entry, out *Stat) (outcome Outcome, rc int) {
	r, meta, ok := e.t.match(OpStat, path)
	if !ok {
		return NoRoute, 0
	}

	leave := enterArbiter(r, entry)
	defer leave()

	h := r.handler.(StatHandler[C])
	rc = h(core, meta, entry, out)
	return Dispatched, rc
}

// DispatchSync dispatches an fsync()/fdatasync() call.
func (e *Engine[C]) DispatchSync(core C, path string, entry Entry) (outcome Outcome, rc int) {
	r, meta, ok := e.t.match(OpSync, path)
	if !ok {
		return NoRoute, 0
	}

	leave := enterArbiter(r, entry)
	defer leave()

	h := r.handler.(SyncHandler[C])
	rc = h(core, meta, entry)
	return Dispatched, rc
}

// DispatchRename dispatches a rename() call. Both entry's current parent
// and newParent must already be write-locked by the caller (the tree
// collaborator) before this is called, in a fixed global order to avoid
// deadlock. The handler is given newParent (also via Metadata.NewParent)
// but not the source parent; Metadata.Parent is nil for rename. The
// engine never unlocks either parent.
func (e *Engine[C]) DispatchRename(core C, oldPath string, entry Entry, newPath string, newParent Entry) (outcome Outcome, rc int) {
	r, meta, ok := e.t.match(OpRename, oldPath)
	if !ok {
		return NoRoute, 0
	}
	meta.newParent = newParent
	meta.newPath = newPath

	leave := enterArbiter(r, entry)
	defer leave()

	h := r.handler.(RenameHandler[C])
	rc = h(core, meta, entry, newPath, newParent)
	return Dispatched, rc
}
