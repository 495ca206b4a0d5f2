// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fuseadapter

import (
	"context"
	"syscall"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"

	"github.com/gofskit/fskit"
)

// fileHandle proxies go-fuse's handle-based Read/Write/Flush/Release
// contract onto a single fskit.Handle. Unlike node, which is safe to
// share across every open of the same path, one fileHandle exists per
// open call — matching a POSIX file descriptor's own lifetime.
type fileHandle struct {
	core   *fskit.Core
	handle fskit.Handle
}

var (
	_ gofuse.FileReader   = (*fileHandle)(nil)
	_ gofuse.FileWriter   = (*fileHandle)(nil)
	_ gofuse.FileFlusher  = (*fileHandle)(nil)
	_ gofuse.FileReleaser = (*fileHandle)(nil)
)

func (h *fileHandle) Read(ctx context.Context, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	n, err := h.core.Read(h.handle, dest, off)
	if err != nil {
		return nil, errnoOf(err)
	}
	return fuse.ReadResultData(dest[:n]), 0
}

func (h *fileHandle) Write(ctx context.Context, data []byte, off int64) (uint32, syscall.Errno) {
	n, err := h.core.Write(h.handle, data, off)
	if err != nil {
		return 0, errnoOf(err)
	}
	return uint32(n), 0
}

// Flush is a no-op: fskit.Core.Write already applies each write
// synchronously, so there is nothing buffered to finalize. release
// closes the underlying fskit.Handle.
func (h *fileHandle) Flush(ctx context.Context) syscall.Errno { return 0 }

func (h *fileHandle) Release(ctx context.Context) syscall.Errno {
	return errnoOf(h.core.Close(h.handle))
}
