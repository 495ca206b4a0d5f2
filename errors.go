// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fskit

import (
	"errors"
	"syscall"

	"github.com/gofskit/fskit/tree"
)

// rcError converts a route handler's errno-style return code (0 for
// success, a negative errno value on failure) into a Go error. This
// mirrors the convention go-fuse itself uses (syscall.Errno implements
// error), so a handler's rc can be returned to a FUSE caller unchanged.
func rcError(rc int) error {
	if rc == 0 {
		return nil
	}
	return syscall.Errno(-rc)
}

// mapTreeErr translates a tree package error into the syscall.Errno a
// POSIX-style caller expects.
func mapTreeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tree.ErrNotFound):
		return syscall.ENOENT
	case errors.Is(err, tree.ErrNotDir):
		return syscall.ENOTDIR
	case errors.Is(err, tree.ErrIsDir):
		return syscall.EISDIR
	case errors.Is(err, tree.ErrExists):
		return syscall.EEXIST
	case errors.Is(err, tree.ErrNotEmpty):
		return syscall.ENOTEMPTY
	case errors.Is(err, tree.ErrInvalidPath):
		return syscall.EINVAL
	default:
		return syscall.EIO
	}
}
