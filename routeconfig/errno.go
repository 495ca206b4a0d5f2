// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package routeconfig

import (
	"fmt"
	"syscall"
)

// errnoByName covers the errno values a canned route plausibly wants to
// return; it is not exhaustive over syscall.Errno.
var errnoByName = map[string]syscall.Errno{
	"EACCES":    syscall.EACCES,
	"EEXIST":    syscall.EEXIST,
	"EINVAL":    syscall.EINVAL,
	"EIO":       syscall.EIO,
	"EISDIR":    syscall.EISDIR,
	"ENOENT":    syscall.ENOENT,
	"ENOSPC":    syscall.ENOSPC,
	"ENOSYS":    syscall.ENOSYS,
	"ENOTDIR":   syscall.ENOTDIR,
	"ENOTEMPTY": syscall.ENOTEMPTY,
	"EPERM":     syscall.EPERM,
	"EROFS":     syscall.EROFS,
	"EXDEV":     syscall.EXDEV,
}

// parseErrno resolves a rule's errno name to a negative rc value, the
// convention every route handler in this module follows. An empty name
// resolves to 0 (success).
func parseErrno(name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	errno, ok := errnoByName[name]
	if !ok {
		return 0, fmt.Errorf("routeconfig: unknown errno %q", name)
	}
	return -int(errno), nil
}
