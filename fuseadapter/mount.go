// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fuseadapter

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"

	"github.com/gofskit/fskit"
)

const (
	entryTimeout    = 1 * time.Second
	attrTimeout     = 1 * time.Second
	negativeTimeout = 100 * time.Millisecond
)

// Options configures a FUSE mount of an fskit.Core.
type Options struct {
	// Mountpoint is the directory where the filesystem is mounted. It
	// is created if it does not already exist.
	Mountpoint string

	// Core is the fskit instance to serve. Routes registered on it
	// before or after Mount take effect on the next matching FUSE
	// call; Mount itself never registers a route.
	Core *fskit.Core

	// AllowOther permits other users, including root, to access the
	// mount. Requires user_allow_other in /etc/fuse.conf.
	AllowOther bool

	// Logger receives diagnostic messages. If nil, a no-op logger is
	// used.
	Logger *slog.Logger
}

// Mount mounts core at options.Mountpoint. The caller must call Unmount
// on the returned Server when done.
func Mount(options Options) (*fuse.Server, error) {
	if options.Mountpoint == "" {
		return nil, fmt.Errorf("fuseadapter: mountpoint is required")
	}
	if options.Core == nil {
		return nil, fmt.Errorf("fuseadapter: core is required")
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	}
	if err := os.MkdirAll(options.Mountpoint, 0o755); err != nil {
		return nil, fmt.Errorf("fuseadapter: creating mountpoint %s: %w", options.Mountpoint, err)
	}

	root := &node{core: options.Core, path: "/"}

	entryTimeoutVar, attrTimeoutVar, negativeTimeoutVar := entryTimeout, attrTimeout, negativeTimeout
	server, err := gofuse.Mount(options.Mountpoint, root, &gofuse.Options{
		EntryTimeout:    &entryTimeoutVar,
		AttrTimeout:     &attrTimeoutVar,
		NegativeTimeout: &negativeTimeoutVar,
		MountOptions: fuse.MountOptions{
			FsName:     "fskit",
			Name:       "fskit",
			AllowOther: options.AllowOther,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("fuseadapter: mounting FUSE filesystem at %s: %w", options.Mountpoint, err)
	}

	options.Logger.Info("fskit filesystem mounted", "mountpoint", options.Mountpoint)
	return server, nil
}
