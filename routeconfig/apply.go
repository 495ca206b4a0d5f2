// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package routeconfig

import (
	"fmt"

	"github.com/gofskit/fskit/route"
)

func parseDiscipline(name string) (route.Discipline, error) {
	switch name {
	case "", "concurrent":
		return route.Concurrent, nil
	case "sequential":
		return route.Sequential, nil
	case "inode-sequential":
		return route.InodeSequential, nil
	default:
		return 0, fmt.Errorf("routeconfig: unknown discipline %q", name)
	}
}

// Apply registers every rule in cfg on engine, returning the handles in
// rule order so the caller can Unroute them later (e.g. on config
// reload). On any rule failure, Apply unrolls the routes it already
// registered and returns the error.
func Apply[C any](engine *route.Engine[C], cfg *Config) ([]route.Handle, error) {
	var handles []route.Handle
	unroll := func() {
		for i, r := range cfg.Rules[:len(handles)] {
			unrouteFor(engine, r.Op, handles[i])
		}
	}

	for _, r := range cfg.Rules {
		d, err := parseDiscipline(r.Discipline)
		if err != nil {
			unroll()
			return nil, err
		}
		rc, err := parseErrno(r.Errno)
		if err != nil {
			unroll()
			return nil, err
		}

		h, err := routeFor(engine, r.Op, r.Pattern, d, rc)
		if err != nil {
			unroll()
			return nil, fmt.Errorf("routeconfig: rule %q %q: %w", r.Op, r.Pattern, err)
		}
		handles = append(handles, h)
	}
	return handles, nil
}

func routeFor[C any](engine *route.Engine[C], op, pattern string, d route.Discipline, rc int) (route.Handle, error) {
	switch op {
	case "create":
		return engine.RouteCreate(pattern, func(core C, meta *route.Metadata, entry route.Entry, mode uint32) (int, any, any) {
			return rc, nil, nil
		}, d)
	case "mknod":
		return engine.RouteMknod(pattern, func(core C, meta *route.Metadata, entry route.Entry, mode uint32, dev uint64) (int, any) {
			return rc, nil
		}, d)
	case "mkdir":
		return engine.RouteMkdir(pattern, func(core C, meta *route.Metadata, entry route.Entry, mode uint32) (int, any) {
			return rc, nil
		}, d)
	case "open":
		return engine.RouteOpen(pattern, func(core C, meta *route.Metadata, entry route.Entry, flags int) (int, any) {
			return rc, nil
		}, d)
	case "close":
		return engine.RouteClose(pattern, func(core C, meta *route.Metadata, entry route.Entry, handleData any) int {
			return rc
		}, d)
	case "readdir":
		return engine.RouteReaddir(pattern, func(core C, meta *route.Metadata, entry route.Entry, dents []route.DirEntry) (int, []route.DirEntry) {
			return rc, nil
		}, d)
	case "read":
		return engine.RouteRead(pattern, func(core C, meta *route.Metadata, entry route.Entry, buf []byte, off int64, handleData any) (int, int) {
			return 0, rc
		}, d)
	case "write":
		return engine.RouteWrite(pattern, func(core C, meta *route.Metadata, entry route.Entry, buf []byte, off int64, handleData any) (int, int) {
			return 0, rc
		}, d)
	case "trunc":
		return engine.RouteTrunc(pattern, func(core C, meta *route.Metadata, entry route.Entry, size int64, handleData any) int {
			return rc
		}, d)
	case "detach":
		return engine.RouteDetach(pattern, func(core C, meta *route.Metadata, entry route.Entry, inodeData any) int {
			return rc
		}, d)
	case "stat":
		return engine.RouteStat(pattern, func(core C, meta *route.Metadata, entry route.Entry, out *route.Stat) int {
			return rc
		}, d)
	case "sync":
		return engine.RouteSync(pattern, func(core C, meta *route.Metadata, entry route.Entry) int {
			return rc
		}, d)
	case "rename":
		return engine.RouteRename(pattern, func(core C, meta *route.Metadata, entry route.Entry, newPath string, newParent route.Entry) int {
			return rc
		}, d)
	default:
		return 0, fmt.Errorf("routeconfig: unknown op %q", op)
	}
}

func unrouteFor[C any](engine *route.Engine[C], op string, h route.Handle) {
	switch op {
	case "create":
		engine.UnrouteCreate(h)
	case "mknod":
		engine.UnrouteMknod(h)
	case "mkdir":
		engine.UnrouteMkdir(h)
	case "open":
		engine.UnrouteOpen(h)
	case "close":
		engine.UnrouteClose(h)
	case "readdir":
		engine.UnrouteReaddir(h)
	case "read":
		engine.UnrouteRead(h)
	case "write":
		engine.UnrouteWrite(h)
	case "trunc":
		engine.UnrouteTrunc(h)
	case "detach":
		engine.UnrouteDetach(h)
	case "stat":
		engine.UnrouteStat(h)
	case "sync":
		engine.UnrouteSync(h)
	case "rename":
		engine.UnrouteRename(h)
	}
}
