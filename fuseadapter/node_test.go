// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fuseadapter

import (
	"context"
	"syscall"
	"testing"

	"github.com/hanwen/go-fuse/v2/fuse"

	"github.com/gofskit/fskit"
)

func TestChildPath(t *testing.T) {
	cases := []struct {
		parent, name, want string
	}{
		{"/", "foo", "/foo"},
		{"/foo", "bar", "/foo/bar"},
		{"/foo/bar", "baz", "/foo/bar/baz"},
	}
	for _, c := range cases {
		if got := childPath(c.parent, c.name); got != c.want {
			t.Errorf("childPath(%q, %q) = %q, want %q", c.parent, c.name, got, c.want)
		}
	}
}

func TestErrnoOfPassesThroughSyscallErrno(t *testing.T) {
	if got := errnoOf(syscall.ENOENT); got != syscall.ENOENT {
		t.Errorf("errnoOf(ENOENT) = %v, want ENOENT", got)
	}
	if got := errnoOf(nil); got != 0 {
		t.Errorf("errnoOf(nil) = %v, want 0", got)
	}
}

func TestErrnoOfFallsBackToEIO(t *testing.T) {
	if got := errnoOf(errUnmapped{}); got != syscall.EIO {
		t.Errorf("errnoOf(unmapped) = %v, want EIO", got)
	}
}

type errUnmapped struct{}

func (errUnmapped) Error() string { return "unmapped" }

func TestNodeStatfsReflectsCoreStatfs(t *testing.T) {
	core := fskit.New()
	n := &node{core: core, path: "/"}

	var out fuse.StatfsOut
	if errno := n.Statfs(context.Background(), &out); errno != 0 {
		t.Fatalf("Statfs: errno %v", errno)
	}

	want := core.Statfs()
	if out.Blocks != want.Blocks || out.Bsize != want.BlockSize || out.Files != want.Files {
		t.Errorf("Statfs out = %+v, want to reflect %+v", out, want)
	}
}
