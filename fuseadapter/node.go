// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fuseadapter

import (
	"context"
	"syscall"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"

	"github.com/gofskit/fskit"
	"github.com/gofskit/fskit/route"
)

// node is one FUSE inode: an absolute path into an fskit.Core's tree.
// node holds no cached attributes — every callback re-resolves through
// the Core, so a concurrent route registration or handler mutation is
// always visible on the next call.
type node struct {
	gofuse.Inode
	core *fskit.Core
	path string
}

var (
	_ gofuse.InodeEmbedder = (*node)(nil)
	_ gofuse.NodeLookuper  = (*node)(nil)
	_ gofuse.NodeGetattrer = (*node)(nil)
	_ gofuse.NodeReaddirer = (*node)(nil)
	_ gofuse.NodeOpener    = (*node)(nil)
	_ gofuse.NodeCreater   = (*node)(nil)
	_ gofuse.NodeMkdirer   = (*node)(nil)
	_ gofuse.NodeUnlinker  = (*node)(nil)
	_ gofuse.NodeRmdirer   = (*node)(nil)
	_ gofuse.NodeRenamer   = (*node)(nil)
	_ gofuse.NodeSetattrer = (*node)(nil)
	_ gofuse.NodeFsyncer   = (*node)(nil)
	_ gofuse.NodeStatfser  = (*node)(nil)
)

func childPath(parent, name string) string {
	if parent == "/" {
		return "/" + name
	}
	return parent + "/" + name
}

func fillAttrOut(out *fuse.AttrOut, st route.Stat) {
	out.Mode = st.Mode
	out.Size = uint64(st.Size)
	out.Uid = st.Uid
	out.Gid = st.Gid
	out.Nlink = st.Nlink
	out.SetTimes(&st.Atime, &st.Mtime, &st.Ctime)
}

func fillEntryOut(out *fuse.EntryOut, st route.Stat) {
	out.Mode = st.Mode
	out.Size = uint64(st.Size)
	out.Uid = st.Uid
	out.Gid = st.Gid
	out.Nlink = st.Nlink
	out.SetEntryTimeout(entryTimeout)
	out.SetAttrTimeout(attrTimeout)
}

func (n *node) Lookup(ctx context.Context, name string, out *fuse.EntryOut) (*gofuse.Inode, syscall.Errno) {
	path := childPath(n.path, name)
	st, err := n.core.Stat(path)
	if err != nil {
		return nil, errnoOf(err)
	}

	child := &node{core: n.core, path: path}
	inode := n.NewInode(ctx, child, gofuse.StableAttr{Mode: st.Mode & syscall.S_IFMT})
	fillEntryOut(out, st)
	return inode, 0
}

func (n *node) Getattr(ctx context.Context, f gofuse.FileHandle, out *fuse.AttrOut) syscall.Errno {
	st, err := n.core.Stat(n.path)
	if err != nil {
		return errnoOf(err)
	}
	fillAttrOut(out, st)
	return 0
}

func (n *node) Setattr(ctx context.Context, f gofuse.FileHandle, in *fuse.SetAttrIn, out *fuse.AttrOut) syscall.Errno {
	if size, ok := in.GetSize(); ok {
		if err := n.core.Truncate(n.path, int64(size)); err != nil {
			return errnoOf(err)
		}
	}
	st, err := n.core.Stat(n.path)
	if err != nil {
		return errnoOf(err)
	}
	fillAttrOut(out, st)
	return 0
}

func (n *node) Readdir(ctx context.Context) (gofuse.DirStream, syscall.Errno) {
	h, err := n.core.OpenDir(n.path)
	if err != nil {
		return nil, errnoOf(err)
	}
	defer n.core.Close(h)

	dents, err := n.core.Readdir(h)
	if err != nil {
		return nil, errnoOf(err)
	}

	entries := make([]fuse.DirEntry, len(dents))
	for i, d := range dents {
		entries[i] = fuse.DirEntry{Name: d.Name, Mode: d.Mode}
	}
	return &sliceDirStream{entries: entries}, 0
}

func (n *node) Open(ctx context.Context, flags uint32) (gofuse.FileHandle, uint32, syscall.Errno) {
	h, err := n.core.Open(n.path, int(flags))
	if err != nil {
		return nil, 0, errnoOf(err)
	}
	return &fileHandle{core: n.core, handle: h}, 0, 0
}

func (n *node) Create(ctx context.Context, name string, flags uint32, mode uint32, out *fuse.EntryOut) (*gofuse.Inode, gofuse.FileHandle, uint32, syscall.Errno) {
	path := childPath(n.path, name)
	caller, _ := fuse.FromContext(ctx)
	uid, gid := uint32(0), uint32(0)
	if caller != nil {
		uid, gid = caller.Uid, caller.Gid
	}

	h, err := n.core.Create(path, mode, uid, gid)
	if err != nil {
		return nil, nil, 0, errnoOf(err)
	}

	st, err := n.core.Stat(path)
	if err != nil {
		return nil, nil, 0, errnoOf(err)
	}

	child := &node{core: n.core, path: path}
	inode := n.NewInode(ctx, child, gofuse.StableAttr{Mode: syscall.S_IFREG})
	fillEntryOut(out, st)
	return inode, &fileHandle{core: n.core, handle: h}, 0, 0
}

func (n *node) Mkdir(ctx context.Context, name string, mode uint32, out *fuse.EntryOut) (*gofuse.Inode, syscall.Errno) {
	path := childPath(n.path, name)
	caller, _ := fuse.FromContext(ctx)
	uid, gid := uint32(0), uint32(0)
	if caller != nil {
		uid, gid = caller.Uid, caller.Gid
	}

	if err := n.core.Mkdir(path, mode, uid, gid); err != nil {
		return nil, errnoOf(err)
	}

	st, err := n.core.Stat(path)
	if err != nil {
		return nil, errnoOf(err)
	}

	child := &node{core: n.core, path: path}
	inode := n.NewInode(ctx, child, gofuse.StableAttr{Mode: syscall.S_IFDIR})
	fillEntryOut(out, st)
	return inode, 0
}

func (n *node) Unlink(ctx context.Context, name string) syscall.Errno {
	return errnoOf(n.core.Unlink(childPath(n.path, name)))
}

func (n *node) Rmdir(ctx context.Context, name string) syscall.Errno {
	return errnoOf(n.core.Rmdir(childPath(n.path, name)))
}

func (n *node) Rename(ctx context.Context, name string, newParent gofuse.InodeEmbedder, newName string, flags uint32) syscall.Errno {
	target, ok := newParent.(*node)
	if !ok {
		return syscall.EXDEV
	}
	return errnoOf(n.core.Rename(childPath(n.path, name), childPath(target.path, newName)))
}

func (n *node) Fsync(ctx context.Context, f gofuse.FileHandle, flags uint32) syscall.Errno {
	return errnoOf(n.core.Sync(n.path))
}

func (n *node) Statfs(ctx context.Context, out *fuse.StatfsOut) syscall.Errno {
	sf := n.core.Statfs()
	out.Blocks = sf.Blocks
	out.Bfree = sf.BlocksFree
	out.Bavail = sf.BlocksFree
	out.Files = sf.Files
	out.Ffree = sf.FilesFree
	out.Bsize = sf.BlockSize
	out.Frsize = sf.BlockSize
	out.NameLen = sf.NameMax
	return 0
}

// errnoOf translates an fskit error (always a syscall.Errno or nil, per
// fskit's error contract) into the syscall.Errno go-fuse expects.
func errnoOf(err error) syscall.Errno {
	if err == nil {
		return 0
	}
	if errno, ok := err.(syscall.Errno); ok {
		return errno
	}
	return syscall.EIO
}
