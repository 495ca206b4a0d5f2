// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fskit

import (
	"io"
	"log/slog"
	"sync"
	"syscall"

	"github.com/gofskit/fskit/lib/clock"
	"github.com/gofskit/fskit/memblob"
	"github.com/gofskit/fskit/route"
	"github.com/gofskit/fskit/routemetrics"
	"github.com/gofskit/fskit/tree"
)

// Handle identifies an open file or directory, returned by Open,
// OpenDir, and Create.
type Handle int64

// openHandle tracks a live Handle: the entry it was opened against, the
// path it was opened with (used to re-key subsequent dispatches — a
// concurrent rename of the same entry after Open is not reflected until
// the caller reopens by the new path, matching a POSIX file descriptor's
// path-independence), and any handler-supplied per-handle data from a
// successful Open/Create dispatch.
type openHandle struct {
	entry *tree.Entry
	path  string
	dir   bool
	data  any
}

// Core is one in-memory filesystem instance: a route.Engine bound to a
// tree.Core, plus the open-handle table the POSIX-style surface needs to
// carry handler handle data between Open and Close/Read/Write.
type Core struct {
	tree    *tree.Core
	engine  *route.Engine[*Core]
	logger  *slog.Logger
	clock   clock.Clock
	metrics *routemetrics.Collector

	mu         sync.Mutex
	nextHandle int64
	open       map[Handle]*openHandle

	statfs Statfs
}

// Option configures a Core at construction.
type Option func(*Core)

// WithLogger sets the logger Core and its collaborators use for
// diagnostics. fskit's route dispatch itself never logs (per the route
// package's error-propagation contract); this logger is used only by
// Core's own default-behavior and lifecycle code.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Core) { c.logger = logger }
}

// WithClock injects a clock.Clock, letting tests control mtime/atime/ctime
// deterministically via clock.Fake.
func WithClock(clk clock.Clock) Option {
	return func(c *Core) { c.clock = clk }
}

// WithStatfs sets the fixed statvfs-shaped values Statfs reports.
func WithStatfs(s Statfs) Option {
	return func(c *Core) { c.statfs = s }
}

// WithMetrics attaches a routemetrics.Collector that every Dispatch call
// this Core makes reports through. The caller owns the collector's
// Prometheus registration; Core only calls Track.
func WithMetrics(m *routemetrics.Collector) Option {
	return func(c *Core) { c.metrics = m }
}

// track starts a dispatch-latency observation for op if a metrics
// collector is attached, returning a no-op finisher otherwise so call
// sites never need a nil check.
func (c *Core) track(op route.Op) func(route.Outcome) {
	if c.metrics == nil {
		return func(route.Outcome) {}
	}
	return c.metrics.Track(op)
}

// New constructs an empty filesystem: a root directory and an empty
// route table. Attach routes via Engine() before serving operations.
func New(opts ...Option) *Core {
	c := &Core{open: make(map[Handle]*openHandle)}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}
	if c.clock == nil {
		c.clock = clock.Real()
	}
	if c.statfs == (Statfs{}) {
		c.statfs = DefaultStatfs()
	}
	c.tree = tree.NewCore(c.clock, c.logger)
	c.engine = route.NewEngine[*Core]()
	return c
}

// Engine returns the route engine so the host can register and revoke
// routes with Route<Op>/Unroute<Op>.
func (c *Core) Engine() *route.Engine[*Core] { return c.engine }

// ContentDigest returns the content-addressed BLAKE3 digest and in-memory
// stored size of the regular file at path, for a host that wants to
// detect content changes (caching, dedup, audit logging) without reading
// the file itself. Returns syscall.ENODATA for a directory or a file that
// has never been written to.
func (c *Core) ContentDigest(path string) (memblob.Hash, int, error) {
	entry, err := c.tree.Resolve(path)
	if err != nil {
		return memblob.Hash{}, 0, mapTreeErr(err)
	}

	entry.RLock()
	defer entry.RUnlock()

	blob := entry.Blob()
	if blob == nil {
		return memblob.Hash{}, 0, syscall.ENODATA
	}
	return blob.Hash(), blob.StoredSize(), nil
}

// Tree returns the underlying filesystem tree, mainly useful for tests
// and for a FUSE adapter that needs to walk entries directly.
func (c *Core) Tree() *tree.Core { return c.tree }

func (c *Core) allocHandle(h *openHandle) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextHandle++
	handle := Handle(c.nextHandle)
	c.open[handle] = h
	return handle
}

func (c *Core) lookupHandle(h Handle) (*openHandle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	oh, ok := c.open[h]
	return oh, ok
}

func (c *Core) dropHandle(h Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.open, h)
}
