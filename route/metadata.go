// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package route

// Metadata describes the path a route matched, its capture groups, and —
// for the operation kinds that need them — the parent entries and rename
// destination. A Metadata is built fresh for each dispatch and is only
// valid for the duration of the handler call it was built for; a handler
// that needs to retain the path, a capture, or the new path must copy it.
type Metadata struct {
	path      string
	captures  []string
	parent    Entry
	newParent Entry
	newPath   string
}

// Path returns the absolute path the route matched.
func (m *Metadata) Path() string { return m.path }

// NumCaptures returns the number of parenthesized capture groups in the
// route's pattern, which equals len(m.Captures()).
func (m *Metadata) NumCaptures() int { return len(m.captures) }

// Captures returns the substrings captured by the route's parenthesized
// groups, in declaration order. The returned slice is a borrow; callers
// that need to keep a capture past the handler call must copy it.
func (m *Metadata) Captures() []string { return m.captures }

// Parent returns the parent entry delivered to create, mknod, and mkdir
// handlers, write-locked for the duration of the call. It is nil for
// every other operation kind, rename included: a rename handler is given
// only the destination parent, through NewParent, and not the source
// parent.
func (m *Metadata) Parent() Entry { return m.parent }

// NewParent returns the destination parent entry for a rename handler,
// write-locked for the duration of the call. It is nil outside of rename.
func (m *Metadata) NewParent() Entry { return m.newParent }

// NewPath returns the rename destination path. It is empty outside of
// rename.
func (m *Metadata) NewPath() string { return m.newPath }
