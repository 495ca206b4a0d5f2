// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package memblob

import "sync"

// Blob is an immutable, content-addressed byte buffer. A tree.Entry
// swaps its Blob wholesale on write or truncate under the entry's own
// lock; the Blob itself never mutates in place, so a reader that grabbed
// a Blob reference before a concurrent write sees a consistent snapshot.
type Blob struct {
	hash             Hash
	stored           []byte
	uncompressedSize int
	compressed       bool

	// decoded caches the decompressed bytes after the first Bytes call,
	// since a compressed blob may be read many times (e.g. by repeated
	// stat-then-read cycles from FUSE).
	once    sync.Once
	decoded []byte
	err     error
}

// New builds a Blob from data, hashing it and transparently compressing
// it if that shrinks the stored representation. data is copied; the
// caller's slice is not aliased.
func New(data []byte) *Blob {
	stored, compressed := maybeCompress(data)
	return &Blob{
		hash:             HashContent(data),
		stored:           stored,
		uncompressedSize: len(data),
		compressed:       compressed,
	}
}

// Hash returns the BLAKE3 content hash of the blob's decompressed bytes.
func (b *Blob) Hash() Hash { return b.hash }

// Len returns the decompressed content length.
func (b *Blob) Len() int { return b.uncompressedSize }

// Bytes returns the blob's decompressed content. The returned slice must
// not be modified by the caller; a memblob.New must be used to produce a
// new Blob for any change.
func (b *Blob) Bytes() ([]byte, error) {
	if !b.compressed {
		return b.stored, nil
	}
	b.once.Do(func() {
		b.decoded, b.err = decompress(b.stored, b.uncompressedSize)
	})
	return b.decoded, b.err
}

// StoredSize returns the number of bytes actually held in memory,
// which is less than Len for compressed blobs.
func (b *Blob) StoredSize() int { return len(b.stored) }
