// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package memblob

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest identifying a blob's content.
type Hash [32]byte

// domainKey is a 32-byte key for BLAKE3 keyed hashing, ASCII-padded so
// it stays inspectable in hex dumps. Domain separation means fskit's
// content hashes never collide with a hash computed for an unrelated
// purpose even if the raw bytes match.
type domainKey [32]byte

var contentDomainKey = domainKey{
	'f', 's', 'k', 'i', 't', '.', 'm', 'e', 'm', 'b', 'l', 'o', 'b', '.',
	'c', 'o', 'n', 't', 'e', 'n', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// HashContent computes the content-domain BLAKE3 keyed hash of data.
func HashContent(data []byte) Hash {
	hasher, err := blake3.NewKeyed(contentDomainKey[:])
	if err != nil {
		panic("memblob: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var h Hash
	copy(h[:], hasher.Sum(nil))
	return h
}

// String returns the hex encoding of the hash.
func (h Hash) String() string { return hex.EncodeToString(h[:]) }
