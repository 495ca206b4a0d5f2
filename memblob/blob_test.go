// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package memblob

import (
	"bytes"
	"strings"
	"testing"
)

func TestBlobRoundTripSmall(t *testing.T) {
	data := []byte("hello, fskit")
	b := New(data)
	if b.Len() != len(data) {
		t.Fatalf("Len() = %d, want %d", b.Len(), len(data))
	}
	got, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("Bytes() = %q, want %q", got, data)
	}
}

func TestBlobRoundTripCompressible(t *testing.T) {
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 100))
	b := New(data)
	if b.StoredSize() >= len(data) {
		t.Errorf("StoredSize() = %d, expected compression below input size %d", b.StoredSize(), len(data))
	}
	got, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("decompressed content does not match original")
	}
}

func TestBlobHashDeterministic(t *testing.T) {
	data := []byte("deterministic content")
	a, b := New(data), New(data)
	if a.Hash() != b.Hash() {
		t.Error("identical content produced different hashes")
	}
	if New([]byte("different content")).Hash() == a.Hash() {
		t.Error("different content produced the same hash")
	}
}

func TestBlobEmptyContent(t *testing.T) {
	b := New(nil)
	got, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Bytes() = %v, want empty", got)
	}
}
