// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package memblob

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// compressionThreshold is the minimum content size worth attempting to
// compress. Below this, zstd's frame overhead routinely exceeds any
// savings.
const compressionThreshold = 256

// zstdEncoder and zstdDecoder are reused across calls; both types are
// safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("memblob: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("memblob: zstd decoder initialization failed: " + err.Error())
	}
}

// maybeCompress compresses data with zstd if it's above the threshold
// and compression actually shrinks it. Returns the stored bytes and
// whether they are compressed.
func maybeCompress(data []byte) (stored []byte, compressed bool) {
	if len(data) < compressionThreshold {
		return append([]byte(nil), data...), false
	}
	out := zstdEncoder.EncodeAll(data, nil)
	if len(out) >= len(data) {
		return append([]byte(nil), data...), false
	}
	return out, true
}

func decompress(stored []byte, uncompressedSize int) ([]byte, error) {
	out := make([]byte, 0, uncompressedSize)
	result, err := zstdDecoder.DecodeAll(stored, out)
	if err != nil {
		return nil, fmt.Errorf("memblob: zstd decompress: %w", err)
	}
	if len(result) != uncompressedSize {
		return nil, fmt.Errorf("memblob: zstd decompress: got %d bytes, want %d", len(result), uncompressedSize)
	}
	return result, nil
}
