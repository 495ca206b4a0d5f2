// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides fskit's shared CBOR encoding configuration.
//
// The route diagnostics package (diag) is the one consumer today: a
// route table snapshot is Marshaled to CBOR for storage or transport,
// and Diagnose/DiagnoseFirst render it back to human-readable notation
// for a debugging dump. Any future wire type fskit adds gets the same
// encoding without duplicating configuration.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. Same
// logical data always produces identical bytes, which matters for
// snapshot comparisons and for reproducible test fixtures.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
//
// Struct tags follow the fxamacker/cbor v2 convention: a `cbor` tag
// controls field naming and omitempty directly; a `json` tag is read as
// a fallback when no `cbor` tag is present, so a type shared with JSON
// output (CLI, HTTP) does not need duplicate tags.
package codec
