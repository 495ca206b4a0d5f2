// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package diag

import (
	"fmt"
	"io"

	"github.com/gofskit/fskit/lib/codec"
)

// WriteDiagnostic writes the RFC 8949 Extended Diagnostic Notation for a
// CBOR-encoded snapshot to w, one line per top-level item. Callers that
// already hold a Snapshot should encode it with Marshal first; this
// function otherwise never sees a route.Engine or fskit.Core directly,
// matching cmd/bureau's separation between producing CBOR and reading it
// back for humans.
func WriteDiagnostic(w io.Writer, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("diag: empty snapshot")
	}
	remaining := data
	for len(remaining) > 0 {
		notation, rest, err := codec.DiagnoseFirst(remaining)
		if err != nil {
			offset := len(data) - len(remaining)
			return fmt.Errorf("diag: diagnose snapshot at byte %d: %w", offset, err)
		}
		if _, err := fmt.Fprintln(w, notation); err != nil {
			return err
		}
		remaining = rest
	}
	return nil
}
