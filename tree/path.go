// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tree

import "strings"

// splitPath breaks an absolute path into its non-empty components.
// "/" and "" both yield an empty slice (the root).
func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// splitParent breaks path into its parent's components and its final
// element. Returns ErrInvalidPath for the root, which has no parent.
func splitParent(path string) (parentComponents []string, name string, err error) {
	components := splitPath(path)
	if len(components) == 0 {
		return nil, "", ErrInvalidPath
	}
	return components[:len(components)-1], components[len(components)-1], nil
}
