// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package route

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchAny is the canonical catch-all pattern: it matches every absolute
// path with at least one non-root component.
const MatchAny = `/([^/]+[/]*)*`

// compilePattern compiles pattern as a POSIX extended regular expression,
// anchoring it to match the full path if it isn't already. The standard
// library's regexp.CompilePOSIX is the only POSIX-ERE engine available
// anywhere in the retrieved example pack or its dependency trees; no
// third-party alternative was found to displace it (see DESIGN.md).
func compilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.CompilePOSIX(anchorFullMatch(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return re, nil
}

func anchorFullMatch(pattern string) string {
	if !strings.HasPrefix(pattern, "^") {
		pattern = "^" + pattern
	}
	if !strings.HasSuffix(pattern, "$") {
		pattern = pattern + "$"
	}
	return pattern
}

// matchPath reports whether path matches re in full, returning the
// substrings captured by re's parenthesized groups in declaration order.
// The capture count is always re.NumSubexp(), read from the compiled
// program rather than trusted from a caller-supplied upper bound.
func matchPath(re *regexp.Regexp, path string) (captures []string, ok bool) {
	groups := re.FindStringSubmatch(path)
	if groups == nil {
		return nil, false
	}
	return append([]string(nil), groups[1:]...), true
}
