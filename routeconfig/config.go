// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package routeconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a static set of canned routes, typically loaded once at
// startup before an fskit.Core begins serving.
type Config struct {
	Rules []Rule `yaml:"rules"`
}

// Rule declares one canned route: match op against pattern under
// discipline, and always report errno (empty means success, rc 0).
type Rule struct {
	// Op is one of: create, mknod, mkdir, open, close, readdir, read,
	// write, trunc, detach, stat, sync, rename.
	Op string `yaml:"op"`

	// Pattern is the POSIX extended regular expression matched
	// against the operation's path.
	Pattern string `yaml:"pattern"`

	// Discipline is one of: sequential, concurrent, inode-sequential.
	// Defaults to concurrent if empty.
	Discipline string `yaml:"discipline"`

	// Errno is a POSIX errno name (e.g. "EROFS", "EACCES") the route
	// always reports. Empty means the operation always succeeds.
	Errno string `yaml:"errno,omitempty"`
}

// Load reads and parses a routeconfig YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("routeconfig: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("routeconfig: parsing %s: %w", path, err)
	}
	for i, r := range cfg.Rules {
		if r.Op == "" {
			return nil, fmt.Errorf("routeconfig: rule %d: op is required", i)
		}
		if r.Pattern == "" {
			return nil, fmt.Errorf("routeconfig: rule %d: pattern is required", i)
		}
	}
	return &cfg, nil
}
