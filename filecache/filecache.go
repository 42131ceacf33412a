// Copyright 2026 The solc-core Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package filecache implements the FileCache collaborator of spec.md §6:
// the core asks it for file contents by relative path and it resolves
// against a search path list, returning either a canonical path and bytes
// or "not found". The core performs no I/O of its own; everything in this
// package is the one place that touches a filesystem.
package filecache

import (
	"os"
	"path/filepath"
)

// Cache resolves import paths against an ordered list of search
// directories and memoizes every file it has already read, so that a
// diamond-shaped import graph reads each file from disk exactly once.
//
// Not safe for concurrent use: spec.md §5 says a compile invocation is
// single-threaded, and a Cache is owned by exactly one of them.
type Cache struct {
	importPaths []string
	resolved    map[string]string // relative path -> canonical path
	contents    map[string][]byte // canonical path -> bytes
}

// New returns an empty Cache with no search paths.
func New() *Cache {
	return &Cache{
		resolved: map[string]string{},
		contents: map[string][]byte{},
	}
}

// AddImportPath appends dir to the search path list. Later calls search
// later directories only after every earlier one has missed, so earlier
// entries take priority, matching the usual "current file's directory
// first, then configured import roots" convention.
func (c *Cache) AddImportPath(dir string) {
	c.importPaths = append(c.importPaths, dir)
}

// Resolve looks up relPath. A path already resolved (or seeded with Put) is
// answered from memory. An absolute path is tried as given; a relative path
// is tried against each configured import path in order, and only then as
// given. ok is false if no candidate exists.
func (c *Cache) Resolve(relPath string) (canonical string, data []byte, ok bool) {
	if canonical, ok := c.resolved[relPath]; ok {
		return canonical, c.contents[canonical], true
	}

	candidates := make([]string, 0, len(c.importPaths)+1)
	if filepath.IsAbs(relPath) {
		candidates = append(candidates, relPath)
	} else {
		for _, dir := range c.importPaths {
			candidates = append(candidates, filepath.Join(dir, relPath))
		}
		candidates = append(candidates, relPath)
	}

	for _, cand := range candidates {
		clean := filepath.Clean(cand)
		if b, ok := c.contents[clean]; ok {
			c.resolved[relPath] = clean
			return clean, b, true
		}
		b, err := os.ReadFile(clean)
		if err != nil {
			continue
		}
		c.contents[clean] = b
		c.resolved[relPath] = clean
		return clean, b, true
	}
	return "", nil, false
}

// Put seeds the cache with in-memory content for path, bypassing
// filesystem resolution entirely. Used by tests and by any embedder that
// already holds file contents (e.g. a language-server buffer that hasn't
// been saved to disk yet).
func (c *Cache) Put(path string, data []byte) {
	clean := filepath.Clean(path)
	c.contents[clean] = data
	c.resolved[path] = clean
}
