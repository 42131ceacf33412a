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

// Package arena implements the "arena of records indexed by small integers"
// storage model that spec.md §9 prescribes for the Namespace: contracts
// reference functions, functions reference contracts (base-constructor
// calls), and types reference types (struct fields), and none of those
// edges should be a direct Go pointer, since the whole graph is cyclic and
// lives exactly as long as the Namespace that owns it.
//
// This is a deliberately simple, safe, slice-backed allocator: unlike the
// zero-copy, pointer-chasing arena that a hot-path binary parser needs, the
// resolver only allocates a few thousand records per compile and never frees
// a Namespace piecemeal, so there is nothing to gain from unsafe tricks here.
package arena

// ID is a stable small-integer handle to a record of type T stored in an
// Arena[T]. IDs count up from 0 in allocation order, so the zero ID is the
// first record allocated; only Invalid (-1) is never a handle.
type ID[T any] int32

// Invalid is returned by lookups that find nothing; it is never produced by
// Arena.Alloc.
func Invalid[T any]() ID[T] { return -1 }

// IsValid reports whether id was produced by some Arena.Alloc call.
func (id ID[T]) IsValid() bool { return id >= 0 }

// Arena holds values of type T, handed out as stable IDs rather than
// pointers. The zero Arena is empty and ready to use.
type Arena[T any] struct {
	records []T
}

// Alloc appends value to the arena and returns its ID.
func (a *Arena[T]) Alloc(value T) ID[T] {
	a.records = append(a.records, value)
	return ID[T](len(a.records) - 1)
}

// Get returns a pointer to the record for id, so callers can mutate it in
// place (e.g. filling in a storage slot once layout is computed).
//
// Panics if id is out of range; that is a compiler bug, never a condition
// user input can trigger (spec.md §7).
func (a *Arena[T]) Get(id ID[T]) *T {
	return &a.records[id]
}

// Len returns the number of records allocated so far.
func (a *Arena[T]) Len() int { return len(a.records) }

// All ranges over every (ID, *T) pair in allocation order.
func (a *Arena[T]) All(yield func(ID[T], *T) bool) {
	for i := range a.records {
		if !yield(ID[T](i), &a.records[i]) {
			return
		}
	}
}
