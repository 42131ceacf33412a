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

//go:build !debug

package debug

// Enabled is false in release builds.
const Enabled = false

// Log is a no-op in release builds.
func Log(context []any, operation string, format string, args ...any) {}

// Assert is a no-op in release builds; cond is not even evaluated lazily,
// so callers must not rely on Assert for control flow.
func Assert(cond bool, format string, args ...any) {}

// Value is a value of any type that only exists when the debug tag is
// enabled. In release builds it occupies no space.
type Value[T any] struct{}

// Get panics: values are unavailable outside of debug builds.
func (v *Value[T]) Get() *T {
	panic("solc: debug.Value accessed outside of a debug build")
}
