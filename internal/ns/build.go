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

package ns

import (
	"github.com/solc-core/solc/internal/ast"
	"github.com/solc-core/solc/internal/source"
	"github.com/solc-core/solc/internal/target"
)

// Build runs the fixed pipeline of spec.md §4.3 phases 1-4 plus the
// selector computation of spec.md §6 over a single already-parsed
// SourceUnit, returning the resulting Namespace (complete except for
// function bodies, which internal/cfg lowers separately once it has this
// Namespace to resolve names against — cfg depends on ns, not the reverse,
// so Build cannot call into it here without an import cycle):
//
//  1. collect      - gather every top-level and contract-scoped name,
//                     diagnosing duplicates.
//  2. linearize    - compute each contract's inheritance MRO, diagnosing
//                     cycles.
//  3. resolveTypes - turn every ast.TypeName into a types.Type, diagnosing
//                     undeclared names and struct self-reference cycles.
//  4. computeLayouts - derive storage slot layouts for contracts and
//                     structs.
//  5. resolveFunctions - compute selectors and detect collisions.
//
// Multi-file import linking is out of scope for a single Build call; a
// caller compiling several files resolves each into its own Namespace and
// stitches cross-file references at a layer above this package (tracked as
// an Open Question — see DESIGN.md).
func Build(file source.File, unit *ast.SourceUnit, tgt target.Target) *Namespace {
	n := newNamespace(tgt, file)
	n.collect(unit)
	n.linearize()
	n.resolveTypes()
	n.computeLayouts()
	n.resolveFunctions()
	return n
}
