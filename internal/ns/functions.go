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
	"github.com/solc-core/solc/internal/arena"
	"github.com/solc-core/solc/internal/ast"
	"github.com/solc-core/solc/internal/diag"
	"github.com/solc-core/solc/internal/selector"
	"github.com/solc-core/solc/internal/types"
)

// resolveFunctions runs spec.md §6's selector computation and duplicate-
// selector detection for every externally reachable function of every
// contract: Public/External visibility functions get a signature and a
// selector; constructors, fallback, and receive have no selector (they are
// reached by their fixed, selector-less entry points), and Internal/Private
// functions are never dispatched to from outside so they get neither.
//
// Each contract keeps its own selector.Table: two unrelated contracts may
// coincidentally reuse the same selector without conflict (they are never
// dispatched through the same jump table), matching spec.md §6's "within a
// contract's selector table" scoping.
func (n *Namespace) resolveFunctions() {
	for i := 0; i < n.Contracts.Len(); i++ {
		cid := types.ContractID(i)
		contract := n.Contracts.Get(arena.ID[ContractRecord](cid))
		table := selector.NewTable()

		for _, fid := range contract.Functions {
			rec := n.Functions.Get(arena.ID[FunctionRecord](fid))
			if rec.Constructor || rec.Fallback || rec.Receive {
				continue
			}
			if rec.Visibility != ast.Public && rec.Visibility != ast.External {
				continue
			}

			rec.Signature = selector.Signature(rec.Name, rec.ParamTypes)
			rec.Selector = selector.Compute(rec.Signature, n.Target)

			if conflict, dup := table.Add(rec.Signature, rec.Selector); dup {
				n.Diags.Add(diag.Error, rec.Loc, "function %q collides with %q under this target's %d-byte selector", rec.Signature, conflict, n.Target.SelectorLength)
			}
		}
	}
}
