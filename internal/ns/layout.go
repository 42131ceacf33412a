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
	"github.com/solc-core/solc/internal/storage"
	"github.com/solc-core/solc/internal/types"
)

// computeLayouts runs spec.md §4.3 phase 4: derive a storage slot layout
// for every contract's linearized, storage-backed state variables, and a
// relative layout for every struct's own fields, honoring n.Target's
// address/value widths and storage model (spec.md §4.5).
func (n *Namespace) computeLayouts() {
	fields := n.StructFields

	for i := 0; i < n.Structs.Len(); i++ {
		id := arena.ID[StructRecord](i)
		rec := n.Structs.Get(id)
		rec.Layout = storage.Pack(rec.FieldTypes, fields, n.Target)
	}

	for i := 0; i < n.Contracts.Len(); i++ {
		cid := types.ContractID(i)
		contract := n.Contracts.Get(arena.ID[ContractRecord](cid))
		_, varTypes := contract.LinearStateVars(n)
		contract.Layout = storage.ContractLayout(varTypes, fields, n.Target)
	}
}
