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
	"iter"
	"math/big"
	"strings"

	"github.com/solc-core/solc/internal/arena"
	"github.com/solc-core/solc/internal/ast"
	"github.com/solc-core/solc/internal/diag"
	"github.com/solc-core/solc/internal/scc"
	"github.com/solc-core/solc/internal/types"
)

// resolveTypes runs spec.md §4.3 phase 3: turn every ast.TypeName reachable
// from a declaration (struct fields, state variables, event/function
// parameters and returns) into a types.Type, then check for struct
// self-reference cycles not broken by an array/mapping/ref indirection.
// Must run after linearize, since a bare type name may resolve through an
// inherited contract's MRO.
func (n *Namespace) resolveTypes() {
	for i := 0; i < n.Structs.Len(); i++ {
		id := arena.ID[StructRecord](i)
		rec := n.Structs.Get(id)
		if rec.AST == nil {
			continue
		}
		for _, f := range rec.AST.Fields {
			rec.FieldNames = append(rec.FieldNames, f.Name.Name)
			rec.FieldTypes = append(rec.FieldTypes, n.resolveTypeName(f.Type, rec.Contract))
		}
	}

	for i := 0; i < n.Events.Len(); i++ {
		id := arena.ID[EventRecord](i)
		rec := n.Events.Get(id)
		if rec.AST == nil {
			continue
		}
		for _, p := range rec.AST.Params {
			name := ""
			if p.Name != nil {
				name = p.Name.Name
			}
			rec.ParamName = append(rec.ParamName, name)
			rec.ParamType = append(rec.ParamType, n.resolveTypeName(p.Type, rec.Contract))
			rec.Indexed = append(rec.Indexed, p.Indexed)
		}
	}

	for i := 0; i < n.Contracts.Len(); i++ {
		cid := types.ContractID(i)
		contract := n.Contracts.Get(arena.ID[ContractRecord](cid))
		for j, v := range contract.StateVarAST {
			contract.StateVarTypes[j] = n.resolveTypeName(v.Type, cid)
		}
	}

	for i := 0; i < n.Functions.Len(); i++ {
		id := arena.ID[FunctionRecord](i)
		rec := n.Functions.Get(id)
		if rec.AST == nil {
			continue
		}
		for _, p := range rec.AST.Params {
			rec.ParamNames = append(rec.ParamNames, p.Name.Name)
			rec.ParamTypes = append(rec.ParamTypes, n.resolveTypeName(p.Type, rec.Contract))
		}
		for _, r := range rec.AST.Returns {
			name := r.Name.Name
			rec.ReturnNames = append(rec.ReturnNames, name)
			rec.ReturnTypes = append(rec.ReturnTypes, n.resolveTypeName(r.Type, rec.Contract))
		}
	}

	n.checkStructCycles()
}

// resolveTypeName turns a syntactic ast.TypeName into a types.Type,
// resolving a bare identifier against contract's own declarations, then its
// inherited bases in MRO order, then (as a documented simplification; see
// DESIGN.md) any contract's declarations — full Solidity's `Other.Name`
// qualified-lookup syntax is not yet a distinct ast.TypeName shape.
func (n *Namespace) resolveTypeName(tn ast.TypeName, contract types.ContractID) types.Type {
	base := n.resolveBaseType(tn, contract)

	if len(tn.Dims) == 0 {
		return base
	}
	dims := make([]types.Dim, len(tn.Dims))
	for i, d := range tn.Dims {
		if d.Length == nil {
			dims[i] = types.DynamicDim()
			continue
		}
		length, ok := n.constUint(d.Length)
		if !ok {
			n.Diags.Add(diag.Error, d.Loc, "array length must be a constant non-negative integer literal")
			dims[i] = types.DynamicDim()
			continue
		}
		dims[i] = types.FixedDim(length)
	}
	return types.NewArray(base, dims...)
}

func (n *Namespace) resolveBaseType(tn ast.TypeName, contract types.ContractID) types.Type {
	switch tn.Primitive {
	case ast.PrimitiveBool:
		return types.NewBool()
	case ast.PrimitiveAddress:
		return types.NewAddress(false)
	case ast.PrimitiveAddressPayable:
		return types.NewAddress(true)
	case ast.PrimitiveString:
		return types.NewString()
	case ast.PrimitiveInt:
		return types.NewInt(tn.Width)
	case ast.PrimitiveUint:
		return types.NewUint(tn.Width)
	case ast.PrimitiveBytes:
		return types.NewFixedBytes(tn.BytesLen)
	case ast.PrimitiveDynamicBytes:
		return types.NewDynamicBytes()
	}

	if tn.Name == nil {
		n.Diags.Add(diag.Error, tn.Loc, "missing type name")
		return types.Type{}
	}

	if sid, ok := n.lookupStruct(contract, tn.Name.Name); ok {
		return types.NewStruct(sid)
	}
	if eid, ok := n.lookupEnum(contract, tn.Name.Name); ok {
		return types.NewEnum(eid)
	}
	n.Diags.Add(diag.Error, tn.Name.Loc, "undeclared type %q", tn.Name.Name)
	return types.Type{}
}

func (n *Namespace) searchOrder(contract types.ContractID) []types.ContractID {
	rec := n.Contracts.Get(arena.ID[ContractRecord](contract))
	if len(rec.MRO) > 0 {
		return rec.MRO
	}
	return []types.ContractID{contract}
}

func (n *Namespace) lookupStruct(contract types.ContractID, name string) (types.StructID, bool) {
	for _, cid := range n.searchOrder(contract) {
		c := n.Contracts.Get(arena.ID[ContractRecord](cid))
		for _, sid := range c.Structs {
			if n.Structs.Get(arena.ID[StructRecord](sid)).Name == name {
				return sid, true
			}
		}
	}
	for i := 0; i < n.Contracts.Len(); i++ {
		c := n.Contracts.Get(arena.ID[ContractRecord](types.ContractID(i)))
		for _, sid := range c.Structs {
			if n.Structs.Get(arena.ID[StructRecord](sid)).Name == name {
				return sid, true
			}
		}
	}
	return 0, false
}

func (n *Namespace) lookupEnum(contract types.ContractID, name string) (types.EnumID, bool) {
	for _, cid := range n.searchOrder(contract) {
		c := n.Contracts.Get(arena.ID[ContractRecord](cid))
		for _, eid := range c.Enums {
			if n.Enums.Get(arena.ID[EnumRecord](eid)).Name == name {
				return eid, true
			}
		}
	}
	for i := 0; i < n.Contracts.Len(); i++ {
		c := n.Contracts.Get(arena.ID[ContractRecord](types.ContractID(i)))
		for _, eid := range c.Enums {
			if n.Enums.Get(arena.ID[EnumRecord](eid)).Name == name {
				return eid, true
			}
		}
	}
	return 0, false
}

// constUint evaluates e as a non-negative integer literal, the only
// constant-expression shape an array dimension is allowed to be in this
// core (full constant folding over arbitrary expressions is out of scope;
// see DESIGN.md).
func (n *Namespace) constUint(e ast.Expression) (uint64, bool) {
	lit, ok := e.(*ast.NumberLiteral)
	if !ok {
		return 0, false
	}
	text := strings.ReplaceAll(lit.Text, "_", "")
	base := 10
	if lit.Hex {
		base = 16
		text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	}
	v, ok := new(big.Int).SetString(text, base)
	if !ok || v.Sign() < 0 || !v.IsUint64() {
		return 0, false
	}
	return v.Uint64(), true
}

// checkStructCycles implements spec.md §4.3's struct self-reference cycle
// check: a direct (non-array, non-mapping, non-ref) chain of struct fields
// back to the starting struct is an error, since such a struct would have
// unbounded size; the same cycle broken by an array or mapping indirection
// is legal (storage references aren't materialized inline).
func (n *Namespace) checkStructCycles() {
	graph := func(id types.StructID) iter.Seq[types.StructID] {
		return func(yield func(types.StructID) bool) {
			rec := n.Structs.Get(arena.ID[StructRecord](id))
			for _, ft := range rec.FieldTypes {
				if ft.Kind == types.Struct {
					if !yield(ft.StructID) {
						return
					}
				}
			}
		}
	}

	seen := make(map[types.StructID]bool)
	for i := 0; i < n.Structs.Len(); i++ {
		id := types.StructID(i)
		if seen[id] {
			continue
		}
		dag := scc.Sort(id, graph)
		for c := range dag.Topological() {
			for _, m := range c.Members() {
				seen[m] = true
			}
			cyclic := len(c.Members()) > 1
			for dep := range graph(c.Members()[0]) {
				if dep == c.Members()[0] {
					cyclic = true // a struct with a field of its own type
				}
			}
			if cyclic {
				rec := n.Structs.Get(arena.ID[StructRecord](c.Members()[0]))
				n.Diags.Add(diag.Error, rec.Loc, "struct %q is recursively defined without an array, mapping, or reference indirection", rec.Name)
			}
		}
	}
}
