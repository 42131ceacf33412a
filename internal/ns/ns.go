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

// Package ns implements the resolver described in spec.md §4.3: it walks an
// internal/ast.SourceUnit and produces a Namespace — arenas of structs,
// enums, events, functions, and contracts, indexed by the small-integer IDs
// internal/types already reserves for them, plus a diag.List recording
// every problem found along the way without ever stopping early (spec.md
// §4.7: "diagnostics accumulate, compilation continues").
//
// Grounded structurally on the teacher's compiler.go/message.go pipeline
// (several fixed passes over a parsed tree, each filling in more of a
// shared, arena-backed result), but built around spec.md §9's Namespace
// design note: edges between records are arena.ID values, never pointers,
// so the whole graph — contracts referencing bases, functions referencing
// contracts, struct fields referencing structs — can be cyclic without
// fighting Go's ownership rules.
package ns

import (
	"github.com/solc-core/solc/internal/arena"
	"github.com/solc-core/solc/internal/ast"
	"github.com/solc-core/solc/internal/diag"
	"github.com/solc-core/solc/internal/source"
	"github.com/solc-core/solc/internal/storage"
	"github.com/solc-core/solc/internal/target"
	"github.com/solc-core/solc/internal/types"
)

// StructRecord is one resolved struct declaration.
type StructRecord struct {
	Name       string
	Loc        source.Loc
	Contract   types.ContractID // owning contract; arena.Invalid if file-scoped
	FieldNames []string
	FieldTypes []types.Type
	// Layout is filled in during the storage-layout phase (relative to this
	// struct's own base slot, not any particular contract's actual slot).
	Layout []storage.FieldLayout

	// AST is kept so the type-resolution phase can come back and fill in
	// FieldNames/FieldTypes once every struct/enum/contract name in the
	// file is known (a struct field may reference a type declared later).
	AST *ast.StructDefinition
}

// EnumRecord is one resolved enum declaration.
type EnumRecord struct {
	Name     string
	Loc      source.Loc
	Contract types.ContractID
	Values   []string
}

// EventID is a small-integer handle to an EventRecord. Unlike Struct/Enum,
// events never appear inside types.Type (an event is not a value type), so
// there is no corresponding ID in internal/types to reuse.
type EventID = arena.ID[EventRecord]

// EventRecord is one resolved event declaration.
type EventRecord struct {
	Name      string
	Loc       source.Loc
	Contract  types.ContractID
	ParamName []string
	ParamType []types.Type
	Indexed   []bool
	Anonymous bool

	AST *ast.EventDefinition
}

// FunctionRecord is one resolved function (or public-state-variable
// accessor, or constructor) declaration.
type FunctionRecord struct {
	Name       string
	Loc        source.Loc
	Contract   types.ContractID
	Constructor bool
	Fallback   bool
	Receive    bool
	Visibility ast.Visibility
	Mutability ast.StateMutability
	ParamNames []string
	ParamTypes []types.Type
	ReturnNames []string
	ReturnTypes []types.Type

	// Signature/Selector are populated for every Public/External function
	// (spec.md §6) other than the constructor, fallback and receive, which
	// are reached at fixed selector-less entry points and get neither.
	Signature string
	Selector  []byte

	// ModifierChain records the function's modifier invocations in
	// declaration order, names and arguments unresolved. internal/cfg does
	// not read it: modifier bodies are not inlined (SPEC_FULL.md §3.3).
	ModifierChain []ast.ModifierInvocation

	// AST is the original declaration, kept so internal/cfg can lower the
	// body once it has this record's resolved parameter/return types.
	AST *ast.FunctionDefinition
}

// ContractRecord is one resolved contract/interface/library declaration.
type ContractRecord struct {
	Name  string
	Loc   source.Loc
	Kind  ast.ContractKind

	// Bases lists direct base contracts in declaration order (spec.md §4.3
	// phase 2 input). Linearization fills in MRO.
	Bases []types.ContractID

	// MRO is the linearized derived-to-base resolution order computed by
	// the inheritance-linearization phase: MRO[0] is this contract itself,
	// MRO[len-1] is the most-base ancestor. A nil MRO after Build means this
	// contract is itself on an inheritance cycle, already reported as a
	// diagnostic.
	MRO []types.ContractID

	Structs   []types.StructID
	Enums     []types.EnumID
	Events    []EventID
	Functions []types.FunctionID

	// StateVars is this contract's own (non-inherited) state variable
	// declarations, in source order.
	StateVarNames []string
	StateVarTypes []types.Type
	StateVarConst []bool // true for `constant`/`immutable` (spec.md: never storage-backed)
	StateVarAST   []*ast.StateVariableDefinition

	// Layout holds one FieldLayout per *storage-backed* entry of
	// LinearStateVars (constants/immutables are excluded), filled in by the
	// storage-layout phase.
	Layout []storage.FieldLayout
}

// LinearStateVars returns every storage-backed state variable this
// contract has, inherited bases first, in the order ContractLayout assigns
// slots — spec.md §4.3 phase 4's "storage layout... honoring target
// parameters" input.
func (c *ContractRecord) LinearStateVars(ns *Namespace) (names []string, types_ []types.Type) {
	for i := len(c.MRO) - 1; i >= 0; i-- {
		base := ns.Contracts.Get(arena.ID[ContractRecord](c.MRO[i]))
		for j, n := range base.StateVarNames {
			if base.StateVarConst[j] {
				continue
			}
			names = append(names, n)
			types_ = append(types_, base.StateVarTypes[j])
		}
	}
	return names, types_
}

// Namespace is the resolver's output: the arenas spec.md §9 prescribes,
// plus the diagnostics collected while building them.
type Namespace struct {
	Target target.Target
	File   source.File

	Structs   arena.Arena[StructRecord]
	Enums     arena.Arena[EnumRecord]
	Events    arena.Arena[EventRecord]
	Functions arena.Arena[FunctionRecord]
	Contracts arena.Arena[ContractRecord]

	Diags diag.List

	// contractByName indexes top-level names (contracts only, for now: structs/
	// enums/events/functions are contract-scoped and looked up through
	// their owning ContractRecord) to catch file-scope redeclaration.
	contractByName map[string]types.ContractID
}

func newNamespace(tgt target.Target, file source.File) *Namespace {
	return &Namespace{
		Target:         tgt,
		File:           file,
		contractByName: make(map[string]types.ContractID),
	}
}

// StructFields adapts this Namespace to storage.StructFields, so
// internal/storage (a leaf package) can recurse into nested struct layouts
// without importing ns.
func (n *Namespace) StructFields(id types.StructID) []types.Type {
	return n.Structs.Get(arena.ID[StructRecord](id)).FieldTypes
}
