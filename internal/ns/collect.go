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
	"github.com/solc-core/solc/internal/source"
	"github.com/solc-core/solc/internal/types"
)

// collect runs spec.md §4.3 phase 1: "collect top-level names, diagnosing
// duplicates". Contract names are collected in a first pass so that a base
// contract may be declared later in the same file (`contract A is B {}`
// followed by `contract B {}` is legal Solidity); everything nested inside
// a contract is collected in a second pass once every contract name is
// known.
func (n *Namespace) collect(unit *ast.SourceUnit) {
	var defs []*ast.ContractDefinition
	for _, part := range unit.Parts {
		switch p := part.(type) {
		case *ast.ContractDefinition:
			defs = append(defs, p)
			n.declareContract(p)
		case *ast.PragmaDirective:
			n.checkPragma(p)
		case *ast.ImportDirective:
			// Cross-file import resolution is out of scope for a single
			// SourceUnit Build call (see Build's doc comment); the path is
			// accepted but not otherwise acted on.
		}
	}
	for _, c := range defs {
		n.fillContract(c)
	}
}

func (n *Namespace) declareContract(c *ast.ContractDefinition) {
	if existing, ok := n.contractByName[c.Name.Name]; ok {
		prevLoc := n.Contracts.Get(arena.ID[ContractRecord](existing)).Loc
		n.Diags.AddWithNotes(diag.Error, c.Name.Loc,
			[]diag.Note{{Loc: prevLoc, Message: "previous declaration here"}},
			"contract %q already declared", c.Name.Name)
		return
	}
	id := n.Contracts.Alloc(ContractRecord{Name: c.Name.Name, Loc: c.Loc, Kind: c.Kind})
	n.contractByName[c.Name.Name] = types.ContractID(id)
}

func (n *Namespace) fillContract(c *ast.ContractDefinition) {
	cid, ok := n.contractByName[c.Name.Name]
	if !ok {
		return // a duplicate declaration that declareContract already rejected
	}
	contract := n.Contracts.Get(arena.ID[ContractRecord](cid))

	for _, b := range c.Bases {
		bid, ok := n.contractByName[b.Name.Name]
		if !ok {
			n.Diags.Add(diag.Error, b.Loc, "undeclared base contract %q", b.Name.Name)
			continue
		}
		contract.Bases = append(contract.Bases, bid)
	}

	names := make(map[string]source.Loc)
	dup := func(name string, loc source.Loc) bool {
		if name == "" {
			return true
		}
		if prev, ok := names[name]; ok {
			n.Diags.AddWithNotes(diag.Error, loc,
				[]diag.Note{{Loc: prev, Message: "previous declaration here"}},
				"%q already declared in contract %q", name, c.Name.Name)
			return false
		}
		names[name] = loc
		return true
	}

	for _, part := range c.Parts {
		switch p := part.(type) {
		case *ast.StructDefinition:
			dup(p.Name.Name, p.Name.Loc)
			sid := n.Structs.Alloc(StructRecord{Name: p.Name.Name, Loc: p.Loc, Contract: cid, AST: p})
			contract.Structs = append(contract.Structs, types.StructID(sid))

		case *ast.EnumDefinition:
			dup(p.Name.Name, p.Name.Loc)
			values := make([]string, len(p.Values))
			for i, v := range p.Values {
				values[i] = v.Name
			}
			eid := n.Enums.Alloc(EnumRecord{Name: p.Name.Name, Loc: p.Loc, Contract: cid, Values: values})
			contract.Enums = append(contract.Enums, types.EnumID(eid))

		case *ast.EventDefinition:
			dup(p.Name.Name, p.Name.Loc)
			evid := n.Events.Alloc(EventRecord{Name: p.Name.Name, Loc: p.Loc, Contract: cid, Anonymous: p.Anonymous, AST: p})
			contract.Events = append(contract.Events, evid)

		case *ast.StateVariableDefinition:
			dup(p.Name.Name, p.Name.Loc)
			isConst := false
			for _, a := range p.Attrs {
				if a == ast.AttrConstant || a == ast.AttrImmutable {
					isConst = true
				}
			}
			contract.StateVarNames = append(contract.StateVarNames, p.Name.Name)
			contract.StateVarTypes = append(contract.StateVarTypes, types.Type{}) // filled by resolveTypes
			contract.StateVarConst = append(contract.StateVarConst, isConst)
			contract.StateVarAST = append(contract.StateVarAST, p)

		case *ast.FunctionDefinition:
			name := ""
			if p.Name != nil {
				name = p.Name.Name
			}
			if !p.Constructor && !p.Fallback && !p.Receive {
				dup(name, p.Loc)
			}
			fid := n.Functions.Alloc(FunctionRecord{
				Name:          name,
				Loc:           p.Loc,
				Contract:      cid,
				Constructor:   p.Constructor,
				Fallback:      p.Fallback,
				Receive:       p.Receive,
				Visibility:    p.Visibility,
				Mutability:    p.Mutability,
				ModifierChain: p.Modifiers,
				AST:           p,
			})
			contract.Functions = append(contract.Functions, types.FunctionID(fid))

		case *ast.ModifierDefinition:
			// Modifier definitions are not recorded, and internal/cfg does
			// not inline modifier bodies (SPEC_FULL.md §3.3); the Namespace
			// does not keep a separate modifier arena, since a modifier is never itself a
			// value or a type that other records need to reference by ID.
		}
	}
}
