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

package cfg

import (
	"github.com/solc-core/solc/internal/arena"
	"github.com/solc-core/solc/internal/diag"
	"github.com/solc-core/solc/internal/ns"
	"github.com/solc-core/solc/internal/source"
	"github.com/solc-core/solc/internal/types"
)

// Builder lowers one function body into a CFG, threading the vartab and
// loop stack of spec.md §4.4 through a direct recursive descent over the
// AST (spec.md §9's "coroutine-like CFG construction is unnecessary").
type Builder struct {
	n        *ns.Namespace
	contract types.ContractID
	fn       *ns.FunctionRecord

	cfg     *CFG
	vars    *vartab
	loops   loopStack
	current int  // index of the block currently being appended to.
	reach   bool // whether control can reach the current point.

	unchecked bool // true while lowering inside an `unchecked { ... }` block.
}

// Build runs spec.md §4.3 phase 5 for a single function: it lowers fn's
// body into a CFG, resolving every name against n's Namespace and fn's own
// parameter/return/local scope. Build never reports duplicate diagnostics
// for problems ns.Build already found (undeclared types, selector
// collisions); it only raises CFG-construction-specific errors (missing
// return, break/continue outside a loop, unreachable code, undeclared
// locals).
func Build(n *ns.Namespace, contract types.ContractID, fn *ns.FunctionRecord) *CFG {
	b := &Builder{n: n, contract: contract, fn: fn, cfg: &CFG{}}
	scope := buildContractScope(n, contract)
	b.vars = newVartab(func(name string) (Var, bool) {
		v, ok := scope[name]
		return v, ok
	})

	entry := b.cfg.newBlock("entry")
	b.current = entry
	b.reach = true

	b.bindParams()
	b.zeroInitNamedReturns()

	if fn.AST == nil || fn.AST.Body == nil {
		b.terminate(Unreachable{})
		b.cfg.Vars = b.vars.vars
		return b.cfg
	}

	b.lowerStatement(fn.AST.Body)

	if b.reach {
		switch {
		case b.hasNamedReturns():
			b.terminate(Return{Values: b.namedReturnLoads()})
		case len(fn.ReturnTypes) == 0:
			b.terminate(Return{})
		default:
			b.diag(diag.Error, fn.Loc, "missing return statement")
			b.terminate(Unreachable{})
		}
	}

	b.cfg.Vars = b.vars.vars
	return b.cfg
}

// buildContractScope flattens a contract's linearized storage layout and
// inherited constants into a name -> Var table, computed once per Build
// call rather than per lookup (vartab.find is on the hot path of every
// identifier the body references).
func buildContractScope(n *ns.Namespace, contract types.ContractID) map[string]Var {
	out := map[string]Var{}
	rec := n.Contracts.Get(arena.ID[ns.ContractRecord](contract))

	names, varTypes := rec.LinearStateVars(n)
	for i, name := range names {
		v := Var{ID: name, Ty: varTypes[i], Storage: Contract}
		if i < len(rec.Layout) {
			v.Slot = rec.Layout[i].Slot
		}
		out[name] = v
	}

	constIdx := 0
	for i := len(rec.MRO) - 1; i >= 0; i-- {
		base := n.Contracts.Get(arena.ID[ns.ContractRecord](rec.MRO[i]))
		for j, name := range base.StateVarNames {
			if !base.StateVarConst[j] {
				continue
			}
			out[name] = Var{ID: name, Ty: base.StateVarTypes[j], Storage: ConstantVar, Const: constIdx}
			constIdx++
		}
	}
	return out
}

func (b *Builder) bindParams() {
	for i, name := range b.fn.ParamNames {
		if name == "" {
			continue // unnamed parameter: never referenced, no vartab slot needed.
		}
		b.vars.add(name, b.fn.ParamTypes[i])
	}
}

func (b *Builder) hasNamedReturns() bool {
	for _, name := range b.fn.ReturnNames {
		if name != "" {
			return true
		}
	}
	return false
}

// zeroInitNamedReturns implements spec.md §4.4's "Named-returns zero-init":
// the entry block pre-assigns each named-return slot to ExZeroValue.
func (b *Builder) zeroInitNamedReturns() {
	if !b.hasNamedReturns() {
		return
	}
	for i, name := range b.fn.ReturnNames {
		if name == "" {
			continue
		}
		pos, ok := b.vars.add(name, b.fn.ReturnTypes[i])
		if !ok {
			continue
		}
		v := b.vars.vars[pos]
		b.appendInstr(Set{Var: v, Expr: Expr{Kind: ExZeroValue, Ty: v.Ty}})
	}
}

func (b *Builder) namedReturnLoads() []Expr {
	out := make([]Expr, 0, len(b.fn.ReturnNames))
	for _, name := range b.fn.ReturnNames {
		if name == "" {
			continue
		}
		v, ok := b.vars.find(name)
		if !ok {
			continue
		}
		out = append(out, Expr{Kind: ExVariable, Ty: v.Ty, Var: v})
	}
	return out
}

func (b *Builder) diag(sev diag.Severity, loc source.Loc, format string, args ...any) {
	b.n.Diags.Add(sev, loc, format, args...)
}

// appendInstr appends to the block currently being built, silently dropping
// the instruction if the current point is unreachable: dead code past a
// terminator is diagnosed once by lowerBlock, not re-diagnosed per
// instruction.
func (b *Builder) appendInstr(instr Instruction) {
	if !b.reach {
		return
	}
	blk := b.cfg.block(b.current)
	blk.Instructions = append(blk.Instructions, instr)
}

func (b *Builder) terminate(t Terminator) {
	b.cfg.block(b.current).Term = t
	b.reach = false
}

// branchTo closes the current block with an unconditional Branch and moves
// the insertion point to target; it does not touch b.reach, since the
// target block's reachability is decided by the caller (e.g. the join of
// an if/else's two arms).
func (b *Builder) branchTo(target int) {
	if b.reach {
		b.cfg.block(b.current).Term = Branch{Target: target}
	}
	b.current = target
}

func (b *Builder) findEvent(name string) (int, *ns.EventRecord, bool) {
	rec := b.n.Contracts.Get(arena.ID[ns.ContractRecord](b.contract))
	for _, mro := range rec.MRO {
		c := b.n.Contracts.Get(arena.ID[ns.ContractRecord](mro))
		for _, eid := range c.Events {
			ev := b.n.Events.Get(eid)
			if ev.Name == name {
				return int(eid), ev, true
			}
		}
	}
	return 0, nil, false
}
