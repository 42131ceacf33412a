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
	"github.com/solc-core/solc/internal/ast"
	"github.com/solc-core/solc/internal/diag"
	"github.com/solc-core/solc/internal/types"
)

// lowerStatement dispatches one statement lowering per spec.md §4.4's
// "Statement lowering (representative cases)".
func (b *Builder) lowerStatement(s ast.Statement) {
	switch s := s.(type) {
	case *ast.Block:
		b.lowerBlock(s)
	case *ast.IfStatement:
		b.lowerIf(s)
	case *ast.WhileStatement:
		b.lowerWhile(s)
	case *ast.DoWhileStatement:
		b.lowerDoWhile(s)
	case *ast.ForStatement:
		b.lowerFor(s)
	case *ast.ReturnStatement:
		b.lowerReturn(s)
	case *ast.EmitStatement:
		b.lowerEmit(s)
	case *ast.VariableDefinitionStatement:
		b.lowerVariableDefinition(s)
	case *ast.DestructureStatement:
		b.lowerDestructure(s)
	case *ast.ExpressionStatement:
		e := b.lowerExpr(s.Expr)
		if e.Kind != ExPoison {
			b.appendInstr(Eval{Expr: e})
		}
	case *ast.BreakStatement:
		b.lowerBreak(s)
	case *ast.ContinueStatement:
		b.lowerContinue(s)
	case *ast.ThrowStatement:
		b.terminate(AssertFailure{Message: "throw"})
	case *ast.TryStatement:
		b.lowerTry(s)
	case *ast.Placeholder, *ast.EmptyStatement:
		// No-op: Placeholder only ever occurs in a modifier body, which
		// internal/ns does not yet inline (SPEC_FULL.md §3.3); EmptyStatement
		// is the bare `;`.
	default:
		b.diag(diag.Error, s.Loc(), "unsupported statement form")
	}
}

// lowerBlock implements spec.md §4.4's Block rule: push a scope, lower each
// child, and diagnose anything following an already-unreachable statement.
func (b *Builder) lowerBlock(blk *ast.Block) {
	prevUnchecked := b.unchecked
	if blk.Unchecked {
		b.unchecked = true
	}
	b.vars.newScope()

	for i, stmt := range blk.Stmts {
		if !b.reach && i > 0 {
			b.diag(diag.Error, stmt.Loc(), "unreachable statement")
			break
		}
		b.lowerStatement(stmt)
	}

	b.vars.leaveScope()
	b.unchecked = prevUnchecked
}

// lowerIf implements spec.md §4.4's If/Else rule: "endif's reachability is
// then_reachable OR else_reachable". A missing else arm is modeled as an
// always-reachable empty else block, so the no-else case naturally reduces
// to that same OR.
func (b *Builder) lowerIf(s *ast.IfStatement) {
	cond := castToBool(b.lowerExpr(s.Condition))

	thenBlk := b.cfg.newBlock("if.then")
	elseBlk := b.cfg.newBlock("if.else")
	endBlk := b.cfg.newBlock("if.end")

	b.cfg.block(b.current).Term = BranchCond{Cond: cond, TrueTarget: thenBlk, FalseTarget: elseBlk}

	b.vars.newDirtyTracker()

	b.current = thenBlk
	b.reach = true
	b.lowerStatement(s.Then)
	thenReachable := b.reach
	if thenReachable {
		b.branchTo(endBlk)
	}

	b.current = elseBlk
	b.reach = true
	if s.Else != nil {
		b.lowerStatement(s.Else)
	}
	elseReachable := b.reach
	if elseReachable {
		b.branchTo(endBlk)
	}

	dirty := b.vars.popDirtyTracker()
	b.cfg.block(endBlk).Phi = b.vars.phiVars(dirty)

	b.current = endBlk
	b.reach = thenReachable || elseReachable
}

// castToBool wraps cond in an implicit cast to Bool unless it already is
// one (spec.md §4.4: "lower condition; cast to Bool").
func castToBool(cond Expr) Expr {
	if cond.Ty.Kind == types.Bool {
		return cond
	}
	return castExpr(cond, types.NewBool())
}

// lowerWhile implements spec.md §4.4's While rule.
func (b *Builder) lowerWhile(s *ast.WhileStatement) {
	condBlk := b.cfg.newBlock("while.cond")
	bodyBlk := b.cfg.newBlock("while.body")
	endBlk := b.cfg.newBlock("while.end")

	b.branchTo(condBlk)
	b.reach = true

	b.vars.newDirtyTracker()
	b.loops.push(loopScope{breakTarget: endBlk, continueTarget: condBlk})

	cond := castToBool(b.lowerExpr(s.Condition))
	b.cfg.block(condBlk).Term = BranchCond{Cond: cond, TrueTarget: bodyBlk, FalseTarget: endBlk}

	b.current = bodyBlk
	b.reach = true
	b.lowerStatement(s.Body)
	if b.reach {
		b.branchTo(condBlk)
	}

	b.loops.pop()
	dirty := b.vars.popDirtyTracker()
	phi := b.vars.phiVars(dirty)
	b.cfg.block(condBlk).Phi = phi
	b.cfg.block(endBlk).Phi = phi

	b.current = endBlk
	b.reach = true
}

func (b *Builder) lowerDoWhile(s *ast.DoWhileStatement) {
	bodyBlk := b.cfg.newBlock("dowhile.body")
	condBlk := b.cfg.newBlock("dowhile.cond")
	endBlk := b.cfg.newBlock("dowhile.end")

	b.branchTo(bodyBlk)
	b.reach = true

	b.vars.newDirtyTracker()
	b.loops.push(loopScope{breakTarget: endBlk, continueTarget: condBlk})

	b.lowerStatement(s.Body)
	if b.reach {
		b.branchTo(condBlk)
	}

	b.current = condBlk
	b.reach = true
	cond := castToBool(b.lowerExpr(s.Condition))
	b.cfg.block(condBlk).Term = BranchCond{Cond: cond, TrueTarget: bodyBlk, FalseTarget: endBlk}

	b.loops.pop()
	dirty := b.vars.popDirtyTracker()
	phi := b.vars.phiVars(dirty)
	b.cfg.block(bodyBlk).Phi = phi
	b.cfg.block(endBlk).Phi = phi

	b.current = endBlk
	b.reach = true
}

func (b *Builder) lowerFor(s *ast.ForStatement) {
	b.vars.newScope()
	defer b.vars.leaveScope()

	if s.Init != nil {
		b.lowerStatement(s.Init)
	}

	condBlk := b.cfg.newBlock("for.cond")
	bodyBlk := b.cfg.newBlock("for.body")
	nextBlk := b.cfg.newBlock("for.next")
	endBlk := b.cfg.newBlock("for.end")

	b.branchTo(condBlk)
	b.reach = true

	b.vars.newDirtyTracker()
	b.loops.push(loopScope{breakTarget: endBlk, continueTarget: nextBlk})

	if s.Condition != nil {
		cond := castToBool(b.lowerExpr(s.Condition))
		b.cfg.block(condBlk).Term = BranchCond{Cond: cond, TrueTarget: bodyBlk, FalseTarget: endBlk}
	} else {
		b.cfg.block(condBlk).Term = Branch{Target: bodyBlk}
	}

	b.current = bodyBlk
	b.reach = true
	b.lowerStatement(s.Body)
	if b.reach {
		b.branchTo(nextBlk)
	}

	b.current = nextBlk
	b.reach = true
	if s.Post != nil {
		b.lowerStatement(s.Post)
	}
	b.branchTo(condBlk)

	b.loops.pop()
	dirty := b.vars.popDirtyTracker()
	phi := b.vars.phiVars(dirty)
	b.cfg.block(condBlk).Phi = phi
	b.cfg.block(nextBlk).Phi = phi
	b.cfg.block(endBlk).Phi = phi

	b.current = endBlk
	b.reach = true
}

func (b *Builder) lowerBreak(s *ast.BreakStatement) {
	ls, ok := b.loops.top()
	if !ok {
		b.diag(diag.Error, s.Loc(), "break statement outside a loop")
		return
	}
	ls.breakCount++
	b.terminate(Branch{Target: ls.breakTarget})
}

func (b *Builder) lowerContinue(s *ast.ContinueStatement) {
	ls, ok := b.loops.top()
	if !ok {
		b.diag(diag.Error, s.Loc(), "continue statement outside a loop")
		return
	}
	ls.continueCount++
	b.terminate(Branch{Target: ls.continueTarget})
}

// lowerReturn implements spec.md §4.4's Return rule.
func (b *Builder) lowerReturn(s *ast.ReturnStatement) {
	if len(s.Values) == 0 {
		if b.hasNamedReturns() {
			b.terminate(Return{Values: b.namedReturnLoads()})
			return
		}
		b.terminate(Return{})
		return
	}

	values := make([]Expr, len(s.Values))
	for i, v := range s.Values {
		e := b.lowerExpr(v)
		if i < len(b.fn.ReturnTypes) {
			e = castExpr(e, b.fn.ReturnTypes[i])
		}
		values[i] = e
	}
	b.terminate(Return{Values: values})
}

// lowerEmit implements spec.md §4.4's Emit rule.
func (b *Builder) lowerEmit(s *ast.EmitStatement) {
	id, ev, ok := b.findEvent(s.Event.Name)
	if !ok {
		b.diag(diag.Error, s.Loc(), "undeclared event %q", s.Event.Name)
		return
	}
	if len(s.Args) != len(ev.ParamType) {
		b.diag(diag.Error, s.Loc(), "event %q expects %d arguments, got %d", s.Event.Name, len(ev.ParamType), len(s.Args))
	}
	args := make([]Expr, len(s.Args))
	for i, a := range s.Args {
		e := b.lowerExpr(a)
		if i < len(ev.ParamType) {
			e = castExpr(e, ev.ParamType[i])
		}
		args[i] = e
	}
	b.appendInstr(EmitEvent{EventID: id, Args: args})
}

// lowerVariableDefinition implements spec.md §4.4's VariableDefinition
// rule.
func (b *Builder) lowerVariableDefinition(s *ast.VariableDefinitionStatement) {
	declTy, ok := resolvePrimitiveType(s.Decl.Type)
	if !ok {
		// Named (struct/enum) declared type: fall back to the initializer's
		// own inferred type rather than re-implementing ns's name lookup
		// here (tracked in DESIGN.md).
		if s.Initializer != nil {
			declTy = b.lowerExpr(s.Initializer).Ty
		}
	}
	if s.Decl.Location == ast.Storage {
		declTy = types.NewStorageRef(declTy)
	}

	var init Expr
	if s.Initializer != nil {
		init = castExpr(b.lowerExpr(s.Initializer), declTy)
	} else {
		init = Expr{Kind: ExZeroValue, Ty: declTy}
	}

	pos, ok := b.vars.add(s.Decl.Name.Name, declTy)
	if !ok {
		b.diag(diag.Error, s.Loc(), "%q already declared in this scope", s.Decl.Name.Name)
		return
	}
	v := b.vars.vars[pos]
	b.vars.setDirty(pos)
	b.appendInstr(Set{Var: v, Expr: init})
}

// lowerDestructure implements spec.md §4.4's destructuring-assignment rule:
// every right-hand value is evaluated into a temporary before any left-hand
// store, so `(a, b) = (b, a)` swaps correctly.
func (b *Builder) lowerDestructure(s *ast.DestructureStatement) {
	tuple, ok := s.Right.(*ast.TupleExpr)
	if !ok {
		b.diag(diag.Error, s.Loc(), "destructuring assignment requires a tuple right-hand side")
		return
	}
	if len(tuple.Elements) != len(s.Left) {
		b.diag(diag.Error, s.Loc(), "destructuring arity mismatch: %d targets, %d values", len(s.Left), len(tuple.Elements))
	}

	n := min(len(tuple.Elements), len(s.Left))
	temps := make([]Expr, n)
	for i := 0; i < n; i++ {
		if tuple.Elements[i] == nil {
			continue
		}
		temps[i] = b.lowerExpr(tuple.Elements[i])
	}

	for i := 0; i < n; i++ {
		left := s.Left[i]
		switch {
		case left.Decl != nil:
			pos, ok := b.vars.add(left.Decl.Name.Name, temps[i].Ty)
			if !ok {
				b.diag(diag.Error, s.Loc(), "%q already declared in this scope", left.Decl.Name.Name)
				continue
			}
			v := b.vars.vars[pos]
			b.vars.setDirty(pos)
			b.appendInstr(Set{Var: v, Expr: temps[i]})
		case left.Target != nil:
			lowered := b.lowerExpr(left.Target)
			b.storeInto(left.Target, lowered, temps[i])
		default:
			// skipped position: value discarded.
		}
	}
}

// lowerTry implements SPEC_FULL.md §3.4: it lowers the call, binds
// s.Returns (the first to the call's value, any others to zero values),
// lowers the success body inline in the current block and branches to a
// try.end block. Each catch clause is lowered into its own block with its
// parameters in scope, but nothing branches into a catch block: the IR
// carries no success flag for the call. Reachable arms join at try.end.
func (b *Builder) lowerTry(s *ast.TryStatement) {
	call := b.lowerExpr(s.Expr)

	for i, ret := range s.Returns {
		pos, ok := b.vars.add(ret.Name.Name, call.Ty)
		if !ok {
			continue
		}
		v := b.vars.vars[pos]
		if i == 0 {
			b.appendInstr(Set{Var: v, Expr: call})
		} else {
			b.appendInstr(Set{Var: v, Expr: Expr{Kind: ExZeroValue, Ty: v.Ty}})
		}
	}

	endBlk := b.cfg.newBlock("try.end")
	b.vars.newDirtyTracker()

	b.lowerStatement(s.Body)
	successReachable := b.reach
	if successReachable {
		b.branchTo(endBlk)
	}

	anyReachable := successReachable
	for _, c := range s.Catches {
		catchBlk := b.cfg.newBlock("try.catch")
		b.current = catchBlk
		b.reach = true
		b.vars.newScope()
		for _, p := range c.Params {
			ty, _ := resolvePrimitiveType(p.Type)
			b.vars.add(p.Name.Name, ty)
		}
		b.lowerStatement(c.Body)
		b.vars.leaveScope()
		if b.reach {
			anyReachable = true
			b.branchTo(endBlk)
		}
	}

	dirty := b.vars.popDirtyTracker()
	b.cfg.block(endBlk).Phi = b.vars.phiVars(dirty)

	b.current = endBlk
	b.reach = anyReachable
}
