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

package ast

import "github.com/solc-core/solc/internal/source"

// Statement is any of the statement forms of spec.md §4.2.
type Statement interface {
	Loc() source.Loc
	isStatement()
}

type Block struct {
	BlockLoc  source.Loc
	Stmts     []Statement
	Unchecked bool // true for `unchecked { ... }` (spec.md §4.2)
}

func (b *Block) Loc() source.Loc { return b.BlockLoc }
func (*Block) isStatement()      {}

type IfStatement struct {
	IfLoc     source.Loc
	Condition Expression
	Then      Statement
	Else      Statement // nil if no else
}

func (s *IfStatement) Loc() source.Loc { return s.IfLoc }
func (*IfStatement) isStatement()      {}

type WhileStatement struct {
	WhileLoc  source.Loc
	Condition Expression
	Body      Statement
}

func (s *WhileStatement) Loc() source.Loc { return s.WhileLoc }
func (*WhileStatement) isStatement()      {}

type DoWhileStatement struct {
	DoLoc     source.Loc
	Body      Statement
	Condition Expression
}

func (s *DoWhileStatement) Loc() source.Loc { return s.DoLoc }
func (*DoWhileStatement) isStatement()      {}

type ForStatement struct {
	ForLoc    source.Loc
	Init      Statement  // nil if omitted
	Condition Expression // nil if omitted
	Post      Statement  // nil if omitted
	Body      Statement
}

func (s *ForStatement) Loc() source.Loc { return s.ForLoc }
func (*ForStatement) isStatement()      {}

// Placeholder is the modifier-body `_;` marker (spec.md §4.2).
type Placeholder struct {
	PlaceholderLoc source.Loc
}

func (s *Placeholder) Loc() source.Loc { return s.PlaceholderLoc }
func (*Placeholder) isStatement()      {}

type ContinueStatement struct{ ContinueLoc source.Loc }

func (s *ContinueStatement) Loc() source.Loc { return s.ContinueLoc }
func (*ContinueStatement) isStatement()      {}

type BreakStatement struct{ BreakLoc source.Loc }

func (s *BreakStatement) Loc() source.Loc { return s.BreakLoc }
func (*BreakStatement) isStatement()      {}

type ReturnStatement struct {
	ReturnLoc source.Loc
	Values    []Expression // empty if bare `return;`
}

func (s *ReturnStatement) Loc() source.Loc { return s.ReturnLoc }
func (*ReturnStatement) isStatement()      {}

type EmitStatement struct {
	EmitLoc source.Loc
	Event   Identifier
	Args    []Expression
}

func (s *EmitStatement) Loc() source.Loc { return s.EmitLoc }
func (*EmitStatement) isStatement()      {}

type VariableDefinitionStatement struct {
	DeclLoc     source.Loc
	Decl        VariableDeclaration
	Initializer Expression // nil if none
}

func (s *VariableDefinitionStatement) Loc() source.Loc { return s.DeclLoc }
func (*VariableDefinitionStatement) isStatement()      {}

// DestructureElement is one left-hand-side slot of `(a, , b) = (...)`: a nil
// Decl/Target pair means a skipped position.
type DestructureElement struct {
	Decl   *VariableDeclaration // set for `(uint a, , uint b) = ...`
	Target Expression           // set for `(a, , b) = ...` assigning to existing lvalues
}

type DestructureStatement struct {
	AssignLoc source.Loc
	Left      []DestructureElement
	Right     Expression // a tuple expression
}

func (s *DestructureStatement) Loc() source.Loc { return s.AssignLoc }
func (*DestructureStatement) isStatement()      {}

type ExpressionStatement struct {
	Expr Expression
}

func (s *ExpressionStatement) Loc() source.Loc { return s.Expr.Loc() }
func (*ExpressionStatement) isStatement()      {}

// CatchClause is one `catch Error(string) {...}` / `catch Panic(uint) {...}`
// / bare `catch {...}` arm (SPEC_FULL.md §3.4).
type CatchClause struct {
	Loc    source.Loc
	Name   string // "Error", "Panic", or "" for a bare/catch-all clause
	Params []VariableDeclaration
	Body   Statement
}

type TryStatement struct {
	TryLoc  source.Loc
	Expr    Expression // always a call expression
	Returns []VariableDeclaration
	Body    Statement // the success-path block
	Catches []CatchClause
}

func (s *TryStatement) Loc() source.Loc { return s.TryLoc }
func (*TryStatement) isStatement()      {}

type ThrowStatement struct{ ThrowLoc source.Loc }

func (s *ThrowStatement) Loc() source.Loc { return s.ThrowLoc }
func (*ThrowStatement) isStatement()      {}

type EmptyStatement struct{ EmptyLoc source.Loc }

func (s *EmptyStatement) Loc() source.Loc { return s.EmptyLoc }
func (*EmptyStatement) isStatement()      {}
