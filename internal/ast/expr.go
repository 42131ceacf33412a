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

// Expression is any expression node (spec.md §4.2: "all Solidity operators
// with standard precedence; assignment is right-associative...").
type Expression interface {
	Loc() source.Loc
	isExpression()
}

// BinaryOp discriminates BinaryExpr's operator; one Go type covers every
// binary operator (arithmetic, bitwise, comparison, logical, and every
// compound assignment) since they all share the identical (Loc, Left,
// Right) shape and only the operator tag differs — unlike Rust's
// one-enum-variant-per-operator, Go's switch-on-a-small-int-field is the
// idiomatic way to avoid 30 near-identical struct definitions.
type BinaryOp uint8

const (
	OpPower BinaryOp = iota
	OpMul
	OpDiv
	OpMod
	OpAdd
	OpSub
	OpShl
	OpShr
	OpBitAnd
	OpBitXor
	OpBitOr
	OpLess
	OpMore
	OpLessEq
	OpMoreEq
	OpEq
	OpNotEq
	OpAnd
	OpOr
	OpAssign
	OpAssignOr
	OpAssignAnd
	OpAssignXor
	OpAssignShl
	OpAssignShr
	OpAssignAdd
	OpAssignSub
	OpAssignMul
	OpAssignDiv
	OpAssignMod
)

type BinaryExpr struct {
	OpLoc source.Loc
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (e *BinaryExpr) Loc() source.Loc { return e.OpLoc }
func (*BinaryExpr) isExpression()     {}

// UnaryOp discriminates UnaryExpr; Postfix selects postfix (`x++`) vs. prefix
// (`++x`, `-x`, `!x`, `~x`, `delete x`) spelling of the same operator set.
type UnaryOp uint8

const (
	OpNot UnaryOp = iota
	OpComplement
	OpDelete
	OpIncrement
	OpDecrement
	OpUnaryPlus
	OpUnaryMinus
)

type UnaryExpr struct {
	OpLoc    source.Loc
	Op       UnaryOp
	Operand  Expression
	Postfix  bool
}

func (e *UnaryExpr) Loc() source.Loc { return e.OpLoc }
func (*UnaryExpr) isExpression()     {}

type TernaryExpr struct {
	QuestionLoc source.Loc
	Condition   Expression
	IfTrue      Expression
	IfFalse     Expression
}

func (e *TernaryExpr) Loc() source.Loc { return e.QuestionLoc }
func (*TernaryExpr) isExpression()     {}

// NewExpr is `new T(args)`: constructing a contract, or allocating a
// dynamic array/struct in memory.
type NewExpr struct {
	NewLoc source.Loc
	Type   TypeName
	Args   []Expression
}

func (e *NewExpr) Loc() source.Loc { return e.NewLoc }
func (*NewExpr) isExpression()     {}

// IndexExpr is `base[index]`, or `base[]` for the array-type subscript
// syntax before the post-parse Id[n]... -> Type::Array rewrite (spec.md
// §4.2) resolves it.
type IndexExpr struct {
	BracketLoc source.Loc
	Base       Expression
	Index      Expression // nil for a bare `[]`
}

func (e *IndexExpr) Loc() source.Loc { return e.BracketLoc }
func (*IndexExpr) isExpression()     {}

type MemberExpr struct {
	DotLoc source.Loc
	Base   Expression
	Member Identifier
}

func (e *MemberExpr) Loc() source.Loc { return e.DotLoc }
func (*MemberExpr) isExpression()     {}

// CallExpr is `callee(args)`. Named-argument calls (`f({x: 1, y: 2})`) use
// Names parallel to Args; Names is nil for positional calls.
type CallExpr struct {
	CallLoc source.Loc
	Callee  Expression
	Args    []Expression
	Names   []Identifier
}

func (e *CallExpr) Loc() source.Loc { return e.CallLoc }
func (*CallExpr) isExpression()     {}

// TupleExpr is `(e1, e2, e3)`; a single-element parenthesized expression is
// not a TupleExpr (the parser unwraps it), so len(Elements) != 1 always
// holds for a genuine tuple, and an element may be nil for a skipped
// destructuring position `(a, , b)`.
type TupleExpr struct {
	ParenLoc source.Loc
	Elements []Expression
}

func (e *TupleExpr) Loc() source.Loc { return e.ParenLoc }
func (*TupleExpr) isExpression()     {}

type ArrayLiteralExpr struct {
	BracketLoc source.Loc
	Elements   []Expression
}

func (e *ArrayLiteralExpr) Loc() source.Loc { return e.BracketLoc }
func (*ArrayLiteralExpr) isExpression()     {}

type BoolLiteral struct {
	LitLoc source.Loc
	Value  bool
}

func (e *BoolLiteral) Loc() source.Loc { return e.LitLoc }
func (*BoolLiteral) isExpression()     {}

// NumberLiteral carries the literal's raw decimal/hex text (spec.md §4.1);
// the resolver parses it into an arbitrary-precision value only once it
// knows the destination type, per spec.md §9's "constant-fold-then-type"
// open-question resolution.
type NumberLiteral struct {
	LitLoc source.Loc
	Text   string
	Hex    bool
}

func (e *NumberLiteral) Loc() source.Loc { return e.LitLoc }
func (*NumberLiteral) isExpression()     {}

type AddressLiteral struct {
	LitLoc source.Loc
	Text   string
}

func (e *AddressLiteral) Loc() source.Loc { return e.LitLoc }
func (*AddressLiteral) isExpression()     {}

// StringLiteralExpr covers the adjacent-string-literal-concatenation form
// `"a" "b"`, matching original_source's `StringLiteral(Vec<StringLiteral>)`.
type StringLiteralExpr struct {
	Parts []StringPart
}

type StringPart struct {
	Loc   source.Loc
	Value string
}

func (e *StringLiteralExpr) Loc() source.Loc { return e.Parts[0].Loc }
func (*StringLiteralExpr) isExpression()     {}

type HexLiteralExpr struct {
	Parts []StringPart
}

func (e *HexLiteralExpr) Loc() source.Loc { return e.Parts[0].Loc }
func (*HexLiteralExpr) isExpression()     {}

type VariableExpr struct {
	Name Identifier
}

func (e *VariableExpr) Loc() source.Loc { return e.Name.Loc }
func (*VariableExpr) isExpression()     {}

// TypeExpr names a type used in an expression position — the callee of
// `T(x)` explicit-cast syntax, which the parser cannot distinguish from a
// function call until the resolver looks up `T`.
type TypeExpr struct {
	Type TypeName
}

func (e *TypeExpr) Loc() source.Loc { return e.Type.Loc }
func (*TypeExpr) isExpression()     {}
