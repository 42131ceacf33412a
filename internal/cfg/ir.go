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

// Package cfg implements spec.md §4.4: lowering a resolved function body
// into a per-function Control Flow Graph of typed instructions, alongside
// the Variable Table and Loop Scope Stack the builder threads through that
// lowering.
//
// Grounded on internal/tdp/compiler/ir.go's doLayout shape (a builder
// struct that walks an already-resolved descriptor field by field,
// appending to a handful of parallel slices) generalized from "lay out a
// message's fields" to "lower a function body's statements"; the explicit
// Design Notes of spec.md §9 call out that the Expression IR should be "one
// closed tagged union... the back-end pattern-matches once per
// instruction", which is the same shape internal/types.Type already uses,
// so Expr follows Type's one-flat-struct-tagged-by-Kind design rather than
// introducing a second interface hierarchy; Instruction and Statement-level
// blocks instead follow internal/ast's interface-plus-concrete-struct
// pattern, since their shapes vary far more than Expr's do.
package cfg

import (
	"fmt"

	"github.com/solc-core/solc/internal/dbg"
	"github.com/solc-core/solc/internal/source"
	"github.com/solc-core/solc/internal/types"
)

// ExprKind discriminates Expr's variants (spec.md §4's "Expressions (IR)").
type ExprKind uint8

const (
	ExInvalid ExprKind = iota
	ExUndefined
	ExPoison

	// Arithmetic; Unchecked distinguishes an `unchecked { ... }` block.
	ExAdd
	ExSub
	ExMul
	ExUnsignedDiv
	ExSignedDiv
	ExUnsignedMod
	ExSignedMod
	ExPower

	// Bitwise and shift.
	ExBitAnd
	ExBitOr
	ExBitXor
	ExShl
	ExShr
	ExComplement

	// Comparisons, split signed/unsigned per spec.md's expression invariants.
	ExUnsignedLess
	ExSignedLess
	ExUnsignedLessEq
	ExSignedLessEq
	ExEq
	ExNotEq

	ExAnd
	ExOr
	ExNot
	ExTernary // Index: condition, Left: if-true, Right: if-false.

	ExBoolLiteral
	ExIntLiteral
	ExBytesLiteral
	ExStringLiteral
	ExAddressLiteral
	ExZeroValue // the default value of Ty: 0, false, zeroed bytes, or a null reference.

	ExVariable   // Var significant: a resolved vartab position.
	ExLoad       // Left significant: dereference a Ref.
	ExStorageLoad // Slot significant: load a whole storage slot.

	// Casts.
	ExZeroExt
	ExSignExt
	ExTruncate
	ExBitCast
	ExBytesCast // byte-reversing bytesN <-> dynamic bytes cast.

	ExGetRef    // Left significant: take a reference to an lvalue.
	ExSubscript // Left + Index significant.
	ExMember    // Left + Field significant: struct field access.

	ExAllocDynamicBytes // Left (size, for `new`) and Args (initial values) significant.

	ExHash            // hash of Args; StrValue names the function ("keccak256" or "sha256").
	ExAbiEncode       // Args significant, Packed flag.
	ExAbiDecode       // Left (buffer) significant.
	ExReturnData      // external-call return-data capture.
	ExFormatString    // Args significant: revert-reason formatting.
	ExInternalFunction // FuncIndex significant.
	ExExternalFunction // Left (address) + Selector significant.
)

// Expr is the closed Expression IR of spec.md §4: every node carries its
// own result Type (Ty) so that no instruction consumer needs to re-infer
// it, and every conversion between types is an explicit node rather than
// an implicit annotation.
type Expr struct {
	Kind ExprKind
	Loc  source.Loc
	Ty   types.Type

	// Binary/unary operand slots. Most kinds use a small, fixed subset.
	Left  *Expr
	Right *Expr

	Unchecked bool // valid for arithmetic kinds.

	Var Var // ExVariable

	IntValue   string // literal text as written (decimal or 0x hex), ExIntLiteral (arbitrary precision, parsed by the consumer)
	BoolValue  bool   // ExBoolLiteral
	BytesValue []byte // not set by the builder: byte and address literals carry their text in StrValue
	StrValue   string // ExStringLiteral, ExBytesLiteral and ExAddressLiteral text; ExHash function name

	Slot uint64 // ExStorageLoad: relative slot, already resolved by internal/storage.

	Field int    // ExMember: field index within the struct's FieldLayout.
	Index *Expr  // ExSubscript

	Args   []Expr // ExHash, ExAbiEncode, ExFormatString
	Packed bool    // ExAbiEncode

	FuncIndex int    // ExInternalFunction: index into the CFG list
	Selector  []byte // ExExternalFunction
}

// Var names a resolved variable's vartab identity (spec.md §4's "Each
// resolved variable has: id, ty, unique small-integer position, and a
// Storage tag").
type Var struct {
	ID      string
	Pos     int
	Ty      types.Type
	Storage StorageTag
	Slot    uint64 // significant when Storage == Contract
	Const   int    // significant when Storage == ConstantVar
}

// StorageTag discriminates a Var's storage class.
type StorageTag uint8

const (
	Local StorageTag = iota
	Contract
	ConstantVar
)

// Instruction is a non-terminal CFG instruction (spec.md §4's "Non-terminal
// instructions include...").
type Instruction interface {
	isInstruction()
}

type Set struct {
	Var  Var
	Expr Expr
}

type Eval struct{ Expr Expr }

type Store struct {
	Dest  Expr
	Value Expr
}

type ClearStorage struct {
	Ty   types.Type
	Slot Expr
}

type SetStorage struct {
	Ty    types.Type
	Slot  Expr
	Value Expr
}

type SetStorageBytes struct {
	Slot   Expr
	Offset Expr
	Value  Expr
}

type Call struct {
	Results []Var
	Callee  Expr
	Args    []Expr
}

type ExternalCall struct {
	Results []Var
	Address Expr
	Value   Expr // nil if no value transfer accompanies the call.
	Args    []Expr
}

type Constructor struct {
	Results []Var
	Args    []Expr
}

type EmitEvent struct {
	EventID int
	Args    []Expr
}

type Print struct{ Args []Expr }

type ValueTransfer struct {
	To    Expr
	Value Expr
}

type SelfDestruct struct{ Beneficiary Expr }

func (Set) isInstruction()             {}
func (Eval) isInstruction()             {}
func (Store) isInstruction()           {}
func (ClearStorage) isInstruction()    {}
func (SetStorage) isInstruction()      {}
func (SetStorageBytes) isInstruction() {}
func (Call) isInstruction()            {}
func (ExternalCall) isInstruction()    {}
func (Constructor) isInstruction()     {}
func (EmitEvent) isInstruction()       {}
func (Print) isInstruction()           {}
func (ValueTransfer) isInstruction()   {}
func (SelfDestruct) isInstruction()    {}

// Terminator is the block's sole exit edge (spec.md §4's "Blocks terminate
// with exactly one of...").
type Terminator interface {
	isTerminator()
}

type Return struct{ Values []Expr }

type Branch struct{ Target int }

type BranchCond struct {
	Cond        Expr
	TrueTarget  int
	FalseTarget int
}

type AssertFailure struct{ Message string }

type Unreachable struct{}

func (Return) isTerminator()        {}
func (Branch) isTerminator()        {}
func (BranchCond) isTerminator()    {}
func (AssertFailure) isTerminator() {}
func (Unreachable) isTerminator()   {}

// BasicBlock is one node of a function's CFG (spec.md §4: "an ordered list
// of BasicBlocks. Each block has a name, an optional set of φ-variables...
// and an ordered list of Instructions").
type BasicBlock struct {
	Name         string
	Phi          []Var
	Instructions []Instruction
	Term         Terminator

	reachable bool // not set: the builder tracks reachability while lowering (Builder.reach); consumers read Term.
}

// CFG is the per-function-body result of spec.md §4.4, block 0 always the
// entry (spec.md §4's "Block 0 is the entry").
type CFG struct {
	Blocks []*BasicBlock
	Vars   []Var
}

// Format renders a block as "name{phi: [...], instructions: N, term: ...}"
// without paying for a string allocation unless something actually
// formats the block (e.g. a failing test's require.Len message).
func (b *BasicBlock) Format(s fmt.State, verb rune) {
	dbg.Dict(b.Name, "phi", b.Phi, "instructions", len(b.Instructions), "term", b.Term).Format(s, verb)
}

func (b *BasicBlock) String() string { return fmt.Sprint(b) }

// Format renders the whole block list, one per line.
func (c *CFG) Format(s fmt.State, verb rune) {
	dbg.Formatter(func(fs fmt.State) {
		for i, b := range c.Blocks {
			fmt.Fprintf(fs, "%d: %v\n", i, b)
		}
	}).Format(s, verb)
}

func (c *CFG) String() string { return fmt.Sprint(c) }

func (c *CFG) newBlock(name string) int {
	c.Blocks = append(c.Blocks, &BasicBlock{Name: name})
	return len(c.Blocks) - 1
}

func (c *CFG) block(i int) *BasicBlock { return c.Blocks[i] }
