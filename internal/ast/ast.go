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

// Package ast defines the syntax tree produced by internal/parser (spec.md
// §4.2): a SourceUnit of contract/interface/library/struct/event/enum/
// pragma/import parts, statements, and expressions. Grounded on
// original_source/src/parser/ast.rs's node shapes, ported from Rust's
// Box<Expression>/enum-per-variant style to Go's usual node-interface style
// (every Statement/Expression implements Loc() source.Loc), since Go has no
// tagged-union enum and a single flat struct covering every expression
// variant (unlike types.Type, which is a closed, small, field-light set)
// would need a field for every operator's operand slots at once.
package ast

import "github.com/solc-core/solc/internal/source"

// Identifier is a name occurrence.
type Identifier struct {
	Loc  source.Loc
	Name string
}

// DataLocation is the storage class of a variable declaration or parameter
// (SPEC_FULL.md §3.2, recovered from original_source's StorageLocation).
type DataLocation uint8

const (
	DefaultLocation DataLocation = iota
	Memory
	Storage
	Calldata
)

func (d DataLocation) String() string {
	switch d {
	case Memory:
		return "memory"
	case Storage:
		return "storage"
	case Calldata:
		return "calldata"
	default:
		return ""
	}
}

// Visibility is a function or state-variable visibility modifier.
type Visibility uint8

const (
	DefaultVisibility Visibility = iota
	Public
	Private
	Internal
	External
)

// StateMutability is a function's declared mutability.
type StateMutability uint8

const (
	DefaultMutability StateMutability = iota
	Pure
	View
	Payable
)

// TypeName is the syntactic spelling of a type: either a primitive keyword
// (int/uint/bytesN/bool/address/string) or an unresolved name the resolver
// must look up, each optionally subscripted by array dimensions.
type TypeName struct {
	Loc       source.Loc
	Primitive PrimitiveKind // PrimitiveInvalid if Name is set instead
	Width     uint16        // Int/Uint bit width
	BytesLen  uint8         // Bytes length
	Name      *Identifier   // set when Primitive == PrimitiveInvalid: an unresolved type name
	Dims      []ArrayDim    // outermost first; empty means not an array
}

// ArrayDim is one `[n]` or `[]` suffix. Length is nil for a dynamic `[]`.
type ArrayDim struct {
	Loc    source.Loc
	Length Expression // nil => dynamic
}

// PrimitiveKind enumerates the primitive type keywords recognized directly
// by the parser, mirroring original_source's PrimitiveType.
type PrimitiveKind uint8

const (
	PrimitiveInvalid PrimitiveKind = iota
	PrimitiveBool
	PrimitiveAddress
	PrimitiveAddressPayable
	PrimitiveString
	PrimitiveInt
	PrimitiveUint
	PrimitiveBytes
	PrimitiveDynamicBytes
)

// VariableDeclaration is a typed, named binding site: a parameter, a local,
// a struct field, or a state variable.
type VariableDeclaration struct {
	Loc      source.Loc
	Type     TypeName
	Location DataLocation
	Name     Identifier
}

// SourceUnit is the root node: a whole parsed file.
type SourceUnit struct {
	Parts []SourceUnitPart
}

// SourceUnitPart is a top-level declaration.
type SourceUnitPart interface{ isSourceUnitPart() }

type PragmaDirective struct {
	Loc   source.Loc
	Name  Identifier
	Value string // raw text up to ';', per spec.md §4.1
}

type ImportDirective struct {
	Loc  source.Loc
	Path string
}

type ContractKind uint8

const (
	ContractKindContract ContractKind = iota
	ContractKindInterface
	ContractKindLibrary
)

// InheritanceSpecifier is one entry of `contract A is B(1, 2), C`.
type InheritanceSpecifier struct {
	Loc  source.Loc
	Name Identifier
	Args []Expression
}

type ContractDefinition struct {
	Loc     source.Loc
	Doc     []string
	Kind    ContractKind
	Name    Identifier
	Bases   []InheritanceSpecifier
	Parts   []ContractPart
	Abstract bool
}

func (*PragmaDirective) isSourceUnitPart()    {}
func (*ImportDirective) isSourceUnitPart()    {}
func (*ContractDefinition) isSourceUnitPart() {}

// ContractPart is a member of a contract/interface/library body.
type ContractPart interface{ isContractPart() }

type StructDefinition struct {
	Loc    source.Loc
	Doc    []string
	Name   Identifier
	Fields []VariableDeclaration
}

type EventParameter struct {
	Type    TypeName
	Indexed bool
	Name    *Identifier
}

type EventDefinition struct {
	Loc       source.Loc
	Doc       []string
	Name      Identifier
	Params    []EventParameter
	Anonymous bool
}

type EnumDefinition struct {
	Loc    source.Loc
	Doc    []string
	Name   Identifier
	Values []Identifier
}

type VariableAttribute uint8

const (
	AttrNone VariableAttribute = iota
	AttrConstant
	AttrImmutable
)

type StateVariableDefinition struct {
	Loc         source.Loc
	Doc         []string
	Type        TypeName
	Visibility  Visibility
	Attrs       []VariableAttribute
	Name        Identifier
	Initializer Expression // nil if none
}

// ModifierInvocation is a use of a modifier on a function, or a base
// constructor call in a function's header (SPEC_FULL.md §3.3); the resolver
// tells the two apart by name lookup.
type ModifierInvocation struct {
	Loc  source.Loc
	Name Identifier
	Args []Expression
}

type ModifierDefinition struct {
	Loc    source.Loc
	Doc    []string
	Name   Identifier
	Params []VariableDeclaration
	Body   Statement
}

type FunctionDefinition struct {
	Loc         source.Loc
	Doc         []string
	Constructor bool
	Fallback    bool
	Receive     bool
	Name        *Identifier // nil for constructor/fallback/receive
	Params      []VariableDeclaration
	Visibility  Visibility
	Mutability  StateMutability
	Virtual     bool
	Override    bool
	Modifiers   []ModifierInvocation
	Returns     []VariableDeclaration
	Body        Statement // nil for an interface/abstract declaration
}

func (*StructDefinition) isContractPart()        {}
func (*EventDefinition) isContractPart()         {}
func (*EnumDefinition) isContractPart()          {}
func (*StateVariableDefinition) isContractPart() {}
func (*ModifierDefinition) isContractPart()      {}
func (*FunctionDefinition) isContractPart()      {}
