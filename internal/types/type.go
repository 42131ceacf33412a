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

// Package types implements the Type sum described in spec.md §3: a closed,
// tagged union covering primitives, composites, references, and callables,
// plus the Cast rules of spec.md §4.3 that decide implicit vs. explicit
// conversions and pick concrete signed/unsigned operator variants.
//
// Following the Design Notes in spec.md §9 ("make the Expression IR a closed
// tagged union... the back-end pattern-matches once per instruction"), Type
// is one flat struct tagged by Kind rather than an interface with one
// concrete type per variant: most Kinds need zero or one extra field, and a
// single struct keeps equality in one place: Equal compares any two Types
// structurally (Type holds the Dims slice, so it is not comparable with ==
// and cannot be used as a map key).
package types

import (
	"fmt"
	"strings"
)

// StructID, EnumID, UserTypeID, and FunctionID are small-integer handles
// into a Namespace's arena.Arena tables (spec.md §9's "arenas of records
// indexed by small integers"). They live here, rather than as
// arena.ID[ns.Struct] etc., so that this package does not need to import
// the resolver package that owns the arenas — Type is a leaf in the
// dependency graph.
type (
	StructID   int32
	EnumID     int32
	UserTypeID int32
	ContractID int32
	FunctionID int32
)

// Kind discriminates the variants of Type.
type Kind uint8

const (
	Invalid Kind = iota
	Bool
	Int              // signed integer, Bits significant
	Uint             // unsigned integer, Bits significant
	FixedBytes       // bytesN, BytesLen significant
	Address          // Payable significant
	String           // dynamic UTF-8 string
	DynamicBytes     // dynamic byte string
	FunctionSelector // no extra field: length is target.SelectorLength, carried separately
	Slice            // Elem significant: an in-memory slice view (e.g. calldata slice)
	Array            // Elem + Dims significant
	Struct           // StructID significant
	Mapping          // Elem is value type, MapKey is key type
	Enum             // EnumID significant
	UserType         // UserTypeID significant (a transparent alias)
	Ref              // Elem significant: in-memory pointer
	StorageRef       // Elem significant: storage location: erased by load/store lowering
	InternalFunction // Func significant
	ExternalFunction // Func significant
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "<invalid>"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case FixedBytes:
		return "bytesN"
	case Address:
		return "address"
	case String:
		return "string"
	case DynamicBytes:
		return "bytes"
	case FunctionSelector:
		return "function-selector"
	case Slice:
		return "slice"
	case Array:
		return "array"
	case Struct:
		return "struct"
	case Mapping:
		return "mapping"
	case Enum:
		return "enum"
	case UserType:
		return "user-type"
	case Ref:
		return "ref"
	case StorageRef:
		return "storage-ref"
	case InternalFunction:
		return "internal-function"
	case ExternalFunction:
		return "external-function"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Dim is one dimension of an Array type: either a statically known length,
// or Dynamic.
type Dim struct {
	Fixed   bool
	Length  uint64 // only meaningful if Fixed
	Dynamic bool   // redundant with !Fixed, kept for readable literals
}

// FixedDim constructs a statically-sized array dimension.
func FixedDim(n uint64) Dim { return Dim{Fixed: true, Length: n} }

// DynamicDim constructs a dynamically-sized array dimension ("[]").
func DynamicDim() Dim { return Dim{Dynamic: true} }

// Mutability is the state-mutability of a callable type (spec.md §3
// "InternalFunction{params, returns, mutability}").
type Mutability uint8

const (
	MutNonPayable Mutability = iota
	MutView
	MutPure
	MutPayable
)

func (m Mutability) String() string {
	switch m {
	case MutNonPayable:
		return "nonpayable"
	case MutView:
		return "view"
	case MutPure:
		return "pure"
	case MutPayable:
		return "payable"
	default:
		return "nonpayable"
	}
}

// Func is the signature carried by InternalFunction/ExternalFunction types.
type Func struct {
	Params     []Type
	Returns    []Type
	Mutability Mutability
}

func (f *Func) equal(g *Func) bool {
	if f == nil || g == nil {
		return f == g
	}
	if f.Mutability != g.Mutability || len(f.Params) != len(g.Params) || len(f.Returns) != len(g.Returns) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equal(g.Params[i]) {
			return false
		}
	}
	for i := range f.Returns {
		if !f.Returns[i].Equal(g.Returns[i]) {
			return false
		}
	}
	return true
}

// Type is the tagged union described in spec.md §3.
type Type struct {
	Kind Kind

	// Int / Uint: width in bits, a multiple of 8 in [8, 256] (spec.md §3
	// invariant).
	Bits uint16

	// FixedBytes: length in bytes, in [1, 32] (spec.md §3 invariant).
	BytesLen uint8

	// Address: whether this is the `address payable` subtype.
	Payable bool

	// Slice / Array / Ref / StorageRef / Mapping(value): the element type.
	Elem *Type

	// Mapping: the key type. Only scalar/string/fixed-bytes keys are valid;
	// the resolver enforces this when building a Mapping type.
	MapKey *Type

	// Array: one Dim per dimension, outermost first.
	Dims []Dim

	// Struct / Enum / UserType: the id of the declared type.
	StructID   StructID
	EnumID     EnumID
	UserTypeID UserTypeID

	// InternalFunction / ExternalFunction.
	Func *Func
}

// Scalar constructors.

func NewBool() Type { return Type{Kind: Bool} }

// NewInt builds a signed integer type. bits must be a multiple of 8 in
// [8, 256]; the caller (the parser/resolver) is responsible for rejecting
// malformed literals before reaching here, so this panics rather than
// returning an error (spec.md §7: internal invariant violations are
// compiler bugs, not user-facing diagnostics).
func NewInt(bits uint16) Type {
	mustValidWidth(bits)
	return Type{Kind: Int, Bits: bits}
}

// NewUint builds an unsigned integer type; see NewInt for the width
// contract.
func NewUint(bits uint16) Type {
	mustValidWidth(bits)
	return Type{Kind: Uint, Bits: bits}
}

func mustValidWidth(bits uint16) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		panic(fmt.Sprintf("types: invalid integer width %d", bits))
	}
}

// NewFixedBytes builds a bytesN type; n must be in [1, 32].
func NewFixedBytes(n uint8) Type {
	if n < 1 || n > 32 {
		panic(fmt.Sprintf("types: invalid fixed-bytes length %d", n))
	}
	return Type{Kind: FixedBytes, BytesLen: n}
}

// NewAddress builds an address type; payable selects `address payable`.
func NewAddress(payable bool) Type { return Type{Kind: Address, Payable: payable} }

func NewString() Type       { return Type{Kind: String} }
func NewDynamicBytes() Type { return Type{Kind: DynamicBytes} }

// NewFunctionSelector builds the type of `this.f.selector`.
func NewFunctionSelector() Type { return Type{Kind: FunctionSelector} }

// NewSlice builds an in-memory slice view over elem (e.g. a calldata
// array slice).
func NewSlice(elem Type) Type { return Type{Kind: Slice, Elem: &elem} }

// NewArray builds an Array(elem, dims) type; dims is ordered outermost
// first, matching the declaration syntax `elem[d0][d1]...`.
func NewArray(elem Type, dims ...Dim) Type {
	return Type{Kind: Array, Elem: &elem, Dims: append([]Dim(nil), dims...)}
}

func NewStruct(id StructID) Type     { return Type{Kind: Struct, StructID: id} }
func NewEnum(id EnumID) Type         { return Type{Kind: Enum, EnumID: id} }
func NewUserType(id UserTypeID) Type { return Type{Kind: UserType, UserTypeID: id} }

// NewMapping builds a Mapping(key, value) type. Per spec.md §3, a mapping
// may only appear inside storage; that constraint is enforced by the
// resolver (ns package) when it processes a variable declaration, not by
// the type constructor itself.
func NewMapping(key, value Type) Type {
	return Type{Kind: Mapping, MapKey: &key, Elem: &value}
}

// NewRef builds an in-memory pointer to elem.
func NewRef(elem Type) Type { return Type{Kind: Ref, Elem: &elem} }

// NewStorageRef builds a storage-location reference to elem. Per spec.md
// §3, this never appears in a memory expression; load/store lowering
// erases it.
func NewStorageRef(elem Type) Type { return Type{Kind: StorageRef, Elem: &elem} }

func NewInternalFunction(f Func) Type { return Type{Kind: InternalFunction, Func: &f} }
func NewExternalFunction(f Func) Type { return Type{Kind: ExternalFunction, Func: &f} }

// IsInteger reports whether t is Int or Uint.
func (t Type) IsInteger() bool { return t.Kind == Int || t.Kind == Uint }

// IsSigned reports whether t is a signed integer. Panics if t is not an
// integer type; callers must check IsInteger first.
func (t Type) IsSigned() bool {
	if !t.IsInteger() {
		panic("types: IsSigned on non-integer type " + t.String())
	}
	return t.Kind == Int
}

// IsReference reports whether t is one of the reference types named in
// spec.md §3: Array, Struct, String, or DynamicBytes.
func (t Type) IsReference() bool {
	switch t.Kind {
	case Array, Struct, String, DynamicBytes:
		return true
	default:
		return false
	}
}

// IsDynamic reports whether t is a reference type whose dimensions are not
// all fixed (spec.md §3: "A reference type... whose dimensions are not all
// fixed is dynamic; fixed-reference types are passed by value.").
//
// String and DynamicBytes are always dynamic. A Struct is dynamic iff any
// field's type is dynamic; since Type alone cannot see struct fields, this
// method reports false for every Struct and only decides the array case
// directly expressible from the Type itself.
func (t Type) IsDynamic() bool {
	switch t.Kind {
	case String, DynamicBytes:
		return true
	case Array:
		for _, d := range t.Dims {
			if !d.Fixed {
				return true
			}
		}
		return t.Elem != nil && t.Elem.IsDynamic()
	default:
		return false
	}
}

// Equal reports structural equality, recursing through Elem/MapKey/Dims
// and Func. Two UserType values that alias the same underlying type are
// only Equal if their UserTypeID matches; the resolver is responsible for
// comparing underlying types when it needs alias-transparent equality.
func (t Type) Equal(u Type) bool {
	if t.Kind != u.Kind {
		return false
	}
	switch t.Kind {
	case Int, Uint:
		return t.Bits == u.Bits
	case FixedBytes:
		return t.BytesLen == u.BytesLen
	case Address:
		return t.Payable == u.Payable
	case Slice, Ref, StorageRef:
		return t.Elem.Equal(*u.Elem)
	case Array:
		if len(t.Dims) != len(u.Dims) {
			return false
		}
		for i := range t.Dims {
			if t.Dims[i] != u.Dims[i] {
				return false
			}
		}
		return t.Elem.Equal(*u.Elem)
	case Struct:
		return t.StructID == u.StructID
	case Enum:
		return t.EnumID == u.EnumID
	case UserType:
		return t.UserTypeID == u.UserTypeID
	case Mapping:
		return t.MapKey.Equal(*u.MapKey) && t.Elem.Equal(*u.Elem)
	case InternalFunction, ExternalFunction:
		return t.Func.equal(u.Func)
	default:
		return true
	}
}

// String renders a canonical Solidity-like spelling, which doubles as the
// canonical ABI type name used by selector computation (spec.md §6:
// "canonical type names (uint256 not uint, etc.)").
func (t Type) String() string {
	switch t.Kind {
	case Invalid:
		return "<invalid>"
	case Bool:
		return "bool"
	case Int:
		return fmt.Sprintf("int%d", t.Bits)
	case Uint:
		return fmt.Sprintf("uint%d", t.Bits)
	case FixedBytes:
		return fmt.Sprintf("bytes%d", t.BytesLen)
	case Address:
		if t.Payable {
			return "address payable"
		}
		return "address"
	case String:
		return "string"
	case DynamicBytes:
		return "bytes"
	case FunctionSelector:
		return "function"
	case Slice:
		return t.Elem.String() + "[]"
	case Array:
		var b strings.Builder
		b.WriteString(t.Elem.String())
		for _, d := range t.Dims {
			if d.Fixed {
				fmt.Fprintf(&b, "[%d]", d.Length)
			} else {
				b.WriteString("[]")
			}
		}
		return b.String()
	case Struct:
		return fmt.Sprintf("struct#%d", t.StructID)
	case Enum:
		return fmt.Sprintf("enum#%d", t.EnumID)
	case UserType:
		return fmt.Sprintf("usertype#%d", t.UserTypeID)
	case Mapping:
		return fmt.Sprintf("mapping(%s => %s)", t.MapKey, t.Elem)
	case Ref:
		return "ref<" + t.Elem.String() + ">"
	case StorageRef:
		return "storageref<" + t.Elem.String() + ">"
	case InternalFunction:
		return funcString("function", t.Func)
	case ExternalFunction:
		return funcString("function external", t.Func)
	default:
		return t.Kind.String()
	}
}

func funcString(prefix string, f *Func) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('(')
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	if f.Mutability != MutNonPayable {
		b.WriteByte(' ')
		b.WriteString(f.Mutability.String())
	}
	if len(f.Returns) > 0 {
		b.WriteString(" returns (")
		for i, r := range f.Returns {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(r.String())
		}
		b.WriteByte(')')
	}
	return b.String()
}
