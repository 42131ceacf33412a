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

// Package abi implements spec.md §4.6's recursive ABI encode/decode
// lowering: the length formulas and serialization/deserialization rules the
// back-end must honor bit-exactly for the AbiEncode/AbiDecode IR nodes
// internal/cfg emits. This package is also the reference codec (operating
// on a runtime Value rather than just a types.Type) used to state and test
// the round-trip invariants of spec.md §8.
//
// Grounded on internal/zigzag's sign/width handling for integer codecs and
// internal/tdp/tag.go's small bit-packed tagged value, generalized from
// protobuf varints to the compact-integer length prefix spec.md's glossary
// defines, and from a fixed wire type set to the full recursive Solidity ABI
// type structure.
package abi

import (
	"math/big"

	"github.com/solc-core/solc/internal/storage"
	"github.com/solc-core/solc/internal/types"
)

// Value is a runtime ABI value tagged by the types.Type it is being
// encoded/decoded as. Null distinguishes an absent struct/fixed-array
// reference from one whose fields/elements are all present but zero,
// implementing spec.md §4.6's "null branch... substitutes default values".
type Value struct {
	Null  bool
	Bool  bool
	Int   *big.Int // Int, Uint, Enum
	Bytes []byte   // FixedBytes, DynamicBytes, Address, FunctionSelector
	Str   string   // String
	Elems []Value  // Array, Struct
	Sel   []byte   // ExternalFunction: 4-byte selector half
}

// Default builds the zero Value for t: spec.md §4.6's "default values for
// every field/element" a null struct or fixed array substitutes.
func Default(t types.Type) Value {
	switch t.Kind {
	case types.Int, types.Uint, types.Enum:
		return Value{Int: big.NewInt(0)}
	case types.FixedBytes:
		return Value{Bytes: make([]byte, t.BytesLen)}
	case types.Address, types.FunctionSelector:
		return Value{Bytes: nil}
	case types.Struct, types.Array:
		return Value{Null: true}
	case types.ExternalFunction:
		return Value{Bytes: nil, Sel: nil}
	default:
		return Value{}
	}
}

func fieldValue(v Value, i int, ft types.Type) Value {
	if !v.Null && i < len(v.Elems) {
		return v.Elems[i]
	}
	return Default(ft)
}

func elemValue(v Value, i uint64, elemType types.Type) Value {
	if !v.Null && i < uint64(len(v.Elems)) {
		return v.Elems[i]
	}
	return Default(elemType)
}

func productOfDims(dims []types.Dim) uint64 {
	n := uint64(1)
	for _, d := range dims {
		n *= d.Length
	}
	return n
}

// stripOutermostDim returns the type an Array's elements have once its
// outermost (necessarily dynamic, per IsDynamic's scan order) dimension is
// consumed — either the declared element type, if Array had only one
// dimension, or the same Array with one fewer Dims entry.
func stripOutermostDim(t types.Type) types.Type {
	if len(t.Dims) <= 1 {
		return *t.Elem
	}
	return types.Type{Kind: types.Array, Elem: t.Elem, Dims: t.Dims[1:]}
}

// structFields re-exports storage.StructFields so abi callers do not need to
// import storage directly just to build a resolver callback.
type structFields = storage.StructFields
