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

package abi

import (
	"github.com/solc-core/solc/internal/target"
	"github.com/solc-core/solc/internal/types"
)

// Length computes the buffer size to allocate for v's encoding under t, per
// spec.md §4.6's recursive length formulas. It is an upper bound: each
// dynamic length prefix is counted at its 5-byte maximum, while Encode
// writes the shortest compact prefix, so len(Encode(...)) can be smaller:
//
//	Bool                              -> 1
//	Int(n)/Uint(n)                     -> n/8
//	FixedBytes(n)                     -> n
//	Address                           -> target address length
//	FunctionSelector                  -> target selector length
//	Enum                               -> 1 (underlying width, see length.go note)
//	Struct                             -> sum of field lengths (null -> defaults)
//	Array(T, all fixed dims)          -> N * length(T)
//	Array(T, has a dynamic dim)      -> (packed ? 0 : 5) + sum of element lengths
//	String / DynamicBytes             -> (packed ? 0 : 5) + payload length
//	ExternalFunction                  -> address length + 4
//
// packed selects Solidity's abi.encodePacked rules (no length prefixes, no
// padding) over the default, length-prefixed encoding.
func Length(v Value, t types.Type, packed bool, tgt target.Target, fields structFields) uint64 {
	switch t.Kind {
	case types.Bool:
		return 1
	case types.Int, types.Uint:
		return uint64(t.Bits) / 8
	case types.FixedBytes:
		return uint64(t.BytesLen)
	case types.Address:
		return uint64(tgt.AddressLength)
	case types.FunctionSelector:
		return uint64(tgt.SelectorLength)
	case types.Enum:
		// This core never tracks an enum's declared variant count on the
		// Type itself, so the underlying integer is always rendered as a
		// single byte (enough for any enum with <= 256 variants, which
		// spec.md's Enum record does not bound further).
		return 1
	case types.Struct:
		fieldTypes := fields(t.StructID)
		var sum uint64
		for i, ft := range fieldTypes {
			sum += Length(fieldValue(v, i, ft), ft, packed, tgt, fields)
		}
		return sum
	case types.Array:
		if !t.IsDynamic() {
			n := productOfDims(t.Dims)
			var sum uint64
			for i := uint64(0); i < n; i++ {
				sum += Length(elemValue(v, i, *t.Elem), *t.Elem, packed, tgt, fields)
			}
			return sum
		}
		inner := stripOutermostDim(t)
		var sum uint64
		for _, ev := range v.Elems {
			sum += Length(ev, inner, packed, tgt, fields)
		}
		if packed {
			return sum
		}
		return 5 + sum
	case types.String:
		payload := uint64(len(v.Str))
		if packed {
			return payload
		}
		return 5 + payload
	case types.DynamicBytes:
		payload := uint64(len(v.Bytes))
		if packed {
			return payload
		}
		return 5 + payload
	case types.ExternalFunction:
		return uint64(tgt.AddressLength) + 4
	default:
		return 0
	}
}
