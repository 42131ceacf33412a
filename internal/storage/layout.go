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

// Package storage implements spec.md §4.5: recursive contract-storage slot
// derivation, keccak256-based slot hashing for dynamic arrays/mappings, and
// (for the BPF account-buffer target) the alternative flat/sparse layout
// named in spec.md §4.5's "alternative, non-slot target model".
//
// Grounded structurally on internal/tdp/compiler/ir.go's doLayout (walking
// fields in declaration order, packing by alignment into a byte cursor) but
// generalized from "struct field bit offset" to "state variable storage
// slot": doLayout's single running byte cursor becomes Pack's (slot, offset)
// pair, and its alignment-driven padding decision becomes scalarSize's
// whole-slot-or-packed branch.
package storage

import (
	"github.com/holiman/uint256"

	"github.com/solc-core/solc/internal/debug"
	"github.com/solc-core/solc/internal/target"
	"github.com/solc-core/solc/internal/types"
)

// StructFields resolves a struct id to its ordered field types; ns.Namespace
// implements this against its struct arena. Kept as a function type rather
// than an interface so storage never imports ns (storage is a leaf package
// consumed by both ns and cfg).
type StructFields func(types.StructID) []types.Type

// FieldLayout is one field or state variable's position within its
// containing slot sequence (a contract, or a struct's own sequence).
type FieldLayout struct {
	// Slot is the 0-based slot index relative to the sequence's base slot.
	Slot uint64
	// Offset is the byte offset within that slot, for a packed scalar.
	Offset uint8
	// Size is the packed byte width, or 0 if the field occupies one or more
	// whole slots by itself (use NumSlots to find out how many).
	Size uint8
}

// scalarSize reports the packed byte width of t if t is a non-reference
// scalar eligible to share a slot with neighboring fields (spec.md §4.3's
// Namespace note: "struct field offsets within a slot are precomputed").
// Reference/composite types (arrays, mappings, strings, structs) always
// start a fresh slot, so they report ok=false.
func scalarSize(t types.Type, tgt target.Target) (size uint8, ok bool) {
	switch t.Kind {
	case types.Bool:
		return 1, true
	case types.Int, types.Uint:
		return uint8(t.Bits / 8), true
	case types.FixedBytes:
		return t.BytesLen, true
	case types.Address:
		return uint8(tgt.AddressLength), true
	case types.Enum:
		return 1, true // underlying integer type is always <= 1 byte wide here (enum value count <= 256)
	case types.FunctionSelector:
		return uint8(tgt.SelectorLength), true
	default:
		return 0, false
	}
}

// NumSlots reports how many whole 32-byte slots t occupies at the top of its
// own sequence, per spec.md §4.5's recursive rules: a dynamic array/mapping/
// string/bytes occupies exactly its header slot (elements live at a
// keccak-derived base, outside the contract's own slot sequence); a fixed
// array of N elements of T occupies N * NumSlots(T) slots (spec.md: "element
// i at s + i*slotsize(T)"); a struct occupies as many slots as Pack assigns
// its last field plus that field's own NumSlots.
func NumSlots(t types.Type, fields StructFields, tgt target.Target) uint64 {
	if _, ok := scalarSize(t, tgt); ok {
		return 1
	}
	switch t.Kind {
	case types.Mapping, types.String, types.DynamicBytes:
		return 1
	case types.Array:
		if !t.IsDynamic() {
			n := uint64(1)
			for _, d := range t.Dims {
				n *= d.Length
			}
			return n * NumSlots(*t.Elem, fields, tgt)
		}
		return 1 // dynamic array: header slot only, elements hashed out-of-band
	case types.Struct:
		layout := Pack(fields(t.StructID), fields, tgt)
		if len(layout) == 0 {
			return 0
		}
		fieldTypes := fields(t.StructID)
		last := layout[len(layout)-1]
		lastType := fieldTypes[len(fieldTypes)-1]
		if last.Size > 0 {
			return last.Slot + 1
		}
		return last.Slot + NumSlots(lastType, fields, tgt)
	default:
		debug.Assert(false, "storage: NumSlots called on non-storable type %v", t)
		return 1
	}
}

// Pack assigns a (slot, offset) to each field of a struct or contract in
// declaration order, sharing a slot between consecutive scalar fields that
// fit (spec.md §4.3 "honoring packing rules of the target's address/value
// sizes") and starting composite fields on a fresh slot.
func Pack(fieldTypes []types.Type, fields StructFields, tgt target.Target) []FieldLayout {
	out := make([]FieldLayout, 0, len(fieldTypes))
	var slot uint64
	var offset uint8

	for _, ft := range fieldTypes {
		if size, ok := scalarSize(ft, tgt); ok {
			if int(offset)+int(size) > 32 {
				slot++
				offset = 0
			}
			out = append(out, FieldLayout{Slot: slot, Offset: offset, Size: size})
			offset += size
			if offset == 32 {
				slot++
				offset = 0
			}
			continue
		}

		if offset != 0 {
			slot++
			offset = 0
		}
		out = append(out, FieldLayout{Slot: slot, Offset: 0, Size: 0})
		slot += NumSlots(ft, fields, tgt)
	}
	return out
}

// ContractLayout assigns absolute slots to a flat, ordered list of state
// variables (the linearized base-to-derived order ns.Namespace builds,
// spec.md §4.3 phase 4), returning one FieldLayout per variable. A
// contract's sequence starts at slot 0, so Pack's sequence-relative uint64
// slot indices are already absolute and are returned unchanged.
func ContractLayout(varTypes []types.Type, fields StructFields, tgt target.Target) []FieldLayout {
	rel := Pack(varTypes, fields, tgt)
	return rel
}

// Slot renders a FieldLayout's relative slot index as a uint256, for use by
// the recursive access-lowering helpers in access.go.
func Slot(n uint64) *uint256.Int { return new(uint256.Int).SetUint64(n) }
