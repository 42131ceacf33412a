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

package storage

import (
	"golang.org/x/crypto/sha3"

	"github.com/holiman/uint256"

	"github.com/solc-core/solc/internal/types"
)

// Keccak256Slot hashes a 32-byte big-endian slot key, the base operation
// spec.md §4.5 uses to derive the element/data base of dynamic arrays,
// strings, and bytes ("elements at base slot keccak256(s)").
func Keccak256Slot(slot *uint256.Int) *uint256.Int {
	b := slot.Bytes32()
	h := sha3.NewLegacyKeccak256()
	h.Write(b[:])
	return new(uint256.Int).SetBytes(h.Sum(nil))
}

// FixedArrayElemSlot computes a fixed array element's slot: base + i *
// elemSlots, per spec.md §4.5 ("element i at s + i*slotsize(T)").
func FixedArrayElemSlot(base *uint256.Int, index uint64, elemSlots uint64) *uint256.Int {
	off := new(uint256.Int).SetUint64(index * elemSlots)
	return new(uint256.Int).Add(base, off)
}

// DynamicArrayElemBase is keccak256(s), the base slot dynamic-array elements
// are derived from (spec.md §4.5).
func DynamicArrayElemBase(headerSlot *uint256.Int) *uint256.Int {
	return Keccak256Slot(headerSlot)
}

// DynamicArrayElemSlot computes dynamic-array element i's slot.
func DynamicArrayElemSlot(headerSlot *uint256.Int, index uint64, elemSlots uint64) *uint256.Int {
	return FixedArrayElemSlot(DynamicArrayElemBase(headerSlot), index, elemSlots)
}

// StructFieldSlot computes a struct field's absolute slot from the struct's
// base slot and the field's relative slot (from Pack).
func StructFieldSlot(base *uint256.Int, relSlot uint64) *uint256.Int {
	off := new(uint256.Int).SetUint64(relSlot)
	return new(uint256.Int).Add(base, off)
}

// EncodeMappingKey implements spec.md §4.5's key-encoding rule: "strings
// hash their bytes, values are right-padded big-endian to 32 bytes". raw is
// the key's big-endian byte representation (e.g. a uint256 value's bytes, or
// a UTF-8 string's bytes).
func EncodeMappingKey(raw []byte, keyType types.Type) []byte {
	if keyType.Kind == types.String || keyType.Kind == types.DynamicBytes {
		h := sha3.NewLegacyKeccak256()
		h.Write(raw)
		return h.Sum(nil)
	}
	out := make([]byte, 32)
	copy(out, raw) // right-padded: raw occupies the low-index (left) bytes, zeros trail
	return out
}

// MappingValueSlot computes keccak256(encodedKey || s), the value slot for
// key k in a mapping with header slot s (spec.md §4.5).
func MappingValueSlot(encodedKey []byte, headerSlot *uint256.Int) *uint256.Int {
	s := headerSlot.Bytes32()
	buf := make([]byte, 0, len(encodedKey)+32)
	buf = append(buf, encodedKey...)
	buf = append(buf, s[:]...)
	h := sha3.NewLegacyKeccak256()
	h.Write(buf)
	return new(uint256.Int).SetBytes(h.Sum(nil))
}

// StringDataBase is the base slot for a string/bytes value's packed payload,
// keccak256(s); consecutive slots hold the payload bytes when it exceeds one
// slot (spec.md §4.5: "data at keccak256(s) concatenated across consecutive
// slots as needed").
func StringDataBase(headerSlot *uint256.Int) *uint256.Int {
	return Keccak256Slot(headerSlot)
}

// StringDataSlot computes the slot holding payload bytes [slotIndex*32,
// slotIndex*32+32) of a string/bytes value.
func StringDataSlot(headerSlot *uint256.Int, slotIndex uint64) *uint256.Int {
	off := new(uint256.Int).SetUint64(slotIndex)
	return new(uint256.Int).Add(StringDataBase(headerSlot), off)
}
