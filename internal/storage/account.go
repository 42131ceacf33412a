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
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// AccountOffset computes a flat byte offset into the BPF target's
// contiguous account-data buffer (spec.md §4.5's "alternative, non-slot
// target model"): fixed-size state variables are laid out back to back in
// declaration order instead of one-per-keccak-slot.
//
// Grounded on original_source/src/emit/solana/mod.rs's account-data layout,
// generalized here behind target.Target.Storage == target.AccountBuffer so
// the same FieldLayout byte-packing that ContractLayout computes for the
// slot model doubles as the account-buffer byte cursor (SPEC_FULL.md §3.5).
func AccountOffset(layout []FieldLayout, index int) uint64 {
	return layout[index].Slot*32 + uint64(layout[index].Offset)
}

// SparseBucket hashes an encoded key into one of numBuckets buckets for the
// BPF target's SparseLookup primitive (spec.md §4.5), which replaces
// keccak-derived slot arithmetic for mappings and dynamic arrays when the
// back-end has no notion of a 32-byte storage slot.
func SparseBucket(encodedKey []byte, numBuckets uint64) uint64 {
	if numBuckets == 0 {
		return 0
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(encodedKey)
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8]) % numBuckets
}
