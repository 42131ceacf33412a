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

import "encoding/binary"

// CompactIntEncode serializes n as the glossary's "compact integer": a
// variable-length unsigned integer whose leading byte's top two bits select
// one of four total encoded widths {1, 2, 4, 5} bytes, capping the length
// field's worst-case size at 5 bytes (spec.md §4.6's "5 + length" formula
// for dynamic arrays/strings/bytes).
func CompactIntEncode(n uint64) []byte {
	switch {
	case n < 1<<6:
		return []byte{byte(n)}
	case n < 1<<14:
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, uint16(n)|(1<<14))
		return b
	case n < 1<<30:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, uint32(n)|(2<<30))
		return b
	case n < 1<<38:
		b := make([]byte, 5)
		full := n | (uint64(3) << 38)
		b[0] = byte(full >> 32)
		b[1] = byte(full >> 24)
		b[2] = byte(full >> 16)
		b[3] = byte(full >> 8)
		b[4] = byte(full)
		return b
	default:
		// A length this large has no realistic source (no buffer our front
		// end constructs can exceed 2^38 bytes); treat it as an internal
		// invariant violation rather than a user-facing diagnostic.
		panic("abi: length exceeds compact integer's 38-bit range")
	}
}

// CompactIntDecode is CompactIntEncode's inverse: it reports the decoded
// value and how many leading bytes of buf it consumed, or ok=false if buf is
// too short for the width its leading byte's class bits declare.
func CompactIntDecode(buf []byte) (n uint64, consumed int, ok bool) {
	if len(buf) == 0 {
		return 0, 0, false
	}
	switch buf[0] >> 6 {
	case 0:
		return uint64(buf[0] & 0x3f), 1, true
	case 1:
		if len(buf) < 2 {
			return 0, 0, false
		}
		v := binary.BigEndian.Uint16(buf[:2])
		return uint64(v &^ (3 << 14)), 2, true
	case 2:
		if len(buf) < 4 {
			return 0, 0, false
		}
		v := binary.BigEndian.Uint32(buf[:4])
		return uint64(v &^ (3 << 30)), 4, true
	default:
		if len(buf) < 5 {
			return 0, 0, false
		}
		full := uint64(buf[0])<<32 | uint64(buf[1])<<24 | uint64(buf[2])<<16 | uint64(buf[3])<<8 | uint64(buf[4])
		return full &^ (uint64(3) << 38), 5, true
	}
}
