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
	"errors"
	"fmt"
	"math/big"

	"github.com/solc-core/solc/internal/target"
	"github.com/solc-core/solc/internal/types"
)

// errUnderrun is returned (wrapped with position context) when a decode
// needs more bytes than the buffer has left.
var errUnderrun = errors.New("abi: buffer underrun")

// Encode serializes v as t, per spec.md §4.6's byte-layout rules: integers
// little-endian at the next-power-of-two bit width, Bytes(n) byte-reversed,
// struct/array fields emitted in order with no inter-field padding, and a
// compact-integer length prefix ahead of every dynamic array/string/bytes
// payload unless packed is set.
func Encode(v Value, t types.Type, packed bool, tgt target.Target, fields structFields) []byte {
	switch t.Kind {
	case types.Bool:
		if v.Bool {
			return []byte{1}
		}
		return []byte{0}
	case types.Int, types.Uint:
		return encodeInt(intOf(v), int(t.Bits))
	case types.FixedBytes:
		return reverseBytes(padRight(v.Bytes, int(t.BytesLen)))
	case types.Address:
		return padBigEndian(v.Bytes, tgt.AddressLength)
	case types.FunctionSelector:
		return padBigEndian(v.Bytes, tgt.SelectorLength)
	case types.Enum:
		return encodeInt(intOf(v), 8)
	case types.Struct:
		fieldTypes := fields(t.StructID)
		var out []byte
		for i, ft := range fieldTypes {
			out = append(out, Encode(fieldValue(v, i, ft), ft, packed, tgt, fields)...)
		}
		return out
	case types.Array:
		if !t.IsDynamic() {
			n := productOfDims(t.Dims)
			var out []byte
			for i := uint64(0); i < n; i++ {
				out = append(out, Encode(elemValue(v, i, *t.Elem), *t.Elem, packed, tgt, fields)...)
			}
			return out
		}
		inner := stripOutermostDim(t)
		var out []byte
		if !packed {
			out = append(out, CompactIntEncode(uint64(len(v.Elems)))...)
		}
		for _, ev := range v.Elems {
			out = append(out, Encode(ev, inner, packed, tgt, fields)...)
		}
		return out
	case types.String:
		payload := []byte(v.Str)
		var out []byte
		if !packed {
			out = append(out, CompactIntEncode(uint64(len(payload)))...)
		}
		return append(out, payload...)
	case types.DynamicBytes:
		var out []byte
		if !packed {
			out = append(out, CompactIntEncode(uint64(len(v.Bytes)))...)
		}
		return append(out, v.Bytes...)
	case types.ExternalFunction:
		out := padBigEndian(v.Bytes, tgt.AddressLength)
		return append(out, padBigEndian(v.Sel, 4)...)
	default:
		return nil
	}
}

// Decode deserializes buf as t, failing if any recursive step underruns the
// buffer or if bytes remain once t is fully consumed (spec.md §4.6's decode
// invariants).
func Decode(buf []byte, t types.Type, packed bool, tgt target.Target, fields structFields) (Value, error) {
	v, n, err := decode(buf, t, packed, tgt, fields)
	if err != nil {
		return Value{}, err
	}
	if n != len(buf) {
		return Value{}, fmt.Errorf("abi: %d trailing byte(s) after decoding %s", len(buf)-n, t)
	}
	return v, nil
}

func decode(buf []byte, t types.Type, packed bool, tgt target.Target, fields structFields) (Value, int, error) {
	switch t.Kind {
	case types.Bool:
		if len(buf) < 1 {
			return Value{}, 0, errUnderrun
		}
		return Value{Bool: buf[0] != 0}, 1, nil
	case types.Int, types.Uint:
		width := nextPow2(int(t.Bits)) / 8
		if len(buf) < width {
			return Value{}, 0, errUnderrun
		}
		return Value{Int: decodeInt(buf[:width], t.Kind == types.Int)}, width, nil
	case types.FixedBytes:
		n := int(t.BytesLen)
		if len(buf) < n {
			return Value{}, 0, errUnderrun
		}
		return Value{Bytes: reverseBytes(buf[:n])}, n, nil
	case types.Address:
		n := tgt.AddressLength
		if len(buf) < n {
			return Value{}, 0, errUnderrun
		}
		return Value{Bytes: clone(buf[:n])}, n, nil
	case types.FunctionSelector:
		n := tgt.SelectorLength
		if len(buf) < n {
			return Value{}, 0, errUnderrun
		}
		return Value{Bytes: clone(buf[:n])}, n, nil
	case types.Enum:
		if len(buf) < 1 {
			return Value{}, 0, errUnderrun
		}
		return Value{Int: big.NewInt(int64(buf[0]))}, 1, nil
	case types.Struct:
		fieldTypes := fields(t.StructID)
		elems := make([]Value, 0, len(fieldTypes))
		off := 0
		for _, ft := range fieldTypes {
			fv, n, err := decode(buf[off:], ft, packed, tgt, fields)
			if err != nil {
				return Value{}, 0, err
			}
			elems = append(elems, fv)
			off += n
		}
		return Value{Elems: elems}, off, nil
	case types.Array:
		if !t.IsDynamic() {
			n := productOfDims(t.Dims)
			elems := make([]Value, 0, n)
			off := 0
			for i := uint64(0); i < n; i++ {
				ev, c, err := decode(buf[off:], *t.Elem, packed, tgt, fields)
				if err != nil {
					return Value{}, 0, err
				}
				elems = append(elems, ev)
				off += c
			}
			return Value{Elems: elems}, off, nil
		}
		if packed {
			return Value{}, 0, fmt.Errorf("abi: packed dynamic array decode needs an explicit element count")
		}
		inner := stripOutermostDim(t)
		length, off, ok := CompactIntDecode(buf)
		if !ok {
			return Value{}, 0, errUnderrun
		}
		elems := make([]Value, 0, length)
		for i := uint64(0); i < length; i++ {
			ev, c, err := decode(buf[off:], inner, packed, tgt, fields)
			if err != nil {
				return Value{}, 0, err
			}
			elems = append(elems, ev)
			off += c
		}
		return Value{Elems: elems}, off, nil
	case types.String:
		if packed {
			return Value{}, 0, fmt.Errorf("abi: packed string decode needs an explicit length")
		}
		l, c, ok := CompactIntDecode(buf)
		if !ok || len(buf) < c+int(l) {
			return Value{}, 0, errUnderrun
		}
		return Value{Str: string(buf[c : c+int(l)])}, c + int(l), nil
	case types.DynamicBytes:
		if packed {
			return Value{}, 0, fmt.Errorf("abi: packed bytes decode needs an explicit length")
		}
		l, c, ok := CompactIntDecode(buf)
		if !ok || len(buf) < c+int(l) {
			return Value{}, 0, errUnderrun
		}
		return Value{Bytes: clone(buf[c : c+int(l)])}, c + int(l), nil
	case types.ExternalFunction:
		n := tgt.AddressLength + 4
		if len(buf) < n {
			return Value{}, 0, errUnderrun
		}
		return Value{Bytes: clone(buf[:tgt.AddressLength]), Sel: clone(buf[tgt.AddressLength:n])}, n, nil
	default:
		return Value{}, 0, fmt.Errorf("abi: unsupported type %s", t)
	}
}

func intOf(v Value) *big.Int {
	if v.Int == nil {
		return big.NewInt(0)
	}
	return v.Int
}

// nextPow2 rounds an integer bit width up to the next serializable width in
// {8, 16, 32, 64, 128, 256}, per spec.md §4.6's "little-endian to the next
// power of two" rule.
func nextPow2(bits int) int {
	for _, w := range [...]int{8, 16, 32, 64, 128, 256} {
		if bits <= w {
			return w
		}
	}
	return 256
}

func encodeInt(v *big.Int, bits int) []byte {
	width := nextPow2(bits) / 8
	be := twosComplementBytes(v, width)
	return reverseBytes(be)
}

func decodeInt(b []byte, signed bool) *big.Int {
	be := reverseBytes(b)
	v := new(big.Int).SetBytes(be)
	if signed && len(be) > 0 && be[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(len(be)*8))
		v.Sub(v, mod)
	}
	return v
}

// twosComplementBytes renders v as width big-endian bytes, two's-complement
// encoded if v is negative.
func twosComplementBytes(v *big.Int, width int) []byte {
	out := make([]byte, width)
	if v.Sign() >= 0 {
		b := v.Bytes()
		copy(out[width-len(b):], b)
		return out
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
	wrapped := new(big.Int).Add(mod, v)
	b := wrapped.Bytes()
	copy(out[width-len(b):], b)
	return out
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

func padRight(b []byte, n int) []byte {
	out := make([]byte, n)
	copy(out, b)
	return out
}

func padBigEndian(b []byte, n int) []byte {
	out := make([]byte, n)
	if len(b) >= n {
		copy(out, b[len(b)-n:])
	} else {
		copy(out[n-len(b):], b)
	}
	return out
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
