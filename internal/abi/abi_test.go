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

package abi_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solc-core/solc/internal/abi"
	"github.com/solc-core/solc/internal/target"
	"github.com/solc-core/solc/internal/types"
)

func noFields(types.StructID) []types.Type { return nil }

func TestCompactInt_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []uint64{0, 1, 63, 64, 16383, 16384, (1 << 30) - 1, 1 << 30, (1 << 38) - 1} {
		enc := abi.CompactIntEncode(n)
		assert.LessOrEqual(t, len(enc), 5)
		got, consumed, ok := abi.CompactIntDecode(enc)
		assert.True(t, ok)
		assert.Equal(t, len(enc), consumed)
		assert.Equal(t, n, got)
	}
}

func TestEncode_Uint256_RoundTrip(t *testing.T) {
	t.Parallel()

	ty := types.NewUint(256)
	v := abi.Value{Int: big.NewInt(1000000)}

	enc := abi.Encode(v, ty, false, target.EVMWasm, noFields)
	assert.Len(t, enc, 32)

	got, err := abi.Decode(enc, ty, false, target.EVMWasm, noFields)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000000), got.Int)
}

func TestEncode_Int8_Negative_RoundTrip(t *testing.T) {
	t.Parallel()

	ty := types.NewInt(8)
	v := abi.Value{Int: big.NewInt(-5)}

	enc := abi.Encode(v, ty, false, target.EVMWasm, noFields)
	got, err := abi.Decode(enc, ty, false, target.EVMWasm, noFields)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), got.Int.Int64())
}

func TestEncode_Bool(t *testing.T) {
	t.Parallel()

	enc := abi.Encode(abi.Value{Bool: true}, types.NewBool(), false, target.EVMWasm, noFields)
	assert.Equal(t, []byte{1}, enc)

	got, err := abi.Decode(enc, types.NewBool(), false, target.EVMWasm, noFields)
	require.NoError(t, err)
	assert.True(t, got.Bool)
}

func TestEncode_String_RoundTrip(t *testing.T) {
	t.Parallel()

	ty := types.NewString()
	v := abi.Value{Str: "hello, solc"}

	enc := abi.Encode(v, ty, false, target.EVMWasm, noFields)
	assert.Equal(t, uint64(5+len("hello, solc")), abi.Length(v, ty, false, target.EVMWasm, noFields))

	got, err := abi.Decode(enc, ty, false, target.EVMWasm, noFields)
	require.NoError(t, err)
	assert.Equal(t, "hello, solc", got.Str)
}

func TestEncode_DynamicArray_RoundTrip(t *testing.T) {
	t.Parallel()

	ty := types.NewArray(types.NewUint(256), types.DynamicDim())
	v := abi.Value{Elems: []abi.Value{
		{Int: big.NewInt(1)},
		{Int: big.NewInt(2)},
		{Int: big.NewInt(3)},
	}}

	enc := abi.Encode(v, ty, false, target.EVMWasm, noFields)
	got, err := abi.Decode(enc, ty, false, target.EVMWasm, noFields)
	require.NoError(t, err)
	require.Len(t, got.Elems, 3)
	assert.Equal(t, int64(2), got.Elems[1].Int.Int64())
}

func TestEncode_FixedArray_NoLengthPrefix(t *testing.T) {
	t.Parallel()

	ty := types.NewArray(types.NewUint(8), types.FixedDim(3))
	v := abi.Value{Elems: []abi.Value{{Int: big.NewInt(1)}, {Int: big.NewInt(2)}, {Int: big.NewInt(3)}}}

	enc := abi.Encode(v, ty, false, target.EVMWasm, noFields)
	assert.Len(t, enc, 3) // one byte per uint8, no prefix: fixed dims carry no length

	got, err := abi.Decode(enc, ty, false, target.EVMWasm, noFields)
	require.NoError(t, err)
	assert.Len(t, got.Elems, 3)
}

func TestEncode_Struct_NullSubstitutesDefaults(t *testing.T) {
	t.Parallel()

	fieldTypes := []types.Type{types.NewUint(256), types.NewBool()}
	fields := func(types.StructID) []types.Type { return fieldTypes }
	ty := types.NewStruct(0)

	null := abi.Value{Null: true}
	enc := abi.Encode(null, ty, false, target.EVMWasm, fields)
	assert.Len(t, enc, int(abi.Length(null, ty, false, target.EVMWasm, fields)))

	got, err := abi.Decode(enc, ty, false, target.EVMWasm, fields)
	require.NoError(t, err)
	require.Len(t, got.Elems, 2)
	assert.Equal(t, int64(0), got.Elems[0].Int.Int64())
	assert.False(t, got.Elems[1].Bool)
}

func TestDecode_Underrun(t *testing.T) {
	t.Parallel()

	_, err := abi.Decode([]byte{0x01, 0x02}, types.NewUint(256), false, target.EVMWasm, noFields)
	assert.Error(t, err)
}

func TestDecode_TrailingBytes(t *testing.T) {
	t.Parallel()

	enc := abi.Encode(abi.Value{Bool: true}, types.NewBool(), false, target.EVMWasm, noFields)
	enc = append(enc, 0xff)

	_, err := abi.Decode(enc, types.NewBool(), false, target.EVMWasm, noFields)
	assert.Error(t, err)
}

func TestEncode_Packed_NoLengthPrefix(t *testing.T) {
	t.Parallel()

	ty := types.NewDynamicBytes()
	v := abi.Value{Bytes: []byte{0xde, 0xad, 0xbe, 0xef}}

	packed := abi.Encode(v, ty, true, target.EVMWasm, noFields)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, packed)

	unpacked := abi.Encode(v, ty, false, target.EVMWasm, noFields)
	assert.Greater(t, len(unpacked), len(packed))
}
