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

package types_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solc-core/solc/internal/types"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "uint", types.Uint.String())
	assert.Equal(t, "bytesN", types.FixedBytes.String())
	assert.Contains(t, types.Kind(200).String(), "Kind(200)")
}

func TestNewInt_InvalidWidthPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { types.NewInt(7) })
	assert.Panics(t, func() { types.NewInt(264) })
	assert.NotPanics(t, func() { types.NewInt(256) })
}

func TestNewUint_InvalidWidthPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { types.NewUint(0) })
	assert.NotPanics(t, func() { types.NewUint(8) })
}

func TestNewFixedBytes_InvalidLengthPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { types.NewFixedBytes(0) })
	assert.Panics(t, func() { types.NewFixedBytes(33) })
	assert.NotPanics(t, func() { types.NewFixedBytes(32) })
}

func TestType_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, types.NewUint(256).Equal(types.NewUint(256)))
	assert.False(t, types.NewUint(256).Equal(types.NewUint(128)))
	assert.False(t, types.NewUint(8).Equal(types.NewInt(8)))

	a := types.NewArray(types.NewUint(8), types.FixedDim(3))
	b := types.NewArray(types.NewUint(8), types.FixedDim(3))
	c := types.NewArray(types.NewUint(8), types.FixedDim(4))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	m1 := types.NewMapping(types.NewAddress(false), types.NewUint(256))
	m2 := types.NewMapping(types.NewAddress(false), types.NewUint(256))
	assert.True(t, m1.Equal(m2))
}

func TestType_IsDynamic(t *testing.T) {
	t.Parallel()

	assert.True(t, types.NewString().IsDynamic())
	assert.True(t, types.NewDynamicBytes().IsDynamic())
	assert.False(t, types.NewUint(256).IsDynamic())

	fixedArr := types.NewArray(types.NewUint(8), types.FixedDim(4))
	assert.False(t, fixedArr.IsDynamic())

	dynArr := types.NewArray(types.NewUint(8), types.DynamicDim())
	assert.True(t, dynArr.IsDynamic())

	nestedDynArr := types.NewArray(types.NewArray(types.NewUint(8), types.DynamicDim()), types.FixedDim(2))
	assert.True(t, nestedDynArr.IsDynamic())
}

func TestType_IsReference(t *testing.T) {
	t.Parallel()

	assert.True(t, types.NewString().IsReference())
	assert.True(t, types.NewDynamicBytes().IsReference())
	assert.True(t, types.NewArray(types.NewUint(8), types.FixedDim(2)).IsReference())
	assert.True(t, types.NewStruct(1).IsReference())
	assert.False(t, types.NewUint(8).IsReference())
	assert.False(t, types.NewAddress(false).IsReference())
}

func TestType_IsSigned_PanicsOnNonInteger(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { types.NewBool().IsSigned() })
	assert.True(t, types.NewInt(8).IsSigned())
	assert.False(t, types.NewUint(8).IsSigned())
}

func TestType_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		typ  types.Type
		want string
	}{
		{"uint256", types.NewUint(256), "uint256"},
		{"int8", types.NewInt(8), "int8"},
		{"bytes20", types.NewFixedBytes(20), "bytes20"},
		{"address", types.NewAddress(false), "address"},
		{"address payable", types.NewAddress(true), "address payable"},
		{"string", types.NewString(), "string"},
		{"bytes", types.NewDynamicBytes(), "bytes"},
		{
			"fixed array",
			types.NewArray(types.NewUint(8), types.FixedDim(4)),
			"uint8[4]",
		},
		{
			"dynamic array",
			types.NewArray(types.NewUint(8), types.DynamicDim()),
			"uint8[]",
		},
		{
			"mapping",
			types.NewMapping(types.NewAddress(false), types.NewUint(256)),
			"mapping(address => uint256)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.typ.String())
		})
	}
}

func TestType_StringFunc(t *testing.T) {
	t.Parallel()

	f := types.Func{
		Params:     []types.Type{types.NewUint(256)},
		Returns:    []types.Type{types.NewBool()},
		Mutability: types.MutView,
	}
	got := types.NewInternalFunction(f).String()
	assert.Equal(t, "function(uint256) view returns (bool)", got)
}

func TestMutability_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "view", types.MutView.String())
	assert.Equal(t, "payable", types.MutPayable.String())
}

func TestImplicitlyConvertible(t *testing.T) {
	t.Parallel()

	assert.True(t, types.ImplicitlyConvertible(types.NewUint(8), types.NewUint(256)))
	assert.False(t, types.ImplicitlyConvertible(types.NewUint(256), types.NewUint(8)))
	assert.True(t, types.ImplicitlyConvertible(types.NewUint(8), types.NewInt(16)))
	assert.False(t, types.ImplicitlyConvertible(types.NewUint(8), types.NewInt(8)))
	assert.True(t, types.ImplicitlyConvertible(types.NewAddress(true), types.NewAddress(false)))
	assert.False(t, types.ImplicitlyConvertible(types.NewAddress(false), types.NewAddress(true)))
}

func TestExplicitlyConvertible(t *testing.T) {
	t.Parallel()

	assert.True(t, types.ExplicitlyConvertible(types.NewUint(256), types.NewUint(8)))
	assert.True(t, types.ExplicitlyConvertible(types.NewInt(8), types.NewUint(8)))
	assert.True(t, types.ExplicitlyConvertible(types.NewUint(160), types.NewFixedBytes(20)))
	assert.False(t, types.ExplicitlyConvertible(types.NewUint(8), types.NewFixedBytes(20)))
	assert.False(t, types.ExplicitlyConvertible(types.NewBool(), types.NewUint(8)))
}

func TestLiteralFits(t *testing.T) {
	t.Parallel()

	assert.True(t, types.LiteralFits(big.NewInt(255), types.NewUint(8)))
	assert.False(t, types.LiteralFits(big.NewInt(256), types.NewUint(8)))
	assert.False(t, types.LiteralFits(big.NewInt(-1), types.NewUint(8)))
	assert.True(t, types.LiteralFits(big.NewInt(-128), types.NewInt(8)))
	assert.False(t, types.LiteralFits(big.NewInt(-129), types.NewInt(8)))
}

func TestArithmeticResult(t *testing.T) {
	t.Parallel()

	res, ok := types.ArithmeticResult(types.NewUint(8), types.NewUint(256), false)
	assert.True(t, ok)
	assert.Equal(t, types.NewUint(256), res)

	_, ok = types.ArithmeticResult(types.NewInt(8), types.NewUint(8), false)
	assert.False(t, ok)

	res, ok = types.ArithmeticResult(types.NewInt(8), types.NewUint(8), true)
	assert.True(t, ok)
	assert.Equal(t, types.NewUint(8), res)

	_, ok = types.ArithmeticResult(types.NewBool(), types.NewUint(8), false)
	assert.False(t, ok)
}

func TestDivModResult(t *testing.T) {
	t.Parallel()

	signed, bits := types.DivModResult(types.NewInt(8), types.NewUint(256))
	assert.True(t, signed)
	assert.Equal(t, uint16(256), bits)

	signed, _ = types.DivModResult(types.NewUint(8), types.NewUint(256))
	assert.False(t, signed)
}
