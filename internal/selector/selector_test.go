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

package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solc-core/solc/internal/selector"
	"github.com/solc-core/solc/internal/target"
	"github.com/solc-core/solc/internal/types"
)

func TestSignature(t *testing.T) {
	t.Parallel()

	sig := selector.Signature("transfer", []types.Type{types.NewAddress(false), types.NewUint(256)})
	assert.Equal(t, "transfer(address,uint256)", sig)
}

func TestCompute_KnownSelector(t *testing.T) {
	t.Parallel()

	// keccak256("transfer(address,uint256)")[:4] == 0xa9059cbb, the
	// well-known ERC-20 transfer selector.
	sel := selector.Compute("transfer(address,uint256)", target.EVMWasm)
	assert.Equal(t, []byte{0xa9, 0x05, 0x9c, 0xbb}, sel)
}

func TestCompute_StableUnderWhitespace(t *testing.T) {
	t.Parallel()

	// Signature takes resolved types, never source text, so parameter names
	// and whitespace cannot reach the signature string (spec.md §8
	// invariant 6); this checks that two Signature calls over the same
	// parameter types give the same selector.
	sigA := selector.Signature("f", []types.Type{types.NewUint(256)})
	sigB := selector.Signature("f", []types.Type{types.NewUint(256)})
	assert.Equal(t, selector.Compute(sigA, target.EVMWasm), selector.Compute(sigB, target.EVMWasm))
}

func TestTable_DetectsDuplicate(t *testing.T) {
	t.Parallel()

	tbl := selector.NewTable()
	selA := selector.Compute("f(uint256)", target.EVMWasm)
	_, dup := tbl.Add("f(uint256)", selA)
	assert.False(t, dup)

	conflict, dup := tbl.Add("g(bytes4)", selA)
	assert.True(t, dup)
	assert.Equal(t, "f(uint256)", conflict)
}
