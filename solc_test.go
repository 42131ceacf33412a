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

package solc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	solc "github.com/solc-core/solc"
	"github.com/solc-core/solc/filecache"
	"github.com/solc-core/solc/internal/target"
)

// TestParseAndResolve_SingleFile mirrors spec.md §8's E1 scenario end to
// end through the public driver: a Celsius/Fahrenheit-shaped contract
// compiles with no errors and produces one CFG per function.
func TestParseAndResolve_SingleFile(t *testing.T) {
	t.Parallel()

	cache := filecache.New()
	cache.Put("temp.sol", []byte(`
contract Temp {
    int256 celsius;

    function setCelsius(int256 c) public {
        celsius = c;
    }

    function toFahrenheit() public view returns (int256 f) {
        f = celsius * 9 / 5 + 32;
    }
}
`))

	prog, err := solc.ParseAndResolve("temp.sol", cache, target.EVMWasm)
	require.NoError(t, err)
	require.False(t, prog.HasErrors(), prog.Diagnostics())

	require.Len(t, prog.Files, 1)
	cfgs := prog.CFGs[prog.Files[0].Index]
	require.Len(t, cfgs, 2)
	for _, c := range cfgs {
		assert.NotEmpty(t, c.Blocks)
	}
}

// TestParseAndResolve_ImportClosure covers the import-dependency-order
// traversal of spec.md §5: the imported file is visited and compiled in its
// own right, and is listed before the file that imports it.
func TestParseAndResolve_ImportClosure(t *testing.T) {
	t.Parallel()

	cache := filecache.New()
	cache.Put("base.sol", []byte(`
contract Base {
    uint256 total;
}
`))
	cache.Put("main.sol", []byte(`
import "base.sol";

contract Main {
    function noop() public pure {}
}
`))

	prog, err := solc.ParseAndResolve("main.sol", cache, target.EVMWasm)
	require.NoError(t, err)
	require.Len(t, prog.Files, 2)
	assert.Equal(t, "base.sol", prog.Files[0].Path)
	assert.Equal(t, "main.sol", prog.Files[1].Path)
}

// TestParseAndResolve_MissingFileIsAnError covers the "not found" half of
// spec.md §6's FileCache contract.
func TestParseAndResolve_MissingFileIsAnError(t *testing.T) {
	t.Parallel()

	_, err := solc.ParseAndResolve("nope.sol", filecache.New(), target.EVMWasm)
	assert.Error(t, err)
}
