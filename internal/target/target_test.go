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

package target_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solc-core/solc/internal/target"
)

func TestBuiltinProfiles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, target.Slots, target.EVMWasm.Storage)
	assert.Equal(t, target.Slots, target.Substrate.Storage)
	assert.Equal(t, target.AccountBuffer, target.BPF.Storage)
	assert.Equal(t, 4, target.EVMWasm.SelectorLength)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	const doc = `
name: custom
address_length: 20
value_length: 32
pointer_length: 4
selector_length: 8
storage: account-buffer
`
	tgt, err := target.Load([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "custom", tgt.Name)
	assert.Equal(t, target.AccountBuffer, tgt.Storage)
	assert.Equal(t, 8, tgt.SelectorLength)
}

func TestLoad_UnknownStorageModel(t *testing.T) {
	t.Parallel()

	_, err := target.Load([]byte("name: bad\naddress_length: 20\nselector_length: 4\nstorage: nonsense\n"))
	require.Error(t, err)
}

func TestLoad_MissingFields(t *testing.T) {
	t.Parallel()

	_, err := target.Load([]byte("name: incomplete\n"))
	require.Error(t, err)
}
