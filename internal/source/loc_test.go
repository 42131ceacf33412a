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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solc-core/solc/internal/source"
)

func TestOffsets_Position(t *testing.T) {
	t.Parallel()

	text := "pragma solidity >=0.8.0;\ncontract C {\n    uint x;\n}\n"
	o := source.NewOffsets("c.sol", []byte(text))

	tests := []struct {
		name   string
		offset uint32
		want   source.Position
	}{
		{"start of file", 0, source.Position{Line: 1, Column: 1}},
		{"mid first line", 7, source.Position{Line: 1, Column: 8}},
		{"start of second line", 25, source.Position{Line: 2, Column: 1}},
		{"inside third line", 43, source.Position{Line: 3, Column: 6}},
		{"past end of file clamps", 10_000, source.Position{Line: 5, Column: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, o.Position(tt.offset))
		})
	}
}

func TestLoc_Span(t *testing.T) {
	t.Parallel()

	a := source.Loc{File: 0, Start: 4, End: 10}
	b := source.Loc{File: 0, Start: 8, End: 20}

	assert.Equal(t, source.Loc{File: 0, Start: 4, End: 20}, a.Span(b))
}

func TestLoc_Nowhere(t *testing.T) {
	t.Parallel()

	assert.False(t, source.Nowhere.IsValid())
}
