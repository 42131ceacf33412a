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

package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solc-core/solc/internal/diag"
	"github.com/solc-core/solc/internal/source"
)

func TestList_OrdersBySourceLocation(t *testing.T) {
	t.Parallel()

	var l diag.List
	l.Add(diag.Error, source.Loc{File: 1, Start: 100}, "second file error")
	l.Add(diag.Warning, source.Loc{File: 0, Start: 50}, "first file, later")
	l.Add(diag.Error, source.Loc{File: 0, Start: 10}, "first file, earlier")

	records := l.Records()
	assert.Equal(t, "first file, earlier", records[0].Message)
	assert.Equal(t, "first file, later", records[1].Message)
	assert.Equal(t, "second file error", records[2].Message)
}

func TestList_HasErrors(t *testing.T) {
	t.Parallel()

	var l diag.List
	assert.False(t, l.HasErrors())

	l.Add(diag.Warning, source.Nowhere, "shadowed state variable")
	assert.False(t, l.HasErrors())

	l.Add(diag.Error, source.Nowhere, "undeclared identifier")
	assert.True(t, l.HasErrors())
	assert.Equal(t, 1, l.Count(diag.Error))
	assert.Equal(t, 1, l.Count(diag.Warning))
}

func TestList_AddWithNotes(t *testing.T) {
	t.Parallel()

	var l diag.List
	l.AddWithNotes(diag.Warning, source.Loc{File: 0, Start: 20}, []diag.Note{
		{Loc: source.Loc{File: 0, Start: 5}, Message: "previous declaration here"},
	}, "declaration of %q shadows a state variable", "x")

	records := l.Records()
	assert.Len(t, records, 1)
	assert.Len(t, records[0].Notes, 1)
	assert.Contains(t, records[0].String(), "previous declaration here")
}
