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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solc-core/solc/internal/ast"
	"github.com/solc-core/solc/internal/source"
)

func TestExpression_Loc(t *testing.T) {
	t.Parallel()

	loc := source.Loc{File: 0, Start: 3, End: 4}
	var e ast.Expression = &ast.VariableExpr{Name: ast.Identifier{Loc: loc, Name: "x"}}
	assert.Equal(t, loc, e.Loc())

	bin := &ast.BinaryExpr{OpLoc: loc, Op: ast.OpAdd, Left: e, Right: e}
	assert.Equal(t, loc, bin.Loc())
}

func TestStatement_Loc(t *testing.T) {
	t.Parallel()

	loc := source.Loc{File: 0, Start: 10, End: 11}
	var s ast.Statement = &ast.ReturnStatement{ReturnLoc: loc}
	assert.Equal(t, loc, s.Loc())

	expr := &ast.VariableExpr{Name: ast.Identifier{Loc: loc, Name: "x"}}
	exprStmt := &ast.ExpressionStatement{Expr: expr}
	assert.Equal(t, loc, exprStmt.Loc())
}

func TestDataLocation_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "memory", ast.Memory.String())
	assert.Equal(t, "storage", ast.Storage.String())
	assert.Equal(t, "calldata", ast.Calldata.String())
	assert.Equal(t, "", ast.DefaultLocation.String())
}

func TestSourceUnitParts(t *testing.T) {
	t.Parallel()

	unit := &ast.SourceUnit{
		Parts: []ast.SourceUnitPart{
			&ast.PragmaDirective{Name: ast.Identifier{Name: "solidity"}, Value: "^0.8.0"},
			&ast.ContractDefinition{Name: ast.Identifier{Name: "C"}, Kind: ast.ContractKindContract},
		},
	}
	assert.Len(t, unit.Parts, 2)

	contract, ok := unit.Parts[1].(*ast.ContractDefinition)
	assert.True(t, ok)
	assert.Equal(t, "C", contract.Name.Name)
}
