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
	"github.com/stretchr/testify/require"

	"github.com/solc-core/solc/internal/ast"
)

func TestExprToType_Identifier(t *testing.T) {
	t.Parallel()

	e := &ast.VariableExpr{Name: ast.Identifier{Name: "Foo"}}
	ty, err := ast.ExprToType(e)
	require.NoError(t, err)
	require.NotNil(t, ty.Name)
	assert.Equal(t, "Foo", ty.Name.Name)
	assert.Empty(t, ty.Dims)
}

func TestExprToType_IndexChain(t *testing.T) {
	t.Parallel()

	// `Foo[3][]` parses as IndexExpr(IndexExpr(VariableExpr("Foo"), 3), nil).
	three := &ast.NumberLiteral{Text: "3"}
	inner := &ast.IndexExpr{Base: &ast.VariableExpr{Name: ast.Identifier{Name: "Foo"}}, Index: three}
	outer := &ast.IndexExpr{Base: inner, Index: nil}

	ty, err := ast.ExprToType(outer)
	require.NoError(t, err)
	require.NotNil(t, ty.Name)
	assert.Equal(t, "Foo", ty.Name.Name)
	require.Len(t, ty.Dims, 2)
	assert.Same(t, three, ty.Dims[0].Length)
	assert.Nil(t, ty.Dims[1].Length)
}

func TestExprToType_PrimitiveBase(t *testing.T) {
	t.Parallel()

	base := &ast.TypeExpr{Type: ast.TypeName{Primitive: ast.PrimitiveUint, Width: 256}}
	outer := &ast.IndexExpr{Base: base, Index: nil}

	ty, err := ast.ExprToType(outer)
	require.NoError(t, err)
	assert.Equal(t, ast.PrimitiveUint, ty.Primitive)
	require.Len(t, ty.Dims, 1)
	assert.Nil(t, ty.Dims[0].Length)
}

func TestExprToType_NonIdentifierHeadErrors(t *testing.T) {
	t.Parallel()

	call := &ast.CallExpr{Callee: &ast.VariableExpr{Name: ast.Identifier{Name: "f"}}}
	_, err := ast.ExprToType(call)
	assert.Error(t, err)
}
