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

package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solc-core/solc/internal/ast"
	"github.com/solc-core/solc/internal/cfg"
	"github.com/solc-core/solc/internal/ns"
	"github.com/solc-core/solc/internal/target"
)

func ident(name string) ast.Identifier { return ast.Identifier{Name: name} }
func ptr[T any](v T) *T                { return &v }

func uintType(bits uint16) ast.TypeName { return ast.TypeName{Primitive: ast.PrimitiveUint, Width: bits} }

func buildOneFunction(t *testing.T, fn *ast.FunctionDefinition) (*ns.Namespace, *cfg.CFG) {
	t.Helper()

	contract := &ast.ContractDefinition{
		Name:  ident("C"),
		Parts: []ast.ContractPart{fn},
	}
	unit := &ast.SourceUnit{Parts: []ast.SourceUnitPart{contract}}

	n := ns.Build(0, unit, target.EVMWasm)
	require.False(t, n.Diags.HasErrors(), n.Diags.Records())
	require.Equal(t, 1, n.Functions.Len())

	rec := n.Functions.Get(0)
	return n, cfg.Build(n, 0, rec)
}

// TestBuild_NamedReturnZeroInit mirrors spec.md §8's E2 scenario: a named
// return that is never assigned on some path still yields a deterministic
// zero value, via an entry-block Set rather than an uninitialized read.
func TestBuild_NamedReturnZeroInit(t *testing.T) {
	t.Parallel()

	fn := &ast.FunctionDefinition{
		Name:       ptr(ident("f")),
		Visibility: ast.Public,
		Returns:    []ast.VariableDeclaration{{Type: uintType(256), Name: ident("x")}},
		Body: &ast.Block{
			Stmts: []ast.Statement{
				&ast.IfStatement{
					Condition: &ast.BoolLiteral{Value: false},
					Then: &ast.ExpressionStatement{Expr: &ast.BinaryExpr{
						Op:    ast.OpAssign,
						Left:  &ast.VariableExpr{Name: ident("x")},
						Right: &ast.NumberLiteral{Text: "7"},
					}},
				},
			},
		},
	}

	_, c := buildOneFunction(t, fn)
	require.NotEmpty(t, c.Blocks)

	entry := c.Blocks[0]
	require.NotEmpty(t, entry.Instructions)
	set, ok := entry.Instructions[0].(cfg.Set)
	require.True(t, ok)
	assert.Equal(t, "x", set.Var.ID)
	assert.Equal(t, cfg.ExZeroValue, set.Expr.Kind)

	last := c.Blocks[len(c.Blocks)-1]
	ret, ok := last.Term.(cfg.Return)
	require.True(t, ok)
	require.Len(t, ret.Values, 1)
	assert.Equal(t, "x", ret.Values[0].Var.ID)
}

// TestBuild_MissingReturnIsAnError covers spec.md §4.4's reachability rule:
// a non-void, non-named-return function that can fall off the end is an
// error.
func TestBuild_MissingReturnIsAnError(t *testing.T) {
	t.Parallel()

	fn := &ast.FunctionDefinition{
		Name:       ptr(ident("f")),
		Visibility: ast.Public,
		Returns:    []ast.VariableDeclaration{{Type: uintType(256)}},
		Body:       &ast.Block{},
	}

	n, _ := buildNamespaceOnly(t, fn)
	assert.True(t, n.Diags.HasErrors())
}

func buildNamespaceOnly(t *testing.T, fn *ast.FunctionDefinition) (*ns.Namespace, *cfg.CFG) {
	t.Helper()
	contract := &ast.ContractDefinition{Name: ident("C"), Parts: []ast.ContractPart{fn}}
	unit := &ast.SourceUnit{Parts: []ast.SourceUnitPart{contract}}
	n := ns.Build(0, unit, target.EVMWasm)
	require.Equal(t, 1, n.Functions.Len())
	rec := n.Functions.Get(0)
	return n, cfg.Build(n, 0, rec)
}

// TestBuild_IfElsePhiSet covers spec.md §4.4's φ-node placement: a variable
// assigned in only one arm of an if/else is still part of the join block's
// φ-set, since the dirty tracker records any-path assignment.
func TestBuild_IfElsePhiSet(t *testing.T) {
	t.Parallel()

	fn := &ast.FunctionDefinition{
		Name:       ptr(ident("f")),
		Visibility: ast.Public,
		Body: &ast.Block{
			Stmts: []ast.Statement{
				&ast.VariableDefinitionStatement{
					Decl:        ast.VariableDeclaration{Type: uintType(256), Name: ident("y")},
					Initializer: &ast.NumberLiteral{Text: "0"},
				},
				&ast.IfStatement{
					Condition: &ast.BoolLiteral{Value: true},
					Then: &ast.ExpressionStatement{Expr: &ast.BinaryExpr{
						Op:    ast.OpAssign,
						Left:  &ast.VariableExpr{Name: ident("y")},
						Right: &ast.NumberLiteral{Text: "1"},
					}},
				},
				&ast.ReturnStatement{},
			},
		},
	}

	_, c := buildOneFunction(t, fn)

	var endBlk *cfg.BasicBlock
	for _, blk := range c.Blocks {
		if blk.Name == "if.end" {
			endBlk = blk
		}
	}
	require.NotNil(t, endBlk)
	require.Len(t, endBlk.Phi, 1)
	assert.Equal(t, "y", endBlk.Phi[0].ID)
}

// TestBuild_BreakOutsideLoopIsAnError covers the Loop Scope Stack contract
// of spec.md §4.4: "absence of loop ⇒ error".
func TestBuild_BreakOutsideLoopIsAnError(t *testing.T) {
	t.Parallel()

	fn := &ast.FunctionDefinition{
		Name:       ptr(ident("f")),
		Visibility: ast.Public,
		Body: &ast.Block{
			Stmts: []ast.Statement{&ast.BreakStatement{}},
		},
	}

	n, _ := buildNamespaceOnly(t, fn)
	assert.True(t, n.Diags.HasErrors())
}

// TestBuild_WhileLoopLowersToCondBodyEnd checks the block shape spec.md
// §4.4 names for While: cond/body/end, with break/continue wired to end
// and cond respectively.
func TestBuild_WhileLoopLowersToCondBodyEnd(t *testing.T) {
	t.Parallel()

	fn := &ast.FunctionDefinition{
		Name:       ptr(ident("f")),
		Visibility: ast.Public,
		Body: &ast.Block{
			Stmts: []ast.Statement{
				&ast.WhileStatement{
					Condition: &ast.BoolLiteral{Value: true},
					Body:      &ast.BreakStatement{},
				},
				&ast.ReturnStatement{},
			},
		},
	}

	n, c := buildOneFunction(t, fn)
	require.False(t, n.Diags.HasErrors(), n.Diags.Records())

	var names []string
	for _, blk := range c.Blocks {
		names = append(names, blk.Name)
	}
	assert.Contains(t, names, "while.cond")
	assert.Contains(t, names, "while.body")
	assert.Contains(t, names, "while.end")
}
