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

package ns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solc-core/solc/internal/ast"
	"github.com/solc-core/solc/internal/diag"
	"github.com/solc-core/solc/internal/ns"
	"github.com/solc-core/solc/internal/target"
)

func ident(name string) ast.Identifier { return ast.Identifier{Name: name} }

func uintType(bits uint16) ast.TypeName { return ast.TypeName{Primitive: ast.PrimitiveUint, Width: bits} }
func boolType() ast.TypeName            { return ast.TypeName{Primitive: ast.PrimitiveBool} }
func addressType() ast.TypeName         { return ast.TypeName{Primitive: ast.PrimitiveAddress} }

func namedType(name string) ast.TypeName {
	n := ident(name)
	return ast.TypeName{Name: &n}
}

// baseChildUnit builds:
//
//	contract Base { uint256 public total; }
//	contract Child is Base {
//	    struct Point { uint256 x; uint256 y; }
//	    function transfer(address to, uint256 amount) public returns (bool ok) {}
//	}
func baseChildUnit() *ast.SourceUnit {
	base := &ast.ContractDefinition{
		Name: ident("Base"),
		Parts: []ast.ContractPart{
			&ast.StateVariableDefinition{Type: uintType(256), Visibility: ast.Public, Name: ident("total")},
		},
	}
	child := &ast.ContractDefinition{
		Name:  ident("Child"),
		Bases: []ast.InheritanceSpecifier{{Name: ident("Base")}},
		Parts: []ast.ContractPart{
			&ast.StructDefinition{
				Name: ident("Point"),
				Fields: []ast.VariableDeclaration{
					{Type: uintType(256), Name: ident("x")},
					{Type: uintType(256), Name: ident("y")},
				},
			},
			&ast.FunctionDefinition{
				Name:       ptr(ident("transfer")),
				Visibility: ast.Public,
				Params: []ast.VariableDeclaration{
					{Type: addressType(), Name: ident("to")},
					{Type: uintType(256), Name: ident("amount")},
				},
				Returns: []ast.VariableDeclaration{
					{Type: boolType(), Name: ident("ok")},
				},
			},
		},
	}
	return &ast.SourceUnit{Parts: []ast.SourceUnitPart{base, child}}
}

func ptr[T any](v T) *T { return &v }

func TestBuild_InheritsStateVariable(t *testing.T) {
	t.Parallel()

	n := ns.Build(0, baseChildUnit(), target.EVMWasm)
	require.False(t, n.Diags.HasErrors(), n.Diags.Records())

	require.Equal(t, 2, n.Contracts.Len())
	child := n.Contracts.Get(1)
	require.Len(t, child.MRO, 2) // Child, Base

	names, types_ := child.LinearStateVars(n)
	require.Len(t, names, 1)
	assert.Equal(t, "total", names[0])
	assert.Equal(t, uint16(256), types_[0].Bits)

	require.Len(t, child.Layout, 1)
	assert.Equal(t, uint64(0), child.Layout[0].Slot)
}

func TestBuild_ResolvesStructFieldsAndLayout(t *testing.T) {
	t.Parallel()

	n := ns.Build(0, baseChildUnit(), target.EVMWasm)
	require.False(t, n.Diags.HasErrors(), n.Diags.Records())

	require.Equal(t, 1, n.Structs.Len())
	point := n.Structs.Get(0)
	assert.Equal(t, []string{"x", "y"}, point.FieldNames)
	require.Len(t, point.Layout, 2)
	assert.Equal(t, uint64(0), point.Layout[0].Slot)
	assert.Equal(t, uint64(1), point.Layout[1].Slot)
}

func TestBuild_ComputesSelector(t *testing.T) {
	t.Parallel()

	n := ns.Build(0, baseChildUnit(), target.EVMWasm)
	require.False(t, n.Diags.HasErrors(), n.Diags.Records())

	require.Equal(t, 1, n.Functions.Len())
	fn := n.Functions.Get(0)
	assert.Equal(t, "transfer(address,uint256)", fn.Signature)
	assert.Len(t, fn.Selector, 4)
}

func TestBuild_DuplicateContractName(t *testing.T) {
	t.Parallel()

	unit := &ast.SourceUnit{Parts: []ast.SourceUnitPart{
		&ast.ContractDefinition{Name: ident("Foo")},
		&ast.ContractDefinition{Name: ident("Foo")},
	}}
	n := ns.Build(0, unit, target.EVMWasm)
	require.True(t, n.Diags.HasErrors())
}

func TestBuild_InheritanceCycle(t *testing.T) {
	t.Parallel()

	unit := &ast.SourceUnit{Parts: []ast.SourceUnitPart{
		&ast.ContractDefinition{Name: ident("A"), Bases: []ast.InheritanceSpecifier{{Name: ident("B")}}},
		&ast.ContractDefinition{Name: ident("B"), Bases: []ast.InheritanceSpecifier{{Name: ident("A")}}},
	}}
	n := ns.Build(0, unit, target.EVMWasm)

	var found bool
	for _, r := range n.Diags.Records() {
		if r.Severity == diag.Error {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBuild_StructSelfReferenceCycleIsAnError(t *testing.T) {
	t.Parallel()

	unit := &ast.SourceUnit{Parts: []ast.SourceUnitPart{
		&ast.ContractDefinition{
			Name: ident("C"),
			Parts: []ast.ContractPart{
				&ast.StructDefinition{
					Name: ident("Node"),
					Fields: []ast.VariableDeclaration{
						{Type: namedType("Node"), Name: ident("self")},
					},
				},
			},
		},
	}}
	n := ns.Build(0, unit, target.EVMWasm)
	assert.True(t, n.Diags.HasErrors())
}

func TestBuild_UndeclaredTypeIsAnError(t *testing.T) {
	t.Parallel()

	unit := &ast.SourceUnit{Parts: []ast.SourceUnitPart{
		&ast.ContractDefinition{
			Name: ident("C"),
			Parts: []ast.ContractPart{
				&ast.StateVariableDefinition{Type: namedType("Missing"), Name: ident("v")},
			},
		},
	}}
	n := ns.Build(0, unit, target.EVMWasm)
	assert.True(t, n.Diags.HasErrors())
}

func TestBuild_PragmaVersionValidation(t *testing.T) {
	t.Parallel()

	unit := &ast.SourceUnit{Parts: []ast.SourceUnitPart{
		&ast.PragmaDirective{Name: ident("solidity"), Value: "not-a-version"},
	}}
	n := ns.Build(0, unit, target.EVMWasm)
	assert.True(t, n.Diags.HasErrors())
}

func TestBuild_PragmaValidVersionIsNotAnError(t *testing.T) {
	t.Parallel()

	unit := &ast.SourceUnit{Parts: []ast.SourceUnitPart{
		&ast.PragmaDirective{Name: ident("solidity"), Value: "^0.8.19"},
	}}
	n := ns.Build(0, unit, target.EVMWasm)
	assert.False(t, n.Diags.HasErrors())
}
