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

package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solc-core/solc/internal/ast"
	"github.com/solc-core/solc/internal/diag"
)

func parse(t *testing.T, src string) (*ast.SourceUnit, *diag.List) {
	t.Helper()
	var diags diag.List
	p := New(0, []byte(src), &diags)
	unit := p.Parse()
	return unit, &diags
}

func requireNoErrors(t *testing.T, diags *diag.List) {
	t.Helper()
	if diags.HasErrors() {
		for _, r := range diags.Records() {
			t.Logf("%s", r)
		}
		t.Fatalf("unexpected diagnostics")
	}
}

func TestParser_PragmaAndImport(t *testing.T) {
	t.Parallel()
	unit, diags := parse(t, `pragma solidity ^0.8.0;
import "lib.sol";`)
	requireNoErrors(t, diags)
	require.Len(t, unit.Parts, 2)

	pragma, ok := unit.Parts[0].(*ast.PragmaDirective)
	require.True(t, ok)
	require.Equal(t, "solidity", pragma.Name.Name)
	require.Equal(t, "^0.8.0", pragma.Value)

	imp, ok := unit.Parts[1].(*ast.ImportDirective)
	require.True(t, ok)
	require.Equal(t, "lib.sol", imp.Path)
}

func TestParser_ContractWithInheritanceAndStateVariable(t *testing.T) {
	t.Parallel()
	unit, diags := parse(t, `
contract Token is ERC20(18), Ownable {
    uint256 public constant MAX_SUPPLY = 1000000;
}`)
	requireNoErrors(t, diags)

	require.Len(t, unit.Parts, 1)
	cd, ok := unit.Parts[0].(*ast.ContractDefinition)
	require.True(t, ok)
	require.Equal(t, "Token", cd.Name.Name)
	require.Len(t, cd.Bases, 2)
	require.Equal(t, "ERC20", cd.Bases[0].Name.Name)
	require.Len(t, cd.Bases[0].Args, 1)
	require.Equal(t, "Ownable", cd.Bases[1].Name.Name)
}

func TestParser_FunctionWithModifiersAndBody(t *testing.T) {
	t.Parallel()
	unit, diags := parse(t, `
contract C {
    function transfer(address to, uint256 amount) public onlyOwner returns (bool) {
        balances[msg.sender] -= amount;
        balances[to] += amount;
        return true;
    }
}`)
	requireNoErrors(t, diags)
	cd := unit.Parts[0].(*ast.ContractDefinition)
	fn := cd.Parts[0].(*ast.FunctionDefinition)
	require.Equal(t, "transfer", fn.Name.Name)
	require.Equal(t, ast.Public, fn.Visibility)
	require.Len(t, fn.Modifiers, 1)
	require.Equal(t, "onlyOwner", fn.Modifiers[0].Name.Name)
	require.Len(t, fn.Returns, 1)

	body := fn.Body.(*ast.Block)
	require.Len(t, body.Stmts, 3)
	require.IsType(t, &ast.ExpressionStatement{}, body.Stmts[0])
	require.IsType(t, &ast.ReturnStatement{}, body.Stmts[2])
}

func TestParser_VariableDeclarationStatement(t *testing.T) {
	t.Parallel()
	unit, diags := parse(t, `
contract C {
    function f() public {
        uint256 x = 1;
        Foo y;
        y.bar();
    }
}`)
	requireNoErrors(t, diags)
	fn := unit.Parts[0].(*ast.ContractDefinition).Parts[0].(*ast.FunctionDefinition)
	body := fn.Body.(*ast.Block)
	require.Len(t, body.Stmts, 3)

	decl1 := body.Stmts[0].(*ast.VariableDefinitionStatement)
	require.Equal(t, "x", decl1.Decl.Name.Name)
	require.NotNil(t, decl1.Initializer)

	decl2 := body.Stmts[1].(*ast.VariableDefinitionStatement)
	require.Equal(t, "y", decl2.Decl.Name.Name)
	require.Nil(t, decl2.Initializer)

	require.IsType(t, &ast.ExpressionStatement{}, body.Stmts[2])
}

func TestParser_DestructureWithDeclaration(t *testing.T) {
	t.Parallel()
	unit, diags := parse(t, `
contract C {
    function f() public {
        (uint256 a, , bool c) = g();
    }
}`)
	requireNoErrors(t, diags)
	fn := unit.Parts[0].(*ast.ContractDefinition).Parts[0].(*ast.FunctionDefinition)
	body := fn.Body.(*ast.Block)
	require.Len(t, body.Stmts, 1)

	d := body.Stmts[0].(*ast.DestructureStatement)
	require.Len(t, d.Left, 3)
	require.NotNil(t, d.Left[0].Decl)
	require.Equal(t, "a", d.Left[0].Decl.Name.Name)
	require.Nil(t, d.Left[1].Decl)
	require.Nil(t, d.Left[1].Target)
	require.NotNil(t, d.Left[2].Decl)
	require.Equal(t, "c", d.Left[2].Decl.Name.Name)
}

func TestParser_PlainTupleAssignmentIsExpressionStatement(t *testing.T) {
	t.Parallel()
	unit, diags := parse(t, `
contract C {
    function f() public {
        (a, , b) = g();
    }
}`)
	requireNoErrors(t, diags)
	fn := unit.Parts[0].(*ast.ContractDefinition).Parts[0].(*ast.FunctionDefinition)
	body := fn.Body.(*ast.Block)
	require.Len(t, body.Stmts, 1)

	es := body.Stmts[0].(*ast.ExpressionStatement)
	be := es.Expr.(*ast.BinaryExpr)
	require.Equal(t, ast.OpAssign, be.Op)
	tup := be.Left.(*ast.TupleExpr)
	require.Len(t, tup.Elements, 3)
	require.Nil(t, tup.Elements[1])
}

func TestParser_IfWhileForTryCatch(t *testing.T) {
	t.Parallel()
	unit, diags := parse(t, `
contract C {
    function f(uint256 n) public {
        if (n > 0) {
            n -= 1;
        } else {
            n += 1;
        }
        while (n > 0) {
            n--;
        }
        for (uint256 i = 0; i < n; i++) {
            n += i;
        }
        try this.g() returns (bool ok) {
            n = ok ? 1 : 0;
        } catch Error(string memory reason) {
            revertMarker(reason);
        } catch {
        }
    }
}`)
	requireNoErrors(t, diags)
	fn := unit.Parts[0].(*ast.ContractDefinition).Parts[0].(*ast.FunctionDefinition)
	body := fn.Body.(*ast.Block)
	require.Len(t, body.Stmts, 4)

	ifs := body.Stmts[0].(*ast.IfStatement)
	require.NotNil(t, ifs.Else)

	require.IsType(t, &ast.WhileStatement{}, body.Stmts[1])
	require.IsType(t, &ast.ForStatement{}, body.Stmts[2])

	try := body.Stmts[3].(*ast.TryStatement)
	require.Len(t, try.Returns, 1)
	require.Len(t, try.Catches, 2)
	require.Equal(t, "Error", try.Catches[0].Name)
	require.Equal(t, "", try.Catches[1].Name)
}

func TestParser_UncheckedBlock(t *testing.T) {
	t.Parallel()
	unit, diags := parse(t, `
contract C {
    function f() public {
        unchecked {
            x++;
        }
    }
}`)
	requireNoErrors(t, diags)
	fn := unit.Parts[0].(*ast.ContractDefinition).Parts[0].(*ast.FunctionDefinition)
	body := fn.Body.(*ast.Block)
	inner := body.Stmts[0].(*ast.Block)
	require.True(t, inner.Unchecked)
}

func TestParser_DynamicArrayStateVariable(t *testing.T) {
	t.Parallel()
	unit, diags := parse(t, `
contract C {
    uint256[] public balances;
}`)
	requireNoErrors(t, diags)
	cd := unit.Parts[0].(*ast.ContractDefinition)
	sv := cd.Parts[0].(*ast.StateVariableDefinition)
	require.Equal(t, ast.PrimitiveUint, sv.Type.Primitive)
	require.Len(t, sv.Type.Dims, 1)
	require.Nil(t, sv.Type.Dims[0].Length)
}

func TestParser_TernaryAndPrecedence(t *testing.T) {
	t.Parallel()
	unit, diags := parse(t, `
contract C {
    function f() public {
        uint256 x = a + b * c > d ? e : f;
    }
}`)
	requireNoErrors(t, diags)
	fn := unit.Parts[0].(*ast.ContractDefinition).Parts[0].(*ast.FunctionDefinition)
	body := fn.Body.(*ast.Block)
	decl := body.Stmts[0].(*ast.VariableDefinitionStatement)
	tern := decl.Initializer.(*ast.TernaryExpr)

	cond := tern.Condition.(*ast.BinaryExpr)
	require.Equal(t, ast.OpMore, cond.Op)
	lhs := cond.Left.(*ast.BinaryExpr)
	require.Equal(t, ast.OpAdd, lhs.Op)
	rhs := lhs.Right.(*ast.BinaryExpr)
	require.Equal(t, ast.OpMul, rhs.Op)
}

func TestParser_NewExpressionAndMemberIndexChain(t *testing.T) {
	t.Parallel()
	unit, diags := parse(t, `
contract C {
    function f() public {
        Foo x = new Foo(1, 2);
        uint256 y = arr[0].length;
    }
}`)
	requireNoErrors(t, diags)
	fn := unit.Parts[0].(*ast.ContractDefinition).Parts[0].(*ast.FunctionDefinition)
	body := fn.Body.(*ast.Block)

	decl1 := body.Stmts[0].(*ast.VariableDefinitionStatement)
	ne := decl1.Initializer.(*ast.NewExpr)
	require.Len(t, ne.Args, 2)

	decl2 := body.Stmts[1].(*ast.VariableDefinitionStatement)
	me := decl2.Initializer.(*ast.MemberExpr)
	require.Equal(t, "length", me.Member.Name)
	require.IsType(t, &ast.IndexExpr{}, me.Base)
}
