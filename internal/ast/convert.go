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

package ast

import "fmt"

// ExprToType implements spec.md §4.2's post-parse rewrite: an expression of
// the shape `Id[n][m]...` becomes a Type::Array. The parser cannot apply
// this itself, since contexts like a tuple-of-types argument to
// `abi.decode(data, (uint256, bool[]))` parse as ordinary expressions (a
// TupleExpr of IndexExpr/VariableExpr nodes) until the resolver, which
// knows `uint256` and the identifiers name types rather than variables,
// reinterprets them. Anything whose head is not a bare identifier or
// primitive-type expression is "non-identifier in type name".
func ExprToType(e Expression) (TypeName, error) {
	var dims []ArrayDim
	for {
		switch v := e.(type) {
		case *IndexExpr:
			dims = append([]ArrayDim{{Loc: v.BracketLoc, Length: v.Index}}, dims...)
			e = v.Base
		case *VariableExpr:
			return TypeName{Loc: v.Name.Loc, Name: &v.Name, Dims: dims}, nil
		case *TypeExpr:
			ty := v.Type
			ty.Dims = append(append([]ArrayDim{}, ty.Dims...), dims...)
			return ty, nil
		default:
			return TypeName{}, fmt.Errorf("non-identifier in type name")
		}
	}
}
