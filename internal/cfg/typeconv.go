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

package cfg

import (
	"github.com/solc-core/solc/internal/ast"
	"github.com/solc-core/solc/internal/types"
)

// resolvePrimitiveType resolves an ast.TypeName that names a primitive
// keyword directly, the only TypeName shape a cast target or `new T(...)`
// needs here since ns.Namespace already resolved every declaration-site
// TypeName (struct/enum names) during Build; a cast to a user-defined type
// name is left unresolved (ok=false), a documented gap tracked in
// DESIGN.md pending a Namespace-level type-name lookup entry point.
func resolvePrimitiveType(tn ast.TypeName) (types.Type, bool) {
	var base types.Type
	switch tn.Primitive {
	case ast.PrimitiveBool:
		base = types.NewBool()
	case ast.PrimitiveAddress:
		base = types.NewAddress(false)
	case ast.PrimitiveAddressPayable:
		base = types.NewAddress(true)
	case ast.PrimitiveString:
		base = types.NewString()
	case ast.PrimitiveInt:
		base = types.NewInt(tn.Width)
	case ast.PrimitiveUint:
		base = types.NewUint(tn.Width)
	case ast.PrimitiveBytes:
		base = types.NewFixedBytes(tn.BytesLen)
	case ast.PrimitiveDynamicBytes:
		base = types.NewDynamicBytes()
	default:
		return types.Type{}, false
	}

	if len(tn.Dims) == 0 {
		return base, true
	}
	dims := make([]types.Dim, len(tn.Dims))
	for i, d := range tn.Dims {
		if lit, ok := d.Length.(*ast.NumberLiteral); ok {
			if n, ok2 := parseDecimal(lit.Text); ok2 {
				dims[i] = types.FixedDim(n)
				continue
			}
		}
		dims[i] = types.DynamicDim()
	}
	return types.NewArray(base, dims...), true
}

func parseDecimal(s string) (uint64, bool) {
	var n uint64
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r == '_' {
			continue
		}
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + uint64(r-'0')
	}
	return n, true
}
