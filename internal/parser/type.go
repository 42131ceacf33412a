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
	"github.com/solc-core/solc/internal/ast"
	"github.com/solc-core/solc/internal/lexer"
)

// parseTypeName parses a base type followed by zero or more `[n]`/`[]`
// array-dimension suffixes.
func (p *Parser) parseTypeName() ast.TypeName {
	base := p.parseBaseType()
	for p.at(lexer.OpenBracket) {
		base.Dims = append(base.Dims, p.parseArrayDim())
	}
	return base
}

func (p *Parser) parseBaseType() ast.TypeName {
	start := p.tok.Loc
	switch p.tok.Kind {
	case lexer.KwBool:
		p.advance()
		return ast.TypeName{Loc: start, Primitive: ast.PrimitiveBool}
	case lexer.KwAddress:
		p.advance()
		if p.at(lexer.KwPayable) {
			p.advance()
			return ast.TypeName{Loc: start, Primitive: ast.PrimitiveAddressPayable}
		}
		return ast.TypeName{Loc: start, Primitive: ast.PrimitiveAddress}
	case lexer.KwString:
		p.advance()
		return ast.TypeName{Loc: start, Primitive: ast.PrimitiveString}
	case lexer.KwUint:
		width := p.tok.Width
		p.advance()
		return ast.TypeName{Loc: start, Primitive: ast.PrimitiveUint, Width: width}
	case lexer.KwInt:
		width := p.tok.Width
		p.advance()
		return ast.TypeName{Loc: start, Primitive: ast.PrimitiveInt, Width: width}
	case lexer.KwBytes:
		n := p.tok.BytesLen
		p.advance()
		return ast.TypeName{Loc: start, Primitive: ast.PrimitiveBytes, BytesLen: n}
	case lexer.Identifier:
		name := p.tok.Text
		p.advance()
		return ast.TypeName{Loc: start, Name: &ast.Identifier{Loc: start, Name: name}}
	default:
		p.errorf(start, "expected a type name, found %s", p.tok)
		return ast.TypeName{Loc: start}
	}
}

func (p *Parser) parseArrayDim() ast.ArrayDim {
	start := p.tok.Loc
	p.advance() // '['
	if p.at(lexer.CloseBracket) {
		p.advance()
		return ast.ArrayDim{Loc: start}
	}
	length := p.parseExpression(precAssign)
	end, _ := p.expect(lexer.CloseBracket)
	return ast.ArrayDim{Loc: start.Span(end.Loc), Length: length}
}
