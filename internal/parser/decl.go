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

func (p *Parser) parseContract() ast.SourceUnitPart {
	doc := p.takePendingDoc()
	start := p.tok.Loc

	kind := ast.ContractKindContract
	switch p.tok.Kind {
	case lexer.KwInterface:
		kind = ast.ContractKindInterface
	case lexer.KwLibrary:
		kind = ast.ContractKindLibrary
	}
	p.advance()

	name, ok := p.expect(lexer.Identifier)
	if !ok {
		p.skipTo(lexer.OpenBrace)
	}

	var bases []ast.InheritanceSpecifier
	if p.at(lexer.Identifier) && p.tok.Text == "is" {
		p.advance()
		bases = p.parseInheritanceList()
	}

	cd := &ast.ContractDefinition{
		Loc:  start,
		Doc:  doc,
		Kind: kind,
		Name: ast.Identifier{Loc: name.Loc, Name: name.Text},
		Bases: bases,
	}

	if _, ok := p.expect(lexer.OpenBrace); !ok {
		p.skipTo(lexer.CloseBrace)
		p.advance()
		return cd
	}

	for !p.at(lexer.CloseBrace) && !p.at(lexer.EOF) {
		part := p.parseContractPart()
		if part != nil {
			cd.Parts = append(cd.Parts, part)
		}
	}
	p.expect(lexer.CloseBrace)
	return cd
}

func (p *Parser) parseInheritanceList() []ast.InheritanceSpecifier {
	var specs []ast.InheritanceSpecifier
	for {
		start := p.tok.Loc
		name, ok := p.expect(lexer.Identifier)
		if !ok {
			break
		}
		spec := ast.InheritanceSpecifier{Loc: start, Name: ast.Identifier{Loc: name.Loc, Name: name.Text}}
		if p.at(lexer.OpenParen) {
			spec.Args = p.parseCallArgs()
		}
		specs = append(specs, spec)
		if !p.at(lexer.Comma) {
			break
		}
		p.advance()
	}
	return specs
}

func (p *Parser) parseContractPart() ast.ContractPart {
	doc := p.takePendingDoc()
	switch p.tok.Kind {
	case lexer.KwStruct:
		return p.parseStruct(doc)
	case lexer.KwEvent:
		return p.parseEvent(doc)
	case lexer.KwEnum:
		return p.parseEnum(doc)
	case lexer.KwModifier:
		return p.parseModifier(doc)
	case lexer.KwFunction, lexer.KwConstructor:
		return p.parseFunction(doc)
	case lexer.KwBool, lexer.KwAddress, lexer.KwString, lexer.KwUint, lexer.KwInt,
		lexer.KwBytes, lexer.Identifier, lexer.KwMemory, lexer.KwStorage:
		return p.parseStateVariable(doc)
	default:
		p.errorf(p.tok.Loc, "expected a contract member, found %s", p.tok)
		p.skipTo(lexer.Semicolon, lexer.CloseBrace)
		if p.at(lexer.Semicolon) {
			p.advance()
		}
		return nil
	}
}

func (p *Parser) parseStruct(doc []string) ast.ContractPart {
	start := p.tok.Loc
	p.advance() // 'struct'
	name, _ := p.expect(lexer.Identifier)
	p.expect(lexer.OpenBrace)

	var fields []ast.VariableDeclaration
	for !p.at(lexer.CloseBrace) && !p.at(lexer.EOF) {
		ty := p.parseTypeName()
		fname, ok := p.expect(lexer.Identifier)
		p.expect(lexer.Semicolon)
		if ok {
			fields = append(fields, ast.VariableDeclaration{Loc: ty.Loc, Type: ty, Name: ast.Identifier{Loc: fname.Loc, Name: fname.Text}})
		}
	}
	p.expect(lexer.CloseBrace)
	return &ast.StructDefinition{Loc: start, Doc: doc, Name: ast.Identifier{Loc: name.Loc, Name: name.Text}, Fields: fields}
}

func (p *Parser) parseEvent(doc []string) ast.ContractPart {
	start := p.tok.Loc
	p.advance() // 'event'
	name, _ := p.expect(lexer.Identifier)
	p.expect(lexer.OpenParen)

	var params []ast.EventParameter
	for !p.at(lexer.CloseParen) && !p.at(lexer.EOF) {
		ty := p.parseTypeName()
		indexed := false
		if p.at(lexer.KwIndexed) {
			indexed = true
			p.advance()
		}
		var ident *ast.Identifier
		if p.at(lexer.Identifier) {
			n := p.tok
			p.advance()
			ident = &ast.Identifier{Loc: n.Loc, Name: n.Text}
		}
		params = append(params, ast.EventParameter{Type: ty, Indexed: indexed, Name: ident})
		if p.at(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.CloseParen)

	anonymous := false
	if p.at(lexer.KwAnonymous) {
		anonymous = true
		p.advance()
	}
	p.expect(lexer.Semicolon)
	return &ast.EventDefinition{Loc: start, Doc: doc, Name: ast.Identifier{Loc: name.Loc, Name: name.Text}, Params: params, Anonymous: anonymous}
}

func (p *Parser) parseEnum(doc []string) ast.ContractPart {
	start := p.tok.Loc
	p.advance() // 'enum'
	name, _ := p.expect(lexer.Identifier)
	p.expect(lexer.OpenBrace)

	var values []ast.Identifier
	for !p.at(lexer.CloseBrace) && !p.at(lexer.EOF) {
		v, ok := p.expect(lexer.Identifier)
		if ok {
			values = append(values, ast.Identifier{Loc: v.Loc, Name: v.Text})
		}
		if p.at(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.CloseBrace)
	return &ast.EnumDefinition{Loc: start, Doc: doc, Name: ast.Identifier{Loc: name.Loc, Name: name.Text}, Values: values}
}

func (p *Parser) parseModifier(doc []string) ast.ContractPart {
	start := p.tok.Loc
	p.advance() // 'modifier'
	name, _ := p.expect(lexer.Identifier)

	var params []ast.VariableDeclaration
	if p.at(lexer.OpenParen) {
		params = p.parseParameterList()
	}
	// modifiers may themselves carry visibility-like attributes (virtual,
	// override) in recent Solidity; skip any trailing identifiers/keywords
	// up to the body for forward compatibility.
	for !p.at(lexer.OpenBrace) && !p.at(lexer.Semicolon) && !p.at(lexer.EOF) {
		p.advance()
	}

	var body ast.Statement
	if p.at(lexer.OpenBrace) {
		body = p.parseBlock()
	} else {
		p.expect(lexer.Semicolon)
	}
	return &ast.ModifierDefinition{Loc: start, Doc: doc, Name: ast.Identifier{Loc: name.Loc, Name: name.Text}, Params: params, Body: body}
}

func (p *Parser) parseParameterList() []ast.VariableDeclaration {
	p.expect(lexer.OpenParen)
	var params []ast.VariableDeclaration
	for !p.at(lexer.CloseParen) && !p.at(lexer.EOF) {
		ty := p.parseTypeName()
		loc := p.parseOptionalDataLocation()
		var ident ast.Identifier
		if p.at(lexer.Identifier) {
			n := p.tok
			p.advance()
			ident = ast.Identifier{Loc: n.Loc, Name: n.Text}
		}
		params = append(params, ast.VariableDeclaration{Loc: ty.Loc, Type: ty, Location: loc, Name: ident})
		if p.at(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.CloseParen)
	return params
}

func (p *Parser) parseOptionalDataLocation() ast.DataLocation {
	switch p.tok.Kind {
	case lexer.KwMemory:
		p.advance()
		return ast.Memory
	case lexer.KwStorage:
		p.advance()
		return ast.Storage
	case lexer.KwCalldata:
		p.advance()
		return ast.Calldata
	default:
		return ast.DefaultLocation
	}
}

func (p *Parser) parseFunction(doc []string) ast.ContractPart {
	start := p.tok.Loc
	fd := &ast.FunctionDefinition{Loc: start, Doc: doc}

	if p.at(lexer.KwConstructor) {
		fd.Constructor = true
		p.advance()
	} else {
		p.advance() // 'function'
		switch {
		case p.at(lexer.Identifier) && p.tok.Text == "fallback":
			fd.Fallback = true
			p.advance()
		case p.at(lexer.Identifier) && p.tok.Text == "receive":
			fd.Receive = true
			p.advance()
		default:
			name, ok := p.expect(lexer.Identifier)
			if ok {
				fd.Name = &ast.Identifier{Loc: name.Loc, Name: name.Text}
			}
		}
	}

	fd.Params = p.parseParameterList()

	for p.isFunctionAttribute() {
		p.parseFunctionAttribute(fd)
	}

	if p.at(lexer.KwReturns) {
		p.advance()
		fd.Returns = p.parseParameterList()
	}

	if p.at(lexer.OpenBrace) {
		fd.Body = p.parseBlock()
	} else {
		p.expect(lexer.Semicolon)
	}
	return fd
}

func (p *Parser) isFunctionAttribute() bool {
	switch p.tok.Kind {
	case lexer.KwPublic, lexer.KwPrivate, lexer.KwInternal, lexer.KwExternal,
		lexer.KwPure, lexer.KwView, lexer.KwPayable, lexer.Identifier:
		return !p.at(lexer.KwReturns)
	default:
		return false
	}
}

func (p *Parser) parseFunctionAttribute(fd *ast.FunctionDefinition) {
	switch p.tok.Kind {
	case lexer.KwPublic:
		fd.Visibility = ast.Public
		p.advance()
	case lexer.KwPrivate:
		fd.Visibility = ast.Private
		p.advance()
	case lexer.KwInternal:
		fd.Visibility = ast.Internal
		p.advance()
	case lexer.KwExternal:
		fd.Visibility = ast.External
		p.advance()
	case lexer.KwPure:
		fd.Mutability = ast.Pure
		p.advance()
	case lexer.KwView:
		fd.Mutability = ast.View
		p.advance()
	case lexer.KwPayable:
		fd.Mutability = ast.Payable
		p.advance()
	case lexer.Identifier:
		switch p.tok.Text {
		case "virtual":
			fd.Virtual = true
			p.advance()
		case "override":
			fd.Override = true
			p.advance()
			if p.at(lexer.OpenParen) {
				// override(Base1, Base2): skip the base list, the resolver
				// does not need it to build the CFG.
				depth := 0
				for {
					if p.at(lexer.OpenParen) {
						depth++
					} else if p.at(lexer.CloseParen) {
						depth--
						if depth == 0 {
							p.advance()
							break
						}
					}
					p.advance()
				}
			}
		default:
			start := p.tok.Loc
			name := p.tok
			p.advance()
			mi := ast.ModifierInvocation{Loc: start, Name: ast.Identifier{Loc: name.Loc, Name: name.Text}}
			if p.at(lexer.OpenParen) {
				mi.Args = p.parseCallArgs()
			}
			fd.Modifiers = append(fd.Modifiers, mi)
		}
	}
}

func (p *Parser) parseStateVariable(doc []string) ast.ContractPart {
	start := p.tok.Loc
	ty := p.parseTypeName()

	var vis ast.Visibility
	var attrs []ast.VariableAttribute
attrLoop:
	for {
		switch p.tok.Kind {
		case lexer.KwPublic:
			vis = ast.Public
			p.advance()
		case lexer.KwPrivate:
			vis = ast.Private
			p.advance()
		case lexer.KwInternal:
			vis = ast.Internal
			p.advance()
		case lexer.KwConstant:
			attrs = append(attrs, ast.AttrConstant)
			p.advance()
		case lexer.Identifier:
			if p.tok.Text != "immutable" {
				break attrLoop
			}
			attrs = append(attrs, ast.AttrImmutable)
			p.advance()
		default:
			break attrLoop
		}
	}

	name, _ := p.expect(lexer.Identifier)

	var init ast.Expression
	if p.at(lexer.Assign) {
		p.advance()
		init = p.parseExpression(precAssign)
	}
	p.expect(lexer.Semicolon)

	return &ast.StateVariableDefinition{
		Loc:         start,
		Doc:         doc,
		Type:        ty,
		Visibility:  vis,
		Attrs:       attrs,
		Name:        ast.Identifier{Loc: name.Loc, Name: name.Text},
		Initializer: init,
	}
}
