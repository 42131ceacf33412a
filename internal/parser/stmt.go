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

func (p *Parser) parseBlock() ast.Statement {
	start, _ := p.expect(lexer.OpenBrace)
	blk := &ast.Block{BlockLoc: start.Loc}
	for !p.at(lexer.CloseBrace) && !p.at(lexer.EOF) {
		blk.Stmts = append(blk.Stmts, p.parseStatement())
	}
	p.expect(lexer.CloseBrace)
	return blk
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.tok.Kind {
	case lexer.OpenBrace:
		return p.parseBlock()
	case lexer.KwUnchecked:
		p.advance()
		blk := p.parseBlock().(*ast.Block)
		blk.Unchecked = true
		return blk
	case lexer.KwIf:
		return p.parseIf()
	case lexer.KwWhile:
		return p.parseWhile()
	case lexer.KwDo:
		return p.parseDoWhile()
	case lexer.KwFor:
		return p.parseFor()
	case lexer.KwUnderscore:
		loc := p.tok.Loc
		p.advance()
		p.expect(lexer.Semicolon)
		return &ast.Placeholder{PlaceholderLoc: loc}
	case lexer.KwContinue:
		loc := p.tok.Loc
		p.advance()
		p.expect(lexer.Semicolon)
		return &ast.ContinueStatement{ContinueLoc: loc}
	case lexer.KwBreak:
		loc := p.tok.Loc
		p.advance()
		p.expect(lexer.Semicolon)
		return &ast.BreakStatement{BreakLoc: loc}
	case lexer.KwReturn:
		return p.parseReturn()
	case lexer.KwEmit:
		return p.parseEmit()
	case lexer.KwTry:
		return p.parseTry()
	case lexer.KwThrow:
		loc := p.tok.Loc
		p.advance()
		p.expect(lexer.Semicolon)
		return &ast.ThrowStatement{ThrowLoc: loc}
	case lexer.Semicolon:
		loc := p.tok.Loc
		p.advance()
		return &ast.EmptyStatement{EmptyLoc: loc}
	case lexer.KwBool, lexer.KwAddress, lexer.KwString, lexer.KwUint, lexer.KwInt, lexer.KwBytes:
		return p.parseVariableDeclarationStatement()
	case lexer.OpenParen:
		if p.destructureHasDeclaration() {
			return p.parseDestructureStatement()
		}
		return p.parseExpressionStatement()
	case lexer.Identifier:
		if p.looksLikeVariableDeclaration() {
			return p.parseVariableDeclarationStatement()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseIf() ast.Statement {
	start := p.tok.Loc
	p.advance() // 'if'
	p.expect(lexer.OpenParen)
	cond := p.parseExpression(precAssign)
	p.expect(lexer.CloseParen)
	then := p.parseStatement()
	var els ast.Statement
	if p.at(lexer.KwElse) {
		p.advance()
		els = p.parseStatement()
	}
	return &ast.IfStatement{IfLoc: start, Condition: cond, Then: then, Else: els}
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.tok.Loc
	p.advance() // 'while'
	p.expect(lexer.OpenParen)
	cond := p.parseExpression(precAssign)
	p.expect(lexer.CloseParen)
	body := p.parseStatement()
	return &ast.WhileStatement{WhileLoc: start, Condition: cond, Body: body}
}

func (p *Parser) parseDoWhile() ast.Statement {
	start := p.tok.Loc
	p.advance() // 'do'
	body := p.parseStatement()
	p.expect(lexer.KwWhile)
	p.expect(lexer.OpenParen)
	cond := p.parseExpression(precAssign)
	p.expect(lexer.CloseParen)
	p.expect(lexer.Semicolon)
	return &ast.DoWhileStatement{DoLoc: start, Body: body, Condition: cond}
}

func (p *Parser) parseFor() ast.Statement {
	start := p.tok.Loc
	p.advance() // 'for'
	p.expect(lexer.OpenParen)

	var init ast.Statement
	if p.at(lexer.Semicolon) {
		p.advance()
	} else {
		init = p.parseStatement() // consumes its own trailing ';'
	}

	var cond ast.Expression
	if !p.at(lexer.Semicolon) {
		cond = p.parseExpression(precAssign)
	}
	p.expect(lexer.Semicolon)

	var post ast.Statement
	if !p.at(lexer.CloseParen) {
		post = &ast.ExpressionStatement{Expr: p.parseExpression(precAssign)}
	}
	p.expect(lexer.CloseParen)

	body := p.parseStatement()
	return &ast.ForStatement{ForLoc: start, Init: init, Condition: cond, Post: post, Body: body}
}

func (p *Parser) parseReturn() ast.Statement {
	start := p.tok.Loc
	p.advance() // 'return'
	var values []ast.Expression
	if !p.at(lexer.Semicolon) {
		values = append(values, p.parseExpression(precAssign))
	}
	p.expect(lexer.Semicolon)
	return &ast.ReturnStatement{ReturnLoc: start, Values: values}
}

func (p *Parser) parseEmit() ast.Statement {
	start := p.tok.Loc
	p.advance() // 'emit'
	name, _ := p.expect(lexer.Identifier)
	args := p.parseCallArgs()
	p.expect(lexer.Semicolon)
	return &ast.EmitStatement{EmitLoc: start, Event: ast.Identifier{Loc: name.Loc, Name: name.Text}, Args: args}
}

// parseTry implements `try expr [returns (...)] { ... } catch ... catch ...`
// (internal/cfg's lowerTry, SPEC_FULL.md §3.4, lowers this AST shape).
func (p *Parser) parseTry() ast.Statement {
	start := p.tok.Loc
	p.advance() // 'try'
	expr := p.parseExpression(precAssign)

	var returns []ast.VariableDeclaration
	if p.at(lexer.KwReturns) {
		p.advance()
		returns = p.parseParameterList()
	}
	body := p.parseBlock()

	var catches []ast.CatchClause
	for p.at(lexer.KwCatch) {
		catchLoc := p.tok.Loc
		p.advance()
		var name string
		var params []ast.VariableDeclaration
		if p.at(lexer.Identifier) {
			name = p.tok.Text
			p.advance()
			params = p.parseParameterList()
		} else if p.at(lexer.OpenParen) {
			params = p.parseParameterList()
		}
		cbody := p.parseBlock()
		catches = append(catches, ast.CatchClause{Loc: catchLoc, Name: name, Params: params, Body: cbody})
	}
	return &ast.TryStatement{TryLoc: start, Expr: expr, Returns: returns, Body: body, Catches: catches}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	expr := p.parseExpression(precAssign)
	p.expect(lexer.Semicolon)
	return &ast.ExpressionStatement{Expr: expr}
}

func (p *Parser) parseVariableDeclarationStatement() ast.Statement {
	start := p.tok.Loc
	ty := p.parseTypeName()
	loc := p.parseOptionalDataLocation()
	name, _ := p.expect(lexer.Identifier)

	var init ast.Expression
	if p.at(lexer.Assign) {
		p.advance()
		init = p.parseExpression(precAssign)
	}
	p.expect(lexer.Semicolon)

	decl := ast.VariableDeclaration{Loc: start, Type: ty, Location: loc, Name: ast.Identifier{Loc: name.Loc, Name: name.Text}}
	return &ast.VariableDefinitionStatement{DeclLoc: start, Decl: decl, Initializer: init}
}

// parseDestructureStatement parses `(d1, , d2) = expr;` where at least one
// left-hand element is a fresh declaration — the one shape ordinary
// expression parsing cannot represent, since a VariableDeclaration is not
// an Expression (spec.md §4.2).
func (p *Parser) parseDestructureStatement() ast.Statement {
	start := p.tok.Loc
	p.advance() // '('

	var elems []ast.DestructureElement
	for !p.at(lexer.CloseParen) && !p.at(lexer.EOF) {
		switch {
		case p.at(lexer.Comma) || p.at(lexer.CloseParen):
			elems = append(elems, ast.DestructureElement{})
		case p.atAny(lexer.KwBool, lexer.KwAddress, lexer.KwString, lexer.KwUint, lexer.KwInt, lexer.KwBytes) ||
			(p.at(lexer.Identifier) && p.looksLikeVariableDeclaration()):
			declLoc := p.tok.Loc
			ty := p.parseTypeName()
			dataLoc := p.parseOptionalDataLocation()
			name, _ := p.expect(lexer.Identifier)
			decl := ast.VariableDeclaration{Loc: declLoc, Type: ty, Location: dataLoc, Name: ast.Identifier{Loc: name.Loc, Name: name.Text}}
			elems = append(elems, ast.DestructureElement{Decl: &decl})
		default:
			target := p.parseExpression(precOr)
			elems = append(elems, ast.DestructureElement{Target: target})
		}
		if p.at(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.CloseParen)
	p.expect(lexer.Assign)
	right := p.parseExpression(precAssign)
	p.expect(lexer.Semicolon)
	return &ast.DestructureStatement{AssignLoc: start, Left: elems, Right: right}
}

// atAny reports whether the current token's Kind is any of ks.
func (p *Parser) atAny(ks ...lexer.Kind) bool {
	for _, k := range ks {
		if p.tok.Kind == k {
			return true
		}
	}
	return false
}

// looksLikeVariableDeclaration speculatively scans a type-name prefix
// (identifier, optional `.member` qualification, optional array
// dimensions, optional data-location keyword) starting at an Identifier
// token and reports whether it is immediately followed by another
// identifier — the only shape that disambiguates `Foo x;` (a declaration)
// from `Foo.bar();` or `foo = 1;` (expression statements), per spec.md
// §4.2. It never reports a diagnostic: on any mismatch it simply returns
// false and the caller reparses the tokens as an expression.
func (p *Parser) looksLikeVariableDeclaration() bool {
	mark := p.checkpoint()
	defer p.restore(mark)

	if !p.at(lexer.Identifier) {
		return false
	}
	p.advance()
	for p.at(lexer.Member) {
		p.advance()
		if !p.at(lexer.Identifier) {
			return false
		}
		p.advance()
	}
	for p.at(lexer.OpenBracket) {
		p.advance()
		depth := 1
		for depth > 0 {
			switch {
			case p.at(lexer.EOF):
				return false
			case p.at(lexer.OpenBracket):
				depth++
			case p.at(lexer.CloseBracket):
				depth--
			}
			p.advance()
		}
	}
	if p.atAny(lexer.KwMemory, lexer.KwStorage, lexer.KwCalldata) {
		p.advance()
	}
	return p.at(lexer.Identifier)
}

// destructureHasDeclaration scans the parenthesized list following a
// statement-initial '(' for a top-level element that is a fresh
// declaration, reporting whether the statement must be parsed as a
// DestructureStatement rather than an ordinary (tuple) expression
// statement. Pure-lvalue tuple assignment, e.g. `(a, , b) = f();`, is
// already representable as a TupleExpr and is left to the expression
// parser.
func (p *Parser) destructureHasDeclaration() bool {
	mark := p.checkpoint()
	defer p.restore(mark)

	if !p.at(lexer.OpenParen) {
		return false
	}
	p.advance()

	depth := 1
	for depth > 0 && !p.at(lexer.EOF) {
		if depth == 1 {
			if p.atAny(lexer.KwBool, lexer.KwAddress, lexer.KwString, lexer.KwUint, lexer.KwInt, lexer.KwBytes) {
				return true
			}
			if p.at(lexer.Identifier) && p.looksLikeVariableDeclaration() {
				return true
			}
		}
		switch {
		case p.at(lexer.OpenParen):
			depth++
		case p.at(lexer.CloseParen):
			depth--
		}
		p.advance()
	}
	return false
}
