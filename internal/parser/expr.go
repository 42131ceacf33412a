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

// Precedence levels, low to high, matching spec.md §4.2's "standard
// precedence" with right-associative assignment and `**`.
const (
	precNone = iota
	precAssign
	precTernary
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precPower
	precUnary
	precPostfix
)

type binInfo struct {
	op    ast.BinaryOp
	prec  int
	right bool // right-associative
}

var binaryOps = map[lexer.Kind]binInfo{
	lexer.Assign:           {ast.OpAssign, precAssign, true},
	lexer.BitOrAssign:      {ast.OpAssignOr, precAssign, true},
	lexer.BitAndAssign:     {ast.OpAssignAnd, precAssign, true},
	lexer.BitXorAssign:     {ast.OpAssignXor, precAssign, true},
	lexer.ShiftLeftAssign:  {ast.OpAssignShl, precAssign, true},
	lexer.ShiftRightAssign: {ast.OpAssignShr, precAssign, true},
	lexer.AddAssign:        {ast.OpAssignAdd, precAssign, true},
	lexer.SubAssign:        {ast.OpAssignSub, precAssign, true},
	lexer.MulAssign:        {ast.OpAssignMul, precAssign, true},
	lexer.DivAssign:        {ast.OpAssignDiv, precAssign, true},
	lexer.ModAssign:        {ast.OpAssignMod, precAssign, true},
	lexer.Or:               {ast.OpOr, precOr, false},
	lexer.And:               {ast.OpAnd, precAnd, false},
	lexer.BitOr:            {ast.OpBitOr, precBitOr, false},
	lexer.BitXor:           {ast.OpBitXor, precBitXor, false},
	lexer.BitAnd:           {ast.OpBitAnd, precBitAnd, false},
	lexer.Eq:               {ast.OpEq, precEquality, false},
	lexer.NotEq:            {ast.OpNotEq, precEquality, false},
	lexer.Less:             {ast.OpLess, precRelational, false},
	lexer.More:             {ast.OpMore, precRelational, false},
	lexer.LessEq:           {ast.OpLessEq, precRelational, false},
	lexer.MoreEq:           {ast.OpMoreEq, precRelational, false},
	lexer.ShiftLeft:        {ast.OpShl, precShift, false},
	lexer.ShiftRight:       {ast.OpShr, precShift, false},
	lexer.Add:              {ast.OpAdd, precAdditive, false},
	lexer.Sub:              {ast.OpSub, precAdditive, false},
	lexer.Mul:              {ast.OpMul, precMultiplicative, false},
	lexer.Divide:           {ast.OpDiv, precMultiplicative, false},
	lexer.Modulo:           {ast.OpMod, precMultiplicative, false},
	lexer.Power:            {ast.OpPower, precPower, true},
}

// parseExpression is a precedence-climbing parser: it parses one operand
// and then consumes binary operators whose precedence is >= minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	left := p.parseUnary()

	for {
		info, ok := binaryOps[p.tok.Kind]
		if !ok || info.prec < minPrec {
			break
		}
		opLoc := p.tok.Loc
		p.advance()

		nextMin := info.prec + 1
		if info.right {
			nextMin = info.prec
		}
		right := p.parseExpression(nextMin)
		left = &ast.BinaryExpr{OpLoc: opLoc, Op: info.op, Left: left, Right: right}
	}
	if p.at(lexer.Question) && minPrec <= precTernary {
		left = p.parseTernaryTail(left)
	}
	return left
}

func (p *Parser) parseTernaryTail(cond ast.Expression) ast.Expression {
	qLoc := p.tok.Loc
	p.advance() // '?'
	ifTrue := p.parseExpression(precAssign)
	p.expect(lexer.Colon)
	ifFalse := p.parseExpression(precAssign)
	return &ast.TernaryExpr{QuestionLoc: qLoc, Condition: cond, IfTrue: ifTrue, IfFalse: ifFalse}
}

func (p *Parser) parseUnary() ast.Expression {
	start := p.tok.Loc
	switch p.tok.Kind {
	case lexer.Not:
		p.advance()
		return &ast.UnaryExpr{OpLoc: start, Op: ast.OpNot, Operand: p.parseUnary()}
	case lexer.Complement:
		p.advance()
		return &ast.UnaryExpr{OpLoc: start, Op: ast.OpComplement, Operand: p.parseUnary()}
	case lexer.KwDelete:
		p.advance()
		return &ast.UnaryExpr{OpLoc: start, Op: ast.OpDelete, Operand: p.parseUnary()}
	case lexer.Increment:
		p.advance()
		return &ast.UnaryExpr{OpLoc: start, Op: ast.OpIncrement, Operand: p.parseUnary()}
	case lexer.Decrement:
		p.advance()
		return &ast.UnaryExpr{OpLoc: start, Op: ast.OpDecrement, Operand: p.parseUnary()}
	case lexer.Add:
		p.advance()
		return &ast.UnaryExpr{OpLoc: start, Op: ast.OpUnaryPlus, Operand: p.parseUnary()}
	case lexer.Sub:
		p.advance()
		return &ast.UnaryExpr{OpLoc: start, Op: ast.OpUnaryMinus, Operand: p.parseUnary()}
	case lexer.KwNew:
		p.advance()
		ty := p.parseTypeName()
		ne := &ast.NewExpr{NewLoc: start, Type: ty}
		if p.at(lexer.OpenParen) {
			ne.Args = p.parseCallArgs()
		}
		return p.parsePostfix(ne)
	default:
		return p.parsePostfix(p.parsePrimary())
	}
}

func (p *Parser) parsePostfix(e ast.Expression) ast.Expression {
	for {
		switch p.tok.Kind {
		case lexer.Increment:
			loc := p.tok.Loc
			p.advance()
			e = &ast.UnaryExpr{OpLoc: loc, Op: ast.OpIncrement, Operand: e, Postfix: true}
		case lexer.Decrement:
			loc := p.tok.Loc
			p.advance()
			e = &ast.UnaryExpr{OpLoc: loc, Op: ast.OpDecrement, Operand: e, Postfix: true}
		case lexer.Member:
			loc := p.tok.Loc
			p.advance()
			name, _ := p.expect(lexer.Identifier)
			e = &ast.MemberExpr{DotLoc: loc, Base: e, Member: ast.Identifier{Loc: name.Loc, Name: name.Text}}
		case lexer.OpenBracket:
			loc := p.tok.Loc
			p.advance()
			var index ast.Expression
			if !p.at(lexer.CloseBracket) {
				index = p.parseExpression(precAssign)
			}
			p.expect(lexer.CloseBracket)
			e = &ast.IndexExpr{BracketLoc: loc, Base: e, Index: index}
		case lexer.OpenParen:
			loc := p.tok.Loc
			args := p.parseCallArgs()
			e = &ast.CallExpr{CallLoc: loc, Callee: e, Args: args}
		default:
			return e
		}
	}
}

func (p *Parser) parseCallArgs() []ast.Expression {
	p.expect(lexer.OpenParen)
	var args []ast.Expression
	for !p.at(lexer.CloseParen) && !p.at(lexer.EOF) {
		args = append(args, p.parseExpression(precAssign))
		if p.at(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.CloseParen)
	return args
}

func (p *Parser) parsePrimary() ast.Expression {
	start := p.tok.Loc
	switch p.tok.Kind {
	case lexer.KwTrue:
		p.advance()
		return &ast.BoolLiteral{LitLoc: start, Value: true}
	case lexer.KwFalse:
		p.advance()
		return &ast.BoolLiteral{LitLoc: start, Value: false}
	case lexer.Number:
		text := p.tok.Text
		p.advance()
		return &ast.NumberLiteral{LitLoc: start, Text: text}
	case lexer.HexNumber:
		text := p.tok.Text
		p.advance()
		return &ast.NumberLiteral{LitLoc: start, Text: text, Hex: true}
	case lexer.StringLiteral:
		var parts []ast.StringPart
		for p.at(lexer.StringLiteral) {
			parts = append(parts, ast.StringPart{Loc: p.tok.Loc, Value: p.tok.Text})
			p.advance()
		}
		return &ast.StringLiteralExpr{Parts: parts}
	case lexer.HexLiteral:
		var parts []ast.StringPart
		for p.at(lexer.HexLiteral) {
			parts = append(parts, ast.StringPart{Loc: p.tok.Loc, Value: p.tok.Text})
			p.advance()
		}
		return &ast.HexLiteralExpr{Parts: parts}
	case lexer.Identifier:
		name := p.tok.Text
		p.advance()
		return &ast.VariableExpr{Name: ast.Identifier{Loc: start, Name: name}}
	case lexer.KwBool, lexer.KwAddress, lexer.KwString, lexer.KwUint, lexer.KwInt, lexer.KwBytes:
		ty := p.parseBaseType()
		return &ast.TypeExpr{Type: ty}
	case lexer.OpenParen:
		return p.parseParenOrTuple()
	case lexer.OpenBracket:
		return p.parseArrayLiteral()
	default:
		p.errorf(start, "expected an expression, found %s", p.tok)
		p.advance()
		return &ast.VariableExpr{Name: ast.Identifier{Loc: start, Name: "<error>"}}
	}
}

func (p *Parser) parseParenOrTuple() ast.Expression {
	start := p.tok.Loc
	p.advance() // '('

	var elems []ast.Expression
	sawComma := false
	for !p.at(lexer.CloseParen) && !p.at(lexer.EOF) {
		if p.at(lexer.Comma) {
			elems = append(elems, nil)
		} else {
			elems = append(elems, p.parseExpression(precAssign))
		}
		if p.at(lexer.Comma) {
			sawComma = true
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.CloseParen)

	if !sawComma && len(elems) == 1 {
		return elems[0]
	}
	return &ast.TupleExpr{ParenLoc: start, Elements: elems}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	start := p.tok.Loc
	p.advance() // '['
	var elems []ast.Expression
	for !p.at(lexer.CloseBracket) && !p.at(lexer.EOF) {
		elems = append(elems, p.parseExpression(precAssign))
		if p.at(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.CloseBracket)
	return &ast.ArrayLiteralExpr{BracketLoc: start, Elements: elems}
}
