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

// Package parser implements the recursive-descent/precedence-climbing
// parser of spec.md §4.2, turning a token stream from internal/lexer into
// an internal/ast.SourceUnit. Parse errors are recorded to an internal/diag
// list and the parser resynchronizes at the next statement/declaration
// boundary rather than aborting, matching spec.md §4.7's "diagnostics
// accumulate" contract; a malformed token stream from the lexer itself
// (spec.md §7's lexical-error class) is recorded the same way.
package parser

import (
	"github.com/solc-core/solc/internal/ast"
	"github.com/solc-core/solc/internal/diag"
	"github.com/solc-core/solc/internal/lexer"
	"github.com/solc-core/solc/internal/source"
)

// Parser holds one file's parse state. Tokens already pulled from the
// lexer are kept in buf so that statement parsing can checkpoint/restore
// when disambiguating a variable declaration from an expression statement
// (spec.md §4.2's grammar is ambiguous on a leading identifier until the
// token after it is known).
type Parser struct {
	file  source.File
	lex   *lexer.Lexer
	diags *diag.List

	buf []lexer.Token
	idx int
	tok lexer.Token

	pendingDoc []string
}

// New constructs a Parser over src, attributing every diagnostic and Loc to
// file, recording parse/lex errors into diags.
func New(file source.File, src []byte, diags *diag.List) *Parser {
	p := &Parser{file: file, lex: lexer.New(file, src), diags: diags}
	p.buf = append(p.buf, p.scan())
	p.tok = p.buf[0]
	return p
}

func (p *Parser) advance() {
	p.idx++
	if p.idx == len(p.buf) {
		p.buf = append(p.buf, p.scan())
	}
	p.tok = p.buf[p.idx]
}

// checkpoint returns a mark that restore can rewind to; used for the
// bounded speculative lookahead a few statement forms require.
func (p *Parser) checkpoint() int { return p.idx }

func (p *Parser) restore(mark int) {
	p.idx = mark
	p.tok = p.buf[p.idx]
}

func (p *Parser) scan() lexer.Token {
	for {
		tok, err := p.lex.Next()
		if err != nil {
			var lerr *lexer.Error
			loc := source.Loc{File: p.file}
			if e, ok := err.(*lexer.Error); ok {
				lerr = e
				loc = e.Loc
			}
			msg := err.Error()
			if lerr != nil {
				msg = lerr.Msg
			}
			p.diags.Add(diag.Error, loc, "%s", msg)
			continue
		}
		if tok.Kind == lexer.DocComment {
			p.pendingDoc = append(p.pendingDoc, tok.Text)
			continue
		}
		return tok
	}
}

func (p *Parser) errorf(loc source.Loc, format string, args ...any) {
	p.diags.Add(diag.Error, loc, format, args...)
}

// expect consumes the current token if it has Kind k, else records a
// diagnostic and leaves the token stream positioned at the offending token
// (the caller's resync logic decides how to recover).
func (p *Parser) expect(k lexer.Kind) (lexer.Token, bool) {
	if p.tok.Kind != k {
		p.errorf(p.tok.Loc, "expected %s, found %s", k, p.tok)
		return lexer.Token{}, false
	}
	tok := p.tok
	p.advance()
	return tok, true
}

func (p *Parser) at(k lexer.Kind) bool { return p.tok.Kind == k }

// takePendingDoc returns and clears doc-comment text accumulated since the
// last declaration, per SPEC_FULL.md §3.1.
func (p *Parser) takePendingDoc() []string {
	doc := p.pendingDoc
	p.pendingDoc = nil
	return doc
}

// skipTo advances past tokens until one of ks (inclusive) or EOF, used to
// resynchronize after a parse error.
func (p *Parser) skipTo(ks ...lexer.Kind) {
	for {
		if p.tok.Kind == lexer.EOF {
			return
		}
		for _, k := range ks {
			if p.tok.Kind == k {
				return
			}
		}
		p.advance()
	}
}

// Parse consumes the whole token stream and returns the resulting
// SourceUnit; malformed parts are skipped (with diagnostics recorded) so
// that one syntax error does not prevent discovering others in the same
// file, matching spec.md §4.7.
func (p *Parser) Parse() *ast.SourceUnit {
	var unit ast.SourceUnit
	for p.tok.Kind != lexer.EOF {
		part := p.parseSourceUnitPart()
		if part != nil {
			unit.Parts = append(unit.Parts, part)
		}
	}
	return &unit
}

func (p *Parser) parseSourceUnitPart() ast.SourceUnitPart {
	switch p.tok.Kind {
	case lexer.KwPragma:
		return p.parsePragma()
	case lexer.KwImport:
		return p.parseImport()
	case lexer.KwContract, lexer.KwInterface, lexer.KwLibrary:
		return p.parseContract()
	default:
		p.errorf(p.tok.Loc, "expected pragma, import, or contract declaration, found %s", p.tok)
		p.skipTo(lexer.KwPragma, lexer.KwImport, lexer.KwContract, lexer.KwInterface, lexer.KwLibrary)
		return nil
	}
}

func (p *Parser) parsePragma() ast.SourceUnitPart {
	start := p.tok.Loc
	p.advance() // 'pragma'
	name, ok := p.expect(lexer.Identifier)
	if !ok {
		p.skipTo(lexer.Semicolon)
		p.advance()
		return nil
	}
	value, _ := p.expect(lexer.StringLiteral)
	semi, _ := p.expect(lexer.Semicolon)
	return &ast.PragmaDirective{
		Loc:   start.Span(semi.Loc),
		Name:  ast.Identifier{Loc: name.Loc, Name: name.Text},
		Value: value.Text,
	}
}

func (p *Parser) parseImport() ast.SourceUnitPart {
	start := p.tok.Loc
	p.advance() // 'import'
	path, ok := p.expect(lexer.StringLiteral)
	if !ok {
		p.skipTo(lexer.Semicolon)
	}
	p.expect(lexer.Semicolon)
	return &ast.ImportDirective{Loc: start, Path: path.Text}
}
