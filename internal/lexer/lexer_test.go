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

package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solc-core/solc/internal/lexer"
	"github.com/solc-core/solc/internal/source"
)

func scanAll(t *testing.T, src string) []lexer.Token {
	t.Helper()
	l := lexer.New(0, []byte(src))
	var toks []lexer.Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		if tok.Kind == lexer.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexer_Keywords(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, "bool uint8 address")
	require.Len(t, toks, 3)
	assert.Equal(t, lexer.KwBool, toks[0].Kind)
	assert.Equal(t, lexer.KwUint, toks[1].Kind)
	assert.Equal(t, uint16(8), toks[1].Width)
	assert.Equal(t, lexer.KwAddress, toks[2].Kind)
}

func TestLexer_Identifier(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, "hex")
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Identifier, toks[0].Kind)
	assert.Equal(t, "hex", toks[0].Text)
}

func TestLexer_HexLiteral(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, `hex"cafe_dead" /* adad*** */`)
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.HexLiteral, toks[0].Kind)
	assert.Equal(t, "cafe_dead", toks[0].Text)
}

func TestLexer_NumbersAndComments(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, "// foo bar\n0x00fead0_12 00090 0_0")
	require.Len(t, toks, 3)
	assert.Equal(t, lexer.HexNumber, toks[0].Kind)
	assert.Equal(t, "0x00fead0_12", toks[0].Text)
	assert.Equal(t, lexer.Number, toks[1].Kind)
	assert.Equal(t, "00090", toks[1].Text)
	assert.Equal(t, "0_0", toks[2].Text)
}

func TestLexer_StringLiteral(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, `"foo"`)
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.StringLiteral, toks[0].Kind)
	assert.Equal(t, "foo", toks[0].Text)
}

func TestLexer_StringEscapes(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, `"a\nb\tc\\d\"e\x41B"`)
	require.Len(t, toks, 1)
	assert.Equal(t, "a\nb\tc\\d\"eAB", toks[0].Text)
}

func TestLexer_InvalidEscape(t *testing.T) {
	t.Parallel()

	l := lexer.New(0, []byte(`"a\qb"`))
	_, err := l.Next()
	require.Error(t, err)
	var lerr *lexer.Error
	require.ErrorAs(t, err, &lerr)
}

func TestLexer_PragmaValue(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, "pragma solidity >=0.5.0 <0.7.0;")
	require.Len(t, toks, 4)
	assert.Equal(t, lexer.KwPragma, toks[0].Kind)
	assert.Equal(t, lexer.Identifier, toks[1].Kind)
	assert.Equal(t, "solidity", toks[1].Text)
	assert.Equal(t, lexer.StringLiteral, toks[2].Kind)
	assert.Equal(t, ">=0.5.0 <0.7.0", toks[2].Text)
	assert.Equal(t, lexer.Semicolon, toks[3].Kind)
}

func TestLexer_ShiftAndComparisonOperators(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, ">>= >> >= >")
	kinds := make([]lexer.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []lexer.Kind{
		lexer.ShiftRightAssign, lexer.ShiftRight, lexer.MoreEq, lexer.More,
	}, kinds)

	toks = scanAll(t, "<<= << <= <")
	kinds = make([]lexer.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []lexer.Kind{
		lexer.ShiftLeftAssign, lexer.ShiftLeft, lexer.LessEq, lexer.Less,
	}, kinds)
}

func TestLexer_MinusIsAlwaysSeparateFromDigits(t *testing.T) {
	t.Parallel()

	// spec.md §4.1: folding '-' into a numeric literal is the parser's
	// job (it depends on unary-vs-binary context), not the lexer's.
	toks := scanAll(t, "-16 -- - -=")
	kinds := make([]lexer.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []lexer.Kind{
		lexer.Sub, lexer.Number, lexer.Decrement, lexer.Sub, lexer.SubAssign,
	}, kinds)
}

func TestLexer_DocComments(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, "/// hello\nfunction")
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.DocComment, toks[0].Kind)
	assert.Equal(t, "hello", toks[0].Text)
	assert.Equal(t, lexer.KwFunction, toks[1].Kind)

	toks = scanAll(t, "/** block doc */ function")
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.DocComment, toks[0].Kind)
	assert.Equal(t, "block doc", toks[0].Text)
}

func TestLexer_OrdinaryCommentsAreSkipped(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, "// not a doc\nfunction /* also skipped */ if")
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.KwFunction, toks[0].Kind)
	assert.Equal(t, lexer.KwIf, toks[1].Kind)
}

func TestLexer_UnterminatedBlockComment(t *testing.T) {
	t.Parallel()

	l := lexer.New(0, []byte("/* never closes"))
	_, err := l.Next()
	require.Error(t, err)
}

func TestLexer_UnterminatedString(t *testing.T) {
	t.Parallel()

	l := lexer.New(0, []byte(`"never closes`))
	_, err := l.Next()
	require.Error(t, err)
}

func TestLexer_Locations(t *testing.T) {
	t.Parallel()

	l := lexer.New(source.File(3), []byte("if"))
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, source.File(3), tok.Loc.File)
	assert.Equal(t, uint32(0), tok.Loc.Start)
	assert.Equal(t, uint32(2), tok.Loc.End)
}
