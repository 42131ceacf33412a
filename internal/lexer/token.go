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

package lexer

import (
	"fmt"

	"github.com/solc-core/solc/internal/source"
)

// Kind discriminates the tokens the lexer can produce (spec.md §4.1).
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	Identifier
	StringLiteral
	HexLiteral
	Number
	HexNumber
	DocComment

	// Fixed-width value types: Width/BytesLen on the Token carry the size.
	KwUint
	KwInt
	KwBytes
	KwBool
	KwAddress
	KwString

	KwContract
	KwLibrary
	KwInterface
	KwFunction
	KwPragma
	KwImport
	KwStruct
	KwEvent
	KwEnum
	KwModifier

	KwMemory
	KwStorage
	KwCalldata

	KwPublic
	KwPrivate
	KwInternal
	KwExternal
	KwConstant
	KwImmutable
	KwOverride
	KwVirtual
	KwAnonymous
	KwIndexed

	KwNew
	KwDelete
	KwPure
	KwView
	KwPayable

	KwIf
	KwElse
	KwFor
	KwWhile
	KwDo
	KwContinue
	KwBreak
	KwTry
	KwCatch
	KwThrow
	KwEmit
	KwReturn
	KwReturns
	KwConstructor
	KwUnchecked

	KwTrue
	KwFalse
	KwUnderscore

	Semicolon
	Comma
	OpenParen
	CloseParen
	OpenBrace
	CloseBrace
	OpenBracket
	CloseBracket

	BitOr
	BitOrAssign
	Or
	BitXor
	BitXorAssign
	BitAnd
	BitAndAssign
	And
	Complement

	AddAssign
	Increment
	Add
	SubAssign
	Decrement
	Sub
	MulAssign
	Mul
	Power
	DivAssign
	Divide
	ModAssign
	Modulo

	Eq
	Assign
	NotEq
	Not

	ShiftLeft
	ShiftLeftAssign
	ShiftRight
	ShiftRightAssign
	Less
	LessEq
	More
	MoreEq

	Member
	Colon
	Question
)

var keywords = buildKeywords()

func buildKeywords() map[string]Token {
	kw := map[string]Token{
		"bool":        {Kind: KwBool},
		"address":     {Kind: KwAddress},
		"string":      {Kind: KwString},
		"contract":    {Kind: KwContract},
		"library":     {Kind: KwLibrary},
		"interface":   {Kind: KwInterface},
		"function":    {Kind: KwFunction},
		"pragma":      {Kind: KwPragma},
		"import":      {Kind: KwImport},
		"struct":      {Kind: KwStruct},
		"event":       {Kind: KwEvent},
		"enum":        {Kind: KwEnum},
		"modifier":    {Kind: KwModifier},
		"memory":      {Kind: KwMemory},
		"storage":     {Kind: KwStorage},
		"calldata":    {Kind: KwCalldata},
		"public":      {Kind: KwPublic},
		"private":     {Kind: KwPrivate},
		"internal":    {Kind: KwInternal},
		"external":    {Kind: KwExternal},
		"constant":    {Kind: KwConstant},
		"immutable":   {Kind: KwImmutable},
		"override":    {Kind: KwOverride},
		"virtual":     {Kind: KwVirtual},
		"anonymous":   {Kind: KwAnonymous},
		"indexed":     {Kind: KwIndexed},
		"new":         {Kind: KwNew},
		"delete":      {Kind: KwDelete},
		"pure":        {Kind: KwPure},
		"view":        {Kind: KwView},
		"payable":     {Kind: KwPayable},
		"if":          {Kind: KwIf},
		"else":        {Kind: KwElse},
		"for":         {Kind: KwFor},
		"while":       {Kind: KwWhile},
		"do":          {Kind: KwDo},
		"continue":    {Kind: KwContinue},
		"break":       {Kind: KwBreak},
		"try":         {Kind: KwTry},
		"catch":       {Kind: KwCatch},
		"throw":       {Kind: KwThrow},
		"emit":        {Kind: KwEmit},
		"return":      {Kind: KwReturn},
		"returns":     {Kind: KwReturns},
		"constructor": {Kind: KwConstructor},
		"unchecked":   {Kind: KwUnchecked},
		"true":        {Kind: KwTrue},
		"false":       {Kind: KwFalse},
		"_":           {Kind: KwUnderscore},
		"byte":        {Kind: KwBytes, BytesLen: 1},
		"uint":        {Kind: KwUint, Width: 256},
		"int":         {Kind: KwInt, Width: 256},
	}
	for n := 1; n <= 32; n++ {
		kw[fmt.Sprintf("bytes%d", n)] = Token{Kind: KwBytes, BytesLen: uint8(n)}
		bits := uint16(n) * 8
		kw[fmt.Sprintf("uint%d", bits)] = Token{Kind: KwUint, Width: bits}
		kw[fmt.Sprintf("int%d", bits)] = Token{Kind: KwInt, Width: bits}
	}
	return kw
}

// Token is one lexical unit, carrying its source span and any literal text
// or fixed-width-type metadata the parser needs without re-scanning.
type Token struct {
	Kind Kind
	Loc  source.Loc

	// Identifier / StringLiteral / HexLiteral / Number / HexNumber / DocComment.
	Text string

	// KwUint / KwInt: declared bit width.
	Width uint16
	// KwBytes: declared byte length.
	BytesLen uint8
}

func (t Token) String() string {
	switch t.Kind {
	case Identifier, StringLiteral, HexLiteral, Number, HexNumber, DocComment:
		return t.Text
	case KwUint:
		return fmt.Sprintf("uint%d", t.Width)
	case KwInt:
		return fmt.Sprintf("int%d", t.Width)
	case KwBytes:
		return fmt.Sprintf("bytes%d", t.BytesLen)
	default:
		return t.Kind.String()
	}
}

func (k Kind) String() string {
	if s, ok := punctuationNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

var punctuationNames = map[Kind]string{
	EOF: "<eof>", Semicolon: ";", Comma: ",", OpenParen: "(", CloseParen: ")",
	OpenBrace: "{", CloseBrace: "}", OpenBracket: "[", CloseBracket: "]",
	BitOr: "|", BitOrAssign: "|=", Or: "||", BitXor: "^", BitXorAssign: "^=",
	BitAnd: "&", BitAndAssign: "&=", And: "&&", Complement: "~",
	AddAssign: "+=", Increment: "++", Add: "+",
	SubAssign: "-=", Decrement: "--", Sub: "-",
	MulAssign: "*=", Mul: "*", Power: "**", DivAssign: "/=", Divide: "/",
	ModAssign: "%=", Modulo: "%",
	Eq: "==", Assign: "=", NotEq: "!=", Not: "!",
	ShiftLeft: "<<", ShiftLeftAssign: "<<=", ShiftRight: ">>", ShiftRightAssign: ">>=",
	Less: "<", LessEq: "<=", More: ">", MoreEq: ">=",
	Member: ".", Colon: ":", Question: "?",
	KwIf: "if", KwElse: "else", KwFor: "for", KwWhile: "while", KwDo: "do",
	KwReturn: "return", KwReturns: "returns", KwTry: "try", KwCatch: "catch",
	KwEmit: "emit", KwPragma: "pragma", KwImport: "import",
	KwContract: "contract", KwLibrary: "library", KwInterface: "interface",
	KwFunction: "function", KwStruct: "struct", KwEvent: "event", KwEnum: "enum",
	KwModifier: "modifier", KwMemory: "memory", KwStorage: "storage",
	KwCalldata: "calldata", KwUnderscore: "_",
}
