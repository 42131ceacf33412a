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

package types

import "math/big"

// ImplicitlyConvertible implements the Cast rule of spec.md §4.3: a cast is
// implicit (allowed in assignment and argument passing) only when it cannot
// lose information and cannot change sign.
func ImplicitlyConvertible(from, to Type) bool {
	if from.Equal(to) {
		return true
	}

	switch {
	case from.Kind == Int && to.Kind == Int:
		return to.Bits >= from.Bits
	case from.Kind == Uint && to.Kind == Uint:
		return to.Bits >= from.Bits
	// Unsigned to signed widening is implicit only when it strictly widens,
	// since the value space of Uint(n) does not fit in Int(n).
	case from.Kind == Uint && to.Kind == Int:
		return to.Bits > from.Bits
	case from.Kind == FixedBytes && to.Kind == FixedBytes:
		return to.BytesLen >= from.BytesLen
	case from.Kind == Address && to.Kind == Address:
		return from.Payable || !to.Payable
	default:
		return false
	}
}

// ExplicitlyConvertible reports whether a cast is legal at all (with an
// explicit `T(x)` cast expression), a superset of ImplicitlyConvertible.
// Bool is never convertible to/from a numeric type (spec.md §4.3: "Bool is
// not a numeric type — no implicit to/from integer", and the original
// language this core ports never allows an explicit numeric<->bool cast
// either).
func ExplicitlyConvertible(from, to Type) bool {
	if ImplicitlyConvertible(from, to) {
		return true
	}

	switch {
	case from.IsInteger() && to.IsInteger():
		return true // narrowing, widening, or sign-changing: all explicit-legal.
	case from.Kind == FixedBytes && to.Kind == FixedBytes:
		return true
	case from.Kind == FixedBytes && to.Kind == DynamicBytes:
		return true // embeds length, byte-reverses (spec.md §4.6 "Cast through ABI boundary").
	case from.Kind == DynamicBytes && to.Kind == FixedBytes:
		return true // checked at runtime: length must equal BytesLen.
	case from.Kind == Address && to.Kind == Contract():
		return true
	case from.Kind == Contract() && to.Kind == Address:
		return true
	case from.IsInteger() && to.Kind == FixedBytes:
		return from.Bits/8 == int(to.BytesLen)
	case from.Kind == FixedBytes && to.IsInteger():
		return int(from.BytesLen) == to.Bits/8
	case from.Kind == Enum && to.IsInteger():
		return true
	case from.IsInteger() && to.Kind == Enum:
		return true
	default:
		return false
	}
}

// Contract is a stand-in Kind for "a contract type", which the resolver
// represents as a UserType pointing at a contract record; address<->contract
// conversion is decided by the resolver (which knows whether a UserTypeID
// names a contract), not by this package. ExplicitlyConvertible's Contract()
// branches above document the rule from spec.md §4.3 ("Address <-> Contract(_)
// freely"); as written they accept a conversion between an address and any
// UserType, contract or not.
func Contract() Kind { return UserType }

// LiteralFits reports whether an integer literal value v (as parsed from
// source, arbitrary precision) is representable in destination type to,
// per spec.md §8 invariant 7 ("Integer literals accepted at parse time are
// exactly those representable in the destination integer type").
func LiteralFits(v *big.Int, to Type) bool {
	if !to.IsInteger() {
		return false
	}
	bits := uint(to.Bits)
	if to.IsSigned() {
		min := new(big.Int).Lsh(big.NewInt(-1), bits-1)
		max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits-1), big.NewInt(1))
		return v.Cmp(min) >= 0 && v.Cmp(max) <= 0
	}
	if v.Sign() < 0 {
		return false
	}
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1))
	return v.Cmp(max) <= 0
}

// ArithmeticResult implements the "Operator typing" rule of spec.md §4.3
// for binary arithmetic/bitwise operators on two integer types: the common
// type is the wider of the two with the caller's signedness when equal; if
// signedness differs, the common type is unsigned only if the signed
// operand's value range is provably non-negative (nonNegative), else ok is
// false and the caller must raise a type-mismatch diagnostic.
func ArithmeticResult(a, b Type, nonNegative bool) (result Type, ok bool) {
	if !a.IsInteger() || !b.IsInteger() {
		return Type{}, false
	}

	bits := max(a.Bits, b.Bits)
	switch {
	case a.IsSigned() == b.IsSigned():
		if a.IsSigned() {
			return NewInt(bits), true
		}
		return NewUint(bits), true
	case nonNegative:
		return NewUint(bits), true
	default:
		return Type{}, false
	}
}

// DivModResult implements spec.md §4.3's rule for division, modulo,
// comparisons, and right-shift: "choose the signed variant iff any operand's
// type is signed".
func DivModResult(a, b Type) (signed bool, bits uint16) {
	signed = a.IsSigned() || b.IsSigned()
	bits = max(a.Bits, b.Bits)
	return signed, bits
}
