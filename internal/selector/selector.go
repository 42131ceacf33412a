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

// Package selector computes function selectors per spec.md §6: the first
// target.Target.SelectorLength bytes of keccak256(signature_string), and
// tracks per-contract collisions.
package selector

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/solc-core/solc/internal/target"
	"github.com/solc-core/solc/internal/types"
)

// Signature renders the canonical "name(type1,type2,...)" string spec.md §6
// specifies, using types.Type.String's canonical ABI spelling (e.g.
// "uint256", never "uint").
func Signature(name string, params []types.Type) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(canonical(p))
	}
	b.WriteByte(')')
	return b.String()
}

// canonical renders a type the way a signature string needs it (spec.md §6:
// "canonical type names (uint256 not uint, etc.)"): a top-level `address
// payable` is spelled "address", and every other type uses Type.String.
// Struct parameters are not expanded into ABI tuples.
func canonical(t types.Type) string {
	if t.Kind == types.Address {
		return "address"
	}
	return t.String()
}

// Compute hashes signature and truncates to tgt's selector length.
func Compute(signature string, tgt target.Target) []byte {
	sum := sha3.NewLegacyKeccak256()
	sum.Write([]byte(signature))
	digest := sum.Sum(nil)

	n := tgt.SelectorLength
	if n > len(digest) {
		n = len(digest)
	}
	return digest[:n]
}

// Table detects duplicate selectors within one contract (spec.md §6:
// "duplicates within a contract ⇒ error").
type Table struct {
	seen map[string]string // hex selector -> first owning signature
}

// NewTable returns an empty selector table.
func NewTable() *Table { return &Table{seen: make(map[string]string)} }

// Add records signature's selector, returning the signature that already
// claimed the same selector bytes, if any.
func (t *Table) Add(signature string, sel []byte) (conflict string, duplicate bool) {
	key := fmt.Sprintf("%x", sel)
	if prev, ok := t.seen[key]; ok {
		return prev, true
	}
	t.seen[key] = signature
	return "", false
}
