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

package ns

import (
	"strings"

	"golang.org/x/mod/semver"

	"github.com/solc-core/solc/internal/ast"
	"github.com/solc-core/solc/internal/diag"
)

// checkPragma validates `pragma solidity <version-constraint>;` (spec.md
// §4.1). The lexer hands the resolver the whole constraint as an opaque
// string — "^0.8.0", ">=0.8.0 <0.9.0", "0.8.19" are all legal — so this is
// where the embedded version tokens get checked for well-formedness, using
// golang.org/x/mod/semver as the version comparator rather than
// hand-rolling semantic-version parsing.
func (n *Namespace) checkPragma(p *ast.PragmaDirective) {
	if p.Name.Name != "solidity" {
		return // other pragma namespaces (e.g. abicoder v2) aren't version constraints
	}
	toks := splitVersionTokens(p.Value)
	if len(toks) == 0 {
		n.Diags.Add(diag.Error, p.Loc, "malformed Solidity version constraint %q", p.Value)
	}
	for _, tok := range toks {
		if !semver.IsValid(normalizeSemver(tok)) {
			n.Diags.Add(diag.Error, p.Loc, "malformed Solidity version constraint %q", tok)
		}
	}
}

// splitVersionTokens extracts the bare dotted-number substrings from a
// pragma value, discarding comparison operators (^ ~ >= <= > < =) and
// range-joining whitespace.
func splitVersionTokens(value string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range value {
		if r == '.' || (r >= '0' && r <= '9') {
			cur.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return out
}

// normalizeSemver pads a dotted version to semver's required "vX.Y.Z" form
// ("0.8" -> "v0.8.0", "8" -> "v8.0.0").
func normalizeSemver(tok string) string {
	parts := strings.Split(tok, ".")
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	return "v" + strings.Join(parts[:3], ".")
}
