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

// Package solc is the public driver of the core (spec.md §5): it owns the
// call graph rooted at [ParseAndResolve], the single entry point that
// takes a root filename and a [filecache.Cache] and runs lex, parse,
// resolve, and CFG build to completion before returning. There are no
// suspension points inside this call graph, matching spec.md §5's
// "single-threaded and purely transformational" contract.
package solc

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/solc-core/solc/filecache"
	"github.com/solc-core/solc/internal/arena"
	"github.com/solc-core/solc/internal/ast"
	"github.com/solc-core/solc/internal/cfg"
	"github.com/solc-core/solc/internal/diag"
	"github.com/solc-core/solc/internal/ns"
	"github.com/solc-core/solc/internal/parser"
	"github.com/solc-core/solc/internal/source"
	"github.com/solc-core/solc/internal/target"
)

// File is one compiled source file: its canonical path, its parsed AST,
// the Namespace resolved against it, and the byte-offset table used to
// turn any Loc pointing into it back into a line/column (spec.md §3's
// FileOffsets, consumed by the language-server hover walk of spec.md §6).
type File struct {
	Path    string
	Index   source.File
	Offsets *source.Offsets
	Unit    *ast.SourceUnit
	NS      *ns.Namespace
}

// Program is the result of a whole [ParseAndResolve] call: every file
// reached from the root by import, in the import-dependency order spec.md
// §5 requires, plus every CFG built for every function across every file.
type Program struct {
	Files []*File
	// CFGs maps a file's Index to the CFGs built for its functions, in
	// ns.Namespace.Functions order.
	CFGs map[source.File][]*cfg.CFG
}

// Diagnostics merges every file's diagnostics into one list ordered first
// by the import-dependency order of the owning file (a file is always
// listed after every file it imports) and then by source.Loc.Start within
// a file (spec.md §5: "diagnostics are emitted in the source order of the
// offending locations within a file").
func (p *Program) Diagnostics() []diag.Record {
	var out []diag.Record
	for _, f := range p.Files {
		recs := append([]diag.Record(nil), f.NS.Diags.Records()...)
		sort.SliceStable(recs, func(i, j int) bool { return recs[i].Loc.Start < recs[j].Loc.Start })
		out = append(out, recs...)
	}
	return out
}

// HasErrors reports whether any file in the Program produced an Error
// diagnostic (spec.md §4.7: "a final compile fails iff any Error was
// produced").
func (p *Program) HasErrors() bool {
	for _, f := range p.Files {
		if f.NS.Diags.HasErrors() {
			return true
		}
	}
	return false
}

// ParseAndResolve is the sole root of the core's call graph (spec.md §5).
// It reads filename from cache, parses it, resolves the imports it names
// transitively (also through cache), and runs CFG build over every
// resolved function in every file, all for tgt. Files are visited in
// import-dependency order with the import statement's byte offset as a
// stable tiebreaker (spec.md §5); an import cycle is reported once, on the
// directive that closes it, and is otherwise skipped rather than
// recursing forever.
//
// Cross-file name resolution (e.g. `import "other.sol"; contract C is
// Other.Base`) is not performed here: each file's ast.SourceUnit resolves
// against its own Namespace only, a scope limitation ns.Build's doc
// comment already states and DESIGN.md records as an open question.
// ParseAndResolve's import closure exists to (a) give every reachable file
// a chance to produce its own diagnostics and (b) let a caller (e.g. the
// language-server hover walk of spec.md §6) look up any transitively
// opened file by path.
func ParseAndResolve(filename string, cache *filecache.Cache, tgt target.Target) (*Program, error) {
	p := &Program{CFGs: map[source.File][]*cfg.CFG{}}
	seen := map[string]source.File{}

	var visit func(path string) (*File, error)
	visit = func(path string) (*File, error) {
		canonical, src, ok := cache.Resolve(path)
		if !ok {
			return nil, fmt.Errorf("solc: %s: not found", path)
		}
		if idx, ok := seen[canonical]; ok {
			if i := indexOf(p.Files, idx); i >= 0 {
				return p.Files[i], nil
			}
			// Seen but not yet finished: this import closes a cycle.
			return nil, fmt.Errorf("solc: %s: import cycle", path)
		}

		idx := source.File(len(seen))
		seen[canonical] = idx

		offsets := source.NewOffsets(canonical, src)
		diags := &diag.List{}
		prs := parser.New(idx, src, diags)
		unit := prs.Parse()

		f := &File{Path: canonical, Index: idx, Offsets: offsets, Unit: unit}

		dir := filepath.Dir(canonical)
		cache.AddImportPath(dir)

		imports := importsOf(unit)
		sort.SliceStable(imports, func(i, j int) bool { return imports[i].Loc.Start < imports[j].Loc.Start })
		for _, imp := range imports {
			if _, err := visit(imp.Path); err != nil {
				diags.Add(diag.Error, imp.Loc, "%s", err)
			}
		}

		n := ns.Build(idx, unit, tgt)
		for _, r := range diags.Records() {
			n.Diags.AddWithNotes(r.Severity, r.Loc, r.Notes, "%s", r.Message)
		}
		f.NS = n

		buildCFGs(p, f)
		// Listed only once its imports are done, so it follows every file it
		// imports.
		p.Files = append(p.Files, f)
		return f, nil
	}

	if _, err := visit(filename); err != nil {
		return nil, err
	}
	return p, nil
}

func indexOf(files []*File, idx source.File) int {
	for i, f := range files {
		if f.Index == idx {
			return i
		}
	}
	return -1
}

// buildCFGs runs internal/cfg's Build over every function the Namespace
// resolved for f, in Functions arena order, recording the result on p.
func buildCFGs(p *Program, f *File) {
	n := f.NS
	out := make([]*cfg.CFG, n.Functions.Len())
	n.Functions.All(func(id arena.ID[ns.FunctionRecord], rec *ns.FunctionRecord) bool {
		out[int(id)] = cfg.Build(n, rec.Contract, rec)
		return true
	})
	p.CFGs[f.Index] = out
}

func importsOf(unit *ast.SourceUnit) []*ast.ImportDirective {
	var out []*ast.ImportDirective
	for _, part := range unit.Parts {
		if imp, ok := part.(*ast.ImportDirective); ok {
			out = append(out, imp)
		}
	}
	return out
}
