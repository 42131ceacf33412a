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

package cfg

import (
	"fmt"

	"github.com/solc-core/solc/internal/types"
)

// scope is one nested lexical block of the vartab's scope chain.
type scope struct {
	vars map[string]int // name -> index into vartab.vars
}

// vartab is the Variable Table of spec.md §4.4: name -> resolved Var,
// scoped, with a stack of dirty trackers that record which positions were
// assigned within a bracketed region for φ-set computation.
type vartab struct {
	vars   []Var
	scopes []scope
	dirty  []map[int]bool // stack of dirty trackers; set_dirty marks every active one.

	contractLookup func(name string) (Var, bool) // state variables, inherited included.
}

func newVartab(contractLookup func(name string) (Var, bool)) *vartab {
	v := &vartab{contractLookup: contractLookup}
	v.newScope()
	return v
}

func (v *vartab) newScope() { v.scopes = append(v.scopes, scope{vars: map[string]int{}}) }

func (v *vartab) leaveScope() { v.scopes = v.scopes[:len(v.scopes)-1] }

// add declares a new local in the innermost scope, returning its vartab
// position. Re-declaring a name already present in that same scope is an
// error the caller reports (add just reports ok=false).
func (v *vartab) add(id string, ty types.Type) (pos int, ok bool) {
	top := &v.scopes[len(v.scopes)-1]
	if _, dup := top.vars[id]; dup {
		return 0, false
	}
	pos = len(v.vars)
	v.vars = append(v.vars, Var{ID: id, Pos: pos, Ty: ty, Storage: Local})
	top.vars[id] = pos
	return pos, true
}

// temp creates a compiler-generated local named "<id>.temp.<n>", per
// spec.md §4.4's vartab contract, used for destructuring swaps and other
// builder-introduced intermediates.
func (v *vartab) temp(id string, ty types.Type) int {
	n := 0
	name := fmt.Sprintf("%s.temp.%d", id, n)
	for {
		if _, taken := v.scopes[len(v.scopes)-1].vars[name]; !taken {
			break
		}
		n++
		name = fmt.Sprintf("%s.temp.%d", id, n)
	}
	pos, _ := v.add(name, ty)
	return pos
}

// find walks the scope chain from innermost outward, then falls back to
// contract state (spec.md §4.3's name-lookup order: "local scope chain ->
// function parameter -> contract state variables -> inherited state
// variables...", parameters and locals sharing the same scope chain here).
func (v *vartab) find(id string) (Var, bool) {
	for i := len(v.scopes) - 1; i >= 0; i-- {
		if pos, ok := v.scopes[i].vars[id]; ok {
			return v.vars[pos], true
		}
	}
	if v.contractLookup != nil {
		if vr, ok := v.contractLookup(id); ok {
			return vr, true
		}
	}
	return Var{}, false
}

// setDirty records an assignment into pos in every active dirty tracker
// (spec.md §4.4's "set_dirty(pos) recording an assignment into every
// active dirty tracker").
func (v *vartab) setDirty(pos int) {
	for _, tracker := range v.dirty {
		tracker[pos] = true
	}
}

func (v *vartab) newDirtyTracker() { v.dirty = append(v.dirty, map[int]bool{}) }

// popDirtyTracker pops and returns the bracketed set of assigned positions.
func (v *vartab) popDirtyTracker() []int {
	top := v.dirty[len(v.dirty)-1]
	v.dirty = v.dirty[:len(v.dirty)-1]
	out := make([]int, 0, len(top))
	for pos := range top {
		out = append(out, pos)
	}
	return out
}

func (v *vartab) phiVars(positions []int) []Var {
	out := make([]Var, len(positions))
	for i, p := range positions {
		out[i] = v.vars[p]
	}
	return out
}
