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

// Package diag implements the accumulating diagnostics list described in
// spec.md §4.7: every resolver or CFG-build error becomes a Record rather
// than a Go error, so the compiler can keep going and surface more than one
// problem per run (spec.md §7).
package diag

import (
	"fmt"
	"sort"

	"github.com/solc-core/solc/internal/source"
)

// Severity is the level of a diagnostic Record.
type Severity int

const (
	// Debug records are internal and never shown to a user (spec.md §4.7).
	Debug Severity = iota
	Info
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Note is a related location attached to a Record, e.g. "previous
// declaration here".
type Note struct {
	Loc     source.Loc
	Message string
}

// Record is one diagnostic: a severity, a primary location, a message, and
// zero or more related notes.
type Record struct {
	Severity Severity
	Loc      source.Loc
	Message  string
	Notes    []Note
}

func (r Record) String() string {
	s := fmt.Sprintf("%s: %s: %s", r.Loc, r.Severity, r.Message)
	for _, n := range r.Notes {
		s += fmt.Sprintf("\n\t%s: note: %s", n.Loc, n.Message)
	}
	return s
}

// List is an append-only collection of diagnostics, in the order they were
// raised. It is not safe for concurrent use; a Namespace owns exactly one
// List and the resolver is single-threaded (spec.md §5).
type List struct {
	records []Record
}

// Add appends a new diagnostic with no related notes.
func (l *List) Add(sev Severity, loc source.Loc, format string, args ...any) {
	l.records = append(l.records, Record{Severity: sev, Loc: loc, Message: fmt.Sprintf(format, args...)})
}

// AddWithNotes appends a new diagnostic carrying related notes, e.g. to
// point back at a conflicting prior declaration.
func (l *List) AddWithNotes(sev Severity, loc source.Loc, notes []Note, format string, args ...any) {
	l.records = append(l.records, Record{
		Severity: sev,
		Loc:      loc,
		Message:  fmt.Sprintf(format, args...),
		Notes:    notes,
	})
}

// Records returns every diagnostic raised so far, in source order within
// each file and file order across files (spec.md §5 "Ordering guarantees").
// The slice returned is a defensive copy safe for the caller to keep.
func (l *List) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Loc, out[j].Loc
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Start < b.Start
	})
	return out
}

// HasErrors reports whether any Error-severity diagnostic was raised. A
// compile fails iff this is true (spec.md §4.7).
func (l *List) HasErrors() bool {
	for _, r := range l.records {
		if r.Severity == Error {
			return true
		}
	}
	return false
}

// Count returns the number of diagnostics of the given severity.
func (l *List) Count(sev Severity) int {
	n := 0
	for _, r := range l.records {
		if r.Severity == sev {
			n++
		}
	}
	return n
}
