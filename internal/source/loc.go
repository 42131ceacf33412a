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

// Package source holds the byte-offset location model shared by every AST
// and IR node: a file index plus a [start, end) byte range, and a per-file
// table for mapping a byte offset back to a line/column for diagnostics.
package source

import (
	"fmt"
	"sort"
)

// File identifies one source file by its position in a Namespace's file
// list, counting from 0; NoFile marks "no location".
type File int32

// NoFile is the File value carried by synthetic locations that do not point
// into any real source file (e.g. a compiler-inserted default-value Set).
const NoFile File = -1

// Loc is a location in a source file: a file index plus a half-open byte
// range [Start, End).
type Loc struct {
	File  File
	Start uint32
	End   uint32
}

// Nowhere is the Loc used for synthetic nodes; its File is NoFile.
var Nowhere = Loc{File: NoFile}

// IsValid reports whether l refers to an actual file.
func (l Loc) IsValid() bool { return l.File != NoFile }

// String implements fmt.Stringer with a compact "file:start-end" form; it is
// only useful for debugging since it does not resolve to line/column.
func (l Loc) String() string {
	if !l.IsValid() {
		return "<nowhere>"
	}
	return fmt.Sprintf("%d:%d-%d", l.File, l.Start, l.End)
}

// Span returns a Loc spanning from the start of l to the end of other. Both
// must carry the same File.
func (l Loc) Span(other Loc) Loc {
	if l.File != other.File {
		panic("source: Span across different files")
	}
	return Loc{File: l.File, Start: min(l.Start, other.Start), End: max(l.End, other.End)}
}

// Position is a human-readable 1-based line and column.
type Position struct {
	Line, Column int
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Offsets maps byte offsets within one source file to (line, column) pairs,
// by binary-searching a table of cumulative newline positions built once
// when the file is registered with a Namespace.
type Offsets struct {
	Path       string
	Contents   []byte
	lineStarts []uint32 // lineStarts[i] is the byte offset of line i+1's first byte.
}

// NewOffsets builds the newline-position table for contents.
func NewOffsets(path string, contents []byte) *Offsets {
	o := &Offsets{Path: path, Contents: contents, lineStarts: []uint32{0}}
	for i, b := range contents {
		if b == '\n' {
			o.lineStarts = append(o.lineStarts, uint32(i+1))
		}
	}
	return o
}

// Position converts a byte offset into contents to a 1-based line/column.
// Offsets past the end of the file clamp to the last valid position.
func (o *Offsets) Position(offset uint32) Position {
	if offset > uint32(len(o.Contents)) {
		offset = uint32(len(o.Contents))
	}

	// lineStarts is sorted ascending; find the last line start <= offset.
	line := sort.Search(len(o.lineStarts), func(i int) bool {
		return o.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}

	return Position{Line: line + 1, Column: int(offset-o.lineStarts[line]) + 1}
}

// Text returns the source text spanned by l, assuming l.File addresses o.
func (o *Offsets) Text(l Loc) string {
	start, end := l.Start, l.End
	if end > uint32(len(o.Contents)) {
		end = uint32(len(o.Contents))
	}
	if start > end {
		start = end
	}
	return string(o.Contents[start:end])
}
