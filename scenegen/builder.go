// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegen

import (
	"fmt"
	"strings"

	"github.com/tabulahq/tabula/base/indent"
)

// Builder accumulates generated source statements. It is append-only:
// statements are never reordered or rewritten after the fact, so the
// emitted order is exactly the order in which the walk produced them.
// It tracks the current block depth and indents each statement
// accordingly.
type Builder struct {
	b     strings.Builder
	depth int
	ich   indent.Character
	width int
}

// NewBuilder returns a new empty [Builder] using the given indentation
// character and per-level width.
func NewBuilder(ich indent.Character, width int) *Builder {
	return &Builder{ich: ich, width: width}
}

// Statement appends one line at the current block depth.
func (sb *Builder) Statement(s string) {
	sb.b.WriteString(indent.String(sb.ich, sb.depth, sb.width))
	sb.b.WriteString(s)
	sb.b.WriteByte('\n')
}

// Statementf appends one formatted line at the current block depth.
func (sb *Builder) Statementf(format string, args ...any) {
	sb.Statement(fmt.Sprintf(format, args...))
}

// OpenBlock appends the given block-opening line (ending in "{") and
// increases the depth for subsequent statements.
func (sb *Builder) OpenBlock(s string) {
	sb.Statement(s)
	sb.depth++
}

// OpenBlockf is [Builder.OpenBlock] with formatting.
func (sb *Builder) OpenBlockf(format string, args ...any) {
	sb.OpenBlock(fmt.Sprintf(format, args...))
}

// CloseBlock decreases the depth and appends the closing "}".
func (sb *Builder) CloseBlock() {
	if sb.depth > 0 {
		sb.depth--
	}
	sb.Statement("}")
}

// BlankLine appends an empty line.
func (sb *Builder) BlankLine() {
	sb.b.WriteByte('\n')
}

// Len returns the number of bytes accumulated so far.
func (sb *Builder) Len() int {
	return sb.b.Len()
}

// String returns the accumulated source text.
func (sb *Builder) String() string {
	return sb.b.String()
}
