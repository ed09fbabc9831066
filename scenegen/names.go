// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegen

import (
	"go/token"
	"strconv"
	"unicode"

	"github.com/tabulahq/tabula/base/strcase"
)

// NameAllocator allocates unique, valid Go identifiers for the
// variables of one generated file. Two graph objects never share an
// identifier within a run, regardless of how their display names
// collide after sanitization.
type NameAllocator struct {
	used map[string]bool
}

// NewNameAllocator returns a new [NameAllocator] with the given
// identifiers already reserved (typically the parameter names of the
// generated function).
func NewNameAllocator(reserved ...string) *NameAllocator {
	na := &NameAllocator{used: map[string]bool{}}
	for _, r := range reserved {
		na.used[r] = true
	}
	return na
}

// Allocate returns a unique identifier derived from the given display
// name, marking it as used. The name is sanitized into lowerCamelCase;
// on collision (or a Go keyword) an increasing numeric suffix is
// appended, so repeated display names yield name, name1, name2, ...
func (na *NameAllocator) Allocate(name string) string {
	base := SanitizeIdent(name)
	if !token.IsKeyword(base) && !na.used[base] {
		na.used[base] = true
		return base
	}
	for i := 1; ; i++ {
		c := base + strconv.Itoa(i)
		if !na.used[c] {
			na.used[c] = true
			return c
		}
	}
}

// SanitizeIdent converts an arbitrary display name into a valid Go
// identifier: non-identifier characters become word breaks, the result
// is lowerCamelCased, a leading digit is prefixed with "n", and an
// empty result falls back to "node".
func SanitizeIdent(name string) string {
	id := strcase.ToLowerCamel(name)
	if id == "" {
		return "node"
	}
	if unicode.IsDigit(rune(id[0])) {
		id = "n" + id
	}
	return id
}
