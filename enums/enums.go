// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides the interfaces that enum types satisfy.
// Enum types in this codebase are integer types whose String method
// returns the declared constant identifier (the form produced by
// stringer-style generators), which is what allows tooling such as
// the scene source generator to emit them as qualified constants.
package enums

// Enum is the interface that all enum types satisfy.
type Enum interface {
	// String returns the string representation of the enum value,
	// which is the declared constant identifier.
	String() string

	// Int64 returns the enum value as an int64.
	Int64() int64
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy.
type EnumSetter interface {
	Enum

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}
