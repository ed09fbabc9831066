// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types provides a runtime registry of types, keyed by their
// fully package-path-qualified names. The scene runtime registers its
// behavior types here so that generic tooling (JSON loading, the scene
// source generator) can construct default instances and resolve type
// names without naming the concrete types.
package types

import (
	"log/slog"
	"reflect"
	"sync/atomic"

	"github.com/tabulahq/tabula/base/reflectx"
	"github.com/tabulahq/tabula/base/strcase"
)

var (
	// Types records all registered types, keyed by the fully
	// package-path-qualified type name.
	Types = map[string]*Type{}

	// typeIDCounter is an atomically incremented uint64 used
	// for assigning new [Type.ID] numbers.
	typeIDCounter uint64
)

// AddType adds the given constructed [Type] to the registry and returns
// it. It assigns the ID, and derives the IDName from the name if unset.
func AddType(typ *Type) *Type {
	if _, has := Types[typ.Name]; has {
		slog.Debug("types.AddType: type already exists", "Type.Name", typ.Name)
		return Types[typ.Name]
	}
	typ.ID = atomic.AddUint64(&typeIDCounter, 1)
	if typ.IDName == "" {
		typ.IDName = strcase.ToKebab(typ.BaseName())
	}
	Types[typ.Name] = typ
	return typ
}

// TypeByName returns the [Type] registered under the given fully
// package-path-qualified name (eg: github.com/tabulahq/tabula/scene.Node),
// or nil if it is not found.
func TypeByName(name string) *Type {
	return Types[name]
}

// TypeByValue returns the [Type] of the given value,
// or nil if it is not found in the registry.
func TypeByValue(v any) *Type {
	return TypeByName(TypeNameValue(v))
}

// TypeName returns the fully package-path-qualified name of the given
// [reflect.Type], ignoring any pointer indirection.
func TypeName(typ reflect.Type) string {
	typ = reflectx.NonPointerType(typ)
	return typ.PkgPath() + "." + typ.Name()
}

// TypeNameValue returns the fully package-path-qualified type name of
// the given value, ignoring any pointer indirection.
func TypeNameValue(v any) string {
	return TypeName(reflect.TypeOf(v))
}
