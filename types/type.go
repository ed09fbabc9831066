// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"path"
	"reflect"
	"strings"
)

// Type represents a registered type, such as a scene behavior type.
type Type struct {

	// Name is the fully package-path-qualified name of the type
	// (eg: github.com/tabulahq/tabula/scene.Node).
	Name string

	// IDName is the short, package-unqualified, kebab-case name of the
	// type that is suitable for use in an ID (eg: node).
	IDName string

	// Instance is an instance of the type, used to construct
	// new values of it through reflection.
	Instance any

	// ID is the unique type ID number.
	ID uint64
}

func (tp *Type) String() string {
	return tp.Name
}

// ShortName returns the short, package-qualified name of the type
// (eg: scene.Node).
func (tp *Type) ShortName() string {
	li := strings.LastIndex(tp.Name, "/")
	return tp.Name[li+1:]
}

// BaseName returns the unqualified name of the type (eg: Node).
func (tp *Type) BaseName() string {
	li := strings.LastIndex(tp.Name, ".")
	return tp.Name[li+1:]
}

// ImportPath returns the import path of the package
// that declares the type.
func (tp *Type) ImportPath() string {
	li := strings.LastIndex(tp.Name, ".")
	if li < 0 {
		return ""
	}
	return tp.Name[:li]
}

// PkgName returns the name of the package that declares the type,
// which is the last element of [Type.ImportPath].
func (tp *Type) PkgName() string {
	return path.Base(tp.ImportPath())
}

// ReflectType returns the [reflect.Type] for this type,
// using the Instance.
func (tp *Type) ReflectType() reflect.Type {
	if tp.Instance == nil {
		return nil
	}
	return reflect.TypeOf(tp.Instance).Elem()
}

// NewInstance returns a new instance of this type,
// as a pointer to the type, using the Instance.
func (tp *Type) NewInstance() any {
	rt := tp.ReflectType()
	if rt == nil {
		return nil
	}
	return reflect.New(rt).Interface()
}
