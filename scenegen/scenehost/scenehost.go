// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenehost adapts the [scene] runtime to the [scenegen]
// capability interfaces, so the generator can walk live scene graphs
// without naming their concrete types. Behavior fields are enumerated
// with reflection; unexported fields, embedded bases, and fields tagged
// `gen:"-"` are not exposed.
package scenehost

import (
	"fmt"
	"image/color"
	"reflect"

	"github.com/tabulahq/tabula/base/reflectx"
	"github.com/tabulahq/tabula/enums"
	"github.com/tabulahq/tabula/math32"
	"github.com/tabulahq/tabula/scene"
	"github.com/tabulahq/tabula/scenegen"
	"github.com/tabulahq/tabula/types"
)

// Graph implements [scenegen.Graph] over the scene runtime.
type Graph struct{}

// New returns a [Graph] adapting the scene runtime.
func New() Graph {
	return Graph{}
}

// Template implements [scenegen.Graph] by constructing a detached
// default instance of the behavior type through the [types] registry.
// Detached instances have no side effects to undo, so the release
// function is a no-op, but the contract is honored for hosts where
// construction is observable.
func (Graph) Template(t *types.Type) (scenegen.Behavior, func(), error) {
	b, ok := t.NewInstance().(scene.Behavior)
	if !ok {
		return nil, nil, fmt.Errorf("scenehost: type %q is not a scene.Behavior", t.Name)
	}
	return hostBehavior{b}, func() {}, nil
}

// EqualValues implements [scenegen.Graph]: reference kinds compare by
// identity, primitive kinds structurally.
func (Graph) EqualValues(k scenegen.Kind, a, b any) bool {
	if k.IsReference() {
		return a == b
	}
	return reflectx.ValuesEqual(a, b)
}

// WrapNode returns the [scenegen.Node] view of a scene node.
func WrapNode(n *scene.Node) scenegen.Node {
	if n == nil {
		return nil
	}
	return hostNode{n}
}

// WrapBehavior returns the [scenegen.Behavior] view of a scene behavior.
func WrapBehavior(b scene.Behavior) scenegen.Behavior {
	if b == nil {
		return nil
	}
	return hostBehavior{b}
}

// hostNode adapts a [scene.Node]. It is a comparable value wrapping the
// node pointer, so memo keys compare by node identity.
type hostNode struct {
	n *scene.Node
}

func (hn hostNode) Name() string { return hn.n.Name() }

func (hn hostNode) Parent() scenegen.Node {
	return WrapNode(hn.n.Parent())
}

func (hn hostNode) Frame() scenegen.Frame {
	return hostFrame{hn.n.Frame()}
}

func (hn hostNode) Behaviors() []scenegen.Behavior {
	bs := hn.n.Behaviors()
	res := make([]scenegen.Behavior, len(bs))
	for i, b := range bs {
		res[i] = hostBehavior{b}
	}
	return res
}

// hostBehavior adapts a [scene.Behavior]; comparable by the identity of
// the wrapped behavior pointer.
type hostBehavior struct {
	b scene.Behavior
}

func (hb hostBehavior) Type() *types.Type {
	return scene.BehaviorType(hb.b)
}

func (hb hostBehavior) Node() scenegen.Node {
	return WrapNode(hb.b.AsBehaviorBase().Node())
}

func (hb hostBehavior) Fields() []scenegen.Field {
	rv := reflectx.NonPointerValue(reflect.ValueOf(hb.b))
	rt := rv.Type()
	var fields []scenegen.Field
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.Anonymous || !sf.IsExported() || sf.Tag.Get("gen") == "-" {
			continue
		}
		fields = append(fields, makeField(sf, rv.Field(i)))
	}
	return fields
}

// hostFrame adapts a [scene.Frame].
type hostFrame struct {
	f *scene.Frame
}

func (hf hostFrame) Node() scenegen.Node       { return WrapNode(hf.f.Node()) }
func (hf hostFrame) Position() math32.Vector3  { return hf.f.Position }
func (hf hostFrame) Rotation() math32.Vector3  { return hf.f.Rotation }
func (hf hostFrame) Scale() math32.Vector3     { return hf.f.Scale }
func (hf hostFrame) IsRect() bool              { return hf.f.Rect }
func (hf hostFrame) Anchor() math32.Vector2    { return hf.f.Anchor }
func (hf hostFrame) Size() math32.Vector2      { return hf.f.Size }

var (
	nodeType      = reflect.TypeOf((*scene.Node)(nil))
	frameType     = reflect.TypeOf((*scene.Frame)(nil))
	behaviorIface = reflect.TypeOf((*scene.Behavior)(nil)).Elem()
	enumIface     = reflect.TypeOf((*enums.Enum)(nil)).Elem()
	vector2Type   = reflect.TypeOf(math32.Vector2{})
	vector3Type   = reflect.TypeOf(math32.Vector3{})
	colorType     = reflect.TypeOf(color.RGBA{})
)

// fieldKind classifies a field by its declared type, so nil references
// classify the same as live ones.
func fieldKind(t reflect.Type) scenegen.Kind {
	switch {
	case t == nodeType:
		return scenegen.KindNode
	case t == frameType:
		return scenegen.KindFrame
	case t.Implements(behaviorIface):
		return scenegen.KindBehavior
	case t == vector2Type:
		return scenegen.KindVector2
	case t == vector3Type:
		return scenegen.KindVector3
	case t == colorType:
		return scenegen.KindColor
	case t.Implements(enumIface):
		return scenegen.KindEnum
	}
	switch t.Kind() {
	case reflect.Bool:
		return scenegen.KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scenegen.KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return scenegen.KindInt
	case reflect.Float32, reflect.Float64:
		return scenegen.KindFloat
	case reflect.String:
		return scenegen.KindString
	}
	return scenegen.KindUnsupported
}

// hostField is a snapshot of one reflected behavior field.
type hostField struct {
	name     string
	kind     scenegen.Kind
	value    any
	node     *scene.Node
	behavior scene.Behavior
	frame    *scene.Frame
}

// makeField snapshots a struct field into a [scenegen.Field],
// normalizing primitive values per the [scenegen.Kind] contract and nil
// references to untyped nil so identity comparison is uniform.
func makeField(sf reflect.StructField, fv reflect.Value) scenegen.Field {
	f := hostField{name: sf.Name, kind: fieldKind(sf.Type)}
	switch f.kind {
	case scenegen.KindNode:
		if !fv.IsNil() {
			f.node = fv.Interface().(*scene.Node)
			f.value = f.node
		}
	case scenegen.KindFrame:
		if !fv.IsNil() {
			f.frame = fv.Interface().(*scene.Frame)
			f.value = f.frame
		}
	case scenegen.KindBehavior:
		if b, ok := behaviorValue(fv); ok {
			f.behavior = b
			f.value = b
		}
	case scenegen.KindBool:
		f.value = fv.Bool()
	case scenegen.KindString:
		f.value = fv.String()
	case scenegen.KindInt:
		if fv.CanUint() {
			f.value = int64(fv.Uint())
		} else {
			f.value = fv.Int()
		}
	case scenegen.KindFloat:
		f.value = float32(fv.Float())
	case scenegen.KindEnum:
		f.value = fv.Interface().(enums.Enum)
	case scenegen.KindVector2, scenegen.KindVector3, scenegen.KindColor:
		f.value = fv.Interface()
	}
	return f
}

// behaviorValue extracts a live behavior from a pointer- or
// interface-typed field, treating a typed nil inside an interface the
// same as a nil pointer.
func behaviorValue(fv reflect.Value) (scene.Behavior, bool) {
	if fv.IsNil() {
		return nil, false
	}
	b := fv.Interface().(scene.Behavior)
	if rv := reflect.ValueOf(b); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	return b, true
}

func (f hostField) Name() string        { return f.name }
func (f hostField) Kind() scenegen.Kind { return f.kind }
func (f hostField) Value() any          { return f.value }

func (f hostField) Node() scenegen.Node {
	return WrapNode(f.node)
}

func (f hostField) Behavior() scenegen.Behavior {
	return WrapBehavior(f.behavior)
}

func (f hostField) Frame() scenegen.Frame {
	if f.frame == nil {
		return nil
	}
	return hostFrame{f.frame}
}
