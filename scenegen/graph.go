// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegen

import (
	"github.com/tabulahq/tabula/math32"
	"github.com/tabulahq/tabula/types"
)

// Kind is the value kind of a behavior [Field].
type Kind int32

const (
	// KindUnsupported is a field the generator has no knowledge of;
	// such fields are skipped, never fatal.
	KindUnsupported Kind = iota

	// KindBool is a boolean field.
	KindBool

	// KindInt is an integer field of any width; [Field.Value] is int64.
	KindInt

	// KindFloat is a floating point field; [Field.Value] is float32.
	KindFloat

	// KindString is a string field.
	KindString

	// KindEnum is an enum field; [Field.Value] is an [enums.Enum].
	KindEnum

	// KindVector2 is a [math32.Vector2] field.
	KindVector2

	// KindVector3 is a [math32.Vector3] field.
	KindVector3

	// KindColor is a [color.RGBA] field.
	KindColor

	// KindNode is a reference to a node.
	KindNode

	// KindBehavior is a reference to a specific behavior on a node.
	KindBehavior

	// KindFrame is a reference to the spatial frame of a node.
	KindFrame
)

var kindNames = []string{"Unsupported", "Bool", "Int", "Float", "String",
	"Enum", "Vector2", "Vector3", "Color", "Node", "Behavior", "Frame"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unsupported"
	}
	return kindNames[k]
}

// IsReference reports whether the kind is a reference to a node,
// behavior, or frame rather than a primitive value.
func (k Kind) IsReference() bool {
	return k == KindNode || k == KindBehavior || k == KindFrame
}

// Node is the generator's view of a scene graph vertex. Implementations
// must be comparable values whose equality is the identity of the
// underlying host node, since the visited memo is keyed on them.
type Node interface {

	// Name returns the display name of the node.
	Name() string

	// Parent returns the parent of the node, or nil for roots.
	Parent() Node

	// Frame returns the spatial frame of the node.
	Frame() Frame

	// Behaviors returns the behaviors attached to the node,
	// in attachment order.
	Behaviors() []Behavior
}

// Behavior is the generator's view of a typed instance attached to a
// node. Implementations must be comparable values whose equality is
// the identity of the underlying host behavior.
type Behavior interface {

	// Type returns the registered type of the behavior.
	Type() *types.Type

	// Node returns the node the behavior is attached to.
	Node() Node

	// Fields returns the behavior's top-level fields,
	// in declaration order.
	Fields() []Field
}

// Field is the generator's view of one reflected behavior field.
type Field interface {

	// Name returns the stable field name.
	Name() string

	// Kind returns the value kind of the field.
	Kind() Kind

	// Value returns the current value of the field. For primitive kinds
	// it is normalized per the [Kind] documentation; for reference kinds
	// it is the raw host reference, compared only by identity.
	Value() any

	// Node returns the referenced node for [KindNode] fields,
	// or nil.
	Node() Node

	// Behavior returns the referenced behavior for [KindBehavior]
	// fields, or nil.
	Behavior() Behavior

	// Frame returns the referenced frame for [KindFrame] fields,
	// or nil.
	Frame() Frame
}

// Frame is the generator's view of a node's spatial frame.
type Frame interface {

	// Node returns the node that owns the frame.
	Node() Node

	// Position returns the translation relative to the parent.
	Position() math32.Vector3

	// Rotation returns the rotation as Euler angles in degrees.
	Rotation() math32.Vector3

	// Scale returns the scale relative to the parent.
	Scale() math32.Vector3

	// IsRect reports whether this is a UI-space rect frame.
	IsRect() bool

	// Anchor returns the normalized anchor point of a rect frame.
	Anchor() math32.Vector2

	// Size returns the 2D size of a rect frame.
	Size() math32.Vector2
}

// Graph is the capability interface the host graph implements beyond
// the per-value views: constructing default template instances and
// comparing field values.
type Graph interface {

	// Template returns a freshly constructed behavior instance of the
	// given type with all-default field values, along with a release
	// function that must be called as soon as the caller is done
	// comparing against it. Constructing a template may have observable
	// effects on the host graph, so callers must guarantee release on
	// all exit paths.
	Template(t *types.Type) (Behavior, func(), error)

	// EqualValues reports whether two [Field.Value] results of the same
	// kind are structurally equal. Reference kinds compare by identity.
	EqualValues(k Kind, a, b any) bool
}
