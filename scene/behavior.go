// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"reflect"

	"github.com/tabulahq/tabula/types"
)

// Behavior is the interface that all behavior types satisfy. A behavior
// is a typed instance attached to exactly one [Node] for its lifetime.
// Behavior types are structs that embed [BehaviorBase] and declare
// exported fields; tooling enumerates those fields through reflection.
// Fields tagged `gen:"-"` are reserved for the runtime and are ignored
// by such tooling.
type Behavior interface {

	// AsBehaviorBase returns the [BehaviorBase] of this behavior,
	// on which the core behavior functionality is implemented.
	AsBehaviorBase() *BehaviorBase
}

// BehaviorBase is the base type for all behaviors. It must be embedded
// as the first field in all behavior struct types.
type BehaviorBase struct {

	// Enabled indicates whether the behavior participates in updates.
	// It is set when the behavior is attached via [Attach].
	Enabled bool `json:"enabled"`

	node *Node
}

// AsBehaviorBase returns this [BehaviorBase].
func (bb *BehaviorBase) AsBehaviorBase() *BehaviorBase {
	return bb
}

// Node returns the node this behavior is attached to,
// or nil if it is not attached.
func (bb *BehaviorBase) Node() *Node {
	return bb.node
}

// AttachBehavior attaches the given behavior instance at the end of
// this node's behavior list, setting its node backlink. It does not
// modify any other state of the behavior; see [Attach] for the usual
// way to create and attach a behavior.
func (n *Node) AttachBehavior(b Behavior) {
	b.AsBehaviorBase().node = n
	n.behaviors = append(n.behaviors, b)
}

// Behaviors returns the ordered list of behaviors attached to this node.
func (n *Node) Behaviors() []Behavior {
	return n.behaviors
}

// Attach creates a new enabled behavior of the given type and attaches
// it to the given node:
//
//	drag := scene.Attach[*behaviors.Draggable](card)
func Attach[T Behavior](n *Node) T {
	b := reflect.New(reflect.TypeOf((*T)(nil)).Elem().Elem()).Interface().(T)
	b.AsBehaviorBase().Enabled = true
	n.AttachBehavior(b)
	return b
}

// BehaviorOn returns the first behavior of the given type attached to
// the given node, or the zero value if there is none.
func BehaviorOn[T Behavior](n *Node) T {
	var zero T
	if n == nil {
		return zero
	}
	for _, b := range n.behaviors {
		if t, ok := b.(T); ok {
			return t
		}
	}
	return zero
}

// FindBehavior returns the first behavior of the given type on the node
// at the given path below the given node (see [Node.FindPath]), or the
// zero value if the path does not resolve or carries no such behavior.
func FindBehavior[T Behavior](n *Node, path string) T {
	return BehaviorOn[T](n.FindPath(path))
}

// BehaviorType returns the [types.Type] of the given behavior.
// If there is no [types.Type] registered for the behavior's type
// already, it registers one and then returns it.
func BehaviorType(b Behavior) *types.Type {
	if t := types.TypeByValue(b); t != nil {
		if t.Instance == nil {
			t.Instance = newBehaviorInstance(b)
		}
		return t
	}
	return types.AddType(&types.Type{
		Name:     types.TypeNameValue(b),
		Instance: newBehaviorInstance(b),
	})
}

// newBehaviorInstance returns a new default instance
// of the given behavior's type.
func newBehaviorInstance(b Behavior) Behavior {
	return reflect.New(reflect.TypeOf(b).Elem()).Interface().(Behavior)
}
