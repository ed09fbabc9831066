// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/tabulahq/tabula/math32"

// Frame is the spatial frame of a [Node]: its position, rotation, and
// scale, plus an optional 2D anchored-rect variant for UI-space nodes.
// Every node owns exactly one frame for its lifetime; frames are never
// created or destroyed independently of their node.
type Frame struct {
	node *Node

	// Position is the translation of the node relative to its parent.
	Position math32.Vector3 `json:"position"`

	// Rotation is the rotation of the node relative to its parent,
	// as Euler angles in degrees.
	Rotation math32.Vector3 `json:"rotation"`

	// Scale is the scale of the node relative to its parent.
	// It defaults to unit scale.
	Scale math32.Vector3 `json:"scale"`

	// Rect indicates that this is a UI-space frame, positioned by
	// Anchor and Size in addition to the transform above.
	Rect bool `json:"rect,omitempty"`

	// Anchor is the normalized 2D anchor point of a rect frame.
	Anchor math32.Vector2 `json:"anchor,omitzero"`

	// Size is the 2D size of a rect frame.
	Size math32.Vector2 `json:"size,omitzero"`
}

// Node returns the node that owns this frame.
func (f *Frame) Node() *Node {
	return f.node
}

// Defaults sets the frame to the identity frame: zero position and
// rotation, unit scale, and no rect.
func (f *Frame) Defaults() {
	f.Position = math32.Vector3{}
	f.Rotation = math32.Vector3{}
	f.Scale = math32.Vector3Scalar(1)
	f.Rect = false
	f.Anchor = math32.Vector2{}
	f.Size = math32.Vector2{}
}
