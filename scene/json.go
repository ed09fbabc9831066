// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"encoding/json"
	"fmt"

	"github.com/tabulahq/tabula/base/errors"
	"github.com/tabulahq/tabula/base/iox/jsonx"
	"github.com/tabulahq/tabula/types"
)

// JSON persistence of node trees. Behavior types are recorded by their
// registered [types.Type] name so that loading can construct instances
// of the correct types. Only tree structure and behavior field values
// survive a round trip: behavior fields that reference other nodes,
// behaviors, or frames are expected to carry a `json:"-"` tag, since a
// path-free JSON encoding cannot represent them. Capturing a fully
// wired graph is what the scenegen source generator is for.

// nodeJSON is the JSON encoding of a [Node].
type nodeJSON struct {
	Name      string          `json:"name"`
	Frame     json.RawMessage `json:"frame,omitempty"`
	Behaviors []behaviorJSON  `json:"behaviors,omitempty"`
	Children  []*Node         `json:"children,omitempty"`
}

// behaviorJSON is the JSON encoding of a [Behavior], carrying its
// registered type name alongside its field values.
type behaviorJSON struct {
	Type  string          `json:"type"`
	Props json.RawMessage `json:"props"`
}

// MarshalJSON marshals the node, its frame, its behaviors (tagged with
// their [types.Type] names), and its children.
func (n *Node) MarshalJSON() ([]byte, error) {
	nj := nodeJSON{Name: n.name, Children: n.children}
	frame, err := json.Marshal(&n.frame)
	if err != nil {
		return nil, err
	}
	nj.Frame = frame
	for _, b := range n.behaviors {
		props, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		nj.Behaviors = append(nj.Behaviors, behaviorJSON{
			Type:  BehaviorType(b).Name,
			Props: props,
		})
	}
	return json.Marshal(&nj)
}

// UnmarshalJSON unmarshals the node from the encoding produced by
// [Node.MarshalJSON], constructing behavior instances through the
// [types] registry. It replaces any existing behaviors and children.
func (n *Node) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name      string            `json:"name"`
		Frame     json.RawMessage   `json:"frame"`
		Behaviors []behaviorJSON    `json:"behaviors"`
		Children  []json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	n.name = raw.Name
	n.frame.Defaults()
	if len(raw.Frame) > 0 {
		if err := json.Unmarshal(raw.Frame, &n.frame); err != nil {
			return err
		}
	}
	n.behaviors = nil
	for _, bj := range raw.Behaviors {
		typ := types.TypeByName(bj.Type)
		if typ == nil {
			return fmt.Errorf("scene.Node.UnmarshalJSON: behavior type %q not found in the types registry", bj.Type)
		}
		inst, ok := typ.NewInstance().(Behavior)
		if !ok {
			return fmt.Errorf("scene.Node.UnmarshalJSON: type %q is not a Behavior", bj.Type)
		}
		if len(bj.Props) > 0 {
			if err := json.Unmarshal(bj.Props, inst); err != nil {
				return err
			}
		}
		n.AttachBehavior(inst)
	}
	n.children = nil
	for _, cb := range raw.Children {
		child := NewNode("")
		if err := child.UnmarshalJSON(cb); err != nil {
			return err
		}
		n.AddChild(child)
	}
	return nil
}

// SaveJSON saves the tree from the given node down to the given
// JSON file.
func SaveJSON(n *Node, filename string) error {
	return errors.Log(jsonx.SaveIndent(n, filename))
}

// OpenJSON opens a node tree from the given JSON file saved
// by [SaveJSON].
func OpenJSON(filename string) (*Node, error) {
	n := NewNode("")
	err := jsonx.Open(n, filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	return n, nil
}
