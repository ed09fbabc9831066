// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/jinzhu/copier"
	"github.com/tabulahq/tabula/base/errors"
)

// note: we use the copy from direction (instead of copy to), as the
// receiver is modified whereas the from is not, and assignment is
// typically in the same direction.

// CopyFrom copies the frame, behaviors, and children of the given node
// to this node, replacing any existing behaviors and children. Behavior
// field values are copied with [copier]; reference fields keep pointing
// at their original targets, they are not remapped into the copy.
func (n *Node) CopyFrom(from *Node) error {
	if from == nil {
		return errors.Log(errors.New("scene.Node.CopyFrom: nil source"))
	}
	n.frame = from.frame
	n.frame.node = n

	n.behaviors = nil
	var errs []error
	for _, b := range from.behaviors {
		nb := newBehaviorInstance(b)
		err := copier.CopyWithOption(nb, b, copier.Option{CaseSensitive: true})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		n.AttachBehavior(nb)
	}

	n.children = nil
	for _, c := range from.children {
		nc := NewNode(c.name)
		n.AddChild(nc)
		errs = append(errs, nc.CopyFrom(c))
	}
	return errors.Log(errors.Join(errs...))
}

// Clone returns a deep copy of the tree from this node down, with
// behavior reference fields still pointing at their original targets
// (see [Node.CopyFrom]).
func (n *Node) Clone() *Node {
	nc := NewNode(n.name)
	errors.Log(nc.CopyFrom(n))
	return nc
}
