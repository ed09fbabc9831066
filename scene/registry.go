// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Registry is an ordered collection of constructed nodes. Generated
// scene factories register every node they construct into the registry
// supplied by the caller, so the caller can parent, lay out, or destroy
// the reconstructed graph afterward.
type Registry struct {

	// Nodes is the ordered list of registered nodes,
	// in registration order.
	Nodes []*Node

	byName map[string]*Node
}

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{byName: map[string]*Node{}}
}

// Add registers the given node at the end of the registry.
func (r *Registry) Add(n *Node) {
	r.Nodes = append(r.Nodes, n)
	if r.byName == nil {
		r.byName = map[string]*Node{}
	}
	if _, has := r.byName[n.Name()]; !has {
		r.byName[n.Name()] = n
	}
}

// ByName returns the first registered node with the given display name,
// or nil if there is none.
func (r *Registry) ByName(name string) *Node {
	return r.byName[name]
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	return len(r.Nodes)
}
