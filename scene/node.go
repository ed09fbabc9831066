// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the runtime scene graph: identity-compared
// [Node]s with spatial [Frame]s and attached, reflectable [Behavior]s.
// Nodes are addressed by slash-separated paths of names, and behaviors
// may hold references to other nodes, behaviors, and frames, so the
// graph as a whole can contain cycles and shared targets.
package scene

import (
	"strings"
)

const (
	// Continue = true can be returned from tree iteration functions to
	// continue processing down the tree, as compared to Break = false
	// which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop
	// processing this branch of the tree.
	Break = false
)

// Node is a vertex of the scene graph. Nodes are compared by identity,
// never by value: two nodes with equal names and frames are still two
// distinct nodes. A node has a display name, a spatial [Frame], an
// optional parent, an ordered list of children, and an ordered list of
// attached [Behavior]s.
type Node struct {
	name      string
	parent    *Node
	children  []*Node
	behaviors []Behavior
	frame     Frame
}

// NewNode returns a new unparented [Node] with the given display name
// and an identity frame.
func NewNode(name string) *Node {
	n := &Node{name: name}
	n.frame.node = n
	n.frame.Defaults()
	return n
}

// String implements [fmt.Stringer] by returning the path of the node.
func (n *Node) String() string {
	return n.Path()
}

// Name returns the display name of this node.
func (n *Node) Name() string {
	return n.name
}

// SetName sets the display name of this node.
func (n *Node) SetName(name string) {
	n.name = name
}

// Parent returns the parent of this node, or nil for root nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Frame returns the spatial frame of this node.
func (n *Node) Frame() *Frame {
	return &n.frame
}

// Children returns the ordered list of children of this node.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children this node has.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the child of this node at the given index,
// or nil if the index is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// ChildByName returns the first child with the given name,
// or nil if there is none.
func (n *Node) ChildByName(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// AddChild adds the given node at the end of the children list and sets
// its parent accordingly. The node is assumed to not be on another tree.
func (n *Node) AddChild(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// NewChild creates a new child node with the given name and adds it at
// the end of the children list.
func (n *Node) NewChild(name string) *Node {
	child := NewNode(name)
	n.AddChild(child)
	return child
}

// DeleteChild removes the given child from the children list, returning
// false if it is not a child of this node. The child keeps its subtree
// and becomes a root.
func (n *Node) DeleteChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Destroy removes this node from its parent (if any) and recursively
// destroys its subtree, clearing behaviors and children so that stale
// references do not keep the tree alive.
func (n *Node) Destroy() {
	if n.parent != nil {
		n.parent.DeleteChild(n)
	}
	for _, b := range n.behaviors {
		b.AsBehaviorBase().node = nil
	}
	n.behaviors = nil
	for _, c := range n.children {
		c.parent = nil
		c.Destroy()
	}
	n.children = nil
}

// Paths:

// EscapePathName returns a name that replaces any / with \\
// so that it can be used in a path.
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// UnescapePathName returns a name that replaces any \\ with /.
func UnescapePathName(name string) string {
	return strings.ReplaceAll(name, `\\`, "/")
}

// Path returns the path to this node from its tree root, using node
// names separated by / delimiters. Any existing / characters in names
// are escaped to \\
func (n *Node) Path() string {
	if n.parent != nil {
		return n.parent.Path() + "/" + EscapePathName(n.name)
	}
	return "/" + EscapePathName(n.name)
}

// PathFrom returns the path to this node from the given parent node,
// excluding the name of the parent and the leading slash: in the tree
// a/b/c/d, the result of d.PathFrom(b) is c/d. It returns the empty
// string if this node is the given parent or if the given parent is
// not an ancestor of this node.
func (n *Node) PathFrom(parent *Node) string {
	if n == parent {
		return ""
	}
	if n.parent == nil {
		return ""
	}
	if n.parent == parent {
		return EscapePathName(n.name)
	}
	ppath := n.parent.PathFrom(parent)
	if ppath == "" {
		return ""
	}
	return ppath + "/" + EscapePathName(n.name)
}

// FindPath returns the node at the given path from this node, in the
// format produced by [Node.PathFrom], or nil if no node is found at the
// given path. FindPath only works correctly when sibling names are
// unique.
func (n *Node) FindPath(path string) *Node {
	cur := n
	for _, pe := range strings.Split(strings.TrimSpace(path), "/") {
		if pe == "" {
			continue
		}
		cur = cur.ChildByName(UnescapePathName(pe))
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Walking:

// WalkUp calls the given function on this node and all of its parents,
// stopping if the function returns [Break]. It returns whether the walk
// finished (false if it was aborted with [Break]).
func (n *Node) WalkUp(fun func(n *Node) bool) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !fun(cur) {
			return false
		}
		if cur.parent == cur { // prevent loops
			break
		}
	}
	return true
}

// WalkDown calls the given function on this node and all of its
// children in depth-first order, not descending into a branch whose
// node returns [Break].
func (n *Node) WalkDown(fun func(n *Node) bool) {
	if !fun(n) {
		return
	}
	for _, c := range n.children {
		c.WalkDown(fun)
	}
}
