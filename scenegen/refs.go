// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegen

import (
	"strings"
)

// AddAnchor registers an anchor boundary node. Nodes strictly below a
// boundary are not constructed by the generated code: they are resolved
// at reconstruction time by calling FindPath on the pre-built container
// handle the factory receives, with a path relative to the boundary.
// The caller of the generated factory must pass that boundary as the
// pre-built handle.
func (g *Generator) AddAnchor(boundary Node) {
	if boundary == nil {
		return
	}
	g.anchors = append(g.anchors, boundary)
}

// anchorPath returns the slash-joined path from a registered anchor
// boundary down to the given node, and whether the node is a strict
// descendant of any boundary. The boundary itself is not part of the
// path; names containing "/" are escaped the way FindPath expects.
func (g *Generator) anchorPath(n Node) (string, bool) {
	for _, a := range g.anchors {
		if path, ok := pathBelow(a, n); ok {
			return path, true
		}
	}
	return "", false
}

// pathBelow climbs from n toward the root, collecting names, and
// reports whether boundary is a strict ancestor of n.
func pathBelow(boundary, n Node) (string, bool) {
	if n == nil || n == boundary {
		return "", false
	}
	var names []string
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur == boundary {
			reverse(names)
			return strings.Join(names, "/"), true
		}
		names = append(names, escapePathName(cur.Name()))
	}
	return "", false
}

// escapePathName escapes any "/" in the name with "\\" so it can be
// used in a path without breaking path parsing.
func escapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
