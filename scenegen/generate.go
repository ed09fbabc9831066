// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegen

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/tabulahq/tabula/base/errors"
	"github.com/tabulahq/tabula/base/logx"
	"github.com/tabulahq/tabula/base/strcase"
	"github.com/tabulahq/tabula/math32"
	"github.com/tabulahq/tabula/types"
)

const (
	modulePath    = "github.com/tabulahq/tabula"
	scenePkgPath  = modulePath + "/scene"
	math32PkgPath = modulePath + "/math32"
)

// Generator emits Go source reconstructing a scene graph. It holds the
// run-scoped state of one generation (the visited memo and the
// identifier allocator) and is not safe for concurrent use.
type Generator struct {
	graph   Graph
	opts    *Options
	anchors []Node

	names   *NameAllocator
	memo    map[Node]*visited
	body    *Builder
	imports map[string]string
	denied  map[string]bool
}

// visited records the handles already emitted for one node: its node
// variable, the variable of each emitted behavior, and the primary
// handle (the first emitted behavior, falling back to the node itself).
type visited struct {
	nodeVar      string
	primary      string
	primaryType  string
	behaviorVars map[Behavior]string
}

// New returns a new [Generator] reading the given graph with the given
// options (nil means [NewOptions]).
func New(graph Graph, opts *Options) *Generator {
	if opts == nil {
		opts = NewOptions()
	}
	g := &Generator{graph: graph, opts: opts}
	g.reset()
	return g
}

// reset clears the run-scoped state. Registered anchors persist across
// runs; they are configuration, not walk state.
func (g *Generator) reset() {
	g.names = NewNameAllocator("nodes", "prebuilt", "t")
	g.memo = map[Node]*visited{}
	g.body = NewBuilder(g.opts.Indent, g.opts.IndentWidth)
	g.body.depth = 1
	g.imports = map[string]string{}
	g.denied = map[string]bool{}
	for _, d := range g.opts.DenyFields {
		g.denied[d] = true
	}
	g.addImport(scenePkgPath) // the factory signature always names scene
}

// Generate walks the graphs reachable from the given roots and returns
// the source of a factory function named Build<Name> that reconstructs
// them. The factory adds every constructed node to the registry it
// receives and returns the primary handle of the first root.
func (g *Generator) Generate(name string, roots ...Node) ([]byte, error) {
	g.reset()
	var primary, primaryType string
	for _, r := range roots {
		if r == nil {
			continue
		}
		v := g.visit(r, "")
		if primary == "" {
			primary, primaryType = v.primary, v.primaryType
		}
	}
	if primary == "" {
		return nil, errors.New("scenegen.Generate: no root nodes given")
	}
	g.body.Statement("return " + primary)

	fn := "Build" + strcase.ToCamel(name)
	var out strings.Builder
	out.WriteString("// Code generated by scenegen. DO NOT EDIT.\n//\n")
	fmt.Fprintf(&out, "// Scene: %s\n", name)
	fmt.Fprintf(&out, "// Generated: %s\n\n", g.opts.now().Format(time.RFC3339))
	fmt.Fprintf(&out, "package %s\n\n", g.opts.Package)
	g.writeImports(&out)
	fmt.Fprintf(&out, "// %s reconstructs the %q scene, adding every constructed node\n", fn, name)
	out.WriteString("// to nodes. References into pre-existing content are resolved against\n")
	out.WriteString("// prebuilt and are skipped when the target is missing.\n")
	fmt.Fprintf(&out, "func %s(nodes *scene.Registry, prebuilt *scene.Node) %s {\n", fn, primaryType)
	out.WriteString(g.body.String())
	out.WriteString("}\n")
	return []byte(out.String()), nil
}

// visit emits the construction of the given node and everything it
// references, returning its handles. The memo entry is stored before
// any field is expanded, so cycles and shared targets resolve to the
// already-allocated handles instead of reconstructing the node.
func (g *Generator) visit(n Node, suggested string) *visited {
	if v, ok := g.memo[n]; ok {
		return v
	}
	v := &visited{behaviorVars: map[Behavior]string{}}
	g.memo[n] = v
	name := n.Name()
	if name == "" {
		name = suggested // the referencing field name, when there is one
	}
	v.nodeVar = g.names.Allocate(name)
	v.primary = v.nodeVar
	v.primaryType = "*scene.Node"
	g.body.Statementf("%s := scene.NewNode(%q)", v.nodeVar, n.Name())
	g.body.Statementf("nodes.Add(%s)", v.nodeVar)
	g.emitFrame(v.nodeVar, n.Frame())

	// attach every supported behavior before expanding any field, so
	// reference cycles back into this node find allocated handles
	var supported []Behavior
	for _, b := range n.Behaviors() {
		t := b.Type()
		if t == nil || !g.opts.supported(t) {
			logx.Warn("skipping behavior of unsupported type", "node", n.Name(), "type", typeName(t))
			continue
		}
		bvar := g.names.Allocate(v.nodeVar + t.BaseName())
		v.behaviorVars[b] = bvar
		qual := g.qualifyType(t)
		g.body.Statementf("%s := scene.Attach[*%s](%s)", bvar, qual, v.nodeVar)
		if v.primary == v.nodeVar {
			v.primary, v.primaryType = bvar, "*"+qual
		}
		supported = append(supported, b)
	}
	for _, b := range supported {
		for _, f := range g.changedFields(b) {
			g.assignField(v.behaviorVars[b], f)
		}
	}
	return v
}

// assignField emits the assignment of one changed behavior field.
// Reference fields recurse into the walk, except when the target lives
// under an anchor boundary, in which case a guarded FindPath lookup is
// emitted instead of a construction.
func (g *Generator) assignField(bvar string, f Field) {
	switch f.Kind() {
	case KindNode:
		t := f.Node()
		if t == nil {
			return
		}
		if path, ok := g.anchorPath(t); ok {
			g.body.OpenBlockf("if t := prebuilt.FindPath(%q); t != nil {", path)
			g.body.Statementf("%s.%s = t", bvar, f.Name())
			g.body.CloseBlock()
			return
		}
		tv := g.visit(t, f.Name())
		g.body.Statementf("%s.%s = %s", bvar, f.Name(), tv.nodeVar)
	case KindBehavior:
		tb := f.Behavior()
		if tb == nil {
			return
		}
		tt := tb.Type()
		if tt == nil || !g.opts.supported(tt) {
			logx.Warn("skipping reference to behavior of unsupported type",
				"field", f.Name(), "type", typeName(tt))
			return
		}
		tn := tb.Node()
		if tn == nil {
			logx.Warn("skipping reference to unattached behavior",
				"field", f.Name(), "type", tt.Name)
			return
		}
		qual := g.qualifyType(tt)
		if path, ok := g.anchorPath(tn); ok {
			g.body.OpenBlockf("if t := prebuilt.FindPath(%q); t != nil {", path)
			g.body.Statementf("%s.%s = scene.BehaviorOn[*%s](t)", bvar, f.Name(), qual)
			g.body.CloseBlock()
			return
		}
		tv := g.visit(tn, f.Name())
		tbv, ok := tv.behaviorVars[tb]
		if !ok {
			logx.Warn("skipping reference to behavior that was not emitted",
				"field", f.Name(), "type", tt.Name)
			return
		}
		g.body.Statementf("%s.%s = %s", bvar, f.Name(), tbv)
	case KindFrame:
		fr := f.Frame()
		if fr == nil {
			return
		}
		owner := fr.Node()
		if owner == nil {
			logx.Warn("skipping reference to ownerless frame", "field", f.Name())
			return
		}
		if path, ok := g.anchorPath(owner); ok {
			g.body.OpenBlockf("if t := prebuilt.FindPath(%q); t != nil {", path)
			g.body.Statementf("%s.%s = t.Frame()", bvar, f.Name())
			g.body.CloseBlock()
			return
		}
		tv := g.visit(owner, f.Name())
		g.body.Statementf("%s.%s = %s.Frame()", bvar, f.Name(), tv.nodeVar)
	case KindUnsupported:
		// already skipped by the differ
	default:
		expr, ok := g.valueExpr(f)
		if !ok {
			return
		}
		g.body.Statementf("%s.%s = %s", bvar, f.Name(), expr)
	}
}

// emitFrame emits frame mutations for values differing from the
// identity frame.
func (g *Generator) emitFrame(nodeVar string, fr Frame) {
	if fr == nil {
		return
	}
	var zero3 math32.Vector3
	var zero2 math32.Vector2
	if p := fr.Position(); p != zero3 {
		g.addImport(math32PkgPath)
		g.body.Statementf("%s.Frame().Position = math32.Vec3(%s, %s, %s)",
			nodeVar, formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
	}
	if r := fr.Rotation(); r != zero3 {
		g.addImport(math32PkgPath)
		g.body.Statementf("%s.Frame().Rotation = math32.Vec3(%s, %s, %s)",
			nodeVar, formatFloat(r.X), formatFloat(r.Y), formatFloat(r.Z))
	}
	if s := fr.Scale(); s != math32.Vector3Scalar(1) {
		g.addImport(math32PkgPath)
		g.body.Statementf("%s.Frame().Scale = math32.Vec3(%s, %s, %s)",
			nodeVar, formatFloat(s.X), formatFloat(s.Y), formatFloat(s.Z))
	}
	if fr.IsRect() {
		g.body.Statementf("%s.Frame().Rect = true", nodeVar)
		if a := fr.Anchor(); a != zero2 {
			g.addImport(math32PkgPath)
			g.body.Statementf("%s.Frame().Anchor = math32.Vec2(%s, %s)",
				nodeVar, formatFloat(a.X), formatFloat(a.Y))
		}
		if sz := fr.Size(); sz != zero2 {
			g.addImport(math32PkgPath)
			g.body.Statementf("%s.Frame().Size = math32.Vec2(%s, %s)",
				nodeVar, formatFloat(sz.X), formatFloat(sz.Y))
		}
	}
}

// addImport registers an import path for the generated file and returns
// its package qualifier.
func (g *Generator) addImport(importPath string) string {
	name, ok := g.imports[importPath]
	if !ok {
		name = path.Base(importPath)
		g.imports[importPath] = name
	}
	return name
}

// qualifyType registers the import of the given type and returns its
// package-qualified name.
func (g *Generator) qualifyType(t *types.Type) string {
	return g.addImport(t.ImportPath()) + "." + t.BaseName()
}

// writeImports writes the import block, standard library first.
func (g *Generator) writeImports(out *strings.Builder) {
	if len(g.imports) == 0 {
		return
	}
	var std, rest []string
	for p := range g.imports {
		seg := p
		if i := strings.IndexByte(p, '/'); i >= 0 {
			seg = p[:i]
		}
		if strings.Contains(seg, ".") {
			rest = append(rest, p)
		} else {
			std = append(std, p)
		}
	}
	sort.Strings(std)
	sort.Strings(rest)
	out.WriteString("import (\n")
	for _, p := range std {
		fmt.Fprintf(out, "\t%q\n", p)
	}
	if len(std) > 0 && len(rest) > 0 {
		out.WriteString("\n")
	}
	for _, p := range rest {
		fmt.Fprintf(out, "\t%q\n", p)
	}
	out.WriteString(")\n\n")
}

func typeName(t *types.Type) string {
	if t == nil {
		return "<unregistered>"
	}
	return t.Name
}
