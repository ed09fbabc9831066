// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package scenegen generates Go source code that reconstructs a live
scene graph. Given one or more root nodes, it walks every node and
behavior reachable through reference fields and emits a factory
function that, when run, rebuilds an equivalent graph against the
scene runtime API.

The generator reads the input graph only through the capability
interfaces defined in this package ([Node], [Behavior], [Field],
[Frame], and [Graph]); it never names the host's concrete types.
The scenehost subpackage adapts the scene runtime to these interfaces.

The walk guarantees at-most-once construction per node identity: a
run-scoped memo, populated before a node's own fields are expanded,
turns cycles and shared targets into references to already-allocated
handles instead of repeated constructions. Behavior field assignments
are minimized by diffing each behavior against a freshly constructed
default instance of its type, so only fields that differ from their
defaults are emitted. Nodes living under a registered anchor boundary
are never constructed: they are looked up at reconstruction time by a
slash-joined path of names, guarded so a missing target degrades to a
no-op.

A Generator holds the state of exactly one run (the visited memo and
the identifier allocator) and is not safe for concurrent use; create
one per output file.
*/
package scenegen
