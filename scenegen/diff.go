// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegen

import (
	"github.com/tabulahq/tabula/base/logx"
)

// changedFields returns the fields of the given behavior whose values
// differ from a freshly constructed default instance of its type, in
// declaration order. Fields of unsupported kinds and denied fields are
// skipped. The template instance is released before returning on every
// path; constructing one may have observable effects on the host, so
// its lifetime is strictly scoped to the comparison.
func (g *Generator) changedFields(b Behavior) []Field {
	tmpl, release, err := g.graph.Template(b.Type())
	if err != nil {
		logx.Warn("cannot construct template instance, emitting all fields", "type", b.Type().Name, "err", err)
	} else {
		defer release()
	}

	var defaults map[string]Field
	if tmpl != nil {
		defaults = map[string]Field{}
		for _, f := range tmpl.Fields() {
			defaults[f.Name()] = f
		}
	}

	var changed []Field
	for _, f := range b.Fields() {
		if f.Kind() == KindUnsupported {
			logx.Debug("skipping field of unsupported kind", "type", b.Type().Name, "field", f.Name())
			continue
		}
		if g.denied[f.Name()] {
			continue
		}
		if f.Kind() == KindString {
			if s, ok := f.Value().(string); ok && s == "" {
				if g.opts.KeepEmptyStrings {
					changed = append(changed, f)
				}
				continue
			}
		}
		if tf, ok := defaults[f.Name()]; ok && g.graph.EqualValues(f.Kind(), f.Value(), tf.Value()) {
			continue
		}
		changed = append(changed, f)
	}
	return changed
}
