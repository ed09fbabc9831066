// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegen

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/tabulahq/tabula/base/logx"
	"github.com/tabulahq/tabula/enums"
	"github.com/tabulahq/tabula/math32"
	"github.com/tabulahq/tabula/types"
)

// formatFloat formats a float32 with the minimal digits that survive a
// round trip at 32-bit precision, so regenerating an unchanged graph
// yields byte-identical literals.
func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// valueExpr returns the Go expression for a primitive field value,
// registering any imports the expression needs. It returns false for
// values the generator cannot express.
func (g *Generator) valueExpr(f Field) (string, bool) {
	switch f.Kind() {
	case KindBool:
		v, ok := f.Value().(bool)
		if !ok {
			break
		}
		return strconv.FormatBool(v), true
	case KindInt:
		v, ok := f.Value().(int64)
		if !ok {
			break
		}
		return strconv.FormatInt(v, 10), true
	case KindFloat:
		v, ok := f.Value().(float32)
		if !ok {
			break
		}
		return formatFloat(v), true
	case KindString:
		v, ok := f.Value().(string)
		if !ok {
			break
		}
		return strconv.Quote(v), true
	case KindEnum:
		v, ok := f.Value().(enums.Enum)
		if !ok {
			break
		}
		return g.enumExpr(v)
	case KindVector2:
		v, ok := f.Value().(math32.Vector2)
		if !ok {
			break
		}
		g.addImport(math32PkgPath)
		return fmt.Sprintf("math32.Vec2(%s, %s)", formatFloat(v.X), formatFloat(v.Y)), true
	case KindVector3:
		v, ok := f.Value().(math32.Vector3)
		if !ok {
			break
		}
		g.addImport(math32PkgPath)
		return fmt.Sprintf("math32.Vec3(%s, %s, %s)", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z)), true
	case KindColor:
		v, ok := f.Value().(color.RGBA)
		if !ok {
			break
		}
		g.addImport("image/color")
		return fmt.Sprintf("color.RGBA{R: %d, G: %d, B: %d, A: %d}", v.R, v.G, v.B, v.A), true
	}
	logx.Warn("cannot express field value, skipping", "field", f.Name(), "kind", f.Kind(), "value", f.Value())
	return "", false
}

// enumExpr returns the qualified constant expression for an enum value,
// relying on the convention that [enums.Enum.String] returns the
// declared constant identifier.
func (g *Generator) enumExpr(e enums.Enum) (string, bool) {
	tn := types.TypeNameValue(e) // full import path + "." + type name
	dot := strings.LastIndex(tn, ".")
	if dot < 0 {
		logx.Warn("enum type is not package-qualified, skipping", "type", tn)
		return "", false
	}
	pkg := g.addImport(tn[:dot])
	return pkg + "." + e.String(), true
}
