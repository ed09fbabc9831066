// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenehost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabulahq/tabula/math32"
	"github.com/tabulahq/tabula/scene"
	"github.com/tabulahq/tabula/scenegen"
	"github.com/tabulahq/tabula/scenegen/testdata"
)

func fieldMap(b scenegen.Behavior) map[string]scenegen.Field {
	m := map[string]scenegen.Field{}
	for _, f := range b.Fields() {
		m[f.Name()] = f
	}
	return m
}

func TestFieldKinds(t *testing.T) {
	card := scene.NewNode("Card")
	cv := scene.Attach[*testdata.CardView](card)
	fields := fieldMap(WrapBehavior(cv))

	kinds := map[string]scenegen.Kind{
		"Title":  scenegen.KindString,
		"Cost":   scenegen.KindInt,
		"FaceUp": scenegen.KindBool,
		"Wobble": scenegen.KindFloat,
		"Zone":   scenegen.KindEnum,
		"Offset": scenegen.KindVector2,
		"Lift":   scenegen.KindVector3,
		"Tint":   scenegen.KindColor,
		"Home":   scenegen.KindNode,
		"Slot":   scenegen.KindFrame,
		"Linked": scenegen.KindBehavior,
	}
	for name, kind := range kinds {
		f, ok := fields[name]
		require.True(t, ok, "missing field %q", name)
		assert.Equal(t, kind, f.Kind(), "field %q", name)
	}

	// runtime-reserved and embedded fields are not exposed
	assert.NotContains(t, fields, "Payload")
	assert.NotContains(t, fields, "Enabled")
	assert.NotContains(t, fields, "BehaviorBase")
}

func TestFieldUnsupportedKind(t *testing.T) {
	pile := scene.NewNode("Pile")
	deck := scene.Attach[*testdata.Deck](pile)
	fields := fieldMap(WrapBehavior(deck))
	require.Contains(t, fields, "Shufflers")
	assert.Equal(t, scenegen.KindUnsupported, fields["Shufflers"].Kind())
}

func TestFieldValues(t *testing.T) {
	card := scene.NewNode("Card")
	cv := scene.Attach[*testdata.CardView](card)
	cv.Title = "Loom"
	cv.Cost = 3
	cv.Wobble = 0.5
	cv.Zone = testdata.ZoneBoard
	cv.Offset = math32.Vec2(1, 2)

	fields := fieldMap(WrapBehavior(cv))
	assert.Equal(t, "Loom", fields["Title"].Value())
	assert.Equal(t, int64(3), fields["Cost"].Value())
	assert.Equal(t, float32(0.5), fields["Wobble"].Value())
	assert.Equal(t, testdata.ZoneBoard, fields["Zone"].Value())
	assert.Equal(t, math32.Vec2(1, 2), fields["Offset"].Value())
}

func TestFieldReferences(t *testing.T) {
	card := scene.NewNode("Card")
	cv := scene.Attach[*testdata.CardView](card)

	// nil references normalize to untyped nil
	fields := fieldMap(WrapBehavior(cv))
	assert.Nil(t, fields["Home"].Value())
	assert.Nil(t, fields["Home"].Node())
	assert.Nil(t, fields["Linked"].Value())
	assert.Nil(t, fields["Linked"].Behavior())
	assert.Nil(t, fields["Slot"].Frame())

	home := scene.NewNode("Home")
	other := scene.Attach[*testdata.CardView](scene.NewNode("Other"))
	cv.Home = home
	cv.Slot = home.Frame()
	cv.Linked = other

	fields = fieldMap(WrapBehavior(cv))
	assert.Equal(t, WrapNode(home), fields["Home"].Node())
	assert.Equal(t, WrapBehavior(other), fields["Linked"].Behavior())
	assert.Equal(t, WrapNode(home), fields["Slot"].Frame().Node())
}

func TestNodeIdentity(t *testing.T) {
	n := scene.NewNode("Card")
	assert.Equal(t, WrapNode(n), WrapNode(n))
	assert.NotEqual(t, WrapNode(n), WrapNode(scene.NewNode("Card")))
	assert.Nil(t, WrapNode(nil))
}

func TestTemplate(t *testing.T) {
	g := New()
	card := scene.NewNode("Card")
	cv := scene.Attach[*testdata.CardView](card)
	cv.Title = "Loom"

	tmpl, release, err := g.Template(WrapBehavior(cv).Type())
	require.NoError(t, err)
	require.NotNil(t, release)
	defer release()

	fields := fieldMap(tmpl)
	assert.Equal(t, "", fields["Title"].Value())
	assert.Equal(t, int64(0), fields["Cost"].Value())
	assert.Nil(t, fields["Home"].Value())
	assert.Nil(t, tmpl.Node())
}

func TestEqualValues(t *testing.T) {
	g := New()
	a := scene.NewNode("A")
	b := scene.NewNode("B")

	assert.True(t, g.EqualValues(scenegen.KindNode, a, a))
	assert.False(t, g.EqualValues(scenegen.KindNode, a, b))
	assert.True(t, g.EqualValues(scenegen.KindNode, nil, nil))
	assert.False(t, g.EqualValues(scenegen.KindNode, a, nil))

	assert.True(t, g.EqualValues(scenegen.KindInt, int64(3), int64(3)))
	assert.False(t, g.EqualValues(scenegen.KindInt, int64(3), int64(4)))
	assert.True(t, g.EqualValues(scenegen.KindEnum, testdata.ZoneHand, testdata.ZoneHand))
	assert.False(t, g.EqualValues(scenegen.KindEnum, testdata.ZoneHand, testdata.ZoneDeck))
	assert.True(t, g.EqualValues(scenegen.KindVector2, math32.Vec2(1, 2), math32.Vec2(1, 2)))
}
