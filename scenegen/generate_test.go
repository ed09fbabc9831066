// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegen_test

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabulahq/tabula/math32"
	"github.com/tabulahq/tabula/scene"
	"github.com/tabulahq/tabula/scenegen"
	"github.com/tabulahq/tabula/scenegen/scenehost"
	"github.com/tabulahq/tabula/scenegen/testdata"
	"github.com/tabulahq/tabula/types"
)

func newGenerator(opts *scenegen.Options) *scenegen.Generator {
	if opts == nil {
		opts = scenegen.NewOptions()
	}
	opts.Now = func() time.Time {
		return time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	}
	return scenegen.New(scenehost.New(), opts)
}

func generate(t *testing.T, g *scenegen.Generator, name string, roots ...*scene.Node) string {
	t.Helper()
	wrapped := make([]scenegen.Node, len(roots))
	for i, r := range roots {
		wrapped[i] = scenehost.WrapNode(r)
	}
	src, err := g.Generate(name, wrapped...)
	require.NoError(t, err)
	return string(src)
}

func TestGenerateBasic(t *testing.T) {
	board := scene.NewNode("Board")
	cv := scene.Attach[*testdata.CardView](board)
	cv.Title = "Abyssal Loom"
	cv.Cost = 3
	cv.FaceUp = true
	cv.Wobble = 0.25
	cv.Zone = testdata.ZoneHand
	cv.Offset = math32.Vec2(12, 8)
	cv.Lift = math32.Vec3(0, 0.5, 0)
	cv.Tint = color.RGBA{R: 255, A: 255}

	s := generate(t, newGenerator(nil), "DraftBoard", board)

	assert.Contains(t, s, "// Code generated by scenegen. DO NOT EDIT.")
	assert.Contains(t, s, "package scenes")
	assert.Contains(t, s, `"image/color"`)
	assert.Contains(t, s, `"github.com/tabulahq/tabula/scene"`)
	assert.Contains(t, s, `"github.com/tabulahq/tabula/scenegen/testdata"`)
	assert.Contains(t, s, "func BuildDraftBoard(nodes *scene.Registry, prebuilt *scene.Node) *testdata.CardView {")
	assert.Contains(t, s, `board := scene.NewNode("Board")`)
	assert.Contains(t, s, "nodes.Add(board)")
	assert.Contains(t, s, "boardCardView := scene.Attach[*testdata.CardView](board)")
	assert.Contains(t, s, `boardCardView.Title = "Abyssal Loom"`)
	assert.Contains(t, s, "boardCardView.Cost = 3")
	assert.Contains(t, s, "boardCardView.FaceUp = true")
	assert.Contains(t, s, "boardCardView.Wobble = 0.25")
	assert.Contains(t, s, "boardCardView.Zone = testdata.ZoneHand")
	assert.Contains(t, s, "boardCardView.Offset = math32.Vec2(12, 8)")
	assert.Contains(t, s, "boardCardView.Lift = math32.Vec3(0, 0.5, 0)")
	assert.Contains(t, s, "boardCardView.Tint = color.RGBA{R: 255, G: 0, B: 0, A: 255}")
	assert.Contains(t, s, "return boardCardView")

	// default values are not emitted, and runtime state never is
	assert.NotContains(t, s, "Linked")
	assert.NotContains(t, s, "Payload")
	assert.NotContains(t, s, "Enabled")
	assert.NotContains(t, s, "Frame()")
}

func TestGenerateFrame(t *testing.T) {
	token := scene.NewNode("Token")
	token.Frame().Position = math32.Vec3(1, 2, 3)
	token.Frame().Rect = true
	token.Frame().Size = math32.Vec2(100, 40)

	s := generate(t, newGenerator(nil), "Token", token)

	assert.Contains(t, s, ") *scene.Node {")
	assert.Contains(t, s, "token.Frame().Position = math32.Vec3(1, 2, 3)")
	assert.Contains(t, s, "token.Frame().Rect = true")
	assert.Contains(t, s, "token.Frame().Size = math32.Vec2(100, 40)")
	assert.Contains(t, s, "return token")
	assert.NotContains(t, s, "Scale")
	assert.NotContains(t, s, "Rotation")
	assert.NotContains(t, s, "Anchor")
}

func TestGenerateSharedTargetOnce(t *testing.T) {
	hero := scene.NewNode("Hero")
	pet := scene.NewNode("Pet")
	scene.Attach[*testdata.Follow](pet).Target = hero
	shadow := scene.NewNode("Shadow")
	scene.Attach[*testdata.Follow](shadow).Target = hero

	s := generate(t, newGenerator(nil), "Pets", pet, shadow)

	assert.Equal(t, 1, strings.Count(s, `scene.NewNode("Hero")`))
	assert.Contains(t, s, "petFollow.Target = hero")
	assert.Contains(t, s, "shadowFollow.Target = hero")
}

func TestGenerateCycleTerminates(t *testing.T) {
	lantern := scene.NewNode("Lantern")
	moth := scene.NewNode("Moth")
	scene.Attach[*testdata.Follow](lantern).Target = moth
	scene.Attach[*testdata.Follow](moth).Target = lantern

	s := generate(t, newGenerator(nil), "Chase", lantern)

	assert.Equal(t, 1, strings.Count(s, `scene.NewNode("Lantern")`))
	assert.Equal(t, 1, strings.Count(s, `scene.NewNode("Moth")`))
	assert.Contains(t, s, "lanternFollow.Target = moth")
	assert.Contains(t, s, "mothFollow.Target = lantern")
}

func TestGenerateIntraNodeBehaviorRef(t *testing.T) {
	table := scene.NewNode("Table")
	deck := scene.Attach[*testdata.Deck](table)
	cv := scene.Attach[*testdata.CardView](table)
	deck.Top = cv

	s := generate(t, newGenerator(nil), "Table", table)

	// all behaviors are attached before any field is expanded, so the
	// back reference resolves even though CardView is attached second
	assert.Contains(t, s, "tableDeck := scene.Attach[*testdata.Deck](table)")
	assert.Contains(t, s, "tableCardView := scene.Attach[*testdata.CardView](table)")
	assert.Contains(t, s, "tableDeck.Top = tableCardView")
	assert.Less(t, strings.Index(s, "tableCardView := "), strings.Index(s, "tableDeck.Top = "))
}

func TestGenerateBehaviorRefAcrossNodes(t *testing.T) {
	pile := scene.NewNode("Pile")
	top := scene.NewNode("TopCard")
	cv := scene.Attach[*testdata.CardView](top)
	deck := scene.Attach[*testdata.Deck](pile)
	deck.Top = cv

	s := generate(t, newGenerator(nil), "Pile", pile)

	assert.Contains(t, s, `topCard := scene.NewNode("TopCard")`)
	assert.Contains(t, s, "pileDeck.Top = topCardCardView")
}

func TestGenerateAnchors(t *testing.T) {
	hud := scene.NewNode("HUD")
	panel := hud.NewChild("Panel")
	slot := panel.NewChild("Slot")
	scene.Attach[*testdata.CardView](slot)

	card := scene.NewNode("Card")
	cv := scene.Attach[*testdata.CardView](card)
	cv.Home = slot
	cv.Slot = panel.Frame()
	deck := scene.Attach[*testdata.Deck](card)
	deck.Top = scene.BehaviorOn[*testdata.CardView](slot)

	g := newGenerator(nil)
	g.AddAnchor(scenehost.WrapNode(hud))
	s := generate(t, g, "Card", card)

	assert.Contains(t, s, `if t := prebuilt.FindPath("Panel/Slot"); t != nil {`)
	assert.Contains(t, s, "cardCardView.Home = t")
	assert.Contains(t, s, `if t := prebuilt.FindPath("Panel"); t != nil {`)
	assert.Contains(t, s, "cardCardView.Slot = t.Frame()")
	assert.Contains(t, s, "cardDeck.Top = scene.BehaviorOn[*testdata.CardView](t)")

	// anchored nodes are looked up, never constructed
	assert.NotContains(t, s, `scene.NewNode("Slot")`)
	assert.NotContains(t, s, `scene.NewNode("Panel")`)
	assert.NotContains(t, s, `scene.NewNode("HUD")`)
}

func TestGenerateNameCollisions(t *testing.T) {
	a := scene.NewNode("Card")
	b := scene.NewNode("Card")
	c := scene.NewNode("card!")

	s := generate(t, newGenerator(nil), "Cards", a, b, c)

	assert.Contains(t, s, `card := scene.NewNode("Card")`)
	assert.Contains(t, s, `card1 := scene.NewNode("Card")`)
	assert.Contains(t, s, `card2 := scene.NewNode("card!")`)
}

func TestGenerateIdempotent(t *testing.T) {
	board := scene.NewNode("Board")
	cv := scene.Attach[*testdata.CardView](board)
	cv.Title = "Loom"
	target := scene.NewNode("Target")
	cv.Home = target

	g := newGenerator(nil)
	first := generate(t, g, "Board", board)
	second := generate(t, g, "Board", board)
	assert.Equal(t, first, second)
}

func TestGenerateDenyFields(t *testing.T) {
	board := scene.NewNode("Board")
	cv := scene.Attach[*testdata.CardView](board)
	cv.Title = "Loom"
	cv.Wobble = 3

	opts := scenegen.NewOptions()
	opts.DenyFields = []string{"Wobble"}
	s := generate(t, newGenerator(opts), "Board", board)

	assert.Contains(t, s, `boardCardView.Title = "Loom"`)
	assert.NotContains(t, s, "Wobble")
}

func TestGenerateDiffMinimality(t *testing.T) {
	board := scene.NewNode("Board")
	cv := scene.Attach[*testdata.CardView](board)

	// all-default behavior yields zero assignments
	s := generate(t, newGenerator(nil), "Board", board)
	assert.NotContains(t, s, "boardCardView.")

	// exactly one changed field yields exactly one assignment
	cv.Cost = 5
	s = generate(t, newGenerator(nil), "Board", board)
	assert.Equal(t, 1, strings.Count(s, "boardCardView."))
	assert.Contains(t, s, "boardCardView.Cost = 5")
}

func TestGenerateKeepEmptyStrings(t *testing.T) {
	board := scene.NewNode("Board")
	scene.Attach[*testdata.CardView](board)

	s := generate(t, newGenerator(nil), "Board", board)
	assert.NotContains(t, s, "Title")

	opts := scenegen.NewOptions()
	opts.KeepEmptyStrings = true
	s = generate(t, newGenerator(opts), "Board", board)
	assert.Contains(t, s, `boardCardView.Title = ""`)
}

func TestGenerateUnsupportedType(t *testing.T) {
	board := scene.NewNode("Board")
	scene.Attach[*testdata.Marker](board)
	cv := scene.Attach[*testdata.CardView](board)
	cv.Title = "Loom"

	opts := scenegen.NewOptions()
	opts.Supported = func(tp *types.Type) bool {
		return tp.BaseName() != "Marker"
	}
	s := generate(t, newGenerator(opts), "Board", board)

	assert.NotContains(t, s, "Marker")
	assert.Contains(t, s, ") *testdata.CardView {")
	assert.Contains(t, s, "return boardCardView")
}

func TestGenerateNoRoots(t *testing.T) {
	_, err := newGenerator(nil).Generate("Empty")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	board := scene.NewNode("Board")
	cv := scene.Attach[*testdata.CardView](board)
	cv.Title = "Loom"

	dir := t.TempDir()
	fname, err := newGenerator(nil).WriteFile(dir, "DraftBoard", scenehost.WrapNode(board))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "draft_board.gen.go"), fname)

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package scenes")
	assert.Contains(t, string(data), "func BuildDraftBoard(")
}
