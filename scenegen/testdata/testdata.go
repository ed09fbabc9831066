// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testdata provides registered behavior types for generator and
// runtime tests, modeled on the card table scenes of the game client.
package testdata

import (
	"image/color"

	"github.com/tabulahq/tabula/math32"
	"github.com/tabulahq/tabula/scene"
)

// Zone is the table zone a card lives in.
type Zone int32

const (
	ZoneDeck Zone = iota
	ZoneHand
	ZoneBoard
	ZoneGraveyard
)

func (z Zone) Int64() int64 { return int64(z) }

func (z *Zone) SetInt64(i int64) { *z = Zone(i) }

// String returns the declared constant identifier, which generated
// source relies on.
func (z Zone) String() string {
	switch z {
	case ZoneDeck:
		return "ZoneDeck"
	case ZoneHand:
		return "ZoneHand"
	case ZoneBoard:
		return "ZoneBoard"
	case ZoneGraveyard:
		return "ZoneGraveyard"
	}
	return "ZoneDeck"
}

// CardView renders one card on the table.
type CardView struct {
	scene.BehaviorBase

	// Title is the card title shown on the face.
	Title string

	// Cost is the mana cost shown in the corner.
	Cost int

	// FaceUp is whether the face is showing.
	FaceUp bool

	// Wobble is the idle wobble amplitude.
	Wobble float32

	// Zone is the table zone the card is in.
	Zone Zone

	// Offset is the 2D offset within the zone layout.
	Offset math32.Vector2

	// Lift is the 3D lift applied while dragging.
	Lift math32.Vector3

	// Tint is the highlight tint.
	Tint color.RGBA

	// Home is the slot node the card returns to.
	Home *scene.Node `json:"-"`

	// Slot is the frame the card aligns itself to.
	Slot *scene.Frame `json:"-"`

	// Linked is the card this one is attached to.
	Linked *CardView `json:"-"`

	// Payload carries arbitrary per-card data for scripting; it is
	// runtime state, not scene content.
	Payload map[string]any `json:"-" gen:"-"`
}

// Deck holds an ordered pile of cards.
type Deck struct {
	scene.BehaviorBase

	// Limit is the maximum number of cards.
	Limit int

	// Top is the card currently showing on top.
	Top *CardView `json:"-"`

	// Discard is the node cards are discarded to.
	Discard *scene.Node `json:"-"`

	// Shufflers is unexpressible scene content and is skipped by
	// tooling.
	Shufflers []func() `json:"-"`
}

// Follow makes a node track a target node.
type Follow struct {
	scene.BehaviorBase

	// Speed is the tracking speed in units per second.
	Speed float32

	// Target is the node to follow.
	Target *scene.Node `json:"-"`
}

// Marker is a minimal labeled behavior with no references, used for
// persistence round trips.
type Marker struct {
	scene.BehaviorBase

	// Label is the marker label.
	Label string
}

func init() {
	// register through BehaviorType so tests and generated factories
	// resolve these types by name
	for _, b := range []scene.Behavior{&CardView{}, &Deck{}, &Follow{}, &Marker{}} {
		scene.BehaviorType(b)
	}
}
