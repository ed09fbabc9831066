// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	v := Vec2(3, 4)
	assert.Equal(t, Vec2(4, 6), v.Add(Vec2(1, 2)))
	assert.Equal(t, Vec2(2, 2), v.Sub(Vec2(1, 2)))
	assert.Equal(t, Vec2(6, 8), v.MulScalar(2))
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, Vec2(2, 2), Vector2Scalar(2))
	assert.Equal(t, "(3, 4)", v.String())
}

func TestVector3(t *testing.T) {
	v := Vec3(1, 2, 2)
	assert.Equal(t, Vec3(2, 4, 4), v.Add(v))
	assert.Equal(t, Vec3(0, 0, 0), v.Sub(v))
	assert.Equal(t, float32(3), v.Length())
	assert.Equal(t, Vec3(1, 1, 1), Vector3Scalar(1))

	n := Vec3(0, 3, 0).Normal()
	assert.Equal(t, Vec3(0, 1, 0), n)
}
