// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"math"
	"testing"

	"cogentcore.org/bounds/scene"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadView() PositionView {
	return PositionView{Data: f32Bytes(quad...), Stride: 12}
}

func TestComputeNonIndexed(t *testing.T) {
	b, err := Compute(quadView(), nil, 4, false, 0)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(0, 0, 0), b.Min)
	assert.Equal(t, math32.Vec3(1, 1, 5), b.Max)
	assert.Equal(t, math32.Vec3(0.5, 0.5, 2.5), b.Center)
	assert.InDelta(t, 2.598, b.Radius, 1e-3)
}

func TestComputeIndexedRestart(t *testing.T) {
	want, err := Compute(quadView(), nil, 4, false, 0)
	require.NoError(t, err)

	idx := &IndexView{Data: u16Bytes(0, 1, 2, 0xFFFF, 3), Type: scene.UnsignedShort, Stride: 2}
	b, err := Compute(quadView(), idx, 5, true, 0xFFFF)
	require.NoError(t, err)
	assert.Equal(t, want, b)

	// removing the restart marker does not change the bounds
	idx = &IndexView{Data: u16Bytes(0, 1, 2, 3), Type: scene.UnsignedShort, Stride: 2}
	b2, err := Compute(quadView(), idx, 4, true, 0xFFFF)
	require.NoError(t, err)
	assert.Equal(t, b, b2)

	// without restart, 0xFFFF is a real index and lies out of range
	idx = &IndexView{Data: u16Bytes(0, 1, 2, 0xFFFF, 3), Type: scene.UnsignedShort, Stride: 2}
	_, err = Compute(quadView(), idx, 5, false, 0xFFFF)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestComputeIndexTypes(t *testing.T) {
	tests := []struct {
		name string
		idx  IndexView
	}{
		{"UnsignedByte", IndexView{Data: []byte{3, 1}, Type: scene.UnsignedByte, Stride: 1}},
		{"UnsignedShort", IndexView{Data: u16Bytes(3, 1), Type: scene.UnsignedShort, Stride: 2}},
		{"UnsignedInt", IndexView{Data: u32Bytes(3, 1), Type: scene.UnsignedInt, Stride: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Compute(quadView(), &tt.idx, 2, false, 0)
			require.NoError(t, err)
			assert.Equal(t, math32.Vec3(0, 0, 0), b.Min)
			assert.Equal(t, math32.Vec3(1, 0, 5), b.Max)
		})
	}
}

func TestComputeInterleaved(t *testing.T) {
	// 8 bytes of header, then x y z w followed by a 3 float normal.
	var data []float32
	data = append(data, -100, -100)
	verts := [][4]float32{{-1, 2, 3, 99}, {4, -5, 6, -99}}
	for _, v := range verts {
		data = append(data, v[0], v[1], v[2], v[3], 7, 7, 7)
	}
	pv := PositionView{Data: f32Bytes(data...), Stride: 28, Offset: 8}
	b, err := Compute(pv, nil, 2, false, 0)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(-1, -5, 3), b.Min)
	assert.Equal(t, math32.Vec3(4, 2, 6), b.Max)
}

func TestComputeOutOfRange(t *testing.T) {
	_, err := Compute(quadView(), nil, 5, false, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	idx := &IndexView{Data: u16Bytes(0, 1), Type: scene.UnsignedShort, Stride: 2}
	_, err = Compute(quadView(), idx, 3, false, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	idx = &IndexView{Data: u16Bytes(0, 4), Type: scene.UnsignedShort, Stride: 2}
	_, err = Compute(quadView(), idx, 2, false, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestElementOffset(t *testing.T) {
	tests := []struct {
		name                    string
		i, off, stride, size, n int
		want                    int
		ok                      bool
	}{
		{"first", 0, 0, 12, 12, 48, 0, true},
		{"last", 3, 0, 12, 12, 48, 36, true},
		{"past end", 4, 0, 12, 12, 48, 0, false},
		{"offset", 1, 8, 28, 12, 48, 36, true},
		{"offset past end", 2, 8, 28, 12, 48, 0, false},
		{"negative", -1, 0, 12, 12, 48, 0, false},
		{"too small", 0, 0, 12, 12, 8, 0, false},
		{"no stride", 1, 0, 0, 4, 48, 0, false},
		{"huge", math.MaxInt / 2, 0, 12, 12, 48, 0, false},
		{"max int32", math.MaxInt32, 0, 12, 12, 48, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, ok := elementOffset(tt.i, tt.off, tt.stride, tt.size, tt.n)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, off)
		})
	}
}

func TestComputeHugeIndex(t *testing.T) {
	idx := &IndexView{Data: u32Bytes(0, 0xFFFFFFFE), Type: scene.UnsignedInt, Stride: 4}
	_, err := Compute(quadView(), idx, 2, true, 0xFFFFFFFF)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestComputeEmpty(t *testing.T) {
	_, err := Compute(quadView(), nil, 0, false, 0)
	assert.ErrorIs(t, err, ErrEmpty)

	idx := &IndexView{Data: u16Bytes(0xFFFF, 0xFFFF), Type: scene.UnsignedShort, Stride: 2}
	_, err = Compute(quadView(), idx, 2, true, 0xFFFF)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestComputeProperties(t *testing.T) {
	verts := []float32{-3.25, 7, 0.125, 11, -2.5, 9, 0.1, 0.2, -0.3, 5, 5, 5}
	pv := PositionView{Data: f32Bytes(verts...), Stride: 12}
	b1, err := Compute(pv, nil, 4, false, 0)
	require.NoError(t, err)
	b2, err := Compute(pv, nil, 4, false, 0)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)

	assert.Equal(t, b1.Min.Add(b1.Max).DivScalar(2), b1.Center)
	assert.Equal(t, b1.Center.DistanceTo(b1.Max), b1.Radius)
	assert.InDelta(t, b1.Center.DistanceTo(b1.Min), b1.Radius, 1e-5)
}
