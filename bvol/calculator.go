// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"encoding/binary"
	"fmt"

	"cogentcore.org/bounds/scene"
	"cogentcore.org/core/math32"
	fmath "github.com/chewxy/math32"
)

// PositionView is a read-only view of float32 vertex positions.
// Only the first three components of each element are read.
type PositionView struct {
	// Data is the whole buffer the positions live in.
	Data []byte

	// Stride is the distance in bytes between consecutive elements.
	Stride int

	// Offset is the byte offset of the first element.
	Offset int
}

// At returns the xyz position of vertex i.
func (pv PositionView) At(i int) (math32.Vector3, error) {
	off, ok := elementOffset(i, pv.Offset, pv.Stride, 12, len(pv.Data))
	if !ok {
		return math32.Vector3{}, fmt.Errorf("vertex %d (stride %d, offset %d) of %d bytes: %w", i, pv.Stride, pv.Offset, len(pv.Data), ErrOutOfRange)
	}
	b := pv.Data[off:]
	return math32.Vec3(
		fmath.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		fmath.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		fmath.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	), nil
}

// IndexView is a read-only view of an unsigned index stream.
type IndexView struct {
	Data []byte

	// Type is one of [scene.UnsignedByte], [scene.UnsignedShort]
	// or [scene.UnsignedInt].
	Type scene.BaseTypes

	Stride int
	Offset int
}

// At returns index entry i.
func (iv IndexView) At(i int) (uint32, error) {
	off, ok := elementOffset(i, iv.Offset, iv.Stride, iv.Type.Size(), len(iv.Data))
	if !ok {
		return 0, fmt.Errorf("index entry %d (stride %d, offset %d) of %d bytes: %w", i, iv.Stride, iv.Offset, len(iv.Data), ErrOutOfRange)
	}
	b := iv.Data[off:]
	switch iv.Type {
	case scene.UnsignedByte:
		return uint32(b[0]), nil
	case scene.UnsignedShort:
		return uint32(binary.LittleEndian.Uint16(b)), nil
	case scene.UnsignedInt:
		return binary.LittleEndian.Uint32(b), nil
	}
	return 0, fmt.Errorf("%v: %w", iv.Type, ErrIndexType)
}

// elementOffset returns the byte offset of element i of size bytes,
// and whether the element lies within n bytes. It bounds i before
// multiplying so that large indexes cannot wrap around.
func elementOffset(i, offset, stride, size, n int) (int, bool) {
	if i < 0 || offset < 0 || size <= 0 || offset > n-size {
		return 0, false
	}
	if i > 0 && (stride <= 0 || i > (n-size-offset)/stride) {
		return 0, false
	}
	return offset + i*stride, true
}

// Compute returns the axis-aligned bounds of count vertices of pos,
// along with the sphere centered on the box that passes through its
// corners. If idx is non-nil, count index entries are read from it
// and used to look up the positions; entries equal to restartIndex
// are skipped when restart is true.
//
// It returns [ErrEmpty] if no vertex was visited, and an error wrapping
// [ErrOutOfRange] if any index or position lies outside of its buffer.
// Compute only reads its arguments, so it is safe to call concurrently.
func Compute(pos PositionView, idx *IndexView, count int, restart bool, restartIndex uint32) (scene.Bounds, error) {
	if count <= 0 {
		return scene.Bounds{}, ErrEmpty
	}
	bb := math32.B3Empty()
	n := 0
	for i := range count {
		vi := i
		if idx != nil {
			ix, err := idx.At(i)
			if err != nil {
				return scene.Bounds{}, err
			}
			if restart && ix == restartIndex {
				continue
			}
			vi = int(ix)
		}
		p, err := pos.At(vi)
		if err != nil {
			return scene.Bounds{}, err
		}
		bb.ExpandByPoint(p)
		n++
	}
	if n == 0 {
		return scene.Bounds{}, ErrEmpty
	}
	center := bb.Center()
	return scene.Bounds{
		Min:    bb.Min,
		Max:    bb.Max,
		Center: center,
		Radius: center.DistanceTo(bb.Max),
	}, nil
}
