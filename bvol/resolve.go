// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"fmt"

	"cogentcore.org/bounds/scene"
)

// Resolve finds the position and index attributes of the given view
// and returns a [Task] for computing its bounds, with Node and Volume
// left unset. It returns nil and no error when the view is nil or
// disabled, draws patches, or has no geometry: those views are never
// bounded. It returns an error when the attributes cannot be used.
func Resolve(view *scene.GeometryView) (*Task, error) {
	if view == nil || !view.IsEnabled() || view.PrimitiveType() == scene.Patches {
		return nil, nil
	}
	geom := view.Geometry()
	if geom == nil {
		return nil, nil
	}

	pos := geom.BoundingVolumePositionAttribute()
	if pos == nil {
		pos = geom.AttributeByName(scene.DefaultPositionAttributeName)
	}
	if pos == nil {
		return nil, fmt.Errorf("no %q attribute: %w", scene.DefaultPositionAttributeName, ErrPositionAttribute)
	}
	if pos.Type != scene.VertexAttribute || pos.BaseType != scene.Float || pos.Size < 3 {
		return nil, fmt.Errorf("attribute %q (%v %v x%d): %w", pos.Name, pos.Type, pos.BaseType, pos.Size, ErrPositionAttribute)
	}
	if pos.Buffer == nil {
		return nil, fmt.Errorf("attribute %q: %w", pos.Name, ErrPositionBuffer)
	}

	var idx *scene.Attribute
	for _, at := range geom.Attributes() {
		if at.Type == scene.IndexAttribute && at.Buffer != nil {
			idx = at
			break
		}
	}
	if idx != nil {
		switch idx.BaseType {
		case scene.UnsignedByte, scene.UnsignedShort, scene.UnsignedInt:
		default:
			return nil, fmt.Errorf("attribute %q (%v): %w", idx.Name, idx.BaseType, ErrIndexType)
		}
	}

	count := view.VertexCount()
	switch {
	case count != 0:
	case idx != nil:
		count = idx.Count
	default:
		count = pos.Count
	}

	t := &Task{
		View:         view,
		Position:     pos,
		Index:        idx,
		VertexCount:  count,
		Restart:      view.PrimitiveRestart(),
		RestartIndex: view.RestartIndex(),
		Positions: PositionView{
			Data:   pos.Buffer.Data(),
			Stride: pos.Stride(),
			Offset: pos.ByteOffset,
		},
	}
	if idx != nil {
		stride := idx.ByteStride
		if stride == 0 {
			stride = idx.BaseType.Size()
		}
		t.Indexes = &IndexView{
			Data:   idx.Buffer.Data(),
			Type:   idx.BaseType,
			Stride: stride,
			Offset: idx.ByteOffset,
		}
	}
	return t, nil
}

// UpdateImplicitBounds resolves and computes the bounds of the given
// volume immediately, outside of the frame cycle, and commits them on
// success. It does not clear any dirty state, so the next frame still
// recomputes the volume if its data is dirty. It returns whether new
// bounds were committed.
func UpdateImplicitBounds(bv *scene.BoundingVolume) bool {
	if bv == nil || bv.HasExplicitPoints() {
		return false
	}
	t, err := Resolve(bv.View())
	if err != nil {
		Logger().Warn("bvol.UpdateImplicitBounds", "err", err)
		return false
	}
	if t == nil {
		return false
	}
	b, err := t.compute()
	if err != nil {
		logComputeError(Logger(), t, err)
		return false
	}
	bv.SetImplicitBounds(b)
	return true
}
