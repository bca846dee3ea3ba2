// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Bounds is an axis-aligned box together with the sphere that
// circumscribes it.
type Bounds struct {
	Min    math32.Vector3
	Max    math32.Vector3
	Center math32.Vector3
	Radius float32
}

// Box returns the bounds as a [math32.Box3].
func (b Bounds) Box() math32.Box3 {
	return math32.Box3{Min: b.Min, Max: b.Max}
}

// BoundingVolume is a component that provides the bounds of the
// [Entity] it is attached to, either computed from the vertex data
// of its [GeometryView] (implicit) or set by the user (explicit).
type BoundingVolume struct {
	// OnImplicitBoundsChanged, if set, is called after the implicit
	// bounds have been committed with a new value.
	OnImplicitBoundsChanged func(b Bounds)

	view    *GeometryView
	primary bool

	explicitMin   math32.Vector3
	explicitMax   math32.Vector3
	explicitValid bool

	implicit      Bounds
	implicitValid bool

	// dirty is marked when the choice of data to bound changes.
	dirty Dirty
}

// NewBoundingVolume returns a new bounding volume for the given view.
func NewBoundingVolume(view *GeometryView) *BoundingVolume {
	bv := &BoundingVolume{view: view}
	bv.dirty.Mark()
	return bv
}

func (bv *BoundingVolume) View() *GeometryView { return bv.view }

func (bv *BoundingVolume) SetView(v *GeometryView) *BoundingVolume {
	if bv.view != v {
		bv.view = v
		bv.dirty.Mark()
	}
	return bv
}

// IsPrimary returns whether this volume takes precedence over all
// other volumes attached to the same entity.
func (bv *BoundingVolume) IsPrimary() bool { return bv.primary }

func (bv *BoundingVolume) SetPrimary(on bool) *BoundingVolume {
	if bv.primary != on {
		bv.primary = on
		bv.dirty.Mark()
	}
	return bv
}

// HasExplicitPoints returns whether the user set the bounds,
// in which case they are never computed.
func (bv *BoundingVolume) HasExplicitPoints() bool { return bv.explicitValid }

// SetMinPoint sets the explicit minimum point.
func (bv *BoundingVolume) SetMinPoint(p math32.Vector3) *BoundingVolume {
	bv.explicitMin = p
	bv.explicitValid = true
	return bv
}

// SetMaxPoint sets the explicit maximum point.
func (bv *BoundingVolume) SetMaxPoint(p math32.Vector3) *BoundingVolume {
	bv.explicitMax = p
	bv.explicitValid = true
	return bv
}

// ClearExplicitPoints returns the volume to implicit computation.
func (bv *BoundingVolume) ClearExplicitPoints() *BoundingVolume {
	if bv.explicitValid {
		bv.dirty.Mark()
	}
	bv.explicitMin = math32.Vector3{}
	bv.explicitMax = math32.Vector3{}
	bv.explicitValid = false
	return bv
}

// MinPoint returns the explicit minimum point if set,
// and otherwise the implicit one.
func (bv *BoundingVolume) MinPoint() math32.Vector3 {
	if bv.explicitValid {
		return bv.explicitMin
	}
	return bv.implicit.Min
}

// MaxPoint returns the explicit maximum point if set,
// and otherwise the implicit one.
func (bv *BoundingVolume) MaxPoint() math32.Vector3 {
	if bv.explicitValid {
		return bv.explicitMax
	}
	return bv.implicit.Max
}

// ImplicitBounds returns the last committed computed bounds and
// whether any have been committed yet.
func (bv *BoundingVolume) ImplicitBounds() (Bounds, bool) {
	return bv.implicit, bv.implicitValid
}

// SetImplicitBounds commits computed bounds. It is only called by the
// bounds computation; everything else treats the implicit bounds as
// read-only.
func (bv *BoundingVolume) SetImplicitBounds(b Bounds) {
	changed := !bv.implicitValid || bv.implicit != b
	bv.implicit = b
	bv.implicitValid = true
	if changed && bv.OnImplicitBoundsChanged != nil {
		bv.OnImplicitBoundsChanged(b)
	}
}

// DirtyState returns the dirty tracker of the volume, which is marked
// when its view, primary flag or explicit points change.
func (bv *BoundingVolume) DirtyState() *Dirty {
	return &bv.dirty
}
