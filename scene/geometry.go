// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "slices"

// Geometry is an ordered collection of [Attribute]s describing a mesh.
type Geometry struct {
	attributes []*Attribute

	// boundsPosition overrides the attribute used for bounds computation.
	boundsPosition *Attribute

	dirty Dirty
}

// NewGeometry returns a new geometry with the given attributes.
func NewGeometry(attrs ...*Attribute) *Geometry {
	g := &Geometry{attributes: attrs}
	g.dirty.Mark()
	return g
}

// Attributes returns the attributes of the geometry, in insertion order.
func (g *Geometry) Attributes() []*Attribute {
	return g.attributes
}

// AddAttribute appends the attribute if it is not already present.
func (g *Geometry) AddAttribute(at *Attribute) *Geometry {
	if at == nil || slices.Contains(g.attributes, at) {
		return g
	}
	g.attributes = append(g.attributes, at)
	g.dirty.Mark()
	return g
}

// RemoveAttribute removes the attribute, also clearing it as the
// bounding volume position attribute if it was set as such.
func (g *Geometry) RemoveAttribute(at *Attribute) *Geometry {
	i := slices.Index(g.attributes, at)
	if i < 0 {
		return g
	}
	g.attributes = slices.Delete(g.attributes, i, i+1)
	if g.boundsPosition == at {
		g.boundsPosition = nil
	}
	g.dirty.Mark()
	return g
}

// AttributeByName returns the first attribute with the given name, or nil.
func (g *Geometry) AttributeByName(name string) *Attribute {
	for _, at := range g.attributes {
		if at.Name == name {
			return at
		}
	}
	return nil
}

// BoundingVolumePositionAttribute returns the attribute explicitly assigned
// as the position source for bounds computation, or nil.
func (g *Geometry) BoundingVolumePositionAttribute() *Attribute {
	return g.boundsPosition
}

// SetBoundingVolumePositionAttribute assigns the position source for bounds
// computation. Passing nil restores the default lookup by
// [DefaultPositionAttributeName].
func (g *Geometry) SetBoundingVolumePositionAttribute(at *Attribute) *Geometry {
	if g.boundsPosition == at {
		return g
	}
	g.boundsPosition = at
	g.dirty.Mark()
	return g
}

// DirtyState returns the dirty tracker of the geometry.
func (g *Geometry) DirtyState() *Dirty {
	return &g.dirty
}
