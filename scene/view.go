// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// PrimitiveTypes are the ways a [GeometryView] assembles vertices.
type PrimitiveTypes int32 //enums:enum

const (
	Points PrimitiveTypes = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
	LinesAdjacency
	TrianglesAdjacency
	LineStripAdjacency
	TriangleStripAdjacency

	// Patches are tessellation patches; their control points do not
	// bound the generated surface, so no bounds are computed for them.
	Patches
)

// GeometryView describes how a [Geometry] is interpreted for drawing.
type GeometryView struct {
	enabled bool

	primitive PrimitiveTypes

	// vertexCount of zero means derive it from the attributes.
	vertexCount int

	restart      bool
	restartIndex uint32

	geometry *Geometry

	dirty Dirty
}

// NewGeometryView returns a new enabled triangle view over the given geometry.
func NewGeometryView(g *Geometry) *GeometryView {
	v := &GeometryView{enabled: true, primitive: Triangles, geometry: g}
	v.dirty.Mark()
	return v
}

func (v *GeometryView) IsEnabled() bool { return v.enabled }

func (v *GeometryView) SetEnabled(on bool) *GeometryView {
	if v.enabled != on {
		v.enabled = on
		v.dirty.Mark()
	}
	return v
}

func (v *GeometryView) PrimitiveType() PrimitiveTypes { return v.primitive }

func (v *GeometryView) SetPrimitiveType(t PrimitiveTypes) *GeometryView {
	if v.primitive != t {
		v.primitive = t
		v.dirty.Mark()
	}
	return v
}

// VertexCount returns the explicit vertex count, or 0 if it is derived.
func (v *GeometryView) VertexCount() int { return v.vertexCount }

func (v *GeometryView) SetVertexCount(n int) *GeometryView {
	if v.vertexCount != n {
		v.vertexCount = n
		v.dirty.Mark()
	}
	return v
}

func (v *GeometryView) PrimitiveRestart() bool { return v.restart }

func (v *GeometryView) SetPrimitiveRestart(on bool) *GeometryView {
	if v.restart != on {
		v.restart = on
		v.dirty.Mark()
	}
	return v
}

func (v *GeometryView) RestartIndex() uint32 { return v.restartIndex }

func (v *GeometryView) SetRestartIndex(idx uint32) *GeometryView {
	if v.restartIndex != idx {
		v.restartIndex = idx
		v.dirty.Mark()
	}
	return v
}

func (v *GeometryView) Geometry() *Geometry { return v.geometry }

func (v *GeometryView) SetGeometry(g *Geometry) *GeometryView {
	if v.geometry != g {
		v.geometry = g
		v.dirty.Mark()
	}
	return v
}

// DirtyState returns the dirty tracker of the view.
func (v *GeometryView) DirtyState() *Dirty {
	return &v.dirty
}
