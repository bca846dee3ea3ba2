// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"encoding/binary"
	"math"

	"cogentcore.org/bounds/scene"
)

// quad holds the vertices (0,0,0), (1,0,0), (0,1,0), (0,0,5).
var quad = []float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 5}

func f32Bytes(vs ...float32) []byte {
	b := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v))
	}
	return b
}

func u16Bytes(vs ...uint16) []byte {
	b := make([]byte, 2*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint16(b[2*i:], v)
	}
	return b
}

func u32Bytes(vs ...uint32) []byte {
	b := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(b[4*i:], v)
	}
	return b
}

// positionAttr returns a tightly packed xyz position attribute.
func positionAttr(verts []float32) *scene.Attribute {
	return scene.NewAttribute(scene.DefaultPositionAttributeName, scene.VertexAttribute, scene.Float, 3, len(verts)/3, scene.NewBuffer(f32Bytes(verts...)))
}

// indexAttr returns an unsigned short index attribute.
func indexAttr(idxs ...uint16) *scene.Attribute {
	return scene.NewAttribute("index", scene.IndexAttribute, scene.UnsignedShort, 1, len(idxs), scene.NewBuffer(u16Bytes(idxs...)))
}

// newMesh adds an entity with one bounding volume over the given
// vertices and optional indexes.
func newMesh(parent *scene.Entity, name string, verts []float32, idxs ...uint16) (*scene.Entity, *scene.BoundingVolume) {
	g := scene.NewGeometry(positionAttr(verts))
	if len(idxs) > 0 {
		g.AddAttribute(indexAttr(idxs...))
	}
	bv := scene.NewBoundingVolume(scene.NewGeometryView(g))
	e := scene.NewEntity(parent).SetName(name).AddBoundingVolume(bv)
	return e, bv
}

// volumeFor returns a bounding volume over the given vertices.
func volumeFor(verts []float32) *scene.BoundingVolume {
	return scene.NewBoundingVolume(scene.NewGeometryView(scene.NewGeometry(positionAttr(verts))))
}

// cleanVolume clears all of the dirty state of the data of bv.
func cleanVolume(bv *scene.BoundingVolume) {
	bv.DirtyState().Clear()
	v := bv.View()
	v.DirtyState().Clear()
	v.Geometry().DirtyState().Clear()
	for _, at := range v.Geometry().Attributes() {
		at.DirtyState().Clear()
		if at.Buffer != nil {
			at.Buffer.DirtyState().Clear()
		}
	}
}

// testNode is a minimal [scene.Node] that is not an entity.
type testNode struct {
	enabled bool
	parent  *testNode
	kids    []*testNode
	volumes []*scene.BoundingVolume
	dirty   scene.Dirty
}

func newTestNode(parent *testNode, volumes ...*scene.BoundingVolume) *testNode {
	n := &testNode{enabled: true, parent: parent, volumes: volumes}
	n.dirty.Mark()
	if parent != nil {
		parent.kids = append(parent.kids, n)
	}
	return n
}

func (n *testNode) IsEnabled() bool { return n.enabled }

func (n *testNode) ParentNode() scene.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *testNode) NumChildren() int                         { return len(n.kids) }
func (n *testNode) ChildNode(i int) scene.Node               { return n.kids[i] }
func (n *testNode) BoundingVolumes() []*scene.BoundingVolume { return n.volumes }
func (n *testNode) DirtyState() *scene.Dirty                 { return &n.dirty }
