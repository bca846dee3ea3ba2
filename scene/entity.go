// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the minimal scene model consumed by the
// bounding volume computation in [cogentcore.org/bounds/bvol]:
// entities arranged in a tree, the [BoundingVolume] components attached
// to them, and the geometry, attribute and buffer data they reference.
package scene

//go:generate core generate

import "slices"

// Node is the read-only view of a scene tree node that the bounds
// computation needs. [*Entity] implements it; tests and other scene
// models can supply their own implementations.
type Node interface {
	// IsEnabled returns whether the node itself is enabled,
	// regardless of its ancestors.
	IsEnabled() bool

	// ParentNode returns the parent node, or nil for a root.
	ParentNode() Node

	// NumChildren returns the number of children.
	NumChildren() int

	// ChildNode returns the child at the given index.
	ChildNode(i int) Node

	// BoundingVolumes returns the attached bounding volumes
	// in attachment order.
	BoundingVolumes() []*BoundingVolume

	// DirtyState returns the dirty tracker of the node.
	DirtyState() *Dirty
}

var _ Node = (*Entity)(nil)

// Entity is a node in the scene tree.
type Entity struct {
	// Name is used in log messages and paths.
	Name string

	enabled  bool
	parent   *Entity
	children []*Entity
	volumes  []*BoundingVolume
	dirty    Dirty
}

// NewEntity returns a new enabled entity, added as a child of
// the given parent if one is passed.
func NewEntity(parent ...*Entity) *Entity {
	e := &Entity{enabled: true}
	e.dirty.Mark()
	if len(parent) > 0 && parent[0] != nil {
		parent[0].AddChild(e)
	}
	return e
}

// SetName sets the name of the entity.
func (e *Entity) SetName(name string) *Entity {
	e.Name = name
	return e
}

func (e *Entity) IsEnabled() bool { return e.enabled }

// SetEnabled enables or disables the entity and, through it,
// its whole subtree.
func (e *Entity) SetEnabled(on bool) *Entity {
	e.enabled = on
	return e
}

// Parent returns the parent entity, or nil.
func (e *Entity) Parent() *Entity { return e.parent }

func (e *Entity) ParentNode() Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// Children returns the child entities.
func (e *Entity) Children() []*Entity { return e.children }

func (e *Entity) NumChildren() int { return len(e.children) }

func (e *Entity) ChildNode(i int) Node { return e.children[i] }

// AddChild moves the given entity under e.
func (e *Entity) AddChild(kid *Entity) {
	if kid.parent != nil {
		kid.parent.removeChild(kid)
	}
	kid.parent = e
	e.children = append(e.children, kid)
	kid.dirty.Mark()
}

// Delete detaches the entity from its parent.
func (e *Entity) Delete() {
	if e.parent != nil {
		e.parent.removeChild(e)
		e.parent = nil
	}
}

func (e *Entity) removeChild(kid *Entity) {
	if i := slices.Index(e.children, kid); i >= 0 {
		e.children = slices.Delete(e.children, i, i+1)
	}
}

func (e *Entity) BoundingVolumes() []*BoundingVolume { return e.volumes }

// AddBoundingVolume attaches a bounding volume component.
func (e *Entity) AddBoundingVolume(bv *BoundingVolume) *Entity {
	if bv == nil || slices.Contains(e.volumes, bv) {
		return e
	}
	e.volumes = append(e.volumes, bv)
	e.dirty.Mark()
	return e
}

// RemoveBoundingVolume detaches a bounding volume component.
func (e *Entity) RemoveBoundingVolume(bv *BoundingVolume) *Entity {
	if i := slices.Index(e.volumes, bv); i >= 0 {
		e.volumes = slices.Delete(e.volumes, i, i+1)
		e.dirty.Mark()
	}
	return e
}

// MarkDirty flags the entity as changed.
func (e *Entity) MarkDirty() { e.dirty.Mark() }

func (e *Entity) DirtyState() *Dirty { return &e.dirty }

// Path returns the slash-separated names from the root to e.
func (e *Entity) Path() string {
	if e.parent == nil {
		return "/" + e.Name
	}
	return e.parent.Path() + "/" + e.Name
}

func (e *Entity) String() string {
	return e.Path()
}
