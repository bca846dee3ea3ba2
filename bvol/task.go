// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"cogentcore.org/bounds/scene"
)

// Task is the unit of work for one entity in one frame: the resolved
// attributes of the selected [scene.BoundingVolume] together with
// read-only snapshots of their data.
type Task struct {
	// Node is the entity the bounds are for.
	Node scene.Node

	// Volume is the bounding volume that receives the bounds.
	Volume *scene.BoundingVolume

	// View is the geometry view of Volume.
	View *scene.GeometryView

	// Position is the resolved position attribute.
	Position *scene.Attribute

	// Index is the resolved index attribute, or nil.
	Index *scene.Attribute

	// VertexCount is the effective number of vertices (or index
	// entries, when indexed) to visit.
	VertexCount int

	// Positions is the snapshot of the position data.
	Positions PositionView

	// Indexes is the snapshot of the index data, or nil.
	Indexes *IndexView

	// Restart and RestartIndex are the primitive restart settings of View.
	Restart      bool
	RestartIndex uint32

	// states and gens are the dirty trackers sampled by the scan
	// and their generations at that time.
	states []*scene.Dirty
	gens   generations
}

// generations are the dirty generations sampled by the scan, in the
// order returned by [Task.dirtyStates].
type generations [8]uint64

// dirtyStates returns the dirty trackers of everything the task
// depends on: node, volume, view, geometry, position attribute and
// buffer, and index attribute and buffer when indexed.
func (t *Task) dirtyStates() []*scene.Dirty {
	ds := []*scene.Dirty{
		t.Node.DirtyState(),
		t.Volume.DirtyState(),
		t.View.DirtyState(),
		t.View.Geometry().DirtyState(),
		t.Position.DirtyState(),
		t.Position.Buffer.DirtyState(),
	}
	if t.Index != nil {
		ds = append(ds, t.Index.DirtyState(), t.Index.Buffer.DirtyState())
	}
	return ds
}

// isDirty returns whether anything the task depends on is dirty,
// recording the sampled generations.
func (t *Task) isDirty() bool {
	dirty := false
	t.states = t.dirtyStates()
	for i, d := range t.states {
		t.gens[i] = d.Generation()
		if d.IsDirty() {
			dirty = true
		}
	}
	return dirty
}

// compute runs [Compute] on the snapshots of the task.
func (t *Task) compute() (scene.Bounds, error) {
	return Compute(t.Positions, t.Indexes, t.VertexCount, t.Restart, t.RestartIndex)
}

// Result is the computed bounds for a [Task].
type Result struct {
	Task   *Task
	Bounds scene.Bounds
}
