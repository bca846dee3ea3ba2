// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"log/slog"

	"cogentcore.org/bounds/scene"
)

// Scan walks the enabled part of the tree under root and returns a
// [Task] for every node whose bounds need to be recomputed, with at
// most one task per node. Nodes under a disabled node (or with a
// disabled ancestor of root) produce no tasks.
func Scan(root scene.Node) []*Task {
	return scan(root, Logger())
}

// scan is [Scan] logging to log.
func scan(root scene.Node, log *slog.Logger) []*Task {
	if root == nil || !scene.IsTreeEnabled(root) {
		return nil
	}
	var tasks []*Task
	scene.WalkDown(root, func(n scene.Node) bool {
		if !n.IsEnabled() {
			return scene.Break
		}
		if t := selectTask(n, log); t != nil {
			tasks = append(tasks, t)
		}
		return scene.Continue
	})
	return tasks
}

// selectTask picks the bounding volume of n to recompute, if any.
// Volumes are visited in attachment order. The primary volume always
// decides: if it is dirty it is selected, and otherwise nothing is.
// Without a primary volume, the first dirty one is selected.
// Volumes with explicit points or no view are never selected, and
// volumes whose attributes cannot be resolved are reported and skipped.
func selectTask(n scene.Node, log *slog.Logger) *Task {
	var sel *Task
	for _, bv := range n.BoundingVolumes() {
		if sel != nil && !bv.IsPrimary() {
			continue
		}
		if bv.HasExplicitPoints() || bv.View() == nil {
			continue
		}
		t, err := Resolve(bv.View())
		if err != nil {
			log.Warn("bvol: skipping bounding volume", "node", n, "err", err)
			continue
		}
		if t == nil {
			continue
		}
		t.Node = n
		t.Volume = bv
		dirty := t.isDirty()
		if bv.IsPrimary() {
			if dirty {
				return t
			}
			return nil
		}
		if dirty {
			sel = t
		}
	}
	return sel
}
