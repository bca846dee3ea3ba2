// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

// CommitModes determine how [Commit] clears dirty state.
type CommitModes int32 //enums:enum -trim-prefix Commit

const (
	// CommitClearAll clears all of the dirty state a task depended on,
	// including changes made after the scan sampled it. Such changes
	// are then only picked up once something marks the data dirty again.
	CommitClearAll CommitModes = iota

	// CommitKeepNewer only clears dirty state that has not changed since
	// the scan sampled it, so changes made between the scan and the
	// commit cause a recomputation on the next frame.
	CommitKeepNewer
)

// Commit writes the bounds of every result into its bounding volume
// and clears the dirty state the result's task depended on. It must be
// called on the goroutine that owns the scene, after [ComputeAll] has
// returned and before the next [Scan].
func Commit(results []Result, mode CommitModes) {
	for _, r := range results {
		t := r.Task
		t.Volume.SetImplicitBounds(r.Bounds)
		for i, d := range t.states {
			switch mode {
			case CommitKeepNewer:
				d.ClearAt(t.gens[i])
			default:
				d.Clear()
			}
		}
	}
}
