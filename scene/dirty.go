// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Dirty tracks whether an object has changed since the bounds
// that depend on it were last committed. Every call to [Dirty.Mark]
// advances a generation counter, so a committer can tell whether
// a change happened after it sampled the state.
// The zero value is clean.
type Dirty struct {
	gen   uint64
	clean uint64
}

// Mark records a change.
func (d *Dirty) Mark() {
	d.gen++
}

// IsDirty returns whether there has been a change since the last clear.
func (d *Dirty) IsDirty() bool {
	return d.gen != d.clean
}

// Generation returns the current change generation.
func (d *Dirty) Generation() uint64 {
	return d.gen
}

// Clear marks the current generation as clean.
func (d *Dirty) Clear() {
	d.clean = d.gen
}

// ClearAt marks the object clean only if nothing has changed since
// the given generation was sampled, and returns whether it did.
func (d *Dirty) ClearAt(gen uint64) bool {
	if d.gen != gen {
		return false
	}
	d.clean = gen
	return true
}
