// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"testing"

	"cogentcore.org/bounds/parallel"
	"cogentcore.org/bounds/scene"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommit(t *testing.T) {
	root := scene.NewEntity().SetName("root")
	e, bv := newMesh(root, "mesh", quad, 0, 1, 2, 3)
	var changed []scene.Bounds
	bv.OnImplicitBoundsChanged = func(b scene.Bounds) { changed = append(changed, b) }

	Commit(ComputeAll(parallel.Sequential{}, Scan(root)), CommitClearAll)
	b, ok := bv.ImplicitBounds()
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(0, 0, 0), b.Min)
	assert.Equal(t, math32.Vec3(1, 1, 5), b.Max)
	assert.Equal(t, b.Min, bv.MinPoint())
	assert.Len(t, changed, 1)
	assert.False(t, e.DirtyState().IsDirty())
	assert.Empty(t, Scan(root))

	// recomputing the same bounds does not notify again
	e.MarkDirty()
	Commit(ComputeAll(parallel.Sequential{}, Scan(root)), CommitClearAll)
	assert.Len(t, changed, 1)
}

func TestCommitModes(t *testing.T) {
	for _, mode := range []CommitModes{CommitClearAll, CommitKeepNewer} {
		t.Run(mode.String(), func(t *testing.T) {
			root := scene.NewEntity().SetName("root")
			_, bv := newMesh(root, "mesh", quad)
			tasks := Scan(root)
			results := ComputeAll(parallel.Sequential{}, tasks)

			// the buffer changes between the scan and the commit
			buf := bv.View().Geometry().Attributes()[0].Buffer
			buf.SetData(f32Bytes(0, 0, 0, 2, 2, 2))
			Commit(results, mode)

			b, _ := bv.ImplicitBounds()
			assert.Equal(t, math32.Vec3(1, 1, 5), b.Max)
			if mode == CommitKeepNewer {
				assert.True(t, buf.DirtyState().IsDirty())
				assert.Len(t, Scan(root), 1)
			} else {
				assert.False(t, buf.DirtyState().IsDirty())
				assert.Empty(t, Scan(root))
			}
		})
	}
}

func TestCommitModeText(t *testing.T) {
	var m CommitModes
	require.NoError(t, m.UnmarshalText([]byte("KeepNewer")))
	assert.Equal(t, CommitKeepNewer, m)
	txt, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "KeepNewer", string(txt))
	assert.Equal(t, []CommitModes{CommitClearAll, CommitKeepNewer}, CommitModesValues())

	assert.Error(t, m.SetString("sometimes"))
	assert.Equal(t, CommitKeepNewer, m)
}
