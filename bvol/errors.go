// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import "cogentcore.org/core/base/errors"

var (
	// ErrPositionAttribute is reported when a geometry has no position
	// attribute usable for bounds: it is missing, not a vertex attribute,
	// not float, or has fewer than 3 components.
	ErrPositionAttribute = errors.New("position attribute not suited for bounding volume computation")

	// ErrPositionBuffer is reported when the position attribute has no buffer.
	ErrPositionBuffer = errors.New("position attribute not referencing a valid buffer")

	// ErrIndexType is reported for index attributes whose base type is not
	// an unsigned byte, short or int.
	ErrIndexType = errors.New("unsupported index attribute type")

	// ErrOutOfRange is reported when an index or position lies outside
	// of its buffer.
	ErrOutOfRange = errors.New("vertex data out of buffer range")

	// ErrEmpty is returned when there are no vertices to bound.
	// It is not a reported condition.
	ErrEmpty = errors.New("no vertices to bound")
)
