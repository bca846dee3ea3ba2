// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
)

// DataGenerator produces the contents of a [Buffer], for example by
// reading a file or generating procedural geometry.
type DataGenerator interface {
	// GenerateData returns the new buffer contents.
	GenerateData() ([]byte, error)
}

// DataGeneratorFunc is a function that implements [DataGenerator].
type DataGeneratorFunc func() ([]byte, error)

func (f DataGeneratorFunc) GenerateData() ([]byte, error) {
	return f()
}

// Buffer is a contiguous region of bytes referenced by one or
// more [Attribute]s. The buffer exclusively owns its data.
type Buffer struct {
	// Name is an optional name used in log messages.
	Name string

	// Generator, if set, is used by [Buffer.Load] to (re)produce the data.
	Generator DataGenerator

	data  []byte
	dirty Dirty
}

// NewBuffer returns a new buffer holding the given data.
func NewBuffer(data []byte) *Buffer {
	b := &Buffer{data: data}
	b.dirty.Mark()
	return b
}

// Data returns the current contents of the buffer.
// The returned slice must be treated as read-only.
func (b *Buffer) Data() []byte {
	return b.data
}

// Len returns the length of the buffer data in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// SetData replaces the contents of the buffer and marks it dirty.
func (b *Buffer) SetData(data []byte) *Buffer {
	b.data = data
	b.dirty.Mark()
	return b
}

// UpdateData overwrites part of the buffer starting at the given
// byte offset, growing it if needed, and marks it dirty.
func (b *Buffer) UpdateData(offset int, data []byte) *Buffer {
	if end := offset + len(data); end > len(b.data) {
		nd := make([]byte, end)
		copy(nd, b.data)
		b.data = nd
	}
	copy(b.data[offset:], data)
	b.dirty.Mark()
	return b
}

// Load runs the [Buffer.Generator], if any, and stores its result.
func (b *Buffer) Load() error {
	if b.Generator == nil {
		return nil
	}
	data, err := b.Generator.GenerateData()
	if err != nil {
		return fmt.Errorf("scene.Buffer %q: generating data: %w", b.Name, err)
	}
	b.SetData(data)
	return nil
}

// DirtyState returns the dirty tracker of the buffer.
func (b *Buffer) DirtyState() *Dirty {
	return &b.dirty
}
