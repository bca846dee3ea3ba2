// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// DefaultPositionAttributeName is the name of the attribute used as the
// vertex position source when a [Geometry] does not name one explicitly.
const DefaultPositionAttributeName = "vertexPosition"

// AttributeTypes are the semantic kinds of [Attribute].
type AttributeTypes int32 //enums:enum

const (
	// VertexAttribute is per-vertex data such as positions or normals.
	VertexAttribute AttributeTypes = iota

	// IndexAttribute is an index stream into the vertex attributes.
	IndexAttribute

	// DrawIndirectAttribute holds indirect draw parameters.
	DrawIndirectAttribute
)

// BaseTypes are the element base types an [Attribute] can hold.
type BaseTypes int32 //enums:enum

const (
	Byte BaseTypes = iota
	UnsignedByte
	Short
	UnsignedShort
	Int
	UnsignedInt
	HalfFloat
	Float
	Double
)

// Size returns the size in bytes of one component of the type.
func (t BaseTypes) Size() int {
	switch t {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort, HalfFloat:
		return 2
	case Int, UnsignedInt, Float:
		return 4
	case Double:
		return 8
	}
	return 0
}

// Attribute is a typed, strided view into a [Buffer].
// Fields may be set directly while building a scene; after that,
// use the Set methods, which mark the attribute dirty.
type Attribute struct {
	// Name identifies the attribute within its [Geometry].
	Name string

	// Type is the semantic kind of the attribute.
	Type AttributeTypes

	// BaseType is the type of each component.
	BaseType BaseTypes

	// Size is the number of components per element (3 for xyz positions).
	Size int

	// Count is the number of elements.
	Count int

	// ByteStride is the distance in bytes between the start of
	// consecutive elements. Zero means tightly packed.
	ByteStride int

	// ByteOffset is the offset in bytes of the first element.
	ByteOffset int

	// Buffer holds the attribute data.
	Buffer *Buffer

	dirty Dirty
}

// NewAttribute returns a new attribute over the given buffer.
func NewAttribute(name string, typ AttributeTypes, base BaseTypes, size, count int, buf *Buffer) *Attribute {
	at := &Attribute{Name: name, Type: typ, BaseType: base, Size: size, Count: count, Buffer: buf}
	at.dirty.Mark()
	return at
}

// Stride returns the effective byte stride between elements.
func (at *Attribute) Stride() int {
	if at.ByteStride > 0 {
		return at.ByteStride
	}
	return at.Size * at.BaseType.Size()
}

// SetBuffer sets the buffer and marks the attribute dirty.
func (at *Attribute) SetBuffer(buf *Buffer) *Attribute {
	at.Buffer = buf
	at.dirty.Mark()
	return at
}

// SetCount sets the element count and marks the attribute dirty.
func (at *Attribute) SetCount(count int) *Attribute {
	at.Count = count
	at.dirty.Mark()
	return at
}

// SetLayout sets the byte stride and offset and marks the attribute dirty.
func (at *Attribute) SetLayout(stride, offset int) *Attribute {
	at.ByteStride = stride
	at.ByteOffset = offset
	at.dirty.Mark()
	return at
}

// DirtyState returns the dirty tracker of the attribute.
func (at *Attribute) DirtyState() *Dirty {
	return &at.dirty
}
