// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/groundkit/blob/master/LICENSE.md.

package uninitkit

import (
	"unsafe"

	"github.com/insolar/groundkit/throw"
)

// NewArrayCell allocates storage for (count) elements of unknown validity.
// The length is fixed for the cell's lifetime. Intended for package-level
// `var` initialization, which is the Go rendition of a static block.
func NewArrayCell[T any](count int) *ArrayCell[T] {
	if count <= 0 {
		panic(throw.IllegalValue())
	}
	return &ArrayCell[T]{data: make([]T, count)}
}

// WrapArrayCell takes ownership of the given block as the cell's storage.
// Enables placing the storage into a true static, e.g. a package-level array:
//
//	var buf [128]byte
//	var cell = uninitkit.WrapArrayCell(buf[:])
//
// WARNING! The block must not be accessed through any other path afterwards.
func WrapArrayCell[T any](block []T) *ArrayCell[T] {
	if len(block) == 0 {
		panic(throw.IllegalValue())
	}
	return &ArrayCell[T]{data: block[:len(block):len(block)]}
}

// ArrayCell is a fixed-length contiguous block of elements of unknown
// validity. Different index ranges may be valid, invalid or being written at
// different times; the narrowing accessors grant access to sub-ranges without
// asserting validity or exclusivity of the whole block.
//
// ArrayCell performs no synchronization. All accessors that take an offset
// trust the caller completely - there are no bounds checks. This type is a
// foundation for structures that own the cursor bookkeeping making that safe.
type ArrayCell[T any] struct {
	data []T // length is fixed at construction
}

// Count returns the declared capacity of the cell.
func (p *ArrayCell[T]) Count() int {
	return len(p.data)
}

// PtrLen returns the base pointer and the declared capacity. Coarse access
// mode: only safe when the caller treats the entire range as a single
// shared-XOR-mutable unit for the whole duration of use. For partial access
// use ElementUnchecked / SubsliceUnchecked instead, which do not create a
// reference over the whole block.
func (p *ArrayCell[T]) PtrLen() (*T, int) {
	return p.base(), len(p.data)
}

// UnsafePointer returns the base of the storage, untyped.
func (p *ArrayCell[T]) UnsafePointer() unsafe.Pointer {
	return unsafe.Pointer(p.base())
}

func (p *ArrayCell[T]) base() *T {
	if len(p.data) == 0 {
		// zero-value cell has no storage
		panic(throw.IllegalState())
	}
	return unsafe.SliceData(p.data)
}

// InitializeAllCopied writes (v) into every element, in order from 0 to
// Count()-1, without reading prior contents.
//
// WARNING! The caller must guarantee no other access is made to the cell's
// storage for the duration of this call.
func (p *ArrayCell[T]) InitializeAllCopied(v T) {
	base := p.UnsafePointer()
	for i, n := 0, len(p.data); i < n; i++ {
		*(*T)(unsafe.Add(base, uintptr(i)*sizeOf[T]())) = v
	}
}

// InitializeAllWith writes f() into every element, invoking (f) once per
// element in order from 0 to Count()-1, without reading prior contents.
//
// WARNING! The caller must guarantee no other access is made to the cell's
// storage for the duration of this call.
func (p *ArrayCell[T]) InitializeAllWith(f func() T) {
	base := p.UnsafePointer()
	for i, n := 0, len(p.data); i < n; i++ {
		*(*T)(unsafe.Add(base, uintptr(i)*sizeOf[T]())) = f()
	}
}

// ElementUnchecked returns a pointer to exactly one element, equivalent to
// &data[offset], created without forming a reference over the whole block.
//
// WARNING! The caller must guarantee all of the following; nothing is checked:
//   - offset < Count()
//   - the element was validly written before any read through the result
//   - no conflicting access overlaps the element while the result is in use
func (p *ArrayCell[T]) ElementUnchecked(offset int) *T {
	return (*T)(unsafe.Add(p.UnsafePointer(), uintptr(offset)*sizeOf[T]()))
}

// SubsliceUnchecked returns the range [offset, offset+count), created without
// forming a reference over the whole block. A Go slice is inherently
// read-write, so the shared and exclusive flavors collapse into one accessor;
// the aliasing discipline below is what distinguishes them.
//
// WARNING! The caller must guarantee all of the following; nothing is checked:
//   - offset+count <= Count()
//   - all elements of the range were validly written before any read
//   - for reads: no writes overlap the range while the slice is in use
//   - for writes: no access of any kind overlaps the range while the slice is in use
func (p *ArrayCell[T]) SubsliceUnchecked(offset, count int) []T {
	return unsafe.Slice(p.ElementUnchecked(offset), count)
}

func sizeOf[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}
