// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/groundkit/blob/master/LICENSE.md.

// Package uninitkit provides storage cells for values that are not valid at
// program start. A cell owns properly sized and aligned storage, but makes no
// claims on the validity of its contents - establishing and tracking validity
// is entirely the caller's obligation, as is synchronization of access.
//
// These cells are building blocks for higher-level structures (queues,
// bip-buffers, runtime-initialized constants) that own the bookkeeping
// making raw access provably correct.
package uninitkit

import "unsafe"

// Cell is a single-value storage slot of unknown validity. The zero value is
// ready for use, so a package-level `var` of Cell is the direct analogue of a
// statically allocated slot: no constructor code runs for it.
//
// Cell performs no synchronization and no lifecycle tracking. If T owns
// resources, releasing them is the caller's responsibility - the cell never
// inspects its contents.
type Cell[T any] struct {
	slot T
}

// Get returns a non-nil pointer to the storage, valid for the lifetime of
// the cell.
//
// WARNING! No claims are made on the validity of the pointee - it may be
// unwritten or stale. The caller must guarantee that all access through this
// pointer is shared XOR mutable for the duration of use; nothing is checked
// at runtime.
func (p *Cell[T]) Get() *T {
	return &p.slot
}

// UnsafePointer returns the same storage as Get, untyped.
func (p *Cell[T]) UnsafePointer() unsafe.Pointer {
	return unsafe.Pointer(&p.slot)
}
