// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/groundkit/blob/master/LICENSE.md.

package irqkit

import "github.com/insolar/groundkit/throw"

// Local is the handler-side of the handoff: a non-synchronized optional
// value. Zero value is empty. Once a value is claimed the Local owns it
// exclusively and permanently - it never returns to the empty state and
// never touches the Global again.
//
// Local must only be accessed from its single owning context.
type Local[T any] struct {
	value    T
	hasValue bool
}

// GetOrClaim returns the owned value, claiming it out of (g) on first call.
// The claim empties (g). After the first call no synchronization is
// performed. The returned pointer is stable across calls for the lifetime
// of the Local.
//
// The slot must have been loaded before the first claim; an empty slot is a
// programming error and panics. There is no recoverable "not yet ready"
// result - failing fast here beats propagating a garbage value into a
// context that assumes it is always valid.
func (p *Local[T]) GetOrClaim(g *Global[T]) *T {
	if !p.hasValue {
		v, ok := g.take()
		if !ok {
			panic(throw.IllegalState())
		}
		p.value, p.hasValue = v, true
	}
	return &p.value
}

// IsClaimed reports whether this Local has claimed its value.
func (p *Local[T]) IsClaimed() bool {
	return p.hasValue
}
