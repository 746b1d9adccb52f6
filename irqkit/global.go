// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/groundkit/blob/master/LICENSE.md.

// Package irqkit implements a one-shot ownership handoff of a value from the
// main execution context into a handler (interrupt) context.
//
// The producing context constructs a value and stores it into a Global; the
// handler context takes it out exactly once into its own Local, and from then
// on owns it exclusively with zero synchronization cost:
//
//	var globalUART irqkit.Global[UART]
//
//	func main() {
//		p := hal.Init()
//		globalUART.Load(p.UART)
//		p.EnableUARTInterrupt()
//		// ...
//	}
//
//	var localUART irqkit.Local[UART]
//
//	func handleUART() { // sole claimer of globalUART
//		uart := localUART.GetOrClaim(&globalUART)
//		// uart is exclusively owned here
//	}
//
// Exactly one Local may claim from a given Global; this is enforced by
// program structure, not by the library.
package irqkit

import "github.com/insolar/groundkit/synckit"

// Global is the shared side of the handoff: a critical-section guarded
// optional value. Zero value is empty and ready for use as a package-level
// `var`, so no constructor code runs for it.
type Global[T any] struct {
	value    T
	hasValue bool
}

// Load stores (value), replacing and returning the previous one, if any.
// Runs inside a bounded critical section and never blocks beyond it.
// Intended usage is a single Load before the first claim; when the replaced
// value holds resources, handling it is the caller's responsibility.
func (p *Global[T]) Load(value T) (prev T, hadPrev bool) {
	synckit.WithCritical(func() {
		prev, hadPrev = p.value, p.hasValue
		p.value, p.hasValue = value, true
	})
	return prev, hadPrev
}

// IsLoaded reports whether the slot currently holds a value. Diagnostic
// only - the result may be stale by the time it is observed.
func (p *Global[T]) IsLoaded() bool {
	loaded := false
	synckit.WithCritical(func() {
		loaded = p.hasValue
	})
	return loaded
}

// take removes and returns the stored value, leaving the slot empty.
func (p *Global[T]) take() (v T, ok bool) {
	synckit.WithCritical(func() {
		v, ok = p.value, p.hasValue
		var zero T
		p.value, p.hasValue = zero, false
	})
	return v, ok
}
