// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/groundkit/blob/master/LICENSE.md.

package synckit

import (
	"sync"

	"github.com/insolar/groundkit/atomickit"
	"github.com/insolar/groundkit/throw"
)

// CriticalSection runs short computations with preemption by handler
// contexts suppressed. Mutual exclusion across all users of the same
// CriticalSection is the implementation's contract; bounded duration of
// the given fn is the caller's contract.
type CriticalSection interface {
	With(fn func())
}

// WithCritical runs (fn) inside the process-wide critical section.
// Duration of (fn) must be O(1) - it may run with interrupts masked on
// platforms that provide a masking CriticalSection.
func WithCritical(fn func()) {
	activeSection().With(fn)
}

// SetCriticalSection replaces the process-wide critical section exactly once.
// Must be called before the first use of WithCritical, otherwise mutual
// exclusion with earlier users is not guaranteed. Repeated calls panic.
func SetCriticalSection(cs CriticalSection) {
	if cs == nil {
		panic(throw.IllegalValue())
	}
	if !sectionOnce.DoSet(func() {
		sectionOverride = cs
	}) {
		panic(throw.IllegalState())
	}
}

var sectionOnce atomickit.OnceFlag
var sectionOverride CriticalSection

var nativeSection = NativeCriticalSection()

func activeSection() CriticalSection {
	if sectionOnce.IsSet() {
		return sectionOverride
	}
	return nativeSection
}

// NativeCriticalSection returns a hosted-Go critical section backed by a
// mutex. On a hosted runtime mutual exclusion between the main and handler
// goroutines is all a critical section has to provide.
func NativeCriticalSection() CriticalSection {
	return lockerSection{&sync.Mutex{}}
}

// DummyCriticalSection returns a pass-through critical section for
// single-context platforms, where there is nothing to preempt and nothing
// to mask. Install it via SetCriticalSection to strip locking overhead.
func DummyCriticalSection() CriticalSection {
	return lockerSection{DummyLocker()}
}

type lockerSection struct {
	lock sync.Locker
}

func (v lockerSection) With(fn func()) {
	v.lock.Lock()
	defer v.lock.Unlock()
	fn()
}
