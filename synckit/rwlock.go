// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/groundkit/blob/master/LICENSE.md.

package synckit

import "sync"

type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

// DummyLocker returns a pass-through locker for single-context use, where
// there is nothing to exclude.
func DummyLocker() RWLocker {
	return &dummyLock
}

var dummyLock = dummyLocker{}

type dummyLocker struct{}

func (*dummyLocker) Lock()    {}
func (*dummyLocker) Unlock()  {}
func (*dummyLocker) RUnlock() {}
func (*dummyLocker) RLock()   {}

func (*dummyLocker) String() string {
	return "dummyLocker"
}
