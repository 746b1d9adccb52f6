// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/groundkit/blob/master/LICENSE.md.

package synckit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithCriticalMutualExclusion(t *testing.T) {
	const workers = 8
	const perWorker = 10000

	counter := 0 // plain int, protected by the critical section only
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				WithCritical(func() {
					counter++
				})
			}
		}()
	}
	wg.Wait()
	require.Equal(t, workers*perWorker, counter)
}

func TestCriticalSectionIsolation(t *testing.T) {
	// independent instances do not exclude each other
	a := NativeCriticalSection()
	b := NativeCriticalSection()

	entered := false
	a.With(func() {
		b.With(func() {
			entered = true
		})
	})
	require.True(t, entered)
}

func TestDummyCriticalSection(t *testing.T) {
	cs := DummyCriticalSection()

	// single-context: no exclusion, hence safely reentrant
	counter := 0
	cs.With(func() {
		cs.With(func() {
			counter++
		})
		counter++
	})
	require.Equal(t, 2, counter)
}

func TestSetCriticalSection(t *testing.T) {
	require.Panics(t, func() {
		SetCriticalSection(nil)
	})

	SetCriticalSection(NativeCriticalSection())
	require.Panics(t, func() {
		SetCriticalSection(NativeCriticalSection())
	})

	// the override serves subsequent critical sections
	ran := false
	WithCritical(func() {
		ran = true
	})
	require.True(t, ran)
}
