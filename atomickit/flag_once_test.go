// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/groundkit/blob/master/LICENSE.md.

package atomickit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOnceFlagSet(t *testing.T) {
	f := OnceFlag{}
	require.False(t, f.IsSet())
	require.True(t, f.Set())
	require.True(t, f.IsSet())
	require.False(t, f.Set())
}

func TestOnceFlagDoSet(t *testing.T) {
	f := OnceFlag{}
	ran := 0
	require.True(t, f.DoSet(func() { ran++ }))
	require.False(t, f.DoSet(func() { ran++ }))
	require.Equal(t, 1, ran)
	require.True(t, f.IsSet())
}

func TestOnceFlagDoSpinConcurrent(t *testing.T) {
	const workers = 16

	f := OnceFlag{}
	winners := Int{}
	ran := Int{}

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if f.DoSpin(func() { ran.Add(1) }) {
				winners.Add(1)
				return
			}
			// losers only return after the winner has finished
			require.True(t, f.IsSet())
		}()
	}
	wg.Wait()

	require.Equal(t, 1, winners.Load())
	require.Equal(t, 1, ran.Load())
}
