// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/groundkit/blob/master/LICENSE.md.

package irqkit

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/insolar/groundkit/synckit"
)

func TestGlobalLoadReturnsPrev(t *testing.T) {
	g := Global[int]{}
	require.False(t, g.IsLoaded())

	prev, hadPrev := g.Load(1)
	require.False(t, hadPrev)
	require.Zero(t, prev)
	require.True(t, g.IsLoaded())

	prev, hadPrev = g.Load(2)
	require.True(t, hadPrev)
	require.Equal(t, 1, prev)
	require.True(t, g.IsLoaded())
}

func TestLocalClaimOnce(t *testing.T) {
	g := Global[string]{}
	g.Load("first")

	l := Local[string]{}
	require.False(t, l.IsClaimed())

	ptr := l.GetOrClaim(&g)
	require.Equal(t, "first", *ptr)
	require.True(t, l.IsClaimed())
	require.False(t, g.IsLoaded())

	// a claimed Local never goes back to the slot
	g.Load("second")
	again := l.GetOrClaim(&g)
	require.Same(t, ptr, again)
	require.Equal(t, "first", *again)
	require.True(t, g.IsLoaded())
}

func TestClaimConsumesSlot(t *testing.T) {
	g := Global[int]{}
	g.Load(0)

	l := Local[int]{}
	counter := l.GetOrClaim(&g)
	*counter++
	*counter++
	*counter++
	require.Equal(t, 3, *l.GetOrClaim(&g))

	// the slot was emptied by the first claim
	fresh := Local[int]{}
	require.PanicsWithError(t, "illegal state", func() {
		fresh.GetOrClaim(&g)
	})
}

func TestClaimBeforeLoadIsFatal(t *testing.T) {
	g := Global[int]{}
	l := Local[int]{}
	require.PanicsWithError(t, "illegal state", func() {
		l.GetOrClaim(&g)
	})
}

type fakeUART struct {
	received int
}

var globalUART Global[fakeUART]

func TestHandoffBetweenContexts(t *testing.T) {
	defer goleak.VerifyNone(t)

	globalUART.Load(fakeUART{})

	done := make(synckit.ClosableSignalChannel)
	received := 0

	go func() {
		defer func() {
			_ = synckit.SafeClose(done)
		}()
		// handler context: sole claimer of globalUART
		var localUART Local[fakeUART]
		for i := 0; i < 3; i++ {
			uart := localUART.GetOrClaim(&globalUART)
			uart.received++
		}
		received = localUART.GetOrClaim(&globalUART).received
	}()

	<-done
	require.Equal(t, 3, received)
	require.False(t, globalUART.IsLoaded())
}
