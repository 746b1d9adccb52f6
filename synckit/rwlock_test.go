package synckit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDummyLocker(t *testing.T) {
	l := DummyLocker()

	// pass-through: unbalanced and repeated use must not block or panic
	l.Lock()
	l.Lock()
	l.RLock()
	l.Unlock()
	l.RUnlock()
	l.RUnlock()

	require.Same(t, DummyLocker(), l)
	require.Equal(t, "dummyLocker", fmt.Sprint(l))
}
