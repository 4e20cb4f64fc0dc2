package orchestrator

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunCoversEveryIndexExactlyOnce(t *testing.T) {
	n := 97
	p := New(4)

	seen := make([]int32, n)
	p.Run(n, func(_, start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, c := range seen {
		require.Equal(t, int32(1), c, "index %d visited %d times", i, c)
	}
}

func TestRunOnEmptyRangeDoesNothing(t *testing.T) {
	called := false
	New(4).Run(0, func(_, _, _ int) { called = true })
	require.False(t, called)
}

func TestNewFallsBackToHardwareConcurrencyWhenNonPositive(t *testing.T) {
	p := New(0)
	require.Greater(t, p.NumWorkers, 0)
}
