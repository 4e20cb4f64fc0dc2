package label

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-psl/psl/types"
)

func TestSortOrdersParallelArrays(t *testing.T) {
	l := Label{}
	l.Add(3, 2)
	l.Add(1, 5)
	l.Add(2, 1)
	l.Sort()

	require.Equal(t, []types.Vertex{1, 2, 3}, l.Hubs)
	require.Equal(t, []types.Distance{5, 1, 2}, l.Dists)
}

func TestDedupMinKeepsMinimumDistance(t *testing.T) {
	l := Label{}
	l.Add(1, 3)
	l.Add(1, 1)
	l.Add(2, 4)
	l.Sort()
	l.DedupMin()

	require.Equal(t, []types.Vertex{1, 2}, l.Hubs)
	require.Equal(t, []types.Distance{1, 4}, l.Dists)
}

func TestContains(t *testing.T) {
	l := Label{}
	l.Add(5, 0)
	require.True(t, l.Contains(5))
	require.False(t, l.Contains(6))
}

func TestCloneIsIndependent(t *testing.T) {
	l := Label{}
	l.Add(1, 0)
	clone := l.Clone()
	l.Add(2, 1)

	require.Equal(t, 1, clone.Size())
	require.Equal(t, 2, l.Size())
}
