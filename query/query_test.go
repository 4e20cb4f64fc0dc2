package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-psl/psl/label"
	"github.com/go-psl/psl/types"
)

func mk(pairs ...int) *label.Label {
	l := &label.Label{}
	for i := 0; i < len(pairs); i += 2 {
		l.Add(types.Vertex(pairs[i]), types.Distance(pairs[i+1]))
	}
	return l
}

func TestDistancePicksMinimumOverSharedHubs(t *testing.T) {
	left := mk(0, 3, 2, 1, 5, 4)
	right := mk(0, 1, 2, 5, 5, 0)

	require.Equal(t, types.Distance(4), Distance(left, right)) // hub 0: 3+1
}

func TestDistanceDisjointIsInfinity(t *testing.T) {
	left := mk(0, 1)
	right := mk(1, 1)
	require.Equal(t, types.Infinity, Distance(left, right))
}

func TestSubDistanceIgnoresEntriesAtOrAboveCutoff(t *testing.T) {
	left := mk(0, 3) // dist 3 >= cutoff 3, excluded
	right := mk(0, 1)

	require.Equal(t, types.Infinity, SubDistance(left, right, 3))
	require.Equal(t, types.Distance(4), SubDistance(left, right, 4))
}
