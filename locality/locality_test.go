package locality

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-psl/psl/graph"
	"github.com/go-psl/psl/types"
)

// Path 0->1->2->3: vertex 3 is a sink, so all of its neighbors (its sole
// in-neighbor, 2) have smaller ids, making it the path's only local maximum.
func buildPathGraph() (*graph.Graph, *graph.Graph) {
	fwd := graph.FromEdgeList(4, [][2]types.Vertex{{0, 1}, {1, 2}, {2, 3}})
	return fwd, fwd.Reverse()
}

func TestLocalMaximaOnPath(t *testing.T) {
	fwd, bwd := buildPathGraph()
	d := Build(fwd, bwd)

	require.True(t, d.IsMax[3])
	require.False(t, d.IsMax[0])
	require.False(t, d.IsMax[1])
	require.False(t, d.IsMax[2])
}

func TestN1ContainsOnlyNonMaximumNeighbors(t *testing.T) {
	fwd, bwd := buildPathGraph()
	d := Build(fwd, bwd)

	// vertex 2's only forward neighbor is 3, a local maximum, so N1[FWD][2]
	// must be empty and N2[FWD][2] must contain 3's out-neighbors (none).
	require.Empty(t, d.N1[types.FWD][2])
	require.Empty(t, d.N2[types.FWD][2])

	// vertex 1's forward neighbor is 2, which is not a maximum.
	require.Equal(t, []types.Vertex{2}, d.N1[types.FWD][1])
}
