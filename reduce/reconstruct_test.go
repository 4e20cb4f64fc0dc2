package reduce

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-psl/psl/engine"
	"github.com/go-psl/psl/graph"
	"github.com/go-psl/psl/orchestrator"
	"github.com/go-psl/psl/types"
)

// TestReconstructAfterOpenSharedReduction replays S5: vertices 2 and 3 share
// an open neighborhood and 3 is removed in favor of representative 2.
// Distances to a vertex outside the class (4) must come out identical for
// both the representative and the removed twin, per §4.9.
func TestReconstructAfterOpenSharedReduction(t *testing.T) {
	g := buildS5()
	classes := Compute(g)
	compacted, oldToNew := Apply(g, classes)
	bwd := compacted.Reverse()

	labels := engine.Run(compacted, bwd, orchestrator.New(1))

	require.Equal(t, types.Distance(1), Reconstruct(classes, oldToNew, labels.FWD, labels.BWD, 2, 4))
	require.Equal(t, types.Distance(1), Reconstruct(classes, oldToNew, labels.FWD, labels.BWD, 3, 4))
}

// TestReconstructWithinClosedSharedClass covers the other branch: two
// members of the same closed-neighborhood class are, by construction, joined
// by a real edge, so their reconstructed mutual distance is exactly 1 even
// though the reduced graph carries no label for the removed twin.
func TestReconstructWithinClosedSharedClass(t *testing.T) {
	// 0 and 1 point at each other and share neighbor 2; their open
	// neighborhoods differ ({1,2} vs {0,2}) but closed neighborhoods
	// coincide ({0,1,2}), making them closed-shared twins. 1 is removed.
	g := buildClosedTwins()
	classes := Compute(g)
	compacted, oldToNew := Apply(g, classes)
	bwd := compacted.Reverse()

	labels := engine.Run(compacted, bwd, orchestrator.New(1))

	require.Equal(t, PartClosedShared, classes.Part[1])
	require.Equal(t, types.Vertex(0), classes.F[1])
	require.Equal(t, types.Distance(1), Reconstruct(classes, oldToNew, labels.FWD, labels.BWD, 1, 0))
	require.Equal(t, types.Distance(0), Reconstruct(classes, oldToNew, labels.FWD, labels.BWD, 1, 1))
	// 2 is outside the class; distance from the removed twin must match the
	// distance from its representative.
	require.Equal(t, types.Distance(1), Reconstruct(classes, oldToNew, labels.FWD, labels.BWD, 1, 2))
}

// TestReconstructWhenClosedPoolExcludesOpenSharedMembers covers the
// interaction §4.7 requires: the closed-neighborhood pass only runs over
// vertices the open-neighborhood pass left unclassified, so a closed-shared
// representative can never itself be a removed open-shared member. 0 and 1
// share the open neighborhood {2}; 2's own neighborhood ({1}) is unique
// among the remaining pool, so 2 must survive reduction on its own.
func TestReconstructWhenClosedPoolExcludesOpenSharedMembers(t *testing.T) {
	g := graph.FromEdgeList(3, [][2]types.Vertex{{0, 2}, {1, 2}, {2, 1}})
	classes := Compute(g)

	require.Equal(t, PartOpenShared, classes.Part[0])
	require.Equal(t, PartOpenShared, classes.Part[1])
	require.Equal(t, types.Vertex(0), classes.F[0])
	require.Equal(t, types.Vertex(0), classes.F[1])
	require.Equal(t, PartUnique, classes.Part[2])

	compacted, oldToNew := Apply(g, classes)
	require.NotEqual(t, types.NoVertex, oldToNew[2])
	bwd := compacted.Reverse()

	labels := engine.Run(compacted, bwd, orchestrator.New(1))

	require.Equal(t, types.Distance(1), Reconstruct(classes, oldToNew, labels.FWD, labels.BWD, 0, 2))
}
