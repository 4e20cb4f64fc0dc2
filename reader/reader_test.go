package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-psl/psl/types"
)

func TestDimacsParsesHeaderAndEdges(t *testing.T) {
	input := "c a comment\np sp 4 3\na 1 2\na 2 3\na 3 4\n"
	g, err := Dimacs(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, []types.Vertex{1}, g.Neighbors(0))
	require.Equal(t, []types.Vertex{3}, g.Neighbors(2))
}

func TestDimacsRejectsMalformedPLine(t *testing.T) {
	_, err := Dimacs(strings.NewReader("p sp 4\n"))
	require.Error(t, err)
}

func TestDimacsRejectsZeroVertexId(t *testing.T) {
	_, err := Dimacs(strings.NewReader("p sp 2 1\na 0 1\n"))
	require.Error(t, err)
}

func TestEdgeListInfersVertexCountAndConvertsOneBased(t *testing.T) {
	g, err := EdgeList(strings.NewReader("1 2\n2 3\n"))
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, []types.Vertex{1}, g.Neighbors(0))
}

func TestSnapIsZeroBasedAndDedups(t *testing.T) {
	g, err := Snap(strings.NewReader("# header comment\n0 1\n0 1\n1 2\n"))
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 2, g.NumEdges())
}

func TestMetisExpandsUndirectedEntriesToBothDirections(t *testing.T) {
	// Triangle 1-2-3 (1-based in the file, 0-based after parsing).
	input := "3 3\n2 3\n1 3\n1 2\n"
	g, err := Metis(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, []types.Vertex{1, 2}, g.Neighbors(0))
	require.Equal(t, []types.Vertex{0, 2}, g.Neighbors(1))
	require.Equal(t, []types.Vertex{0, 1}, g.Neighbors(2))
}

func TestMetisRejectsVertexCountMismatch(t *testing.T) {
	_, err := Metis(strings.NewReader("3 1\n2\n"))
	require.Error(t, err)
}
