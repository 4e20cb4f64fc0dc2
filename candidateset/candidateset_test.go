package candidateset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-psl/psl/types"
)

func TestAddIsIdempotentWithinGeneration(t *testing.T) {
	s := New(10)
	s.Add(3)
	s.Add(3)
	s.Add(5)

	require.Equal(t, []types.Vertex{3, 5}, s.Storage())
}

func TestClearResetsStorageAndAllowsReAdd(t *testing.T) {
	s := New(10)
	s.Add(3)
	s.Clear()

	require.Empty(t, s.Storage())

	s.Add(3)
	require.Equal(t, []types.Vertex{3}, s.Storage())
}

func TestGenerationWraparoundResetsTimestamps(t *testing.T) {
	s := New(4)
	s.generation = ^uint32(0) // force the next Clear to wrap to 0

	s.Add(1)
	s.Clear()

	require.Equal(t, uint32(1), s.generation)
	for _, ts := range s.timestamps {
		require.Equal(t, uint32(0), ts)
	}

	s.Add(1)
	require.Equal(t, []types.Vertex{1}, s.Storage())
}
