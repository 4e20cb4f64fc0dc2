// Package rank builds and validates the canonical-hub permutation (C2) used
// to relabel a graph before PSL labeling: rank[u] < rank[v] means u is the
// more canonical hub. The core itself never constructs or mutates a rank;
// this package is the "construction is external" collaborator spec.md
// defers to, along with the permutation-validity check ReorderByRank
// requires as a precondition.
package rank

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/go-psl/psl/graph"
	"github.com/go-psl/psl/types"
)

// IsPermutation reports whether rank is a bijection of [0, len(rank)).
func IsPermutation(rank []types.Vertex) bool {
	n := len(rank)
	seen := make([]bool, n)
	for _, r := range rank {
		if int(r) >= n || seen[r] {
			return false
		}
		seen[r] = true
	}
	return true
}

// EnsurePermutation returns an error if rank is not a permutation of
// [0, len(rank)) — the precondition graph.ReorderByRank assumes. graph
// can't call IsPermutation itself (rank already imports graph), so callers
// are expected to check this immediately before calling ReorderByRank.
func EnsurePermutation(rank []types.Vertex) error {
	if !IsPermutation(rank) {
		return errors.New("rank is not a permutation of [0, n)")
	}
	return nil
}

// ByDegree builds the default rank: vertices ordered by descending total
// degree (out-degree plus in-degree, counted by a single forward pass over
// the edges), ties broken by a deterministic seeded shuffle so repeated
// runs over the same graph always produce the same rank.
func ByDegree(g *graph.Graph) []types.Vertex {
	n := g.NumVertices()

	degree := make([]int, n)
	g.ForEachEdge(func(from, to types.Vertex) {
		degree[from]++
		degree[to]++
	})

	tiebreak := make([]int, n)
	for i := range tiebreak {
		tiebreak[i] = i
	}
	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(n, func(i, j int) {
		tiebreak[i], tiebreak[j] = tiebreak[j], tiebreak[i]
	})

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		left, right := order[i], order[j]
		if degree[left] != degree[right] {
			return degree[left] > degree[right]
		}
		return tiebreak[left] > tiebreak[right]
	})

	rank := make([]types.Vertex, n)
	for newID, v := range order {
		rank[v] = types.Vertex(newID)
	}
	return rank
}

// Identity returns the rank that leaves vertex ids untouched.
func Identity(n int) []types.Vertex {
	rank := make([]types.Vertex, n)
	for i := range rank {
		rank[i] = types.Vertex(i)
	}
	return rank
}
