// Package graph holds the compact, immutable CSR-style adjacency structure
// (C1 in the design) that every other component reads but never mutates in
// place. A Graph is built once from an edge list (sorted and deduplicated
// during construction) and from then on only produces new Graphs (Reverse, ReorderByRank,
// RemoveVertices) rather than editing itself.
package graph

import (
	"sort"

	"github.com/go-psl/psl/types"
)

// Graph is a forward (or backward) adjacency list stored as two parallel
// arrays: Off[v]..Off[v+1] indexes into To, which holds v's neighbors in
// strictly ascending, duplicate-free order.
type Graph struct {
	Off []uint64
	To  []types.Vertex
}

// NumVertices returns n, the number of vertices in [0, n).
func (g *Graph) NumVertices() int {
	if len(g.Off) == 0 {
		return 0
	}
	return len(g.Off) - 1
}

// NumEdges returns m, the total number of directed arcs.
func (g *Graph) NumEdges() int {
	return len(g.To)
}

// Degree returns the out-degree of v.
func (g *Graph) Degree(v types.Vertex) int {
	return int(g.Off[v+1] - g.Off[v])
}

// Neighbors returns the sorted neighbor slice of v. Callers must not mutate
// the returned slice; it aliases the graph's backing array.
func (g *Graph) Neighbors(v types.Vertex) []types.Vertex {
	return g.To[g.Off[v]:g.Off[v+1]]
}

// ForEachEdge visits every (from, to) arc in vertex-then-neighbor order.
func (g *Graph) ForEachEdge(visit func(from, to types.Vertex)) {
	n := g.NumVertices()
	for v := 0; v < n; v++ {
		fv := types.Vertex(v)
		for _, to := range g.Neighbors(fv) {
			visit(fv, to)
		}
	}
}

// FromEdgeList builds a CSR graph over n vertices from a set of (possibly
// unsorted, possibly duplicate) directed edges. Readers (dimacs/edgelist/
// snap/metis) all funnel through this.
func FromEdgeList(n int, edges [][2]types.Vertex) *Graph {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	off := make([]uint64, n+1)
	to := make([]types.Vertex, 0, len(edges))

	idx := 0
	for v := 0; v < n; v++ {
		off[v] = uint64(len(to))
		for idx < len(edges) && edges[idx][0] == types.Vertex(v) {
			if uint64(len(to)) == off[v] || to[len(to)-1] != edges[idx][1] {
				to = append(to, edges[idx][1])
			}
			idx++
		}
	}
	off[n] = uint64(len(to))

	return &Graph{Off: off, To: to}
}

// Reverse returns the transpose graph: an arc u->v in g becomes v->u.
func (g *Graph) Reverse() *Graph {
	n := g.NumVertices()
	newOff := make([]uint64, n+1)

	g.ForEachEdge(func(_, to types.Vertex) {
		newOff[to+1]++
	})
	for v := 1; v <= n; v++ {
		newOff[v] += newOff[v-1]
	}

	newTo := make([]types.Vertex, g.NumEdges())
	cursor := append([]uint64(nil), newOff...)
	g.ForEachEdge(func(from, to types.Vertex) {
		newTo[cursor[to]] = from
		cursor[to]++
	})

	for v := 0; v < n; v++ {
		sort.Slice(newTo[newOff[v]:newOff[v+1]], func(i, j int) bool {
			base := newTo[newOff[v]:newOff[v+1]]
			return base[i] < base[j]
		})
	}

	return &Graph{Off: newOff, To: newTo}
}

// ReorderByRank produces a new graph in which vertex rank[v] carries v's old
// neighborhood, with every neighbor image relabelled through rank and each
// adjacency list re-sorted ascending. rank must be a permutation of
// [0, n).
func (g *Graph) ReorderByRank(rank []types.Vertex) *Graph {
	n := g.NumVertices()
	newOff := make([]uint64, n+1)

	for v := 0; v < n; v++ {
		newOff[rank[v]+1] += uint64(g.Degree(types.Vertex(v)))
	}
	for v := 1; v <= n; v++ {
		newOff[v] += newOff[v-1]
	}

	placed := make([]uint64, n)
	newTo := make([]types.Vertex, g.NumEdges())

	for v := 0; v < n; v++ {
		rv := rank[v]
		base := newOff[rv]
		for _, to := range g.Neighbors(types.Vertex(v)) {
			newTo[base+placed[rv]] = rank[to]
			placed[rv]++
		}
	}

	for v := 0; v < n; v++ {
		seg := newTo[newOff[v]:newOff[v+1]]
		sort.Slice(seg, func(i, j int) bool { return seg[i] < seg[j] })
	}

	return &Graph{Off: newOff, To: newTo}
}

// RemoveVertices keeps only the vertices for which keep[v] is true,
// renumbers them densely and preserving relative order, and drops any edge
// touching a removed vertex. It returns the compacted graph and the
// oldToNew map (types.NoVertex for removed vertices).
func (g *Graph) RemoveVertices(keep []bool) (*Graph, []types.Vertex) {
	n := g.NumVertices()
	oldToNew := make([]types.Vertex, n)
	newN := 0
	for v := 0; v < n; v++ {
		if keep[v] {
			oldToNew[v] = types.Vertex(newN)
			newN++
		} else {
			oldToNew[v] = types.NoVertex
		}
	}

	newOff := make([]uint64, newN+1)
	newEdgeCount := uint64(0)
	for v := 0; v < n; v++ {
		if !keep[v] {
			continue
		}
		newOff[oldToNew[v]] = newEdgeCount
		for _, to := range g.Neighbors(types.Vertex(v)) {
			if keep[to] {
				newEdgeCount++
			}
		}
	}
	newOff[newN] = newEdgeCount

	newTo := make([]types.Vertex, newEdgeCount)
	cursor := uint64(0)
	for v := 0; v < n; v++ {
		if !keep[v] {
			continue
		}
		for _, to := range g.Neighbors(types.Vertex(v)) {
			if keep[to] {
				newTo[cursor] = oldToNew[to]
				cursor++
			}
		}
	}

	return &Graph{Off: newOff, To: newTo}, oldToNew
}
