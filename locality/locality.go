// Package locality implements the PSL* optimization (C6): identifying local
// maxima (vertices all of whose neighbors, in both directions, have a
// smaller id) and precomputing, for every other vertex, the direct and
// two-hop-through-a-local-maximum neighbor sets the PSL engine's expansion
// loop needs in order to skip processing local maxima altogether.
package locality

import (
	"github.com/go-psl/psl/graph"
	"github.com/go-psl/psl/types"
)

// Data holds local maxima and, per direction (types.FWD / types.BWD) and
// vertex id, the N1 (direct non-maximum neighbors) and N2
// (neighbors-of-local-maxima, two hops out, excluding the vertex itself)
// lists the expansion loop folds into its candidate search at distances
// d-1 and d-2 respectively.
type Data struct {
	IsMax []bool
	N1    [2][][]types.Vertex
	N2    [2][][]types.Vertex
}

// Build computes local maxima over fwd/bwd and the N1/N2 neighbor lists for
// every non-maximum vertex.
func Build(fwd, bwd *graph.Graph) *Data {
	n := fwd.NumVertices()
	d := &Data{IsMax: make([]bool, n)}

	for v := 0; v < n; v++ {
		isMax := true
		vv := types.Vertex(v)
		for _, to := range fwd.Neighbors(vv) {
			if to > vv {
				isMax = false
				break
			}
		}
		if isMax {
			for _, to := range bwd.Neighbors(vv) {
				if to > vv {
					isMax = false
					break
				}
			}
		}
		d.IsMax[v] = isMax
	}

	graphs := [2]*graph.Graph{fwd, bwd}
	for _, dir := range []types.Direction{types.FWD, types.BWD} {
		d.N1[dir] = make([][]types.Vertex, n)
		d.N2[dir] = make([][]types.Vertex, n)
		g := graphs[dir]

		for v := 0; v < n; v++ {
			if d.IsMax[v] {
				continue
			}
			vv := types.Vertex(v)

			n2Candidates := make(map[types.Vertex]struct{})
			for _, to := range g.Neighbors(vv) {
				if d.IsMax[to] {
					n2Candidates[to] = struct{}{}
				} else {
					d.N1[dir][v] = append(d.N1[dir][v], to)
				}
			}

			for hub := range n2Candidates {
				for _, to := range g.Neighbors(hub) {
					if to != vv {
						d.N2[dir][v] = append(d.N2[dir][v], to)
					}
				}
			}
		}
	}

	return d
}
