// Package engine implements the PSL iterative layered expansion (C7): the
// round-by-round growth of every vertex's forward and backward labels,
// pruned by sub-query dominance against labels already fixed in earlier
// rounds. Run implements plain PSL; RunWithLocality implements PSL* by
// skipping local maxima and walking their precomputed N1/N2 neighbor lists
// instead of the graph directly.
//
// Both share the same concurrency discipline: each round, the orchestrator
// hands each worker a contiguous chunk of vertices; a worker processes
// FWD-then-BWD for its whole chunk before the round's join barrier, so no
// worker ever observes a label entry a peer wrote earlier in the same
// round (graphs/rank are read-only; labels[dir][v] is single-writer per
// round, owned by whichever worker's chunk contains v).
package engine

import (
	"sort"
	"sync/atomic"

	"github.com/go-psl/psl/candidateset"
	"github.com/go-psl/psl/graph"
	"github.com/go-psl/psl/label"
	"github.com/go-psl/psl/locality"
	"github.com/go-psl/psl/orchestrator"
	"github.com/go-psl/psl/query"
	"github.com/go-psl/psl/types"
)

// Labels is the engine's output: the forward and backward label list for
// every vertex.
type Labels struct {
	FWD []label.Label
	BWD []label.Label
}

// Get returns the label for (dir, v).
func (l *Labels) Get(dir types.Direction, v types.Vertex) *label.Label {
	if dir == types.FWD {
		return &l.FWD[v]
	}
	return &l.BWD[v]
}

func newLabels(n int) *Labels {
	return &Labels{
		FWD: make([]label.Label, n),
		BWD: make([]label.Label, n),
	}
}

// graphPair indexes the forward/backward graph by direction, mirroring the
// labels array so processDirection can look either up uniformly.
type graphPair [2]*graph.Graph

// Run computes the full 2-hop hub labeling of fwd (with bwd its transpose,
// both already rank-ordered so vertex id doubles as rank) using pool's
// worker count.
func Run(fwd, bwd *graph.Graph, pool *orchestrator.Pool) *Labels {
	n := fwd.NumVertices()
	labels := newLabels(n)
	graphs := graphPair{fwd, bwd}

	pool.Run(n, func(_, start, end int) {
		for v := start; v < end; v++ {
			vv := types.Vertex(v)
			labels.FWD[v] = label.Label{}
			labels.BWD[v] = label.Label{}
			labels.FWD[v].Add(vv, 0)
			labels.BWD[v].Add(vv, 0)
		}
	})

	fwd.ForEachEdge(func(u, v types.Vertex) {
		if u < v {
			labels.BWD[v].Add(u, 1)
		} else {
			labels.FWD[u].Add(v, 1)
		}
	})

	pool.Run(n, func(_, start, end int) {
		for v := start; v < end; v++ {
			labels.FWD[v].Sort()
			labels.FWD[v].DedupMin()
			labels.BWD[v].Sort()
			labels.BWD[v].DedupMin()
		}
	})

	candidates := make([]*candidateset.Set, pool.NumWorkers)
	for i := range candidates {
		candidates[i] = candidateset.New(n)
	}

	d := types.Distance(2)
	for {
		var exploreNewRound atomic.Bool

		pool.Run(n, func(workerID, start, end int) {
			cs := candidates[workerID]
			for v := start; v < end; v++ {
				u := types.Vertex(v)
				processDirection(types.FWD, u, d, graphs, labels, cs, &exploreNewRound)
				processDirection(types.BWD, u, d, graphs, labels, cs, &exploreNewRound)
			}
		})

		if !exploreNewRound.Load() {
			return labels
		}
		d++
	}
}

// processDirection implements one vertex's one-direction round-d step: scan
// every out-neighbor of u in G_dir for hubs reachable at distance d-1, then
// admit each surviving, undominated candidate hub into L_dir(u) at distance
// d.
func processDirection(dir types.Direction, u types.Vertex, d types.Distance,
	graphs graphPair, labels *Labels, cs *candidateset.Set, exploreNewRound *atomic.Bool) {
	cs.Clear()
	for _, x := range graphs[dir].Neighbors(u) {
		labels.Get(dir, x).ForEach(func(w types.Vertex, dist types.Distance) {
			if dist == d-1 {
				cs.Add(w)
			}
		})
	}

	snapshot := labels.Get(dir, u).Clone()
	other := dir.Other()

	self := labels.Get(dir, u)
	for _, w := range cs.Storage() {
		if u <= w {
			continue
		}
		if query.SubDistance(labels.Get(other, w), &snapshot, d) <= d {
			continue
		}
		self.Add(w, d)
		exploreNewRound.Store(true)
	}

	self.Sort()
}

// RunWithLocality computes the same labeling as Run but skips local maxima
// (loc.IsMax) as expansion roots: only non-maximum vertices are chunked
// across rounds, and their candidate search walks loc's precomputed N1
// (direct non-maximum neighbors, checked at distance d-1) and N2
// (neighbors-of-a-local-maximum, checked at distance d-2) instead of the
// graph directly. Local maxima never run through the round loop at all;
// their labels are filled in afterward by reconstructLocalMaxima from their
// now-final neighbors, so query results are identical to Run's.
func RunWithLocality(fwd, bwd *graph.Graph, loc *locality.Data, pool *orchestrator.Pool) *Labels {
	n := fwd.NumVertices()
	labels := newLabels(n)
	graphs := graphPair{fwd, bwd}

	var roots []types.Vertex
	for v := 0; v < n; v++ {
		if !loc.IsMax[v] {
			roots = append(roots, types.Vertex(v))
		}
	}

	for _, u := range roots {
		labels.FWD[u].Add(u, 0)
		labels.BWD[u].Add(u, 0)
	}

	fwd.ForEachEdge(func(u, v types.Vertex) {
		if loc.IsMax[u] || loc.IsMax[v] {
			return
		}
		if u < v {
			labels.BWD[v].Add(u, 1)
		} else {
			labels.FWD[u].Add(v, 1)
		}
	})

	for _, u := range roots {
		labels.FWD[u].Sort()
		labels.FWD[u].DedupMin()
		labels.BWD[u].Sort()
		labels.BWD[u].DedupMin()
	}

	candidates := make([]*candidateset.Set, pool.NumWorkers)
	for i := range candidates {
		candidates[i] = candidateset.New(n)
	}

	d := types.Distance(2)
	for {
		var exploreNewRound atomic.Bool

		pool.Run(len(roots), func(workerID, start, end int) {
			cs := candidates[workerID]
			for i := start; i < end; i++ {
				u := roots[i]
				processDirectionLocality(types.FWD, u, d, loc, labels, cs, &exploreNewRound)
				processDirectionLocality(types.BWD, u, d, loc, labels, cs, &exploreNewRound)
			}
		})

		if !exploreNewRound.Load() {
			break
		}
		d++
	}

	reconstructLocalMaxima(graphs, loc.IsMax, labels)
	return labels
}

// processDirectionLocality is processDirection's PSL* counterpart: the
// candidate scan walks loc's N1 list at distance d-1 (in place of every
// graph out-neighbor) and loc's N2 list at distance d-2 (the two-hop
// shortcut through a skipped local maximum), instead of walking
// graphs[dir].Neighbors(u) at distance d-1 alone.
func processDirectionLocality(dir types.Direction, u types.Vertex, d types.Distance,
	loc *locality.Data, labels *Labels, cs *candidateset.Set, exploreNewRound *atomic.Bool) {
	cs.Clear()
	for _, x := range loc.N1[dir][u] {
		labels.Get(dir, x).ForEach(func(w types.Vertex, dist types.Distance) {
			if dist == d-1 {
				cs.Add(w)
			}
		})
	}
	for _, x := range loc.N2[dir][u] {
		labels.Get(dir, x).ForEach(func(w types.Vertex, dist types.Distance) {
			if dist == d-2 {
				cs.Add(w)
			}
		})
	}

	snapshot := labels.Get(dir, u).Clone()
	other := dir.Other()

	self := labels.Get(dir, u)
	for _, w := range cs.Storage() {
		if u <= w {
			continue
		}
		if query.SubDistance(labels.Get(other, w), &snapshot, d) <= d {
			continue
		}
		self.Add(w, d)
		exploreNewRound.Store(true)
	}

	self.Sort()
}

// reconstructLocalMaxima fills in the label of every skipped local maximum
// from its direct neighbors' now-final labels. A local maximum's neighbors
// are, by definition, never themselves local maxima (two adjacent vertices
// can't both have every neighbor's id smaller than their own), so iterating
// maxima in ascending id order guarantees every label this function reads
// is already complete — either a root that ran the full round loop, or an
// earlier, smaller-id local maximum already reconstructed in this same
// pass.
func reconstructLocalMaxima(graphs graphPair, isMax []bool, labels *Labels) {
	type candidate struct {
		hub  types.Vertex
		dist types.Distance
	}

	for v, max := range isMax {
		if !max {
			continue
		}
		u := types.Vertex(v)

		for _, dir := range [2]types.Direction{types.FWD, types.BWD} {
			self := labels.Get(dir, u)
			self.Add(u, 0)
			other := dir.Other()

			var candidates []candidate
			for _, x := range graphs[dir].Neighbors(u) {
				labels.Get(dir, x).ForEach(func(w types.Vertex, dist types.Distance) {
					if nd := dist + 1; nd < types.Infinity {
						candidates = append(candidates, candidate{w, nd})
					}
				})
			}
			sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

			for _, c := range candidates {
				if u <= c.hub || self.Contains(c.hub) {
					continue
				}
				snapshot := self.Clone()
				if query.SubDistance(labels.Get(other, c.hub), &snapshot, c.dist) <= c.dist {
					continue
				}
				self.Add(c.hub, c.dist)
			}
			self.Sort()
		}
	}
}
