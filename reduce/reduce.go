// Package reduce implements the PSL+ graph-reduction preprocessor (C5):
// grouping vertices that share an identical open or closed neighborhood
// into equivalence classes, then collapsing each class down to its
// minimum-id representative before PSL ever sees the graph.
package reduce

import (
	"encoding/binary"

	"github.com/go-psl/psl/graph"
	"github.com/go-psl/psl/types"
)

// Partition labels a vertex's equivalence class:
//   - PartOpenShared: shares its open neighborhood with another vertex.
//   - PartClosedShared: shares its closed neighborhood with another vertex
//     (and did not already share an open neighborhood).
//   - PartUnique: neither neighborhood is shared; the vertex survives
//     reduction unconditionally.
type Partition uint8

const (
	PartOpenShared   Partition = 1
	PartClosedShared Partition = 2
	PartUnique       Partition = 3
)

// Classes holds, for every vertex, its partition label and the minimum-id
// representative of its equivalence class.
type Classes struct {
	Part []Partition
	F    []types.Vertex
}

// Compute groups vertices by identical open neighborhood first, then (for
// vertices left ungrouped) by identical closed neighborhood.
func Compute(g *graph.Graph) *Classes {
	n := g.NumVertices()

	openKey := make([]string, n)
	closedKey := make([]string, n)
	for v := 0; v < n; v++ {
		vv := types.Vertex(v)
		open := g.Neighbors(vv)
		openKey[v] = encodeKey(open)
		closedKey[v] = encodeKey(insertSorted(open, vv))
	}

	openRep, openCount := groupByKey(n, openKey)

	// §4.7's closed-neighborhood grouping runs only over vertices the
	// open-neighborhood pass left unclassified — otherwise a closed-shared
	// representative could itself be a non-representative open-shared
	// vertex, chaining two removed vertices together through a single f[v]
	// that Reconstruct (one remap, not a walk) can't follow.
	remaining := make([]bool, n)
	for v := 0; v < n; v++ {
		remaining[v] = openCount[openKey[v]] < 2
	}
	closedRep, closedCount := groupByKeyFiltered(n, closedKey, remaining)

	part := make([]Partition, n)
	f := make([]types.Vertex, n)
	for v := 0; v < n; v++ {
		if openCount[openKey[v]] >= 2 {
			part[v] = PartOpenShared
			f[v] = openRep[openKey[v]]
		} else if closedCount[closedKey[v]] >= 2 {
			part[v] = PartClosedShared
			f[v] = closedRep[closedKey[v]]
		} else {
			part[v] = PartUnique
			f[v] = types.Vertex(v)
		}
	}

	return &Classes{Part: part, F: f}
}

// Apply removes every non-representative vertex (part < PartUnique and
// f[v] != v) from g, returning the compacted graph and the oldToNew map
// RemoveVertices produces.
func Apply(g *graph.Graph, c *Classes) (*graph.Graph, []types.Vertex) {
	n := g.NumVertices()
	keep := make([]bool, n)
	for v := 0; v < n; v++ {
		keep[v] = c.Part[v] == PartUnique || c.F[v] == types.Vertex(v)
	}
	return g.RemoveVertices(keep)
}

func groupByKey(n int, keys []string) (rep map[string]types.Vertex, count map[string]int) {
	rep = make(map[string]types.Vertex)
	count = make(map[string]int)
	for v := 0; v < n; v++ {
		k := keys[v]
		count[k]++
		if cur, ok := rep[k]; !ok || types.Vertex(v) < cur {
			rep[k] = types.Vertex(v)
		}
	}
	return
}

// groupByKeyFiltered is groupByKey restricted to the vertices where
// include[v] is true.
func groupByKeyFiltered(n int, keys []string, include []bool) (rep map[string]types.Vertex, count map[string]int) {
	rep = make(map[string]types.Vertex)
	count = make(map[string]int)
	for v := 0; v < n; v++ {
		if !include[v] {
			continue
		}
		k := keys[v]
		count[k]++
		if cur, ok := rep[k]; !ok || types.Vertex(v) < cur {
			rep[k] = types.Vertex(v)
		}
	}
	return
}

// insertSorted returns open with v inserted in sorted position, used to
// build a closed neighborhood from an already-sorted open one.
func insertSorted(open []types.Vertex, v types.Vertex) []types.Vertex {
	closed := make([]types.Vertex, 0, len(open)+1)
	inserted := false
	for _, x := range open {
		if !inserted && v < x {
			closed = append(closed, v)
			inserted = true
		}
		if x == v {
			inserted = true // already present; closed == open
		}
		closed = append(closed, x)
	}
	if !inserted {
		closed = append(closed, v)
	}
	return closed
}

// encodeKey serializes a sorted vertex slice into a comparable, hashable
// string usable as a map key.
func encodeKey(vs []types.Vertex) string {
	buf := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	return string(buf)
}
