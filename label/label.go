// Package label implements the per-vertex, per-direction label lists (C3):
// parallel hub/distance arrays that grow monotonically during a PSL round
// and are expected to be sorted ascending by hub whenever a peer worker
// might read them. The design notes call for dropping the original
// implementation's per-label spinlock: single-writer-per-vertex-per-round
// ownership, enforced by the orchestrator's chunking, makes it redundant.
package label

import (
	"sort"

	"github.com/go-psl/psl/types"
)

// Label is one vertex's hub/distance list for one direction.
type Label struct {
	Hubs  []types.Vertex
	Dists []types.Distance
}

// Add unconditionally appends (hub, dist). Callers are responsible for
// calling Sort (and, during initialization, DedupMin) before the label is
// read by anyone else.
func (l *Label) Add(hub types.Vertex, dist types.Distance) {
	l.Hubs = append(l.Hubs, hub)
	l.Dists = append(l.Dists, dist)
}

// Size returns the number of (hub, dist) pairs.
func (l *Label) Size() int {
	return len(l.Hubs)
}

// Sort restores the ascending-by-hub invariant over both parallel arrays.
func (l *Label) Sort() {
	sort.Sort(byHub(*l))
}

// DedupMin collapses runs of equal hubs (Sort must have run first), keeping
// the minimum distance of each run.
func (l *Label) DedupMin() {
	if len(l.Hubs) == 0 {
		return
	}
	newSize := 1
	for i := 1; i < len(l.Hubs); i++ {
		if l.Hubs[newSize-1] != l.Hubs[i] {
			l.Hubs[newSize] = l.Hubs[i]
			l.Dists[newSize] = l.Dists[i]
			newSize++
		} else if l.Dists[i] < l.Dists[newSize-1] {
			l.Dists[newSize-1] = l.Dists[i]
		}
	}
	l.Hubs = l.Hubs[:newSize]
	l.Dists = l.Dists[:newSize]
}

// Contains reports whether hub appears in the label, via a linear scan.
func (l *Label) Contains(hub types.Vertex) bool {
	for _, h := range l.Hubs {
		if h == hub {
			return true
		}
	}
	return false
}

// ForEach visits every (hub, dist) pair in current order.
func (l *Label) ForEach(visit func(hub types.Vertex, dist types.Distance)) {
	for i, h := range l.Hubs {
		visit(h, l.Dists[i])
	}
}

// Clone returns an independent copy, used to snapshot a label before a
// round mutates it further so later pruning decisions in the same round
// don't see hubs added earlier in that same pass.
func (l *Label) Clone() Label {
	return Label{
		Hubs:  append([]types.Vertex(nil), l.Hubs...),
		Dists: append([]types.Distance(nil), l.Dists...),
	}
}

type byHub Label

func (b byHub) Len() int           { return len(b.Hubs) }
func (b byHub) Less(i, j int) bool { return b.Hubs[i] < b.Hubs[j] }
func (b byHub) Swap(i, j int) {
	b.Hubs[i], b.Hubs[j] = b.Hubs[j], b.Hubs[i]
	b.Dists[i], b.Dists[j] = b.Dists[j], b.Dists[i]
}
