// Package candidateset implements the generation-timestamped sparse set
// (C4) each PSL worker uses to collect candidate hubs for one vertex/
// direction without touching O(n) memory on every Clear. One Set belongs to
// exactly one worker and is never shared.
package candidateset

import "github.com/go-psl/psl/types"

// Set is a fixed-capacity, append-only sparse set over [0, n).
type Set struct {
	timestamps []uint32
	storage    []types.Vertex
	generation uint32
}

// New allocates a Set sized for vertex ids in [0, n).
func New(n int) *Set {
	return &Set{
		timestamps: make([]uint32, n),
		generation: 1,
	}
}

// Add inserts x, appending it to the storage list the first time it is seen
// in the current generation; later Adds of the same x within the same
// generation are no-ops.
func (s *Set) Add(x types.Vertex) {
	if s.timestamps[x] != s.generation {
		s.timestamps[x] = s.generation
		s.storage = append(s.storage, x)
	}
}

// Clear empties the storage list in O(1) by advancing the generation. If
// the generation counter wraps to 0, the timestamp array is zeroed and the
// generation reset to 1 so stale marks from a previous wraparound can never
// be mistaken for the current one.
func (s *Set) Clear() {
	s.storage = s.storage[:0]
	s.generation++
	if s.generation == 0 {
		for i := range s.timestamps {
			s.timestamps[i] = 0
		}
		s.generation = 1
	}
}

// Storage returns the vertices added since the last Clear, in insertion
// order. The returned slice aliases the Set's backing array.
func (s *Set) Storage() []types.Vertex {
	return s.storage
}
