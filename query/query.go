// Package query implements the 2-hop lookup (C8): a sorted-merge
// intersection of a forward and a backward label that answers shortest-path
// distance queries, plus the sub_query pruning variant the PSL engine uses
// internally to decide whether a candidate hub is already dominated.
package query

import (
	"github.com/go-psl/psl/label"
	"github.com/go-psl/psl/types"
)

// Distance returns the shortest-path distance implied by the two labels: the
// minimum, over hubs present in both, of left's distance to the hub plus
// right's distance from the hub. types.Infinity means no common hub exists.
func Distance(left, right *label.Label) types.Distance {
	result := types.Infinity
	i, j := 0, 0
	for i < len(left.Hubs) && j < len(right.Hubs) {
		switch {
		case left.Hubs[i] == right.Hubs[j]:
			if sum := left.Dists[i] + right.Dists[j]; sum < result {
				result = sum
			}
			i++
			j++
		case left.Hubs[i] < right.Hubs[j]:
			i++
		default:
			j++
		}
	}
	return result
}

// SubDistance is Distance restricted to hub entries whose distance on both
// sides is strictly below cutoff. The PSL engine uses it to ask "is there
// already a path of length < cutoff certified by an existing hub", ignoring
// entries written in the current round (which all carry the round's
// distance, not something strictly less than it). The strict inequality on
// both sides is load-bearing: using <= would let a candidate's own
// freshly-written round-d entry participate in pruning itself and block
// legitimate insertions.
func SubDistance(left, right *label.Label, cutoff types.Distance) types.Distance {
	result := types.Infinity
	i, j := 0, 0
	for i < len(left.Hubs) && j < len(right.Hubs) {
		switch {
		case left.Hubs[i] == right.Hubs[j]:
			if left.Dists[i] < cutoff && right.Dists[j] < cutoff {
				if sum := left.Dists[i] + right.Dists[j]; sum < result {
					result = sum
				}
			}
			i++
			j++
		case left.Hubs[i] < right.Hubs[j]:
			i++
		default:
			j++
		}
	}
	return result
}
