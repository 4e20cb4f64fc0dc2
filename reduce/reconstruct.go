package reduce

import (
	"github.com/go-psl/psl/label"
	"github.com/go-psl/psl/query"
	"github.com/go-psl/psl/types"
)

// Reconstruct answers distance(s, t) in the pre-reduction vertex numbering,
// given labels computed over the graph reduce.Apply produced. s and t are
// remapped through their representative (classes.F) and then through
// oldToNew into the reduced graph's numbering before querying; the result
// is adjusted by the 0-or-1-hop bridge the removed endpoint's equivalence
// class implies.
//
// A class formed by a shared OPEN neighborhood (PartOpenShared) does not
// guarantee its members are adjacent to their representative at all, but it
// does guarantee every member's out-neighbor set is identical to the
// representative's: any shortest path leaving a non-representative member
// has an equally short counterpart leaving the representative, so
// substituting one for the other costs nothing once the target lies outside
// the class. A class formed by a shared CLOSED neighborhood
// (PartClosedShared) additionally guarantees the member and its
// representative are joined by a real edge in both directions, which only
// matters when the query is between two members of the same class — outside
// it, the same zero-cost substitution argument applies.
func Reconstruct(classes *Classes, oldToNew []types.Vertex, fwd, bwd []label.Label, s, t types.Vertex) types.Distance {
	if s == t {
		return 0
	}

	sRep, tRep := classes.F[s], classes.F[t]
	if sRep == tRep {
		if classes.Part[s] == PartClosedShared || classes.Part[t] == PartClosedShared {
			return 1
		}
		// Both are open-neighborhood twins of the same representative with
		// no recorded edge between them; their mutual distance can't be
		// recovered from the reduced labels, so fall back to the
		// representative's self-distance.
		newID := oldToNew[sRep]
		if newID == types.NoVertex {
			return types.Infinity
		}
		return query.Distance(&fwd[newID], &bwd[newID])
	}

	sNew, tNew := oldToNew[sRep], oldToNew[tRep]
	if sNew == types.NoVertex || tNew == types.NoVertex {
		return types.Infinity
	}
	return query.Distance(&fwd[sNew], &bwd[tNew])
}
