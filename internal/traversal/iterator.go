// Package traversal implements the graph-accel traversal algorithms: fused
// neighbor iteration, BFS neighborhood, parent-pointer path reconstruction,
// unweighted shortest path, Yen's k-shortest simple paths, reachable
// subgraph extraction, and degree centrality. All of it runs against an
// immutable *graphstore.Store and never mutates it.
package traversal

import (
	"math"

	"github.com/dd0wney/graphaccel/internal/graphstore"
)

// Step is one edge produced by a neighbor iteration, tagged with which
// adjacency list it came from.
type Step struct {
	Edge      graphstore.EdgeRecord
	Direction graphstore.Direction
}

// neighborIter is a non-allocating fused iterator over a node's outgoing
// and/or incoming adjacency, filtered by a confidence threshold. It is a
// concrete state machine (not an interface-backed generator) so the hot
// BFS/Yen inner loop avoids virtual dispatch per element.
type neighborIter struct {
	out, in       []graphstore.EdgeRecord
	outIdx, inIdx int
	minConfidence float32
	hasThreshold  bool
	phase         int // 0 = outgoing, 1 = incoming, 2 = done
}

// newNeighborIter builds an iterator over store's adjacency for id per dir,
// filtered by minConfidence (pass nil for no threshold).
func newNeighborIter(store *graphstore.Store, id graphstore.NodeID, dir graphstore.TraversalDirection, minConfidence *float32) *neighborIter {
	it := &neighborIter{}
	if minConfidence != nil {
		it.minConfidence = *minConfidence
		it.hasThreshold = true
	}

	switch dir {
	case graphstore.TraverseOutgoing:
		it.out = store.NeighborsOut(id)
		it.phase = 0
	case graphstore.TraverseIncoming:
		it.in = store.NeighborsIn(id)
		it.phase = 1
	default: // TraverseBoth
		it.out = store.NeighborsOut(id)
		it.in = store.NeighborsIn(id)
		it.phase = 0
	}
	return it
}

// passes reports whether an edge's confidence satisfies the filter: no
// threshold configured, the confidence is the NaN "not loaded" sentinel
// (always passes), or confidence >= threshold.
func (it *neighborIter) passes(confidence float32) bool {
	if !it.hasThreshold {
		return true
	}
	if math.IsNaN(float64(confidence)) {
		return true
	}
	return confidence >= it.minConfidence
}

// Next returns the next (edge, direction) pair passing the confidence
// filter, in outgoing-then-incoming order, or ok=false when exhausted.
func (it *neighborIter) Next() (Step, bool) {
	for it.phase == 0 {
		if it.outIdx >= len(it.out) {
			it.phase = 1
			break
		}
		e := it.out[it.outIdx]
		it.outIdx++
		if it.passes(e.Confidence) {
			return Step{Edge: e, Direction: graphstore.DirectionOutgoing}, true
		}
	}
	for it.phase == 1 {
		if it.inIdx >= len(it.in) {
			it.phase = 2
			return Step{}, false
		}
		e := it.in[it.inIdx]
		it.inIdx++
		if it.passes(e.Confidence) {
			return Step{Edge: e, Direction: graphstore.DirectionIncoming}, true
		}
	}
	return Step{}, false
}
