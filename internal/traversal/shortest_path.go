package traversal

import (
	"github.com/dd0wney/graphaccel/internal/graphstore"
)

// edgeStep identifies a single directed traversal step by the two node ids
// involved, independent of which adjacency list it was found through. Yen's
// algorithm uses this to exclude a previously-accepted path's next hop.
type edgeStep struct {
	from, to graphstore.NodeID
}

// searchConstraints bounds a BFS shortest-path search: nodes in excludedNodes
// may not be visited at all, and hops listed in excludedEdges may not be
// taken (regardless of which adjacency list offers them). Both are nil for
// an unconstrained search.
type searchConstraints struct {
	excludedNodes map[graphstore.NodeID]bool
	excludedEdges map[edgeStep]bool
}

// ShortestPath finds the unweighted shortest path from start to target,
// respecting dir and minConfidence, within maxHops. It returns (nil, false)
// if either endpoint is unknown, or no path exists within the hop budget.
// start == target always succeeds with a single-step path, even at
// maxHops == 0.
func ShortestPath(store *graphstore.Store, start, target graphstore.NodeID, maxHops uint32, dir graphstore.TraversalDirection, minConfidence *float32) (Path, bool) {
	if _, ok := store.Node(start); !ok {
		return nil, false
	}
	if _, ok := store.Node(target); !ok {
		return nil, false
	}
	if start == target {
		info, _ := store.Node(start)
		return Path{{NodeID: start, Label: info.Label, AppID: info.AppID, HasAppID: info.HasAppID}}, true
	}
	if maxHops == 0 {
		return nil, false
	}

	return constrainedShortestPath(store, start, target, maxHops, dir, minConfidence, searchConstraints{})
}

// constrainedShortestPath is the shared BFS engine backing both ShortestPath
// and Yen's spur search (yen.go): a standard parent-pointer BFS that stops
// as soon as target is discovered, bounded by maxHops, and skipping any
// node/edge named in constraints.
func constrainedShortestPath(store *graphstore.Store, start, target graphstore.NodeID, maxHops uint32, dir graphstore.TraversalDirection, minConfidence *float32, constraints searchConstraints) (Path, bool) {
	visited := map[graphstore.NodeID]visitEntry{start: {parent: start}}
	queue := []frontierEntry{{id: start, depth: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.depth == maxHops {
			continue
		}

		it := newNeighborIter(store, cur.id, dir, minConfidence)
		for {
			step, ok := it.Next()
			if !ok {
				break
			}
			to := step.Edge.Other

			if constraints.excludedNodes != nil && constraints.excludedNodes[to] {
				continue
			}
			if constraints.excludedEdges != nil && constraints.excludedEdges[edgeStep{from: cur.id, to: to}] {
				continue
			}
			if _, seen := visited[to]; seen {
				continue
			}

			visited[to] = visitEntry{
				parent:    cur.id,
				relType:   step.Edge.RelType,
				direction: step.Direction,
			}

			if to == target {
				return reconstructPathSteps(store, visited, start, target), true
			}

			queue = append(queue, frontierEntry{id: to, depth: cur.depth + 1})
		}
	}

	return nil, false
}
