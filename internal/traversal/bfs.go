package traversal

import (
	"github.com/dd0wney/graphaccel/internal/graphstore"
)

// visitEntry is the parent-pointer record kept per visited node during BFS.
// Storing this instead of cloning a growing path slice at each frontier
// node keeps BFS O(V+E): paths are reconstructed lazily, only for the nodes
// that end up in the result.
type visitEntry struct {
	distance  uint32
	parent    graphstore.NodeID
	relType   uint16
	direction graphstore.Direction
}

// NeighborResult is one node discovered by BFSNeighborhood.
type NeighborResult struct {
	NodeID         graphstore.NodeID
	Label          string
	AppID          string
	HasAppID       bool
	Distance       uint32
	PathTypes      []string
	PathDirections []graphstore.Direction
}

// TraversalResult is the output of BFSNeighborhood.
type TraversalResult struct {
	Neighbors    []NeighborResult
	NodesVisited int
}

// BFSNeighborhood finds all nodes reachable from start within maxDepth hops,
// per the direction and confidence filters, pruning with a visited set so
// each node is discovered at most once, at its minimum distance. Neighbors
// are returned in the order BFS discovered them.
func BFSNeighborhood(store *graphstore.Store, start graphstore.NodeID, maxDepth uint32, dir graphstore.TraversalDirection, minConfidence *float32) TraversalResult {
	if _, ok := store.Node(start); !ok {
		return TraversalResult{}
	}

	visited := map[graphstore.NodeID]visitEntry{start: {distance: 0, parent: start}}
	var order []graphstore.NodeID
	queue := []frontierEntry{{id: start, depth: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.depth == maxDepth {
			continue
		}

		it := newNeighborIter(store, cur.id, dir, minConfidence)
		for {
			step, ok := it.Next()
			if !ok {
				break
			}
			target := step.Edge.Other
			if _, seen := visited[target]; seen {
				continue
			}
			visited[target] = visitEntry{
				distance:  cur.depth + 1,
				parent:    cur.id,
				relType:   step.Edge.RelType,
				direction: step.Direction,
			}
			order = append(order, target)
			queue = append(queue, frontierEntry{id: target, depth: cur.depth + 1})
		}
	}

	neighbors := make([]NeighborResult, 0, len(order))
	for _, id := range order {
		entry := visited[id]
		info, _ := store.Node(id)
		types, dirs := reconstructNeighborPath(store, visited, start, id)
		neighbors = append(neighbors, NeighborResult{
			NodeID:         id,
			Label:          info.Label,
			AppID:          info.AppID,
			HasAppID:       info.HasAppID,
			Distance:       entry.distance,
			PathTypes:      types,
			PathDirections: dirs,
		})
	}

	return TraversalResult{Neighbors: neighbors, NodesVisited: len(visited)}
}

type frontierEntry struct {
	id    graphstore.NodeID
	depth uint32
}
