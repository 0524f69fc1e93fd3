package traversal

import (
	"github.com/dd0wney/graphaccel/internal/graphstore"
)

// SubgraphEdge is one edge projected into an extracted subgraph.
type SubgraphEdge struct {
	FromID      graphstore.NodeID
	FromLabel   string
	FromAppID   string
	HasFromApp  bool
	ToID        graphstore.NodeID
	ToLabel     string
	ToAppID     string
	HasToApp    bool
	RelType     string
}

// SubgraphResult is the reachable-subgraph extraction output.
type SubgraphResult struct {
	NodeCount int
	Edges     []SubgraphEdge
}

// unknownRelTypeName is rendered for a relationship-type id that somehow
// fell outside the interner's range — should not occur in practice.
const unknownRelTypeName = "UNKNOWN"

// ExtractSubgraph computes the set of nodes reachable from start within
// maxDepth hops (via BFSNeighborhood) and then projects every outgoing edge
// whose target also lies in that reachable set, so each edge is emitted
// exactly once.
func ExtractSubgraph(store *graphstore.Store, start graphstore.NodeID, maxDepth uint32, dir graphstore.TraversalDirection, minConfidence *float32) SubgraphResult {
	if _, ok := store.Node(start); !ok {
		return SubgraphResult{}
	}

	bfsResult := BFSNeighborhood(store, start, maxDepth, dir, minConfidence)

	reachable := make(map[graphstore.NodeID]bool, bfsResult.NodesVisited)
	reachable[start] = true
	for _, n := range bfsResult.Neighbors {
		reachable[n.NodeID] = true
	}

	var edges []SubgraphEdge
	for u := range reachable {
		fromInfo, _ := store.Node(u)
		it := newNeighborIter(store, u, graphstore.TraverseOutgoing, minConfidence)
		for {
			step, ok := it.Next()
			if !ok {
				break
			}
			v := step.Edge.Other
			if !reachable[v] {
				continue
			}
			toInfo, _ := store.Node(v)
			relName, ok := store.RelTypeName(step.Edge.RelType)
			if !ok {
				relName = unknownRelTypeName
			}
			edges = append(edges, SubgraphEdge{
				FromID: u, FromLabel: fromInfo.Label, FromAppID: fromInfo.AppID, HasFromApp: fromInfo.HasAppID,
				ToID: v, ToLabel: toInfo.Label, ToAppID: toInfo.AppID, HasToApp: toInfo.HasAppID,
				RelType: relName,
			})
		}
	}

	return SubgraphResult{NodeCount: len(reachable), Edges: edges}
}
