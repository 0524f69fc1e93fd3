package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/graphaccel/internal/graphstore"
)

func TestBFSChainUndirected(t *testing.T) {
	g := makeChain(6)
	result := BFSNeighborhood(g, 0, 10, graphstore.TraverseBoth, nil)
	assert.Len(t, result.Neighbors, 5)

	var node5 *NeighborResult
	for i := range result.Neighbors {
		if result.Neighbors[i].NodeID == 5 {
			node5 = &result.Neighbors[i]
		}
	}
	require.NotNil(t, node5)
	assert.Equal(t, uint32(5), node5.Distance)
}

func TestBFSChainDepthLimited(t *testing.T) {
	g := makeChain(6)
	result := BFSNeighborhood(g, 0, 3, graphstore.TraverseBoth, nil)
	assert.Len(t, result.Neighbors, 3)
}

func TestBFSStarOutgoing(t *testing.T) {
	g := makeStar(100)
	result := BFSNeighborhood(g, 0, 1, graphstore.TraverseOutgoing, nil)
	assert.Len(t, result.Neighbors, 100)
}

func TestBFSStarIncomingFromCenterIsEmpty(t *testing.T) {
	g := makeStar(100)
	result := BFSNeighborhood(g, 0, 1, graphstore.TraverseIncoming, nil)
	assert.Empty(t, result.Neighbors)
}

func TestBFSStarIncomingFromLeafFindsCenter(t *testing.T) {
	g := makeStar(100)
	result := BFSNeighborhood(g, 1, 1, graphstore.TraverseIncoming, nil)
	assert.Len(t, result.Neighbors, 1)
	assert.Equal(t, graphstore.NodeID(0), result.Neighbors[0].NodeID)
}

func TestBFSCycleNoInfiniteLoop(t *testing.T) {
	g := makeCycle(5)
	result := BFSNeighborhood(g, 0, 100, graphstore.TraverseBoth, nil)
	assert.Len(t, result.Neighbors, 4)
}

func TestBFSStartNotInGraph(t *testing.T) {
	g := makeChain(3)
	result := BFSNeighborhood(g, 999, 10, graphstore.TraverseBoth, nil)
	assert.Empty(t, result.Neighbors)
	assert.Equal(t, 0, result.NodesVisited)
}

func TestBFSDepthZero(t *testing.T) {
	g := makeChain(5)
	result := BFSNeighborhood(g, 0, 0, graphstore.TraverseBoth, nil)
	assert.Empty(t, result.Neighbors)
	assert.Equal(t, 1, result.NodesVisited)
}

func TestBFSSelfLoopDoesNotProduceNeighbor(t *testing.T) {
	s := graphstore.New()
	rel, _ := s.InternRelType("SELF")
	s.AddNode(0, "Node", "", false)
	s.AddEdge(0, 0, rel, nan())

	result := BFSNeighborhood(s, 0, 5, graphstore.TraverseBoth, nil)
	assert.Empty(t, result.Neighbors)
}

func TestBFSParallelEdgesIdempotent(t *testing.T) {
	s := graphstore.New()
	r1, _ := s.InternRelType("IMPLIES")
	r2, _ := s.InternRelType("SUPPORTS")
	r3, _ := s.InternRelType("CONTRADICTS")
	s.AddNode(0, "A", "", false)
	s.AddNode(1, "B", "", false)
	s.AddEdge(0, 1, r1, nan())
	s.AddEdge(0, 1, r2, nan())
	s.AddEdge(0, 1, r3, nan())

	result := BFSNeighborhood(s, 0, 1, graphstore.TraverseOutgoing, nil)
	assert.Len(t, result.Neighbors, 1)
	assert.Equal(t, uint32(1), result.Neighbors[0].Distance)
}

func TestBFSPathTypesRecorded(t *testing.T) {
	s := graphstore.New()
	implies, _ := s.InternRelType("IMPLIES")
	supports, _ := s.InternRelType("SUPPORTS")
	s.AddNode(0, "A", "", false)
	s.AddNode(1, "B", "", false)
	s.AddNode(2, "C", "", false)
	s.AddEdge(0, 1, implies, nan())
	s.AddEdge(1, 2, supports, nan())

	result := BFSNeighborhood(s, 0, 5, graphstore.TraverseBoth, nil)
	var node2 *NeighborResult
	for i := range result.Neighbors {
		if result.Neighbors[i].NodeID == 2 {
			node2 = &result.Neighbors[i]
		}
	}
	require.NotNil(t, node2)
	assert.Equal(t, []string{"IMPLIES", "SUPPORTS"}, node2.PathTypes)
}

func TestBFSDirectionDuality(t *testing.T) {
	s := graphstore.New()
	rel, _ := s.InternRelType("NEXT")
	s.AddNode(0, "A", "", false)
	s.AddNode(1, "B", "", false)
	s.AddEdge(0, 1, rel, nan())

	out := BFSNeighborhood(s, 0, 1, graphstore.TraverseOutgoing, nil)
	in := BFSNeighborhood(s, 1, 1, graphstore.TraverseIncoming, nil)

	assert.Len(t, out.Neighbors, 1)
	assert.Equal(t, graphstore.NodeID(1), out.Neighbors[0].NodeID)
	assert.Len(t, in.Neighbors, 1)
	assert.Equal(t, graphstore.NodeID(0), in.Neighbors[0].NodeID)
}

func TestBFSBothEqualsUnionOfOutAndIn(t *testing.T) {
	s := graphstore.New()
	rel, _ := s.InternRelType("NEXT")
	s.AddNode(0, "A", "", false)
	s.AddNode(1, "B", "", false)
	s.AddNode(2, "C", "", false)
	s.AddEdge(1, 0, rel, nan())
	s.AddEdge(0, 2, rel, nan())

	out := BFSNeighborhood(s, 0, 1, graphstore.TraverseOutgoing, nil)
	in := BFSNeighborhood(s, 0, 1, graphstore.TraverseIncoming, nil)
	both := BFSNeighborhood(s, 0, 1, graphstore.TraverseBoth, nil)

	union := map[graphstore.NodeID]bool{}
	for _, n := range out.Neighbors {
		union[n.NodeID] = true
	}
	for _, n := range in.Neighbors {
		union[n.NodeID] = true
	}

	bothSet := map[graphstore.NodeID]bool{}
	for _, n := range both.Neighbors {
		bothSet[n.NodeID] = true
	}

	assert.Equal(t, union, bothSet)
}

func TestBFSConfidenceFilterPassesNaN(t *testing.T) {
	s := graphstore.New()
	rel, _ := s.InternRelType("NEXT")
	s.AddNode(0, "A", "", false)
	s.AddNode(1, "B", "", false)
	s.AddEdge(0, 1, rel, nan())

	threshold := float32(0.9)
	result := BFSNeighborhood(s, 0, 1, graphstore.TraverseOutgoing, &threshold)
	assert.Len(t, result.Neighbors, 1)
}

func TestBFSConfidenceFilterExcludesBelowThreshold(t *testing.T) {
	s := graphstore.New()
	rel, _ := s.InternRelType("NEXT")
	s.AddNode(0, "A", "", false)
	s.AddNode(1, "B", "", false)
	s.AddEdge(0, 1, rel, 0.2)

	threshold := float32(0.5)
	result := BFSNeighborhood(s, 0, 1, graphstore.TraverseOutgoing, &threshold)
	assert.Empty(t, result.Neighbors)
}
