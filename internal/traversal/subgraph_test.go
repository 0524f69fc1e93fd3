package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dd0wney/graphaccel/internal/graphstore"
)

func TestExtractSubgraphChain(t *testing.T) {
	g := makeChain(5)
	sub := ExtractSubgraph(g, 0, 2, graphstore.TraverseOutgoing, nil)
	assert.Equal(t, 3, sub.NodeCount) // nodes 0,1,2
	assert.Len(t, sub.Edges, 2)       // 0->1, 1->2
}

func TestExtractSubgraphEveryEdgeEndpointIsReachable(t *testing.T) {
	g := makeStar(20)
	sub := ExtractSubgraph(g, 0, 1, graphstore.TraverseOutgoing, nil)
	reachable := map[graphstore.NodeID]bool{0: true}
	for i := 1; i <= 20; i++ {
		reachable[graphstore.NodeID(i)] = true
	}
	for _, e := range sub.Edges {
		assert.True(t, reachable[e.FromID])
		assert.True(t, reachable[e.ToID])
	}
}

func TestExtractSubgraphStartNotInGraph(t *testing.T) {
	g := makeChain(3)
	sub := ExtractSubgraph(g, 999, 2, graphstore.TraverseBoth, nil)
	assert.Equal(t, 0, sub.NodeCount)
	assert.Empty(t, sub.Edges)
}

func TestExtractSubgraphUnknownRelTypeRendersAsUnknownSentinel(t *testing.T) {
	s := graphstore.New()
	s.AddNode(0, "A", "", false)
	s.AddNode(1, "B", "", false)
	// Bypass InternRelType to simulate an out-of-range rel type id, which
	// "should not occur in practice" per spec but must still degrade safely.
	s.AddEdge(0, 1, 7, nan())

	sub := ExtractSubgraph(s, 0, 1, graphstore.TraverseOutgoing, nil)
	assert.Len(t, sub.Edges, 1)
	assert.Equal(t, unknownRelTypeName, sub.Edges[0].RelType)
}
