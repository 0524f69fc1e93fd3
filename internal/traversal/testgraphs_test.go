package traversal

import (
	"math"

	"github.com/dd0wney/graphaccel/internal/graphstore"
)

func nan() float32 { return float32(math.NaN()) }

// makeChain builds nodes 0..n-1 with edges i -> i+1 labeled "NEXT".
func makeChain(n int) *graphstore.Store {
	s := graphstore.New()
	rel, _ := s.InternRelType("NEXT")
	for i := 0; i < n; i++ {
		s.AddNode(uint64(i), "Node", "", false)
	}
	for i := 0; i < n-1; i++ {
		s.AddEdge(uint64(i), uint64(i+1), rel, nan())
	}
	return s
}

// makeStar builds a center node with `leaves` outgoing edges to 1..leaves.
func makeStar(leaves int) *graphstore.Store {
	s := graphstore.New()
	rel, _ := s.InternRelType("HAS")
	s.AddNode(0, "Hub", "", false)
	for i := 1; i <= leaves; i++ {
		s.AddNode(uint64(i), "Leaf", "", false)
		s.AddEdge(0, uint64(i), rel, nan())
	}
	return s
}

// makeCycle builds a directed cycle over n nodes: i -> (i+1)%n.
func makeCycle(n int) *graphstore.Store {
	s := graphstore.New()
	rel, _ := s.InternRelType("NEXT")
	for i := 0; i < n; i++ {
		s.AddNode(uint64(i), "Node", "", false)
	}
	for i := 0; i < n; i++ {
		s.AddEdge(uint64(i), uint64((i+1)%n), rel, nan())
	}
	return s
}

// makeDiamond builds 0->1->3 and 0->2->3.
func makeDiamond() *graphstore.Store {
	s := graphstore.New()
	rel, _ := s.InternRelType("NEXT")
	for i := 0; i < 4; i++ {
		s.AddNode(uint64(i), "Node", "", false)
	}
	s.AddEdge(0, 1, rel, nan())
	s.AddEdge(1, 3, rel, nan())
	s.AddEdge(0, 2, rel, nan())
	s.AddEdge(2, 3, rel, nan())
	return s
}
