// Package graphstore holds the in-memory labeled property graph: node
// metadata, mirrored forward/reverse adjacency lists, and the application-id
// index. It is immutable once loaded; a reload replaces the whole store.
package graphstore

import "github.com/dd0wney/graphaccel/internal/reltype"

// NodeID is the opaque 64-bit node identifier assigned by the source
// database.
type NodeID = uint64

// NodeInfo is the immutable metadata recorded for a node.
type NodeInfo struct {
	Label string
	AppID string // empty means "not set"
	HasAppID bool
}

// EdgeRecord is a directed edge entry as stored in an adjacency list. The
// "other" endpoint is recorded explicitly: in outgoing[u] it is the target,
// in incoming[v] it is the source — callers never need to re-derive it.
type EdgeRecord struct {
	Other      NodeID
	RelType    reltype.ID
	Confidence float32 // NaN means "not loaded"
}

// Direction identifies which adjacency list a traversed edge came from.
type Direction int

const (
	DirectionOutgoing Direction = iota
	DirectionIncoming
)

func (d Direction) String() string {
	if d == DirectionIncoming {
		return "incoming"
	}
	return "outgoing"
}

// TraversalDirection selects which adjacency lists a query walks.
type TraversalDirection int

const (
	TraverseOutgoing TraversalDirection = iota
	TraverseIncoming
	TraverseBoth
)
