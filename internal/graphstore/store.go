package graphstore

import (
	"github.com/dd0wney/graphaccel/internal/reltype"
)

// Store is the in-memory snapshot of a labeled property graph: node
// metadata, mirrored forward/reverse adjacency lists, and the app-id index.
// NodeIds are not assumed dense, so every per-node container is a hash map.
//
// A Store is built once by the bulk loader and is read-only for the rest of
// its lifetime; a reload constructs a fresh Store and replaces the old one
// wholesale (see internal/hostbind.Connection).
type Store struct {
	nodes       map[NodeID]NodeInfo
	outgoing    map[NodeID][]EdgeRecord
	incoming    map[NodeID][]EdgeRecord
	appIDIndex  map[string]NodeID
	interner    *reltype.Interner
	avgDegree   int
	edgeCount   int
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		nodes:      make(map[NodeID]NodeInfo),
		outgoing:   make(map[NodeID][]EdgeRecord),
		incoming:   make(map[NodeID][]EdgeRecord),
		appIDIndex: make(map[string]NodeID),
		interner:   reltype.New(),
		avgDegree:  1,
	}
}

// WithCapacity pre-sizes the hash tables for an expected node/edge count and
// records an estimated average degree used when first populating an empty
// adjacency slice, avoiding geometric reallocation under bulk load.
func WithCapacity(nodeHint, edgeHint int) *Store {
	s := New()
	if nodeHint > 0 {
		s.nodes = make(map[NodeID]NodeInfo, nodeHint)
		s.outgoing = make(map[NodeID][]EdgeRecord, nodeHint)
		s.incoming = make(map[NodeID][]EdgeRecord, nodeHint)
		s.appIDIndex = make(map[string]NodeID, nodeHint)
		s.interner = reltype.NewWithCapacity(64)
		avg := 1
		if edgeHint > 0 {
			avg = edgeHint / nodeHint
			if avg < 1 {
				avg = 1
			}
		}
		s.avgDegree = avg
	}
	return s
}

// AddNode registers or overwrites metadata for id. The first registration of
// a given app_id wins in appIDIndex; later duplicate app_ids still update
// the node's own AppID field (invariant 3 in spec.md §3).
func (s *Store) AddNode(id NodeID, label string, appID string, hasAppID bool) {
	s.nodes[id] = NodeInfo{Label: label, AppID: appID, HasAppID: hasAppID}
	if hasAppID {
		if _, exists := s.appIDIndex[appID]; !exists {
			s.appIDIndex[appID] = id
		}
	}
}

// AddEdge appends a directed edge to both outgoing[from] and incoming[to].
// It does not require the endpoints to already exist in nodes — BulkLoad
// registers them separately.
func (s *Store) AddEdge(from, to NodeID, relType reltype.ID, confidence float32) {
	s.appendAdjacency(&s.outgoing, from, EdgeRecord{Other: to, RelType: relType, Confidence: confidence})
	s.appendAdjacency(&s.incoming, to, EdgeRecord{Other: from, RelType: relType, Confidence: confidence})
	s.edgeCount++
}

func (s *Store) appendAdjacency(m *map[NodeID][]EdgeRecord, key NodeID, rec EdgeRecord) {
	list, ok := (*m)[key]
	if !ok {
		list = make([]EdgeRecord, 0, s.avgDegree)
	}
	(*m)[key] = append(list, rec)
}

// InternRelType interns a relationship-type name, returning ErrTooManyRelTypes
// if the 16-bit ID space (65,535 types) is exhausted.
func (s *Store) InternRelType(name string) (reltype.ID, error) {
	id, err := s.interner.Intern(name)
	if err != nil {
		return 0, ErrTooManyRelTypes
	}
	return id, nil
}

// RelTypeName resolves an interned relationship-type ID back to its name.
func (s *Store) RelTypeName(id reltype.ID) (string, bool) {
	return s.interner.NameOf(id)
}

// NeighborsOut returns the outgoing adjacency slice for id (empty if unknown).
func (s *Store) NeighborsOut(id NodeID) []EdgeRecord {
	return s.outgoing[id]
}

// NeighborsIn returns the incoming adjacency slice for id (empty if unknown).
func (s *Store) NeighborsIn(id NodeID) []EdgeRecord {
	return s.incoming[id]
}

// Node returns the metadata registered for id.
func (s *Store) Node(id NodeID) (NodeInfo, bool) {
	info, ok := s.nodes[id]
	return info, ok
}

// ResolveAppID looks up a node by its application-level identifier.
func (s *Store) ResolveAppID(appID string) (NodeID, bool) {
	id, ok := s.appIDIndex[appID]
	return id, ok
}

// NodeCount returns the number of registered nodes.
func (s *Store) NodeCount() int {
	return len(s.nodes)
}

// EdgeCount returns the number of directed edges recorded.
func (s *Store) EdgeCount() int {
	return s.edgeCount
}

// RelTypeCount returns the number of distinct relationship types interned.
func (s *Store) RelTypeCount() int {
	return s.interner.Len()
}

// NodeIDs returns every registered node id, in no particular order. Used by
// DegreeCentrality, which ranks the whole store rather than a reachable
// subset.
func (s *Store) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}
	return ids
}

// AppendNodeIDs appends every registered node id onto dst and returns the
// grown slice, letting a caller supply a pooled buffer instead of forcing a
// fresh allocation on every call.
func (s *Store) AppendNodeIDs(dst []NodeID) []NodeID {
	for id := range s.nodes {
		dst = append(dst, id)
	}
	return dst
}
