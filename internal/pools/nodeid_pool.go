// Package pools provides size-classed sync.Pool wrappers for []NodeID
// scratch slices, adapted from the host project's pools package (which
// pools raw []uint64 and []byte for its storage/wire-format layer). Its
// caller is traversal.DegreeCentrality's whole-store node scan.
package pools

import "sync"

// NodeID mirrors graphstore.NodeID's underlying type without importing
// graphstore, to keep this package dependency-free and reusable.
type NodeID = uint64

// NodeIDPool pools []NodeID slices in three size tiers.
type NodeIDPool struct {
	small  sync.Pool // <= 16 elements
	medium sync.Pool // <= 256 elements
	large  sync.Pool // <= 4096 elements
}

// NewNodeIDPool creates an empty tiered NodeID slice pool.
func NewNodeIDPool() *NodeIDPool {
	return &NodeIDPool{
		small:  sync.Pool{New: func() any { s := make([]NodeID, 0, 16); return &s }},
		medium: sync.Pool{New: func() any { s := make([]NodeID, 0, 256); return &s }},
		large:  sync.Pool{New: func() any { s := make([]NodeID, 0, 4096); return &s }},
	}
}

// Get returns a []NodeID with at least the requested capacity and length 0.
func (p *NodeIDPool) Get(size int) []NodeID {
	pool := p.tierFor(size)
	if pool == nil {
		return make([]NodeID, 0, size)
	}
	sp, ok := pool.Get().(*[]NodeID)
	if !ok || cap(*sp) < size {
		return make([]NodeID, 0, size)
	}
	return (*sp)[:0]
}

// Put returns s to the appropriate tier. Slices larger than the largest
// tier are dropped rather than pooled, to bound steady-state memory.
func (p *NodeIDPool) Put(s []NodeID) {
	pool := p.tierFor(cap(s))
	if pool == nil {
		return
	}
	s = s[:0]
	pool.Put(&s)
}

func (p *NodeIDPool) tierFor(size int) *sync.Pool {
	switch {
	case size <= 16:
		return &p.small
	case size <= 256:
		return &p.medium
	case size <= 4096:
		return &p.large
	default:
		return nil
	}
}

var defaultNodeIDPool = NewNodeIDPool()

// GetNodeIDs returns a []NodeID slice from the default pool.
func GetNodeIDs(size int) []NodeID { return defaultNodeIDPool.Get(size) }

// PutNodeIDs returns a []NodeID slice to the default pool.
func PutNodeIDs(s []NodeID) { defaultNodeIDPool.Put(s) }
