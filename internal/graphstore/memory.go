package graphstore

// Rough per-entry overheads used by MemoryUsage. These are not exact —
// Go's map and slice headers vary by runtime version — but give a stable,
// informative approximation for the advisory max_memory_mb check.
const (
	nodeEntryBytes  = 64 // NodeID key + NodeInfo value + map bucket overhead
	edgeRecordBytes = 16 // Other(8) + RelType(2, padded) + Confidence(4) + padding
	appIDEntryBytes = 80 // interned string header + bucket overhead
)

// bucketCount approximates Go's runtime hash-map bucket allocation: buckets
// are sized to at least 8/7 of the entry count, rounded up to a power of two.
func bucketCount(entries int) int {
	if entries == 0 {
		return 0
	}
	need := (entries*8 + 6) / 7
	buckets := 1
	for buckets < need {
		buckets <<= 1
	}
	return buckets
}

// MemoryUsage returns an approximation, in bytes, of the store's resident
// size: hash-table bucket overhead for each map, adjacency-slice capacity
// (not just length, since appendAdjacency pre-reserves avgDegree slots),
// and the interned relationship-type strings. It is informational — callers
// should treat it as an estimate, not an exact accounting.
func (s *Store) MemoryUsage() int {
	total := 0

	total += bucketCount(len(s.nodes)) * nodeEntryBytes
	total += bucketCount(len(s.appIDIndex)) * appIDEntryBytes

	total += bucketCount(len(s.outgoing)) * 8 // map header overhead per bucket slot
	for _, list := range s.outgoing {
		total += cap(list) * edgeRecordBytes
	}
	total += bucketCount(len(s.incoming)) * 8
	for _, list := range s.incoming {
		total += cap(list) * edgeRecordBytes
	}

	for i := 0; i < s.interner.Len(); i++ {
		name, ok := s.interner.NameOf(uint16(i))
		if ok {
			total += len(name) + 24 // string header + heap bytes
		}
	}

	return total
}
