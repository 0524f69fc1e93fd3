package traversal

import (
	"github.com/dd0wney/graphaccel/internal/graphstore"
)

// candidate is a pending path awaiting consideration in Yen's candidate
// pool, tagged with its insertion order for deterministic tie-breaking
// (spec.md §4.8, §9 Open Questions: "insertion order into the candidate
// pool" is the specified tie-break beyond hop count).
type candidate struct {
	path  Path
	order int
}

// KShortestPaths returns up to k loop-free paths from start to target,
// sorted by hop count ascending, using Yen's algorithm: the first path is
// the plain shortest path, and each subsequent path is found by a
// spur/root decomposition over the previously accepted paths, with node
// and edge exclusions forcing simplicity and novelty.
func KShortestPaths(store *graphstore.Store, start, target graphstore.NodeID, maxHops uint32, k int, dir graphstore.TraversalDirection, minConfidence *float32) []Path {
	if k <= 0 {
		return nil
	}

	first, ok := ShortestPath(store, start, target, maxHops, dir, minConfidence)
	if !ok {
		return nil
	}

	accepted := []Path{first}
	var pool []candidate
	nextOrder := 0

	for len(accepted) < k {
		lastAccepted := accepted[len(accepted)-1]

		for s := 0; s < len(lastAccepted)-1; s++ {
			spurNode := lastAccepted[s].NodeID
			rootNodeIDs := lastAccepted[:s+1].NodeIDs()

			excludedEdges := make(map[edgeStep]bool)
			for _, ap := range accepted {
				apIDs := ap.NodeIDs()
				if len(apIDs) <= s+1 || !sameNodeSequence(apIDs[:s+1], rootNodeIDs[:s+1]) {
					continue
				}
				if apIDs[s] != spurNode {
					continue
				}
				excludedEdges[edgeStep{from: apIDs[s], to: apIDs[s+1]}] = true
			}

			excludedNodes := make(map[graphstore.NodeID]bool)
			for _, id := range rootNodeIDs[:len(rootNodeIDs)-1] {
				excludedNodes[id] = true
			}

			remainingHops := maxHops - uint32(s)
			spurPath, found := constrainedShortestPath(store, spurNode, target, remainingHops, dir, minConfidence, searchConstraints{
				excludedNodes: excludedNodes,
				excludedEdges: excludedEdges,
			})
			if !found {
				continue
			}

			full := make(Path, 0, s+len(spurPath))
			full = append(full, lastAccepted[:s+1]...)
			full = append(full, spurPath[1:]...)

			if isDuplicate(full, accepted, pool) {
				continue
			}
			pool = append(pool, candidate{path: full, order: nextOrder})
			nextOrder++
		}

		if len(pool) == 0 {
			break
		}

		bestIdx := 0
		for i := 1; i < len(pool); i++ {
			if len(pool[i].path) < len(pool[bestIdx].path) {
				bestIdx = i
			}
			// Ties keep the earlier insertion order since we only replace
			// bestIdx on a strictly shorter candidate.
		}

		accepted = append(accepted, pool[bestIdx].path)
		pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
	}

	return accepted
}

func isDuplicate(candidatePath Path, accepted []Path, pool []candidate) bool {
	ids := candidatePath.NodeIDs()
	for _, p := range accepted {
		if sameNodeSequence(p.NodeIDs(), ids) {
			return true
		}
	}
	for _, c := range pool {
		if sameNodeSequence(c.path.NodeIDs(), ids) {
			return true
		}
	}
	return false
}
