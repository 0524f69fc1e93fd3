package traversal

import (
	"sort"

	"github.com/dd0wney/graphaccel/internal/graphstore"
	"github.com/dd0wney/graphaccel/internal/pools"
)

// DegreeResult is one row of a degree-centrality ranking.
type DegreeResult struct {
	NodeID       graphstore.NodeID
	Label        string
	AppID        string
	HasAppID     bool
	OutDegree    int
	InDegree     int
	TotalDegree  int
}

// DegreeCentrality ranks every registered node by total degree (descending),
// breaking ties by ascending NodeID for stable output. topN truncates the
// result when positive; topN == 0 returns every node.
//
// Unlike the other traversal operations, DegreeCentrality takes no start
// node — it ranks the whole store.
func DegreeCentrality(store *graphstore.Store, topN int) []DegreeResult {
	buf := pools.GetNodeIDs(store.NodeCount())
	defer pools.PutNodeIDs(buf)
	allNodeIDs := store.AppendNodeIDs(buf)

	results := make([]DegreeResult, 0, len(allNodeIDs))
	for _, id := range allNodeIDs {
		info, ok := store.Node(id)
		if !ok {
			continue
		}
		outDeg := len(store.NeighborsOut(id))
		inDeg := len(store.NeighborsIn(id))
		results = append(results, DegreeResult{
			NodeID:      id,
			Label:       info.Label,
			AppID:       info.AppID,
			HasAppID:    info.HasAppID,
			OutDegree:   outDeg,
			InDegree:    inDeg,
			TotalDegree: outDeg + inDeg,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalDegree != results[j].TotalDegree {
			return results[i].TotalDegree > results[j].TotalDegree
		}
		return results[i].NodeID < results[j].NodeID
	})

	if topN > 0 && topN < len(results) {
		results = results[:topN]
	}
	return results
}
