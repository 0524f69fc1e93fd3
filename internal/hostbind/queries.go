package hostbind

import (
	"context"
	"time"

	"github.com/dd0wney/graphaccel/internal/generation"
	"github.com/dd0wney/graphaccel/internal/graphstore"
	"github.com/dd0wney/graphaccel/internal/traversal"
)

// NeighborhoodRow is one row of the neighborhood() query entry.
type NeighborhoodRow struct {
	NodeID         graphstore.NodeID
	Label          string
	AppID          string
	HasAppID       bool
	Distance       uint32
	PathTypes      []string
	PathDirections []string
}

// Neighborhood runs BFSNeighborhood after ensuring freshness, resolving
// startID and the direction string into their engine-native forms.
func (c *Connection) Neighborhood(ctx context.Context, startID string, maxDepth uint32, directionFilter string, minConfidence *float32) ([]NeighborhoodRow, error) {
	if _, decision := c.ensureFresh(ctx, "neighborhood"); decision == generation.DecisionNoSnapshot {
		return nil, ErrNoGraphLoaded
	}

	dir, err := ParseDirection(directionFilter)
	if err != nil {
		return nil, err
	}
	start, err := c.ResolveNodeID(startID)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	result := traversal.BFSNeighborhood(c.store, start, maxDepth, dir, minConfidence)
	c.metrics.RecordQuery("neighborhood", "ok", time.Since(startTime), result.NodesVisited)

	rows := make([]NeighborhoodRow, 0, len(result.Neighbors))
	for _, n := range result.Neighbors {
		dirs := make([]string, len(n.PathDirections))
		for i, d := range n.PathDirections {
			dirs[i] = d.String()
		}
		rows = append(rows, NeighborhoodRow{
			NodeID: n.NodeID, Label: n.Label, AppID: n.AppID, HasAppID: n.HasAppID,
			Distance: n.Distance, PathTypes: n.PathTypes, PathDirections: dirs,
		})
	}
	return rows, nil
}

// PathRow is one row of the path() query entry.
type PathRow struct {
	Step         int
	NodeID       graphstore.NodeID
	Label        string
	AppID        string
	HasAppID     bool
	RelType      string
	HasRelType   bool
	Direction    string
	HasDirection bool
}

// Path runs ShortestPath between fromID and toID after ensuring freshness.
func (c *Connection) Path(ctx context.Context, fromID, toID string, maxHops uint32, directionFilter string, minConfidence *float32) ([]PathRow, error) {
	if _, decision := c.ensureFresh(ctx, "path"); decision == generation.DecisionNoSnapshot {
		return nil, ErrNoGraphLoaded
	}

	dir, err := ParseDirection(directionFilter)
	if err != nil {
		return nil, err
	}
	from, err := c.ResolveNodeID(fromID)
	if err != nil {
		return nil, err
	}
	to, err := c.ResolveNodeID(toID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	path, ok := traversal.ShortestPath(c.store, from, to, maxHops, dir, minConfidence)
	c.metrics.RecordQuery("path", "ok", time.Since(start), len(path))
	if !ok {
		return nil, nil // absent target is not an error, per spec.md §7
	}

	rows := make([]PathRow, 0, len(path))
	for i, step := range path {
		rows = append(rows, PathRow{
			Step: i, NodeID: step.NodeID, Label: step.Label, AppID: step.AppID, HasAppID: step.HasAppID,
			RelType: step.RelType, HasRelType: step.HasRelType,
			Direction: step.Direction.String(), HasDirection: step.HasDirection,
		})
	}
	return rows, nil
}

// PathsRow is one row of the paths() k-shortest-paths query entry.
type PathsRow struct {
	PathIndex int
	PathRow
}

// Paths runs KShortestPaths between fromID and toID after ensuring
// freshness.
func (c *Connection) Paths(ctx context.Context, fromID, toID string, maxHops uint32, maxPaths int, directionFilter string, minConfidence *float32) ([]PathsRow, error) {
	if _, decision := c.ensureFresh(ctx, "paths"); decision == generation.DecisionNoSnapshot {
		return nil, ErrNoGraphLoaded
	}

	if maxPaths < 0 {
		return nil, ErrNegativeParameter
	}

	dir, err := ParseDirection(directionFilter)
	if err != nil {
		return nil, err
	}
	from, err := c.ResolveNodeID(fromID)
	if err != nil {
		return nil, err
	}
	to, err := c.ResolveNodeID(toID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	paths := traversal.KShortestPaths(c.store, from, to, maxHops, maxPaths, dir, minConfidence)
	c.metrics.RecordQuery("paths", "ok", time.Since(start), len(paths))

	var rows []PathsRow
	for pi, path := range paths {
		for si, step := range path {
			rows = append(rows, PathsRow{
				PathIndex: pi,
				PathRow: PathRow{
					Step: si, NodeID: step.NodeID, Label: step.Label, AppID: step.AppID, HasAppID: step.HasAppID,
					RelType: step.RelType, HasRelType: step.HasRelType,
					Direction: step.Direction.String(), HasDirection: step.HasDirection,
				},
			})
		}
	}
	return rows, nil
}

// SubgraphRow is one row of the subgraph() query entry.
type SubgraphRow struct {
	FromID     graphstore.NodeID
	FromLabel  string
	FromAppID  string
	HasFromApp bool
	ToID       graphstore.NodeID
	ToLabel    string
	ToAppID    string
	HasToApp   bool
	RelType    string
}

// Subgraph runs ExtractSubgraph after ensuring freshness.
func (c *Connection) Subgraph(ctx context.Context, startID string, maxDepth uint32, directionFilter string, minConfidence *float32) ([]SubgraphRow, error) {
	if _, decision := c.ensureFresh(ctx, "subgraph"); decision == generation.DecisionNoSnapshot {
		return nil, ErrNoGraphLoaded
	}

	dir, err := ParseDirection(directionFilter)
	if err != nil {
		return nil, err
	}
	start, err := c.ResolveNodeID(startID)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	result := traversal.ExtractSubgraph(c.store, start, maxDepth, dir, minConfidence)
	c.metrics.RecordQuery("subgraph", "ok", time.Since(startTime), result.NodeCount)

	rows := make([]SubgraphRow, 0, len(result.Edges))
	for _, e := range result.Edges {
		rows = append(rows, SubgraphRow{
			FromID: e.FromID, FromLabel: e.FromLabel, FromAppID: e.FromAppID, HasFromApp: e.HasFromApp,
			ToID: e.ToID, ToLabel: e.ToLabel, ToAppID: e.ToAppID, HasToApp: e.HasToApp,
			RelType: e.RelType,
		})
	}
	return rows, nil
}

// DegreeRow is one row of the degree() query entry.
type DegreeRow struct {
	NodeID      graphstore.NodeID
	Label       string
	AppID       string
	HasAppID    bool
	OutDegree   int
	InDegree    int
	TotalDegree int
}

// Degree runs DegreeCentrality after ensuring freshness. Unlike the other
// four entries it takes no start node.
func (c *Connection) Degree(ctx context.Context, topN int) ([]DegreeRow, error) {
	if _, decision := c.ensureFresh(ctx, "degree"); decision == generation.DecisionNoSnapshot {
		return nil, ErrNoGraphLoaded
	}

	start := time.Now()
	results := traversal.DegreeCentrality(c.store, topN)
	c.metrics.RecordQuery("degree", "ok", time.Since(start), len(results))

	rows := make([]DegreeRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, DegreeRow{
			NodeID: r.NodeID, Label: r.Label, AppID: r.AppID, HasAppID: r.HasAppID,
			OutDegree: r.OutDegree, InDegree: r.InDegree, TotalDegree: r.TotalDegree,
		})
	}
	return rows, nil
}
