package hostbind

import (
	"context"
	"time"

	"github.com/dd0wney/graphaccel/internal/generation"
	"github.com/dd0wney/graphaccel/internal/logging"
)

// LoadResult is the row shape for the load() control entry.
type LoadResult struct {
	NodeCount  int
	EdgeCount  int
	LoadTimeMS float64
}

// Load loads graphName (falling back to cfg.SourceGraph when graphName is
// empty) into this connection, replacing any previously loaded snapshot.
func (c *Connection) Load(ctx context.Context, graphName string) (LoadResult, error) {
	if graphName == "" {
		graphName = c.cfg.SourceGraph
	}
	if graphName == "" {
		return LoadResult{}, ErrSourceGraphUnset
	}

	start := time.Now()
	loadedGen, err := c.reload(ctx, graphName)
	elapsed := time.Since(start)
	if err != nil {
		return LoadResult{}, err
	}

	c.snap = &generation.Snapshot{
		GraphName:         graphName,
		LoadedGeneration:  loadedGen,
		LastLoadTime:      time.Now(),
		AutoReload:        c.cfg.AutoReload,
		ReloadDebounceSec: c.cfg.ReloadDebounceSec,
	}

	c.logger.Info("graph loaded",
		logging.GraphName(graphName),
		logging.Generation(loadedGen),
		logging.Int("node_count", c.store.NodeCount()),
		logging.Int("edge_count", c.store.EdgeCount()),
	)

	return LoadResult{
		NodeCount:  c.store.NodeCount(),
		EdgeCount:  c.store.EdgeCount(),
		LoadTimeMS: float64(elapsed.Microseconds()) / 1000.0,
	}, nil
}

// Invalidate bumps graphName's generation via the configured generation
// store and fires the configured Notifier, per spec.md §4.11.
func (c *Connection) Invalidate(ctx context.Context, graphName string) (int64, error) {
	newGen, err := c.genStore.Invalidate(ctx, graphName)
	if err != nil {
		return 0, err
	}
	if c.notifier != nil {
		c.notifier.Notify(graphName, newGen)
	}
	return newGen, nil
}

// StatusResult is the row shape for the status() control entry.
type StatusResult struct {
	SourceGraph       string
	HasSourceGraph    bool
	Status            string // "not_loaded" | "loaded" | "stale"
	NodeCount         int
	EdgeCount         int
	MemoryBytes       int
	RelTypeCount      int
	LoadedGeneration  int64
	CurrentGeneration int64
	IsStale           bool
}

// Status reports the connection's current snapshot state, including both
// generations and an is_stale flag, without performing a reload.
func (c *Connection) Status(ctx context.Context) StatusResult {
	if c.snap == nil {
		return StatusResult{Status: "not_loaded"}
	}

	current, stale, err := generation.IsStale(ctx, c.genStore, c.snap)
	status := "loaded"
	if err == nil && stale {
		status = "stale"
	}

	c.metrics.SetStatus(c.snap.GraphName, c.snap.LoadedGeneration, current, c.store.RelTypeCount(), c.store.NodeCount(), c.store.EdgeCount())

	return StatusResult{
		SourceGraph:       c.snap.GraphName,
		HasSourceGraph:    true,
		Status:            status,
		NodeCount:         c.store.NodeCount(),
		EdgeCount:         c.store.EdgeCount(),
		MemoryBytes:       c.store.MemoryUsage(),
		RelTypeCount:      c.store.RelTypeCount(),
		LoadedGeneration:  c.snap.LoadedGeneration,
		CurrentGeneration: current,
		IsStale:           stale,
	}
}
