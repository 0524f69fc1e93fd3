// Package hostbind is the thin shim a SQL-function-binding layer (genuinely
// out of scope per spec.md §1) calls into: it owns one connection-local
// snapshot, resolves host-facing identifiers and direction strings, runs
// ensure_fresh ahead of every query, and maps traversal-package results into
// the row shapes spec.md §6 documents. It stops at returning Go values and
// errors — it does not itself define any SQL surface.
package hostbind

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/graphaccel/internal/config"
	"github.com/dd0wney/graphaccel/internal/generation"
	"github.com/dd0wney/graphaccel/internal/graphstore"
	"github.com/dd0wney/graphaccel/internal/logging"
	"github.com/dd0wney/graphaccel/internal/metrics"
)

// Loader loads a full snapshot for graphName, returning the built store and
// the generation recorded immediately after load completion (per the
// after-load resolution of spec.md §9's open question).
type Loader interface {
	Load(ctx context.Context, graphName string, cfg config.Config) (*graphstore.Store, int64, error)
}

// Connection owns exactly one loaded snapshot, per spec.md §5's
// single-threaded-per-connection concurrency model: no locks, because no
// concurrent mutation of this Connection's state is possible.
type Connection struct {
	cfg      config.Config
	loader   Loader
	genStore generation.Store
	notifier generation.Notifier
	logger   logging.Logger
	metrics  *metrics.Registry

	store *graphstore.Store
	snap  *generation.Snapshot
}

// New returns a Connection with nothing loaded yet; call Load before
// issuing queries.
func New(cfg config.Config, loader Loader, genStore generation.Store, notifier generation.Notifier, logger logging.Logger, reg *metrics.Registry) *Connection {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	return &Connection{cfg: cfg, loader: loader, genStore: genStore, notifier: notifier, logger: logger, metrics: reg}
}

// reloader adapts Connection.reload to the generation.Reloader interface
// ensure_fresh expects, without exposing reload as public API.
type reloader struct{ c *Connection }

func (r reloader) Reload(ctx context.Context, graphName string) (int64, error) {
	return r.c.reload(ctx, graphName)
}

func (c *Connection) reload(ctx context.Context, graphName string) (int64, error) {
	start := time.Now()
	store, loadedGen, err := c.loader.Load(ctx, graphName, c.cfg)
	if err != nil {
		c.metrics.RecordReload(graphName, "error", time.Since(start))
		return 0, err
	}
	c.store = store
	c.metrics.RecordReload(graphName, "ok", time.Since(start))
	return loadedGen, nil
}

// ensureFresh runs the spec.md §4.11 decision tree and logs the outcome
// with a correlation id, so a single ensure_fresh -> (reload) -> query
// sequence can be traced through the structured log.
func (c *Connection) ensureFresh(ctx context.Context, entry string) (string, generation.Decision) {
	corrID := uuid.NewString()
	log := c.logger.With(logging.CorrelationID(corrID), logging.Entry(entry))

	if c.snap == nil {
		return corrID, generation.DecisionNoSnapshot
	}

	decision := generation.EnsureFresh(ctx, c.genStore, reloader{c}, c.snap, time.Now())
	switch decision {
	case generation.DecisionStoreUnavailable:
		log.Warn("generation store unreachable, serving loaded snapshot")
	case generation.DecisionServeStaleDebounced:
		log.Info("serving stale snapshot, reload debounced", logging.GraphName(c.snap.GraphName))
	case generation.DecisionReloaded:
		log.Info("reloaded snapshot inline", logging.GraphName(c.snap.GraphName), logging.Generation(c.snap.LoadedGeneration))
	}
	return corrID, decision
}

// ResolveNodeID resolves a host-supplied identifier string: app_id first
// (per spec.md §6's identifier-resolution rule), falling back to a base-10
// integer NodeId parse, and failing with ErrNodeNotFound otherwise.
func (c *Connection) ResolveNodeID(s string) (graphstore.NodeID, error) {
	if c.store == nil {
		return 0, ErrNoGraphLoaded
	}
	if id, ok := c.store.ResolveAppID(s); ok {
		return id, nil
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		if _, ok := c.store.Node(n); ok {
			return n, nil
		}
	}
	return 0, ErrNodeNotFound
}

// ParseDirection parses the case-insensitive direction-filter vocabulary
// from spec.md §6: outgoing/out, incoming/in, both.
func ParseDirection(s string) (graphstore.TraversalDirection, error) {
	switch strings.ToLower(s) {
	case "outgoing", "out":
		return graphstore.TraverseOutgoing, nil
	case "incoming", "in":
		return graphstore.TraverseIncoming, nil
	case "both":
		return graphstore.TraverseBoth, nil
	default:
		return 0, ErrInvalidDirection
	}
}
