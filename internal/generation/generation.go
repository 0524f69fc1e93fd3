// Package generation implements the freshness protocol from spec.md §4.11:
// a monotonic per-graph counter maintained by the host, and the decision
// tree a connection runs before every query to decide whether its loaded
// snapshot is still fresh enough to serve.
package generation

import (
	"context"
	"errors"
	"time"
)

// Store is the host-managed counter table. Invalidate and Fetch are the
// only two operations a host needs to provide; everything else in this
// package is decision logic layered on top.
type Store interface {
	// Invalidate bumps the generation for graphName and returns the new
	// value. The first call for a given graphName returns 1.
	Invalidate(ctx context.Context, graphName string) (int64, error)

	// Fetch returns the current generation for graphName, or 0 if no row
	// exists yet. ErrStoreUnavailable signals the store could not be
	// reached at all, distinct from "no row yet".
	Fetch(ctx context.Context, graphName string) (int64, error)
}

// ErrStoreUnavailable is returned by a Store.Fetch implementation when the
// generation table itself could not be reached (network partition, pool
// exhaustion, etc). EnsureFresh treats this as recoverable and the loaded
// snapshot keeps being served; hostbind logs a warning on every query that
// hits this case, not only the first.
var ErrStoreUnavailable = errors.New("generation: store unreachable")

// Notifier broadcasts that a graph's generation changed, so out-of-process
// listeners can react without polling. The default is an in-process
// callback registry; notify_mangos.go (build tag "mangos") adds a pubsub
// transport for multi-process deployments.
type Notifier interface {
	Notify(graphName string, newGeneration int64)
}

// CallbackNotifier fires a set of registered callbacks synchronously. It
// satisfies single-process embedded deployments with no message broker.
type CallbackNotifier struct {
	callbacks []func(graphName string, newGeneration int64)
}

// NewCallbackNotifier returns an empty in-process notifier.
func NewCallbackNotifier() *CallbackNotifier {
	return &CallbackNotifier{}
}

// Subscribe registers fn to run on every Notify call.
func (n *CallbackNotifier) Subscribe(fn func(graphName string, newGeneration int64)) {
	n.callbacks = append(n.callbacks, fn)
}

func (n *CallbackNotifier) Notify(graphName string, newGeneration int64) {
	for _, cb := range n.callbacks {
		cb(graphName, newGeneration)
	}
}

// Decision enumerates the outcome of an ensure_fresh evaluation.
type Decision int

const (
	// DecisionFresh means the loaded snapshot's generation is current;
	// no reload needed.
	DecisionFresh Decision = iota
	// DecisionNoSnapshot means no snapshot is loaded yet; caller must
	// load before querying.
	DecisionNoSnapshot
	// DecisionStoreUnavailable means the generation store could not be
	// reached, or an inline reload failed; the loaded snapshot is served
	// as-is with a warning.
	DecisionStoreUnavailable
	// DecisionServeStaleAutoReloadDisabled means the snapshot is stale
	// but auto_reload is off; serve it anyway.
	DecisionServeStaleAutoReloadDisabled
	// DecisionServeStaleDebounced means the snapshot is stale but the
	// debounce window since the last load has not elapsed.
	DecisionServeStaleDebounced
	// DecisionReloaded means a reload was performed inline and the
	// snapshot is now current as of the new loaded generation.
	DecisionReloaded
)

func (d Decision) String() string {
	switch d {
	case DecisionFresh:
		return "fresh"
	case DecisionNoSnapshot:
		return "no_snapshot"
	case DecisionStoreUnavailable:
		return "store_unavailable"
	case DecisionServeStaleAutoReloadDisabled:
		return "stale_auto_reload_disabled"
	case DecisionServeStaleDebounced:
		return "stale_debounced"
	case DecisionReloaded:
		return "reloaded"
	default:
		return "unknown"
	}
}

// Snapshot tracks the freshness bookkeeping for one loaded graph, owned by
// a single connection per spec.md §5's per-connection concurrency model.
type Snapshot struct {
	GraphName         string
	LoadedGeneration  int64
	LastLoadTime      time.Time
	AutoReload        bool
	ReloadDebounceSec int
}

// Reloader performs the actual reload work (re-running the loader against
// the source) and returns the generation recorded immediately after load
// completion, per the Open Question resolution in spec.md §9: reading the
// generation after the loader finishes guarantees the snapshot is at least
// as fresh as the recorded value.
type Reloader interface {
	Reload(ctx context.Context, graphName string) (loadedGeneration int64, err error)
}

// EnsureFresh runs the spec.md §4.11 decision tree for a connection that
// holds snap (nil if nothing is loaded yet). On DecisionReloaded it mutates
// snap.LoadedGeneration and snap.LastLoadTime in place.
func EnsureFresh(ctx context.Context, store Store, reloader Reloader, snap *Snapshot, now time.Time) Decision {
	if snap == nil {
		return DecisionNoSnapshot
	}

	current, err := store.Fetch(ctx, snap.GraphName)
	if err != nil {
		return DecisionStoreUnavailable
	}

	if snap.LoadedGeneration >= current {
		return DecisionFresh
	}

	if !snap.AutoReload {
		return DecisionServeStaleAutoReloadDisabled
	}

	if snap.ReloadDebounceSec > 0 {
		elapsed := now.Sub(snap.LastLoadTime)
		if elapsed < time.Duration(snap.ReloadDebounceSec)*time.Second {
			return DecisionServeStaleDebounced
		}
	}

	loaded, err := reloader.Reload(ctx, snap.GraphName)
	if err != nil {
		return DecisionStoreUnavailable
	}
	snap.LoadedGeneration = loaded
	snap.LastLoadTime = now
	return DecisionReloaded
}

// IsStale reports whether snap's recorded generation trails current. Used
// by the status() control entry, which must expose is_stale independent of
// whether an EnsureFresh call has run this request.
func IsStale(ctx context.Context, store Store, snap *Snapshot) (current int64, stale bool, err error) {
	current, err = store.Fetch(ctx, snap.GraphName)
	if err != nil {
		return 0, false, err
	}
	return current, snap.LoadedGeneration < current, nil
}
