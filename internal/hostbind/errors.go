package hostbind

import "errors"

// Sentinel errors forming the host-facing error taxonomy (spec.md §7).
// Algorithmic packages never raise; hostbind is the only layer that
// converts absent-snapshot/invalid-input conditions into an error a host
// binding can surface to its caller.
var (
	ErrNoGraphLoaded     = errors.New("hostbind: no graph loaded")
	ErrNodeNotFound      = errors.New("hostbind: node not found")
	ErrInvalidDirection  = errors.New("hostbind: invalid direction filter")
	ErrNegativeParameter = errors.New("hostbind: negative max_hops/max_depth/max_paths")
	ErrSourceGraphUnset  = errors.New("hostbind: source_graph not configured and no graph_name argument given")
)
