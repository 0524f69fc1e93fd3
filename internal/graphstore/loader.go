package graphstore

// EdgeRecordIn is one row of the loader's ingress format (spec.md §6,
// "Loader ingress"): the external source-database loader (out of scope —
// see internal/pgsource for a concrete adapter) streams these without
// materializing the whole edge set up front.
//
// Setting NodeOnly registers FromID/FromLabel/FromAppID without an edge,
// for vertices that belong to the graph but happen to have no relationships
// loaded yet; ToID and the edge fields are ignored in that case. This mirrors
// the original source's separate vertex- and edge-loading passes, which
// register a vertex via add_node independent of any add_edge call.
type EdgeRecordIn struct {
	FromID       NodeID
	ToID         NodeID
	RelType      string
	FromLabel    string
	ToLabel      string
	FromAppID    string
	HasFromApp   bool
	ToAppID      string
	HasToApp     bool
	Confidence float32 // NaN if not loaded
	NodeOnly   bool
}

// BulkLoad ingests a stream of edge (and standalone vertex) records into
// store, registering endpoints (first occurrence wins), indexing app ids,
// interning the relationship-type name, and appending to both adjacency
// lists. It is streaming: records arrive over a channel so the caller never
// needs to hold the whole edge set in memory at once.
func BulkLoad(store *Store, records <-chan EdgeRecordIn) error {
	for rec := range records {
		if _, exists := store.Node(rec.FromID); !exists {
			store.AddNode(rec.FromID, rec.FromLabel, rec.FromAppID, rec.HasFromApp)
		} else if rec.HasFromApp {
			// Registering a later app_id still needs to land in the index
			// under first-occurrence semantics (invariant 3, spec.md §3).
			if _, ok := store.ResolveAppID(rec.FromAppID); !ok {
				store.appIDIndex[rec.FromAppID] = rec.FromID
			}
		}

		if rec.NodeOnly {
			continue
		}

		if _, exists := store.Node(rec.ToID); !exists {
			store.AddNode(rec.ToID, rec.ToLabel, rec.ToAppID, rec.HasToApp)
		} else if rec.HasToApp {
			if _, ok := store.ResolveAppID(rec.ToAppID); !ok {
				store.appIDIndex[rec.ToAppID] = rec.ToID
			}
		}

		relID, err := store.InternRelType(rec.RelType)
		if err != nil {
			return &LoadError{Op: "InternRelType", Cause: err}
		}

		store.AddEdge(rec.FromID, rec.ToID, relID, rec.Confidence)
	}
	return nil
}
