package logging

import "time"

// Generic field constructors, mirrored from the host logging package.
func String(key, value string) Field    { return Field{Key: key, Value: value} }
func Int(key string, value int) Field   { return Field{Key: key, Value: value} }
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Domain field constructors, used by internal/hostbind so every
// query/reload log line carries consistent keys regardless of call site.

// GraphName tags the graph_name a log line pertains to.
func GraphName(name string) Field { return Field{Key: "graph_name", Value: name} }

// Generation tags a generation counter value (loaded or current).
func Generation(gen int64) Field { return Field{Key: "generation", Value: gen} }

// NodeID tags a graph NodeId involved in an operation.
func NodeID(id uint64) Field { return Field{Key: "node_id", Value: id} }

// Distance tags a BFS hop distance.
func Distance(d uint32) Field { return Field{Key: "distance", Value: d} }

// RelType tags a relationship-type name.
func RelType(name string) Field { return Field{Key: "rel_type", Value: name} }

// CorrelationID tags the uuid attached to an ensure_fresh -> query sequence.
func CorrelationID(id string) Field { return Field{Key: "correlation_id", Value: id} }

// Entry tags which query/control entry point emitted a log line.
func Entry(name string) Field { return Field{Key: "entry", Value: name} }
