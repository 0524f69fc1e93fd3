package graphstore

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Store/loader operations. Per the error-handling
// design, these packages never abort a caller — they return these values (or
// absent/empty results) and leave conversion to a host-level error to the
// hostbind package.
var (
	ErrTooManyRelTypes = errors.New("graphstore: relationship-type interner exhausted (65,535 types)")
	ErrMemoryLimit     = errors.New("graphstore: loaded graph exceeds configured memory limit")
)

// LoadError wraps a failure encountered during bulk load with the context
// needed to diagnose it, following the teacher's structured-error shape.
type LoadError struct {
	Op    string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("graphstore: %s: %v", e.Op, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
