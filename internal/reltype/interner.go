// Package reltype interns relationship-type names into compact 16-bit IDs
// shared across a loaded graph snapshot.
package reltype

import "fmt"

// ID is the compact identifier assigned to an interned relationship-type name.
type ID = uint16

// MaxTypes is the largest number of distinct relationship types a single
// snapshot can hold. The 16-bit ID keeps the per-edge record tight.
const MaxTypes = 65535

// ErrTooManyTypes is returned by Intern once the 16-bit ID space is exhausted.
type ErrTooManyTypes struct {
	Name string
}

func (e *ErrTooManyTypes) Error() string {
	return fmt.Sprintf("reltype: cannot intern %q: exceeded maximum of %d relationship types", e.Name, MaxTypes)
}

// Interner is a strictly append-only name<->ID table. IDs are assigned
// densely starting at 0, in first-seen order.
type Interner struct {
	names []string
	ids   map[string]ID
}

// New creates an empty interner.
func New() *Interner {
	return &Interner{ids: make(map[string]ID)}
}

// NewWithCapacity pre-sizes the backing map for an expected number of
// distinct relationship types.
func NewWithCapacity(hint int) *Interner {
	return &Interner{
		names: make([]string, 0, hint),
		ids:   make(map[string]ID, hint),
	}
}

// Intern returns the existing ID for name if present, otherwise appends a
// new entry and returns its ID. Fails once MaxTypes (65,535) names are
// already interned — the source schema is expected to carry tens of distinct
// relationship types, not thousands.
func (in *Interner) Intern(name string) (ID, error) {
	if id, ok := in.ids[name]; ok {
		return id, nil
	}
	if len(in.names) >= MaxTypes {
		return 0, &ErrTooManyTypes{Name: name}
	}
	id := ID(len(in.names))
	in.names = append(in.names, name)
	in.ids[name] = id
	return id, nil
}

// NameOf returns the name registered for id, or ("", false) if id is out of
// range for this snapshot.
func (in *Interner) NameOf(id ID) (string, bool) {
	if int(id) >= len(in.names) {
		return "", false
	}
	return in.names[id], true
}

// Len reports the number of distinct relationship types interned so far.
func (in *Interner) Len() int {
	return len(in.names)
}
