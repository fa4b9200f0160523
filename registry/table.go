package registry

import (
	"iface-caster/identity"
	"iface-caster/internal/common"
)

// Table maps concrete identities to their conversion into one interface.
type Table[I any] struct {
	iface   identity.Interface
	entries map[identity.Concrete]Entry[I]
}

// NewTable creates an empty table for I.
func NewTable[I any]() *Table[I] {
	return &Table[I]{
		iface:   identity.InterfaceFor[I](),
		entries: make(map[identity.Concrete]Entry[I]),
	}
}

// Insert stores e, replacing any entry for the same concrete identity. The
// replaced entry is returned so callers can report the collision; the table
// itself keeps the later one without complaint.
func (t *Table[I]) Insert(e Entry[I]) (previous Entry[I], replaced bool) {
	previous, replaced = t.entries[e.Concrete]
	t.entries[e.Concrete] = e

	return previous, replaced
}

// Lookup returns the entry for c.
func (t *Table[I]) Lookup(c identity.Concrete) (Entry[I], bool) {
	e, ok := t.entries[c]
	return e, ok
}

// Len returns the number of implementers.
func (t *Table[I]) Len() int { return len(t.entries) }

// Interface returns the identity of I.
func (t *Table[I]) Interface() identity.Interface { return t.iface }

// Concretes returns the implementers sorted by name.
func (t *Table[I]) Concretes() []identity.Concrete {
	return common.SortedBy(common.MapKeys(t.entries), identity.Concrete.FullName)
}
