package registry

import (
	"fmt"

	"iface-caster/diagnostic"
	"iface-caster/identity"
	"iface-caster/internal/common"
)

// table is the part of Table[I] that does not depend on I.
type table interface {
	Interface() identity.Interface
	Len() int
	Concretes() []identity.Concrete
}

// Registry is a type-indexed container of tables, one per castable interface.
type Registry struct {
	tables map[identity.Interface]table
	diags  diagnostic.Diagnostics
	frozen bool
}

// New creates an empty, unfrozen registry.
func New() *Registry {
	return &Registry{tables: make(map[identity.Interface]table)}
}

// InsertTable stores t as the table for I, replacing any previous one.
// It panics once r is frozen.
func InsertTable[I any](r *Registry, t *Table[I]) {
	if r.frozen {
		panic(fmt.Errorf("%w: cannot insert the table for %s", ErrFrozen, t.Interface()))
	}

	r.tables[t.Interface()] = t
}

// GetTable returns the table for I, if I was ever inserted.
func GetTable[I any](r *Registry) (*Table[I], bool) {
	t, ok := r.tables[identity.InterfaceFor[I]()]
	if !ok {
		return nil, false
	}

	typed, ok := t.(*Table[I])

	return typed, ok
}

// Record attaches the diagnostics of the build that produced r.
func (r *Registry) Record(d diagnostic.Diagnostics) {
	if r.frozen {
		panic(fmt.Errorf("%w: cannot record diagnostics", ErrFrozen))
	}

	r.diags.Merge(d.Clone())
}

// Freeze makes r read-only. Freezing twice is a no-op.
func (r *Registry) Freeze() { r.frozen = true }

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool { return r.frozen }

// Diagnostics returns a copy of what was recorded while r was built.
func (r *Registry) Diagnostics() diagnostic.Diagnostics {
	return r.diags.Clone()
}

// Len returns the number of castable interfaces.
func (r *Registry) Len() int { return len(r.tables) }

// Interfaces returns the castable interfaces sorted by name.
func (r *Registry) Interfaces() []identity.Interface {
	return common.SortedBy(common.MapKeys(r.tables), identity.Interface.FullName)
}

// Declared reports whether iface has a table, empty or not.
func (r *Registry) Declared(iface identity.Interface) bool {
	_, ok := r.tables[iface]
	return ok
}

// Implementers returns the concrete types registered for iface.
func (r *Registry) Implementers(iface identity.Interface) ([]identity.Concrete, bool) {
	t, ok := r.tables[iface]
	if !ok {
		return nil, false
	}

	return t.Concretes(), true
}
