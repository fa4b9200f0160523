package registry

import (
	"fmt"
	"reflect"

	"iface-caster/identity"
)

// Adapter views the value behind p as I.
type Adapter[T, I any] func(p *T) I

// Entry stores how to convert an opaque value of one concrete type into I,
// for each ownership mode. Every operation accepts exactly the values whose
// identity equals Concrete and reports false for anything else.
type Entry[I any] struct {
	Concrete identity.Concrete

	// Ref accepts a T or a non-nil *T and returns a read view.
	Ref func(any) (I, bool)
	// Mut accepts only a non-nil *T and returns a view sharing that pointer.
	Mut func(any) (I, bool)
	// Owned accepts a T, moved to a fresh box, or a non-nil *T, transferred as is.
	Owned func(any) (I, bool)

	SourceName string
	TargetName string
	// Origin is the registration site, filled in by the collector.
	Origin string
}

// EntryFor builds the entry for T viewed as I through Go's own method sets.
// It panics when T is a pointer or interface type, or when neither T nor *T
// implements I.
func EntryFor[T, I any]() Entry[I] {
	iface := identity.InterfaceFor[I]()
	concrete := concreteFor[T]()

	if !iface.Implemented(concrete) {
		panic(fmt.Sprintf("registry: %s does not implement %s", concrete, iface))
	}

	byPointer := func(p *T) I { return any(p).(I) }

	byRef := byPointer
	if concrete.Type().Implements(iface.Type()) {
		// value receivers only: hand out a copy so the view cannot write through
		byRef = func(p *T) I { return any(*p).(I) }
	}

	return newEntry[T, I](concrete, iface, byRef, byPointer, byPointer)
}

// NewEntry builds the entry for T viewed as I through explicit adapters, for
// types that need a wrapper to satisfy I. All three adapters are required.
func NewEntry[T, I any](ref, mut, owned Adapter[T, I]) Entry[I] {
	iface := identity.InterfaceFor[I]()
	concrete := concreteFor[T]()

	if ref == nil || mut == nil || owned == nil {
		panic(fmt.Sprintf("registry: %s -> %s: %v", concrete, iface, ErrIncompleteEntry))
	}

	return newEntry[T, I](concrete, iface, ref, mut, owned)
}

func newEntry[T, I any](concrete identity.Concrete, iface identity.Interface, ref, mut, owned Adapter[T, I]) Entry[I] {
	return Entry[I]{
		Concrete: concrete,
		Ref: func(src any) (I, bool) {
			return apply[T, I](src, true, ref)
		},
		Mut: func(src any) (I, bool) {
			return apply[T, I](src, false, mut)
		},
		Owned: func(src any) (I, bool) {
			return apply[T, I](src, true, owned)
		},
		SourceName: concrete.String(),
		TargetName: iface.String(),
	}
}

func apply[T, I any](src any, allowValue bool, view Adapter[T, I]) (I, bool) {
	switch v := src.(type) {
	case *T:
		if v != nil {
			return view(v), true
		}
	case T:
		if allowValue {
			return view(&v), true
		}
	}

	var zero I

	return zero, false
}

// Convert applies the operation matching mode.
func (e Entry[I]) Convert(mode Mode, v any) (I, bool) {
	switch mode {
	case ModeRef:
		return e.Ref(v)
	case ModeMut:
		return e.Mut(v)
	case ModeOwned:
		return e.Owned(v)
	default:
		panic(fmt.Sprintf("registry: unknown conversion mode %s", mode))
	}
}

// Validate reports an entry that cannot serve every mode.
func (e Entry[I]) Validate() error {
	if e.Concrete.IsZero() {
		return fmt.Errorf("%w: no concrete type", ErrIncompleteEntry)
	}

	for mode, op := range [ModeTotal]func(any) (I, bool){e.Ref, e.Mut, e.Owned} {
		if op == nil {
			return fmt.Errorf("%w: %s -> %s has no %s conversion", ErrIncompleteEntry, e.SourceName, e.TargetName, Mode(mode))
		}
	}

	return nil
}

func concreteFor[T any]() identity.Concrete {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Pointer:
		panic(fmt.Sprintf("registry: register %s instead of the pointer type %s", t.Elem(), t))
	case reflect.Interface:
		panic(fmt.Sprintf("registry: %s is an interface, not a concrete type", t))
	}

	return identity.ConcreteOf(t)
}
