package cast

import (
	"iface-caster/identity"
	"iface-caster/internal/match"
	"iface-caster/registry"
)

// Source is implemented by values that stand for another value when cast,
// such as handles around plugin objects. The handle itself is never looked
// up; CastSource is, and if that is a Source again it is unwrapped in turn,
// up to maxSourceDepth levels.
type Source interface {
	CastSource() any
}

// maxSourceDepth bounds Source unwrapping so a handle pointing at itself
// cannot hang a cast.
const maxSourceDepth = 16

// RefIn casts x into I for reading.
func RefIn[I any](reg *registry.Registry, x any) (I, bool) {
	return convert[I](reg, "Ref", registry.ModeRef, x)
}

// MutIn casts x, which must be a pointer, into I sharing that pointer.
func MutIn[I any](reg *registry.Registry, x any) (I, bool) {
	return convert[I](reg, "Mut", registry.ModeMut, x)
}

// OwnedIn moves x into I. On failure the error is a *NotImplementedError
// carrying x unchanged.
func OwnedIn[I any](reg *registry.Registry, x any) (I, error) {
	if out, ok := convert[I](reg, "Owned", registry.ModeOwned, x); ok {
		return out, nil
	}

	var zero I

	return zero, &NotImplementedError{
		Value:     x,
		Concrete:  identity.Of(view(x)),
		Interface: identity.InterfaceFor[I](),
	}
}

// ImplementsIn reports whether RefIn would succeed.
func ImplementsIn[I any](reg *registry.Registry, x any) bool {
	_, ok := RefIn[I](reg, x)
	return ok
}

func convert[I any](reg *registry.Registry, op string, mode registry.Mode, x any) (I, bool) {
	v := view(x)

	t, ok := registry.GetTable[I](reg)
	if !ok {
		panic(unregistered[I](reg, op))
	}

	e, ok := t.Lookup(identity.Of(v))
	if !ok {
		var zero I
		return zero, false
	}

	return e.Convert(mode, v)
}

func view(x any) any {
	for range maxSourceDepth {
		s, ok := x.(Source)
		if !ok {
			break
		}

		x = s.CastSource()
	}

	return x
}

func unregistered[I any](reg *registry.Registry, op string) *UnregisteredInterfaceError {
	iface := identity.InterfaceFor[I]()

	declared := reg.Interfaces()
	names := make([]string, 0, len(declared))
	for _, d := range declared {
		names = append(names, d.String())
	}

	return &UnregisteredInterfaceError{
		Interface:   iface,
		Op:          op,
		Suggestions: match.Suggest(iface.String(), names, 3),
	}
}
