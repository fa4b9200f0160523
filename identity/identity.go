package identity

import (
	"fmt"
	"reflect"

	"iface-caster/internal/common"
)

// Concrete identifies the dynamic type behind a value, with one level of
// pointer indirection removed.
type Concrete struct {
	t reflect.Type
}

// Interface identifies an interface type values can be cast into.
type Interface struct {
	t reflect.Type
}

// Of returns the identity of the concrete type stored in v. Untyped nil
// yields the zero Concrete, which no table ever contains.
func Of(v any) Concrete {
	if v == nil {
		return Concrete{}
	}

	return ConcreteOf(reflect.TypeOf(v))
}

// ConcreteOf returns the identity for a reflect type.
func ConcreteOf(t reflect.Type) Concrete {
	if t == nil {
		return Concrete{}
	}

	_, base := ptrDepthAndBase(t, 1)

	return Concrete{t: base}
}

// ConcreteFor returns the identity of T.
func ConcreteFor[T any]() Concrete {
	return ConcreteOf(reflect.TypeFor[T]())
}

// InterfaceFor returns the identity of the interface type I. It panics when
// I is not an interface type.
func InterfaceFor[I any]() Interface {
	t := reflect.TypeFor[I]()
	if t.Kind() != reflect.Interface {
		panic(fmt.Sprintf("identity: %s is not an interface type", t))
	}

	return Interface{t: t}
}

// Type returns the underlying reflect type, nil for the zero identity.
func (c Concrete) Type() reflect.Type { return c.t }

// IsZero reports whether c is the identity of untyped nil.
func (c Concrete) IsZero() bool { return c.t == nil }

// String returns the short pkg.Name form.
func (c Concrete) String() string { return shortName(c.t) }

// FullName returns the import/path.Name form.
func (c Concrete) FullName() string { return fullName(c.t) }

// Matches reports whether name refers to c in any of its printable forms.
func (c Concrete) Matches(name string) bool { return matches(c.t, name) }

// Type returns the underlying reflect type, nil for the zero identity.
func (i Interface) Type() reflect.Type { return i.t }

// IsZero reports whether i was never initialized.
func (i Interface) IsZero() bool { return i.t == nil }

// String returns the short pkg.Name form.
func (i Interface) String() string { return shortName(i.t) }

// FullName returns the import/path.Name form.
func (i Interface) FullName() string { return fullName(i.t) }

// Matches reports whether name refers to i in any of its printable forms.
func (i Interface) Matches(name string) bool { return matches(i.t, name) }

// Implemented reports whether values of c, or pointers to them, satisfy i.
func (i Interface) Implemented(c Concrete) bool {
	if i.t == nil || c.t == nil {
		return false
	}

	return reflect.PointerTo(c.t).Implements(i.t)
}

func shortName(t reflect.Type) string {
	if t == nil {
		return common.NilStr
	}

	return t.String()
}

func fullName(t reflect.Type) string {
	if t == nil {
		return common.NilStr
	}

	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}

func matches(t reflect.Type, name string) bool {
	if t == nil || name == "" {
		return false
	}

	if name == shortName(t) || name == fullName(t) {
		return true
	}

	// the package clause may differ from the last import path element
	return t.PkgPath() != "" && name == common.PkgAlias(t.PkgPath())+"."+t.Name()
}

// ptrDepthAndBase strips at most limit pointer levels and reports how many
// were removed.
func ptrDepthAndBase(t reflect.Type, limit int) (depth int, base reflect.Type) {
	depth, base = 0, t
	for base.Kind() == reflect.Pointer && depth < limit {
		depth++
		base = base.Elem()
	}

	return
}
