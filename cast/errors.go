package cast

import (
	"errors"
	"fmt"
	"strings"

	"iface-caster/identity"
)

var (
	ErrUnregisteredInterface = errors.New("interface was never declared castable")
	ErrNotImplemented        = errors.New("concrete type does not implement the interface")
)

// UnregisteredInterfaceError is the panic value of a cast into an
// interface without a table.
type UnregisteredInterfaceError struct {
	Interface   identity.Interface
	Op          string
	Suggestions []string
}

func (e *UnregisteredInterfaceError) Error() string {
	msg := fmt.Sprintf("cast.%s: %s: %v", e.Op, e.Interface, ErrUnregisteredInterface)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}

	return msg
}

func (e *UnregisteredInterfaceError) Unwrap() error { return ErrUnregisteredInterface }

// NotImplementedError is returned by Owned when the value cannot be cast.
// Value is the argument exactly as it was passed in.
type NotImplementedError struct {
	Value     any
	Concrete  identity.Concrete
	Interface identity.Interface
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("cast.Owned: %s -> %s: %v", e.Concrete, e.Interface, ErrNotImplemented)
}

func (e *NotImplementedError) Unwrap() error { return ErrNotImplemented }
