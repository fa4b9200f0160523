package cast_test

import "iface-caster/cast"

type Foo interface{ Foo() int }

type Bar interface{ Bar() int }

// Empty is declared but never implemented.
type Empty interface{ Empty() }

// Barr is never declared.
type Barr interface{ Bar() int }

type A struct{ X int }

func (a *A) Foo() int {
	a.X++
	return a.X
}

func (a A) Bar() int { return a.X }

type B struct{}

type handle struct{ target any }

func (h handle) CastSource() any { return h.target }

// loop stands for itself.
type loop struct{}

func (l loop) CastSource() any { return l }

func init() {
	cast.Declare[Foo]()
	cast.Declare[Bar]()
	cast.Declare[Empty]()

	cast.Register[A, Foo]()
	cast.Register[A, Bar]()
}

func recovered(f func()) (v any) {
	defer func() { v = recover() }()
	f()

	return nil
}
