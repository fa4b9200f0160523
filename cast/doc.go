// Package cast reinterprets opaque values as interfaces registered at
// program start, and cross-casts interface values to other interfaces their
// concrete type implements.
//
// Interfaces are declared castable and implementations registered from
// init(), anywhere in the program:
//
//	func init() {
//		cast.Declare[Greeter]()
//		cast.Register[English, Greeter]()
//	}
//
// The first cast freezes everything registered so far into the
// process-wide registry; concurrent first callers wait for that single
// build. Later casts only read immutable state.
//
// Each query comes in three ownership modes:
//   - Ref views the value without taking it; value-receiver interfaces get
//     a copy so the view cannot write through.
//   - Mut needs a pointer and returns a view sharing it, so mutations are
//     visible to the caller.
//   - Owned takes the value over. On failure the original value comes back
//     untouched inside a *NotImplementedError, ready for another attempt.
//
// Casting into an interface that was never declared is a wiring bug and
// panics with *UnregisteredInterfaceError. A concrete type that simply does
// not implement the interface is an ordinary negative result.
//
// The ...In variants query an explicit registry built with package collect
// instead of the process-wide one.
package cast
