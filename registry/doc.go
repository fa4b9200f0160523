// Package registry holds the data structures behind interface casting.
//
// Layout:
//  1. Entry[I] - the conversions of one concrete type into interface I, one
//     per ownership mode (by reference, by mutable reference, owned).
//  2. Table[I] - every Entry[I] keyed by concrete identity.
//  3. Registry - a type-indexed container of tables, keyed by the identity of
//     the interface a caller names at its own compile time.
//
// A Registry is assembled once (see package collect), frozen, and only read
// afterwards. Nothing in this package synchronizes: callers must not hand a
// Registry to readers before Freeze returns.
package registry
