// Package collect assembles a cast registry from contributions made
// independently all over a program, without any central list of types.
//
// Registration protocol:
//  1. Declare[I] - once per interface that values may be cast into. It
//     registers a builder that knows how to turn every entry tagged for I
//     into a registry.Table[I].
//  2. Implement[T, I] or Submit[I] - once per (concrete type, interface)
//     pair. Typically called from init() next to the concrete type.
//  3. Build - runs every builder exactly once and freezes the result. The
//     collector refuses further contributions afterwards.
//
// Builders run in unspecified order and never see each other's tables.
// Within one interface entries are applied in submission order, so a later
// registration for the same concrete type replaces an earlier one. The
// replacement is not prevented; it is reported as a warning diagnostic
// naming both registration sites, and so are entries submitted for an
// interface nobody declared.
package collect
