// Package identity supplies the runtime keys used throughout the cast
// registry: one for the concrete type stored behind a value and one for
// the interface a value is being cast into.
//
// A concrete identity ignores how the value is currently held. A T, a *T,
// an any holding either and an interface value holding either all map to
// the same Concrete. Identities are only meaningful inside the current
// process.
package identity
