// Package diagnostic provides structured warnings and errors produced while
// a cast registry is assembled or checked against a manifest.
//
// Key capabilities:
//   - Duplicate (interface, concrete type) registrations, naming both origins
//   - Entries submitted for interfaces nobody declared castable
//   - Drift between a manifest and the registry that was actually built
package diagnostic
