package cast

import (
	"sync"

	"github.com/rs/zerolog"

	"iface-caster/collect"
	"iface-caster/diagnostic"
	"iface-caster/registry"
)

// process-wide registration state; frozen by the first call to Default
var (
	collector = collect.New()

	buildOnce sync.Once
	built     *registry.Registry
)

// Declare makes I castable-into through the process-wide registry. Call it
// from init().
func Declare[I any]() {
	collect.DeclareAt[I](collector, collect.Caller(1))
}

// Register records that T, or *T, implements I. Call it from init().
func Register[T, I any]() {
	e := registry.EntryFor[T, I]()
	e.Origin = collect.Caller(1)

	collect.Submit(collector, e)
}

// RegisterEntry records a hand-built entry, see registry.NewEntry.
func RegisterEntry[I any](e registry.Entry[I]) {
	if e.Origin == "" {
		e.Origin = collect.Caller(1)
	}

	collect.Submit(collector, e)
}

// SetLogger sets where registration diagnostics are reported. It only has
// an effect before the first cast.
func SetLogger(logger zerolog.Logger) {
	collector.SetLogger(logger)
}

// Default returns the process-wide registry, building it on first use.
func Default() *registry.Registry {
	buildOnce.Do(func() {
		built = collector.Build()
	})

	return built
}

// Diagnostics returns what the build of the process-wide registry reported.
func Diagnostics() diagnostic.Diagnostics {
	return Default().Diagnostics()
}

// Ref casts x into I for reading.
func Ref[I any](x any) (I, bool) {
	return RefIn[I](Default(), x)
}

// Mut casts x, which must be a pointer, into I sharing that pointer.
func Mut[I any](x any) (I, bool) {
	return MutIn[I](Default(), x)
}

// Owned moves x into I. On failure the error is a *NotImplementedError
// carrying x unchanged.
func Owned[I any](x any) (I, error) {
	return OwnedIn[I](Default(), x)
}

// Implements reports whether x can be cast into I.
func Implements[I any](x any) bool {
	return ImplementsIn[I](Default(), x)
}
