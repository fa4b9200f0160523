package collect

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"iface-caster/diagnostic"
	"iface-caster/identity"
	"iface-caster/internal/common"
	"iface-caster/internal/match"
	"iface-caster/registry"
)

// Collector gathers interface declarations and conversion entries until
// Build freezes them into a registry.
type Collector struct {
	mu     sync.Mutex
	logger zerolog.Logger

	builders []builder
	declared map[identity.Interface]string // origin of the first declaration
	entries  map[identity.Interface][]contribution
	diags    diagnostic.Diagnostics
	frozen   bool
}

type builder struct {
	iface identity.Interface
	build func(reg *registry.Registry, contributions []contribution, diags *diagnostic.Diagnostics)
}

// contribution is one submitted registry.Entry[I] with I erased.
type contribution struct {
	entry    any
	concrete identity.Concrete
	origin   string
}

// New creates an empty collector.
func New(opts ...Option) *Collector {
	c := &Collector{
		logger:   zerolog.Nop(),
		declared: make(map[identity.Interface]string),
		entries:  make(map[identity.Interface][]contribution),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetLogger replaces the logger build diagnostics are reported to.
func (c *Collector) SetLogger(logger zerolog.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger = logger
}

// Declare makes I castable-into: Build will produce a table for I even if
// no entry is ever submitted for it.
func Declare[I any](c *Collector) {
	DeclareAt[I](c, Caller(1))
}

// DeclareAt is Declare with an explicit registration site, for wrappers
// that want to report their own caller.
func DeclareAt[I any](c *Collector, origin string) {
	iface := identity.InterfaceFor[I]()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.mustNotBeFrozen("declare " + iface.String())

	if first, ok := c.declared[iface]; ok {
		c.diags.AddInfo(diagnostic.CodeDuplicateDeclaration,
			fmt.Sprintf("interface already declared at %s; the repeated declaration is ignored", first),
			iface.String(), origin)

		return
	}

	c.declared[iface] = origin
	c.builders = append(c.builders, builder{
		iface: iface,
		build: func(reg *registry.Registry, contributions []contribution, diags *diagnostic.Diagnostics) {
			t := registry.NewTable[I]()
			for _, contrib := range contributions {
				e := contrib.entry.(registry.Entry[I])
				if prev, replaced := t.Insert(e); replaced {
					diags.AddWarning(diagnostic.CodeDuplicateImplementation,
						fmt.Sprintf("registered more than once; the entry from %s replaces the one from %s", e.Origin, prev.Origin),
						diagnostic.Pair(e.Concrete, iface), e.Origin)
				}
			}

			registry.InsertTable(reg, t)
		},
	})
}

// Submit contributes one conversion entry into I. An entry without an
// Origin is stamped with the caller of Submit. It panics when e is
// incomplete.
func Submit[I any](c *Collector, e registry.Entry[I]) {
	if e.Origin == "" {
		e.Origin = Caller(1)
	}

	if err := e.Validate(); err != nil {
		panic(fmt.Errorf("collect: submitted at %s: %w", e.Origin, err))
	}

	iface := identity.InterfaceFor[I]()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.mustNotBeFrozen("submit " + diagnostic.Pair(e.Concrete, iface))

	c.entries[iface] = append(c.entries[iface], contribution{
		entry:    e,
		concrete: e.Concrete,
		origin:   e.Origin,
	})
}

// Implement contributes the method-set based entry for T viewed as I.
func Implement[T, I any](c *Collector) {
	e := registry.EntryFor[T, I]()
	e.Origin = Caller(1)

	Submit(c, e)
}

// Build runs every interface builder once, freezes the registry and the
// collector, and returns the registry. The diagnostics of the build are
// attached to the registry and reported to the logger.
func (c *Collector) Build() *registry.Registry {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mustNotBeFrozen("build twice")
	c.frozen = true

	reg := registry.New()

	var diags diagnostic.Diagnostics
	diags.Merge(c.diags)

	for _, b := range c.builders {
		b.build(reg, c.entries[b.iface], &diags)
	}

	c.reportOrphans(&diags)
	c.report(diags)

	reg.Record(diags)
	reg.Freeze()

	c.logger.Debug().
		Int("interfaces", reg.Len()).
		Int("warnings", diags.Count(diagnostic.SeverityWarning)).
		Msg("cast registry frozen")

	return reg
}

// Frozen reports whether Build has run.
func (c *Collector) Frozen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.frozen
}

// Declared returns the interfaces declared so far, sorted by name.
func (c *Collector) Declared() []identity.Interface {
	c.mu.Lock()
	defer c.mu.Unlock()

	return common.SortedBy(common.MapKeys(c.declared), identity.Interface.FullName)
}

// reportOrphans flags entries whose interface was never declared; no
// builder will ever harvest them.
func (c *Collector) reportOrphans(diags *diagnostic.Diagnostics) {
	names := make([]string, 0, len(c.declared))
	for iface := range c.declared {
		names = append(names, iface.String())
	}

	orphans := common.SortedBy(common.MapKeys(c.entries), identity.Interface.FullName)
	for _, iface := range orphans {
		if _, ok := c.declared[iface]; ok {
			continue
		}

		suggestions := match.Suggest(iface.String(), names, 3)
		for _, contrib := range c.entries[iface] {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityWarning,
				Code:        diagnostic.CodeUndeclaredInterface,
				Message:     "entry submitted for an interface that was never declared castable; it is dropped",
				TypePair:    diagnostic.Pair(contrib.concrete, iface),
				Origin:      contrib.origin,
				Suggestions: suggestions,
			})
		}
	}
}

func (c *Collector) report(diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		c.logger.Warn().
			Str("code", d.Code).
			Str("pair", d.TypePair).
			Str("origin", d.Origin).
			Msg(d.Message)
	}

	for _, d := range diags.Infos {
		c.logger.Debug().
			Str("code", d.Code).
			Str("pair", d.TypePair).
			Str("origin", d.Origin).
			Msg(d.Message)
	}
}

func (c *Collector) mustNotBeFrozen(action string) {
	if c.frozen {
		panic(fmt.Errorf("collect: cannot %s: %w", action, registry.ErrFrozen))
	}
}
