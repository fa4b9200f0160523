package manifest

import (
	"fmt"
	"slices"

	"iface-caster/diagnostic"
	"iface-caster/identity"
	"iface-caster/internal/common"
	"iface-caster/internal/match"
	"iface-caster/registry"
)

// Check compares a frozen registry with the manifest.
func Check(reg *registry.Registry, f *File) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	declared := reg.Interfaces()

	for _, want := range f.Interfaces {
		idx := slices.IndexFunc(declared, func(i identity.Interface) bool { return i.Matches(want.Name) })
		if idx < 0 {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityError,
				Code:        diagnostic.CodeManifestMissingInterface,
				Message:     "interface is not declared castable",
				TypePair:    want.Name,
				Suggestions: match.Suggest(want.Name, names(declared), 3),
			})

			continue
		}

		iface := declared[idx]
		impls, _ := reg.Implementers(iface)

		checkInterface(&diags, f.Strict, want, iface, impls)
	}

	if f.Duplicates == DuplicatesError {
		build := reg.Diagnostics()
		for _, d := range build.ByCode(diagnostic.CodeDuplicateImplementation) {
			d.Severity = diagnostic.SeverityError
			diags.Add(d)
		}
	}

	return diags
}

func checkInterface(diags *diagnostic.Diagnostics, strict bool, want Interface, iface identity.Interface, impls []identity.Concrete) {
	for _, name := range want.Implementations {
		if slices.ContainsFunc(impls, func(c identity.Concrete) bool { return c.Matches(name) }) {
			continue
		}

		diags.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityError,
			Code:        diagnostic.CodeManifestMissingImplementation,
			Message:     "expected implementation is not registered",
			TypePair:    name + " -> " + iface.String(),
			Suggestions: match.Suggest(name, names(impls), 3),
		})
	}

	for _, impl := range impls {
		if slices.ContainsFunc(want.Implementations, impl.Matches) {
			continue
		}

		sev := diagnostic.SeverityWarning
		if strict {
			sev = diagnostic.SeverityError
		}

		diags.Add(diagnostic.Diagnostic{
			Severity: sev,
			Code:     diagnostic.CodeManifestUnexpected,
			Message:  "registered implementation is not listed in the manifest",
			TypePair: diagnostic.Pair(impl, iface),
		})
	}

	if common.IsEmpty(impls) && !want.AllowEmpty {
		diags.AddWarning(diagnostic.CodeManifestEmptyInterface,
			fmt.Sprintf("declared castable but nothing implements it; set allow_empty on %s if intended", want.Name),
			iface.String(), "")
	}
}

func names[S ~[]E, E fmt.Stringer](s S) []string {
	out := make([]string, 0, len(s))
	for _, e := range s {
		out = append(out, e.String())
	}

	return out
}
