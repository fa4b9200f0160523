package match

import (
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"ReadCloser", "readcloser"},
		{"read_closer", "readcloser"},
		{"read-closer", "readcloser"},
		{"readCloser", "readcloser"},
		{"READCLOSER", "readcloser"},

		// Acronyms
		{"HTTPHandler", "httphandler"},
		{"newJSONCodec", "newjsoncodec"},

		// Qualified names
		{"plugins.Foo", "pluginsfoo"},
		{"iface-caster/examples/plugins.Bar", "ifacecasterexamplespluginsbar"},

		// Edge cases
		{"", ""},
		{"a", "a"},
		{"A", "a"},
		{"IO", "io"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdentWithSuffixStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"FooInterface", "foo"},
		{"barIface", "bar"},
		{"BazImpl", "baz"},
		{"reader_interface", "reader"},

		// Should not strip if result would be empty
		{"Interface", "interface"},
		{"Impl", "impl"},

		// No suffix to strip
		{"Closer", "closer"},
		{"Castable", "castable"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdentWithSuffixStrip(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdentWithSuffixStrip(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"ReadCloser", []string{"Read", "Closer"}},
		{"castSource", []string{"cast", "Source"}},
		{"HTTPHandler", []string{"HTTP", "Handler"}},
		{"newJSONCodec", []string{"new", "JSON", "Codec"}},
		{"read_closer", []string{"read", "closer"}},
		{"plugins.Foo", []string{"plugins", "Foo"}},
		{"a/b.C", []string{"a", "b", "C"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"lowercase", []string{"lowercase"}},
		{"", nil},
		{"a", []string{"a"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := tokenizeCamelCase(tt.input)
			if !stringSliceEqual(result, tt.expected) {
				t.Errorf("tokenizeCamelCase(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
