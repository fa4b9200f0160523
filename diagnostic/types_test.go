package diagnostic

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type name string

func (n name) String() string { return string(n) }

func TestDiagnostics_Buckets(t *testing.T) {
	var d Diagnostics
	d.AddInfo(CodeDuplicateDeclaration, "declared twice", "plugins.Foo", "a.go:1")
	d.AddWarning(CodeDuplicateImplementation, "registered twice", Pair(name("plugins.A"), name("plugins.Foo")), "b.go:2")
	d.AddError(CodeManifestMissingInterface, "missing", "plugins.Qux", "")

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 1, d.Count(SeverityWarning))
	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)

	dups := d.ByCode(CodeDuplicateImplementation)
	require.Len(t, dups, 1)
	assert.Equal(t, "plugins.A -> plugins.Foo", dups[0].TypePair)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddWarning("w", "one", "", "")
	b.AddWarning("w", "two", "", "")
	b.AddError("e", "three", "", "")

	a.Merge(b)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 1, b.Count(SeverityWarning))
}

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	d.AddWarning("w", "only a warning", "", "")
	assert.NoError(t, d.Error())

	d.AddError("first", "broken", "", "")
	d.AddError("second", "also broken", "", "")

	err := d.Error()
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, err.Error(), "[second] also broken")
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Code:        CodeUndeclaredInterface,
		Message:     "never declared",
		TypePair:    "plugins.A -> plugins.Fooo",
		Origin:      "plugins.init.0 (a.go:12)",
		Suggestions: []string{"plugins.Foo"},
	}

	assert.Equal(t,
		"[plugins.A -> plugins.Fooo]: [undeclared-interface] never declared (at plugins.init.0 (a.go:12)); did you mean plugins.Foo?",
		d.String())

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}

func buildReport() Diagnostics {
	var d Diagnostics
	d.AddWarning(CodeDuplicateImplementation, "registered twice", "plugins.A -> plugins.Foo", "a.go:3")
	d.AddInfo(CodeDuplicateDeclaration, "declared twice", "plugins.Foo", "b.go:4")

	return d
}

func TestDiagnostics_ReadOnReturnedValue(t *testing.T) {
	assert.Equal(t, 2, buildReport().Len())
	assert.Equal(t, 1, buildReport().Count(SeverityInfo))
	assert.Len(t, buildReport().ByCode(CodeDuplicateImplementation), 1)
	assert.Len(t, buildReport().All(), 2)
	assert.False(t, buildReport().HasErrors())
	assert.True(t, buildReport().IsValid())
	assert.NoError(t, buildReport().Error())
}

func TestDiagnostics_Clone(t *testing.T) {
	var d Diagnostics
	d.Add(Diagnostic{Severity: SeverityError, Code: CodeManifestMissingInterface, Suggestions: []string{"plugins.Bar"}})

	c := d.Clone()
	c.Errors[0].Suggestions[0] = "plugins.Qux"
	c.Errors[0].Message = "edited"

	assert.Equal(t, []string{"plugins.Bar"}, d.Errors[0].Suggestions)
	assert.Empty(t, d.Errors[0].Message)
	assert.Nil(t, Diagnostics{}.Clone().Warnings)
}
