package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect")
	require.NoError(t, err)

	assert.Contains(t, out, "iface-caster/examples/plugins.Foo")
	assert.Contains(t, out, "iface-caster/examples/plugins.Celsius")
	assert.Contains(t, out, "no diagnostics")
}

func TestProbe(t *testing.T) {
	out, err := run(t, "probe")
	require.NoError(t, err)

	assert.Regexp(t, `Ref\[Bar\]\(&A\{X: 5\}\)\s+-> 5\n`, out)
	assert.Regexp(t, `Ref\[Bar\]\(&B\{\}\)\s+-> not implemented\n`, out)
	assert.Contains(t, out, "-> 1, then 2")
	assert.Contains(t, out, "plugins.B -> plugins.Bar")
	assert.Contains(t, out, "21.5°C")
}

func TestMetrics(t *testing.T) {
	out, err := run(t, "metrics")
	require.NoError(t, err)

	assert.Contains(t, out, "iface_caster_interfaces 3")
	assert.Contains(t, out, `iface_caster_implementations{interface="iface-caster/examples/plugins.Baz"} 2`)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
interfaces:
  - name: plugins.Foo
    implementations: [plugins.A]
  - name: plugins.Bar
    implementations: [plugins.A]
  - name: plugins.Baz
    implementations: [plugins.B, plugins.Celsius]
`), 0o644))

	out, err := run(t, "check", "--manifest", good)
	require.NoError(t, err)
	assert.Contains(t, out, "no diagnostics")

	drift := filepath.Join(dir, "drift.toml")
	require.NoError(t, os.WriteFile(drift, []byte(`
strict = true

[[interfaces]]
name = "plugins.Foo"
implementations = ["plugins.B"]
`), 0o644))

	out, err = run(t, "check", "--manifest", drift)
	require.Error(t, err)
	assert.ErrorIs(t, err, errDriftFound)
	assert.Contains(t, out, "manifest-missing-implementation")
	assert.Contains(t, out, "manifest-unexpected-implementation")
}

func TestCheck_RequiresManifest(t *testing.T) {
	_, err := run(t, "check")
	assert.Error(t, err)
}
