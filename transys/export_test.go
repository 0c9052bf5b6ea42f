package transys

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixture(t *testing.T) *FiniteTransitionSystem {
	t.Helper()
	ts := NewFTS("fixture", []string{"p", "!q"}, []string{"a"})
	require.NoError(t, ts.AddState("s0", []string{"p", "!q"}))
	require.NoError(t, ts.AddState("s1", []string{}))
	require.NoError(t, ts.SetInitial("s0"))
	require.NoError(t, ts.AddActionTransition("s0", "s1", "a"))
	require.NoError(t, ts.AddActionTransition("s1", "s0", "a"))
	return ts
}

// TestPromelaString verifies the structural pieces of the SPIN
// process: bool declarations, initial selection, atomic assignment
// blocks and goto branches.
func TestPromelaString(t *testing.T) {
	out := exportFixture(t).PromelaString("")

	assert.Contains(t, out, "bool p;\n", "plain propositions get declarations")
	assert.NotContains(t, out, "bool !q", "negated propositions do not")
	assert.Contains(t, out, "active proctype fixture(){")

	assert.Contains(t, out, ":: goto s0\n", "initial-state selection")
	assert.Contains(t, out, "s0:\n")
	assert.Contains(t, out, `printf("State: s0\n");`)
	assert.Contains(t, out, "atomic{p = 1; q = 0;}",
		"plain props assign 1, negated props assign 0")
	assert.Contains(t, out, "atomic{}", "empty label still emits the atomic block")
	assert.Contains(t, out, "goto s1\n")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

// TestPromelaString_Procname verifies the procname override.
func TestPromelaString_Procname(t *testing.T) {
	out := exportFixture(t).PromelaString("widget")
	assert.Contains(t, out, "active proctype widget(){")
}

// TestSavePromela verifies the file header and extension handling.
func TestSavePromela(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "fixture")
	require.NoError(t, exportFixture(t).SavePromela(fname))

	data, err := os.ReadFile(fname + ".pml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Promela file generated with transys")
	assert.Contains(t, string(data), "active proctype fixture(){")
}

// TestDotString verifies nodes, initial markers and labeled edges in
// the DOT rendering.
func TestDotString(t *testing.T) {
	out := exportFixture(t).DotString()

	assert.Contains(t, out, "digraph fixture {")
	assert.Contains(t, out, "rankdir=LR;")
	assert.Contains(t, out, "start0 [shape=point];")
	assert.Contains(t, out, `start0 -> "s0";`)
	assert.Contains(t, out, `"s0" [label="s0\n{p, !q}"];`)
	assert.Contains(t, out, `"s1" [label="s1"];`)
	assert.Contains(t, out, `"s0" -> "s1" [label="{actions=a}"];`)
}

// TestDotString_OpenSystem verifies the open kind renders its
// two-field edge labels.
func TestDotString_OpenSystem(t *testing.T) {
	ts := NewOpenFTS("open demo", []string{"p"}, []string{"go"}, []string{"rain"})
	require.NoError(t, ts.AddState("s0", []string{"p"}))
	require.NoError(t, ts.SetInitial("s0"))
	require.NoError(t, ts.AddActionTransition("s0", "s0", "go", "rain"))

	out := ts.DotString()
	assert.Contains(t, out, "digraph open_demo {", "graph id is sanitized")
	assert.Contains(t, out, "env_actions=rain")
	assert.Contains(t, out, "sys_actions=go")
}

// TestSaveDot verifies the extension handling.
func TestSaveDot(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "fixture")
	require.NoError(t, exportFixture(t).SaveDot(fname))

	data, err := os.ReadFile(fname + ".dot")
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph fixture {")
}
