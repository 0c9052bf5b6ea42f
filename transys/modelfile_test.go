package transys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trafficModel = `
name = "traffic"
states = ["green", "yellow", "red"]
initial = ["green"]
ap = ["go", "stop"]
actions = ["tick"]
transitions = [
  ["green", "yellow", "tick"],
  ["yellow", "red", "tick"],
  ["red", "green", "tick"],
]

[labels]
green = ["go"]
red = ["stop"]
`

// TestParseModel_Build verifies a full TOML model round-trips into a
// populated transition system.
func TestParseModel_Build(t *testing.T) {
	m, err := ParseModel([]byte(trafficModel))
	require.NoError(t, err)

	ts, err := m.Build()
	require.NoError(t, err)

	assert.Equal(t, "traffic", ts.Name())
	assert.Equal(t, []string{"green", "yellow", "red"}, ts.States())
	assert.Equal(t, []string{"green"}, ts.InitialStates())
	assert.Equal(t, []string{"go"}, ts.StateLabel("green"))
	assert.Empty(t, ts.StateLabel("yellow"))
	assert.Equal(t, 3, ts.NumTransitions())

	out := ts.FindTransitions("red", "")
	require.Len(t, out, 1)
	assert.Equal(t, "green", out[0].To)
	assert.Equal(t, "tick", out[0].Label[FieldActions])
}

// TestParseModel_UnlabeledTransitions verifies two-field rows when no
// action alphabet is declared.
func TestParseModel_UnlabeledTransitions(t *testing.T) {
	m, err := ParseModel([]byte(`
name = "plain"
states = ["a", "b"]
transitions = [["a", "b"]]
`))
	require.NoError(t, err)

	ts, err := m.Build()
	require.NoError(t, err)
	out := ts.Transitions()
	require.Len(t, out, 1)
	assert.True(t, out[0].Label.Empty())
}

// TestParseModel_ShapeErrors verifies validation rejects malformed
// descriptions before building anything.
func TestParseModel_ShapeErrors(t *testing.T) {
	_, err := ParseModel([]byte(`states = ["a"]`))
	assert.ErrorContains(t, err, "name is required")

	_, err = ParseModel([]byte(`name = "empty"`))
	assert.ErrorContains(t, err, "declares no states")

	_, err = ParseModel([]byte(`
name = "bad"
states = ["a"]
actions = ["x"]
transitions = [["a", "a"]]
`))
	assert.ErrorContains(t, err, "has 2 fields, want 3")

	_, err = ParseModel([]byte(`name = "broken`))
	assert.ErrorContains(t, err, "parsing TOML")
}

// TestParseModelFile verifies the file path entry point.
func TestParseModelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traffic.toml")
	require.NoError(t, os.WriteFile(path, []byte(trafficModel), 0o644))

	m, err := ParseModelFile(path)
	require.NoError(t, err)
	assert.Equal(t, "traffic", m.Name)

	_, err = ParseModelFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "reading model file")
}

// TestModelFile_BuildErrorsPropagate verifies universe violations in
// the description surface from Build.
func TestModelFile_BuildErrorsPropagate(t *testing.T) {
	m, err := ParseModel([]byte(`
name = "bad-label"
states = ["a"]
ap = ["p"]

[labels]
a = ["nope"]
`))
	require.NoError(t, err)

	_, err = m.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDomain)
}
