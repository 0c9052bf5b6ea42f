package transys

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ModelFile is the declarative TOML description of a closed transition
// system. It carries the same fields TupleToFTS consumes.
type ModelFile struct {
	Name    string              `toml:"name"`
	Prefix  string              `toml:"prefix"`
	States  []string            `toml:"states"`
	Initial []string            `toml:"initial"`
	AP      []string            `toml:"ap"`
	Labels  map[string][]string `toml:"labels"`
	Actions []string            `toml:"actions"`
	// Transitions are [from, to] rows, or [from, to, action] rows when
	// an action alphabet is declared.
	Transitions [][]string `toml:"transitions"`
}

// ParseModelFile reads and parses a model description file.
func ParseModelFile(path string) (*ModelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	return ParseModel(data)
}

// ParseModel parses model description content from bytes.
func ParseModel(data []byte) (*ModelFile, error) {
	var m ModelFile
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the description for shape errors before any state is
// built. Label and universe violations surface later, from Build.
func (m *ModelFile) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("model name is required")
	}
	if len(m.States) == 0 {
		return fmt.Errorf("model %q declares no states", m.Name)
	}
	want := 2
	if len(m.Actions) > 0 {
		want = 3
	}
	for i, row := range m.Transitions {
		if len(row) != want {
			return fmt.Errorf("model %q: transition %d has %d fields, want %d",
				m.Name, i, len(row), want)
		}
	}
	return nil
}

// Build constructs the transition system the file describes.
func (m *ModelFile) Build() (*FiniteTransitionSystem, error) {
	spec := TupleSpec{
		Name:    m.Name,
		Prefix:  m.Prefix,
		States:  m.States,
		Initial: m.Initial,
		AP:      m.AP,
	}
	for state, label := range m.Labels {
		spec.Labels = append(spec.Labels, StateLabeling{State: state, Label: label})
	}
	if len(m.Actions) > 0 {
		spec.Actions = m.Actions
	}
	for _, row := range m.Transitions {
		arc := Arc{From: row[0], To: row[1]}
		if len(row) == 3 {
			arc.Action = row[2]
		}
		spec.Trans = append(spec.Trans, arc)
	}
	ts, err := TupleToFTS(spec)
	if err != nil {
		return nil, fmt.Errorf("building model %q: %w", m.Name, err)
	}
	return ts, nil
}
