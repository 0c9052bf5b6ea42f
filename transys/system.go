package transys

import (
	"fmt"
	"strings"

	"github.com/rfielding/transys/mathset"
)

// system is the core shared by the closed and open transition-system
// kinds: a label schema, the graph storage, and the identity flags.
// The exported kinds embed it and add their alphabet accessors.
type system struct {
	name   string
	schema *LabelSchema
	graph  *DiGraph

	// mutants records that state ids of this system are drawn from a
	// space that supports safe regeneration of fresh ids. Product
	// construction ORs the flags of both operands into the result.
	mutants bool
}

func newSystem(name string, schema *LabelSchema) system {
	return system{name: name, schema: schema, graph: NewDiGraph()}
}

func (s *system) Name() string { return s.name }

func (s *system) SetName(name string) { s.name = name }

func (s *system) Mutants() bool { return s.mutants }

func (s *system) SetMutants(v bool) { s.mutants = v }

// Schema returns the label schema fixed at construction.
func (s *system) Schema() *LabelSchema { return s.schema }

// AtomicPropositions returns the current AP universe.
func (s *system) AtomicPropositions() *mathset.MathSet {
	return s.schema.AP.Base()
}

// GrowAP extends the AP universe. Existing state labels were subsets
// of the old universe and therefore remain subsets of the new one.
func (s *system) GrowAP(aps ...string) {
	s.schema.AP.Grow(aps...)
}

// AddState inserts a state, optionally labeled. Re-adding a state with
// an identical label is a no-op; re-adding with a conflicting label
// fails. Pass a nil label to add an unlabeled state.
func (s *system) AddState(id string, label []string) error {
	if id == "" {
		return fmt.Errorf("%w: empty state id", ErrDomain)
	}
	if label != nil {
		label = mathset.Unique(label)
		if err := s.schema.ValidateStateLabel(label); err != nil {
			return fmt.Errorf("state %q: %w", id, err)
		}
	}
	if s.graph.HasState(id) {
		// nil label only asserts existence
		if label == nil {
			return nil
		}
		existing, _ := s.graph.label(id)
		if sameProps(existing, label) {
			return nil
		}
		return fmt.Errorf("%w: state %q already present with label %v",
			ErrDuplicateState, id, existing)
	}
	s.graph.addState(id)
	if label != nil {
		s.graph.setLabel(id, label)
	}
	return nil
}

// LabelState overwrites the label of an existing state.
func (s *system) LabelState(id string, props ...string) error {
	if !s.graph.HasState(id) {
		return fmt.Errorf("%w: %q", ErrUnknownState, id)
	}
	props = mathset.Unique(props)
	if err := s.schema.ValidateStateLabel(props); err != nil {
		return fmt.Errorf("state %q: %w", id, err)
	}
	s.graph.setLabel(id, props)
	return nil
}

// StateLabel returns the proposition subset of a state. Unlabeled
// states report an empty subset.
func (s *system) StateLabel(id string) []string {
	l, _ := s.graph.label(id)
	out := make([]string, len(l))
	copy(out, l)
	return out
}

// SetInitial marks states initial, union semantics: earlier marks are
// kept. Every id must already exist.
func (s *system) SetInitial(ids ...string) error {
	for _, id := range ids {
		if !s.graph.HasState(id) {
			return fmt.Errorf("%w: initial state %q", ErrUnknownState, id)
		}
	}
	for _, id := range ids {
		s.graph.markInitial(id)
	}
	return nil
}

// InitialStates returns the initial subset in marking order.
func (s *system) InitialStates() []string {
	return s.graph.Initial()
}

// States returns all state ids in insertion order.
func (s *system) States() []string {
	return s.graph.States()
}

func (s *system) HasState(id string) bool {
	return s.graph.HasState(id)
}

func (s *system) NumStates() int {
	return s.graph.NumStates()
}

// AddTransition adds an edge. A nil label adds an unlabeled edge;
// otherwise every label field is validated against the schema. Both
// endpoints must exist.
func (s *system) AddTransition(from, to string, label EdgeLabel) error {
	if !s.graph.HasState(from) {
		return fmt.Errorf("%w: transition source %q", ErrUnknownState, from)
	}
	if !s.graph.HasState(to) {
		return fmt.Errorf("%w: transition target %q", ErrUnknownState, to)
	}
	if err := s.schema.ValidateEdgeLabel(label); err != nil {
		return fmt.Errorf("transition %s->%s: %w", from, to, err)
	}
	s.graph.addEdge(from, to, label)
	return nil
}

// FindTransitions returns stored edges matching the endpoints, in
// insertion order. An empty from or to matches any state.
func (s *system) FindTransitions(from, to string) []Edge {
	return s.graph.FindEdges(from, to)
}

// Transitions returns the whole relation in insertion order.
func (s *system) Transitions() []Edge {
	return s.graph.FindEdges("", "")
}

func (s *system) NumTransitions() int {
	return s.graph.NumEdges()
}

// growField extends one edge field's alphabet.
func (s *system) growField(name string, actions ...string) {
	f, ok := s.schema.Field(name)
	if !ok {
		return
	}
	for _, a := range actions {
		f.Alphabet.Add(a)
	}
}

func sameProps(a, b []string) bool {
	return mathset.New(a...).Equals(mathset.New(b...))
}

// dump renders the section listing shared by both String methods.
// kind names the concrete system kind, extra renders the alphabet
// sections which differ between kinds.
func (s *system) dump(kind string, extra func(*strings.Builder)) string {
	hl := strings.Repeat("-", 60)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\nFinite Transition System (%s) : %s\n%s\n", hl, kind, s.name, hl)
	fmt.Fprintf(&sb, "Atomic Propositions:\n\t%s\n", s.AtomicPropositions())
	sb.WriteString("States and State Labels (in 2^AP):\n")
	for _, id := range s.graph.States() {
		label, _ := s.graph.label(id)
		fmt.Fprintf(&sb, "\t%s : %s\n", id, mathset.New(label...))
	}
	fmt.Fprintf(&sb, "Initial States:\n\t%s\n", mathset.New(s.graph.Initial()...))
	extra(&sb)
	sb.WriteString("Transitions and Labels:\n")
	for _, e := range s.graph.FindEdges("", "") {
		fmt.Fprintf(&sb, "\t%s ---%s---> %s\n", e.From, e.Label, e.To)
	}
	sb.WriteString(hl + "\n")
	return sb.String()
}
