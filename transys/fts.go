package transys

import (
	"fmt"
	"strings"

	"github.com/rfielding/transys/mathset"
)

// FiniteTransitionSystem models a closed system: one undifferentiated
// action alphabet, states labeled from 2^AP.
//
// Def. 2.1, p.20 [Baier & Katoen 2008]:
//
//	S   = states, S_0 = initial states subset of S
//	AP  = atomic propositions (state labels in 2^AP)
//	Act = actions (edge labels)
//	T   = transition relation, L : S -> 2^AP
type FiniteTransitionSystem struct {
	system
}

// NewFTS creates an empty closed system seeded with the given AP and
// action universes. Both may be empty and grown later.
func NewFTS(name string, aps, actions []string) *FiniteTransitionSystem {
	return &FiniteTransitionSystem{
		system: newSystem(name, ClosedSchema(aps, actions)),
	}
}

// Actions returns the action alphabet.
func (t *FiniteTransitionSystem) Actions() *mathset.MathSet {
	f, _ := t.schema.Field(FieldActions)
	return f.Alphabet
}

// GrowActions extends the action alphabet.
func (t *FiniteTransitionSystem) GrowActions(actions ...string) {
	t.growField(FieldActions, actions...)
}

// AddActionTransition adds an edge labeled with a single action.
func (t *FiniteTransitionSystem) AddActionTransition(from, to, action string) error {
	return t.AddTransition(from, to, EdgeLabel{FieldActions: action})
}

func (t *FiniteTransitionSystem) String() string {
	return t.dump("closed", func(sb *strings.Builder) {
		fmt.Fprintf(sb, "Actions:\n\t%s\n", t.Actions())
	})
}

func (t *FiniteTransitionSystem) productOperand() {}

// Operations deferred by design. They fail loudly so a caller can
// never mistake them for silent no-ops.

// Intersection conjoins with another system. Not supported.
func (t *FiniteTransitionSystem) Intersection(*FiniteTransitionSystem) error {
	return fmt.Errorf("%w: intersection", ErrUnsupported)
}

// Difference removes a sub-system. Not supported.
func (t *FiniteTransitionSystem) Difference(*FiniteTransitionSystem) error {
	return fmt.Errorf("%w: difference", ErrUnsupported)
}

// Composition substitutes a state by another system. Not supported.
func (t *FiniteTransitionSystem) Composition(*FiniteTransitionSystem) error {
	return fmt.Errorf("%w: composition", ErrUnsupported)
}

// Project projects onto a subgraph or tuple factor. Not supported.
func (t *FiniteTransitionSystem) Project(factor int) error {
	return fmt.Errorf("%w: project", ErrUnsupported)
}

// Simulate runs the system over a state sequence. Not supported.
func (t *FiniteTransitionSystem) Simulate(stateSequence []string) error {
	return fmt.Errorf("%w: simulate", ErrUnsupported)
}

// IsSimulation checks a path, execution or trace. Not supported.
func (t *FiniteTransitionSystem) IsSimulation() error {
	return fmt.Errorf("%w: is_simulation", ErrUnsupported)
}

// LoadSPINAut imports a SPIN automaton. Not supported.
func (t *FiniteTransitionSystem) LoadSPINAut(path string) error {
	return fmt.Errorf("%w: loadSPINAut", ErrUnsupported)
}
