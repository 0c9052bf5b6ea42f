package transys

import (
	"fmt"
	"strings"

	"github.com/rfielding/transys/mathset"
)

// OpenFiniteTransitionSystem models an open system: the action
// alphabet splits into system-controlled and environment-controlled
// halves, and every labeled edge may carry one value from each.
type OpenFiniteTransitionSystem struct {
	system
}

// NewOpenFTS creates an empty open system seeded with the given AP,
// system-action and environment-action universes.
func NewOpenFTS(name string, aps, sysActions, envActions []string) *OpenFiniteTransitionSystem {
	return &OpenFiniteTransitionSystem{
		system: newSystem(name, OpenSchema(aps, sysActions, envActions)),
	}
}

// SysActions returns the system-controlled action alphabet.
func (t *OpenFiniteTransitionSystem) SysActions() *mathset.MathSet {
	f, _ := t.schema.Field(FieldSysActions)
	return f.Alphabet
}

// EnvActions returns the environment-controlled action alphabet.
func (t *OpenFiniteTransitionSystem) EnvActions() *mathset.MathSet {
	f, _ := t.schema.Field(FieldEnvActions)
	return f.Alphabet
}

// GrowSysActions extends the system-action alphabet.
func (t *OpenFiniteTransitionSystem) GrowSysActions(actions ...string) {
	t.growField(FieldSysActions, actions...)
}

// GrowEnvActions extends the environment-action alphabet.
func (t *OpenFiniteTransitionSystem) GrowEnvActions(actions ...string) {
	t.growField(FieldEnvActions, actions...)
}

// AddActionTransition adds an edge labeled with one system action and
// one environment action.
func (t *OpenFiniteTransitionSystem) AddActionTransition(from, to, sysAction, envAction string) error {
	return t.AddTransition(from, to, EdgeLabel{
		FieldSysActions: sysAction,
		FieldEnvActions: envAction,
	})
}

func (t *OpenFiniteTransitionSystem) String() string {
	return t.dump("open", func(sb *strings.Builder) {
		fmt.Fprintf(sb, "System Actions:\n\t%s\n", t.SysActions())
		fmt.Fprintf(sb, "Environment Actions:\n\t%s\n", t.EnvActions())
	})
}

func (t *OpenFiniteTransitionSystem) productOperand() {}
