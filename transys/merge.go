package transys

import "fmt"

// Merge unions other into t and returns t. States, initial states,
// atomic propositions, actions, labels and transitions of other are
// merged in, with other taking precedence: a non-empty label in other
// overwrites t's label for the same state. The returned handle is t
// itself, not a copy.
//
// Useful for assembling systems from standard pieces built with
// LineLabeledWith and CycleLabeledWith.
func (t *FiniteTransitionSystem) Merge(other *FiniteTransitionSystem) (*FiniteTransitionSystem, error) {
	// universes first, so later label validation succeeds
	t.GrowAP(other.AtomicPropositions().Elements()...)
	t.GrowActions(other.Actions().Elements()...)
	if err := mergeGraph(&t.system, &other.system); err != nil {
		return nil, err
	}
	return t, nil
}

// Merge unions other into t, as for the closed kind. Open systems
// merge only with open systems; the signature enforces it.
func (t *OpenFiniteTransitionSystem) Merge(other *OpenFiniteTransitionSystem) (*OpenFiniteTransitionSystem, error) {
	t.GrowAP(other.AtomicPropositions().Elements()...)
	t.GrowSysActions(other.SysActions().Elements()...)
	t.GrowEnvActions(other.EnvActions().Elements()...)
	if err := mergeGraph(&t.system, &other.system); err != nil {
		return nil, err
	}
	return t, nil
}

func mergeGraph(dst, src *system) error {
	for _, id := range src.States() {
		if !dst.HasState(id) {
			if err := dst.AddState(id, nil); err != nil {
				return fmt.Errorf("merge state %q: %w", id, err)
			}
		}
		if label := src.StateLabel(id); len(label) > 0 {
			if err := dst.LabelState(id, label...); err != nil {
				return fmt.Errorf("merge label of %q: %w", id, err)
			}
		}
	}
	if err := dst.SetInitial(src.InitialStates()...); err != nil {
		return fmt.Errorf("merge initial states: %w", err)
	}
	// labeled and unlabeled edges take their own add paths
	for _, e := range src.Transitions() {
		var label EdgeLabel
		if !e.Label.Empty() {
			label = e.Label.Copy()
		}
		if err := dst.AddTransition(e.From, e.To, label); err != nil {
			return fmt.Errorf("merge transition %s->%s: %w", e.From, e.To, err)
		}
	}
	return nil
}
