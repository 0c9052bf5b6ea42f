package transys

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/rfielding/transys/mathset"
)

// PropTrue is the constant-true proposition NegationClosure appends.
const PropTrue = "true"

// NegationClosure returns, for each proposition p, both p and its
// complement !p (a leading "!" toggles), plus PropTrue. Duplicates are
// dropped, first occurrences keep their order.
func NegationClosure(aps []string) []string {
	out := make([]string, 0, 2*len(aps)+1)
	for _, p := range aps {
		out = append(out, p, negate(p))
	}
	out = append(out, PropTrue)
	return mathset.Unique(out)
}

func negate(p string) string {
	if len(p) > 0 && p[0] == '!' {
		return p[1:]
	}
	return "!" + p
}

// StateLabeling assigns a proposition subset to one state. An empty
// State means positional form: the entry labels the state at the same
// index of TupleSpec.States. A singleton subset stands in for the bare
// single-proposition labels of informal notation.
type StateLabeling struct {
	State string
	Label []string
}

// Arc is one transition of a TupleSpec. Action is ignored when the
// spec declares no action alphabet.
type Arc struct {
	From, To, Action string
}

// TupleSpec is the plain-tuple description TupleToFTS consumes:
// states first, then initial states, then the (AP, labeling) pair,
// then the (actions, transitions) pair, mirroring the dependency
// order of the definitions.
type TupleSpec struct {
	Name    string
	States  []string
	Initial []string
	AP      []string
	Labels  []StateLabeling
	// Actions nil means the transition relation is unlabeled and
	// arcs are plain (from, to) pairs.
	Actions []string
	Trans   []Arc
	// Prefix is prepended to every state reference, a purely textual
	// transform applied uniformly.
	Prefix string
}

// TupleToFTS builds a closed transition system from a TupleSpec.
func TupleToFTS(spec TupleSpec) (*FiniteTransitionSystem, error) {
	name := spec.Name
	if name == "" {
		name = "fts"
	}
	ts := NewFTS(name, spec.AP, nil)

	pre := func(id string) string { return spec.Prefix + id }

	for _, s := range spec.States {
		if err := ts.AddState(pre(s), nil); err != nil {
			return nil, err
		}
	}

	initial := make([]string, 0, len(spec.Initial))
	for _, s := range spec.Initial {
		initial = append(initial, pre(s))
	}
	if err := ts.SetInitial(initial...); err != nil {
		return nil, err
	}

	for i, sl := range spec.Labels {
		state := sl.State
		if state == "" {
			if i >= len(spec.States) {
				return nil, fmt.Errorf("%w: positional label %d has no matching state",
					ErrUnknownState, i)
			}
			state = spec.States[i]
		}
		slog.Debug("labeling state", "state", pre(state), "label", sl.Label)
		if err := ts.LabelState(pre(state), sl.Label...); err != nil {
			return nil, err
		}
	}

	if spec.Actions == nil {
		for _, a := range spec.Trans {
			slog.Debug("adding unlabeled edge", "from", pre(a.From), "to", pre(a.To))
			if err := ts.AddTransition(pre(a.From), pre(a.To), nil); err != nil {
				return nil, err
			}
		}
		return ts, nil
	}

	ts.GrowActions(spec.Actions...)
	for _, a := range spec.Trans {
		slog.Debug("adding labeled edge",
			"from", pre(a.From), "to", pre(a.To), "action", a.Action)
		if err := ts.AddActionTransition(pre(a.From), pre(a.To), a.Action); err != nil {
			return nil, err
		}
	}
	return ts, nil
}

// LineLabeledWith builds the terminating chain
//
//	s{m} -> s{m+1} -> ... -> s{m+N-1},  N = len(labels)
//
// with state i labeled by labels[i] as a singleton subset. No initial
// states are set; that is left to the caller. m is startIndex.
func LineLabeledWith(labels []string, startIndex int) (*FiniteTransitionSystem, error) {
	n := len(labels)
	states := make([]string, n)
	labeling := make([]StateLabeling, n)
	for i := 0; i < n; i++ {
		states[i] = strconv.Itoa(startIndex + i)
		labeling[i] = StateLabeling{Label: []string{labels[i]}}
	}
	arcs := make([]Arc, 0, n-1)
	for i := 0; i+1 < n; i++ {
		arcs = append(arcs, Arc{From: states[i], To: states[i+1]})
	}
	return TupleToFTS(TupleSpec{
		Name:   "line",
		States: states,
		AP:     NegationClosure(labels),
		Labels: labeling,
		Trans:  arcs,
		Prefix: "s",
	})
}

// CycleLabeledWith builds the same chain as LineLabeledWith and closes
// it with one extra transition from the last state back to the first.
func CycleLabeledWith(labels []string) (*FiniteTransitionSystem, error) {
	ts, err := LineLabeledWith(labels, 0)
	if err != nil {
		return nil, err
	}
	last := "s" + strconv.Itoa(len(labels)-1)
	if err := ts.AddTransition(last, "s0", nil); err != nil {
		return nil, err
	}
	return ts, nil
}
