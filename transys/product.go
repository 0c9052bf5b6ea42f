package transys

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rfielding/transys/mathset"
)

// ProductOperand is the closed set of right-hand operand kinds a
// product constructor accepts: a transition system of either kind, or
// an automaton. The constructor branches on the concrete kind; no
// other types can appear.
type ProductOperand interface {
	productOperand()
}

// AcceptProp is the proposition marking accepting composite states in
// a transition-system/automaton product.
const AcceptProp = "accept"

// SynchronousProduct computes the tensor product of t with another
// closed system (Def. 2.42 [Baier & Katoen 2008]) or with an automaton
// (Def. 4.62). Neither operand is mutated.
func (t *FiniteTransitionSystem) SynchronousProduct(other ProductOperand) (*FiniteTransitionSystem, error) {
	switch o := other.(type) {
	case *FiniteTransitionSystem:
		return tensorProduct(t, o), nil
	case Automaton:
		return automatonProduct(t, o), nil
	case *OpenFiniteTransitionSystem:
		return nil, fmt.Errorf("%w: synchronous product of closed and open systems", ErrTypeMismatch)
	default:
		return nil, fmt.Errorf("%w: unsupported product operand %T", ErrTypeMismatch, other)
	}
}

// AsynchronousProduct computes the interleaving product of t with
// another closed system (Def. 2.18). Automata have no interleaving
// semantics and are rejected.
func (t *FiniteTransitionSystem) AsynchronousProduct(other ProductOperand) (*FiniteTransitionSystem, error) {
	switch o := other.(type) {
	case *FiniteTransitionSystem:
		return interleavedProduct(t, o), nil
	case Automaton:
		return nil, fmt.Errorf("%w: asynchronous product with an automaton", ErrUnsupported)
	case *OpenFiniteTransitionSystem:
		return nil, fmt.Errorf("%w: asynchronous product of closed and open systems", ErrTypeMismatch)
	default:
		return nil, fmt.Errorf("%w: unsupported product operand %T", ErrTypeMismatch, other)
	}
}

// SynchronousProduct on open systems is deliberately absent from the
// underlying theory and fails loudly.
func (t *OpenFiniteTransitionSystem) SynchronousProduct(ProductOperand) (*OpenFiniteTransitionSystem, error) {
	return nil, fmt.Errorf("%w: synchronous product of open systems", ErrUnsupported)
}

// AsynchronousProduct computes the interleaving product of two open
// systems. Both action alphabets are united field-wise.
func (t *OpenFiniteTransitionSystem) AsynchronousProduct(other ProductOperand) (*OpenFiniteTransitionSystem, error) {
	switch o := other.(type) {
	case *OpenFiniteTransitionSystem:
		return openInterleavedProduct(t, o), nil
	case *FiniteTransitionSystem:
		return nil, fmt.Errorf("%w: asynchronous product of open and closed systems", ErrTypeMismatch)
	case Automaton:
		return nil, fmt.Errorf("%w: asynchronous product with an automaton", ErrUnsupported)
	default:
		return nil, fmt.Errorf("%w: unsupported product operand %T", ErrTypeMismatch, other)
	}
}

// pairNamer assigns ids to composite (left,right) states. The textual
// pair form keeps product states readable; when either operand is
// mutable its id space may already contain such text, so fresh ids are
// drawn instead.
type pairNamer struct {
	fresh bool
	ids   map[mathset.Pair]string
}

func newPairNamer(fresh bool) *pairNamer {
	return &pairNamer{fresh: fresh, ids: make(map[mathset.Pair]string)}
}

func (n *pairNamer) id(left, right string) string {
	p := mathset.Pair{Left: left, Right: right}
	if id, ok := n.ids[p]; ok {
		return id
	}
	id := p.String()
	if n.fresh {
		id = uuid.NewString()
	}
	n.ids[p] = id
	return id
}

// exploreFrontier walks composite states breadth-first from the initial
// pairs, so only pairs reachable via the product transition rule are
// ever materialized. expand is called once per pair and adds the
// outgoing product transitions, returning the successor pairs.
func exploreFrontier(initial []mathset.Pair, expand func(mathset.Pair) []mathset.Pair) {
	seen := make(map[mathset.Pair]struct{}, len(initial))
	queue := make([]mathset.Pair, 0, len(initial))
	for _, p := range initial {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		queue = append(queue, p)
	}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, q := range expand(p) {
			if _, ok := seen[q]; ok {
				continue
			}
			seen[q] = struct{}{}
			queue = append(queue, q)
		}
	}
}

// tensorProduct: AP union, Cartesian action pairing, simultaneous
// moves only. State label of (s1,s2) is label(s1) union label(s2).
func tensorProduct(t1, t2 *FiniteTransitionSystem) *FiniteTransitionSystem {
	prod := NewFTS(t1.Name()+"*"+t2.Name(), nil, nil)
	prod.SetMutants(t1.Mutants() || t2.Mutants())
	prod.GrowAP(t1.AtomicPropositions().Elements()...)
	prod.GrowAP(t2.AtomicPropositions().Elements()...)
	prod.GrowActions(mathset.Cartesian(t1.Actions(), t2.Actions()).Elements()...)

	namer := newPairNamer(prod.Mutants())
	addPair := func(p mathset.Pair) string {
		id := namer.id(p.Left, p.Right)
		label := mathset.New(t1.StateLabel(p.Left)...).
			Union(mathset.New(t2.StateLabel(p.Right)...))
		// duplicate add with identical label is a no-op
		_ = prod.AddState(id, label.Elements())
		return id
	}

	initial := make([]mathset.Pair, 0)
	for _, s1 := range t1.InitialStates() {
		for _, s2 := range t2.InitialStates() {
			p := mathset.Pair{Left: s1, Right: s2}
			_ = prod.SetInitial(addPair(p))
			initial = append(initial, p)
		}
	}

	exploreFrontier(initial, func(p mathset.Pair) []mathset.Pair {
		slog.Debug("expanding tensor product state", "left", p.Left, "right", p.Right)
		from := addPair(p)
		succ := make([]mathset.Pair, 0)
		for _, e1 := range t1.FindTransitions(p.Left, "") {
			for _, e2 := range t2.FindTransitions(p.Right, "") {
				q := mathset.Pair{Left: e1.To, Right: e2.To}
				to := addPair(q)
				_ = prod.AddTransition(from, to, pairedActionLabel(e1.Label, e2.Label))
				succ = append(succ, q)
			}
		}
		return succ
	})
	return prod
}

// pairedActionLabel pairs the action values of two closed-system
// edges. A product step with an unlabeled component edge stays
// unlabeled: there is no action pair to record.
func pairedActionLabel(l1, l2 EdgeLabel) EdgeLabel {
	a1, ok1 := l1[FieldActions]
	a2, ok2 := l2[FieldActions]
	if !ok1 || !ok2 {
		return nil
	}
	return EdgeLabel{FieldActions: mathset.Pair{Left: a1, Right: a2}.String()}
}

// automatonProduct: the automaton reads the label of the transition
// system's state as its input symbol each step, so moves are driven by
// state labels, not paired actions. Accepting composite states are
// marked with AcceptProp.
func automatonProduct(t *FiniteTransitionSystem, aut Automaton) *FiniteTransitionSystem {
	prod := NewFTS(t.Name()+"*ba", nil, nil)
	prod.SetMutants(t.Mutants())
	prod.GrowAP(t.AtomicPropositions().Elements()...)
	prod.GrowAP(AcceptProp)
	prod.GrowActions(t.Actions().Elements()...)

	namer := newPairNamer(prod.Mutants())
	addPair := func(p mathset.Pair) string {
		id := namer.id(p.Left, p.Right)
		label := mathset.New(t.StateLabel(p.Left)...)
		if aut.IsAccepting(p.Right) {
			label.Add(AcceptProp)
		}
		_ = prod.AddState(id, label.Elements())
		return id
	}

	// Initial pairs: the automaton consumes the label of the initial
	// TS state from its own initial states before the first joint step.
	initial := make([]mathset.Pair, 0)
	for _, s0 := range t.InitialStates() {
		for _, q0 := range aut.InitialStates() {
			for _, q := range aut.Moves(q0, t.StateLabel(s0)) {
				p := mathset.Pair{Left: s0, Right: q}
				_ = prod.SetInitial(addPair(p))
				initial = append(initial, p)
			}
		}
	}

	exploreFrontier(initial, func(p mathset.Pair) []mathset.Pair {
		from := addPair(p)
		succ := make([]mathset.Pair, 0)
		for _, e := range t.FindTransitions(p.Left, "") {
			for _, q := range aut.Moves(p.Right, t.StateLabel(e.To)) {
				next := mathset.Pair{Left: e.To, Right: q}
				to := addPair(next)
				_ = prod.AddTransition(from, to, e.Label.Copy())
				succ = append(succ, next)
			}
		}
		return succ
	})
	return prod
}

// interleavedProduct: AP union, action union, one operand moves per
// step while the other is frozen.
func interleavedProduct(t1, t2 *FiniteTransitionSystem) *FiniteTransitionSystem {
	prod := NewFTS(t1.Name()+"+"+t2.Name(), nil, nil)
	prod.SetMutants(t1.Mutants() || t2.Mutants())
	prod.GrowAP(t1.AtomicPropositions().Elements()...)
	prod.GrowAP(t2.AtomicPropositions().Elements()...)
	prod.GrowActions(t1.Actions().Elements()...)
	prod.GrowActions(t2.Actions().Elements()...)

	namer := newPairNamer(prod.Mutants())
	addPair := func(p mathset.Pair) string {
		id := namer.id(p.Left, p.Right)
		label := mathset.New(t1.StateLabel(p.Left)...).
			Union(mathset.New(t2.StateLabel(p.Right)...))
		_ = prod.AddState(id, label.Elements())
		return id
	}

	initial := make([]mathset.Pair, 0)
	for _, s1 := range t1.InitialStates() {
		for _, s2 := range t2.InitialStates() {
			p := mathset.Pair{Left: s1, Right: s2}
			_ = prod.SetInitial(addPair(p))
			initial = append(initial, p)
		}
	}

	exploreFrontier(initial, func(p mathset.Pair) []mathset.Pair {
		slog.Debug("expanding interleaved product state", "left", p.Left, "right", p.Right)
		from := addPair(p)
		succ := make([]mathset.Pair, 0)
		for _, e := range t1.FindTransitions(p.Left, "") {
			q := mathset.Pair{Left: e.To, Right: p.Right}
			to := addPair(q)
			_ = prod.AddTransition(from, to, e.Label.Copy())
			succ = append(succ, q)
		}
		for _, e := range t2.FindTransitions(p.Right, "") {
			q := mathset.Pair{Left: p.Left, Right: e.To}
			to := addPair(q)
			_ = prod.AddTransition(from, to, e.Label.Copy())
			succ = append(succ, q)
		}
		return succ
	})
	return prod
}

func openInterleavedProduct(t1, t2 *OpenFiniteTransitionSystem) *OpenFiniteTransitionSystem {
	prod := NewOpenFTS(t1.Name()+"+"+t2.Name(), nil, nil, nil)
	prod.SetMutants(t1.Mutants() || t2.Mutants())
	prod.GrowAP(t1.AtomicPropositions().Elements()...)
	prod.GrowAP(t2.AtomicPropositions().Elements()...)
	prod.GrowSysActions(t1.SysActions().Elements()...)
	prod.GrowSysActions(t2.SysActions().Elements()...)
	prod.GrowEnvActions(t1.EnvActions().Elements()...)
	prod.GrowEnvActions(t2.EnvActions().Elements()...)

	namer := newPairNamer(prod.Mutants())
	addPair := func(p mathset.Pair) string {
		id := namer.id(p.Left, p.Right)
		label := mathset.New(t1.StateLabel(p.Left)...).
			Union(mathset.New(t2.StateLabel(p.Right)...))
		_ = prod.AddState(id, label.Elements())
		return id
	}

	initial := make([]mathset.Pair, 0)
	for _, s1 := range t1.InitialStates() {
		for _, s2 := range t2.InitialStates() {
			p := mathset.Pair{Left: s1, Right: s2}
			_ = prod.SetInitial(addPair(p))
			initial = append(initial, p)
		}
	}

	exploreFrontier(initial, func(p mathset.Pair) []mathset.Pair {
		from := addPair(p)
		succ := make([]mathset.Pair, 0)
		for _, e := range t1.FindTransitions(p.Left, "") {
			q := mathset.Pair{Left: e.To, Right: p.Right}
			_ = prod.AddTransition(from, addPair(q), e.Label.Copy())
			succ = append(succ, q)
		}
		for _, e := range t2.FindTransitions(p.Right, "") {
			q := mathset.Pair{Left: p.Left, Right: e.To}
			_ = prod.AddTransition(from, addPair(q), e.Label.Copy())
			succ = append(succ, q)
		}
		return succ
	})
	return prod
}
