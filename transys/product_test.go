package transys

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoStateLoop(t *testing.T, name, prop1, prop2, action string) *FiniteTransitionSystem {
	t.Helper()
	ts := NewFTS(name, []string{prop1, prop2}, []string{action})
	require.NoError(t, ts.AddState("s0", []string{prop1}))
	require.NoError(t, ts.AddState("s1", []string{prop2}))
	require.NoError(t, ts.SetInitial("s0"))
	require.NoError(t, ts.AddActionTransition("s0", "s1", action))
	require.NoError(t, ts.AddActionTransition("s1", "s0", action))
	return ts
}

// TestSynchronousProduct_Alphabets verifies AP union and the Cartesian
// action pairing that distinguishes the tensor product from
// interleaving.
func TestSynchronousProduct_Alphabets(t *testing.T) {
	t1 := NewFTS("t1", []string{"p"}, []string{"a1", "a2"})
	t2 := NewFTS("t2", []string{"q"}, []string{"b1", "b2", "b3"})

	prod, err := t1.SynchronousProduct(t2)
	require.NoError(t, err)

	assert.Equal(t, 2, prod.AtomicPropositions().Size(), "AP(P) = AP(T1) u AP(T2)")
	assert.Equal(t, 6, prod.Actions().Size(), "|Act(P)| = |Act(T1)| x |Act(T2)|")
	assert.True(t, prod.Actions().Contains("(a1,b2)"))
}

// TestSynchronousProduct_TransitionRule verifies simultaneous paired
// moves, pair state ids, label union and initial-pair construction.
func TestSynchronousProduct_TransitionRule(t *testing.T) {
	t1 := twoStateLoop(t, "t1", "p", "!p", "a")
	t2 := twoStateLoop(t, "t2", "q", "!q", "b")

	prod, err := t1.SynchronousProduct(t2)
	require.NoError(t, err)

	assert.Equal(t, []string{"(s0,s0)"}, prod.InitialStates(),
		"Initial(P) = Initial(T1) x Initial(T2)")
	assert.ElementsMatch(t, []string{"p", "q"}, prod.StateLabel("(s0,s0)"),
		"label of a pair is the union of the component labels")

	out := prod.FindTransitions("(s0,s0)", "")
	require.Len(t, out, 1, "both operands must move together")
	assert.Equal(t, "(s1,s1)", out[0].To)
	assert.Equal(t, "(a,b)", out[0].Label[FieldActions])

	// both loops flip in lockstep, so only the diagonal is reachable
	assert.Equal(t, 2, prod.NumStates(), "only reachable pairs are materialized")
}

// TestSynchronousProduct_OperandsUntouched verifies the product has no
// observable side effect on its operands.
func TestSynchronousProduct_OperandsUntouched(t *testing.T) {
	t1 := twoStateLoop(t, "t1", "p", "!p", "a")
	t2 := twoStateLoop(t, "t2", "q", "!q", "b")

	_, err := t1.SynchronousProduct(t2)
	require.NoError(t, err)

	assert.Equal(t, 2, t1.NumStates())
	assert.Equal(t, 1, t1.Actions().Size())
	assert.Equal(t, 2, t1.AtomicPropositions().Size())
	assert.Equal(t, 2, t2.NumTransitions())
}

// TestAsynchronousProduct verifies action union and one-operand-per-
// step interleaving.
func TestAsynchronousProduct(t *testing.T) {
	t1 := twoStateLoop(t, "t1", "p", "!p", "a")
	t2 := twoStateLoop(t, "t2", "q", "!q", "b")

	prod, err := t1.AsynchronousProduct(t2)
	require.NoError(t, err)

	assert.Equal(t, 2, prod.Actions().Size(), "|Act(P)| = |Act(T1) u Act(T2)|")
	assert.True(t, prod.Actions().Contains("a"))
	assert.True(t, prod.Actions().Contains("b"))

	out := prod.FindTransitions("(s0,s0)", "")
	require.Len(t, out, 2, "each operand moves alone")
	tos := []string{out[0].To, out[1].To}
	assert.ElementsMatch(t, []string{"(s1,s0)", "(s0,s1)"}, tos,
		"exactly one component changes per step")

	// interleaving reaches the full cross product here
	assert.Equal(t, 4, prod.NumStates())
}

// TestAsynchronousProduct_SharedAction verifies the union alphabet
// deduplicates actions common to both operands.
func TestAsynchronousProduct_SharedAction(t *testing.T) {
	t1 := twoStateLoop(t, "t1", "p", "!p", "a")
	t2 := twoStateLoop(t, "t2", "q", "!q", "a")

	prod, err := t1.AsynchronousProduct(t2)
	require.NoError(t, err)
	assert.Equal(t, 1, prod.Actions().Size())
}

// TestProduct_ReachabilityBound verifies states unreachable in an
// operand never show up in the product.
func TestProduct_ReachabilityBound(t *testing.T) {
	t1 := twoStateLoop(t, "t1", "p", "!p", "a")

	t2 := NewFTS("t2", []string{"q"}, []string{"b"})
	require.NoError(t, t2.AddState("s0", []string{"q"}))
	require.NoError(t, t2.AddState("island", nil))
	require.NoError(t, t2.SetInitial("s0"))
	require.NoError(t, t2.AddActionTransition("s0", "s0", "b"))

	prod, err := t1.SynchronousProduct(t2)
	require.NoError(t, err)
	for _, id := range prod.States() {
		assert.NotContains(t, id, "island", "unreachable operand states stay out")
	}
}

// TestProduct_TypeErrors verifies the operand-kind branching of the
// product constructors.
func TestProduct_TypeErrors(t *testing.T) {
	closed := NewFTS("c", nil, nil)
	open := NewOpenFTS("o", nil, nil, nil)
	ba := NewBuchiAutomaton("ba", nil)

	_, err := closed.SynchronousProduct(open)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = closed.AsynchronousProduct(open)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = closed.AsynchronousProduct(ba)
	assert.ErrorIs(t, err, ErrUnsupported, "no interleaving semantics for automata")

	_, err = open.SynchronousProduct(open)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = open.AsynchronousProduct(closed)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

// TestAutomatonProduct verifies the automaton branch: moves driven by
// state labels, accept marking, and reachable-only expansion.
func TestAutomatonProduct(t *testing.T) {
	ts := NewFTS("t", []string{"p", "q"}, []string{"a"})
	require.NoError(t, ts.AddState("s0", []string{"p"}))
	require.NoError(t, ts.AddState("s1", []string{"q"}))
	require.NoError(t, ts.SetInitial("s0"))
	require.NoError(t, ts.AddActionTransition("s0", "s1", "a"))
	require.NoError(t, ts.AddActionTransition("s1", "s0", "a"))

	ba := NewBuchiAutomaton("ba", []string{"p", "q"})
	ba.SetInitial("q0")
	ba.AddMove("q0", "q1", "p")
	ba.AddMove("q1", "q2", "q")
	ba.AddMove("q2", "q1", "p")
	ba.SetAccepting("q2")

	prod, err := ts.SynchronousProduct(ba)
	require.NoError(t, err)

	assert.Equal(t, []string{"(s0,q1)"}, prod.InitialStates(),
		"the automaton consumes the initial state label first")
	assert.Equal(t, 2, prod.NumStates())

	assert.Contains(t, prod.StateLabel("(s1,q2)"), AcceptProp,
		"accepting automaton states mark the composite state")
	assert.NotContains(t, prod.StateLabel("(s0,q1)"), AcceptProp)

	out := prod.FindTransitions("(s0,q1)", "")
	require.Len(t, out, 1)
	assert.Equal(t, "(s1,q2)", out[0].To)
	assert.Equal(t, "a", out[0].Label[FieldActions],
		"the transition system's action labels carry over")
}

// TestProduct_MutantsFlag verifies OR-combination of the flags and the
// switch to synthesized composite ids.
func TestProduct_MutantsFlag(t *testing.T) {
	t1 := twoStateLoop(t, "t1", "p", "!p", "a")
	t2 := twoStateLoop(t, "t2", "q", "!q", "b")
	t2.SetMutants(true)

	prod, err := t1.SynchronousProduct(t2)
	require.NoError(t, err)

	assert.True(t, prod.Mutants(), "flag is OR-combined from both operands")
	for _, id := range prod.States() {
		assert.False(t, strings.HasPrefix(id, "("),
			"mutable operands get synthesized ids, not textual pairs")
	}
	assert.Len(t, prod.InitialStates(), 1)
}

// TestOpenAsynchronousProduct verifies field-wise alphabet union and
// interleaved moves for the open kind.
func TestOpenAsynchronousProduct(t *testing.T) {
	o1 := NewOpenFTS("o1", []string{"p"}, []string{"go"}, []string{"rain"})
	require.NoError(t, o1.AddState("s0", []string{"p"}))
	require.NoError(t, o1.SetInitial("s0"))
	require.NoError(t, o1.AddActionTransition("s0", "s0", "go", "rain"))

	o2 := NewOpenFTS("o2", []string{"q"}, []string{"stop"}, []string{"sun"})
	require.NoError(t, o2.AddState("u0", []string{"q"}))
	require.NoError(t, o2.SetInitial("u0"))
	require.NoError(t, o2.AddActionTransition("u0", "u0", "stop", "sun"))

	prod, err := o1.AsynchronousProduct(o2)
	require.NoError(t, err)

	assert.Equal(t, 2, prod.SysActions().Size())
	assert.Equal(t, 2, prod.EnvActions().Size())
	assert.Equal(t, []string{"(s0,u0)"}, prod.InitialStates())
	assert.Len(t, prod.FindTransitions("(s0,u0)", ""), 2)
	assert.ElementsMatch(t, []string{"p", "q"}, prod.StateLabel("(s0,u0)"))
}
