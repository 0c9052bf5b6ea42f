package transys

import "github.com/rfielding/transys/mathset"

// Automaton is the collaborator interface the product constructor
// consumes. Input symbols are proposition subsets: each step the
// automaton reads the label of the transition-system state it is
// tracking. Acceptance semantics beyond the per-state mark are the
// automaton's own concern.
type Automaton interface {
	States() []string
	InitialStates() []string
	// Alphabet is the power set of propositions the automaton reads.
	Alphabet() *mathset.PowerSet
	// Moves returns the successor states reachable from state on the
	// given input symbol.
	Moves(state string, input []string) []string
	IsAccepting(state string) bool

	productOperand()
}

// BuchiAutomaton is a plain in-memory Automaton used by the product
// constructor and the tests. LTL-to-automaton translation is out of
// scope; automata are built by hand or by an external tool.
type BuchiAutomaton struct {
	name      string
	alphabet  *mathset.PowerSet
	states    *mathset.MathSet
	initial   *mathset.MathSet
	accepting map[string]struct{}
	moves     []buchiMove
}

type buchiMove struct {
	from, to string
	input    *mathset.MathSet
}

func NewBuchiAutomaton(name string, alphabet []string) *BuchiAutomaton {
	return &BuchiAutomaton{
		name:      name,
		alphabet:  mathset.NewPowerSet(alphabet...),
		states:    mathset.New(),
		initial:   mathset.New(),
		accepting: make(map[string]struct{}),
	}
}

func (b *BuchiAutomaton) Name() string { return b.name }

func (b *BuchiAutomaton) AddState(id string) {
	b.states.Add(id)
}

func (b *BuchiAutomaton) SetInitial(ids ...string) {
	for _, id := range ids {
		b.states.Add(id)
		b.initial.Add(id)
	}
}

func (b *BuchiAutomaton) SetAccepting(ids ...string) {
	for _, id := range ids {
		b.states.Add(id)
		b.accepting[id] = struct{}{}
	}
}

// AddMove adds a transition reading the given proposition subset.
func (b *BuchiAutomaton) AddMove(from, to string, input ...string) {
	b.states.Add(from)
	b.states.Add(to)
	b.moves = append(b.moves, buchiMove{
		from:  from,
		to:    to,
		input: mathset.New(input...),
	})
}

func (b *BuchiAutomaton) States() []string { return b.states.Elements() }

func (b *BuchiAutomaton) InitialStates() []string { return b.initial.Elements() }

func (b *BuchiAutomaton) Alphabet() *mathset.PowerSet { return b.alphabet }

// Moves matches inputs by set equality: the stored symbol and the read
// label must contain the same propositions.
func (b *BuchiAutomaton) Moves(state string, input []string) []string {
	in := mathset.New(input...)
	out := make([]string, 0)
	for _, m := range b.moves {
		if m.from == state && m.input.Equals(in) {
			out = append(out, m.to)
		}
	}
	return out
}

func (b *BuchiAutomaton) IsAccepting(state string) bool {
	_, ok := b.accepting[state]
	return ok
}

func (b *BuchiAutomaton) productOperand() {}
