package transys

import (
	"sort"
	"strings"
)

// EdgeLabel maps a schema field name to the symbol the edge carries for
// that field. A nil or empty EdgeLabel means the edge is unlabeled.
type EdgeLabel map[string]string

func (l EdgeLabel) Empty() bool {
	return len(l) == 0
}

func (l EdgeLabel) Copy() EdgeLabel {
	if l == nil {
		return nil
	}
	out := make(EdgeLabel, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

func (l EdgeLabel) Equals(other EdgeLabel) bool {
	if len(l) != len(other) {
		return false
	}
	for k, v := range l {
		if other[k] != v {
			return false
		}
	}
	return true
}

func (l EdgeLabel) String() string {
	if l.Empty() {
		return "{}"
	}
	fields := make([]string, 0, len(l))
	for k := range l {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, k := range fields {
		parts = append(parts, k+"="+l[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Edge is one stored transition. Parallel edges and self loops are
// both permitted; edges with distinct labels are distinct.
type Edge struct {
	From  string
	To    string
	Label EdgeLabel
}

// DiGraph is the labeled digraph storage the transition-system
// entities sit on: states with optional proposition labels, a
// distinguished initial subset, and an insertion-ordered edge
// multiset.
type DiGraph struct {
	states    []string
	have      map[string]struct{}
	labels    map[string][]string
	initial   []string
	isInitial map[string]struct{}
	edges     []Edge
}

func NewDiGraph() *DiGraph {
	return &DiGraph{
		have:      make(map[string]struct{}),
		labels:    make(map[string][]string),
		isInitial: make(map[string]struct{}),
	}
}

func (g *DiGraph) HasState(id string) bool {
	_, ok := g.have[id]
	return ok
}

func (g *DiGraph) addState(id string) {
	if g.HasState(id) {
		return
	}
	g.have[id] = struct{}{}
	g.states = append(g.states, id)
}

// States returns all state ids in insertion order.
func (g *DiGraph) States() []string {
	out := make([]string, len(g.states))
	copy(out, g.states)
	return out
}

func (g *DiGraph) NumStates() int {
	return len(g.states)
}

// label returns the stored proposition subset for id and whether the
// state has ever been labeled. An unlabeled state is distinct from a
// state labeled with the empty subset.
func (g *DiGraph) label(id string) ([]string, bool) {
	l, ok := g.labels[id]
	return l, ok
}

func (g *DiGraph) setLabel(id string, props []string) {
	g.labels[id] = props
}

func (g *DiGraph) markInitial(id string) {
	if _, ok := g.isInitial[id]; ok {
		return
	}
	g.isInitial[id] = struct{}{}
	g.initial = append(g.initial, id)
}

// Initial returns the initial subset in the order states were marked.
func (g *DiGraph) Initial() []string {
	out := make([]string, len(g.initial))
	copy(out, g.initial)
	return out
}

func (g *DiGraph) isInitialState(id string) bool {
	_, ok := g.isInitial[id]
	return ok
}

func (g *DiGraph) addEdge(from, to string, label EdgeLabel) {
	g.edges = append(g.edges, Edge{From: from, To: to, Label: label.Copy()})
}

// FindEdges returns edges matching the given endpoints in insertion
// order. An empty from or to matches any state.
func (g *DiGraph) FindEdges(from, to string) []Edge {
	out := make([]Edge, 0)
	for _, e := range g.edges {
		if from != "" && e.From != from {
			continue
		}
		if to != "" && e.To != to {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (g *DiGraph) NumEdges() int {
	return len(g.edges)
}
