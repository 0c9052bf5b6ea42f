package transys

import (
	"fmt"
	"os"
	"strings"
)

// DotString generates a Graphviz DOT rendering of the system: box
// nodes carrying the state name and its proposition subset, point
// nodes marking the initial states, labeled edges.
func (s *system) DotString() string {
	var sb strings.Builder

	sb.WriteString("digraph " + dotID(s.name) + " {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")
	sb.WriteString("\n")

	for i, init := range s.InitialStates() {
		fmt.Fprintf(&sb, "  start%d [shape=point];\n", i)
		fmt.Fprintf(&sb, "  start%d -> %q;\n", i, init)
	}
	sb.WriteString("\n")

	for _, state := range s.States() {
		label := s.StateLabel(state)
		if len(label) > 0 {
			fmt.Fprintf(&sb, "  %q [label=\"%s\\n{%s}\"];\n",
				state, state, strings.Join(label, ", "))
		} else {
			fmt.Fprintf(&sb, "  %q [label=%q];\n", state, state)
		}
	}
	sb.WriteString("\n")

	for _, e := range s.Transitions() {
		if e.Label.Empty() {
			fmt.Fprintf(&sb, "  %q -> %q;\n", e.From, e.To)
		} else {
			fmt.Fprintf(&sb, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label.String())
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

// SaveDot writes the DOT rendering to fname, appending the .dot
// extension when missing.
func (s *system) SaveDot(fname string) error {
	if fname == "" {
		fname = s.name
	}
	if !strings.HasSuffix(fname, ".dot") {
		fname += ".dot"
	}
	return os.WriteFile(fname, []byte(s.DotString()), 0o644)
}

// dotID makes a name safe for use as a DOT graph identifier.
func dotID(name string) string {
	if name == "" {
		return "transys"
	}
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
