package transys

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// PromelaString converts the system to Promela source: a process that
// can run as an independent thread in the SPIN model checker. Each
// state becomes a label block that atomically assigns prop = 1 for
// every plain proposition in its label and prop = 0 for every negated
// one, followed by an if/fi selection over the outgoing transitions.
// procname defaults to the system's name.
func (t *FiniteTransitionSystem) PromelaString(procname string) string {
	if procname == "" {
		procname = t.Name()
	}
	var sb strings.Builder

	// one bool per non-negated proposition; "!" marks negation
	for _, ap := range t.AtomicPropositions().Elements() {
		if !strings.HasPrefix(ap, "!") {
			fmt.Fprintf(&sb, "bool %s;\n", ap)
		}
	}

	fmt.Fprintf(&sb, "\nactive proctype %s(){\n", procname)

	sb.WriteString("\t if\n")
	for _, init := range t.InitialStates() {
		fmt.Fprintf(&sb, "\t :: goto %s\n", init)
	}
	sb.WriteString("\t fi;\n")

	for _, state := range t.States() {
		sb.WriteString(statePromela(state, t.StateLabel(state)))
		sb.WriteString(outgoingPromela(t.FindTransitions(state, "")))
	}

	sb.WriteString("}\n")
	return sb.String()
}

func statePromela(state string, label []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:\n", state)
	fmt.Fprintf(&sb, "\t printf(\"State: %s\\n\");\n\t atomic{", state)

	assigns := make([]string, 0, len(label))
	for _, p := range label {
		if !strings.HasPrefix(p, "!") {
			assigns = append(assigns, p+" = 1;")
		}
	}
	for _, p := range label {
		if strings.HasPrefix(p, "!") {
			assigns = append(assigns, p[1:]+" = 0;")
		}
	}
	sb.WriteString(strings.Join(assigns, " "))
	sb.WriteString("}\n")
	return sb.String()
}

func outgoingPromela(edges []Edge) string {
	var sb strings.Builder
	sb.WriteString("\t if\n")
	for _, e := range edges {
		fmt.Fprintf(&sb, "\t :: printf(\"%s\\n\");\n", e.Label)
		fmt.Fprintf(&sb, "\t\t goto %s\n", e.To)
	}
	sb.WriteString("\t fi;\n\n")
	return sb.String()
}

// SavePromela writes the Promela rendering to fname, appending the
// .pml extension when missing.
func (t *FiniteTransitionSystem) SavePromela(fname string) error {
	if fname == "" {
		fname = t.Name()
	}
	if !strings.HasSuffix(fname, ".pml") {
		fname += ".pml"
	}
	s := fmt.Sprintf("/*\n * Promela file generated with transys\n * Date: %s\n */\n\n",
		time.Now().Format("01/02/06 15:04:05 -0700"))
	s += t.PromelaString("")
	return os.WriteFile(fname, []byte(s), 0o644)
}
