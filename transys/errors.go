package transys

import "errors"

// Error taxonomy. Callers match with errors.Is; every failure is
// reported synchronously at the point of violation.
var (
	// ErrDomain: a label value lies outside the declared universe for
	// its field. Grow the universe first.
	ErrDomain = errors.New("value outside declared universe")

	// ErrDuplicateState: a state id was re-added with a conflicting
	// label. Re-adding with an identical label is a no-op, not an error.
	ErrDuplicateState = errors.New("duplicate state")

	// ErrUnknownState: an operation referenced a state id that was
	// never added.
	ErrUnknownState = errors.New("unknown state")

	// ErrTypeMismatch: an operation between incompatible system kinds
	// (open vs closed, or an automaton where none is accepted).
	ErrTypeMismatch = errors.New("incompatible system kinds")

	// ErrUnsupported: the operation is deliberately not implemented.
	// It fails loudly instead of silently doing nothing.
	ErrUnsupported = errors.New("operation not supported")
)
