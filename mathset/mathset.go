package mathset

import (
	"fmt"
	"strings"
)

// MathSet is a finite, duplicate-free set of symbols that remembers
// first-insertion order. Elements are opaque strings; callers decide
// what they denote (atomic propositions, actions, state ids).
type MathSet struct {
	elems []string
	index map[string]struct{}
}

func New(elems ...string) *MathSet {
	s := &MathSet{index: make(map[string]struct{})}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add inserts e. Re-adding an existing element is a no-op.
func (s *MathSet) Add(e string) {
	if _, ok := s.index[e]; ok {
		return
	}
	s.index[e] = struct{}{}
	s.elems = append(s.elems, e)
}

// AddFrom inserts every element of other, preserving other's order for
// elements not already present.
func (s *MathSet) AddFrom(other *MathSet) {
	for _, e := range other.elems {
		s.Add(e)
	}
}

func (s *MathSet) Contains(e string) bool {
	_, ok := s.index[e]
	return ok
}

func (s *MathSet) Size() int {
	return len(s.elems)
}

// Elements returns the members in first-insertion order.
// The returned slice is a copy.
func (s *MathSet) Elements() []string {
	out := make([]string, len(s.elems))
	copy(out, s.elems)
	return out
}

func (s *MathSet) Copy() *MathSet {
	return New(s.elems...)
}

// Union returns a fresh set holding the members of s followed by the
// members of other not already present.
func (s *MathSet) Union(other *MathSet) *MathSet {
	out := s.Copy()
	out.AddFrom(other)
	return out
}

func (s *MathSet) Equals(other *MathSet) bool {
	if s.Size() != other.Size() {
		return false
	}
	for e := range s.index {
		if !other.Contains(e) {
			return false
		}
	}
	return true
}

func (s *MathSet) String() string {
	return "{" + strings.Join(s.elems, ", ") + "}"
}

// Pair is a composite element (Left, Right) with a canonical text form.
// Tensor-product action alphabets and composite state ids are built
// from pairs.
type Pair struct {
	Left, Right string
}

func (p Pair) String() string {
	return fmt.Sprintf("(%s,%s)", p.Left, p.Right)
}

// Cartesian returns {(x,y) | x in a, y in b} as a set of canonical
// pair strings, ordered a-major.
func Cartesian(a, b *MathSet) *MathSet {
	out := New()
	for _, x := range a.elems {
		for _, y := range b.elems {
			out.Add(Pair{Left: x, Right: y}.String())
		}
	}
	return out
}

// PowerSet is the set of all subsets of a base set. Only membership is
// ever computed; the subsets themselves are never materialized.
type PowerSet struct {
	base *MathSet
}

func NewPowerSet(base ...string) *PowerSet {
	return &PowerSet{base: New(base...)}
}

// Base returns the underlying universe. Mutations through it are
// visible to the power set.
func (p *PowerSet) Base() *MathSet {
	return p.base
}

// Grow extends the base universe. Growth is monotonic: subsets valid
// before a Grow stay valid after it.
func (p *PowerSet) Grow(elems ...string) {
	for _, e := range elems {
		p.base.Add(e)
	}
}

// Contains reports whether candidate is a subset of the base universe.
// The empty subset is always contained.
func (p *PowerSet) Contains(candidate []string) bool {
	for _, e := range candidate {
		if !p.base.Contains(e) {
			return false
		}
	}
	return true
}

func (p *PowerSet) Copy() *PowerSet {
	return &PowerSet{base: p.base.Copy()}
}

func (p *PowerSet) String() string {
	return "2^" + p.base.String()
}

// Unique removes duplicates from elems, keeping first occurrences in
// order.
func Unique(elems []string) []string {
	seen := make(map[string]struct{}, len(elems))
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
