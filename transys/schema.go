package transys

import (
	"fmt"

	"github.com/rfielding/transys/mathset"
)

// Edge label field names. Closed systems carry a single actions field;
// open systems split it into system- and environment-controlled halves.
const (
	FieldActions    = "actions"
	FieldSysActions = "sys_actions"
	FieldEnvActions = "env_actions"
)

// EdgeField binds one edge-label field name to its action alphabet.
type EdgeField struct {
	Name     string
	Alphabet *mathset.MathSet
}

// LabelSchema fixes, at construction time, how a state or edge label
// decomposes into sub-labels: the state field is always ap over the
// power set of AP, the edge fields vary between the closed and open
// kinds. There is no runtime reflection; the schema is plain data.
type LabelSchema struct {
	AP         *mathset.PowerSet
	EdgeFields []EdgeField
}

// ClosedSchema is the schema of a closed system:
// ap -> 2^AP, actions -> Act.
func ClosedSchema(aps, actions []string) *LabelSchema {
	return &LabelSchema{
		AP: mathset.NewPowerSet(aps...),
		EdgeFields: []EdgeField{
			{Name: FieldActions, Alphabet: mathset.New(actions...)},
		},
	}
}

// OpenSchema is the schema of an open system:
// ap -> 2^AP, sys_actions -> SysAct, env_actions -> EnvAct.
func OpenSchema(aps, sysActions, envActions []string) *LabelSchema {
	return &LabelSchema{
		AP: mathset.NewPowerSet(aps...),
		EdgeFields: []EdgeField{
			{Name: FieldSysActions, Alphabet: mathset.New(sysActions...)},
			{Name: FieldEnvActions, Alphabet: mathset.New(envActions...)},
		},
	}
}

// Field looks up an edge field by name.
func (s *LabelSchema) Field(name string) (EdgeField, bool) {
	for _, f := range s.EdgeFields {
		if f.Name == name {
			return f, true
		}
	}
	return EdgeField{}, false
}

// ValidateStateLabel checks props against the current AP universe.
func (s *LabelSchema) ValidateStateLabel(props []string) error {
	for _, p := range props {
		if !s.AP.Base().Contains(p) {
			return fmt.Errorf("%w: proposition %q not in AP %s",
				ErrDomain, p, s.AP.Base())
		}
	}
	return nil
}

// ValidateEdgeLabel checks every field value against the field's
// alphabet. Unknown field names and out-of-alphabet values are domain
// errors; a nil label is always valid (unlabeled edge).
func (s *LabelSchema) ValidateEdgeLabel(label EdgeLabel) error {
	for name, value := range label {
		f, ok := s.Field(name)
		if !ok {
			return fmt.Errorf("%w: unknown edge label field %q", ErrDomain, name)
		}
		if !f.Alphabet.Contains(value) {
			return fmt.Errorf("%w: %s value %q not in alphabet %s",
				ErrDomain, name, value, f.Alphabet)
		}
	}
	return nil
}
