// Package parse reads constraint systems from their YAML description.
//
// The format is a dimension plus a list of constraints, one relation per
// entry. Coefficients may be integers or rational strings "p/q":
//
//	variables: 3
//	constraints:
//	  - ge: [1, -1, 0]
//	  - eq: ["2", "-3/2", 0]
//	  - le: [0, 1, 1]
//
// A loaded System is applied to an engine with Apply, and Canonical
// produces the deterministic encoding used as the basis cache key.
package parse

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/orneryd/hilbert/pkg/hilbert"
	"github.com/orneryd/hilbert/pkg/numeral"
	"github.com/orneryd/hilbert/pkg/pool"
	"github.com/orneryd/hilbert/pkg/ratvec"
)

// Kind is the relation of a constraint row.
type Kind int

const (
	// KindGE: v · x >= 0
	KindGE Kind = iota
	// KindLE: v · x <= 0
	KindLE
	// KindEq: v · x == 0
	KindEq
)

func (k Kind) String() string {
	switch k {
	case KindGE:
		return "ge"
	case KindLE:
		return "le"
	case KindEq:
		return "eq"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Constraint is one parsed constraint row.
type Constraint struct {
	Kind   Kind
	Coeffs ratvec.Vec
}

// System is a parsed constraint system.
type System struct {
	Variables   int
	Constraints []Constraint
}

type rawSystem struct {
	Variables   int                `yaml:"variables"`
	Constraints []map[string][]any `yaml:"constraints"`
}

// Load reads a system from YAML.
func Load(r io.Reader) (*System, error) {
	var raw rawSystem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse: decoding system: %w", err)
	}
	if raw.Variables <= 0 {
		return nil, fmt.Errorf("parse: variables must be positive, got %d", raw.Variables)
	}
	sys := &System{Variables: raw.Variables}
	for i, rc := range raw.Constraints {
		c, err := parseConstraint(rc, raw.Variables)
		if err != nil {
			return nil, fmt.Errorf("parse: constraint %d: %w", i, err)
		}
		sys.Constraints = append(sys.Constraints, c)
	}
	return sys, nil
}

// LoadFile reads a system from a YAML file.
func LoadFile(path string) (*System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func parseConstraint(rc map[string][]any, numVars int) (Constraint, error) {
	if len(rc) != 1 {
		return Constraint{}, fmt.Errorf("want exactly one of ge/le/eq, got %d keys", len(rc))
	}
	var kind Kind
	var entries []any
	for key, vals := range rc {
		switch key {
		case "ge":
			kind = KindGE
		case "le":
			kind = KindLE
		case "eq":
			kind = KindEq
		default:
			return Constraint{}, fmt.Errorf("unknown relation %q", key)
		}
		entries = vals
	}
	if len(entries) != numVars {
		return Constraint{}, fmt.Errorf("has %d coefficients, want %d", len(entries), numVars)
	}
	scratch := pool.GetNumeralSlice()
	defer func() { pool.PutNumeralSlice(scratch) }()
	for _, e := range entries {
		n, err := coeff(e)
		if err != nil {
			return Constraint{}, err
		}
		scratch = append(scratch, n)
	}
	return Constraint{Kind: kind, Coeffs: ratvec.Clone(scratch)}, nil
}

// coeff converts one YAML scalar to a numeral. Floats are rejected:
// the engine is exact and a float literal is almost always a mistake.
func coeff(e any) (numeral.Numeral, error) {
	switch v := e.(type) {
	case int:
		return numeral.FromInt(int64(v)), nil
	case int64:
		return numeral.FromInt(v), nil
	case string:
		n, err := numeral.Parse(v)
		if err != nil {
			return numeral.Zero(), fmt.Errorf("coefficient %q: %w", v, err)
		}
		return n, nil
	default:
		return numeral.Zero(), fmt.Errorf("coefficient %v has unsupported type %T", e, e)
	}
}

// Apply declares every constraint of the system on the engine.
func (s *System) Apply(b *hilbert.Basis) error {
	if n := b.NumVars(); n != 0 && n != s.Variables {
		return fmt.Errorf("parse: engine has %d variables, system wants %d", n, s.Variables)
	}
	for _, c := range s.Constraints {
		switch c.Kind {
		case KindGE:
			b.AddGE(c.Coeffs)
		case KindLE:
			b.AddLE(c.Coeffs)
		case KindEq:
			b.AddEq(c.Coeffs)
		}
	}
	return nil
}

// Canonical returns a deterministic byte encoding of the system. Two
// systems have equal encodings exactly when they declare the same
// constraints in the same order, which makes the encoding usable as a
// cache key.
func (s *System) Canonical() []byte {
	b := pool.GetStringBuilder()
	defer pool.PutStringBuilder(b)
	b.WriteString(fmt.Sprintf("variables %d\n", s.Variables))
	for _, c := range s.Constraints {
		b.WriteString(c.Kind.String())
		for _, n := range c.Coeffs {
			b.WriteByte(' ')
			b.WriteString(n.Key())
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
