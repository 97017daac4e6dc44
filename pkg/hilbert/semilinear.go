package hilbert

import (
	"context"

	"github.com/orneryd/hilbert/pkg/numeral"
	"github.com/orneryd/hilbert/pkg/ratvec"
)

// SLBasis solves semi-linear systems: constraints of the form
// v · x <= bound over non-negative variables. Each constraint is
// homogenized by a shared slack dimension prepended at coordinate 0,
// so the underlying engine works on dimension n+1. Generators with
// slack coordinate 1 correspond to solutions of the bounded system;
// generators with slack 0 are the recession directions.
type SLBasis struct {
	hb *Basis
}

// NewSL returns an empty semi-linear engine.
func NewSL() *SLBasis {
	return &SLBasis{hb: New()}
}

// AddLE appends the constraint v · x <= bound.
func (s *SLBasis) AddLE(v ratvec.Vec, bound numeral.Numeral) {
	w := make(ratvec.Vec, 0, len(v)+1)
	w = append(w, bound.Neg())
	w = append(w, v...)
	s.hb.AddLE(w)
}

// Saturate computes the basis of the homogenized system.
func (s *SLBasis) Saturate(ctx context.Context) Result {
	return s.hb.Saturate(ctx)
}

// BasisLen returns the number of generators.
func (s *SLBasis) BasisLen() int { return s.hb.BasisLen() }

// BasisVec returns a copy of generator i; coordinate 0 is the slack.
func (s *SLBasis) BasisVec(i int) ratvec.Vec { return s.hb.BasisVec(i) }

// BasisAll returns copies of all generators.
func (s *SLBasis) BasisAll() []ratvec.Vec { return s.hb.BasisAll() }

// Cancel requests termination of a running Saturate.
func (s *SLBasis) Cancel() { s.hb.Cancel() }

// Reset clears all state.
func (s *SLBasis) Reset() { s.hb.Reset() }

// Stats returns the underlying engine counters.
func (s *SLBasis) Stats() Stats { return s.hb.Stats() }

// Inner exposes the underlying homogeneous engine.
func (s *SLBasis) Inner() *Basis { return s.hb }

// ISLBasis solves integer signed-linear systems: constraints
// v · x <= bound where the variables range over all integers. Each
// signed variable x_i is split into a non-negative pair (x_i+, x_i-)
// with x_i = x_i+ - x_i-, doubling the dimension, and the bound pair
// (-bound, bound) is appended as the final two coordinates. The
// underlying engine works on dimension 2n+2.
type ISLBasis struct {
	hb *Basis
}

// NewISL returns an empty signed-linear engine.
func NewISL() *ISLBasis {
	return &ISLBasis{hb: New()}
}

// AddLE appends the constraint v · x <= bound over signed variables.
func (s *ISLBasis) AddLE(v ratvec.Vec, bound numeral.Numeral) {
	w := make(ratvec.Vec, 0, 2*len(v)+2)
	for _, c := range v {
		w = append(w, c, c.Neg())
	}
	w = append(w, bound.Neg(), bound)
	s.hb.AddLE(w)
}

// Saturate computes the basis of the homogenized system.
func (s *ISLBasis) Saturate(ctx context.Context) Result {
	return s.hb.Saturate(ctx)
}

// BasisLen returns the number of generators.
func (s *ISLBasis) BasisLen() int { return s.hb.BasisLen() }

// BasisVec returns a copy of generator i. Coordinates come in
// (positive, negative) pairs per source variable, followed by the
// slack pair.
func (s *ISLBasis) BasisVec(i int) ratvec.Vec { return s.hb.BasisVec(i) }

// BasisAll returns copies of all generators.
func (s *ISLBasis) BasisAll() []ratvec.Vec { return s.hb.BasisAll() }

// Cancel requests termination of a running Saturate.
func (s *ISLBasis) Cancel() { s.hb.Cancel() }

// Reset clears all state.
func (s *ISLBasis) Reset() { s.hb.Reset() }

// Stats returns the underlying engine counters.
func (s *ISLBasis) Stats() Stats { return s.hb.Stats() }

// Inner exposes the underlying homogeneous engine.
func (s *ISLBasis) Inner() *Basis { return s.hb }
