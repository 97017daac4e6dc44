package hilbert

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/hilbert/pkg/numeral"
	"github.com/orneryd/hilbert/pkg/ratvec"
)

func wrapperBasisSet(all []ratvec.Vec) []string {
	out := make([]string, 0, len(all))
	for _, v := range all {
		out = append(out, ratvec.String(v))
	}
	sort.Strings(out)
	return out
}

func TestSLBasis_BoundedVariable(t *testing.T) {
	// x <= 2 over one non-negative variable. Homogenized with a slack
	// dimension s in coordinate 0: x <= 2s. Generators with s=1 are the
	// admissible values 0, 1, 2.
	s := NewSL()
	s.AddLE(ratvec.FromInts(1), numeral.FromInt(2))

	require.Equal(t, ResultSat, s.Saturate(context.Background()))
	assert.Equal(t, wrapperBasisSet([]ratvec.Vec{
		ratvec.FromInts(1, 0),
		ratvec.FromInts(1, 1),
		ratvec.FromInts(1, 2),
	}), wrapperBasisSet(s.BasisAll()))

	assert.Equal(t, 2, s.Inner().NumVars())
}

func TestISLBasis_SignedVariable(t *testing.T) {
	// x <= 0 over one signed variable x = x+ - x-. Dimension doubles to
	// (x+, x-) and the slack pair (s+, s-) is appended.
	s := NewISL()
	s.AddLE(ratvec.FromInts(1), numeral.Zero())

	require.Equal(t, ResultSat, s.Saturate(context.Background()))
	assert.Equal(t, wrapperBasisSet([]ratvec.Vec{
		ratvec.FromInts(0, 1, 0, 0), // x = -1
		ratvec.FromInts(1, 1, 0, 0), // x = 0 as x+ = x- = 1
		ratvec.FromInts(0, 0, 1, 0), // slack directions
		ratvec.FromInts(0, 0, 0, 1),
	}), wrapperBasisSet(s.BasisAll()))

	assert.Equal(t, 4, s.Inner().NumVars())
}

func TestWrappers_Reset(t *testing.T) {
	s := NewSL()
	s.AddLE(ratvec.FromInts(1), numeral.FromInt(1))
	require.Equal(t, ResultSat, s.Saturate(context.Background()))
	require.NotZero(t, s.BasisLen())

	s.Reset()
	assert.Zero(t, s.BasisLen())
	assert.Zero(t, s.Inner().NumVars())
}
