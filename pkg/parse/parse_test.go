package parse

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/hilbert/pkg/hilbert"
	"github.com/orneryd/hilbert/pkg/ratvec"
)

const sampleDoc = `
variables: 2
constraints:
  - eq: [2, -3]
`

func TestLoad(t *testing.T) {
	sys, err := Load(strings.NewReader(`
variables: 3
constraints:
  - ge: [1, -1, 0]
  - eq: ["2", "-3/2", 0]
  - le: [0, 1, 1]
`))
	require.NoError(t, err)

	assert.Equal(t, 3, sys.Variables)
	require.Len(t, sys.Constraints, 3)

	assert.Equal(t, KindGE, sys.Constraints[0].Kind)
	assert.True(t, ratvec.Equal(ratvec.FromInts(1, -1, 0), sys.Constraints[0].Coeffs))

	assert.Equal(t, KindEq, sys.Constraints[1].Kind)
	assert.Equal(t, "2 -3/2 0", ratvec.String(sys.Constraints[1].Coeffs))

	assert.Equal(t, KindLE, sys.Constraints[2].Kind)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing variables", "constraints:\n  - ge: [1]\n"},
		{"zero variables", "variables: 0\n"},
		{"unknown relation", "variables: 1\nconstraints:\n  - gt: [1]\n"},
		{"two relations in one entry", "variables: 1\nconstraints:\n  - ge: [1]\n    le: [1]\n"},
		{"wrong coefficient count", "variables: 2\nconstraints:\n  - ge: [1]\n"},
		{"float coefficient", "variables: 1\nconstraints:\n  - ge: [1.5]\n"},
		{"malformed rational", "variables: 1\nconstraints:\n  - ge: [\"1/x\"]\n"},
		{"unknown field", "variables: 1\nbogus: true\n"},
		{"not yaml", ": : :\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	sys, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, sys.Variables)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApply_SolvesSystem(t *testing.T) {
	sys, err := Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	b := hilbert.New()
	require.NoError(t, sys.Apply(b))
	require.Equal(t, hilbert.ResultSat, b.Saturate(context.Background()))

	var got []string
	for _, v := range b.BasisAll() {
		got = append(got, ratvec.String(v))
	}
	sort.Strings(got)
	assert.Equal(t, []string{"3 2"}, got)
}

func TestApply_DimensionMismatch(t *testing.T) {
	sys, err := Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	b := hilbert.New()
	b.AddGE(ratvec.FromInts(1, 0, 0)) // engine already at dimension 3
	assert.Error(t, sys.Apply(b))
}

func TestCanonical(t *testing.T) {
	sys, err := Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	first := sys.Canonical()
	assert.Equal(t, "variables 2\neq 2 -3\n", string(first))
	assert.Equal(t, first, sys.Canonical(), "encoding must be deterministic")

	other, err := Load(strings.NewReader(`
variables: 2
constraints:
  - eq: [2, -4]
`))
	require.NoError(t, err)
	assert.NotEqual(t, first, other.Canonical())
}
