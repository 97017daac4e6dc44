package hilbert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/hilbert/pkg/ratvec"
)

func newStoreWith(t *testing.T, rows ...[]int64) (*vectorStore, []offset) {
	t.Helper()
	s := &vectorStore{}
	require.NotEmpty(t, rows)
	s.init(len(rows[0]))
	offs := make([]offset, len(rows))
	for i, r := range rows {
		off := s.alloc()
		s.setVec(off, ratvec.FromInts(r...))
		offs[i] = off
	}
	return s, offs
}

func TestPassive_PopsAscendingWeight(t *testing.T) {
	s, offs := newStoreWith(t,
		[]int64{3, 3}, // weight 6
		[]int64{1, 0}, // weight 1
		[]int64{2, 2}, // weight 4
		[]int64{0, 2}, // weight 2
	)
	p := newPassiveQueue(s)
	for _, off := range offs {
		p.insert(off)
	}

	var got []offset
	for !p.empty() {
		got = append(got, p.pop())
	}
	assert.Equal(t, []offset{offs[1], offs[3], offs[2], offs[0]}, got)
}

func TestPassive_SlotReuse(t *testing.T) {
	s, offs := newStoreWith(t,
		[]int64{1, 1},
		[]int64{2, 0},
	)
	p := newPassiveQueue(s)
	p.insert(offs[0])
	p.insert(offs[1])
	require.Equal(t, offs[0], p.pop())

	// The freed internal slot is reused for the next insert.
	extra := s.alloc()
	s.setVec(extra, ratvec.FromInts(0, 1))
	p.insert(extra)
	assert.Len(t, p.items, 2)

	assert.Equal(t, extra, p.pop()) // weight 1 < weight 2
	assert.Equal(t, offs[1], p.pop())
	assert.True(t, p.empty())
}

func TestPassive_EachSkipsPopped(t *testing.T) {
	s, offs := newStoreWith(t,
		[]int64{1, 0},
		[]int64{0, 2},
		[]int64{3, 0},
	)
	p := newPassiveQueue(s)
	for _, off := range offs {
		p.insert(off)
	}
	p.pop() // drops offs[0]

	seen := map[offset]bool{}
	p.each(func(off offset) { seen[off] = true })
	assert.Equal(t, map[offset]bool{offs[1]: true, offs[2]: true}, seen)
}

func TestPassive_Reset(t *testing.T) {
	s, offs := newStoreWith(t, []int64{1, 1})
	p := newPassiveQueue(s)
	p.insert(offs[0])
	require.False(t, p.empty())

	p.reset()
	assert.True(t, p.empty())
	assert.Empty(t, p.items)
}
