package hilbert

import (
	"github.com/orneryd/hilbert/pkg/numeral"
	"github.com/orneryd/hilbert/pkg/ratvec"
)

// offset is an opaque handle to a vector slot in the store.
type offset = int

const invalidOffset offset = -1

// vectorStore owns every vector the engine works with. Vectors live in a
// single flat arena, numVars numerals per slot, with the evaluation scalar
// in a parallel slice indexed by slot. Recycled slots go on a free list
// and are handed out again before the arena grows.
//
// Everything else in the engine (basis, active, passive, zero, index)
// holds offsets into this store and never owns vector memory itself.
type vectorStore struct {
	numVars int
	arena   []numeral.Numeral // numVars entries per slot
	evals   []numeral.Numeral // one entry per slot
	free    []offset
}

func (s *vectorStore) init(numVars int) {
	s.numVars = numVars
}

// alloc returns a slot for a fresh vector, reusing a recycled slot when
// one is available. Contents of a reused slot are stale; callers overwrite
// every coordinate and the evaluation.
func (s *vectorStore) alloc() offset {
	if n := len(s.free); n > 0 {
		off := s.free[n-1]
		s.free = s.free[:n-1]
		return off
	}
	off := len(s.evals)
	s.arena = append(s.arena, make([]numeral.Numeral, s.numVars)...)
	s.evals = append(s.evals, numeral.Zero())
	return off
}

// recycle returns a slot to the free list. The caller is responsible for
// making sure no structure still references it.
func (s *vectorStore) recycle(off offset) {
	s.free = append(s.free, off)
}

// vec returns the live view of the slot's coordinates. The view is
// invalidated by the next alloc that grows the arena.
func (s *vectorStore) vec(off offset) ratvec.Vec {
	base := off * s.numVars
	return s.arena[base : base+s.numVars]
}

func (s *vectorStore) setVec(off offset, v ratvec.Vec) {
	copy(s.vec(off), v)
}

func (s *vectorStore) eval(off offset) numeral.Numeral {
	return s.evals[off]
}

func (s *vectorStore) setEval(off offset, n numeral.Numeral) {
	s.evals[off] = n
}

// numSlots returns how many slots the arena holds, live or free.
func (s *vectorStore) numSlots() int {
	return len(s.evals)
}

// numFree returns how many slots are on the free list.
func (s *vectorStore) numFree() int {
	return len(s.free)
}

func (s *vectorStore) reset() {
	s.arena = s.arena[:0]
	s.evals = s.evals[:0]
	s.free = s.free[:0]
}
