// Subsumption index: answers "is there an already-indexed vector that
// dominates this candidate?" in amortized sublinear time.
//
// A vector v with evaluation n is subsumed by an indexed vector w with
// evaluation m when
//
//	v[i] >= w[i] for every coordinate i, and
//	0 < m <= n when n > 0, or m == n when n <= 0.
//
// The index maintains one weightMap per coordinate plus one for the
// evaluation scalar. A query seeds its candidate set from the evaluation
// map (the most selective dimension, since evaluations are usually
// distinct) and then refines the set coordinate by coordinate; each round
// keeps only offsets whose stored value at that coordinate is <= the
// query's. Whatever survives all rounds dominates the query vector.
//
// ELI12: finding a dominator is like finding a person who is both lighter
// than you AND shorter than you AND younger than you. Instead of asking
// everyone all three questions, we keep three sorted lists. We first grab
// everyone lighter than you from the weight list (few people), then cross
// off anyone on that shortlist who is too tall, then anyone too old.
// Whoever is still on the list dominates on every measure.

package hilbert

import (
	"github.com/orneryd/hilbert/pkg/numeral"
	"github.com/orneryd/hilbert/pkg/ratvec"
)

// indexStats counts the work done by the subsumption index.
type indexStats struct {
	numComparisons uint64
	numFind        uint64
	numInsert      uint64
}

type subsumptionIndex struct {
	coords []*weightMap   // one per coordinate
	weight *weightMap     // evaluation scalar
	refs   map[offset]int // offset -> surviving round, reused per query
	stats  indexStats
}

func newSubsumptionIndex() *subsumptionIndex {
	return &subsumptionIndex{
		weight: newWeightMap(),
		refs:   make(map[offset]int),
	}
}

// init sizes the index for numVars coordinates. Idempotent.
func (ix *subsumptionIndex) init(numVars int) {
	if len(ix.coords) == 0 {
		for i := 0; i < numVars; i++ {
			ix.coords = append(ix.coords, newWeightMap())
		}
	}
}

// insert indexes off under its coordinate values and evaluation. The
// caller must keep those values stable until remove.
func (ix *subsumptionIndex) insert(off offset, v ratvec.Vec, eval numeral.Numeral) {
	ix.stats.numInsert++
	for i, m := range ix.coords {
		m.insert(off, v[i])
	}
	ix.weight.insert(off, eval)
}

func (ix *subsumptionIndex) remove(off offset, v ratvec.Vec, eval numeral.Numeral) {
	for i, m := range ix.coords {
		m.remove(off, v[i])
	}
	ix.weight.remove(off, eval)
}

// find returns an indexed offset other than self that dominates (v, eval),
// if one exists. Which dominator is returned is unspecified.
func (ix *subsumptionIndex) find(v ratvec.Vec, eval numeral.Numeral, self offset) (offset, bool) {
	ix.stats.numFind++
	found, ok := ix.weight.initFind(ix.refs, eval, self, &ix.stats.numComparisons)
	for i := 0; ok && i < len(ix.coords); i++ {
		found, ok = ix.coords[i].updateFind(ix.refs, i, v[i], self, &ix.stats.numComparisons)
	}
	clear(ix.refs)
	return found, ok
}

func (ix *subsumptionIndex) reset() {
	for _, m := range ix.coords {
		m.reset()
	}
	ix.weight.reset()
	clear(ix.refs)
}

func (ix *subsumptionIndex) resetStats() {
	ix.stats = indexStats{}
}
